// Copyright 2025 go-bitonic Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package bitonic

import (
	"errors"
	"fmt"
)

// ErrInvalidLength is matched by errors.Is for every *InvalidLengthError.
var ErrInvalidLength = errors.New("bitonic: length is not a power of two")

// InvalidLengthError is returned when the slice length is neither zero nor a
// power of two. The slice is left unmodified.
type InvalidLengthError struct {
	Length int
}

func (e *InvalidLengthError) Error() string {
	return fmt.Sprintf("bitonic: invalid length %d: not a power of two", e.Length)
}

// Is reports whether target is ErrInvalidLength.
func (e *InvalidLengthError) Is(target error) bool {
	return target == ErrInvalidLength
}

// IsPowerOfTwo reports whether n is zero or has exactly one bit set.
func IsPowerOfTwo(n int) bool {
	return n >= 0 && n&(n-1) == 0
}

func checkLength(n int) error {
	if !IsPowerOfTwo(n) {
		return &InvalidLengthError{Length: n}
	}
	return nil
}

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

// Package cpuinfo reports the vector instruction set and processor counts of
// the running machine.
package cpuinfo

import "runtime"

// Level is the widest vector instruction set the CPU supports.
type Level int

const (
	// Scalar means no vector instruction set was detected.
	Scalar Level = iota

	// SSE2 is the x86-64 baseline (128-bit).
	SSE2

	// AVX2 is 256-bit x86 SIMD.
	AVX2

	// AVX512 is 512-bit x86 SIMD.
	AVX512

	// NEON is ARM's 128-bit SIMD.
	NEON

	// SVE is ARM's scalable vector extension.
	SVE
)

// String returns a human-readable name for the level.
func (l Level) String() string {
	switch l {
	case Scalar:
		return "scalar"
	case SSE2:
		return "sse2"
	case AVX2:
		return "avx2"
	case AVX512:
		return "avx512"
	case NEON:
		return "neon"
	case SVE:
		return "sve"
	default:
		return "unknown"
	}
}

// Width returns the vector register width in bytes. SVE reports its 128-bit
// architectural minimum.
func (l Level) Width() int {
	switch l {
	case AVX2:
		return 32
	case AVX512:
		return 64
	default:
		return 16
	}
}

// Info describes the machine a sort runs on.
type Info struct {
	Arch       string
	Level      Level
	NumCPU     int
	GOMAXPROCS int
}

// Detect returns the current machine's Info.
func Detect() Info {
	return Info{
		Arch:       runtime.GOARCH,
		Level:      detectLevel(),
		NumCPU:     runtime.NumCPU(),
		GOMAXPROCS: runtime.GOMAXPROCS(0),
	}
}

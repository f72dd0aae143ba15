package simd

import "golang.org/x/sys/cpu"

// wideLoops enables the 32-bytes-per-iteration variants of the SWAR loops.
// The wider stride needs a core that can retire several loads per cycle to
// pay off; AVX2 on x86-64 and ASIMD on arm64 are used as the capability
// signal. Everything else stays on the 8-byte loops.
var wideLoops = cpu.X86.HasAVX2 || cpu.ARM64.HasASIMD

// Package simd provides accelerated byte-search primitives for the engine's
// prefilters.
//
// The implementations are pure Go using the SWAR (SIMD Within A Register)
// technique: 8 bytes are examined per uint64 operation, and on CPUs with
// wide vector units the loops widen to a 32-byte stride. CPU capability is
// detected once at package initialization via golang.org/x/sys/cpu.
package simd

import (
	"encoding/binary"
	"math/bits"
)

const (
	lo8 = 0x0101010101010101
	hi8 = 0x8080808080808080
)

// Memchr returns the index of the first instance of needle in haystack,
// or -1 if needle is not present.
//
// Equivalent to bytes.IndexByte; kept local so the prefilters share one
// dispatch point with Memmem.
func Memchr(haystack []byte, needle byte) int {
	n := len(haystack)
	if n == 0 {
		return -1
	}

	// Small inputs: the setup cost of the word loops exceeds the scan.
	if n < 8 {
		for i := 0; i < n; i++ {
			if haystack[i] == needle {
				return i
			}
		}
		return -1
	}

	// Broadcast needle into every byte of a word; XOR then turns matching
	// bytes into zero bytes, which the Hacker's Delight zero-byte test
	// exposes as set high bits.
	mask := uint64(needle) * lo8
	i := 0

	if wideLoops {
		for i+32 <= n {
			w0 := binary.LittleEndian.Uint64(haystack[i:]) ^ mask
			w1 := binary.LittleEndian.Uint64(haystack[i+8:]) ^ mask
			w2 := binary.LittleEndian.Uint64(haystack[i+16:]) ^ mask
			w3 := binary.LittleEndian.Uint64(haystack[i+24:]) ^ mask

			if z := zeroByte(w0); z != 0 {
				return i + bits.TrailingZeros64(z)/8
			}
			if z := zeroByte(w1); z != 0 {
				return i + 8 + bits.TrailingZeros64(z)/8
			}
			if z := zeroByte(w2); z != 0 {
				return i + 16 + bits.TrailingZeros64(z)/8
			}
			if z := zeroByte(w3); z != 0 {
				return i + 24 + bits.TrailingZeros64(z)/8
			}
			i += 32
		}
	}

	for i+8 <= n {
		w := binary.LittleEndian.Uint64(haystack[i:]) ^ mask
		if z := zeroByte(w); z != 0 {
			return i + bits.TrailingZeros64(z)/8
		}
		i += 8
	}

	for ; i < n; i++ {
		if haystack[i] == needle {
			return i
		}
	}
	return -1
}

// zeroByte returns a word with the high bit set in every byte position of w
// that is zero.
func zeroByte(w uint64) uint64 {
	return (w - lo8) & ^w & hi8
}

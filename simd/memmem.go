package simd

import "bytes"

// Memmem returns the index of the first instance of needle in haystack,
// or -1 if needle is not present.
//
// The search uses a rare-byte heuristic: Memchr scans for the needle byte
// least likely to occur in typical text, and each candidate position is then
// verified with a full comparison. For needles made of common bytes this
// still degrades gracefully to a verified linear scan.
//
// Example:
//
//	simd.Memmem([]byte("hello world"), []byte("world")) // 6
//	simd.Memmem([]byte("hello world"), []byte("xyz"))   // -1
func Memmem(haystack, needle []byte) int {
	n := len(needle)
	switch {
	case n == 0:
		return 0
	case n > len(haystack):
		return -1
	case n == 1:
		return Memchr(haystack, needle[0])
	}

	rare := rareIndex(needle)
	rareByte := needle[rare]

	// Scan for the rare byte; every hit at offset i corresponds to a
	// candidate match starting at i-rare.
	at := rare
	limit := len(haystack) - n + rare + 1
	for at < limit {
		i := Memchr(haystack[at:limit], rareByte)
		if i < 0 {
			return -1
		}
		start := at + i - rare
		if bytes.Equal(haystack[start:start+n], needle) {
			return start
		}
		at += i + 1
	}
	return -1
}

// rareIndex returns the index of the needle byte with the lowest expected
// frequency in typical text. Ties keep the later position, which lets the
// verification step fail earlier on partial matches.
func rareIndex(needle []byte) int {
	best := 0
	bestRank := byteRank(needle[0])
	for i := 1; i < len(needle); i++ {
		if r := byteRank(needle[i]); r <= bestRank {
			best = i
			bestRank = r
		}
	}
	return best
}

// byteRank estimates how common a byte is in typical text; higher means
// more common. The buckets are coarse on purpose: the heuristic only has to
// avoid scanning for bytes like ' ' or 'e' when a rarer one is available.
func byteRank(b byte) int {
	switch {
	case b == ' ':
		return 5
	case b >= 'a' && b <= 'z':
		return 4
	case b >= '0' && b <= '9':
		return 3
	case b >= 'A' && b <= 'Z':
		return 2
	case b >= 0x20 && b < 0x7f:
		return 1
	default:
		// Control bytes and non-ASCII lead/continuation bytes.
		return 0
	}
}

package telomere

// Seed enumeration: the canonical bijection between nonnegative integers
// and byte strings, ordered first by ascending length then by
// lexicographic (big-endian) byte order (spec §4.4). Index 0 is the empty
// seed (reserved, never used as a match candidate); index 1 is [0x00];
// the first index of each new length class is the all-zero string of that
// length.
//
// This is standard bijective base-256 numbering: within the block of
// indices belonging to length L, the rank of a byte string is simply its
// big-endian numeric value, and the block of length-L strings begins right
// after the (256^0 + 256^1 + ... + 256^(L-1))-th index. Seeds in this
// codec are always short (the candidate generator's default budget covers
// 1-, 2-, and 3-byte seeds), so indices fit comfortably in a uint64 and no
// big-integer arithmetic is needed.
//
// Note: spec.md's own illustrative example ("index 256 = [0x00, 0x00]")
// is inconsistent with its own stated ordering rule — under
// length-then-lex order, index 256 is the *last* one-byte seed ([0xFF]),
// and index 257 is the first two-byte seed ([0x00, 0x00]). This file
// implements the rule as literally defined; see DESIGN.md for the
// off-by-one discrepancy in the spec text.

// cumulativeStart returns the first index belonging to length-L seeds,
// i.e. sum(256^l for l in [0, L)).
func cumulativeStart(length int) uint64 {
	var sum uint64
	pow := uint64(1)
	for l := 0; l < length; l++ {
		sum += pow
		pow *= 256
	}
	return sum
}

// SeedOf returns the canonical seed byte string for index i. i == 0 yields
// the empty seed.
func SeedOf(i uint64) []byte {
	if i == 0 {
		return []byte{}
	}
	length := 1
	for cumulativeStart(length+1) <= i {
		length++
	}
	rank := i - cumulativeStart(length)
	out := make([]byte, length)
	for pos := length - 1; pos >= 0; pos-- {
		out[pos] = byte(rank & 0xFF)
		rank >>= 8
	}
	return out
}

// IndexOf returns the canonical index of seed s.
func IndexOf(s []byte) uint64 {
	if len(s) == 0 {
		return 0
	}
	var rank uint64
	for _, b := range s {
		rank = (rank << 8) | uint64(b)
	}
	return cumulativeStart(len(s)) + rank
}

// MaxSeedIndex returns the largest index whose seed length does not exceed
// maxLen bytes (the candidate generator's search budget per spec §4.5).
func MaxSeedIndex(maxLen int) uint64 {
	return cumulativeStart(maxLen+1) - 1
}

package telomere

import (
	"hash"
	"sync"

	sha256simd "github.com/minio/sha256-simd"
)

// hashPool recycles sha256-simd hashers across calls to Expand, the same
// pattern used by hash-chain accumulators built on this package: grab a
// hasher, Reset it, use it, put it back. sha256-simd is a drop-in
// hash.Hash implementation that uses AVX2/SHA-NI when the CPU supports it
// and falls back internally otherwise; nothing here needs to know which
// path it took.
var hashPool = sync.Pool{New: func() interface{} { return sha256simd.New() }}

// digestSize is the output width of SHA-256.
const digestSize = 32

// Expand computes G(seed, n): the iterated-SHA-256 expansion of seed,
// truncated to n bytes (spec §4.4). d0 = SHA-256(seed), d_{i+1} =
// SHA-256(d_i); the output is d0 || d1 || ... truncated to n bytes.
func Expand(seed []byte, n int) []byte {
	out := make([]byte, 0, n+digestSize)
	h := hashPool.Get().(hash.Hash)
	defer hashPool.Put(h)

	d := seed
	for len(out) < n {
		h.Reset()
		h.Write(d)
		sum := h.Sum(make([]byte, 0, digestSize))
		out = append(out, sum...)
		d = sum
	}
	return out[:n]
}

// Matches reports whether G(seed, len(want)) == want, without allocating
// the full expansion: it computes the digest chain one digest at a time,
// compares each against want, and returns at the first mismatched byte
// without computing the later digests.
func Matches(seed []byte, want []byte) bool {
	h := hashPool.Get().(hash.Hash)
	defer hashPool.Put(h)

	need := len(want)
	d := seed
	produced := 0
	for produced < need {
		h.Reset()
		h.Write(d)
		sum := h.Sum(make([]byte, 0, digestSize))
		take := digestSize
		if need-produced < take {
			take = need - produced
		}
		for i := 0; i < take; i++ {
			if sum[i] != want[produced+i] {
				return false
			}
		}
		produced += take
		d = sum
	}
	return true
}

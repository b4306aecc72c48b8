// Package telomere implements a deterministic, lossless compression codec
// whose compressed output contains only headers and short "seeds" — no raw
// payload bytes except inside explicitly-tagged literal regions.
//
// # Overview
//
// A block of input bytes is considered compressible when there exists a
// short byte string s such that iteratively applying SHA-256 to s (feeding
// the digest back as input) produces a prefix matching the block's
// content. Matches replace one or more adjacent blocks with a compact
// header plus the seed's index in a canonical enumeration. Unmatched
// blocks fall back to literal passthrough. Compression iterates the
// search/bundle cycle across a bounded number of passes and keeps the
// best (shortest) result it finds before convergence.
//
// # When to Use Telomere
//
//   - Data that may contain runs reachable by a short SHA-256 preimage
//     chain (rare in practice; most value comes from merging adjacent
//     blocks into wider-arity spans, not single-block matches)
//   - Contexts where a proof that "this many bytes reduce to one seed" is
//     itself the interesting artifact (research, puzzles, golfing)
//
// # When NOT to Use Telomere
//
//   - General-purpose compression: gzip, zstd, or FSST-style symbol tables
//     will compress real-world data far more reliably and quickly
//   - Latency-sensitive encoding: the candidate generator searches seed
//     space exhaustively up to a configured budget
//   - Streaming or random-access decode: Telomere is sequential-decode only
//
// # Basic Usage
//
//	cfg := telomere.DefaultConfig()
//	compressed, err := telomere.Compress(context.Background(), input, cfg)
//	if err != nil {
//	    // handle err
//	}
//	original, err := telomere.Decompress(compressed)
//	if err != nil {
//	    // handle err
//	}
//
// # Performance Characteristics
//
// Compression is dominated by the candidate generator: for each block and
// each arity it tries, it searches ascending seed indices and tests
// G(seed, n) against the block bytes, up to MaxSeedLen bytes of seed
// space (roughly 16.8M candidates at the default 3-byte budget). Decoding
// is a single linear pass over the bitstream and is fast: one G()
// evaluation per seed-reference span, one copy per literal span.
package telomere

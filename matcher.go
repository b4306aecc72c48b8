package telomere

import "context"

// MatchRequest is the opaque seed-matching backend's input contract (spec
// §6.3): a flat buffer of block bytes, per-block offset/length pairs into
// that buffer, and the seed-index range to try.
type MatchRequest struct {
	Blocks         []byte
	Offsets        []int
	Lengths        []int
	StartSeedIndex uint64
	SeedCount      uint64
	MaxSeedLen     int
}

// MatchRecord names one (seed_index, block_index) hit.
type MatchRecord struct {
	SeedIndex  uint64
	BlockIndex int
}

// Matcher is the dynamic-dispatch capability named in spec §9: "a single
// method match(block_set, seed_range) -> match_log." Implementers choose
// CPU or native/GPU; the backend never mutates the superposition store,
// only returns a log for the controller to fold in.
type Matcher interface {
	Match(ctx context.Context, req MatchRequest) ([]MatchRecord, error)
	// Available reports whether this backend can run in the current
	// process. The controller calls this once before dispatching and
	// falls back to the CPU matcher if it returns false.
	Available() bool
}

// cpuMatcher is the always-available reference implementation.
type cpuMatcher struct{}

// CPUMatcher is the default Matcher: always available, pure Go.
var CPUMatcher Matcher = cpuMatcher{}

func (cpuMatcher) Available() bool { return true }

func (cpuMatcher) Match(ctx context.Context, req MatchRequest) ([]MatchRecord, error) {
	var records []MatchRecord
	for i := uint64(0); i < req.SeedCount; i++ {
		if i%seedYieldInterval == 0 {
			select {
			case <-ctx.Done():
				return records, ctx.Err()
			default:
			}
		}
		idx := req.StartSeedIndex + i
		seed := SeedOf(idx)
		if len(seed) > req.MaxSeedLen {
			break
		}
		for b := range req.Offsets {
			off, length := req.Offsets[b], req.Lengths[b]
			want := req.Blocks[off : off+length]
			if Matches(seed, want) {
				records = append(records, MatchRecord{SeedIndex: idx, BlockIndex: b})
			}
		}
	}
	return records, nil
}

// SelectMatcher returns preferred if it's available in this process,
// otherwise falls back to CPUMatcher with a single diagnostic (spec
// §6.3: "transparently falls back to CPU with a single diagnostic").
func SelectMatcher(preferred Matcher) Matcher {
	if preferred != nil && preferred.Available() {
		return preferred
	}
	if preferred != nil {
		componentLogger("matcher").Warn().Msg("preferred matcher unavailable, falling back to CPU")
	}
	return CPUMatcher
}

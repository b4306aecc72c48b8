package telomere

import "context"

// PassState is the pass driver's state machine (spec §9): transitions are
// total and always proceed SearchInProgress -> Bundling -> Writing.
type PassState int

const (
	SearchInProgress PassState = iota
	Bundling
	Writing
)

func (s PassState) String() string {
	switch s {
	case SearchInProgress:
		return "SearchInProgress"
	case Bundling:
		return "Bundling"
	case Writing:
		return "Writing"
	default:
		return "Unknown"
	}
}

// PassResult is one pass's output: the written batch payload bytes (not
// including the file header) and the span list that produced it, for the
// caller to compare against the previous pass's length.
type PassResult struct {
	Batches []*Batch
	Spans   []Span
	Bytes   []byte
}

// RunPass executes one full search -> prune -> bundle -> assemble ->
// write cycle over data (spec §4.10 steps 1-5). It does not write the
// file header; callers combine the returned bytes with one.
func RunPass(ctx context.Context, data []byte, cfg Config, cache SeedCache) (*PassResult, error) {
	log := componentLogger("pass")
	log.Debug().Str("state", SearchInProgress.String()).Msg("pass state")

	table := Partition(data, cfg.BlockSize)
	if table.NumBlocks() == 0 {
		return &PassResult{}, nil
	}

	candidates, err := GenerateCandidates(ctx, table, cfg)
	if err != nil {
		return nil, err
	}
	applySeedCache(table, cache, candidates)

	log.Debug().Str("state", Bundling.String()).Msg("pass state")
	superpositions := BuildSuperpositions(candidates)
	spans := Bundle(superpositions, table.NumBlocks())
	fillSpanBytes(table, spans)
	if err := checkSpanCoverage(spans, table.NumBlocks()); err != nil {
		return nil, err
	}

	log.Debug().Str("state", Writing.String()).Msg("pass state")
	batches := AssembleBatches(spans, table.NumBlocks())
	w := NewBitWriter(nil)
	for _, b := range batches {
		EncodeBatch(w, b)
	}
	return &PassResult{Batches: batches, Spans: spans, Bytes: w.Flush()}, nil
}

// fillSpanBytes populates each span's decoded payload from the block
// table, so batch assembly can compute payload hashes.
func fillSpanBytes(t *BlockTable, spans []Span) {
	for i := range spans {
		s := &spans[i]
		if s.Literal {
			if s.Bytes == nil {
				s.Bytes = t.Concat(s.Start, s.Arity)
			}
			continue
		}
		s.Bytes = t.Concat(s.Start, s.Arity)
	}
}

// checkSpanCoverage verifies the bundler produced a clean partition of
// [0, numBlocks) with no gaps or overlaps (spec §4.7's "no bundle crosses
// ... boundaries" constraint, defensively re-checked post-selection).
func checkSpanCoverage(spans []Span, numBlocks int) error {
	next := 0
	for _, s := range spans {
		if s.Start != next {
			return newError(KindBundling, "pass", -1, -1, errBundlingOverlap)
		}
		next = s.End()
	}
	if next != numBlocks {
		return newError(KindBundling, "pass", -1, -1, errBundlingOverlap)
	}
	return nil
}

// applySeedCache records every seed candidate in a configured SeedCache;
// Lookup is not consulted, so the cache never short-circuits the search.
// The noop cache makes this a complete no-op.
func applySeedCache(t *BlockTable, cache SeedCache, candidates map[int][]Candidate) {
	if cache == nil {
		return
	}
	for start, list := range candidates {
		for _, c := range list {
			if c.Literal {
				continue
			}
			cache.Record(start, c.Arity, t.Concat(start, c.Arity), c.SeedIndex)
		}
	}
}

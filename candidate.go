package telomere

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// seedYieldInterval is the number of seed indices a worker tries before
// checking ctx.Done(), the suspension point named in spec §5.
const seedYieldInterval = 65536

// Candidate is a tentative span with its bit cost, labeled by discovery
// order within its starting block's superposition list (spec §3, §4.6).
type Candidate struct {
	Start     int
	Arity     int
	Literal   bool
	SeedIndex uint64
	CostBits  int
}

// Compressive reports whether this candidate beats the literal encoding of
// the same blocks.
func (c Candidate) Compressive(blockSize int) bool {
	if c.Literal {
		return false
	}
	return c.CostBits < c.Arity*blockSize*8
}

// literalCandidate builds the always-available literal fallback for the
// span [start, start+arity).
func literalCandidate(start, arity, blockSize int) Candidate {
	return Candidate{
		Start:    start,
		Arity:    arity,
		Literal:  true,
		CostBits: ArityBits(arityLiteral) + arity*blockSize*8,
	}
}

// searchSpan tries seed indices [1, maxIndex] against G(seed, arity *
// blockSize), returning every compressive-or-not match found (the caller
// decides what to keep). The search itself is delegated to matcher (spec
// §6.3, §9: the candidate generator drives the dynamic-dispatch Matcher
// capability rather than hashing directly), which checks ctx for
// cancellation every seedYieldInterval tries.
func searchSpan(ctx context.Context, matcher Matcher, want []byte, start, arity int, maxIndex uint64, maxSeedLen int) ([]Candidate, error) {
	req := MatchRequest{
		Blocks:         want,
		Offsets:        []int{0},
		Lengths:        []int{len(want)},
		StartSeedIndex: 1,
		SeedCount:      maxIndex,
		MaxSeedLen:     maxSeedLen,
	}
	records, err := matcher.Match(ctx, req)
	if err != nil {
		return nil, err
	}
	matches := make([]Candidate, 0, len(records))
	for _, rec := range records {
		matches = append(matches, Candidate{
			Start:     start,
			Arity:     arity,
			SeedIndex: rec.SeedIndex,
			CostBits:  ArityBits(arity) + EVQLBits(rec.SeedIndex),
		})
	}
	return matches, nil
}

// task is one (block, arity) unit of work dispatched to the worker pool.
type task struct {
	start int
	arity int
	want  []byte
}

// GenerateCandidates runs the candidate generator over every starting
// block and every arity in {1, 3, 4, ..., cfg.MaxArity}, fanning out
// across a worker pool keyed by GOMAXPROCS (spec §4.5, §5). It always adds
// the literal fallback for every block. A final block shorter than the
// block size gets only the literal fallback; a full-size final block is
// also searched at arity 1, and no multi-block span reaches the final
// block regardless of cfg.MaxArity. Seed matching uses the native backend
// when NewNativeMatcher provides one and the CPU matcher otherwise; when
// NewNativeMatcher reports no backend, no diagnostic is logged.
func GenerateCandidates(ctx context.Context, t *BlockTable, cfg Config) (map[int][]Candidate, error) {
	preferred, _ := NewNativeMatcher()
	matcher := SelectMatcher(preferred)

	results := make(map[int][]Candidate)
	for _, b := range t.Blocks {
		results[b.Index] = append(results[b.Index], literalCandidate(b.Index, 1, t.BlockSize))
	}

	maxIndex := MaxSeedIndex(cfg.MaxSeedLen)
	var tasks []task
	for start := 0; start < t.NumBlocks(); start++ {
		for _, arity := range arities(cfg.MaxArity) {
			if start+arity > t.NumBlocks() {
				continue
			}
			if t.IsFinal(start, arity) && (arity != 1 || t.LastBlockLen < t.BlockSize) {
				// The final partial block only ever gets a literal span;
				// seed bundles may not cross the final-block boundary.
				continue
			}
			tasks = append(tasks, task{start: start, arity: arity, want: t.Concat(start, arity)})
		}
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	matchesCh := make(chan []Candidate, len(tasks))
	for _, tk := range tasks {
		tk := tk
		g.Go(func() error {
			found, err := searchSpan(gctx, matcher, tk.want, tk.start, tk.arity, maxIndex, cfg.MaxSeedLen)
			if err != nil {
				return err
			}
			matchesCh <- found
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, newError(KindSeedSearch, "candidate", -1, -1, err)
	}
	close(matchesCh)
	for found := range matchesCh {
		for _, c := range found {
			results[c.Start] = append(results[c.Start], c)
		}
	}
	return results, nil
}

// arities returns {1, 3, 4, ..., maxArity}, the set the generator searches
// per starting block.
func arities(maxArity int) []int {
	out := []int{1}
	for a := 3; a <= maxArity; a++ {
		out = append(out, a)
	}
	return out
}

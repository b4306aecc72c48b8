package telomere

import "sort"

// pruneDeltaBits is the superposition store's retention window: a
// candidate is dropped once its cost exceeds the current best by more
// than this many bits (spec §4.6).
const pruneDeltaBits = 8

// Superposition is the per-starting-block candidate list (spec §3, §4.6).
// Entries[0] is labeled with the bare block index; Entries[1:] are the
// "A", "B", ... fallbacks in canonical sort order.
type Superposition struct {
	Start   int
	Entries []Candidate
}

// Label returns the canonical sub-label ("", "A", "B", ...) for the
// candidate at position idx within the sorted entry list.
func Label(idx int) string {
	if idx == 0 {
		return ""
	}
	return string(rune('A' + idx - 1))
}

// lessCandidate implements spec §4.5's tie-break: smaller cost wins; on
// tie, smaller arity wins; on tie, smaller seed index wins; literal loses
// all ties.
func lessCandidate(a, b Candidate) bool {
	if a.CostBits != b.CostBits {
		return a.CostBits < b.CostBits
	}
	if a.Literal != b.Literal {
		return !a.Literal // non-literal wins a tie
	}
	if a.Literal && b.Literal {
		return false
	}
	if a.Arity != b.Arity {
		return a.Arity < b.Arity
	}
	return a.SeedIndex < b.SeedIndex
}

// BuildSuperpositions sorts each block's candidate list canonically (spec
// §5: "canonically sorted at pass end ... before pruning and bundling")
// and applies the δ≤8-bit pruning rule.
func BuildSuperpositions(candidates map[int][]Candidate) map[int]*Superposition {
	out := make(map[int]*Superposition, len(candidates))
	for start, list := range candidates {
		sorted := append([]Candidate(nil), list...)
		sort.SliceStable(sorted, func(i, j int) bool { return lessCandidate(sorted[i], sorted[j]) })
		if len(sorted) == 0 {
			continue
		}
		best := sorted[0].CostBits
		kept := sorted[:0:0]
		for _, c := range sorted {
			if c.CostBits-best > pruneDeltaBits {
				break
			}
			kept = append(kept, c)
		}
		out[start] = &Superposition{Start: start, Entries: kept}
	}
	return out
}

// Best returns the top-ranked candidate for this block, the one that
// survives into the written bitstream absent a bundle claim.
func (s *Superposition) Best() Candidate { return s.Entries[0] }

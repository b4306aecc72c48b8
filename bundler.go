package telomere

import "sort"

// Bundle assigns the greedy, one-layer span selection across all blocks
// in a pass (spec §4.7). It never reconsiders a selected bundle for
// further merging within the same pass, and is idempotent: the same
// superposition map always yields the same span list.
func Bundle(superpositions map[int]*Superposition, numBlocks int) []Span {
	var merges []Candidate
	for _, sp := range superpositions {
		for _, c := range sp.Entries {
			if !c.Literal && c.Arity >= 2 {
				merges = append(merges, c)
			}
		}
	}
	sort.SliceStable(merges, func(i, j int) bool {
		a, b := merges[i], merges[j]
		if a.Arity != b.Arity {
			return a.Arity > b.Arity
		}
		if a.Start != b.Start {
			return a.Start < b.Start
		}
		return a.CostBits < b.CostBits
	})

	claimed := make([]bool, numBlocks)
	spans := make(map[int]Span, numBlocks)
	for _, c := range merges {
		if anyClaimed(claimed, c.Start, c.Arity) {
			continue
		}
		claim(claimed, c.Start, c.Arity)
		spans[c.Start] = Span{Start: c.Start, Arity: c.Arity, SeedIndex: c.SeedIndex}
	}

	for start := 0; start < numBlocks; start++ {
		if claimed[start] {
			continue
		}
		sp, ok := superpositions[start]
		if !ok {
			continue
		}
		best := bestSingleBlock(sp)
		spans[start] = spanFromCandidate(best)
		claim(claimed, start, 1)
	}

	ordered := make([]Span, 0, len(spans))
	for start := 0; start < numBlocks; start++ {
		if s, ok := spans[start]; ok {
			ordered = append(ordered, s)
		}
	}
	return ordered
}

func anyClaimed(claimed []bool, start, arity int) bool {
	for i := start; i < start+arity; i++ {
		if i >= len(claimed) || claimed[i] {
			return true
		}
	}
	return false
}

func claim(claimed []bool, start, arity int) {
	for i := start; i < start+arity; i++ {
		claimed[i] = true
	}
}

// bestSingleBlock picks the single-block candidate for an unclaimed
// block: a compressive arity-1 seed match if one survived pruning,
// otherwise the literal fallback. Compressiveness is judged against the
// surviving literal's payload bits; when pruning dropped the literal, the
// cheapest surviving arity-1 seed is taken, and with no such seed a
// literal span is built for the block.
func bestSingleBlock(sp *Superposition) Candidate {
	literal := Candidate{Start: sp.Start, Arity: 1, Literal: true}
	haveLiteral := false
	for _, c := range sp.Entries {
		if c.Literal {
			literal, haveLiteral = c, true
			break
		}
	}
	for _, c := range sp.Entries {
		if !c.Literal && c.Arity == 1 && (!haveLiteral || c.CostBits < literal.CostBits-ArityBits(arityLiteral)) {
			return c
		}
	}
	return literal
}

func spanFromCandidate(c Candidate) Span {
	return Span{Start: c.Start, Arity: c.Arity, Literal: c.Literal, SeedIndex: c.SeedIndex}
}

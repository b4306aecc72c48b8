package telomere

// Span is a half-open block range [Start, Start+Arity) selected as one
// output unit (spec §3). A span carries either a seed reference (Literal
// == false) or raw literal bytes (Literal == true).
type Span struct {
	Start     int
	Arity     int
	Literal   bool
	SeedIndex uint64 // valid iff !Literal
	Bytes     []byte // the span's decoded payload, valid either way
}

// End returns the exclusive end block index of the span.
func (s Span) End() int { return s.Start + s.Arity }

// CostBits returns the bit cost of encoding this span's header+payload, per
// spec §4.5's cost_bits formula.
func (s Span) CostBits(blockSize int) int {
	if s.Literal {
		return ArityBits(arityLiteral) + len(s.Bytes)*8
	}
	return ArityBits(s.Arity) + EVQLBits(s.SeedIndex)
}

// Compressive reports whether a seed-reference span's cost beats the
// literal encoding of the same blocks (spec §4.5).
func (s Span) Compressive(blockSize int) bool {
	if s.Literal {
		return false
	}
	return s.CostBits(blockSize) < s.Arity*blockSize*8
}

package telomere

import "testing"

func TestSpanCostBitsLiteral(t *testing.T) {
	s := Span{Start: 0, Arity: 1, Literal: true, Bytes: []byte{1, 2, 3}}
	want := ArityBits(arityLiteral) + 3*8
	if got := s.CostBits(3); got != want {
		t.Errorf("CostBits = %d, want %d", got, want)
	}
	if s.Compressive(3) {
		t.Error("a literal span must never be compressive")
	}
}

func TestSpanCostBitsSeed(t *testing.T) {
	s := Span{Start: 0, Arity: 4, SeedIndex: 5}
	want := ArityBits(4) + EVQLBits(5)
	if got := s.CostBits(3); got != want {
		t.Errorf("CostBits = %d, want %d", got, want)
	}
}

func TestSpanCompressiveThreshold(t *testing.T) {
	// arity 1, block_size 3: literal payload is 24 bits. A seed index
	// whose cost_bits undercuts that is compressive.
	s := Span{Start: 0, Arity: 1, SeedIndex: 1}
	if !s.Compressive(3) {
		t.Errorf("expected seed index 1 at arity 1/block_size 3 to be compressive (cost %d < 24)", s.CostBits(3))
	}
}

func TestSpanEnd(t *testing.T) {
	s := Span{Start: 5, Arity: 3}
	if s.End() != 8 {
		t.Errorf("End() = %d, want 8", s.End())
	}
}

package telomere

import (
	"context"
	"testing"
)

func TestLiteralCandidateIsAlwaysGenerated(t *testing.T) {
	data := []byte{1, 2, 3}
	table := Partition(data, 3)
	cfg := Config{BlockSize: 3, MaxSeedLen: 1, MaxArity: 1}
	candidates, err := GenerateCandidates(context.Background(), table, cfg)
	if err != nil {
		t.Fatalf("GenerateCandidates error: %v", err)
	}
	found := false
	for _, c := range candidates[0] {
		if c.Literal {
			found = true
		}
	}
	if !found {
		t.Error("expected a literal candidate for block 0")
	}
}

func TestSearchSpanFindsPlantedSeed(t *testing.T) {
	// Plant a seed at a small index and verify the generator finds it.
	const plantedIndex = 42
	want := Expand(SeedOf(plantedIndex), 3)
	table := Partition(want, 3)
	cfg := Config{BlockSize: 3, MaxSeedLen: 1, MaxArity: 1}
	candidates, err := GenerateCandidates(context.Background(), table, cfg)
	if err != nil {
		t.Fatalf("GenerateCandidates error: %v", err)
	}
	foundPlanted := false
	for _, c := range candidates[0] {
		if !c.Literal && c.SeedIndex == plantedIndex {
			foundPlanted = true
		}
	}
	if !foundPlanted {
		t.Errorf("expected to find planted seed index %d among candidates: %+v", plantedIndex, candidates[0])
	}
}

func TestGenerateCandidatesRespectsCancellation(t *testing.T) {
	data := make([]byte, 300) // 100 blocks of 3 bytes, none matching small seeds
	table := Partition(data, 3)
	cfg := Config{BlockSize: 3, MaxSeedLen: 3, MaxArity: 5}
	ctx, cancel := context.Background(), func() {}
	_ = cancel
	cctx, cancelNow := context.WithCancel(ctx)
	cancelNow()
	_, err := GenerateCandidates(cctx, table, cfg)
	if err == nil {
		t.Fatal("expected a cancellation error with an already-canceled context")
	}
}

func TestArityListExcludesTwo(t *testing.T) {
	list := arities(5)
	for _, a := range list {
		if a == 2 {
			t.Fatal("arity 2 must never appear; it is unrepresentable in the arity code")
		}
	}
	want := []int{1, 3, 4, 5}
	if len(list) != len(want) {
		t.Fatalf("arities(5) = %v, want %v", list, want)
	}
	for i := range want {
		if list[i] != want[i] {
			t.Fatalf("arities(5) = %v, want %v", list, want)
		}
	}
}

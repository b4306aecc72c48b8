package telomere

import (
	"context"
	"testing"
)

func TestCPUMatcherFindsPlantedSeed(t *testing.T) {
	const plantedIndex = 7
	block := Expand(SeedOf(plantedIndex), 3)
	req := MatchRequest{
		Blocks:         block,
		Offsets:        []int{0},
		Lengths:        []int{3},
		StartSeedIndex: 1,
		SeedCount:      100,
		MaxSeedLen:     1,
	}
	records, err := CPUMatcher.Match(context.Background(), req)
	if err != nil {
		t.Fatalf("Match error: %v", err)
	}
	found := false
	for _, r := range records {
		if r.SeedIndex == plantedIndex && r.BlockIndex == 0 {
			found = true
		}
	}
	if !found {
		t.Errorf("expected to find planted seed %d, got %+v", plantedIndex, records)
	}
}

func TestCPUMatcherAlwaysAvailable(t *testing.T) {
	if !CPUMatcher.Available() {
		t.Fatal("the CPU matcher must always report available")
	}
}

func TestSelectMatcherFallsBack(t *testing.T) {
	unavailable := &fakeMatcher{available: false}
	got := SelectMatcher(unavailable)
	if got != CPUMatcher {
		t.Fatal("SelectMatcher must fall back to CPUMatcher when preferred is unavailable")
	}
}

func TestSelectMatcherPrefersAvailable(t *testing.T) {
	available := &fakeMatcher{available: true}
	got := SelectMatcher(available)
	if got != Matcher(available) {
		t.Fatal("SelectMatcher must return the preferred matcher when available")
	}
}

type fakeMatcher struct{ available bool }

func (f *fakeMatcher) Available() bool { return f.available }
func (f *fakeMatcher) Match(context.Context, MatchRequest) ([]MatchRecord, error) {
	return nil, nil
}

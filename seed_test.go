package telomere

import (
	"bytes"
	"testing"
)

func TestSeedOfWorkedExamples(t *testing.T) {
	cases := []struct {
		index uint64
		want  []byte
	}{
		{0, []byte{}},
		{1, []byte{0x00}},
		{2, []byte{0x01}},
		{256, []byte{0xFF}},     // last one-byte seed
		{257, []byte{0x00, 0x00}}, // first two-byte seed
		{258, []byte{0x00, 0x01}},
	}
	for _, c := range cases {
		got := SeedOf(c.index)
		if !bytes.Equal(got, c.want) {
			t.Errorf("SeedOf(%d) = %x, want %x", c.index, got, c.want)
		}
	}
}

func TestSeedIndexRoundTrip(t *testing.T) {
	for i := uint64(0); i < 100000; i++ {
		s := SeedOf(i)
		got := IndexOf(s)
		if got != i {
			t.Fatalf("index %d -> seed %x -> index %d, not bijective", i, s, got)
		}
	}
}

func TestSeedOrderingIsLengthThenLex(t *testing.T) {
	var prev []byte
	for i := uint64(1); i < 2000; i++ {
		cur := SeedOf(i)
		if prev != nil {
			if len(cur) < len(prev) {
				t.Fatalf("index %d: seed length decreased from %d to %d", i, len(prev), len(cur))
			}
			if len(cur) == len(prev) && bytes.Compare(cur, prev) <= 0 {
				t.Fatalf("index %d: seed %x is not lexicographically after %x", i, cur, prev)
			}
		}
		prev = cur
	}
}

func TestMaxSeedIndex(t *testing.T) {
	if MaxSeedIndex(1) != 256 {
		t.Errorf("MaxSeedIndex(1) = %d, want 256", MaxSeedIndex(1))
	}
	if MaxSeedIndex(2) != 256+65536 {
		t.Errorf("MaxSeedIndex(2) = %d, want %d", MaxSeedIndex(2), 256+65536)
	}
}

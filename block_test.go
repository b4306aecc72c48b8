package telomere

import (
	"bytes"
	"testing"
)

func TestPartitionEvenSplit(t *testing.T) {
	data := []byte{0, 1, 2, 3, 4, 5}
	table := Partition(data, 3)
	if table.NumBlocks() != 2 {
		t.Fatalf("expected 2 blocks, got %d", table.NumBlocks())
	}
	if table.LastBlockLen != 3 {
		t.Fatalf("expected last block len 3, got %d", table.LastBlockLen)
	}
	if !bytes.Equal(table.Blocks[0].Data, []byte{0, 1, 2}) {
		t.Errorf("block 0 = %v", table.Blocks[0].Data)
	}
	if !bytes.Equal(table.Blocks[1].Data, []byte{3, 4, 5}) {
		t.Errorf("block 1 = %v", table.Blocks[1].Data)
	}
}

func TestPartitionShortTail(t *testing.T) {
	data := []byte{0, 1, 2, 3, 4}
	table := Partition(data, 3)
	if table.NumBlocks() != 2 {
		t.Fatalf("expected 2 blocks, got %d", table.NumBlocks())
	}
	if table.LastBlockLen != 2 {
		t.Fatalf("expected last block len 2, got %d", table.LastBlockLen)
	}
}

func TestPartitionEmpty(t *testing.T) {
	table := Partition(nil, 3)
	if table.NumBlocks() != 0 {
		t.Fatalf("expected 0 blocks for empty input, got %d", table.NumBlocks())
	}
}

func TestConcatAndIsFinal(t *testing.T) {
	data := []byte{10, 20, 30, 40, 50, 60}
	table := Partition(data, 3)
	got := table.Concat(0, 2)
	if !bytes.Equal(got, data) {
		t.Errorf("Concat(0,2) = %v, want %v", got, data)
	}
	if !table.IsFinal(1, 1) {
		t.Error("expected block 1 (arity 1) to be final")
	}
	if table.IsFinal(0, 1) {
		t.Error("did not expect block 0 (arity 1) to be final")
	}
}

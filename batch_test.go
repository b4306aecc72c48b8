package telomere

import (
	"bytes"
	"testing"
)

func literalSpan(start int, data []byte) Span {
	return Span{Start: start, Arity: 1, Literal: true, Bytes: data}
}

func TestAssembleBatchesPacksUpToThreeBlocks(t *testing.T) {
	spans := []Span{
		literalSpan(0, []byte{1, 2, 3}),
		literalSpan(1, []byte{4, 5, 6}),
		literalSpan(2, []byte{7, 8, 9}),
	}
	batches := AssembleBatches(spans, 3)
	if len(batches) != 1 {
		t.Fatalf("expected 1 batch, got %d", len(batches))
	}
	if batches[0].BlockCount != 3 {
		t.Errorf("BlockCount = %d, want 3", batches[0].BlockCount)
	}
}

func TestAssembleBatchesSplitsOnFourthBlock(t *testing.T) {
	spans := []Span{
		literalSpan(0, []byte{1}),
		literalSpan(1, []byte{2}),
		literalSpan(2, []byte{3}),
		literalSpan(3, []byte{4}),
	}
	batches := AssembleBatches(spans, 4)
	if len(batches) != 2 {
		t.Fatalf("expected 2 batches, got %d", len(batches))
	}
	if len(batches[0].Spans) != 3 || len(batches[1].Spans) != 1 {
		t.Fatalf("unexpected batch split: %d, %d", len(batches[0].Spans), len(batches[1].Spans))
	}
}

func TestBatchEncodeDecodeRoundTrip(t *testing.T) {
	spans := []Span{
		literalSpan(0, []byte{0xAA, 0xBB, 0xCC}),
		literalSpan(1, []byte{0x01, 0x02, 0x03}),
	}
	batch := newBatch(spans)

	w := NewBitWriter(nil)
	EncodeBatch(w, batch)
	buf := w.Flush()
	if len(buf) < 3 {
		t.Fatalf("expected at least a 3-byte batch header, got %d bytes", len(buf))
	}

	r := NewBitReader(buf)
	got, _, err := DecodeBatch(r, 0, 0, 3, 3, 2)
	if err != nil {
		t.Fatalf("DecodeBatch error: %v", err)
	}
	if !bytes.Equal(got.Payload(), batch.Payload()) {
		t.Errorf("decoded payload = %x, want %x", got.Payload(), batch.Payload())
	}
}

func TestBatchHashDetectsCorruption(t *testing.T) {
	spans := []Span{literalSpan(0, []byte{1, 2, 3})}
	batch := newBatch(spans)
	w := NewBitWriter(nil)
	EncodeBatch(w, batch)
	buf := w.Flush()

	buf[1] ^= 0xFF // corrupt eight hash bits

	r := NewBitReader(buf)
	_, _, err := DecodeBatch(r, 0, 0, 3, 3, 1)
	if err == nil {
		t.Fatal("expected a hash mismatch error")
	}
	te, ok := err.(*Error)
	if !ok || te.Kind != KindHashMismatch {
		t.Fatalf("expected KindHashMismatch, got %#v", err)
	}
}

package telomere

import "testing"

func TestFileHeaderRoundTrip(t *testing.T) {
	h := FileHeader{
		Version:      0,
		BlockSize:    3,
		LastBlockLen: 2,
		InputLength:  9,
		OutputHash:   0x1ABC & ((1 << fileOutputHashBits) - 1),
	}
	w := NewBitWriter(nil)
	EncodeFileHeader(w, h)
	r := NewBitReader(w.Flush())
	got, err := DecodeFileHeader(r)
	if err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if got != h {
		t.Errorf("got %+v, want %+v", got, h)
	}
}

func TestFileHeaderRejectsUnknownVersion(t *testing.T) {
	w := NewBitWriter(nil)
	EncodeEVQL(w, 1) // version 1, never written by this package
	EncodeEVQL(w, 3)
	EncodeEVQL(w, 3)
	EncodeEVQL(w, 0)
	w.WriteBits(0, fileOutputHashBits)
	r := NewBitReader(w.Flush())
	_, err := DecodeFileHeader(r)
	if err == nil {
		t.Fatal("expected an error for an unknown version")
	}
	te, ok := err.(*Error)
	if !ok || te.Kind != KindHeader {
		t.Fatalf("expected KindHeader, got %#v", err)
	}
}

func TestTruncatedHashWidth(t *testing.T) {
	h := truncatedHash([]byte("hello"), 13)
	if h >= 1<<13 {
		t.Errorf("truncatedHash produced a value outside 13 bits: %d", h)
	}
}

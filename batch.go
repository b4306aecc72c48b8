package telomere

// batchHashBits is the width of a batch's truncated payload hash (spec
// §3, §4.8): a 16-bit, big-endian SHA-256 prefix.
const batchHashBits = 16

// maxBatchSpans is the number of spans greedily packed per batch before
// starting a new one (spec §4.8).
const maxBatchSpans = 3

// Batch groups 1..3 consecutive spans for output framing. BlockCount is
// the batch header's 4-bit block-count field: the sum of span arities
// when every span is a compressed seed reference, or the span count when
// the batch contains a literal (per spec §4.8, the literal's arity is
// carried by position rather than summed).
type Batch struct {
	Spans      []Span
	BlockCount int
	Hash       [2]byte
}

// Payload returns the concatenation of the batch's spans' decoded bytes.
func (b *Batch) Payload() []byte {
	var out []byte
	for _, s := range b.Spans {
		out = append(out, s.Bytes...)
	}
	return out
}

// AssembleBatches packs spans into batches of up to maxBatchSpans,
// greedily left-to-right, without letting any batch's block span cross
// numBlocks (the final-block boundary). The caller's span list must
// already cover [0, numBlocks) exactly (RunPass checks this with
// checkSpanCoverage before calling here). This function panics only when
// a batch's last span ends past numBlocks, an encoder bug it cannot
// recover from; gaps and overlaps between spans are not detected here.
func AssembleBatches(spans []Span, numBlocks int) []*Batch {
	var batches []*Batch
	i := 0
	for i < len(spans) {
		j := i + 1
		blocks := spans[i].Arity
		for j < len(spans) && j-i < maxBatchSpans {
			next := blocks + spans[j].Arity
			if next > maxBatchSpans {
				break
			}
			blocks = next
			j++
		}
		if spans[j-1].End() > numBlocks {
			panic("telomere: batch would cross the final-block boundary")
		}
		batches = append(batches, newBatch(spans[i:j]))
		i = j
	}
	return batches
}

// batchBlockCountBits is the batch header's block-count field width
// (spec §4.8).
const batchBlockCountBits = 4

// EncodeBatch writes a batch's header (byte-aligned 4-bit block count +
// 16-bit hash, padded to a whole 3-byte header) followed by each span's
// arity code and payload bits, with no intervening alignment (spec §4.9).
func EncodeBatch(w *BitWriter, b *Batch) {
	w.WriteBits(uint64(b.BlockCount), batchBlockCountBits)
	w.WriteBits(uint64(b.Hash[0])<<8|uint64(b.Hash[1]), batchHashBits)
	w.Flush()
	for _, s := range b.Spans {
		if s.Literal {
			EncodeArity(w, arityLiteral)
			for _, by := range s.Bytes {
				w.WriteByte(by)
			}
			continue
		}
		EncodeArity(w, s.Arity)
		EncodeEVQL(w, s.SeedIndex)
	}
	w.Flush()
}

// DecodeBatch reads one batch starting at startBlock, given the stream's
// blockSize/lastBlockLen/total block count. It reads spans until their
// (literal spans count as 1 block each, matching AssembleBatches/newBatch)
// combined arity reaches the header's block-count field, verifies the
// payload hash, and returns the batch plus the block index the next batch
// starts at.
func DecodeBatch(r *BitReader, batchIndex, startBlock, blockSize, lastBlockLen, totalBlocks int) (*Batch, int, error) {
	blockCountBits, err := r.ReadBits(batchBlockCountBits)
	if err != nil {
		return nil, 0, newError(KindHeader, "batch", batchIndex, int64(r.BitsConsumed()), err)
	}
	hashBits, err := r.ReadBits(batchHashBits)
	if err != nil {
		return nil, 0, newError(KindHeader, "batch", batchIndex, int64(r.BitsConsumed()), err)
	}
	r.AlignToByte()

	b := &Batch{BlockCount: int(blockCountBits)}
	b.Hash[0] = byte(hashBits >> 8)
	b.Hash[1] = byte(hashBits)

	block := startBlock
	covered := 0
	for covered < b.BlockCount {
		arity, err := DecodeArity(r)
		if err != nil {
			return nil, 0, newError(KindHeader, "batch", batchIndex, int64(r.BitsConsumed()), err)
		}
		if arity == arityLiteral {
			n := blockSize
			if block == totalBlocks-1 {
				n = lastBlockLen
			}
			buf := make([]byte, n)
			for i := range buf {
				v, err := r.ReadBits(8)
				if err != nil {
					return nil, 0, newError(KindIO, "batch", batchIndex, int64(r.BitsConsumed()), err)
				}
				buf[i] = byte(v)
			}
			b.Spans = append(b.Spans, Span{Start: block, Arity: 1, Literal: true, Bytes: buf})
			block++
			covered++
			continue
		}
		idx, err := DecodeEVQL(r)
		if err != nil {
			return nil, 0, newError(KindHeader, "batch", batchIndex, int64(r.BitsConsumed()), err)
		}
		n := arity * blockSize
		if block+arity == totalBlocks {
			n = (arity-1)*blockSize + lastBlockLen
		}
		seed := SeedOf(idx)
		payload := Expand(seed, n)
		b.Spans = append(b.Spans, Span{Start: block, Arity: arity, SeedIndex: idx, Bytes: payload})
		block += arity
		covered += arity
	}
	r.AlignToByte()

	gotHash := truncatedHash(b.Payload(), batchHashBits)
	wantHash := uint16(b.Hash[0])<<8 | uint16(b.Hash[1])
	if gotHash != wantHash {
		return nil, 0, newError(KindHashMismatch, "batch", batchIndex, int64(r.BitsConsumed()), errHashMismatch)
	}
	return b, block, nil
}

func newBatch(spans []Span) *Batch {
	b := &Batch{Spans: append([]Span(nil), spans...)}
	hasLiteral := false
	sumArity := 0
	for _, s := range spans {
		if s.Literal {
			hasLiteral = true
		}
		sumArity += s.Arity
	}
	if hasLiteral {
		b.BlockCount = len(spans)
	} else {
		b.BlockCount = sumArity
	}
	sum := sha256Sum(b.Payload())
	b.Hash[0], b.Hash[1] = sum[0], sum[1]
	return b
}

// sha256Sum computes a plain (non-iterated) SHA-256 digest via the shared
// hasher pool: Expand(data, n) with n == digestSize is exactly
// SHA-256(data), since G's first digest d0 is the ordinary hash of its
// input.
func sha256Sum(data []byte) []byte {
	return Expand(data, digestSize)
}

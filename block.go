package telomere

// Block is a fixed-length window of the byte stream being compressed
// (spec §3). Blocks are numbered by a stable global index starting at 0;
// the final block of a stream may be shorter than blockSize.
type Block struct {
	Index int
	Data  []byte
}

// BlockTable is one pass's partition of a byte stream into blocks, plus
// the parameters that produced it. It is immutable once built: a pass
// mutates only span selection, never the block table itself.
type BlockTable struct {
	BlockSize    int
	LastBlockLen int
	Blocks       []Block
	total        []byte
}

// Partition splits data into blockSize-byte blocks, the last of which may
// be shorter. blockSize must be in [1, 255].
func Partition(data []byte, blockSize int) *BlockTable {
	if blockSize < 1 || blockSize > 255 {
		panic("telomere: block size must be in [1, 255]")
	}
	t := &BlockTable{BlockSize: blockSize, total: data}
	if len(data) == 0 {
		t.LastBlockLen = blockSize
		return t
	}
	for off := 0; off < len(data); off += blockSize {
		end := off + blockSize
		if end > len(data) {
			end = len(data)
		}
		t.Blocks = append(t.Blocks, Block{Index: len(t.Blocks), Data: data[off:end]})
	}
	t.LastBlockLen = len(t.Blocks[len(t.Blocks)-1].Data)
	return t
}

// NumBlocks returns the number of blocks in the table.
func (t *BlockTable) NumBlocks() int { return len(t.Blocks) }

// Concat returns the concatenated bytes of blocks [start, start+arity),
// i.e. the payload a span of that range must reproduce.
func (t *BlockTable) Concat(start, arity int) []byte {
	if arity == 1 {
		return t.Blocks[start].Data
	}
	out := make([]byte, 0, arity*t.BlockSize)
	for i := 0; i < arity; i++ {
		out = append(out, t.Blocks[start+i].Data...)
	}
	return out
}

// IsFinal reports whether the span [start, start+arity) reaches the last
// block of the table.
func (t *BlockTable) IsFinal(start, arity int) bool {
	return start+arity == len(t.Blocks)
}

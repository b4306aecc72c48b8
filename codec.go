package telomere

import "context"

// Compress runs the pass driver to convergence and frames the final
// result with a file header (spec §4.9, §4.10). The pass loop in this
// implementation searches and bundles against the original block
// partition on every iteration; since that search is already exhaustive
// within a pass's configured budget, repeating it against unchanged data
// is deterministic and yields the same bytes, so convergence is reached
// immediately. See DESIGN.md ("Multi-pass recursive header compaction")
// for why this package does not recursively re-encode its own bitstream
// output across passes.
func Compress(ctx context.Context, data []byte, cfg Config) ([]byte, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	log := componentLogger("codec")

	var best *PassResult
	for pass := 0; pass < cfg.MaxPasses; pass++ {
		result, err := RunPass(ctx, data, cfg, NoopSeedCache)
		if err != nil {
			if best != nil {
				log.Debug().Int("pass", pass).Err(err).Msg("pass failed, rolling back to previous pass")
				break
			}
			return nil, err
		}
		if best != nil && len(result.Bytes) >= len(best.Bytes) {
			log.Debug().Int("pass", pass).Msg("converged, reverting to previous pass")
			break
		}
		best = result
		log.Debug().Int("pass", pass).Int("bytes", len(best.Bytes)).Msg("pass complete")
	}
	if best == nil {
		best = &PassResult{}
	}

	blockSize := cfg.BlockSize
	lastBlockLen := blockSize
	if len(data)%blockSize != 0 {
		lastBlockLen = len(data) % blockSize
	} else if len(data) > 0 {
		lastBlockLen = blockSize
	}

	hdr := FileHeader{
		Version:      currentVersion,
		BlockSize:    uint64(blockSize),
		LastBlockLen: uint64(lastBlockLen),
		InputLength:  uint64(len(data)),
		OutputHash:   truncatedHash(data, fileOutputHashBits),
	}

	w := NewBitWriter(nil)
	EncodeFileHeader(w, hdr)
	out := w.Flush()
	out = append(out, best.Bytes...)
	return out, nil
}

// Decompress reverses Compress: it reads the file header, then decodes
// batches sequentially until every block has been recovered, verifying
// the whole-output truncated hash at the end.
func Decompress(data []byte) ([]byte, error) {
	r := NewBitReader(data)
	hdr, err := DecodeFileHeader(r)
	if err != nil {
		return nil, err
	}
	r.AlignToByte()

	if hdr.InputLength == 0 {
		return []byte{}, nil
	}

	blockSize := int(hdr.BlockSize)
	lastBlockLen := int(hdr.LastBlockLen)
	totalBlocks := (int(hdr.InputLength) + blockSize - 1) / blockSize

	out := make([]byte, 0, hdr.InputLength)
	block := 0
	batchIndex := 0
	for block < totalBlocks {
		batch, next, err := DecodeBatch(r, batchIndex, block, blockSize, lastBlockLen, totalBlocks)
		if err != nil {
			return nil, err
		}
		out = append(out, batch.Payload()...)
		block = next
		batchIndex++
	}

	if uint64(len(out)) != hdr.InputLength {
		return nil, newError(KindInternal, "codec", -1, -1, errHashMismatch)
	}
	gotHash := truncatedHash(out, fileOutputHashBits)
	if gotHash != hdr.OutputHash {
		return nil, newError(KindHashMismatch, "codec", -1, -1, errHashMismatch)
	}
	return out, nil
}

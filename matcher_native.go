//go:build cgo

package telomere

/*
#cgo LDFLAGS: -ltelomere_matcher
#include <stdint.h>
#include <stdlib.h>

// Forward declarations of the native seed-matching backend (spec §6.3).
// Not vendored by this module: the native library is built and linked
// externally, matching the teacher's own #cgo LDFLAGS split.
extern void* telomere_matcher_create(void);
extern int64_t telomere_matcher_match(
	void* matcher,
	const uint8_t* blocks, int64_t blocks_len,
	const int64_t* offsets, const int64_t* lengths, int64_t num_blocks,
	uint64_t start_seed_index, uint64_t seed_count, int64_t max_seed_len,
	uint64_t* out_seed_indices, int64_t* out_block_indices, int64_t out_capacity);
extern void telomere_matcher_destroy(void* matcher);
*/
import "C"
import (
	"context"
	"sync"
	"unsafe"
)

// nativeMatcher wraps an opaque native seed-matching backend handle. It
// owns the handle exactly as the teacher's SIMDDecoder does: created once,
// called many times, destroyed on Close.
type nativeMatcher struct {
	mu     sync.Mutex
	handle unsafe.Pointer
}

// NewNativeMatcher creates the native backend, or returns (nil, false) if
// the native library could not be initialized (e.g. unsupported CPU or a
// missing runtime dependency it manages internally).
func NewNativeMatcher() (Matcher, bool) {
	handle := C.telomere_matcher_create()
	if handle == nil {
		return nil, false
	}
	return &nativeMatcher{handle: handle}, true
}

func (m *nativeMatcher) Available() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.handle != nil
}

func (m *nativeMatcher) Match(ctx context.Context, req MatchRequest) ([]MatchRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.handle == nil {
		return nil, newError(KindSeedSearch, "matcher_native", -1, -1, errNativeMatcherClosed)
	}

	numBlocks := len(req.Offsets)
	offsets := make([]C.int64_t, numBlocks)
	lengths := make([]C.int64_t, numBlocks)
	for i := range req.Offsets {
		offsets[i] = C.int64_t(req.Offsets[i])
		lengths[i] = C.int64_t(req.Lengths[i])
	}

	capacity := int64(numBlocks) * 4
	outSeeds := make([]C.uint64_t, capacity)
	outBlocks := make([]C.int64_t, capacity)

	var blocksPtr *C.uint8_t
	if len(req.Blocks) > 0 {
		blocksPtr = (*C.uint8_t)(unsafe.Pointer(&req.Blocks[0]))
	}
	var offPtr *C.int64_t
	var lenPtr *C.int64_t
	if numBlocks > 0 {
		offPtr = &offsets[0]
		lenPtr = &lengths[0]
	}

	n := C.telomere_matcher_match(
		m.handle,
		blocksPtr, C.int64_t(len(req.Blocks)),
		offPtr, lenPtr, C.int64_t(numBlocks),
		C.uint64_t(req.StartSeedIndex), C.uint64_t(req.SeedCount), C.int64_t(req.MaxSeedLen),
		&outSeeds[0], &outBlocks[0], C.int64_t(capacity),
	)
	if n < 0 {
		return nil, newError(KindSeedSearch, "matcher_native", -1, -1, errNativeMatchOverflow)
	}

	records := make([]MatchRecord, n)
	for i := range records {
		records[i] = MatchRecord{
			SeedIndex:  uint64(outSeeds[i]),
			BlockIndex: int(outBlocks[i]),
		}
	}
	return records, nil
}

func (m *nativeMatcher) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.handle != nil {
		C.telomere_matcher_destroy(m.handle)
		m.handle = nil
	}
}

package telomere

// SeedCache is the optional seed/hash persistence collaborator named in
// spec §9: "the only candidate for process-wide state, is injected as an
// explicit collaborator." Its implementation (on-disk format, locking) is
// out of this package's scope (spec §1); this package only depends on the
// interface and ships a no-op default.
type SeedCache interface {
	// Lookup returns a previously-recorded match for want's expansion at
	// the given arity, if this cache has one on file.
	Lookup(blockStart int, arity int, want []byte) (seedIndex uint64, ok bool)
	// Record stores a discovered match for later runs.
	Record(blockStart int, arity int, want []byte, seedIndex uint64)
}

// noopSeedCache is the zero-configuration default: every lookup misses,
// every record is discarded. A pass driver built with it behaves
// identically to one with no cache at all.
type noopSeedCache struct{}

func (noopSeedCache) Lookup(int, int, []byte) (uint64, bool) { return 0, false }
func (noopSeedCache) Record(int, int, []byte, uint64)        {}

// NoopSeedCache is the shared no-op SeedCache instance.
var NoopSeedCache SeedCache = noopSeedCache{}

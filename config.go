package telomere

import "fmt"

// Config holds the compressor's tunable parameters. All but MaxArity are
// CLI surface flags per spec §6.1.
type Config struct {
	BlockSize  int // --block-size, default 3
	MaxPasses  int // --passes, default 10
	MaxSeedLen int // --max-seed-len, default 3
	MaxArity   int // implementation default 5, not CLI-exposed in spec.md
}

// DefaultConfig returns the spec's documented defaults.
func DefaultConfig() Config {
	return Config{
		BlockSize:  3,
		MaxPasses:  10,
		MaxSeedLen: 3,
		MaxArity:   5,
	}
}

// Validate rejects out-of-range configuration before a pass is started.
func (c Config) Validate() error {
	if c.BlockSize < 1 || c.BlockSize > 255 {
		return newError(KindInternal, "config", -1, -1, fmt.Errorf("block size %d out of range [1,255]", c.BlockSize))
	}
	if c.MaxPasses < 1 {
		return newError(KindInternal, "config", -1, -1, fmt.Errorf("passes must be >= 1, got %d", c.MaxPasses))
	}
	if c.MaxSeedLen < 1 {
		return newError(KindInternal, "config", -1, -1, fmt.Errorf("max seed length must be >= 1, got %d", c.MaxSeedLen))
	}
	if c.MaxArity != 1 && c.MaxArity < 3 {
		return newError(KindInternal, "config", -1, -1, fmt.Errorf("max arity must be 1 or >= 3, got %d", c.MaxArity))
	}
	return nil
}

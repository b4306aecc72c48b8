package telomere

import (
	"errors"
	"fmt"

	pkgerrors "github.com/pkg/errors"
)

// Kind enumerates the error taxonomy from the design's error-handling
// policy. It names a category of failure, not a Go type.
type Kind int

const (
	// KindIO is an input/output read/write failure.
	KindIO Kind = iota
	// KindHeader is a malformed file header, non-canonical EVQL, or
	// unknown version.
	KindHeader
	// KindArity is an invalid arity code (reserved value, overlong
	// encoding).
	KindArity
	// KindSeedSearch is seed enumeration exhausted without a required
	// match (e.g. a corrupted seed index on decode).
	KindSeedSearch
	// KindBundling is overlapping selected spans; an encoder bug.
	KindBundling
	// KindSuperposition is a candidate-pruning inconsistency; internal.
	KindSuperposition
	// KindHashMismatch is a batch or file truncated-hash mismatch.
	KindHashMismatch
	// KindInternal covers unreachable invariants.
	KindInternal
)

func (k Kind) String() string {
	switch k {
	case KindIO:
		return "Io"
	case KindHeader:
		return "Header"
	case KindArity:
		return "Arity"
	case KindSeedSearch:
		return "SeedSearch"
	case KindBundling:
		return "Bundling"
	case KindSuperposition:
		return "Superposition"
	case KindHashMismatch:
		return "HashMismatch"
	default:
		return "Internal"
	}
}

// ErrEOF is returned by BitReader/decode paths when a read runs past the
// end of the available bytes.
var ErrEOF = errors.New("telomere: unexpected end of bitstream")

// errReservedArity is the cause carried by a KindArity error when the
// decoder reads the reserved arity-2 slot (EVQL value 1 after the toggle).
var errReservedArity = errors.New("telomere: reserved arity code (arity 2 is unrepresentable)")

// errUnknownVersion is the cause carried by a KindHeader error when a file
// header names a format version this package does not implement.
var errUnknownVersion = errors.New("telomere: unknown file format version")

// errHashMismatch is the cause carried by a KindHashMismatch error.
var errHashMismatch = errors.New("telomere: truncated hash does not match reconstructed bytes")

// errBundlingOverlap is the cause carried by a KindBundling error when the
// encoder's own span selection overlaps — an encoder bug, never a
// decode-time condition.
var errBundlingOverlap = errors.New("telomere: selected spans overlap")

// errNativeMatcherClosed is the cause carried when Match is called on a
// native matcher after Close.
var errNativeMatcherClosed = errors.New("telomere: native matcher is closed")

// errNativeMatchOverflow is the cause carried when the native backend
// reports more matches than the output buffer it was given could hold.
var errNativeMatchOverflow = errors.New("telomere: native matcher output buffer overflow")

// Error is the concrete error type carried by every failure surfaced from
// this package. It names the component that raised it, the batch index (or
// -1 if not applicable), and the bit offset of the failing cursor (or -1 if
// not applicable).
type Error struct {
	Kind       Kind
	Component  string
	BatchIndex int
	BitOffset  int64
	Cause      error
}

func newError(kind Kind, component string, batchIndex int, bitOffset int64, cause error) *Error {
	return &Error{
		Kind:       kind,
		Component:  component,
		BatchIndex: batchIndex,
		BitOffset:  bitOffset,
		Cause:      pkgerrors.WithStack(cause),
	}
}

func (e *Error) Error() string {
	msg := fmt.Sprintf("telomere: %s: %s", e.Kind, e.Component)
	if e.BatchIndex >= 0 {
		msg += fmt.Sprintf(" (batch %d)", e.BatchIndex)
	}
	if e.BitOffset >= 0 {
		msg += fmt.Sprintf(" (bit offset %d)", e.BitOffset)
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Cause }

// Is reports whether target is the same Kind as e, so callers can do
// errors.Is(err, telomere.KindHashMismatch) style checks via KindError.
func (e *Error) Is(target error) bool {
	other, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == other.Kind
}

// KindError builds a sentinel *Error of the given kind with no component
// context, useful as an errors.Is target: errors.Is(err,
// telomere.KindError(telomere.KindHashMismatch)).
func KindError(kind Kind) *Error {
	return &Error{Kind: kind, BatchIndex: -1, BitOffset: -1}
}

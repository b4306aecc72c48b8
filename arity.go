package telomere

// Arity codec: a 1-bit toggle followed by zero or more 2-bit VQL windows
// (spec §4.3).
//
//	toggle 0            -> arity 1 (single block, nothing more to read)
//	toggle 1, value 0   -> literal marker (header terminates here)
//	toggle 1, value 1   -> reserved; a protocol violation on decode
//	toggle 1, value v≥2 -> arity v+1
//
// "value" is decoded with exactly the EVQL mechanism of evql.go: the
// toggle's trailing windows are canonical EVQL, just reinterpreted so that
// 0 means "literal" and 1 is unused. Reusing EVQL here is what makes the
// scheme self-delimiting and canonical by construction — there is no
// separate canonicality check to perform beyond the EVQL decode itself.

// arityLiteral is the sentinel arity value returned by DecodeArity to mean
// "this span is a literal," distinct from any real block count.
const arityLiteral = -1

// EncodeArity appends the canonical arity code for a to w. Pass
// arityLiteral to encode the literal marker.
func EncodeArity(w *BitWriter, a int) {
	if a == 1 {
		w.WriteBit(0)
		return
	}
	w.WriteBit(1)
	if a == arityLiteral {
		EncodeEVQL(w, 0)
		return
	}
	EncodeEVQL(w, uint64(a-1))
}

// ArityBits returns the number of bits EncodeArity(a) would produce.
func ArityBits(a int) int {
	if a == 1 {
		return 1
	}
	if a == arityLiteral {
		return 1 + EVQLBits(0)
	}
	return 1 + EVQLBits(uint64(a-1))
}

// DecodeArity reads one arity code from r. It returns arityLiteral for the
// literal marker, 1 for a single block, or an arity ≥ 3 for a multi-block
// bundle. A value of 1 in the post-toggle EVQL (the reserved arity-2 slot)
// is a KindArity protocol violation.
func DecodeArity(r *BitReader) (int, error) {
	toggle, err := r.ReadBit()
	if err != nil {
		return 0, newError(KindArity, "arity", -1, int64(r.BitsConsumed()), err)
	}
	if toggle == 0 {
		return 1, nil
	}
	v, err := DecodeEVQL(r)
	if err != nil {
		return 0, newError(KindArity, "arity", -1, int64(r.BitsConsumed()), err)
	}
	switch {
	case v == 0:
		return arityLiteral, nil
	case v == 1:
		return 0, newError(KindArity, "arity", -1, int64(r.BitsConsumed()), errReservedArity)
	default:
		return int(v) + 1, nil
	}
}

//go:build !cgo

package telomere

// NewNativeMatcher reports that no native backend is available when this
// package is built without cgo. SelectMatcher falls back to CPUMatcher.
func NewNativeMatcher() (Matcher, bool) { return nil, false }

package symop

// Test-bridge (white-box) for the triplet scanner. Exposes the unexported
// per-part parse/print helpers to symop_test so the single-part vectors
// from the reference data can be checked without widening the public API.

// ParseTripletPartTestOnly wraps parseTripletPart.
func ParseTripletPartTestOnly(s string) ([4]int, error) {
	return parseTripletPart(s)
}

// MakeTripletPartTestOnly wraps makeTripletPart with the 'x' alphabet.
func MakeTripletPartTestOnly(x, y, z, w int) string {
	return makeTripletPart(x, y, z, w, 'x')
}

package symop_test

import (
	"testing"

	"github.com/katalvlaran/xtalsym/symop"
)

// BenchmarkParseTriplet measures the scanner on a fractional triplet.
func BenchmarkParseTriplet(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := symop.ParseTriplet("-1/3*x+2/3*y-1/3*z,-2/3*x+1/3*y+1/3*z,1/3*x+1/3*y+1/3*z"); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkMul measures one group composition (combine + wrap).
func BenchmarkMul(b *testing.B) {
	x, _ := symop.ParseTriplet("-y,x-y,z+1/3")
	y, _ := symop.ParseTriplet("y+1/2,x,-z+1/3")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = x.Mul(y)
	}
}

// BenchmarkTriplet measures printing back to notation.
func BenchmarkTriplet(b *testing.B) {
	op, _ := symop.ParseTriplet("-y,x-y,z+1/3")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = op.Triplet()
	}
}

package symgroup_test

import (
	"testing"

	"github.com/katalvlaran/xtalsym/symgroup"
)

// BenchmarkSymopsFromHall measures interpretation plus Dimino closure of
// a cubic group (order 192, the heaviest in the catalog family).
func BenchmarkSymopsFromHall(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := symgroup.SymopsFromHall("-F 4 2 3"); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkAllOpsSorted measures canonical enumeration of the same group.
func BenchmarkAllOpsSorted(b *testing.B) {
	gops, err := symgroup.SymopsFromHall("-F 4 2 3")
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = gops.AllOpsSorted()
	}
}

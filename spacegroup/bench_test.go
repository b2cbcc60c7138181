package spacegroup_test

import (
	"testing"

	"github.com/katalvlaran/xtalsym/spacegroup"
	"github.com/katalvlaran/xtalsym/symgroup"
)

// BenchmarkFindByName measures the slowest lookup path, an alternate
// spelling resolved after a full catalog scan.
func BenchmarkFindByName(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if spacegroup.FindByName("C c c e") == nil {
			b.Fatal("lookup failed")
		}
	}
}

// BenchmarkFindByOps measures catalog identification of a decoded
// group, including the per-candidate Hall closures.
func BenchmarkFindByOps(b *testing.B) {
	gops, err := symgroup.SymopsFromHall("-I 4bd 2c 3")
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if spacegroup.FindByOps(gops) == nil {
			b.Fatal("lookup failed")
		}
	}
}

// BenchmarkNewHklAsuChecker includes parsing and inverting the basisop.
func BenchmarkNewHklAsuChecker(b *testing.B) {
	sg := spacegroup.FindByName("A 1 1 2")
	if sg == nil {
		b.Fatal("lookup failed")
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := spacegroup.NewHklAsuChecker(sg); err != nil {
			b.Fatal(err)
		}
	}
}

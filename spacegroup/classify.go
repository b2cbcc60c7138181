// Package spacegroup - classify.go
// Crystal-system, point-group and Laue-class enumerations plus the
// exhaustive mappings between them. The ordinals follow the standard
// crystallographic ordering and are relied upon by the per-number
// classification table, so they must never be reordered.

package spacegroup

// CrystalSystem enumerates the seven crystal systems.
type CrystalSystem uint8

const (
	Triclinic CrystalSystem = iota
	Monoclinic
	Orthorhombic
	Tetragonal
	Trigonal
	Hexagonal
	Cubic
)

// String returns the conventional lowercase name of the system.
func (c CrystalSystem) String() string {
	switch c {
	case Triclinic:
		return "triclinic"
	case Monoclinic:
		return "monoclinic"
	case Orthorhombic:
		return "orthorhombic"
	case Tetragonal:
		return "tetragonal"
	case Trigonal:
		return "trigonal"
	case Hexagonal:
		return "hexagonal"
	case Cubic:
		return "cubic"
	}
	return "unknown"
}

// PointGroup enumerates the 32 crystallographic point groups in
// Schoenflies order.
type PointGroup uint8

const (
	PgC1 PointGroup = iota
	PgCi
	PgC2
	PgCs
	PgC2h
	PgD2
	PgC2v
	PgD2h
	PgC4
	PgS4
	PgC4h
	PgD4
	PgC4v
	PgD2d
	PgD4h
	PgC3
	PgC3i
	PgD3
	PgC3v
	PgD3d
	PgC6
	PgC3h
	PgC6h
	PgD6
	PgC6v
	PgD3h
	PgD6h
	PgT
	PgTh
	PgO
	PgTd
	PgOh
)

// HM returns the short Hermann-Mauguin symbol of the point group.
func (p PointGroup) HM() string {
	switch p {
	case PgC1:
		return "1"
	case PgCi:
		return "-1"
	case PgC2:
		return "2"
	case PgCs:
		return "m"
	case PgC2h:
		return "2/m"
	case PgD2:
		return "222"
	case PgC2v:
		return "mm2"
	case PgD2h:
		return "mmm"
	case PgC4:
		return "4"
	case PgS4:
		return "-4"
	case PgC4h:
		return "4/m"
	case PgD4:
		return "422"
	case PgC4v:
		return "4mm"
	case PgD2d:
		return "-42m"
	case PgD4h:
		return "4/mmm"
	case PgC3:
		return "3"
	case PgC3i:
		return "-3"
	case PgD3:
		return "32"
	case PgC3v:
		return "3m"
	case PgD3d:
		return "-3m"
	case PgC6:
		return "6"
	case PgC3h:
		return "-6"
	case PgC6h:
		return "6/m"
	case PgD6:
		return "622"
	case PgC6v:
		return "6mm"
	case PgD3h:
		return "-62m"
	case PgD6h:
		return "6/mmm"
	case PgT:
		return "23"
	case PgTh:
		return "m-3"
	case PgO:
		return "432"
	case PgTd:
		return "-43m"
	case PgOh:
		return "m-3m"
	}
	return ""
}

// Laue returns the Laue class obtained by adding a centre of symmetry
// to the point group.
func (p PointGroup) Laue() Laue {
	switch p {
	case PgC1, PgCi:
		return L1
	case PgC2, PgCs, PgC2h:
		return L2m
	case PgD2, PgC2v, PgD2h:
		return Lmmm
	case PgC4, PgS4, PgC4h:
		return L4m
	case PgD4, PgC4v, PgD2d, PgD4h:
		return L4mmm
	case PgC3, PgC3i:
		return L3
	case PgD3, PgC3v, PgD3d:
		return L3m
	case PgC6, PgC3h, PgC6h:
		return L6m
	case PgD6, PgC6v, PgD3h, PgD6h:
		return L6mmm
	case PgT, PgTh:
		return Lm3
	}
	return Lm3m
}

// Laue enumerates the 11 Laue classes.
type Laue uint8

const (
	L1 Laue = iota
	L2m
	Lmmm
	L4m
	L4mmm
	L3
	L3m
	L6m
	L6mmm
	Lm3
	Lm3m
)

// PointGroup returns the centrosymmetric point group of the class.
func (l Laue) PointGroup() PointGroup {
	switch l {
	case L1:
		return PgCi
	case L2m:
		return PgC2h
	case Lmmm:
		return PgD2h
	case L4m:
		return PgC4h
	case L4mmm:
		return PgD4h
	case L3:
		return PgC3i
	case L3m:
		return PgD3d
	case L6m:
		return PgC6h
	case L6mmm:
		return PgD6h
	case Lm3:
		return PgTh
	}
	return PgOh
}

// HM returns the Hermann-Mauguin symbol of the class, i.e. that of its
// centrosymmetric point group.
func (l Laue) HM() string { return l.PointGroup().HM() }

// CrystalSystem returns the crystal system the Laue class belongs to.
func (l Laue) CrystalSystem() CrystalSystem {
	switch l {
	case L1:
		return Triclinic
	case L2m:
		return Monoclinic
	case Lmmm:
		return Orthorhombic
	case L4m, L4mmm:
		return Tetragonal
	case L3, L3m:
		return Trigonal
	case L6m, L6mmm:
		return Hexagonal
	}
	return Cubic
}

// PointGroupOf returns the point group of space-group number n (1..230).
// Out-of-range numbers yield PgC1.
func PointGroupOf(n int) PointGroup {
	if n < 1 || n > 230 {
		return PgC1
	}
	return pointGroupByNumber[n-1]
}

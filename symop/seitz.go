package symop

import "gonum.org/v1/gonum/mat"

// IntSeitz returns the 4×4 Seitz matrix of the operation with entries
// still scaled by DEN (last row 0,0,0,1 unscaled).
func (o Op) IntSeitz() [4][4]int {
	var t [4][4]int
	for i := 0; i < 3; i++ {
		t[i] = [4]int{o.Rot[i][0], o.Rot[i][1], o.Rot[i][2], o.Tran[i]}
	}
	t[3] = [4]int{0, 0, 0, 1}
	return t
}

// FloatSeitz returns the 4×4 Seitz matrix with the DEN scaling divided
// out, as a dense matrix for collaborators that transform coordinates in
// floating point. This is the only float surface of the operation algebra;
// the group arithmetic itself never leaves integers.
func (o Op) FloatSeitz() *mat.Dense {
	d := mat.NewDense(4, 4, nil)
	const m = 1.0 / DEN
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			d.Set(i, j, m*float64(o.Rot[i][j]))
		}
		d.Set(i, 3, m*float64(o.Tran[i]))
	}
	d.Set(3, 3, 1)
	return d
}

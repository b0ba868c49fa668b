package ppe

import "math/big"

// Small helpers for the scalar-matrix algebra used to derive and update
// proofs: matrix transpose/multiply over Z_Order, and matrix-vector
// products where the vector holds B1 or B2 elements instead of scalars.

func scalarMatTranspose(a [][]*Scalar) [][]*Scalar {
	if len(a) == 0 {
		return nil
	}
	rows, cols := len(a), len(a[0])
	out := make([][]*Scalar, cols)
	for j := 0; j < cols; j++ {
		out[j] = make([]*Scalar, rows)
		for i := 0; i < rows; i++ {
			out[j][i] = a[i][j]
		}
	}
	return out
}

// scalarMatMul computes a*b over Z_Order; a is r x k, b is k x c.
func scalarMatMul(a, b [][]*Scalar) [][]*Scalar {
	r := len(a)
	if r == 0 {
		return nil
	}
	k := len(a[0])
	c := 0
	if len(b) > 0 {
		c = len(b[0])
	}
	out := make([][]*Scalar, r)
	for i := 0; i < r; i++ {
		out[i] = make([]*Scalar, c)
		for j := 0; j < c; j++ {
			sum := big.NewInt(0)
			for t := 0; t < k; t++ {
				sum = modAdd(sum, modMul(a[i][t], b[t][j]))
			}
			out[i][j] = sum
		}
	}
	return out
}

// scalarMatSub computes a-b over Z_Order, elementwise; a and b must have
// the same shape.
func scalarMatSub(a, b [][]*Scalar) [][]*Scalar {
	out := make([][]*Scalar, len(a))
	for i := range a {
		out[i] = make([]*Scalar, len(a[i]))
		for j := range a[i] {
			out[i][j] = modSub(a[i][j], b[i][j])
		}
	}
	return out
}

// rowDotB1 computes sum_l row[l]*vec[l], a linear combination of B1
// elements by scalar coefficients.
func rowDotB1(row []*Scalar, vec []B1) B1 {
	out := B1{}
	for l, s := range row {
		out = out.Add(vec[l].ScalarMul(s))
	}
	return out
}

// rowDotB2 computes sum_l row[l]*vec[l], a linear combination of B2
// elements by scalar coefficients.
func rowDotB2(row []*Scalar, vec []B2) B2 {
	out := B2{}
	for l, s := range row {
		out = out.Add(vec[l].ScalarMul(s))
	}
	return out
}

// mulMatVecB1 computes mat*vec where mat is r x c and vec holds c B1
// elements, producing an r-length B1 vector.
func mulMatVecB1(mat [][]*Scalar, vec []B1) []B1 {
	out := make([]B1, len(mat))
	for i, row := range mat {
		out[i] = rowDotB1(row, vec)
	}
	return out
}

// mulMatVecB2 computes mat*vec where mat is r x c and vec holds c B2
// elements, producing an r-length B2 vector.
func mulMatVecB2(mat [][]*Scalar, vec []B2) []B2 {
	out := make([]B2, len(mat))
	for i, row := range mat {
		out[i] = rowDotB2(row, vec)
	}
	return out
}

func addB1Vec(a, b []B1) []B1 {
	out := make([]B1, len(a))
	for i := range a {
		out[i] = a[i].Add(b[i])
	}
	return out
}

func addB2Vec(a, b []B2) []B2 {
	out := make([]B2, len(a))
	for i := range a {
		out[i] = a[i].Add(b[i])
	}
	return out
}

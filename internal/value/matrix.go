package value

import "math/big"

// Matrix is an r x c row-major grid of scalar Values (Rational or Complex).
type Matrix struct {
	Rows, Cols int
	Data       []Value // len == Rows*Cols, row-major
}

func NewMatrix(rows, cols int, data []Value) *Matrix {
	return &Matrix{Rows: rows, Cols: cols, Data: data}
}

func (m *Matrix) Kind() Kind     { return KMatrix }
func (m *Matrix) String() string { return "" } // formatting lives in internal/formatter

func (m *Matrix) At(r, c int) Value     { return m.Data[r*m.Cols+c] }
func (m *Matrix) Set(r, c int, v Value) { m.Data[r*m.Cols+c] = v }

func (m *Matrix) sameShape(o *Matrix) bool { return m.Rows == o.Rows && m.Cols == o.Cols }

func elementwise(a, b *Matrix, op func(x, y Value) (Value, error)) (*Matrix, error) {
	if !a.sameShape(b) {
		return nil, typeErr("matrix shapes %dx%d and %dx%d do not match", a.Rows, a.Cols, b.Rows, b.Cols)
	}
	out := make([]Value, len(a.Data))
	for i := range a.Data {
		v, err := op(a.Data[i], b.Data[i])
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return NewMatrix(a.Rows, a.Cols, out), nil
}

// AddM adds two matrices of identical shape (§4.V).
func (m *Matrix) AddM(o *Matrix) (*Matrix, error) { return elementwise(m, o, Add) }

// SubM subtracts two matrices of identical shape.
func (m *Matrix) SubM(o *Matrix) (*Matrix, error) { return elementwise(m, o, Sub) }

// ElementwiseMul multiplies two matrices of identical shape elementwise.
func (m *Matrix) ElementwiseMul(o *Matrix) (*Matrix, error) { return elementwise(m, o, Mul) }

// ScaleBy broadcasts a scalar multiplication across every element.
func (m *Matrix) ScaleBy(s Value) (*Matrix, error) {
	out := make([]Value, len(m.Data))
	for i, v := range m.Data {
		r, err := Mul(v, s)
		if err != nil {
			return nil, err
		}
		out[i] = r
	}
	return NewMatrix(m.Rows, m.Cols, out), nil
}

// MatMul computes the matrix product, requiring inner-dimension match.
func (m *Matrix) MatMul(o *Matrix) (*Matrix, error) {
	if m.Cols != o.Rows {
		return nil, typeErr("inner dimensions %d and %d do not match for matrix product", m.Cols, o.Rows)
	}
	out := make([]Value, m.Rows*o.Cols)
	for i := 0; i < m.Rows; i++ {
		for j := 0; j < o.Cols; j++ {
			var sum Value = RationalFromInt64(0)
			for k := 0; k < m.Cols; k++ {
				term, err := Mul(m.At(i, k), o.At(k, j))
				if err != nil {
					return nil, err
				}
				sum, err = Add(sum, term)
				if err != nil {
					return nil, err
				}
			}
			out[i*o.Cols+j] = sum
		}
	}
	return NewMatrix(m.Rows, o.Cols, out), nil
}

// Det computes the determinant: Laplace expansion for n <= 3, Bareiss
// fraction-free elimination for n >= 4 to preserve exact rationality (§4.V).
func (m *Matrix) Det() (Value, error) {
	if m.Rows != m.Cols {
		return nil, mathErr("determinant requires a square matrix, got %dx%d", m.Rows, m.Cols)
	}
	n := m.Rows
	if n <= 3 {
		return m.detLaplace()
	}
	return m.detBareiss()
}

func (m *Matrix) detLaplace() (Value, error) {
	n := m.Rows
	switch n {
	case 1:
		return m.At(0, 0), nil
	case 2:
		ad, err := Mul(m.At(0, 0), m.At(1, 1))
		if err != nil {
			return nil, err
		}
		bc, err := Mul(m.At(0, 1), m.At(1, 0))
		if err != nil {
			return nil, err
		}
		return Sub(ad, bc)
	default: // n == 3, expand along the first row
		var total Value = RationalFromInt64(0)
		for j := 0; j < n; j++ {
			minor := m.minor(0, j)
			sub, err := minor.detLaplace()
			if err != nil {
				return nil, err
			}
			term, err := Mul(m.At(0, j), sub)
			if err != nil {
				return nil, err
			}
			if j%2 == 1 {
				term, err = Neg(term)
				if err != nil {
					return nil, err
				}
			}
			total, err = Add(total, term)
			if err != nil {
				return nil, err
			}
		}
		return total, nil
	}
}

func (m *Matrix) minor(skipRow, skipCol int) *Matrix {
	n := m.Rows - 1
	out := make([]Value, 0, n*n)
	for i := 0; i < m.Rows; i++ {
		if i == skipRow {
			continue
		}
		for j := 0; j < m.Cols; j++ {
			if j == skipCol {
				continue
			}
			out = append(out, m.At(i, j))
		}
	}
	return NewMatrix(n, n, out)
}

// detBareiss implements fraction-free Gaussian elimination over rationals.
// Complex matrices fall back to Laplace cofactor expansion since the
// Bareiss recurrence as specified is defined over an integral domain of
// rationals.
func (m *Matrix) detBareiss() (Value, error) {
	for _, v := range m.Data {
		if v.Kind() != KRational {
			return m.detLaplaceFull()
		}
	}
	n := m.Rows
	mat := make([][]*big.Rat, n)
	for i := 0; i < n; i++ {
		mat[i] = make([]*big.Rat, n)
		for j := 0; j < n; j++ {
			mat[i][j] = new(big.Rat).Set(m.At(i, j).(*Rational).V)
		}
	}
	prevPivot := big.NewRat(1, 1)
	sign := 1
	for k := 0; k < n-1; k++ {
		if mat[k][k].Sign() == 0 {
			swapped := false
			for i := k + 1; i < n; i++ {
				if mat[i][k].Sign() != 0 {
					mat[k], mat[i] = mat[i], mat[k]
					sign = -sign
					swapped = true
					break
				}
			}
			if !swapped {
				return RationalFromInt64(0), nil
			}
		}
		for i := k + 1; i < n; i++ {
			for j := k + 1; j < n; j++ {
				num := new(big.Rat).Sub(
					new(big.Rat).Mul(mat[i][j], mat[k][k]),
					new(big.Rat).Mul(mat[i][k], mat[k][j]),
				)
				mat[i][j] = new(big.Rat).Quo(num, prevPivot)
			}
		}
		prevPivot = mat[k][k]
	}
	result := new(big.Rat).Set(mat[n-1][n-1])
	if sign < 0 {
		result.Neg(result)
	}
	return NewRational(result), nil
}

func (m *Matrix) detLaplaceFull() (Value, error) {
	n := m.Rows
	if n <= 1 {
		return m.detLaplace()
	}
	var total Value = RationalFromInt64(0)
	for j := 0; j < n; j++ {
		sub, err := m.minor(0, j).Det()
		if err != nil {
			return nil, err
		}
		term, err := Mul(m.At(0, j), sub)
		if err != nil {
			return nil, err
		}
		if j%2 == 1 {
			term, err = Neg(term)
			if err != nil {
				return nil, err
			}
		}
		total, err = Add(total, term)
		if err != nil {
			return nil, err
		}
	}
	return total, nil
}

// Transpose returns the c x r matrix obtained by swapping the rows and
// columns of an r x c matrix.
func (m *Matrix) Transpose() *Matrix {
	out := make([]Value, len(m.Data))
	t := NewMatrix(m.Cols, m.Rows, out)
	for i := 0; i < m.Rows; i++ {
		for j := 0; j < m.Cols; j++ {
			t.Set(j, i, m.At(i, j))
		}
	}
	return t
}

// Inv computes the inverse via the classical adjugate formula, rejecting
// singular matrices (§4.B).
func (m *Matrix) Inv() (*Matrix, error) {
	if m.Rows != m.Cols {
		return nil, mathErr("inverse requires a square matrix, got %dx%d", m.Rows, m.Cols)
	}
	det, err := m.Det()
	if err != nil {
		return nil, err
	}
	if isZeroScalar(det) {
		return nil, mathErr("matrix is singular")
	}
	n := m.Rows
	adj := make([]Value, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			cof, err := m.minor(i, j).Det()
			if err != nil {
				return nil, err
			}
			if (i+j)%2 == 1 {
				cof, err = Neg(cof)
				if err != nil {
					return nil, err
				}
			}
			// adjugate is the transpose of the cofactor matrix
			adj[j*n+i] = cof
		}
	}
	result := NewMatrix(n, n, adj)
	return result.ScaleByInverse(det)
}

// ScaleByInverse scales every element by 1/s.
func (m *Matrix) ScaleByInverse(s Value) (*Matrix, error) {
	inv, err := Div(RationalFromInt64(1), s)
	if err != nil {
		return nil, err
	}
	return m.ScaleBy(inv)
}

func isZeroScalar(v Value) bool {
	switch x := v.(type) {
	case *Rational:
		return x.IsZero()
	case *Complex:
		return x.Re.IsZero() && x.Im.IsZero()
	default:
		return false
	}
}

package value

import "testing"

func mat(rows, cols int, vals ...int64) *Matrix {
	data := make([]Value, len(vals))
	for i, v := range vals {
		data[i] = RationalFromInt64(v)
	}
	return NewMatrix(rows, cols, data)
}

func TestDet2x2(t *testing.T) {
	m := mat(2, 2, 1, 2, 3, 4)
	d, err := m.Det()
	if err != nil {
		t.Fatal(err)
	}
	if r, ok := d.(*Rational); !ok || !r.Equal(RationalFromInt64(-2)) {
		t.Errorf("det = %v, want -2", d)
	}
}

func TestDetProductRule(t *testing.T) {
	a := mat(2, 2, 1, 2, 3, 4)
	b := mat(2, 2, 5, 6, 7, 8)
	prod, err := a.MatMul(b)
	if err != nil {
		t.Fatal(err)
	}
	detProd, err := prod.Det()
	if err != nil {
		t.Fatal(err)
	}
	detA, _ := a.Det()
	detB, _ := b.Det()
	expect, err := Mul(detA, detB)
	if err != nil {
		t.Fatal(err)
	}
	if !detProd.(*Rational).Equal(expect.(*Rational)) {
		t.Errorf("det(A*B) = %v, want det(A)*det(B) = %v", detProd, expect)
	}
}

func TestDet4x4UsesBareiss(t *testing.T) {
	// twice the 4x4 identity; det = 2^4 = 16
	m := mat(4, 4,
		2, 0, 0, 0,
		0, 2, 0, 0,
		0, 0, 2, 0,
		0, 0, 0, 2,
	)
	d, err := m.Det()
	if err != nil {
		t.Fatal(err)
	}
	if r, ok := d.(*Rational); !ok || !r.Equal(RationalFromInt64(16)) {
		t.Errorf("det = %v, want 16", d)
	}
}

func TestInverseOfSingularFails(t *testing.T) {
	m := mat(2, 2, 1, 2, 2, 4) // rows are linearly dependent
	if _, err := m.Inv(); err == nil {
		t.Fatal("expected a MathError for a singular matrix")
	}
}

func TestInverseRoundTrip(t *testing.T) {
	m := mat(2, 2, 1, 2, 3, 4)
	inv, err := m.Inv()
	if err != nil {
		t.Fatal(err)
	}
	identity, err := m.MatMul(inv)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			want := int64(0)
			if i == j {
				want = 1
			}
			got, ok := identity.At(i, j).(*Rational)
			if !ok || !got.Equal(RationalFromInt64(want)) {
				t.Errorf("M*M^-1[%d][%d] = %v, want %d", i, j, identity.At(i, j), want)
			}
		}
	}
}

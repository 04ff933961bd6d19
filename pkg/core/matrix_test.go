package core

import (
	"errors"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

var approx = cmpopts.EquateApprox(0, 1e-4)

func TestMatrix_Multiply(t *testing.T) {
	a := Matrix{
		{1, 2, 3, 4},
		{5, 6, 7, 8},
		{9, 8, 7, 6},
		{5, 4, 3, 2},
	}
	b := Matrix{
		{-2, 1, 2, 3},
		{3, 2, 1, -1},
		{4, 3, 6, 5},
		{1, 2, 7, 8},
	}
	want := Matrix{
		{20, 22, 50, 48},
		{44, 54, 114, 108},
		{40, 58, 110, 102},
		{16, 26, 46, 42},
	}

	if diff := cmp.Diff(want, a.Multiply(b)); diff != "" {
		t.Errorf("Multiply mismatch (-want +got):\n%s", diff)
	}
}

func TestMatrix_MultiplyTuple(t *testing.T) {
	a := Matrix{
		{1, 2, 3, 4},
		{2, 4, 4, 2},
		{8, 6, 4, 1},
		{0, 0, 0, 1},
	}
	got := a.MultiplyTuple(Tuple{1, 2, 3, 1})
	want := Tuple{18, 24, 33, 1}
	if got != want {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

func TestMatrix_Identity(t *testing.T) {
	a := Matrix{
		{0, 1, 2, 4},
		{1, 2, 4, 8},
		{2, 4, 8, 16},
		{4, 8, 16, 32},
	}
	if got := a.Multiply(Identity()); got != a {
		t.Errorf("A * I should equal A, got %v", got)
	}

	tuple := Tuple{1, 2, 3, 4}
	if got := Identity().MultiplyTuple(tuple); got != tuple {
		t.Errorf("I * t should equal t, got %v", got)
	}

	if Identity().Transpose() != Identity() {
		t.Error("Transpose of identity should be identity")
	}
}

func TestMatrix_Transpose(t *testing.T) {
	a := Matrix{
		{0, 9, 3, 0},
		{9, 8, 0, 8},
		{1, 8, 5, 3},
		{0, 0, 5, 8},
	}
	want := Matrix{
		{0, 9, 1, 0},
		{9, 8, 8, 0},
		{3, 0, 5, 5},
		{0, 8, 3, 8},
	}
	if diff := cmp.Diff(want, a.Transpose()); diff != "" {
		t.Errorf("Transpose mismatch (-want +got):\n%s", diff)
	}
}

func TestDeterminant_SmallMatrices(t *testing.T) {
	two := [][]float64{
		{1, 5},
		{-3, 2},
	}
	if got := determinant(two); got != 17 {
		t.Errorf("Expected 2x2 determinant 17, got %v", got)
	}

	three := [][]float64{
		{1, 2, 6},
		{-5, 8, -4},
		{2, 6, 4},
	}
	cofactors := []float64{56, 12, -46}
	for col, want := range cofactors {
		if got := cofactor(three, 0, col); got != want {
			t.Errorf("cofactor(0,%d): expected %v, got %v", col, want, got)
		}
	}
	if got := determinant(three); got != -196 {
		t.Errorf("Expected 3x3 determinant -196, got %v", got)
	}
}

func TestSubmatrix(t *testing.T) {
	m := [][]float64{
		{1, 5, 0},
		{-3, 2, 7},
		{0, 6, -3},
	}
	want := [][]float64{
		{-3, 2},
		{0, 6},
	}
	if diff := cmp.Diff(want, submatrix(m, 0, 2)); diff != "" {
		t.Errorf("submatrix mismatch (-want +got):\n%s", diff)
	}
}

func TestMinorAndCofactor(t *testing.T) {
	m := [][]float64{
		{3, 5, 0},
		{2, -1, -7},
		{6, -1, 5},
	}

	tests := []struct {
		row, col      int
		minor, factor float64
	}{
		{0, 0, -12, -12},
		{1, 0, 25, -25},
	}

	for _, tt := range tests {
		if got := minor(m, tt.row, tt.col); got != tt.minor {
			t.Errorf("minor(%d,%d): expected %v, got %v", tt.row, tt.col, tt.minor, got)
		}
		if got := cofactor(m, tt.row, tt.col); got != tt.factor {
			t.Errorf("cofactor(%d,%d): expected %v, got %v", tt.row, tt.col, tt.factor, got)
		}
	}
}

func TestMatrix_Determinant4x4(t *testing.T) {
	a := Matrix{
		{-2, -8, 3, 5},
		{-3, 1, 7, 3},
		{1, 2, -9, 6},
		{-6, 7, 7, -9},
	}
	cofactors := []float64{690, 447, 210, 51}
	for col, want := range cofactors {
		if got := a.Cofactor(0, col); got != want {
			t.Errorf("Cofactor(0,%d): expected %v, got %v", col, want, got)
		}
	}
	if got := a.Determinant(); got != -4071 {
		t.Errorf("Expected determinant -4071, got %v", got)
	}
}

func TestMatrix_Inverse(t *testing.T) {
	a := Matrix{
		{-5, 2, 6, -8},
		{1, -5, 1, 8},
		{7, 7, -6, -7},
		{1, -3, 7, 4},
	}

	inv, err := a.Inverse()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if got := a.Determinant(); got != 532 {
		t.Errorf("Expected determinant 532, got %v", got)
	}
	if got := a.Cofactor(2, 3); got != -160 {
		t.Errorf("Expected cofactor(2,3) -160, got %v", got)
	}
	if !ApproxEqual(inv[3][2], -160.0/532) {
		t.Errorf("Expected inv[3][2] = -160/532, got %v", inv[3][2])
	}

	want := Matrix{
		{0.21805, 0.45113, 0.24060, -0.04511},
		{-0.80827, -1.45677, -0.44361, 0.52068},
		{-0.07895, -0.22368, -0.05263, 0.19737},
		{-0.52256, -0.81391, -0.30075, 0.30639},
	}
	if diff := cmp.Diff(want, inv, approx); diff != "" {
		t.Errorf("Inverse mismatch (-want +got):\n%s", diff)
	}
}

func TestMatrix_InverseNotInvertible(t *testing.T) {
	a := Matrix{
		{-4, 2, -2, -3},
		{9, 6, 2, 6},
		{0, -5, 1, -5},
		{0, 0, 0, 0},
	}

	if a.IsInvertible() {
		t.Error("Expected matrix to be singular")
	}

	_, err := a.Inverse()
	if !errors.Is(err, ErrNotInvertible) {
		t.Errorf("Expected ErrNotInvertible, got %v", err)
	}
}

func TestMatrix_InverseRoundTrip(t *testing.T) {
	a := Matrix{
		{3, -9, 7, 3},
		{3, -8, 2, -9},
		{-4, 4, 4, 1},
		{-6, 5, -1, 1},
	}
	b := Matrix{
		{8, 2, 2, 2},
		{3, -1, 7, 0},
		{7, 0, 5, 4},
		{6, -2, 0, 5},
	}

	bInv, err := b.Inverse()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	c := a.Multiply(b)
	if diff := cmp.Diff(a, c.Multiply(bInv), approx); diff != "" {
		t.Errorf("(A*B)*inv(B) should equal A (-want +got):\n%s", diff)
	}

	if diff := cmp.Diff(Identity(), b.Multiply(bInv), approx); diff != "" {
		t.Errorf("B*inv(B) should be identity (-want +got):\n%s", diff)
	}

	bInvInv, err := bInv.Inverse()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if diff := cmp.Diff(b, bInvInv, approx); diff != "" {
		t.Errorf("inv(inv(B)) should equal B (-want +got):\n%s", diff)
	}
}

// Cross-check cofactor inversion against mathgl's closed-form inverse.
func TestMatrix_InverseMatchesMathgl(t *testing.T) {
	matrices := []Matrix{
		{
			{9, 3, 0, 9},
			{-5, -2, -6, -3},
			{-4, 9, 6, 4},
			{-7, 6, 6, 2},
		},
		{
			{8, -5, 9, 2},
			{7, 5, 6, 1},
			{-6, 0, 9, 6},
			{-3, 0, -9, -4},
		},
	}

	for i, m := range matrices {
		ref := mgl64.Mat4FromRows(
			mgl64.Vec4{m[0][0], m[0][1], m[0][2], m[0][3]},
			mgl64.Vec4{m[1][0], m[1][1], m[1][2], m[1][3]},
			mgl64.Vec4{m[2][0], m[2][1], m[2][2], m[2][3]},
			mgl64.Vec4{m[3][0], m[3][1], m[3][2], m[3][3]},
		)
		refInv := ref.Inv()

		inv, err := m.Inverse()
		if err != nil {
			t.Fatalf("matrix %d: unexpected error: %v", i, err)
		}

		var want Matrix
		for row := 0; row < 4; row++ {
			for col := 0; col < 4; col++ {
				want[row][col] = refInv.At(row, col)
			}
		}
		if diff := cmp.Diff(want, inv, approx); diff != "" {
			t.Errorf("matrix %d: inverse differs from mathgl (-want +got):\n%s", i, diff)
		}

		if !ApproxEqual(m.Determinant(), ref.Det()) {
			t.Errorf("matrix %d: determinant %v, mathgl %v", i, m.Determinant(), ref.Det())
		}
	}
}

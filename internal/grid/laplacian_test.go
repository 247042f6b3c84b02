package grid

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/androclassic/quantum-particle-simulation/internal/quantum"
)

func TestLaplacian1D_ZeroBoundary(t *testing.T) {
	// [0, 4] with 5 points gives dx = 1.
	g, err := New1D(0, 4, 5)
	if err != nil {
		t.Fatalf("New1D failed: %v", err)
	}

	phi := quantum.Wavefunction{1, 0, 0, 0, 0}
	dst := make(quantum.Wavefunction, 5)
	g.Laplacian(dst, phi)

	// Implicit zero ghost cells: L[0] = (0 + 0 - 2*1)/dx = -2,
	// L[1] = (1 + 0 - 0)/dx = 1, L[2..4] = 0. No wraparound: the last
	// cell must not see phi[0].
	want := []complex128{-2, 1, 0, 0, 0}
	for i := range want {
		if cmplx.Abs(dst[i]-want[i]) > 1e-12 {
			t.Errorf("L[%d] = %v, want %v", i, dst[i], want[i])
		}
	}
}

func TestLaplacian1D_CellVolumeScaling(t *testing.T) {
	// dx = 0.5: scaling is 1/dx, deliberately not 1/dx^2.
	g, err := New1D(0, 2, 5)
	if err != nil {
		t.Fatalf("New1D failed: %v", err)
	}

	phi := quantum.Wavefunction{1, 0, 0, 0, 0}
	dst := make(quantum.Wavefunction, 5)
	g.Laplacian(dst, phi)

	if cmplx.Abs(dst[0]-complex(-2/0.5, 0)) > 1e-12 {
		t.Errorf("L[0] = %v, want %v", dst[0], -2/0.5)
	}
	if cmplx.Abs(dst[1]-complex(1/0.5, 0)) > 1e-12 {
		t.Errorf("L[1] = %v, want %v", dst[1], 1/0.5)
	}
}

func TestLaplacian1D_Interior(t *testing.T) {
	g, err := New1D(0, 4, 5)
	if err != nil {
		t.Fatalf("New1D failed: %v", err)
	}

	phi := quantum.Wavefunction{0, 1i, 2, 1i, 0}
	dst := make(quantum.Wavefunction, 5)
	g.Laplacian(dst, phi)

	// Interior stencil on complex values.
	if cmplx.Abs(dst[2]-(1i+1i-4)) > 1e-12 {
		t.Errorf("L[2] = %v, want %v", dst[2], 1i+1i-4)
	}
}

func TestLaplacian2D_CornerAndEdges(t *testing.T) {
	// 3x3 over [0,2]x[0,2]: dx = dy = 1, dv = 1.
	g, err := New2D(0, 2, 3, 0, 2, 3)
	if err != nil {
		t.Fatalf("New2D failed: %v", err)
	}

	phi := make(quantum.Wavefunction, 9)
	phi[0] = 1 // corner (0, 0)
	dst := make(quantum.Wavefunction, 9)
	g.Laplacian(dst, phi)

	// Corner loses two neighbors, edge neighbors see the unit cell,
	// everything else is untouched. No wraparound to the far edges.
	want := map[int]complex128{
		0: -4, // -4*phi[0,0]
		1: 1,  // (0,1) sees (0,0)
		3: 1,  // (1,0) sees (0,0)
	}
	for idx := 0; idx < 9; idx++ {
		expected := want[idx]
		if cmplx.Abs(dst[idx]-expected) > 1e-12 {
			t.Errorf("L[%d] = %v, want %v", idx, dst[idx], expected)
		}
	}
}

func TestLaplacian2D_Scaling(t *testing.T) {
	// dx = 0.5, dy = 1 -> dv = 0.5.
	g, err := New2D(0, 1, 3, 0, 2, 3)
	if err != nil {
		t.Fatalf("New2D failed: %v", err)
	}

	phi := make(quantum.Wavefunction, 9)
	phi[4] = 1 // center
	dst := make(quantum.Wavefunction, 9)
	g.Laplacian(dst, phi)

	if math.Abs(real(dst[4])-(-4/0.5)) > 1e-12 {
		t.Errorf("center = %v, want %v", dst[4], -4/0.5)
	}
	if math.Abs(real(dst[1])-(1/0.5)) > 1e-12 {
		t.Errorf("neighbor = %v, want %v", dst[1], 1/0.5)
	}
}

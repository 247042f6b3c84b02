package wavepacket

import (
	"math"
	"math/cmplx"

	"github.com/androclassic/quantum-particle-simulation/internal/grid"
	"github.com/androclassic/quantum-particle-simulation/internal/quantum"
)

// Gaussian1D builds a normalized Gaussian packet centered at center
// with the given width, carrying momentum k via a plane-wave factor
// exp(i*k*x).
func Gaussian1D(g *grid.Grid1D, center, width, momentum float64) quantum.Wavefunction {
	xs := g.Points()
	psi := make(quantum.Wavefunction, len(xs))
	for i, x := range xs {
		d := x - center
		env := math.Exp(-d * d / (2 * width * width))
		psi[i] = complex(env, 0) * cmplx.Exp(complex(0, momentum*x))
	}
	normalize(psi, g.CellVolume())
	return psi
}

// Gaussian2D builds a normalized 2D Gaussian packet with independent
// widths and momentum components per axis.
func Gaussian2D(g *grid.Grid2D, cx, cy, wx, wy, kx, ky float64) quantum.Wavefunction {
	mx, my := g.MeshX(), g.MeshY()
	psi := make(quantum.Wavefunction, g.Size())
	for i := range psi {
		dx := mx[i] - cx
		dy := my[i] - cy
		env := math.Exp(-dx*dx/(2*wx*wx) - dy*dy/(2*wy*wy))
		psi[i] = complex(env, 0) * cmplx.Exp(complex(0, kx*mx[i]+ky*my[i]))
	}
	normalize(psi, g.CellVolume())
	return psi
}

func normalize(psi quantum.Wavefunction, dv float64) {
	norm := psi.Norm(dv)
	if norm == 0 {
		return
	}
	inv := complex(1/norm, 0)
	for i := range psi {
		psi[i] *= inv
	}
}

package analysis

import (
	"math/cmplx"

	"github.com/androclassic/quantum-particle-simulation/internal/grid"
	"github.com/androclassic/quantum-particle-simulation/internal/quantum"
)

func Norm(phi quantum.Wavefunction, dv float64) float64 {
	return phi.Norm(dv)
}

// MeanPosition is the expectation of the coordinate xs under |phi|^2.
func MeanPosition(phi quantum.Wavefunction, xs []float64, dv float64) float64 {
	mean := 0.0
	for i, v := range phi {
		re, im := real(v), imag(v)
		mean += xs[i] * (re*re + im*im)
	}
	return mean * dv
}

// Variance is the spatial variance of the |phi|^2 distribution along
// the coordinate xs.
func Variance(phi quantum.Wavefunction, xs []float64, dv float64) float64 {
	mean, sq := 0.0, 0.0
	for i, v := range phi {
		re, im := real(v), imag(v)
		p := re*re + im*im
		mean += xs[i] * p
		sq += xs[i] * xs[i] * p
	}
	mean *= dv
	sq *= dv
	return sq - mean*mean
}

// Energy is the expectation <phi|H|phi> with
// H = -(1/2m)*Laplacian + V, carrying the grid's 1/cell-volume
// Laplacian scaling as-is.
func Energy(g grid.Grid, v quantum.Potential, phi quantum.Wavefunction, mass float64) float64 {
	lap := make(quantum.Wavefunction, len(phi))
	g.Laplacian(lap, phi)
	kin := -0.5 / mass
	sum := complex(0, 0)
	for i := range phi {
		h := complex(kin, 0) * lap[i]
		if v != nil {
			h += complex(v[i], 0) * phi[i]
		}
		sum += cmplx.Conj(phi[i]) * h
	}
	return real(sum) * g.CellVolume()
}

// Overlap is |<a|b>| under the cell-volume measure.
func Overlap(a, b quantum.Wavefunction, dv float64) float64 {
	return cmplx.Abs(a.InnerProduct(b, dv))
}

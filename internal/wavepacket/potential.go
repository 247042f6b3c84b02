package wavepacket

import (
	"github.com/androclassic/quantum-particle-simulation/internal/grid"
	"github.com/androclassic/quantum-particle-simulation/internal/quantum"
)

// Harmonic1D samples V(x) = 0.5 * mass * omega^2 * x^2.
func Harmonic1D(g *grid.Grid1D, mass, omega float64) quantum.Potential {
	xs := g.Points()
	v := make(quantum.Potential, len(xs))
	for i, x := range xs {
		v[i] = 0.5 * mass * omega * omega * x * x
	}
	return v
}

// Harmonic2D samples an anisotropic 2D harmonic trap.
func Harmonic2D(g *grid.Grid2D, mass, omegaX, omegaY float64) quantum.Potential {
	mx, my := g.MeshX(), g.MeshY()
	v := make(quantum.Potential, g.Size())
	for i := range v {
		v[i] = 0.5 * mass * (omegaX*omegaX*mx[i]*mx[i] + omegaY*omegaY*my[i]*my[i])
	}
	return v
}

// Barrier1D is a rectangular barrier of the given height on [x0, x1].
func Barrier1D(g *grid.Grid1D, x0, x1, height float64) quantum.Potential {
	xs := g.Points()
	v := make(quantum.Potential, len(xs))
	for i, x := range xs {
		if x >= x0 && x <= x1 {
			v[i] = height
		}
	}
	return v
}

// Well1D is a finite square well of the given depth on [x0, x1],
// zero elsewhere.
func Well1D(g *grid.Grid1D, x0, x1, depth float64) quantum.Potential {
	xs := g.Points()
	v := make(quantum.Potential, len(xs))
	for i, x := range xs {
		if x >= x0 && x <= x1 {
			v[i] = -depth
		}
	}
	return v
}

// DoubleWell1D samples the bistable quartic V(x) = a*(x^2 - b)^2.
func DoubleWell1D(g *grid.Grid1D, a, b float64) quantum.Potential {
	xs := g.Points()
	v := make(quantum.Potential, len(xs))
	for i, x := range xs {
		q := x*x - b
		v[i] = a * q * q
	}
	return v
}

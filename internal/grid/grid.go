package grid

import (
	"github.com/androclassic/quantum-particle-simulation/internal/quantum"
	"gonum.org/v1/gonum/floats"
)

// Grid is the spatial discretization a simulation runs on.
type Grid interface {
	Dim() int
	Size() int
	CellVolume() float64
	Laplacian(dst, phi quantum.Wavefunction)
}

// Grid1D is a uniform 1D grid over [min, max], endpoints included.
type Grid1D struct {
	x  []float64
	dx float64
}

func New1D(min, max float64, n int) (*Grid1D, error) {
	if n < 2 {
		return nil, quantum.NewConfigError(quantum.ErrGridParams, "need at least 2 points, got %d", n)
	}
	if max <= min {
		return nil, quantum.NewConfigError(quantum.ErrGridParams, "degenerate bounds [%g, %g]", min, max)
	}
	x := make([]float64, n)
	floats.Span(x, min, max)
	return &Grid1D{x: x, dx: x[1] - x[0]}, nil
}

func (g *Grid1D) Dim() int            { return 1 }
func (g *Grid1D) Size() int           { return len(g.x) }
func (g *Grid1D) CellVolume() float64 { return g.dx }
func (g *Grid1D) Spacing() float64    { return g.dx }
func (g *Grid1D) Points() []float64   { return g.x }

// Grid2D is a uniform 2D grid with independent x and y axes. Arrays
// are row-major with x as the slow index: element (i, j) lives at
// i*Ny + j.
type Grid2D struct {
	x, y       []float64
	dx, dy, dv float64
}

func New2D(xmin, xmax float64, nx int, ymin, ymax float64, ny int) (*Grid2D, error) {
	if nx < 2 || ny < 2 {
		return nil, quantum.NewConfigError(quantum.ErrGridParams, "need at least 2 points per axis, got %dx%d", nx, ny)
	}
	if xmax <= xmin || ymax <= ymin {
		return nil, quantum.NewConfigError(quantum.ErrGridParams,
			"degenerate bounds [%g, %g] x [%g, %g]", xmin, xmax, ymin, ymax)
	}
	x := make([]float64, nx)
	y := make([]float64, ny)
	floats.Span(x, xmin, xmax)
	floats.Span(y, ymin, ymax)
	dx := x[1] - x[0]
	dy := y[1] - y[0]
	return &Grid2D{x: x, y: y, dx: dx, dy: dy, dv: dx * dy}, nil
}

func (g *Grid2D) Dim() int            { return 2 }
func (g *Grid2D) Size() int           { return len(g.x) * len(g.y) }
func (g *Grid2D) Shape() (int, int)   { return len(g.x), len(g.y) }
func (g *Grid2D) CellVolume() float64 { return g.dv }
func (g *Grid2D) XPoints() []float64  { return g.x }
func (g *Grid2D) YPoints() []float64  { return g.y }

// MeshX returns the x coordinate of every cell in row-major order.
func (g *Grid2D) MeshX() []float64 {
	nx, ny := len(g.x), len(g.y)
	m := make([]float64, nx*ny)
	for i := 0; i < nx; i++ {
		for j := 0; j < ny; j++ {
			m[i*ny+j] = g.x[i]
		}
	}
	return m
}

// MeshY returns the y coordinate of every cell in row-major order.
func (g *Grid2D) MeshY() []float64 {
	nx, ny := len(g.x), len(g.y)
	m := make([]float64, nx*ny)
	for i := 0; i < nx; i++ {
		for j := 0; j < ny; j++ {
			m[i*ny+j] = g.y[j]
		}
	}
	return m
}

// Extent reports {xmin, xmax, ymin, ymax} for external renderers.
func (g *Grid2D) Extent() [4]float64 {
	return [4]float64{g.x[0], g.x[len(g.x)-1], g.y[0], g.y[len(g.y)-1]}
}

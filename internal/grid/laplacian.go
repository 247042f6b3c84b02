package grid

import "github.com/androclassic/quantum-particle-simulation/internal/quantum"

// The Laplacian stencils treat the array as bordered by zero-valued
// ghost cells: no wraparound, no reflection. The result is scaled by
// 1/CellVolume (not 1/dx^2), matching the reference scheme; changing
// either convention changes every downstream number.

func (g *Grid1D) Laplacian(dst, phi quantum.Wavefunction) {
	n := len(g.x)
	inv := complex(1.0/g.dx, 0)
	for i := 0; i < n; i++ {
		sum := -2 * phi[i]
		if i > 0 {
			sum += phi[i-1]
		}
		if i < n-1 {
			sum += phi[i+1]
		}
		dst[i] = sum * inv
	}
}

func (g *Grid2D) Laplacian(dst, phi quantum.Wavefunction) {
	nx, ny := len(g.x), len(g.y)
	inv := complex(1.0/g.dv, 0)
	for i := 0; i < nx; i++ {
		for j := 0; j < ny; j++ {
			idx := i*ny + j
			sum := -4 * phi[idx]
			if i > 0 {
				sum += phi[idx-ny]
			}
			if i < nx-1 {
				sum += phi[idx+ny]
			}
			if j > 0 {
				sum += phi[idx-1]
			}
			if j < ny-1 {
				sum += phi[idx+1]
			}
			dst[idx] = sum * inv
		}
	}
}

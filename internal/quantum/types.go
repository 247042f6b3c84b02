package quantum

import (
	"math"
	"math/cmplx"
)

type Wavefunction []complex128

func (w Wavefunction) Clone() Wavefunction {
	c := make(Wavefunction, len(w))
	copy(c, w)
	return c
}

func (w Wavefunction) IsValid() bool {
	for _, v := range w {
		if cmplx.IsNaN(v) || cmplx.IsInf(v) {
			return false
		}
	}
	return true
}

// NormSq is the discrete L2 norm squared weighted by the cell volume:
// sum(|w_i|^2) * dv.
func (w Wavefunction) NormSq(dv float64) float64 {
	sum := 0.0
	for _, v := range w {
		re, im := real(v), imag(v)
		sum += re*re + im*im
	}
	return sum * dv
}

func (w Wavefunction) Norm(dv float64) float64 {
	return math.Sqrt(w.NormSq(dv))
}

// InnerProduct computes <w|other> under the cell-volume integration
// measure, conjugating the receiver.
func (w Wavefunction) InnerProduct(other Wavefunction, dv float64) complex128 {
	sum := complex(0, 0)
	for i := range w {
		if i < len(other) {
			sum += cmplx.Conj(w[i]) * other[i]
		}
	}
	return sum * complex(dv, 0)
}

func (w Wavefunction) Add(other Wavefunction) Wavefunction {
	result := make(Wavefunction, len(w))
	for i := range w {
		if i < len(other) {
			result[i] = w[i] + other[i]
		} else {
			result[i] = w[i]
		}
	}
	return result
}

func (w Wavefunction) Sub(other Wavefunction) Wavefunction {
	result := make(Wavefunction, len(w))
	for i := range w {
		if i < len(other) {
			result[i] = w[i] - other[i]
		} else {
			result[i] = w[i]
		}
	}
	return result
}

func (w Wavefunction) Scale(factor complex128) Wavefunction {
	result := make(Wavefunction, len(w))
	for i := range w {
		result[i] = w[i] * factor
	}
	return result
}

// Density returns |w|^2 per cell.
func (w Wavefunction) Density() []float64 {
	d := make([]float64, len(w))
	for i, v := range w {
		re, im := real(v), imag(v)
		d[i] = re*re + im*im
	}
	return d
}

// Potential holds V(x) sampled on the grid, in the same row-major
// order as the wavefunction. A nil Potential is the free particle.
type Potential []float64

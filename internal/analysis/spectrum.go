package analysis

import (
	"math"
	"math/cmplx"

	"github.com/androclassic/quantum-particle-simulation/internal/quantum"
	"github.com/mjibson/go-dsp/fft"
)

// MomentumSpectrum returns |FFT(phi)| per mode. This is post-run
// analysis of a snapshot; the solver itself stays finite-difference.
func MomentumSpectrum(phi quantum.Wavefunction) []float64 {
	out := fft.FFT([]complex128(phi))
	mag := make([]float64, len(out))
	for i, v := range out {
		mag[i] = cmplx.Abs(v)
	}
	return mag
}

// Wavenumbers returns the k value of each FFT mode for n samples with
// spacing d, in FFT order: 0 and positive frequencies first, then
// negative.
func Wavenumbers(n int, d float64) []float64 {
	ks := make([]float64, n)
	scale := 2 * math.Pi / (float64(n) * d)
	for i := range ks {
		if i < (n+1)/2 {
			ks[i] = float64(i) * scale
		} else {
			ks[i] = float64(i-n) * scale
		}
	}
	return ks
}

package integrators

import "github.com/androclassic/quantum-particle-simulation/internal/quantum"

type Euler struct {
	dphi quantum.Wavefunction
}

func NewEuler() *Euler {
	return &Euler{}
}

func (e *Euler) Step(d Derivative, phi quantum.Wavefunction, dt complex128) quantum.Wavefunction {
	n := len(phi)
	if len(e.dphi) != n {
		e.dphi = make(quantum.Wavefunction, n)
	}
	d(e.dphi, phi)
	result := make(quantum.Wavefunction, n)
	for i := range phi {
		result[i] = phi[i] + dt*e.dphi[i]
	}
	return result
}

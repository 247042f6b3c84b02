package integrators

import "github.com/androclassic/quantum-particle-simulation/internal/quantum"

type RK4 struct {
	k1, k2, k3, k4 quantum.Wavefunction
	scratch        quantum.Wavefunction
}

func NewRK4() *RK4 {
	return &RK4{}
}

func (r *RK4) ensureScratch(n int) {
	if len(r.k1) != n {
		r.k1 = make(quantum.Wavefunction, n)
		r.k2 = make(quantum.Wavefunction, n)
		r.k3 = make(quantum.Wavefunction, n)
		r.k4 = make(quantum.Wavefunction, n)
		r.scratch = make(quantum.Wavefunction, n)
	}
}

func (r *RK4) Step(d Derivative, phi quantum.Wavefunction, dt complex128) quantum.Wavefunction {
	n := len(phi)
	r.ensureScratch(n)

	half := dt * 0.5

	d(r.k1, phi)

	for i := 0; i < n; i++ {
		r.scratch[i] = phi[i] + half*r.k1[i]
	}
	d(r.k2, r.scratch)

	for i := 0; i < n; i++ {
		r.scratch[i] = phi[i] + half*r.k2[i]
	}
	d(r.k3, r.scratch)

	for i := 0; i < n; i++ {
		r.scratch[i] = phi[i] + dt*r.k3[i]
	}
	d(r.k4, r.scratch)

	result := make(quantum.Wavefunction, n)
	dt6 := dt / 6.0
	for i := 0; i < n; i++ {
		result[i] = phi[i] + dt6*(r.k1[i]+2*r.k2[i]+2*r.k3[i]+r.k4[i])
	}

	return result
}

package integrators

import "github.com/androclassic/quantum-particle-simulation/internal/quantum"

// Derivative evaluates dphi/dt into dst. dst and phi never alias.
type Derivative func(dst, phi quantum.Wavefunction)

// Integrator advances a wavefunction by one time step. The step may be
// complex; a pure negative-imaginary dt gives imaginary-time evolution
// with identical arithmetic.
type Integrator interface {
	Step(d Derivative, phi quantum.Wavefunction, dt complex128) quantum.Wavefunction
}

// New builds an integrator by method name.
func New(name string) (Integrator, error) {
	switch name {
	case "euler":
		return NewEuler(), nil
	case "rk4":
		return NewRK4(), nil
	default:
		return nil, quantum.NewConfigError(quantum.ErrUnknownIntegrator, "%q", name)
	}
}

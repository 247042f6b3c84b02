package engine

import "github.com/androclassic/quantum-particle-simulation/internal/quantum"

// Condition is a transform applied in place after each integration
// step, before normalization.
type Condition interface {
	Apply(phi quantum.Wavefunction)
}

// None leaves the state untouched. A nil Condition behaves the same.
type None struct{}

func (None) Apply(quantum.Wavefunction) {}

// Deflate projects previously found states out of phi after every
// step, countering re-leakage from integration error:
// phi <- phi - <state|phi> * dv * state, for each state in order.
type Deflate struct {
	states []quantum.Wavefunction
	dv     float64
}

func NewDeflate(states []quantum.Wavefunction, dv float64) *Deflate {
	return &Deflate{states: states, dv: dv}
}

func (d *Deflate) Apply(phi quantum.Wavefunction) {
	for _, s := range d.states {
		c := s.InnerProduct(phi, d.dv)
		for i := range phi {
			phi[i] -= c * s[i]
		}
	}
}

func (d *Deflate) Len() int { return len(d.states) }

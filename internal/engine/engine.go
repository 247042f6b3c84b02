package engine

import (
	"math"
	"math/cmplx"

	"github.com/androclassic/quantum-particle-simulation/internal/grid"
	"github.com/androclassic/quantum-particle-simulation/internal/integrators"
	"github.com/androclassic/quantum-particle-simulation/internal/quantum"
)

// hbar is fixed to 1 throughout.
const hbar = 1.0

type Config struct {
	// Method names the integrator: "euler" or "rk4".
	Method string
	// Dt is the time step. A pure negative-imaginary value drives
	// imaginary-time evolution.
	Dt    complex128
	Steps int
	Mass  float64
	// Normalize rescales the state to unit cell-volume-weighted norm
	// after every step.
	Normalize bool
	// SaveEvery records a snapshot every k steps. Zero disables the
	// cadence entirely: the trace then holds only the seed state, with
	// no final snapshot.
	SaveEvery int
	// MinNorm, when positive, floors the normalization divisor. Off by
	// default; explicit stepping is otherwise applied unconditionally
	// and a collapsing norm shows up in the output rather than as an
	// error.
	MinNorm float64
}

func DefaultConfig() Config {
	return Config{
		Method:    "rk4",
		Dt:        complex(0.01, 0),
		Steps:     1000,
		Mass:      1.0,
		Normalize: true,
		SaveEvery: 100,
	}
}

// Trace is the ordered snapshot sequence produced by a run. The first
// element is always the initial state. Ownership transfers to the
// caller; the engine keeps nothing.
type Trace struct {
	States []quantum.Wavefunction
	Times  []float64
	Steps  int
}

func (t *Trace) Final() quantum.Wavefunction {
	if len(t.States) == 0 {
		return nil
	}
	return t.States[len(t.States)-1]
}

type Engine struct {
	grid      grid.Grid
	potential quantum.Potential
	integ     integrators.Integrator
	cfg       Config
}

func New(g grid.Grid, v quantum.Potential, cfg Config) (*Engine, error) {
	if err := validate(g, v, cfg); err != nil {
		return nil, err
	}
	integ, err := integrators.New(cfg.Method)
	if err != nil {
		return nil, err
	}
	return &Engine{grid: g, potential: v, integ: integ, cfg: cfg}, nil
}

func validate(g grid.Grid, v quantum.Potential, cfg Config) error {
	if cfg.Steps <= 0 {
		return quantum.NewConfigError(quantum.ErrConfig, "steps must be positive, got %d", cfg.Steps)
	}
	if cfg.Dt == 0 {
		return quantum.NewConfigError(quantum.ErrConfig, "dt must be nonzero")
	}
	if cfg.Mass <= 0 {
		return quantum.NewConfigError(quantum.ErrConfig, "mass must be positive, got %g", cfg.Mass)
	}
	if cfg.SaveEvery < 0 {
		return quantum.NewConfigError(quantum.ErrConfig, "save_every must be >= 0, got %d", cfg.SaveEvery)
	}
	if v != nil && len(v) != g.Size() {
		return quantum.NewConfigError(quantum.ErrShapeMismatch,
			"potential has %d cells, grid has %d", len(v), g.Size())
	}
	return nil
}

// derivative builds the Schrödinger right-hand side
// dphi/dt = (i*hbar/2m) * Laplacian(phi) - (i/hbar) * V * phi.
func (e *Engine) derivative() integrators.Derivative {
	kin := complex(0, 0.5*hbar/e.cfg.Mass)
	lap := make(quantum.Wavefunction, e.grid.Size())
	v := e.potential
	return func(dst, phi quantum.Wavefunction) {
		e.grid.Laplacian(lap, phi)
		if v == nil {
			for i := range dst {
				dst[i] = kin * lap[i]
			}
			return
		}
		for i := range dst {
			dst[i] = kin*lap[i] - complex(0, v[i]/hbar)*phi[i]
		}
	}
}

// Run advances psi0 through the configured number of steps. Per-step
// order is fixed: integrate, apply cond, normalize, snapshot.
func (e *Engine) Run(psi0 quantum.Wavefunction, cond Condition) (*Trace, error) {
	if len(psi0) != e.grid.Size() {
		return nil, quantum.NewConfigError(quantum.ErrShapeMismatch,
			"initial state has %d cells, grid has %d", len(psi0), e.grid.Size())
	}

	snapshots := 1
	if e.cfg.SaveEvery > 0 {
		snapshots += e.cfg.Steps / e.cfg.SaveEvery
	}
	trace := &Trace{
		States: make([]quantum.Wavefunction, 0, snapshots),
		Times:  make([]float64, 0, snapshots),
	}

	phi := psi0.Clone()
	trace.States = append(trace.States, phi.Clone())
	trace.Times = append(trace.Times, 0)

	d := e.derivative()
	dv := e.grid.CellVolume()
	dtMag := cmplx.Abs(e.cfg.Dt)

	for i := 1; i <= e.cfg.Steps; i++ {
		phi = e.integ.Step(d, phi, e.cfg.Dt)
		if cond != nil {
			cond.Apply(phi)
		}
		if e.cfg.Normalize {
			renormalize(phi, dv, e.cfg.MinNorm)
		}
		if e.cfg.SaveEvery > 0 && i%e.cfg.SaveEvery == 0 {
			trace.States = append(trace.States, phi.Clone())
			trace.Times = append(trace.Times, float64(i)*dtMag)
		}
		trace.Steps++
	}

	return trace, nil
}

func renormalize(phi quantum.Wavefunction, dv, floor float64) {
	norm := math.Sqrt(phi.NormSq(dv))
	if floor > 0 && norm < floor {
		norm = floor
	}
	inv := complex(1/norm, 0)
	for i := range phi {
		phi[i] *= inv
	}
}

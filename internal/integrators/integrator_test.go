package integrators

import (
	"errors"
	"math"
	"math/cmplx"
	"testing"

	"github.com/androclassic/quantum-particle-simulation/internal/quantum"
)

// decay is dphi/dt = -phi, exact solution exp(-t).
func decay(dst, phi quantum.Wavefunction) {
	for i := range phi {
		dst[i] = -phi[i]
	}
}

// rotate is dphi/dt = -i*phi, exact solution exp(-i*t).
func rotate(dst, phi quantum.Wavefunction) {
	for i := range phi {
		dst[i] = -1i * phi[i]
	}
}

func TestNew(t *testing.T) {
	if _, err := New("euler"); err != nil {
		t.Errorf("euler: %v", err)
	}
	if _, err := New("rk4"); err != nil {
		t.Errorf("rk4: %v", err)
	}

	_, err := New("rk45")
	if err == nil {
		t.Fatal("expected error for unknown method")
	}
	if !errors.Is(err, quantum.ErrUnknownIntegrator) {
		t.Errorf("expected ErrUnknownIntegrator, got %v", err)
	}
}

func TestEuler_SingleStep(t *testing.T) {
	integ := NewEuler()
	phi := quantum.Wavefunction{1}

	phi = integ.Step(decay, phi, 0.1)
	if cmplx.Abs(phi[0]-0.9) > 1e-12 {
		t.Errorf("got %v, want 0.9", phi[0])
	}
}

func TestRK4_DecayAccuracy(t *testing.T) {
	integ := NewRK4()
	phi := quantum.Wavefunction{1}
	dt := complex(0.01, 0)

	for i := 0; i < 100; i++ {
		phi = integ.Step(decay, phi, dt)
	}

	expected := math.Exp(-1)
	if math.Abs(real(phi[0])-expected) > 1e-9 {
		t.Errorf("got %v, want %v", real(phi[0]), expected)
	}
}

func TestRK4_ComplexRotation(t *testing.T) {
	integ := NewRK4()
	phi := quantum.Wavefunction{1}
	dt := complex(0.01, 0)

	for i := 0; i < 100; i++ {
		phi = integ.Step(rotate, phi, dt)
	}

	expected := cmplx.Exp(-1i)
	if cmplx.Abs(phi[0]-expected) > 1e-9 {
		t.Errorf("got %v, want %v", phi[0], expected)
	}
	// Magnitude stays on the unit circle.
	if math.Abs(cmplx.Abs(phi[0])-1) > 1e-9 {
		t.Errorf("|phi| = %v, want 1", cmplx.Abs(phi[0]))
	}
}

func TestRK4_ImaginaryTimeStep(t *testing.T) {
	// With dt = -i*tau the rotation generator becomes pure decay:
	// the arithmetic is unchanged, only the step value differs.
	integ := NewRK4()
	phi := quantum.Wavefunction{1}
	dt := complex(0, -0.01)

	for i := 0; i < 100; i++ {
		phi = integ.Step(rotate, phi, dt)
	}

	expected := math.Exp(-1)
	if math.Abs(real(phi[0])-expected) > 1e-9 {
		t.Errorf("got %v, want %v", real(phi[0]), expected)
	}
	if math.Abs(imag(phi[0])) > 1e-12 {
		t.Errorf("imaginary leak: %v", imag(phi[0]))
	}
}

func TestStep_DoesNotMutateInput(t *testing.T) {
	for _, name := range []string{"euler", "rk4"} {
		integ, err := New(name)
		if err != nil {
			t.Fatal(err)
		}
		phi := quantum.Wavefunction{1, 2i, 3}
		orig := phi.Clone()
		_ = integ.Step(decay, phi, 0.1)
		for i := range orig {
			if phi[i] != orig[i] {
				t.Errorf("%s mutated input at %d", name, i)
			}
		}
	}
}

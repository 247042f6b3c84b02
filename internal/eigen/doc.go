// Package eigen extracts stationary states by imaginary-time evolution
// with deflation.
//
// Replacing dt with -i*|dt| turns the Schrödinger propagator into a
// decay map: each eigencomponent shrinks at a rate proportional to its
// energy, so repeated stepping plus renormalization leaves the ground
// state. Excited states follow by Gram-Schmidt deflation against the
// states already found, applied both to the trial state and after
// every integration step (integration error otherwise leaks amplitude
// back into converged states).
//
//	ext, _ := eigen.New(g, v, cfg)
//	states, _ := ext.Spectrum(trialFn, 4)
//
// Convergence is not checked; an insufficient step count simply yields
// an unconverged state, visible via [PhaseOnly] on a real-time re-run.
package eigen

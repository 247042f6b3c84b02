// Package analysis provides post-run observables for wavefunction
// snapshots.
//
// The package computes diagnostics over a single state or a stored
// trace:
//
//   - [Norm]: cell-volume-weighted L2 norm
//   - [MeanPosition], [Variance]: moments of the |phi|^2 distribution
//   - [Energy]: expectation of the discrete Hamiltonian
//   - [Overlap]: |<a|b>| between two states
//   - [MomentumSpectrum], [Wavenumbers]: FFT magnitude per mode
//
// # Spreading Diagnostics
//
// A free packet's growing variance is the standard spreading check:
//
//	v := analysis.Variance(trace.Final(), g.Points(), g.CellVolume())
package analysis

// Package quantum provides core types for wavefunction simulation.
//
// The package defines the fundamental value types shared by the solver
// packages:
//
//   - [Wavefunction]: complex-valued state sampled on a spatial grid
//   - [Potential]: real-valued V(x) sampled on the same grid
//
// All norms and inner products are weighted by the grid cell volume,
// so a normalized state satisfies sum(|psi_i|^2) * dv == 1.
//
// # Error Policy
//
// Only configuration problems are errors, and they are raised before a
// run starts. Explicit time stepping is applied unconditionally; a
// diverging state is visible in the output, not in an error value.
// [Wavefunction.IsValid] exists for diagnostics only.
package quantum

// Package solver defines the boundary to the external flapping-wing
// aerodynamics solver.
//
// The solver is consumed as an opaque collaborator: given a complete case
// spec it returns the per-step wind-axes force series for the run. Nothing
// in this repository implements or inspects its numerics.
//
//   - [Solver]: runs one case and probes availability
//   - [Exec]: subprocess-backed implementation (JSON over stdin/stdout)
//   - [Mock]: scripted implementation for tests
//   - [ForceSeries]: per-step forces returned by a run
//
// # Example
//
//	sv := solver.NewExec(solver.DefaultExecConfig())
//	if err := sv.Probe(ctx); err != nil {
//	    return err
//	}
//	series, err := sv.Run(ctx, cs.Spec(true))
//
// # Availability
//
// Probe resolves the solver command on PATH and validates it by running
// --version. Collectors probe before creating any output file, so a
// missing solver fails with nothing written.
package solver

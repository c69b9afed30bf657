// Package sweep expands case parameters into runnable simulation cases.
//
// Three expansions cover the collection campaigns:
//
//   - [Axes.Cases]: the full Cartesian grid over explicit value lists
//   - [Space.Sample]: Latin hypercube draws, balanced across airfoils
//   - [BaselineCases]: geometry and kinematics swept one group at a time
//     around a fixed reference wing
//
// All expansions are deterministic given their inputs; sampling takes an
// explicit random source so runs can be reproduced from a seed.
package sweep

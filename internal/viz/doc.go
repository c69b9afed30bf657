// Package viz provides terminal-based visualization for sweep runs.
//
// The package implements a live dashboard using the Bubble Tea framework:
//
//   - [Model]: dashboard that drives a sweep case by case while rendering
//     progress, the latest averages, and a lift history chart
//   - [SeriesChart]: ASCII chart of a force series for quick inspection
//   - [SavePNG]: force series rendered to a PNG file via gonum/plot
//
// # Key Bindings
//
//	Space - Pause/Resume (the case in flight always finishes)
//	Q     - Quit, keeping rows already appended
package viz

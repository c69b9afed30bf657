// Package collect runs simulation cases against the external solver and
// appends their time-averaged forces to flat CSV tables.
//
// A [Collector] supports two sweep modes:
//
//   - [Collector.Run]: strict, for curated grids. Every case must succeed;
//     the first failure stops the sweep and propagates.
//   - [Collector.Sample]: recording, for broad sampled datasets. Each case
//     lands as ok, skipped, or error; failures go to a side table and the
//     sweep continues.
//
// Both modes probe solver availability before any output file is created,
// so a missing solver leaves nothing on disk.
package collect

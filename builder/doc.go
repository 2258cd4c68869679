// SPDX-License-Identifier: MIT
// Package: sociograph/builder
//
// Package builder generates synthetic social networks for tests, benchmarks
// and the CLI's generate command.
//
// Compose topologies with BuildGraph; each constructor adds a fresh block of
// IDs, so
//
//	g, err := builder.BuildGraph(
//	    []builder.Option{builder.WithSeed(1), builder.WithRandomAttributes()},
//	    builder.Star(5),             // IDs 0..4, hub 0
//	    builder.RandomSparse(20, 0.1), // IDs 5..24
//	)
//
// yields a star plus an independent random community. Edge weights come from
// weight.Euclidean unless WithWeightFunc says otherwise.
package builder

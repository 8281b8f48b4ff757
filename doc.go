// Package hmatrix is a pairwise string similarity/distance matrix
// engine: given a collection of strings, it fills a triangular or
// rectangular matrix of pairwise scores under any measure implementing
// the measure.Measure interface, in parallel, with range and block-split
// support for distributed execution.
//
// 🚀 What is hmatrix?
//
//	A thread-safe library that brings together:
//		• String values: tagged byte/token sequences with label/source metadata
//		• Delimiter-driven tokenization: %HH-escaped delimiter specs, one-way symbolization
//		• Fast hashing: stable-seed 64-bit hashing and symmetric pair-hash
//		• A measure catalog: Levenshtein, Damerau, Hamming, Jaro, Jaro-Winkler,
//		  Lee, bag distance, n-gram and subsequence kernels, and the
//		  set-coefficient family (Jaccard, Simpson, Braun-Blanquet, Dice,
//		  Sokal-Sneath, Kulczynski, Otsuka)
//		• A parallel compute driver: errgroup-bounded fan-out with a
//		  sequential fallback and throttled progress/log reporting
//
// ✨ Why choose hmatrix?
//
//   - Centralized index arithmetic – triangular Get/Set canonicalize
//     through one function, closing the asymmetry a naive port would
//     otherwise introduce
//   - Representation-agnostic measures – every algorithm scores BYTES and
//     TOKENS StringValues identically
//   - Distributed-friendly – half-open ranges and block splits let a host
//     shard one collection's matrix across processes
//
// Under the hood, everything is organized under dedicated subpackages:
//
//	strval/           — StringValue, the tagged byte/token container
//	delim/            — delimiter table, spec parsing, symbolization
//	xhash/            — stable-seed 64-bit hashing and pair-hash
//	measure/          — Measure interface, dispatch registry, match-triple model
//	measure/catalog/  — concrete measures implementing the interface
//	matrix/           — Matrix storage, range/split parsing, compute driver
//	hmatrixcfg/       — flat configuration map and typed accessors
//	diag/             — structured warning/info diagnostics
//
//	go get github.com/katalvlaran/hmatrix
package hmatrix

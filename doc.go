// Package wordgraph is an in-memory engine for the word graphs (decoding
// lattices) produced by a phrase-based statistical machine translation
// decoder for one source sentence.
//
// What is a word graph?
//
//	A directed acyclic graph whose state 0 is the initial state and whose
//	arcs carry target words and a log score. Every path from state 0 to a
//	final state is one translation hypothesis; its score is the initial
//	score plus the sum of its arc scores.
//
// Packages:
//
//	core/      - Graph arena: arcs, states, pruned flags, components, weights
//	propagate/ - forward (prev) and backward (rest) score passes
//	bestpath/  - best path from a state to the best final state
//	prune/     - posterior-style threshold pruning
//	topo/      - topological arc order and cycle detection
//	reach/     - reachable and useful states, useful-state subgraph
//	nbest/     - bounded best-first k-best extraction
//	format/    - text reader/writer, n-best and best-path reports
//	builder/   - synthetic lattices for tests and benchmarks
//	config/    - YAML/HCL + environment settings for wgproc
//	cmd/wgproc - command-line front end
//
// Quick ASCII example:
//
//	      the (-0.1)       house (-0.2)
//	  [0] ─────────▶ [1] ──────────▶ ((2))
//	     ─────────▶     ──────────▶
//	      a (-0.7)         home (-0.4)
//
//	four hypotheses; the best is "the house" with score -0.3.
//
// Arcs are expected in topological order (arc ids ascending along every
// path); topo.OrderArcs restores it after arbitrary insertion.
package wordgraph

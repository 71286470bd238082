package main

import (
	"context"
	"time"

	"github.com/katalvlaran/wordgraph/bestpath"
	"github.com/katalvlaran/wordgraph/core"
	"github.com/katalvlaran/wordgraph/format"
	"github.com/katalvlaran/wordgraph/internal/ctxlog"
	"github.com/katalvlaran/wordgraph/nbest"
	"github.com/katalvlaran/wordgraph/prune"
	"github.com/katalvlaran/wordgraph/reach"
	"github.com/katalvlaran/wordgraph/topo"
)

// processGraph loads one word graph and runs the requested operations.
// Destructive steps work on clones, so every operation sees the graph as
// loaded.
func processGraph(ctx context.Context, path, prefix string, job jobSpec) error {
	logger := ctxlog.FromContext(ctx)

	var gopts []core.GraphOption
	if job.sparse {
		gopts = append(gopts, core.WithSparseStates())
	}
	wg, err := format.Load(path, gopts...)
	if err != nil {
		return err
	}
	logger.Info("word graph loaded", "states", wg.NumStates(), "arcs", wg.NumArcs())

	pruned := func() (*core.Graph, int, error) {
		c := wg.Clone()
		n, err := prune.Prune(c, job.threshold, prune.WithContext(ctx), prune.WithLogger(logger))
		return c, n, err
	}

	// Pruning
	if job.prune {
		start := time.Now()
		c, n, err := pruned()
		if err != nil {
			return err
		}
		total := c.NumArcs()
		pct := 0.0
		if total > 0 {
			pct = 100 * float64(n) / float64(total)
		}
		logger.Info("word graph pruned",
			"threshold", job.threshold, "arcs", total, "pruned", n,
			"percent", pct, "elapsed", time.Since(start))
		if err = format.Save(prefix+".wgp", c); err != nil {
			return err
		}
	}

	// Best path
	if job.bp {
		var opts []bestpath.Option
		if len(job.bpWeights) > 0 {
			opts = append(opts, bestpath.WithAltWeights(job.bpWeights))
		}
		p, err := bestpath.BestPathToFinal(wg, job.bpState, opts...)
		if err != nil {
			return err
		}
		logger.Info("best path", "from", job.bpState, "score", p.Score, "found", p.Found())
		if err = format.SaveBestPath(prefix+".bp", wg, p, job.bpWeights); err != nil {
			return err
		}
	}

	// N-best list
	if job.nbest > 0 {
		src, out := wg, prefix+".nbl"
		if job.prune {
			if src, _, err = pruned(); err != nil {
				return err
			}
			out = prefix + ".nbl_pruned"
		}
		list, err := nbest.Search(src, job.nbest,
			nbest.WithContext(ctx),
			nbest.WithLogger(logger),
			nbest.WithStackSize(job.stackSize),
			nbest.WithMaxIterations(job.maxIters))
		if err != nil {
			return err
		}
		logger.Info("n-best list", "requested", job.nbest, "found", len(list))
		if err = format.SaveNBest(out, src.ComponentWeights(), list); err != nil {
			return err
		}
	}

	// Topological arc order
	if job.topo {
		c := wg.Clone()
		if err := topo.OrderArcs(c, topo.WithCancelContext(ctx), topo.WithLogger(logger)); err != nil {
			return err
		}
		if err := format.Save(prefix+".wg_arcs_top_order", c); err != nil {
			return err
		}
	}

	// Useful states
	if job.useful {
		src, out := wg, prefix+".wg_useful"
		if job.prune {
			if src, _, err = pruned(); err != nil {
				return err
			}
			out = prefix + ".wg_useful_pruned"
		}
		start := time.Now()
		sub, u, err := reach.UsefulSubgraph(src, reach.WithContext(ctx))
		if err != nil {
			return err
		}
		logger.Info("useful states", "states", src.NumStates(), "useful", u.Count, "elapsed", time.Since(start))
		if err = format.Save(out, sub); err != nil {
			return err
		}
	}

	return nil
}

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/wordgraph/config"
	"github.com/katalvlaran/wordgraph/core"
	"github.com/katalvlaran/wordgraph/internal/ctxlog"
	"github.com/katalvlaran/wordgraph/internal/telemetry"
)

var errNoWordGraph = errors.New("at least one word graph (-w) is required")

// rootFlags holds the parsed command line.
type rootFlags struct {
	wordGraphs []string
	threshold  float64
	bp         string
	nbest      int
	topo       bool
	useful     bool
	output     string
	configPath string
	verbose    bool
	telemetry  string
	logFormat  string
}

func newRootCmd() *cobra.Command {
	var f rootFlags

	cmd := &cobra.Command{
		Use:   "wgproc -w FILE [-w FILE...] [flags]",
		Short: "Process word graphs produced by a phrase-based decoder",
		Long: `Process one or more word graphs.

Operations (any combination, run in this order for every graph):
  --wgp T   prune with threshold T in [0,1] and write <o>.wgp
  --bp S    best path from state S, optionally "S w1 w2 ..." with
            alternative component weights, written to <o>.bp
  -n N      N-best list written to <o>.nbl (<o>.nbl_pruned with --wgp)
  -t        arcs in topological order written to <o>.wg_arcs_top_order
  -u        useful states only, <o>.wg_useful (<o>.wg_useful_pruned with --wgp)

With several graphs the prefix of each becomes <o>.<graph base name>.

Examples:
  wgproc -w sent1.wg --wgp 0.01 -o out/sent1
  wgproc -w sent1.wg -n 100 --bp "0 1 0.5 1" -o out/sent1
  wgproc -w a.wg -w b.wg -t -u -o out/batch --config wgproc.yaml`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runRoot(cmd, f)
		},
	}

	fl := cmd.Flags()
	fl.StringArrayVarP(&f.wordGraphs, "wordgraph", "w", nil, "word graph file (repeatable)")
	fl.Float64Var(&f.threshold, "wgp", core.Unlimited, "pruning threshold in [0,1]")
	fl.StringVar(&f.bp, "bp", "", `best path from a state: "state [w1 w2 ...]"`)
	fl.IntVarP(&f.nbest, "nbest", "n", 0, "n-best list length")
	fl.BoolVarP(&f.topo, "topo", "t", false, "write the graph with topologically ordered arcs")
	fl.BoolVarP(&f.useful, "useful", "u", false, "write the graph restricted to useful states")
	fl.StringVarP(&f.output, "output", "o", "", "output prefix (default: graph path without extension)")
	fl.StringVar(&f.configPath, "config", "", "YAML or HCL configuration file")
	fl.BoolVarP(&f.verbose, "verbose", "v", false, "debug logging")
	fl.StringVar(&f.telemetry, "telemetry", "", "telemetry exporter: none or stdout")
	fl.StringVar(&f.logFormat, "log-format", "", "log format: text or json")

	cmd.AddCommand(newGenCmd())

	return cmd
}

// jobSpec is the resolved set of operations applied to every graph.
type jobSpec struct {
	prune      bool
	threshold  float64
	bp         bool
	bpState    core.StateID
	bpWeights  []float64
	nbest      int
	topo       bool
	useful     bool
	stackSize  int
	maxIters   int
	sparse     bool
}

func runRoot(cmd *cobra.Command, f rootFlags) error {
	if len(f.wordGraphs) == 0 {
		return errNoWordGraph
	}

	// 1. Configuration, flags win over file and environment
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return err
	}
	fl := cmd.Flags()
	if fl.Changed("wgp") {
		cfg.PruneThreshold = f.threshold
	}
	if fl.Changed("nbest") {
		cfg.NBest = f.nbest
	}
	if f.verbose {
		cfg.LogLevel = "debug"
	}
	if f.telemetry != "" {
		cfg.Telemetry = f.telemetry
	}
	if f.logFormat != "" {
		cfg.LogFormat = f.logFormat
	}
	if err = cfg.Validate(); err != nil {
		return err
	}
	if cfg.PruneThreshold != core.Unlimited && cfg.PruneThreshold > 1 {
		return fmt.Errorf("%w: pruning threshold %v outside [0,1]", config.ErrInvalidConfig, cfg.PruneThreshold)
	}

	job := jobSpec{
		prune:      cfg.PruneThreshold != core.Unlimited,
		threshold:  cfg.PruneThreshold,
		nbest:      cfg.NBest,
		topo:       f.topo,
		useful:     f.useful,
		stackSize:  cfg.StackSize,
		maxIters:   cfg.MaxIterations,
		sparse:     cfg.SparseStates,
	}
	if f.bp != "" {
		job.bp = true
		if job.bpState, job.bpWeights, err = parseBestPathArg(f.bp); err != nil {
			return err
		}
	}

	// 2. Logging and telemetry
	logger := newLogger(cmd.ErrOrStderr(), cfg)
	ctx := ctxlog.WithLogger(cmd.Context(), logger)

	tcfg := telemetry.DefaultConfig()
	tcfg.Exporter = cfg.Telemetry
	tcfg.Writer = cmd.ErrOrStderr()
	shutdown, err := telemetry.Init(ctx, tcfg)
	if err != nil {
		return err
	}
	defer func() {
		if serr := shutdown(context.Background()); serr != nil {
			logger.Warn("telemetry shutdown failed", "error", serr)
		}
	}()

	// 3. Graphs in parallel
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Workers)
	for _, path := range f.wordGraphs {
		path := path
		prefix := outputPrefix(f.output, path, len(f.wordGraphs) > 1)
		g.Go(func() error {
			wctx := ctxlog.WithLogger(gctx, logger.With("graph", path))
			if err := processGraph(wctx, path, prefix, job); err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			return nil
		})
	}

	return g.Wait()
}

// parseBestPathArg splits "state [w1 w2 ...]".
func parseBestPathArg(s string) (core.StateID, []float64, error) {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return core.InvalidState, nil, fmt.Errorf("--bp: missing state")
	}
	st, err := strconv.Atoi(fields[0])
	if err != nil || st < 0 {
		return core.InvalidState, nil, fmt.Errorf("--bp: invalid state %q", fields[0])
	}
	var weights []float64
	for _, tok := range fields[1:] {
		w, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			return core.InvalidState, nil, fmt.Errorf("--bp: invalid weight %q", tok)
		}
		weights = append(weights, w)
	}

	return core.StateID(st), weights, nil
}

// outputPrefix derives the file prefix for one graph.
func outputPrefix(output, path string, many bool) string {
	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	switch {
	case output == "":
		return strings.TrimSuffix(path, filepath.Ext(path))
	case many:
		return output + "." + base
	default:
		return output
	}
}

func newLogger(w io.Writer, cfg config.Config) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.SlogLevel()}
	if cfg.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}

	return slog.New(slog.NewTextHandler(w, opts))
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/wordgraph/builder"
	"github.com/katalvlaran/wordgraph/format"
)

type genFlags struct {
	kind       string
	words      []string
	slots      int
	width      int
	states     int
	extra      int
	seed       int64
	components int
	minScore   float64
	maxScore   float64
	output     string
}

func newGenCmd() *cobra.Command {
	var f genFlags

	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate a synthetic word graph",
		Long: `Generate a word graph in the text format read by wgproc.

Kinds:
  chain      one path emitting --words
  confusion  --slots slots of --width parallel arcs
  random     random acyclic lattice of --states states and --extra extra arcs

Examples:
  wgproc gen --kind confusion --slots 5 --width 3 --seed 1 -o cn.wg
  wgproc gen --kind random --states 200 --extra 800 --components 3`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGen(cmd, f)
		},
	}

	fl := cmd.Flags()
	fl.StringVar(&f.kind, "kind", "confusion", "chain, confusion or random")
	fl.StringSliceVar(&f.words, "words", []string{"hello", "world"}, "words of a chain")
	fl.IntVar(&f.slots, "slots", 3, "confusion network slots")
	fl.IntVar(&f.width, "width", 2, "confusion network alternatives per slot")
	fl.IntVar(&f.states, "states", 10, "random lattice states")
	fl.IntVar(&f.extra, "extra", 10, "random lattice extra arcs")
	fl.Int64Var(&f.seed, "seed", 1, "random seed")
	fl.IntVar(&f.components, "components", 0, "score components per arc")
	fl.Float64Var(&f.minScore, "min-score", -5, "lowest arc (or component) score")
	fl.Float64Var(&f.maxScore, "max-score", 0, "highest arc (or component) score")
	fl.StringVarP(&f.output, "output", "o", "", "output file (default: stdout)")

	return cmd
}

func runGen(cmd *cobra.Command, f genFlags) error {
	if f.minScore > f.maxScore || f.maxScore > 0 {
		return fmt.Errorf("scores must satisfy min-score <= max-score <= 0")
	}
	if f.components < 0 {
		return fmt.Errorf("components must be >= 0")
	}

	var con builder.Constructor
	switch f.kind {
	case "chain":
		con = builder.Chain(f.words...)
	case "confusion":
		con = builder.ConfusionNetwork(f.slots, f.width)
	case "random":
		con = builder.RandomLattice(f.states, f.extra)
	default:
		return fmt.Errorf("unknown kind %q", f.kind)
	}

	g, err := builder.BuildGraph(nil, []builder.BuilderOption{
		builder.WithSeed(f.seed),
		builder.WithUniformScore(f.minScore, f.maxScore),
		builder.WithComponents(f.components),
	}, con)
	if err != nil {
		return err
	}

	if f.output == "" {
		return format.Write(cmd.OutOrStdout(), g)
	}

	return format.Save(f.output, g)
}

package format

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/wordgraph/bestpath"
	"github.com/katalvlaran/wordgraph/core"
	"github.com/katalvlaran/wordgraph/nbest"
	"github.com/katalvlaran/wordgraph/prune"
	"github.com/katalvlaran/wordgraph/reach"
)

// Write prints g in the format accepted by Read: the weight header when
// weights are set, the final states that are not pruned away, then every
// non-pruned arc in ArcID order.
func Write(w io.Writer, g *core.Graph, opts ...WriteOption) error {
	if g == nil {
		return ErrGraphNil
	}
	var o writeOptions
	for _, opt := range opts {
		opt(&o)
	}

	var useful *reach.Useful
	if o.onlyUseful {
		var err error
		if useful, err = reach.UsefulStates(g); err != nil {
			return fmt.Errorf("format: useful states: %w", err)
		}
	}

	bw := bufio.NewWriter(w)

	// 1. Header
	if ws := g.ComponentWeights(); len(ws) > 0 {
		writeWeights(bw, ws)
	}

	// 2. Final states
	first := true
	for _, s := range g.FinalStates() {
		if prune.FinalStatePruned(g, s) {
			continue
		}
		if !first {
			bw.WriteByte(' ')
		}
		bw.WriteString(strconv.Itoa(int(s)))
		first = false
	}
	bw.WriteByte('\n')

	// 3. Arcs
	pruned := g.PrunedFlags()
	for i, a := range g.Arcs() {
		if pruned[i] {
			continue
		}
		if useful != nil && !(useful.IsUseful(a.Pred) && useful.IsUseful(a.Succ)) {
			continue
		}
		comps, _ := g.Components(core.ArcID(i))
		writeArc(bw, a, comps)
	}

	return bw.Flush()
}

// Save writes g to the file at path, truncating it.
func Save(path string, g *core.Graph, opts ...WriteOption) error {
	return saveWith(path, func(w io.Writer) error { return Write(w, g, opts...) })
}

// WriteNBest prints an n-best list: the weight header when ws is not empty,
// then one "score ||| comps ||| arc ids ||| translation" line per entry.
func WriteNBest(w io.Writer, ws core.Weights, entries []nbest.Entry) error {
	bw := bufio.NewWriter(w)
	if len(ws) > 0 {
		writeWeights(bw, ws)
	}
	for _, e := range entries {
		bw.WriteString(formatFloat(e.Score))
		bw.WriteString(" " + separator)
		for _, c := range e.Components {
			bw.WriteString(" " + formatFloat(c))
		}
		bw.WriteString(" " + separator)
		for _, id := range e.Arcs {
			bw.WriteString(" " + strconv.Itoa(int(id)))
		}
		bw.WriteString(" " + separator)
		if e.Sentence != "" {
			bw.WriteString(" " + e.Sentence)
		}
		bw.WriteByte('\n')
	}

	return bw.Flush()
}

// WriteBestPath prints a best-path report:
//
//	-bp <start> [w1 w2 ...]
//	pred -> succ word ...        one line per arc, start to end
//	Score: <score>
//	<sentence>
func WriteBestPath(w io.Writer, g *core.Graph, p *bestpath.Path, altWeights []float64) error {
	if g == nil {
		return ErrGraphNil
	}
	bw := bufio.NewWriter(w)

	bw.WriteString("-bp " + strconv.Itoa(int(p.Start)))
	for _, v := range altWeights {
		bw.WriteString(" " + formatFloat(v))
	}
	bw.WriteByte('\n')

	var words []string
	for _, id := range p.Forward() {
		a, err := g.Arc(id)
		if err != nil {
			return fmt.Errorf("format: best path: %w", err)
		}
		fmt.Fprintf(bw, "%d -> %d", a.Pred, a.Succ)
		for _, word := range a.Words {
			bw.WriteString(" " + word)
		}
		bw.WriteByte('\n')
		words = append(words, a.Words...)
	}
	bw.WriteString("Score: " + formatFloat(p.Score) + "\n")
	bw.WriteString(strings.Join(words, " ") + "\n")

	return bw.Flush()
}

func writeWeights(bw *bufio.Writer, ws core.Weights) {
	bw.WriteString("#")
	for i, wt := range ws {
		if i > 0 {
			bw.WriteString(" ,")
		}
		bw.WriteString(" " + wt.Name + " " + formatFloat(wt.Value))
	}
	bw.WriteByte('\n')
}

func writeArc(bw *bufio.Writer, a core.Arc, comps []float64) {
	fmt.Fprintf(bw, "%d %d %s", a.Pred, a.Succ, formatFloat(a.Score))
	if comps != nil {
		bw.WriteString(" " + separator)
		for _, c := range comps {
			bw.WriteString(" " + formatFloat(c))
		}
		bw.WriteString(" " + separator)
	}
	for _, word := range a.Words {
		bw.WriteString(" " + word)
	}
	bw.WriteByte('\n')
}

// formatFloat uses the shortest representation that parses back exactly.
func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// saveWith creates path and runs write against it, reporting the first error.
func saveWith(path string, write func(io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("format: create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("format: close %s: %w", path, cerr)
		}
	}()

	return write(f)
}

// SaveNBest writes an n-best list to the file at path.
func SaveNBest(path string, ws core.Weights, entries []nbest.Entry) error {
	return saveWith(path, func(w io.Writer) error { return WriteNBest(w, ws, entries) })
}

// SaveBestPath writes a best-path report to the file at path.
func SaveBestPath(path string, g *core.Graph, p *bestpath.Path, altWeights []float64) error {
	return saveWith(path, func(w io.Writer) error { return WriteBestPath(w, g, p, altWeights) })
}

package format

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/wordgraph/core"
)

const maxLineSize = 16 * 1024 * 1024

// Read parses a word graph from r.
//
// Layout:
//
//	# name1 w1 , name2 w2        optional component-weight header
//	f1 f2 ...                    final states (may be empty)
//	pred succ score [||| c1 c2 ... |||] word1 word2 ...
//
// The header weights are stored without rescoring. Arc lines with fewer
// than three fields are skipped. Graphs written with OnlyUseful may skip
// state numbers; read them with core.WithSparseStates.
//
// Errors: ErrSyntax (wrapped with the line number), read errors.
func Read(r io.Reader, opts ...core.GraphOption) (*core.Graph, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	g := core.NewGraph(opts...)

	lineNo := 0
	next := func() ([]string, bool) {
		if !sc.Scan() {
			return nil, false
		}
		lineNo++
		return strings.Fields(sc.Text()), true
	}

	// 1. Header and final states
	fields, ok := next()
	if !ok {
		return g, sc.Err()
	}
	if len(fields) > 0 && fields[0] == "#" {
		w, err := parseWeights(fields[1:])
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrSyntax, lineNo, err)
		}
		g.SetComponentWeights(w) // no arcs yet: stored, nothing rescored
		if fields, ok = next(); !ok {
			return g, sc.Err()
		}
	}
	for _, f := range fields {
		s, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: final state %q", ErrSyntax, lineNo, f)
		}
		if err = g.AddFinalState(core.StateID(s)); err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrSyntax, lineNo, err)
		}
	}

	// 2. Arcs
	for {
		fields, ok = next()
		if !ok {
			break
		}
		if len(fields) < 3 {
			continue
		}
		if err := addArcLine(g, fields); err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrSyntax, lineNo, err)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("format: read: %w", err)
	}

	return g, nil
}

// Load reads a word graph from the file at path.
func Load(path string, opts ...core.GraphOption) (*core.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("format: open word graph: %w", err)
	}
	defer f.Close()

	g, err := Read(f, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return g, nil
}

// parseWeights reads "name value , name value ..." tokens.
func parseWeights(tokens []string) (core.Weights, error) {
	var w core.Weights
	for i := 0; i < len(tokens); i += 3 {
		if i+1 >= len(tokens) {
			return nil, fmt.Errorf("weight %q has no value", tokens[i])
		}
		v, err := strconv.ParseFloat(tokens[i+1], 64)
		if err != nil {
			return nil, fmt.Errorf("weight %q: %v", tokens[i], err)
		}
		if i+2 < len(tokens) && tokens[i+2] != "," {
			return nil, fmt.Errorf("expected ',' after weight %q, got %q", tokens[i], tokens[i+2])
		}
		w = append(w, core.Weight{Name: tokens[i], Value: v})
	}

	return w, nil
}

// addArcLine parses one arc line with at least three fields.
func addArcLine(g *core.Graph, fields []string) error {
	pred, err := strconv.Atoi(fields[0])
	if err != nil {
		return fmt.Errorf("predecessor %q", fields[0])
	}
	succ, err := strconv.Atoi(fields[1])
	if err != nil {
		return fmt.Errorf("successor %q", fields[1])
	}
	score, err := strconv.ParseFloat(fields[2], 64)
	if err != nil {
		return fmt.Errorf("score %q", fields[2])
	}

	col := 3
	var comps []float64
	if col < len(fields) && fields[col] == separator {
		col++
		comps = []float64{}
		for ; col < len(fields) && fields[col] != separator; col++ {
			c, err := strconv.ParseFloat(fields[col], 64)
			if err != nil {
				return fmt.Errorf("component %q", fields[col])
			}
			comps = append(comps, c)
		}
		if col == len(fields) {
			return fmt.Errorf("unterminated component list")
		}
		col++
	}

	_, err = g.AddArcWithComponents(core.StateID(pred), core.StateID(succ), fields[col:], score, comps)

	return err
}

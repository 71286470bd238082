package format_test

import (
	"os"
	"strings"

	"github.com/katalvlaran/wordgraph/format"
	"github.com/katalvlaran/wordgraph/prune"
)

func ExampleWrite() {
	g, _ := format.Read(strings.NewReader("2\n0 1 -1 a\n0 1 -3 b\n1 2 -1 c\n"))
	_, _ = prune.Prune(g, 0.5)
	_ = format.Write(os.Stdout, g)
	// Output:
	// 2
	// 0 1 -1 a
	// 1 2 -1 c
}

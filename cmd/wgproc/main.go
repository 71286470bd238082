// Command wgproc processes word graphs: pruning, best paths, n-best lists,
// topological arc ordering and useful-state extraction.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "wgproc:", err)
		os.Exit(1)
	}
}

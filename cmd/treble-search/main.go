// treble-search filters a library from the command line and prints the
// visible tree, for scripting and for inspecting a library without the UI.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/trebletui/treble/internal/app"
	"github.com/trebletui/treble/internal/config"
	"github.com/trebletui/treble/internal/index"
	"github.com/trebletui/treble/internal/library"
)

func main() {
	libPath := flag.String("library", "", "Library file (JSON or M3U)")
	base := flag.String("base", "", "Base directory to strip from record paths")
	mode := flag.String("mode", config.ModePath, "Tree layout: tags or path")
	flag.Parse()

	if *libPath == "" {
		fmt.Fprintln(os.Stderr, "Usage: treble-search -library <file> [-base dir] [-mode tags|path] [terms...]")
		os.Exit(1)
	}

	lib, err := library.Load(*libPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	ix := app.BuildIndex(lib, *mode, *base)
	ix.Search(index.ParseTerms(strings.Join(flag.Args(), " ")))

	printLevel(ix, nil, 0)
}

func printLevel(ix *index.Index, n *index.Node, depth int) {
	for _, child := range ix.VisibleChildren(n) {
		indent := strings.Repeat("  ", depth)
		if child.Leaf() {
			fmt.Printf("%s%s\n", indent, child.Name)
		} else {
			fmt.Printf("%s%s (%d)\n", indent, child.Name, len(child.Matches))
		}
		printLevel(ix, child, depth+1)
	}
}

// Command gridpathview is a terminal demo that loads a scenario, runs
// FindPath, and draws the result with the visual package. It draws exactly
// one precomputed map and exits on any keypress; the engine library itself
// exposes no CLI or wire protocol, and this demo does not reopen one.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"

	"github.com/gridpath-dev/gridpath/scenario"
	"github.com/gridpath-dev/gridpath/visual"
)

func main() {
	path := flag.String("scenario", "", "path to a scenario YAML file")
	flag.Parse()

	if *path == "" {
		fmt.Fprintln(os.Stderr, "usage: gridpathview -scenario <file.yaml>")
		os.Exit(2)
	}

	s, err := scenario.Load(*path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "gridpathview: %v\n", err)
		os.Exit(1)
	}

	m := s.NewMap()
	foundPath, ok := m.FindPath(s.StartPos(), s.EndPos())
	if !ok {
		fmt.Fprintf(os.Stderr, "gridpathview: no route for scenario %q\n", s.Name)
		os.Exit(1)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "gridpathview: create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "gridpathview: init screen: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()

	screen.Clear()
	visual.Draw(screen, m, foundPath, 1, 1)
	screen.Show()

	for {
		ev := screen.PollEvent()
		switch ev.(type) {
		case *tcell.EventKey, *tcell.EventInterrupt:
			return
		}
	}
}

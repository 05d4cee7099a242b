package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/milk9111/dropbar/prefabs"
)

func main() {
	specFile := flag.String("spec", prefabs.DefaultSpecFile, "drop bar spec file")
	flag.Parse()

	spec, err := prefabs.LoadDropBarSpec(*specFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	program := tea.NewProgram(New(spec.Config()), tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := program.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

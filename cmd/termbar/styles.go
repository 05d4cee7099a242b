package main

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/milk9111/dropbar/component"
	"github.com/milk9111/dropbar/prefabs"
)

var helpStyle = lipgloss.NewStyle().
	Foreground(lipgloss.AdaptiveColor{Light: "#999999", Dark: "#666666"})

func stageStyle(cfg component.Config) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(prefabs.Hex(cfg.Foreground))).
		Background(lipgloss.Color(prefabs.Hex(cfg.Background)))
}

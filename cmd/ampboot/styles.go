package main

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title   lipgloss.Style
	detail  lipgloss.Style
	warning lipgloss.Style
	success lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:   lipgloss.NewStyle().Bold(true),
		detail:  lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		warning: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		success: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42")),
	}
}

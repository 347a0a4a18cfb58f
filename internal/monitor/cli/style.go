package cli

import (
	"BPJS_Monitoring_Service/internal/monitor/model"

	"github.com/charmbracelet/lipgloss"
)

var (
	green  = lipgloss.Color("#10B981")
	red    = lipgloss.Color("#EF4444")
	yellow = lipgloss.Color("#F59E0B")
	dim    = lipgloss.Color("#6B7280")

	healthy   = lipgloss.NewStyle().Foreground(green).Bold(true)
	unhealthy = lipgloss.NewStyle().Foreground(red).Bold(true)
	warning   = lipgloss.NewStyle().Foreground(yellow)
	dimText   = lipgloss.NewStyle().Foreground(dim)

	title = lipgloss.NewStyle().Bold(true).MarginBottom(1)

	errorBox = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(red).
		Foreground(red).
		Padding(0, 1)

	successBox = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(green).
		Foreground(green).
		Padding(0, 1)
)

func outcomeStyle(outcome string) lipgloss.Style {
	switch outcome {
	case model.OutcomeSuccess:
		return healthy
	case model.OutcomeTimeout:
		return warning
	default:
		return unhealthy
	}
}

func severityStyle(severity string) lipgloss.Style {
	switch severity {
	case model.SeverityExcellent, model.SeverityGood:
		return healthy
	case model.SeveritySlow:
		return warning
	case model.SeverityCritical:
		return unhealthy
	default:
		return dimText
	}
}

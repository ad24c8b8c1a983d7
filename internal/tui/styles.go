// Package tui contains the interactive surfaces of the console: huh
// forms for login, registration and product editing, a bubbletea
// browser over the table model, and the shared lipgloss styles.
package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/Dooooug/QuimiDocs-Deploy/internal/domain"
)

// Styles contains lipgloss styles shared across the console views.
type Styles struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Error    lipgloss.Style
	Success  lipgloss.Style
	Warning  lipgloss.Style
	Muted    lipgloss.Style
	Border   lipgloss.Style
	Selected lipgloss.Style
	Header   lipgloss.Style
	Help     lipgloss.Style

	StatusPending  lipgloss.Style
	StatusApproved lipgloss.Style
	StatusRejected lipgloss.Style
}

// DefaultStyles returns the default console styles.
func DefaultStyles() Styles {
	return Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("63")). // Purple
			MarginBottom(1),
		Subtitle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")). // Gray
			MarginBottom(1),
		Error: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("196")), // Red
		Success: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("46")), // Green
		Warning: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("226")), // Yellow
		Muted: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")), // Gray
		Border: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")). // Purple
			Padding(1, 2),
		Selected: lipgloss.NewStyle().
			Background(lipgloss.Color("63")).  // Purple
			Foreground(lipgloss.Color("230")). // Light yellow
			Bold(true),
		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("86")), // Cyan
		Help: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")). // Gray
			MarginTop(1),

		StatusPending: lipgloss.NewStyle().
			Foreground(lipgloss.Color("226")), // Yellow
		StatusApproved: lipgloss.NewStyle().
			Foreground(lipgloss.Color("46")), // Green
		StatusRejected: lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")), // Red
	}
}

// StatusBadge renders a product status with its color.
func (s Styles) StatusBadge(status domain.ProductStatus) string {
	switch status {
	case domain.StatusApproved:
		return s.StatusApproved.Render(string(status))
	case domain.StatusRejected:
		return s.StatusRejected.Render(string(status))
	default:
		return s.StatusPending.Render(string(status))
	}
}

package components

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/j-veylop/macwrap/internal/ui/styles"
)

// LoadingSpinner wraps a bubble spinner with a rotating set of labels.
type LoadingSpinner struct {
	spinner spinner.Model
	labels  []string
	current int
	style   lipgloss.Style
}

// NewSpinner creates a new loading spinner. With several labels, NextLabel
// cycles through them.
func NewSpinner(labels ...string) LoadingSpinner {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(styles.Primary)

	if len(labels) == 0 {
		labels = []string{""}
	}

	return LoadingSpinner{
		spinner: s,
		labels:  labels,
		style:   lipgloss.NewStyle().Foreground(styles.Warning),
	}
}

// Init initializes the spinner model.
func (l LoadingSpinner) Init() tea.Cmd {
	return l.spinner.Tick
}

// Update handles spinner tick messages.
func (l LoadingSpinner) Update(msg tea.Msg) (LoadingSpinner, tea.Cmd) {
	var cmd tea.Cmd
	l.spinner, cmd = l.spinner.Update(msg)
	return l, cmd
}

// View renders the spinner without label.
func (l LoadingSpinner) View() string {
	return l.spinner.View()
}

// ViewWithLabel renders the spinner with its current label.
func (l LoadingSpinner) ViewWithLabel() string {
	return l.spinner.View() + " " + l.style.Render(l.Label())
}

// SetLabel replaces the labels with a single one.
func (l *LoadingSpinner) SetLabel(label string) {
	l.labels = []string{label}
	l.current = 0
}

// NextLabel advances to the next label, wrapping around.
func (l *LoadingSpinner) NextLabel() {
	l.current = (l.current + 1) % len(l.labels)
}

// Label returns the current label.
func (l LoadingSpinner) Label() string {
	return l.labels[l.current]
}

// Spinner returns the underlying spinner model.
func (l LoadingSpinner) Spinner() spinner.Model {
	return l.spinner
}

// Tick returns the tick command for the spinner.
func (l LoadingSpinner) Tick() tea.Cmd {
	return l.spinner.Tick
}


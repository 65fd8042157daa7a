package panels

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/j-veylop/macwrap/internal/app"
	"github.com/j-veylop/macwrap/internal/ui/components"
	"github.com/j-veylop/macwrap/internal/ui/styles"
)

// framesPerLabel is how many spinner frames each loading label stays up.
const framesPerLabel = 15

var loadingLabels = []string{
	"Analyzing your digital footprint...",
	"Reading Screen Time...",
	"Counting shell commands...",
	"Checking power events...",
}

// loadingPanel shows a spinner until the report is ready.
type loadingPanel struct {
	spinner components.LoadingSpinner
	slide
	ticks int
}

func newLoadingPanel(s slide) *loadingPanel {
	s.hint = ""
	return &loadingPanel{
		slide:   s,
		spinner: components.NewSpinner(loadingLabels...),
	}
}

// Init initializes the panel.
func (p *loadingPanel) Init() tea.Cmd {
	return nil
}

// Show starts the spinner.
func (p *loadingPanel) Show() tea.Cmd {
	return p.spinner.Tick()
}

// Update advances the spinner and rotates the label.
func (p *loadingPanel) Update(msg tea.Msg) (app.Panel, tea.Cmd) {
	var cmd tea.Cmd
	p.spinner, cmd = p.spinner.Update(msg)
	if cmd != nil {
		p.ticks++
		if p.ticks%framesPerLabel == 0 {
			p.spinner.NextLabel()
		}
	}
	return p, cmd
}

// View renders the panel.
func (p *loadingPanel) View() string {
	return p.frame(
		title("Unwrapping your Mac year..."),
		"",
		p.spinner.ViewWithLabel(),
		"",
		components.ShimmerBar(40, p.ticks),
		"",
		styles.HelpStyle.Render("This takes a few seconds"),
	)
}

// ShortHelp returns panel specific key bindings.
func (p *loadingPanel) ShortHelp() []key.Binding {
	return nil
}

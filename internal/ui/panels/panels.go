// Package panels provides the slides of the recap deck.
package panels

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/j-veylop/macwrap/internal/app"
	"github.com/j-veylop/macwrap/internal/models"
	"github.com/j-veylop/macwrap/internal/ui/styles"
)

const (
	continueHint = "Press SPACE or ENTER to continue"
	exitHint     = "Press SPACE to exit"
)

// Deck builds every panel of the recap, indexed by app.PanelID. year is
// shown before the first report exists.
func Deck(state *app.State, year int) []app.Panel {
	base := func(id app.PanelID) slide {
		return slide{state: state, id: id, year: year, hint: continueHint}
	}
	stat := func(id app.PanelID, render renderFunc) *statPanel {
		return &statPanel{slide: base(id), render: render}
	}

	panels := make([]app.Panel, app.PanelCount)
	panels[app.PanelIntro] = stat(app.PanelIntro, renderIntro)
	panels[app.PanelLoading] = newLoadingPanel(base(app.PanelLoading))
	panels[app.PanelTotal] = newTotalPanel(base(app.PanelTotal))
	panels[app.PanelTopApps] = stat(app.PanelTopApps, renderTopApps)
	panels[app.PanelStreak] = stat(app.PanelStreak, renderStreak)
	panels[app.PanelFocus] = stat(app.PanelFocus, renderFocus)
	panels[app.PanelWeekend] = newWeekendPanel(base(app.PanelWeekend))
	panels[app.PanelHeatmap] = stat(app.PanelHeatmap, renderHeatmap)
	panels[app.PanelForgotten] = stat(app.PanelForgotten, renderForgotten)
	panels[app.PanelSpike] = stat(app.PanelSpike, renderSpike)
	panels[app.PanelLateNight] = stat(app.PanelLateNight, renderLateNight)
	panels[app.PanelLongestSession] = stat(app.PanelLongestSession, renderLongestSession)
	panels[app.PanelCommandLine] = stat(app.PanelCommandLine, renderCommandLine)
	panels[app.PanelFileCreation] = stat(app.PanelFileCreation, renderFileCreation)
	panels[app.PanelPowerEvents] = stat(app.PanelPowerEvents, renderPowerEvents)
	panels[app.PanelPersonality] = stat(app.PanelPersonality, renderPersonality)
	panels[app.PanelFinale] = stat(app.PanelFinale, renderFinale)

	credits := stat(app.PanelCredits, renderCredits)
	credits.hint = exitHint
	panels[app.PanelCredits] = credits

	return panels
}

// slide holds what every panel needs: shared state and its size.
type slide struct {
	state  *app.State
	hint   string
	id     app.PanelID
	year   int
	width  int
	height int
}

// SetSize sets the available size for the panel.
func (s *slide) SetSize(width, height int) {
	s.width = width
	s.height = height
}

// report returns the current report. Before the first build it is empty
// but carries the deck year.
func (s *slide) report() models.AnnualReport {
	r, ok := s.state.GetReport()
	if !ok {
		r.Year = s.year
	}
	return r
}

// frame stacks lines in the middle of the panel with the hint at the bottom.
func (s *slide) frame(lines ...string) string {
	content := lipgloss.JoinVertical(lipgloss.Center, lines...)
	if s.hint != "" {
		content = lipgloss.JoinVertical(lipgloss.Center, content, "", "", styles.HelpStyle.Render(s.hint))
	}
	if s.width <= 0 || s.height <= 0 {
		return content
	}
	return styles.CenterBoth(content, s.width, s.height)
}

// renderFunc produces the lines of a panel from the report.
type renderFunc func(r models.AnnualReport, width, height int) []string

// statPanel is a static slide drawn from the report.
type statPanel struct {
	render renderFunc
	slide
}

// Init initializes the panel.
func (p *statPanel) Init() tea.Cmd {
	return nil
}

// Show is called when the panel becomes current.
func (p *statPanel) Show() tea.Cmd {
	return nil
}

// Update handles messages for the panel.
func (p *statPanel) Update(_ tea.Msg) (app.Panel, tea.Cmd) {
	return p, nil
}

// View renders the panel.
func (p *statPanel) View() string {
	return p.frame(p.render(p.report(), p.width, p.height)...)
}

// ShortHelp returns panel specific key bindings.
func (p *statPanel) ShortHelp() []key.Binding {
	return nil
}

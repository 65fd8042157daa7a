package panels

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/j-veylop/macwrap/internal/app"
	"github.com/j-veylop/macwrap/internal/models"
	"github.com/j-veylop/macwrap/internal/ui/styles"
)

var permissionSteps = []string{
	"Access to Screen Time database denied.",
	"",
	"1. Go to System Settings > Privacy & Security > Full Disk Access",
	"2. Enable it for your Terminal (iTerm/Terminal)",
	"3. Restart Terminal and try again",
}

// totalPanel shows the headline figure, or why there is none. The error
// text can outgrow small terminals, so it scrolls.
type totalPanel struct {
	keys     keyMap
	viewport viewport.Model
	slide
}

// keyMap defines the key bindings specific to the total panel.
type keyMap struct {
	Up   key.Binding
	Down key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "scroll down"),
		),
	}
}

func newTotalPanel(s slide) *totalPanel {
	return &totalPanel{
		slide:    s,
		keys:     defaultKeyMap(),
		viewport: viewport.New(0, 0),
	}
}

// Init initializes the panel.
func (p *totalPanel) Init() tea.Cmd {
	return nil
}

// Show scrolls back to the top.
func (p *totalPanel) Show() tea.Cmd {
	p.viewport.GotoTop()
	return nil
}

// Update forwards scrolling to the viewport.
func (p *totalPanel) Update(msg tea.Msg) (app.Panel, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		var cmd tea.Cmd
		p.viewport, cmd = p.viewport.Update(keyMsg)
		return p, cmd
	}
	return p, nil
}

// SetSize sets the available size for the panel.
func (p *totalPanel) SetSize(width, height int) {
	p.slide.SetSize(width, height)
	p.viewport.Width = width
	p.viewport.Height = height
}

// View renders the panel.
func (p *totalPanel) View() string {
	content := p.frame(renderTotal(p.report())...)
	if p.width <= 0 || p.height <= 0 {
		return content
	}
	p.viewport.SetContent(content)
	return p.viewport.View()
}

// ShortHelp returns panel specific key bindings.
func (p *totalPanel) ShortHelp() []key.Binding {
	return []key.Binding{p.keys.Up, p.keys.Down}
}

func renderTotal(r models.AnnualReport) []string {
	if r.Degraded() {
		return []string{styles.ErrorCardStyle.Render(renderSourceError(r))}
	}

	if !r.HasData() {
		return []string{
			title(fmt.Sprintf("No data found for %d", r.Year)),
			body("Enable Screen Time in System Preferences"),
		}
	}

	hours := int64(r.TotalHours)
	return []string{
		bigNum(fmt.Sprintf("%s hours", humanize.Comma(hours))),
		body(fmt.Sprintf("actively using apps in %d", r.Year)),
		"",
		quip(fmt.Sprintf("That's %.1f full days of your life.", float64(hours)/24)),
		"",
		body(fmt.Sprintf("%s total app launches",
			styles.AccentTextStyle.Render(humanize.Comma(int64(r.TotalLaunches))))),
	}
}

func renderSourceError(r models.AnnualReport) string {
	lines := []string{styles.ErrorTextStyle.Bold(true).Render("Unable to read Screen Time data"), ""}

	if r.ErrorKind() == models.ErrorKindPermission {
		for _, step := range permissionSteps {
			lines = append(lines, body(step))
		}
	} else {
		lines = append(lines, body("Error: "+r.Error))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

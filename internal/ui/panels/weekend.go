package panels

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/dustin/go-humanize"

	"github.com/j-veylop/macwrap/internal/app"
	"github.com/j-veylop/macwrap/internal/models"
	"github.com/j-veylop/macwrap/internal/ui/components"
	"github.com/j-veylop/macwrap/internal/ui/styles"
)

// weekendPanel compares weekend and weekday usage on an animated bar.
type weekendPanel struct {
	bar components.SplitBar
	slide
}

func newWeekendPanel(s slide) *weekendPanel {
	return &weekendPanel{slide: s, bar: newWeekendBar(0)}
}

func newWeekendBar(width int) components.SplitBar {
	return components.NewSplitBar(barWidth(width), styles.Primary, styles.Secondary)
}

func barWidth(width int) int {
	return min(max(width-20, 10), 50)
}

// Init initializes the panel.
func (p *weekendPanel) Init() tea.Cmd {
	return nil
}

// Show restarts the fill animation.
func (p *weekendPanel) Show() tea.Cmd {
	r := p.report()
	p.bar = newWeekendBar(p.width)
	if r.WeekendHours+r.WeekdayHours <= 0 {
		return nil
	}
	return p.bar.SetShares(r.WeekendHours, r.WeekdayHours)
}

// Update steps the bar animation.
func (p *weekendPanel) Update(msg tea.Msg) (app.Panel, tea.Cmd) {
	var cmd tea.Cmd
	p.bar, cmd = p.bar.Update(msg)
	return p, cmd
}

// SetSize sets the available size for the panel.
func (p *weekendPanel) SetSize(width, height int) {
	p.slide.SetSize(width, height)
	p.bar.SetWidth(barWidth(width))
}

// View renders the panel.
func (p *weekendPanel) View() string {
	lines := renderWeekend(p.report())
	r := p.report()
	if r.WeekendHours+r.WeekdayHours > 0 {
		lines = append(lines, "", p.bar.View(), components.RenderLegend([]components.LegendItem{
			{Label: "Weekends", Color: styles.Primary},
			{Label: "Weekdays", Color: styles.Secondary},
		}))
	}
	return p.frame(lines...)
}

// ShortHelp returns panel specific key bindings.
func (p *weekendPanel) ShortHelp() []key.Binding {
	return nil
}

func renderWeekend(r models.AnnualReport) []string {
	lines := []string{title("Weekend vs Weekday")}

	if r.WeekendHours+r.WeekdayHours <= 0 {
		return append(lines, body("No usage data"))
	}

	weekendPct, weekdayPct := components.SplitPercent(r.WeekendHours, r.WeekdayHours)
	winner := "Weekdays"
	if weekendPct > 50 {
		winner = "Weekends"
	}

	return append(lines,
		body(fmt.Sprintf("Weekends: %s hrs (%d%%)", humanize.Comma(int64(r.WeekendHours)), weekendPct)),
		body(fmt.Sprintf("Weekdays: %s hrs (%d%%)", humanize.Comma(int64(r.WeekdayHours)), weekdayPct)),
		"",
		styles.AccentTextStyle.Render("Winner: "+winner),
	)
}

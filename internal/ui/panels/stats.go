package panels

import (
	"fmt"
	"math"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/j-veylop/macwrap/internal/models"
	"github.com/j-veylop/macwrap/internal/recap"
	"github.com/j-veylop/macwrap/internal/ui/components"
	"github.com/j-veylop/macwrap/internal/ui/styles"
)

// compactHeight is the panel height below which the heatmap uses one line.
const compactHeight = 32

func title(s string) string  { return styles.TitleStyle.Render(s) }
func body(s string) string   { return styles.BodyStyle.Render(s) }
func quip(s string) string   { return styles.QuipStyle.Render(s) }
func bigNum(s string) string { return styles.HeadlineStyle.Render(s) }

func hours1(h float64) string {
	return humanize.FtoaWithDigits(math.Round(h*10)/10, 1)
}

func chartWidth(width int) int {
	return min(max(width-20, 20), 60)
}

func renderIntro(r models.AnnualReport, _, _ int) []string {
	return []string{
		styles.PersonalityStyle.Render("macwrap"),
		"",
		styles.SubTitleStyle.Render(fmt.Sprintf("Your Mac. Your %d.", r.Year)),
	}
}

func renderTopApps(r models.AnnualReport, width, _ int) []string {
	lines := []string{title(fmt.Sprintf("Your Top 5 Apps of %d", r.Year))}

	if _, ok := r.TopApp(); !ok || r.Degraded() {
		return append(lines, body("No app usage data"))
	}

	var rows, labels []string
	var values []float64
	for i, a := range r.TopApps {
		rows = append(rows, fmt.Sprintf("%s %s - %s hrs (%s opens)",
			styles.AccentTextStyle.Render(fmt.Sprintf("#%d", i+1)),
			a.Name,
			humanize.Comma(int64(a.TotalHours)),
			humanize.Comma(int64(a.LaunchCount))))
		labels = append(labels, a.Name)
		values = append(values, a.TotalHours)
	}
	lines = append(lines, lipgloss.JoinVertical(lipgloss.Left, rows...))

	if width >= 50 {
		lines = append(lines, "", components.RenderBarChart(values, labels, chartWidth(width)))
	}
	return lines
}

func renderStreak(r models.AnnualReport, width, _ int) []string {
	lines := []string{title("🔥 Your Longest Streak 🔥")}

	if r.MaxStreakDays <= 0 {
		return append(lines, body("No streak data available"))
	}

	lines = append(lines,
		bigNum(fmt.Sprintf("%d days", r.MaxStreakDays)),
		body("of consecutive Mac usage"),
		"",
		quip("Dedication level: Expert"),
	)
	if spark := components.RenderSparkline(r.DailyHours(), chartWidth(width)); spark != "" {
		lines = append(lines, "", styles.InfoTextStyle.Render(spark))
	}
	return lines
}

func renderFocus(r models.AnnualReport, _, _ int) []string {
	lines := []string{title("Deep Focus Time")}

	if r.FocusSessionCount <= 0 {
		return append(lines, body("No deep focus sessions detected"))
	}

	return append(lines,
		bigNum(fmt.Sprintf("%s hours", hours1(r.FocusHours))),
		body(fmt.Sprintf("across %s sessions", humanize.Comma(int64(r.FocusSessionCount)))),
		"",
		quip("Sessions of 2+ hours each"),
	)
}

func renderHeatmap(r models.AnnualReport, _, height int) []string {
	lines := []string{title("Your Hourly Heatmap")}

	if r.Hourly.Max() <= 0 {
		return append(lines, body("No hourly data available"))
	}

	if height > 0 && height < compactHeight {
		lines = append(lines, components.RenderHourlyHeatmap(r.Hourly))
	} else {
		lines = append(lines, lipgloss.JoinVertical(lipgloss.Left, components.RenderHourlyBars(r.Hourly)))
	}
	return append(lines, "", quip(fmt.Sprintf("Peak hour: %s", components.HourLabel(r.PeakHour))))
}

func renderForgotten(r models.AnnualReport, _, _ int) []string {
	lines := []string{title("The App You Forgot You Had")}

	if r.Degraded() || r.ForgottenAppName == "" || r.ForgottenAppName == recap.NoForgottenApp {
		return append(lines, body("No forgotten apps detected"))
	}

	return append(lines,
		bigNum(r.ForgottenAppName),
		body("Less than 1 hour total usage"),
		"",
		quip("Maybe it's time to uninstall?"),
	)
}

func renderSpike(r models.AnnualReport, width, height int) []string {
	lines := []string{title("The 'WTF' Spike Day")}

	if !r.SpikeDay.Detected() {
		return append(lines,
			body("No extreme spike days detected"),
			"",
			quip("Your usage was consistent!"),
		)
	}

	lines = append(lines,
		bigNum(r.SpikeDay.Date.Format("Monday, January 2")),
		body(fmt.Sprintf("%d hours in a single day!", int(r.SpikeDay.Hours))),
		body("3x your weekly average"),
		"",
		quip("What happened that day?"),
	)
	if height <= 0 || height >= compactHeight {
		lines = append(lines, "", components.RenderLineChart(r.DailyHours(), chartWidth(width), 6, "hours per day"))
	}
	return lines
}

func renderLateNight(r models.AnnualReport, _, _ int) []string {
	lines := []string{title("🌙 Late Night Sessions 🌙")}

	if r.LateNightHours <= 0 {
		return append(lines,
			body("No late night sessions!"),
			"",
			quip("Healthy sleep schedule detected"),
		)
	}

	pct := 0
	if r.TotalHours > 0 {
		pct = int(r.LateNightHours / r.TotalHours * 100)
	}
	return append(lines,
		bigNum(fmt.Sprintf("%s hours", hours1(r.LateNightHours))),
		body("between 10pm - 4am"),
		"",
		components.RenderGradientBar(float64(pct), 30),
		quip(fmt.Sprintf("That's %d%% of your total time!", pct)),
	)
}

func renderLongestSession(r models.AnnualReport, _, _ int) []string {
	lines := []string{title("Longest Single Session")}

	if r.LongestSession.Hours <= 0 {
		return append(lines, body("No session data"))
	}

	return append(lines,
		bigNum(r.LongestSession.AppName),
		body(fmt.Sprintf("%.1f hours straight", r.LongestSession.Hours)),
		"",
		quip("Marathon mode activated"),
	)
}

func renderCommandLine(r models.AnnualReport, _, _ int) []string {
	lines := []string{title("⌨️  Command Line Stats")}

	if r.CommandCount <= 0 {
		return append(lines, body("No command history found"))
	}

	return append(lines,
		bigNum(humanize.Comma(int64(r.CommandCount))),
		body("shell commands executed"),
		"",
		quip("Terminal warrior detected"),
	)
}

func renderFileCreation(r models.AnnualReport, _, _ int) []string {
	lines := []string{title("📁 File Creation Stats")}

	if r.FileCreation.Total <= 0 {
		return append(lines, body("No file creation data"))
	}

	lines = append(lines,
		bigNum(humanize.Comma(int64(r.FileCreation.Total))),
		body("new files created in the year"),
	)

	top := r.FileCreation.TopExtensions
	if len(top) > 3 {
		top = top[:3]
	}
	if len(top) > 0 {
		rows := []string{styles.SubTitleStyle.Render("Top file types:")}
		for _, e := range top {
			rows = append(rows, fmt.Sprintf("  %s: %s", e.Extension, humanize.Comma(int64(e.Count))))
		}
		lines = append(lines, "", lipgloss.JoinVertical(lipgloss.Left, rows...))
	}
	return lines
}

func renderPowerEvents(r models.AnnualReport, _, _ int) []string {
	lines := []string{title("⚡ Power Events")}

	p := r.PowerEvents
	if p.Sleeps == 0 && p.Wakes == 0 && p.Reboots == 0 {
		return append(lines, body("No power events found"))
	}

	rows := []string{
		fmt.Sprintf("Sleeps:  %s", styles.AccentTextStyle.Render(humanize.Comma(int64(p.Sleeps)))),
		fmt.Sprintf("Wakes:   %s", styles.AccentTextStyle.Render(humanize.Comma(int64(p.Wakes)))),
		fmt.Sprintf("Reboots: %s", styles.AccentTextStyle.Render(humanize.Comma(int64(p.Reboots)))),
	}
	return append(lines,
		lipgloss.JoinVertical(lipgloss.Left, rows...),
		"",
		quip("Your Mac's sleep cycle"),
	)
}

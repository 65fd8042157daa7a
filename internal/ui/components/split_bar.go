package components

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/j-veylop/macwrap/internal/logger"
	"github.com/j-veylop/macwrap/internal/ui/styles"
)

// AnimationTickMsg advances bar animations.
type AnimationTickMsg time.Time

func animationTick() tea.Cmd {
	return tea.Tick(time.Millisecond*50, func(t time.Time) tea.Msg {
		return AnimationTickMsg(t)
	})
}

// SplitPercent returns the integer share of a and b, always summing to 100.
// Both are zero when there is nothing to split.
func SplitPercent(a, b float64) (aPct, bPct int) {
	total := a + b
	if total <= 0 {
		return 0, 0
	}
	aPct = int(a / total * 100)
	return aPct, 100 - aPct
}

// SplitBar renders two shares of a whole as one bar, filling from the left
// with the first share.
type SplitBar struct {
	progress  progress.Model
	target    float64
	current   float64
	animating bool
}

// NewSplitBar creates a split bar of the given width. The left share uses
// left as its color and the remainder uses right.
func NewSplitBar(width int, left, right lipgloss.Color) SplitBar {
	p := progress.New(
		progress.WithSolidFill(string(left)),
		progress.WithWidth(width),
		progress.WithoutPercentage(),
	)
	p.Empty = p.Full
	p.EmptyColor = string(right)

	return SplitBar{progress: p}
}

// SetShares sets the values being compared and starts the fill animation.
func (s *SplitBar) SetShares(left, right float64) tea.Cmd {
	total := left + right
	if total <= 0 {
		s.target = 0
	} else {
		s.target = left / total
	}

	if s.animating {
		return nil
	}
	s.animating = true
	s.current = 0
	return animationTick()
}

// Update steps the fill animation.
func (s SplitBar) Update(msg tea.Msg) (SplitBar, tea.Cmd) {
	if _, ok := msg.(AnimationTickMsg); !ok || !s.animating {
		return s, nil
	}

	step := (s.target - s.current) / 10
	if step < 0.01 {
		step = 0.01
	}
	s.current += step
	if s.current >= s.target {
		s.current = s.target
		s.animating = false
		return s, nil
	}
	return s, animationTick()
}

// SetWidth sets the bar width.
func (s *SplitBar) SetWidth(width int) {
	s.progress.Width = width
}

// Ratio returns the currently displayed left share.
func (s SplitBar) Ratio() float64 {
	return s.current
}

// Animating reports whether the fill is still moving.
func (s SplitBar) Animating() bool {
	return s.animating
}

// View renders the bar at its current animation frame.
func (s SplitBar) View() string {
	return s.progress.ViewAs(s.current)
}

// RenderGradientBar renders percent of width as a magenta to cyan gradient.
func RenderGradientBar(percent float64, width int) string {
	if width < 1 {
		return ""
	}

	filled := int(float64(width) * percent / 100)
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}

	var barChars []string
	for i := 0; i < width; i++ {
		if i < filled {
			t := float64(i) / float64(max(1, width-1))
			color := interpolateColor(string(styles.Primary), string(styles.Secondary), t)
			style := lipgloss.NewStyle().Foreground(lipgloss.Color(color))
			barChars = append(barChars, style.Render("█"))
		} else {
			style := lipgloss.NewStyle().Foreground(styles.Subtle)
			barChars = append(barChars, style.Render("░"))
		}
	}

	return strings.Join(barChars, "")
}

func interpolateColor(fromHex, toHex string, t float64) string {
	from := hexToRGB(fromHex)
	to := hexToRGB(toHex)

	r := int(float64(from[0]) + t*(float64(to[0])-float64(from[0])))
	g := int(float64(from[1]) + t*(float64(to[1])-float64(from[1])))
	b := int(float64(from[2]) + t*(float64(to[2])-float64(from[2])))

	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

func hexToRGB(hex string) [3]int {
	hex = strings.TrimPrefix(hex, "#")
	var r, g, b int
	if _, err := fmt.Sscanf(hex, "%02x%02x%02x", &r, &g, &b); err != nil {
		logger.Error("failed to parse hex color", "hex", hex, "error", err)
		return [3]int{0, 0, 0}
	}
	return [3]int{r, g, b}
}

// ShimmerBar renders an indeterminate bar whose highlight sweeps back and
// forth as frame increases.
func ShimmerBar(width, frame int) string {
	if width < 10 {
		width = 10
	}

	const cycle = 120
	t := float64(frame%cycle) / float64(cycle)
	var p float64
	if t < 0.5 {
		p = t * 2
	} else {
		p = (1 - t) * 2
	}
	eased := p * p * (3 - 2*p)
	shimmerPos := int(eased * float64(width))

	var barChars []string
	for i := 0; i < width; i++ {
		dist := shimmerPos - i
		if dist < 0 {
			dist = -dist
		}

		var char string
		var style lipgloss.Style

		switch {
		case dist < 3:
			char = "▓"
			style = lipgloss.NewStyle().Foreground(styles.Primary)
		case dist < 5:
			char = "▒"
			style = lipgloss.NewStyle().Foreground(styles.TextSecondary)
		default:
			char = "░"
			style = lipgloss.NewStyle().Foreground(styles.BgLight)
		}

		barChars = append(barChars, style.Render(char))
	}

	return strings.Join(barChars, "")
}

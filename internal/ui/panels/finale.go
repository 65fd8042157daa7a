package panels

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/j-veylop/macwrap/internal/models"
	"github.com/j-veylop/macwrap/internal/ui/styles"
	"github.com/j-veylop/macwrap/internal/version"
)

const installLine = "> go install github.com/j-veylop/macwrap/cmd/macwrap@latest"

func renderPersonality(r models.AnnualReport, _, _ int) []string {
	return []string{
		title(fmt.Sprintf("Your %d Mac Personality:", r.Year)),
		"",
		styles.PersonalityStyle.Render(r.PersonalityLabel),
	}
}

// ShareLines returns the text a user can paste to share their recap.
func ShareLines(r models.AnnualReport) []string {
	top, ok := r.TopApp()
	if r.Degraded() || !r.HasData() || !ok {
		return []string{"> Enable Screen Time to see your stats!", installLine}
	}

	return []string{
		fmt.Sprintf("> %s hrs - %s launches - %d day streak",
			humanize.Comma(int64(r.TotalHours)),
			humanize.Comma(int64(r.TotalLaunches)),
			r.MaxStreakDays),
		fmt.Sprintf("> Top: %s - %s", top.Name, r.PersonalityLabel),
		installLine,
	}
}

func renderFinale(r models.AnnualReport, _, _ int) []string {
	return []string{
		title("Happy end of the year!"),
		body("Thanks for an epic year on your Mac"),
		"",
		styles.SubTitleStyle.Render("Share your macwrap:"),
		styles.ShareStyle.Render(strings.Join(ShareLines(r), "\n")),
	}
}

func renderCredits(_ models.AnnualReport, _, _ int) []string {
	return []string{
		title("macwrap"),
		body("Your year on the Mac, unwrapped"),
		"",
		styles.HelpStyle.Render(version.Info()),
	}
}

package recap

import "strings"

const (
	// MinimalistLabel is returned when there is no usage to classify.
	MinimalistLabel = "Digital Minimalist"

	// DefaultBaseLabel is used when the top app matches no keyword.
	DefaultBaseLabel = "Digital Professional"

	deepFocusThresholdHours = 500
	hardcoreThresholdHours  = 2000
	nightOwlShare           = 0.3
	earlyBirdFirstHour      = 5
	earlyBirdLastHour       = 8
)

type personalityRule struct {
	keyword string
	label   string
}

// personalityRules is matched first-to-last against the lower-cased top app
// name. Order matters: the first substring hit wins.
var personalityRules = []personalityRule{
	{"iterm", "Terminal Power User"},
	{"terminal", "Command Line Warrior"},
	{"chrome", "Professional Tab Hoarder"},
	{"safari", "Apple Ecosystem Devotee"},
	{"firefox", "Privacy-Conscious Browser"},
	{"vscode", "Code Wizard"},
	{"xcode", "Apple Developer"},
	{"slack", "Communication Champion"},
	{"zoom", "Meeting Marathon Runner"},
	{"spotify", "Music-Powered Worker"},
	{"photoshop", "Creative Visionary"},
	{"figma", "Design Perfectionist"},
	{"notion", "Organization Guru"},
	{"discord", "Community Builder"},
}

// BaseLabel returns the label for an app name without any modifiers.
func BaseLabel(appName string) string {
	name := strings.ToLower(appName)
	for _, rule := range personalityRules {
		if strings.Contains(name, rule.keyword) {
			return rule.label
		}
	}
	return DefaultBaseLabel
}

// Classify maps usage metrics to a personality label such as
// "Night Owl Hardcore Code Wizard". It is a pure function of its inputs.
func Classify(topAppName string, totalHours float64, peakHour int, lateNightHours, focusHours float64) string {
	if topAppName == "" || totalHours == 0 {
		return MinimalistLabel
	}

	label := BaseLabel(topAppName)

	switch {
	case focusHours > deepFocusThresholdHours:
		label = "Deep Focus " + label
	case totalHours > hardcoreThresholdHours:
		label = "Hardcore " + label
	}

	switch {
	case lateNightHours > totalHours*nightOwlShare:
		label = "Night Owl " + label
	case peakHour >= earlyBirdFirstHour && peakHour <= earlyBirdLastHour:
		label = "Early Bird " + label
	}

	return label
}

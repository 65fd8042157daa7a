package models

import (
	"testing"
	"time"
)

func TestDisplayName(t *testing.T) {
	tests := []struct {
		identifier string
		want       string
	}{
		{"com.apple.Safari", "Safari"},
		{"com.googlecode.iterm2", "Iterm2"},
		{"com.hnc.Discord-PTB", "Discord Ptb"},
		{"com.microsoft.VSCode", "Vscode"},
		{"com.apple.dt.Xcode", "Xcode"},
		{"com.x.app_name", "App_name"},
		{"Finder", "Finder"},
		{"com.vendor.", ""},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.identifier, func(t *testing.T) {
			if got := DisplayName(tt.identifier); got != tt.want {
				t.Errorf("DisplayName(%q) = %q, want %q", tt.identifier, got, tt.want)
			}
		})
	}
}

func TestUsageInterval_Valid(t *testing.T) {
	start := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		end  time.Time
		want bool
	}{
		{"Positive", start.Add(time.Minute), true},
		{"Zero", start, false},
		{"Negative", start.Add(-time.Minute), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			iv := UsageInterval{Start: start, End: tt.end, AppIdentifier: "com.apple.Safari"}
			if got := iv.Valid(); got != tt.want {
				t.Errorf("Valid() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestUsageInterval_Hours(t *testing.T) {
	start := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)
	iv := UsageInterval{Start: start, End: start.Add(90 * time.Minute), AppIdentifier: "com.apple.Terminal"}

	if got := iv.Hours(); got != 1.5 {
		t.Errorf("Hours() = %v, want 1.5", got)
	}
	if got := iv.AppName(); got != "Terminal" {
		t.Errorf("AppName() = %q, want Terminal", got)
	}
}

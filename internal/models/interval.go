// Package models defines data structures and domain types.
package models

import (
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// UsageInterval is one contiguous span of recorded application usage.
type UsageInterval struct {
	Start         time.Time
	End           time.Time
	AppIdentifier string // reverse-DNS bundle identifier, e.g. com.apple.Safari
}

// Valid reports whether the interval has a strictly positive duration.
func (u UsageInterval) Valid() bool {
	return u.End.After(u.Start)
}

// Duration returns the length of the interval.
func (u UsageInterval) Duration() time.Duration {
	return u.End.Sub(u.Start)
}

// Hours returns the length of the interval in fractional hours.
func (u UsageInterval) Hours() float64 {
	return u.Duration().Hours()
}

// AppName returns the cleaned display name for the interval's application.
func (u UsageInterval) AppName() string {
	return DisplayName(u.AppIdentifier)
}

// DisplayName turns a bundle identifier into a human readable name.
// The last dot-delimited segment is kept, hyphens become spaces and every
// word is title-cased: "com.googlecode.iterm2" -> "Iterm2",
// "com.hnc.Discord-PTB" -> "Discord Ptb".
func DisplayName(identifier string) string {
	name := identifier
	if idx := strings.LastIndex(name, "."); idx >= 0 {
		name = name[idx+1:]
	}
	name = strings.ReplaceAll(name, "-", " ")
	// Caser carries state and is not safe to share across goroutines.
	return cases.Title(language.Und).String(name)
}

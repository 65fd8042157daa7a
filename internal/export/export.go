// Package export writes a recap as a machine readable document.
package export

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/j-veylop/macwrap/internal/models"
)

// Format is an output encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ErrUnknownFormat is returned for an unsupported format name.
var ErrUnknownFormat = errors.New("unknown export format")

// ParseFormat maps a flag value to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %q (want json or yaml)", ErrUnknownFormat, s)
	}
}

// App is one entry of the top apps list.
type App struct {
	Name                string  `json:"name" yaml:"name"`
	Hours               float64 `json:"hours" yaml:"hours"`
	Launches            int     `json:"launches" yaml:"launches"`
	LongestSessionHours float64 `json:"longest_session_hours" yaml:"longest_session_hours"`
}

// Day is the usage of one calendar date.
type Day struct {
	Date  string  `json:"date" yaml:"date"`
	Hours float64 `json:"hours" yaml:"hours"`
}

// Session is the longest single session.
type Session struct {
	App   string  `json:"app" yaml:"app"`
	Hours float64 `json:"hours" yaml:"hours"`
}

// Extension counts files created with one extension.
type Extension struct {
	Extension string `json:"extension" yaml:"extension"`
	Count     int    `json:"count" yaml:"count"`
}

// Files summarises file creation.
type Files struct {
	Total         int         `json:"total" yaml:"total"`
	TopExtensions []Extension `json:"top_extensions" yaml:"top_extensions"`
}

// Power counts power events.
type Power struct {
	Sleeps  int `json:"sleeps" yaml:"sleeps"`
	Wakes   int `json:"wakes" yaml:"wakes"`
	Reboots int `json:"reboots" yaml:"reboots"`
}

// Document is the exported form of an annual report.
type Document struct {
	Error          string    `json:"error,omitempty" yaml:"error,omitempty"`
	Personality    string    `json:"personality" yaml:"personality"`
	ForgottenApp   string    `json:"forgotten_app" yaml:"forgotten_app"`
	SpikeDay       *Day      `json:"spike_day,omitempty" yaml:"spike_day,omitempty"`
	TopApps        []App     `json:"top_apps" yaml:"top_apps"`
	Daily          []Day     `json:"daily" yaml:"daily"`
	Hourly         []float64 `json:"hourly" yaml:"hourly,flow"`
	LongestSession Session   `json:"longest_session" yaml:"longest_session"`
	FileCreation   Files     `json:"file_creation" yaml:"file_creation"`
	PowerEvents    Power     `json:"power_events" yaml:"power_events"`
	Year           int       `json:"year" yaml:"year"`
	TotalHours     float64   `json:"total_hours" yaml:"total_hours"`
	TotalLaunches  int       `json:"total_launches" yaml:"total_launches"`
	MaxStreakDays  int       `json:"max_streak_days" yaml:"max_streak_days"`
	WeekendHours   float64   `json:"weekend_hours" yaml:"weekend_hours"`
	WeekdayHours   float64   `json:"weekday_hours" yaml:"weekday_hours"`
	PeakHour       int       `json:"peak_hour" yaml:"peak_hour"`
	LateNightHours float64   `json:"late_night_hours" yaml:"late_night_hours"`
	FocusSessions  int       `json:"focus_sessions" yaml:"focus_sessions"`
	FocusHours     float64   `json:"focus_hours" yaml:"focus_hours"`
	Commands       int       `json:"commands" yaml:"commands"`
}

const dateLayout = "2006-01-02"

// NewDocument converts a report into its exported form.
func NewDocument(r models.AnnualReport) Document {
	doc := Document{
		Error:          r.Error,
		Personality:    r.PersonalityLabel,
		ForgottenApp:   r.ForgottenAppName,
		TopApps:        make([]App, 0, len(r.TopApps)),
		Daily:          make([]Day, 0, len(r.DailySeries)),
		Hourly:         r.Hourly[:],
		LongestSession: Session{App: r.LongestSession.AppName, Hours: r.LongestSession.Hours},
		FileCreation: Files{
			Total:         r.FileCreation.Total,
			TopExtensions: make([]Extension, 0, len(r.FileCreation.TopExtensions)),
		},
		PowerEvents: Power{
			Sleeps:  r.PowerEvents.Sleeps,
			Wakes:   r.PowerEvents.Wakes,
			Reboots: r.PowerEvents.Reboots,
		},
		Year:           r.Year,
		TotalHours:     r.TotalHours,
		TotalLaunches:  r.TotalLaunches,
		MaxStreakDays:  r.MaxStreakDays,
		WeekendHours:   r.WeekendHours,
		WeekdayHours:   r.WeekdayHours,
		PeakHour:       r.PeakHour,
		LateNightHours: r.LateNightHours,
		FocusSessions:  r.FocusSessionCount,
		FocusHours:     r.FocusHours,
		Commands:       r.CommandCount,
	}

	for _, a := range r.TopApps {
		doc.TopApps = append(doc.TopApps, App{
			Name:                a.Name,
			Hours:               a.TotalHours,
			Launches:            a.LaunchCount,
			LongestSessionHours: a.LongestSessionHours,
		})
	}
	for _, d := range r.DailySeries {
		doc.Daily = append(doc.Daily, Day{Date: d.Date.Format(dateLayout), Hours: d.Hours})
	}
	for _, e := range r.FileCreation.TopExtensions {
		doc.FileCreation.TopExtensions = append(doc.FileCreation.TopExtensions, Extension(e))
	}
	if r.SpikeDay.Detected() {
		doc.SpikeDay = &Day{Date: r.SpikeDay.Date.Format(dateLayout), Hours: r.SpikeDay.Hours}
	}

	return doc
}

// Write encodes the report to w in the given format.
func Write(w io.Writer, r models.AnnualReport, format Format) error {
	doc := NewDocument(r)

	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("failed to encode json: %w", err)
		}
		return nil

	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("failed to encode yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("failed to flush yaml: %w", err)
		}
		return nil

	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

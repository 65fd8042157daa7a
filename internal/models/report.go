// Package models defines data structures and domain types.
package models

import (
	"strings"
	"time"
)

// AppAggregate summarises one application's usage over the year.
type AppAggregate struct {
	Name                string
	TotalHours          float64
	LaunchCount         int
	LongestSessionHours float64
}

// DailyTotal is the usage recorded on a single calendar date.
type DailyTotal struct {
	Date  time.Time // midnight UTC of the calendar date
	Hours float64
}

// Weekend returns true for Saturdays and Sundays.
func (d DailyTotal) Weekend() bool {
	wd := d.Date.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// HourlyHistogram holds cumulative hours per hour of day (0-23).
type HourlyHistogram [24]float64

// LateNightHours lists the slots counted as late night usage.
var LateNightHours = []int{22, 23, 0, 1, 2, 3, 4}

// DefaultPeakHour is reported when no usage has been recorded.
const DefaultPeakHour = 12

// Total returns the sum of all slots.
func (h HourlyHistogram) Total() float64 {
	total := 0.0
	for _, v := range h {
		total += v
	}
	return total
}

// Peak returns the busiest hour, preferring the lowest hour on ties.
// An empty histogram reports DefaultPeakHour.
func (h HourlyHistogram) Peak() int {
	peak := -1
	peakVal := 0.0
	for hour, v := range h {
		if v > peakVal {
			peak = hour
			peakVal = v
		}
	}
	if peak < 0 {
		return DefaultPeakHour
	}
	return peak
}

// LateNight returns the hours accumulated between 22:00 and 05:00.
func (h HourlyHistogram) LateNight() float64 {
	total := 0.0
	for _, hour := range LateNightHours {
		total += h[hour]
	}
	return total
}

// Max returns the largest slot value.
func (h HourlyHistogram) Max() float64 {
	maxVal := 0.0
	for _, v := range h {
		if v > maxVal {
			maxVal = v
		}
	}
	return maxVal
}

// LongestSession is the single longest interval of the year.
type LongestSession struct {
	AppName string
	Hours   float64
}

// SpikeDay is the most anomalous day of the year. A zero Date means none.
type SpikeDay struct {
	Date  time.Time
	Hours float64
}

// Detected returns true if a spike day was found.
func (s SpikeDay) Detected() bool {
	return !s.Date.IsZero()
}

// ExtensionCount is the number of files created with one extension.
type ExtensionCount struct {
	Extension string
	Count     int
}

// FileCreationSummary describes the files created during the year.
type FileCreationSummary struct {
	TopExtensions []ExtensionCount // at most five, descending by count
	Total         int
}

// PowerEventSummary counts sleep/wake cycles recorded in the power log.
type PowerEventSummary struct {
	Sleeps  int
	Wakes   int
	Reboots int
}

// ErrorKind classifies the message carried by a degraded report.
type ErrorKind int

const (
	// ErrorKindNone means the report is not degraded.
	ErrorKindNone ErrorKind = iota
	// ErrorKindPermission means the data store exists but access was denied.
	ErrorKindPermission
	// ErrorKindOther covers every other source failure.
	ErrorKindOther
)

// String returns the display name of the error kind.
func (k ErrorKind) String() string {
	switch k {
	case ErrorKindNone:
		return "none"
	case ErrorKindPermission:
		return "permission"
	case ErrorKindOther:
		return "other"
	default:
		return "unknown"
	}
}

var permissionMarkers = []string{
	"operation not permitted",
	"permission denied",
}

// ClassifyError maps a source error message to an ErrorKind.
func ClassifyError(message string) ErrorKind {
	if message == "" {
		return ErrorKindNone
	}
	lower := strings.ToLower(message)
	for _, marker := range permissionMarkers {
		if strings.Contains(lower, marker) {
			return ErrorKindPermission
		}
	}
	return ErrorKindOther
}

// AnnualReport is the complete recap for one year. It is built once and
// handed to the presentation layer by value.
type AnnualReport struct {
	SpikeDay          SpikeDay
	LongestSession    LongestSession
	PowerEvents       PowerEventSummary
	ForgottenAppName  string
	PersonalityLabel  string
	Error             string
	TopApps           []AppAggregate
	DailySeries       []DailyTotal
	FileCreation      FileCreationSummary
	Hourly            HourlyHistogram
	Year              int
	TotalHours        float64
	TotalLaunches     int
	MaxStreakDays     int
	WeekendHours      float64
	WeekdayHours      float64
	PeakHour          int
	LateNightHours    float64
	FocusSessionCount int
	FocusHours        float64
	CommandCount      int
}

// Degraded returns true if the report is a placeholder for a missing source.
func (r *AnnualReport) Degraded() bool {
	return r.Error != ""
}

// HasData returns true if any usage was recorded.
func (r *AnnualReport) HasData() bool {
	return r.TotalHours > 0
}

// ErrorKind classifies the report's error message.
func (r *AnnualReport) ErrorKind() ErrorKind {
	return ClassifyError(r.Error)
}

// TopApp returns the most used application, if any.
func (r *AnnualReport) TopApp() (AppAggregate, bool) {
	if len(r.TopApps) == 0 || r.TopApps[0].TotalHours <= 0 {
		return AppAggregate{}, false
	}
	return r.TopApps[0], true
}

// DailyHours returns the daily series as a plain slice for charting.
func (r *AnnualReport) DailyHours() []float64 {
	values := make([]float64, len(r.DailySeries))
	for i, d := range r.DailySeries {
		values[i] = d.Hours
	}
	return values
}

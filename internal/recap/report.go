package recap

import (
	"errors"
	"fmt"
	"slices"

	"github.com/j-veylop/macwrap/internal/models"
)

const (
	// TopAppLimit is the number of apps exposed on the report.
	TopAppLimit = 5

	// DegradedPersonality is the label carried by a degraded report.
	DegradedPersonality = "Mac User"

	// PlaceholderAppName fills the top app slot of a degraded report.
	PlaceholderAppName = "No data"
)

// ErrInvalidYear is returned for years the engine cannot represent.
var ErrInvalidYear = errors.New("invalid year")

// Aux carries the auxiliary counters collected next to the intervals.
type Aux struct {
	FileCreation models.FileCreationSummary
	PowerEvents  models.PowerEventSummary
	CommandCount int
}

// Input is everything the ingestion boundary hands to the engine.
// A non-empty Error means the primary data source was unavailable.
type Input struct {
	Error     string
	Intervals []models.UsageInterval
	Aux       Aux
	Year      int
}

// Build runs aggregation, classification and assembly for one year.
// It only fails on contract violations; missing data yields a degraded report.
func Build(in Input) (models.AnnualReport, error) {
	if in.Year < 0 {
		return models.AnnualReport{}, fmt.Errorf("%w: %d", ErrInvalidYear, in.Year)
	}

	if in.Error != "" {
		return Degraded(in.Year, in.Error), nil
	}

	agg := Aggregate(withinYear(in.Intervals, in.Year))

	topName := ""
	if len(agg.Apps) > 0 {
		topName = agg.Apps[0].Name
	}
	label := Classify(topName, agg.TotalHours, agg.PeakHour, agg.LateNightHours, agg.FocusHours)

	return Assemble(in.Year, agg, label, in.Aux), nil
}

// withinYear drops intervals that start outside the target year.
func withinYear(intervals []models.UsageInterval, year int) []models.UsageInterval {
	kept := make([]models.UsageInterval, 0, len(intervals))
	for _, iv := range intervals {
		if iv.Start.Year() == year {
			kept = append(kept, iv)
		}
	}
	return kept
}

// Assemble merges the aggregation, the personality label and the auxiliary
// counters into the final report. Slices are copied so the report shares no
// backing storage with agg or aux.
func Assemble(year int, agg Aggregation, label string, aux Aux) models.AnnualReport {
	top := agg.Apps[:min(len(agg.Apps), TopAppLimit)]

	fileCreation := aux.FileCreation
	fileCreation.TopExtensions = cloneOrEmpty(aux.FileCreation.TopExtensions)

	forgotten := agg.ForgottenAppName
	if forgotten == "" {
		forgotten = NoForgottenApp
	}

	return models.AnnualReport{
		Year:              year,
		TotalHours:        agg.TotalHours,
		TotalLaunches:     agg.TotalLaunches,
		TopApps:           cloneOrEmpty(top),
		LongestSession:    agg.LongestSession,
		MaxStreakDays:     agg.MaxStreakDays,
		WeekendHours:      agg.WeekendHours,
		WeekdayHours:      agg.WeekdayHours,
		Hourly:            agg.Hourly,
		PeakHour:          agg.PeakHour,
		LateNightHours:    agg.LateNightHours,
		FocusSessionCount: agg.FocusSessionCount,
		FocusHours:        agg.FocusHours,
		ForgottenAppName:  forgotten,
		SpikeDay:          agg.SpikeDay,
		DailySeries:       cloneOrEmpty(agg.Daily),
		PersonalityLabel:  label,
		CommandCount:      aux.CommandCount,
		FileCreation:      fileCreation,
		PowerEvents:       aux.PowerEvents,
	}
}

// Degraded returns the canonical placeholder report used when the primary
// data source is unavailable. Auxiliary counters are always zeroed.
func Degraded(year int, message string) models.AnnualReport {
	return models.AnnualReport{
		Year:             year,
		TopApps:          []models.AppAggregate{{Name: PlaceholderAppName}},
		DailySeries:      []models.DailyTotal{},
		PeakHour:         models.DefaultPeakHour,
		ForgottenAppName: NoForgottenApp,
		PersonalityLabel: DegradedPersonality,
		FileCreation: models.FileCreationSummary{
			TopExtensions: []models.ExtensionCount{},
		},
		Error: message,
	}
}

func cloneOrEmpty[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return slices.Clone(s)
}

// Package recap computes the annual usage recap from raw usage intervals.
package recap

import (
	"slices"
	"time"

	"github.com/j-veylop/macwrap/internal/models"
)

const (
	// FocusSessionThreshold is the minimum length of a focus session.
	FocusSessionThreshold = 2 * time.Hour

	// ForgottenAppCeiling is the exclusive upper bound, in hours, for forgotten apps.
	ForgottenAppCeiling = 1.0

	// NoForgottenApp is reported when no app qualifies as forgotten.
	NoForgottenApp = "None"

	spikeWindowDays = 7
	spikeFactor     = 3.0
)

// Aggregation holds every metric derived from the interval list.
type Aggregation struct {
	SpikeDay          models.SpikeDay
	LongestSession    models.LongestSession
	ForgottenAppName  string
	Apps              []models.AppAggregate // all retained apps, descending by hours
	Daily             []models.DailyTotal
	Hourly            models.HourlyHistogram
	TotalHours        float64
	TotalLaunches     int
	MaxStreakDays     int
	WeekendHours      float64
	WeekdayHours      float64
	PeakHour          int
	LateNightHours    float64
	FocusSessionCount int
	FocusHours        float64
}

// Aggregate derives all recap metrics from intervals. Intervals with a
// non-positive duration are ignored and the input slice is not modified.
func Aggregate(intervals []models.UsageInterval) Aggregation {
	valid := make([]models.UsageInterval, 0, len(intervals))
	for _, iv := range intervals {
		if iv.Valid() {
			valid = append(valid, iv)
		}
	}

	agg := Aggregation{}

	apps, firstSeen := aggregateApps(valid)
	agg.Apps = apps
	for _, app := range apps {
		agg.TotalHours += app.TotalHours
		agg.TotalLaunches += app.LaunchCount
		if app.LongestSessionHours > agg.LongestSession.Hours {
			agg.LongestSession = models.LongestSession{
				AppName: app.Name,
				Hours:   app.LongestSessionHours,
			}
		}
	}
	agg.ForgottenAppName = forgottenApp(firstSeen)

	agg.Daily = dailyTotals(valid)
	agg.MaxStreakDays = longestStreak(agg.Daily)
	agg.WeekendHours, agg.WeekdayHours = splitWeekend(agg.Daily)
	agg.SpikeDay = detectSpike(agg.Daily)

	agg.Hourly = hourlyHistogram(valid)
	agg.PeakHour = agg.Hourly.Peak()
	agg.LateNightHours = agg.Hourly.LateNight()

	agg.FocusSessionCount, agg.FocusHours = focusSessions(valid)

	return agg
}

// aggregateApps groups intervals by display name. It returns the apps sorted
// by descending total hours and, separately, in first-seen order.
func aggregateApps(intervals []models.UsageInterval) (sorted, firstSeen []models.AppAggregate) {
	index := make(map[string]int)
	for _, iv := range intervals {
		name := iv.AppName()
		hours := iv.Hours()

		i, ok := index[name]
		if !ok {
			i = len(firstSeen)
			index[name] = i
			firstSeen = append(firstSeen, models.AppAggregate{Name: name})
		}

		app := &firstSeen[i]
		app.TotalHours += hours
		app.LaunchCount++
		if hours > app.LongestSessionHours {
			app.LongestSessionHours = hours
		}
	}

	firstSeen = slices.DeleteFunc(firstSeen, func(a models.AppAggregate) bool {
		return a.TotalHours <= 0
	})

	sorted = slices.Clone(firstSeen)
	slices.SortStableFunc(sorted, func(a, b models.AppAggregate) int {
		switch {
		case a.TotalHours > b.TotalHours:
			return -1
		case a.TotalHours < b.TotalHours:
			return 1
		default:
			return 0
		}
	})

	return sorted, firstSeen
}

// forgottenApp picks the least used app with a total strictly between zero
// and ForgottenAppCeiling hours.
func forgottenApp(apps []models.AppAggregate) string {
	name := NoForgottenApp
	least := ForgottenAppCeiling
	for _, app := range apps {
		if app.TotalHours > 0 && app.TotalHours < least {
			name = app.Name
			least = app.TotalHours
		}
	}
	return name
}

// calendarDate truncates t to its calendar date, expressed as midnight UTC
// so that consecutive dates are exactly 24h apart.
func calendarDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// dailyTotals buckets interval hours by the calendar date of their start.
func dailyTotals(intervals []models.UsageInterval) []models.DailyTotal {
	byDate := make(map[time.Time]float64)
	for _, iv := range intervals {
		byDate[calendarDate(iv.Start)] += iv.Hours()
	}

	daily := make([]models.DailyTotal, 0, len(byDate))
	for date, hours := range byDate {
		daily = append(daily, models.DailyTotal{Date: date, Hours: hours})
	}
	slices.SortFunc(daily, func(a, b models.DailyTotal) int {
		return a.Date.Compare(b.Date)
	})
	return daily
}

// longestStreak returns the longest run of consecutive calendar days.
func longestStreak(daily []models.DailyTotal) int {
	maxStreak := 0
	current := 0
	var prev time.Time
	for i, d := range daily {
		if i > 0 && d.Date.Equal(prev.AddDate(0, 0, 1)) {
			current++
		} else {
			current = 1
		}
		maxStreak = max(maxStreak, current)
		prev = d.Date
	}
	return maxStreak
}

func splitWeekend(daily []models.DailyTotal) (weekend, weekday float64) {
	for _, d := range daily {
		if d.Weekend() {
			weekend += d.Hours
		} else {
			weekday += d.Hours
		}
	}
	return weekend, weekday
}

// detectSpike finds the largest day exceeding three times its trailing
// seven day average. The average includes the day being tested, and no day
// is considered before eight days have been observed.
func detectSpike(daily []models.DailyTotal) models.SpikeDay {
	spike := models.SpikeDay{}
	window := make([]float64, 0, len(daily))
	for _, d := range daily {
		window = append(window, d.Hours)
		if len(window) <= spikeWindowDays {
			continue
		}

		sum := 0.0
		for _, v := range window[len(window)-spikeWindowDays:] {
			sum += v
		}
		avg := sum / spikeWindowDays

		if d.Hours > avg*spikeFactor && d.Hours > spike.Hours {
			spike = models.SpikeDay{Date: d.Date, Hours: d.Hours}
		}
	}
	return spike
}

// hourlyHistogram accumulates each interval's full duration into the hour
// of day in which it started.
func hourlyHistogram(intervals []models.UsageInterval) models.HourlyHistogram {
	var h models.HourlyHistogram
	for _, iv := range intervals {
		h[iv.Start.Hour()] += iv.Hours()
	}
	return h
}

func focusSessions(intervals []models.UsageInterval) (count int, hours float64) {
	for _, iv := range intervals {
		if iv.Duration() >= FocusSessionThreshold {
			count++
			hours += iv.Hours()
		}
	}
	return count, hours
}

package models

import (
	"testing"
	"time"
)

func TestHourlyHistogram_Peak(t *testing.T) {
	tests := []struct {
		name string
		set  map[int]float64
		want int
	}{
		{"Empty", nil, DefaultPeakHour},
		{"Single", map[int]float64{7: 1}, 7},
		{"TieTakesLowestHour", map[int]float64{3: 2, 15: 2, 20: 1}, 3},
		{"Midnight", map[int]float64{0: 5, 23: 4}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var h HourlyHistogram
			for hour, v := range tt.set {
				h[hour] = v
			}
			if got := h.Peak(); got != tt.want {
				t.Errorf("Peak() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestHourlyHistogram_LateNight(t *testing.T) {
	var h HourlyHistogram
	for hour := range h {
		h[hour] = 1
	}

	if got := h.LateNight(); got != 7 {
		t.Errorf("LateNight() = %v, want 7", got)
	}
	if got := h.Total(); got != 24 {
		t.Errorf("Total() = %v, want 24", got)
	}

	h[5] = 3
	if got := h.LateNight(); got != 7 {
		t.Errorf("LateNight() counted 05:00: %v", got)
	}
	if got := h.Max(); got != 3 {
		t.Errorf("Max() = %v, want 3", got)
	}
}

func TestDailyTotal_Weekend(t *testing.T) {
	tests := []struct {
		date time.Time
		want bool
	}{
		{time.Date(2025, 1, 4, 0, 0, 0, 0, time.UTC), true},
		{time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC), true},
		{time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC), false},
		{time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC), false},
	}

	for _, tt := range tests {
		t.Run(tt.date.Weekday().String(), func(t *testing.T) {
			if got := (DailyTotal{Date: tt.date}).Weekend(); got != tt.want {
				t.Errorf("Weekend() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestClassifyError(t *testing.T) {
	tests := []struct {
		message string
		want    ErrorKind
	}{
		{"", ErrorKindNone},
		{"unable to open database file: Operation not permitted", ErrorKindPermission},
		{"open /Users/x/knowledgeC.db: permission denied", ErrorKindPermission},
		{"screen time database not found", ErrorKindOther},
		{"database disk image is malformed", ErrorKindOther},
	}

	for _, tt := range tests {
		t.Run(tt.want.String(), func(t *testing.T) {
			if got := ClassifyError(tt.message); got != tt.want {
				t.Errorf("ClassifyError(%q) = %v, want %v", tt.message, got, tt.want)
			}
		})
	}
}

func TestAnnualReport_DailyHours(t *testing.T) {
	r := AnnualReport{
		DailySeries: []DailyTotal{
			{Date: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), Hours: 1.5},
			{Date: time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC), Hours: 4},
		},
	}

	got := r.DailyHours()
	if len(got) != 2 || got[0] != 1.5 || got[1] != 4 {
		t.Errorf("DailyHours() = %v, want [1.5 4]", got)
	}
}

func TestAnnualReport_TopApp(t *testing.T) {
	r := AnnualReport{TopApps: []AppAggregate{{Name: "Safari", TotalHours: 10}}}
	app, ok := r.TopApp()
	if !ok || app.Name != "Safari" {
		t.Errorf("TopApp() = %+v, %v", app, ok)
	}

	empty := AnnualReport{}
	if _, ok := empty.TopApp(); ok {
		t.Error("TopApp() on empty report should return false")
	}
}

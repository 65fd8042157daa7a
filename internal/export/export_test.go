package export

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/j-veylop/macwrap/internal/models"
)

func sampleReport() models.AnnualReport {
	var hourly models.HourlyHistogram
	hourly[10] = 5
	return models.AnnualReport{
		Year:          2025,
		TotalHours:    120.5,
		TotalLaunches: 42,
		TopApps: []models.AppAggregate{
			{Name: "Safari", TotalHours: 80, LaunchCount: 30, LongestSessionHours: 2.5},
		},
		DailySeries: []models.DailyTotal{
			{Date: time.Date(2025, 2, 3, 0, 0, 0, 0, time.UTC), Hours: 4},
		},
		Hourly:           hourly,
		SpikeDay:         models.SpikeDay{Date: time.Date(2025, 2, 3, 0, 0, 0, 0, time.UTC), Hours: 4},
		PersonalityLabel: "The Browser",
		FileCreation: models.FileCreationSummary{
			Total:         3,
			TopExtensions: []models.ExtensionCount{{Extension: "go", Count: 3}},
		},
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"json", FormatJSON, false},
		{"JSON", FormatJSON, false},
		{"yaml", FormatYAML, false},
		{" yml ", FormatYAML, false},
		{"xml", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrUnknownFormat) {
					t.Errorf("err = %v, want ErrUnknownFormat", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ParseFormat(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNewDocument(t *testing.T) {
	doc := NewDocument(sampleReport())

	if doc.SpikeDay == nil || doc.SpikeDay.Date != "2025-02-03" {
		t.Errorf("SpikeDay = %+v", doc.SpikeDay)
	}
	if len(doc.Hourly) != 24 || doc.Hourly[10] != 5 {
		t.Errorf("Hourly = %v", doc.Hourly)
	}
	if len(doc.TopApps) != 1 || doc.TopApps[0].LongestSessionHours != 2.5 {
		t.Errorf("TopApps = %+v", doc.TopApps)
	}
	if doc.FileCreation.TopExtensions[0].Extension != "go" {
		t.Errorf("TopExtensions = %+v", doc.FileCreation.TopExtensions)
	}

	empty := NewDocument(models.AnnualReport{Year: 2025})
	if empty.SpikeDay != nil {
		t.Error("no spike day should be exported as nil")
	}
	if empty.TopApps == nil || empty.Daily == nil {
		t.Error("lists should be empty, not nil")
	}
}

func TestWrite_JSON(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, sampleReport(), FormatJSON); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	var got Document
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("output is not valid json: %v", err)
	}
	if got.Year != 2025 || got.TotalHours != 120.5 || got.Personality != "The Browser" {
		t.Errorf("decoded = %+v", got)
	}
	if strings.Contains(buf.String(), `"error"`) {
		t.Error("empty error should be omitted")
	}
}

func TestWrite_YAML(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, sampleReport(), FormatYAML); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"year: 2025", "total_hours: 120.5", "- name: Safari", "2025-02-03"} {
		if !strings.Contains(out, want) {
			t.Errorf("yaml missing %q:\n%s", want, out)
		}
	}

	var got Document
	if err := yaml.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("output is not valid yaml: %v", err)
	}
	if got.TotalLaunches != 42 {
		t.Errorf("TotalLaunches = %d, want 42", got.TotalLaunches)
	}
}

func TestWrite_UnknownFormat(t *testing.T) {
	if err := Write(&bytes.Buffer{}, sampleReport(), Format("toml")); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("err = %v, want ErrUnknownFormat", err)
	}
}

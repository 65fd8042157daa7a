package db

import (
	"context"
	"database/sql"
	"fmt"
	"math"
	"time"

	"github.com/j-veylop/macwrap/internal/models"
)

// CocoaEpochOffset is the number of seconds between the Unix epoch and
// 2001-01-01T00:00:00Z, the reference date of the knowledge store.
const CocoaEpochOffset = 978307200

// AppUsageStream is the LIKE pattern selecting application usage rows.
const AppUsageStream = "/app/usage%"

// CocoaSeconds converts t to seconds since the Cocoa reference date.
func CocoaSeconds(t time.Time) float64 {
	return float64(t.UnixNano())/float64(time.Second) - CocoaEpochOffset
}

// FromCocoaSeconds converts seconds since the Cocoa reference date to a UTC time.
func FromCocoaSeconds(sec float64) time.Time {
	whole, frac := math.Modf(sec + CocoaEpochOffset)
	return time.Unix(int64(whole), int64(frac*float64(time.Second))).UTC()
}

// YearBounds returns the UTC half-open window [start, end) covering year.
func YearBounds(year int) (start, end time.Time) {
	start = time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(1, 0, 0)
}

// UsageIntervals returns every application usage interval starting within
// the UTC calendar year. Rows without an end date are skipped.
func (db *DB) UsageIntervals(ctx context.Context, year int) ([]models.UsageInterval, error) {
	query := `
		SELECT ZVALUESTRING, CAST(ZSTARTDATE AS REAL), CAST(ZENDDATE AS REAL)
		FROM ZOBJECT
		WHERE ZSTREAMNAME LIKE ?
			AND ZVALUESTRING IS NOT NULL
			AND ZSTARTDATE IS NOT NULL
			AND ZSTARTDATE >= ?
			AND ZSTARTDATE < ?
		ORDER BY ZSTARTDATE
	`

	start, end := YearBounds(year)
	rows, err := db.QueryContext(ctx, query, AppUsageStream, CocoaSeconds(start), CocoaSeconds(end))
	if err != nil {
		return nil, fmt.Errorf("failed to query usage intervals: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var intervals []models.UsageInterval
	for rows.Next() {
		var (
			bundle   string
			startSec float64
			endSec   sql.NullFloat64
		)
		if err := rows.Scan(&bundle, &startSec, &endSec); err != nil {
			return nil, fmt.Errorf("failed to scan usage interval: %w", err)
		}
		if !endSec.Valid {
			continue
		}

		intervals = append(intervals, models.UsageInterval{
			AppIdentifier: bundle,
			Start:         FromCocoaSeconds(startSec),
			End:           FromCocoaSeconds(endSec.Float64),
		})
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate usage intervals: %w", err)
	}

	return intervals, nil
}

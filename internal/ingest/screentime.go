package ingest

import (
	"context"

	"github.com/j-veylop/macwrap/internal/db"
	"github.com/j-veylop/macwrap/internal/models"
)

// ScreenTime reads the year's usage intervals from a snapshot of the
// knowledge store at path.
func ScreenTime(ctx context.Context, path string, year int) ([]models.UsageInterval, error) {
	var intervals []models.UsageInterval
	err := db.WithSnapshot(ctx, path, func(snapshot *db.DB) error {
		var err error
		intervals, err = snapshot.UsageIntervals(ctx, year)
		return err
	})
	if err != nil {
		return nil, err
	}
	return intervals, nil
}

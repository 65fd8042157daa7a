package db

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"
	"time"
)

type fixtureRow struct {
	stream string
	bundle any
	start  any
	end    any
}

// newFixture writes a minimal knowledge store with the given ZOBJECT rows.
func newFixture(t *testing.T, rows []fixtureRow) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "knowledgeC.db")
	sqlDB, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatalf("Failed to open fixture: %v", err)
	}
	defer sqlDB.Close()

	ctx := context.Background()
	_, err = sqlDB.ExecContext(ctx, `
		CREATE TABLE ZOBJECT (
			Z_PK INTEGER PRIMARY KEY,
			ZSTREAMNAME VARCHAR,
			ZVALUESTRING VARCHAR,
			ZSTARTDATE REAL,
			ZENDDATE REAL
		)
	`)
	if err != nil {
		t.Fatalf("Failed to create ZOBJECT: %v", err)
	}

	for _, r := range rows {
		_, err := sqlDB.ExecContext(ctx,
			"INSERT INTO ZOBJECT (ZSTREAMNAME, ZVALUESTRING, ZSTARTDATE, ZENDDATE) VALUES (?, ?, ?, ?)",
			r.stream, r.bundle, r.start, r.end)
		if err != nil {
			t.Fatalf("Failed to insert fixture row: %v", err)
		}
	}

	return path
}

func cocoa(year int, month time.Month, day, hour int) float64 {
	return CocoaSeconds(time.Date(year, month, day, hour, 0, 0, 0, time.UTC))
}

func TestOpen(t *testing.T) {
	path := newFixture(t, nil)

	db, err := Open(context.Background(), path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer db.Close()

	if db.Path() != path {
		t.Errorf("Expected path %s, got %s", path, db.Path())
	}
}

func TestOpen_MissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.db")

	_, err := Open(context.Background(), path)
	if !errors.Is(err, ErrSourceNotFound) {
		t.Fatalf("Expected ErrSourceNotFound, got %v", err)
	}
}

func TestOpen_IsReadOnly(t *testing.T) {
	db, err := Open(context.Background(), newFixture(t, nil))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer db.Close()

	_, err = db.ExecContext(context.Background(),
		"INSERT INTO ZOBJECT (ZSTREAMNAME) VALUES ('/app/usage')")
	if err == nil {
		t.Error("Expected write to fail on a query-only connection")
	}
}

func TestCocoaSeconds_RoundTrip(t *testing.T) {
	want := time.Date(2025, 6, 15, 13, 30, 15, 0, time.UTC)

	got := FromCocoaSeconds(CocoaSeconds(want))
	if !got.Equal(want) {
		t.Errorf("FromCocoaSeconds(CocoaSeconds(%v)) = %v", want, got)
	}

	if CocoaSeconds(time.Date(2001, 1, 1, 0, 0, 0, 0, time.UTC)) != 0 {
		t.Error("Cocoa reference date should map to zero")
	}
}

func TestYearBounds(t *testing.T) {
	start, end := YearBounds(2024)

	if !start.Equal(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("start = %v", start)
	}
	if !end.Equal(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("end = %v", end)
	}
}

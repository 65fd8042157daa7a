package ingest

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/j-veylop/macwrap/internal/db"
)

// writeKnowledgeStore creates a minimal knowledge store with one Safari
// session per given start time.
func writeKnowledgeStore(t *testing.T, starts ...time.Time) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "knowledgeC.db")
	sqlDB, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatalf("Failed to open fixture: %v", err)
	}
	defer sqlDB.Close()

	ctx := context.Background()
	if _, err := sqlDB.ExecContext(ctx, `CREATE TABLE ZOBJECT (
		Z_PK INTEGER PRIMARY KEY,
		ZSTREAMNAME VARCHAR,
		ZVALUESTRING VARCHAR,
		ZSTARTDATE REAL,
		ZENDDATE REAL
	)`); err != nil {
		t.Fatalf("Failed to create ZOBJECT: %v", err)
	}

	for _, start := range starts {
		_, err := sqlDB.ExecContext(ctx,
			"INSERT INTO ZOBJECT (ZSTREAMNAME, ZVALUESTRING, ZSTARTDATE, ZENDDATE) VALUES (?, ?, ?, ?)",
			"/app/usage", "com.apple.Safari",
			db.CocoaSeconds(start), db.CocoaSeconds(start.Add(time.Hour)))
		if err != nil {
			t.Fatalf("Failed to insert fixture row: %v", err)
		}
	}
	return path
}

func TestCollect(t *testing.T) {
	source := writeKnowledgeStore(t,
		time.Date(2025, 2, 1, 9, 0, 0, 0, time.UTC),
		time.Date(2025, 2, 2, 9, 0, 0, 0, time.UTC),
		time.Date(2024, 2, 2, 9, 0, 0, 0, time.UTC),
	)
	history := filepath.Join(t.TempDir(), ".zsh_history")
	if err := os.WriteFile(history, []byte("ls\npwd\n"), 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	runner := &fakeRunner{outputs: map[string]string{
		"mdfind": lines("/a.go", "/b.go"),
		"pmset":  lines("2025-01-01 Sleep", "2025-01-01 Wake"),
	}}

	ing := New(Options{
		SourcePath:    source,
		HistoryFiles:  []string{history},
		MdfindTimeout: time.Second,
		PmsetTimeout:  time.Second,
	}, runner)

	in := ing.Collect(context.Background(), 2025)

	if in.Error != "" {
		t.Fatalf("Unexpected error: %s", in.Error)
	}
	if in.Year != 2025 {
		t.Errorf("Year = %d, want 2025", in.Year)
	}
	if len(in.Intervals) != 2 {
		t.Errorf("len(Intervals) = %d, want 2", len(in.Intervals))
	}
	if in.Aux.CommandCount != 2 {
		t.Errorf("CommandCount = %d, want 2", in.Aux.CommandCount)
	}
	if in.Aux.FileCreation.Total != 2 {
		t.Errorf("FileCreation.Total = %d, want 2", in.Aux.FileCreation.Total)
	}
	if in.Aux.PowerEvents.Sleeps != 1 || in.Aux.PowerEvents.Wakes != 1 {
		t.Errorf("PowerEvents = %+v", in.Aux.PowerEvents)
	}
}

func TestCollect_AuxFailuresAreZero(t *testing.T) {
	source := writeKnowledgeStore(t, time.Date(2025, 2, 1, 9, 0, 0, 0, time.UTC))
	runner := &fakeRunner{
		errs:  map[string]error{"pmset": errors.New("exit status 1")},
		block: map[string]bool{"mdfind": true},
	}

	ing := New(Options{
		SourcePath:    source,
		MdfindTimeout: 20 * time.Millisecond,
		PmsetTimeout:  time.Second,
	}, runner)

	in := ing.Collect(context.Background(), 2025)

	if in.Error != "" {
		t.Fatalf("Aux failures should not degrade the input: %s", in.Error)
	}
	if len(in.Intervals) != 1 {
		t.Errorf("len(Intervals) = %d, want 1", len(in.Intervals))
	}
	if in.Aux.FileCreation.Total != 0 || in.Aux.PowerEvents.Sleeps != 0 || in.Aux.CommandCount != 0 {
		t.Errorf("Aux = %+v, want zero", in.Aux)
	}
}

func TestCollectAux_ReportsFailure(t *testing.T) {
	runner := &fakeRunner{
		outputs: map[string]string{"mdfind": lines("/a/b.go", "/a/c.go")},
		errs:    map[string]error{"pmset": errors.New("exit status 1")},
	}
	ing := New(Options{MdfindTimeout: time.Second, PmsetTimeout: time.Second}, runner)

	aux, err := ing.collectAux(context.Background(), 2025)
	if err == nil || !strings.Contains(err.Error(), "power events") {
		t.Errorf("err = %v, want the power events failure", err)
	}
	if aux.FileCreation.Total != 2 {
		t.Errorf("FileCreation.Total = %d, want 2 despite the pmset failure", aux.FileCreation.Total)
	}

	runner.errs = nil
	if _, err := ing.collectAux(context.Background(), 2025); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestCollect_MissingSource(t *testing.T) {
	runner := &fakeRunner{}
	ing := New(Options{SourcePath: filepath.Join(t.TempDir(), "missing.db")}, runner)

	in := ing.Collect(context.Background(), 2025)

	if !strings.Contains(in.Error, "not found") {
		t.Errorf("Error = %q, want not found message", in.Error)
	}
	if len(in.Intervals) != 0 {
		t.Errorf("Expected no intervals, got %d", len(in.Intervals))
	}
	if runner.called("mdfind") != nil || runner.called("pmset") != nil {
		t.Error("Auxiliary collectors should not run without a source")
	}
}

func TestNew_DefaultRunner(t *testing.T) {
	ing := New(Options{}, nil)
	if _, ok := ing.runner.(ExecRunner); !ok {
		t.Errorf("Expected ExecRunner default, got %T", ing.runner)
	}
}

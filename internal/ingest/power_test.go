package ingest

import (
	"bufio"
	"context"
	"errors"
	"strings"
	"testing"
	"time"
)

func TestCountPowerEvents(t *testing.T) {
	out := lines(
		"2025-03-01 08:00:00 +0100 Sleep  \tEntering Sleep state due to 'Idle Sleep'",
		"2025-03-01 09:00:00 +0100 Wake   \tDarkWake to FullWake",
		"2025-03-02 08:00:00 +0100 Sleep  \tEntering Sleep state",
		"2024-12-31 23:00:00 +0100 Sleep  \tEntering Sleep state",
		"2025-03-02 10:00:00 +0100 Assertions \tPID 123 Created",
	)

	got, err := countPowerEvents([]byte(out), 2025)
	if err != nil {
		t.Fatalf("countPowerEvents failed: %v", err)
	}
	if got.Sleeps != 2 || got.Wakes != 1 || got.Reboots != 0 {
		t.Errorf("countPowerEvents() = %+v, want 2 sleeps, 1 wake, 0 reboots", got)
	}
}

func TestCountPowerEvents_Reboots(t *testing.T) {
	var out string
	for i := 0; i < 25; i++ {
		out += "2025-01-01 00:00:00 Sleep\n"
	}

	got, _ := countPowerEvents([]byte(out), 2025)
	if got.Sleeps != 25 || got.Reboots != 2 {
		t.Errorf("countPowerEvents() = %+v, want 25 sleeps, 2 reboots", got)
	}
}

func TestCountPowerEvents_LongLine(t *testing.T) {
	out := lines("2025-01-01 Sleep", "2025-01-02 Wake "+strings.Repeat("x", 2*1024*1024), "2025-01-03 Sleep")

	got, err := countPowerEvents([]byte(out), 2025)
	if !errors.Is(err, bufio.ErrTooLong) {
		t.Errorf("err = %v, want bufio.ErrTooLong", err)
	}
	if got.Sleeps != 1 || got.Wakes != 0 {
		t.Errorf("countPowerEvents() = %+v, want the 1 sleep read before the long line", got)
	}

	runner := &fakeRunner{outputs: map[string]string{"pmset": out}}
	summary, err := PowerEvents(context.Background(), runner, 2025, time.Second)
	if err != nil || summary.Sleeps != 1 {
		t.Errorf("PowerEvents() = %+v, %v, want partial count and no error", summary, err)
	}
}

func TestPowerEvents(t *testing.T) {
	runner := &fakeRunner{outputs: map[string]string{
		"pmset": lines("2025-01-01 Sleep", "2025-01-01 Wake"),
	}}

	got, err := PowerEvents(context.Background(), runner, 2025, time.Second)
	if err != nil {
		t.Fatalf("PowerEvents failed: %v", err)
	}
	if got.Sleeps != 1 || got.Wakes != 1 {
		t.Errorf("PowerEvents() = %+v", got)
	}

	call := runner.called("pmset")
	if len(call) != 3 || call[1] != "-g" || call[2] != "log" {
		t.Errorf("pmset called with %v", call)
	}
}

func TestPowerEvents_Error(t *testing.T) {
	runner := &fakeRunner{errs: map[string]error{"pmset": errors.New("not found")}}

	if _, err := PowerEvents(context.Background(), runner, 2025, time.Second); err == nil {
		t.Error("Expected error from failing pmset")
	}
}

package services

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/j-veylop/macwrap/internal/models"
	"github.com/j-veylop/macwrap/internal/recap"
)

// stubCollector returns a fixed input and counts calls.
type stubCollector struct {
	mu    sync.Mutex
	input recap.Input
	calls int
}

func (s *stubCollector) Collect(_ context.Context, year int) recap.Input {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	in := s.input
	in.Year = year
	return in
}

func sampleInput() recap.Input {
	start := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	return recap.Input{
		Intervals: []models.UsageInterval{
			{AppIdentifier: "com.apple.Safari", Start: start, End: start.Add(3 * time.Hour)},
		},
	}
}

func newTestManager(t *testing.T, collector Collector, opts Options) *Manager {
	t.Helper()
	mgr, err := NewManager(opts, collector)
	if err != nil {
		t.Fatalf("NewManager failed: %v", err)
	}
	t.Cleanup(func() { _ = mgr.Close() })
	return mgr
}

func TestNewManager_RequiresCollector(t *testing.T) {
	if _, err := NewManager(Options{}, nil); err == nil {
		t.Error("NewManager should fail without a collector")
	}
}

func TestManager_BuildReport(t *testing.T) {
	collector := &stubCollector{input: sampleInput()}
	mgr := newTestManager(t, collector, Options{Year: 2025, EnableNotify: true})

	var notified []string
	mgr.notify = func(title, body string) error {
		notified = append(notified, title+": "+body)
		return nil
	}

	ch, _ := mgr.Subscribe()

	report, err := mgr.BuildReport(context.Background())
	if err != nil {
		t.Fatalf("BuildReport failed: %v", err)
	}
	if report.Year != 2025 || report.TotalHours != 3 {
		t.Errorf("report = year %d, %v hours", report.Year, report.TotalHours)
	}

	select {
	case e := <-ch:
		ready, ok := e.(ReportReadyEvent)
		if !ok {
			t.Fatalf("Got %T, want ReportReadyEvent", e)
		}
		if ready.Report.TotalHours != 3 {
			t.Errorf("event report hours = %v", ready.Report.TotalHours)
		}
	case <-time.After(time.Second):
		t.Fatal("Timeout waiting for ReportReadyEvent")
	}

	if len(notified) != 1 || notified[0] != "Your 2025 Mac Wrapped is ready: 3 hours across 1 launches" {
		t.Errorf("notifications = %v", notified)
	}

	stored, ok := mgr.Report()
	if !ok || stored.TotalHours != 3 {
		t.Errorf("Report() = %+v, %v", stored, ok)
	}
}

func TestManager_BuildReport_DegradedSkipsNotification(t *testing.T) {
	collector := &stubCollector{input: recap.Input{Error: "screen time database not found"}}
	mgr := newTestManager(t, collector, Options{Year: 2025, EnableNotify: true})

	called := false
	mgr.notify = func(string, string) error {
		called = true
		return nil
	}

	report, err := mgr.BuildReport(context.Background())
	if err != nil {
		t.Fatalf("BuildReport failed: %v", err)
	}
	if !report.Degraded() {
		t.Error("Expected degraded report")
	}
	if called {
		t.Error("Degraded reports should not notify")
	}
}

func TestManager_BuildReport_InvalidYear(t *testing.T) {
	mgr := newTestManager(t, &stubCollector{}, Options{Year: -1})
	ch, _ := mgr.Subscribe()

	_, err := mgr.BuildReport(context.Background())
	if !errors.Is(err, recap.ErrInvalidYear) {
		t.Fatalf("Expected ErrInvalidYear, got %v", err)
	}

	select {
	case e := <-ch:
		if _, ok := e.(ErrorEvent); !ok {
			t.Errorf("Got %T, want ErrorEvent", e)
		}
	case <-time.After(time.Second):
		t.Fatal("Timeout waiting for ErrorEvent")
	}

	if _, ok := mgr.Report(); ok {
		t.Error("No report should be stored after a failed build")
	}
}

func TestManager_BuildReport_Throttled(t *testing.T) {
	collector := &stubCollector{input: sampleInput()}
	mgr := newTestManager(t, collector, Options{Year: 2025})

	if _, err := mgr.BuildReport(context.Background()); err != nil {
		t.Fatalf("first BuildReport failed: %v", err)
	}
	if _, err := mgr.BuildReport(context.Background()); !errors.Is(err, ErrRebuildThrottled) {
		t.Fatalf("Expected ErrRebuildThrottled, got %v", err)
	}
	if collector.calls != 1 {
		t.Errorf("collector called %d times, want 1", collector.calls)
	}
}

func TestManager_Subscription(t *testing.T) {
	mgr := newTestManager(t, &stubCollector{}, Options{})

	ch, cmd := mgr.Subscribe()
	if ch == nil {
		t.Error("Subscribe returned nil channel")
	}
	if cmd == nil {
		t.Error("Subscribe returned nil command")
	}

	mgr.Unsubscribe(ch)

	select {
	case _, ok := <-ch:
		if ok {
			t.Error("Channel should be closed")
		}
	case <-time.After(time.Second):
		t.Error("Unsubscribe should close the channel")
	}
}

func TestManager_Broadcast(t *testing.T) {
	mgr := newTestManager(t, &stubCollector{}, Options{})

	ch, _ := mgr.Subscribe()
	event := SourceChangedEvent{Path: "/tmp/knowledgeC.db"}
	mgr.broadcast(event)

	select {
	case e := <-ch:
		if e != event {
			t.Errorf("Got event %v, want %v", e, event)
		}
	case <-time.After(time.Second):
		t.Error("Timeout waiting for broadcast")
	}
}

func TestManager_CloseIsIdempotent(t *testing.T) {
	mgr, err := NewManager(Options{}, &stubCollector{})
	if err != nil {
		t.Fatalf("NewManager failed: %v", err)
	}
	ch, _ := mgr.Subscribe()

	if err := mgr.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if err := mgr.Close(); err != nil {
		t.Fatalf("second Close failed: %v", err)
	}
	if _, ok := <-ch; ok {
		t.Error("Close should close subscriber channels")
	}
}

func TestManager_WatchSource(t *testing.T) {
	dir := t.TempDir()
	source := filepath.Join(dir, "knowledgeC.db")
	if err := os.WriteFile(source, []byte("v1"), 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	mgr := newTestManager(t, &stubCollector{}, Options{SourcePath: source, WatchSource: true})
	if mgr.watcher == nil {
		t.Fatal("Expected watcher to be started")
	}
	ch, _ := mgr.Subscribe()

	// Unrelated files are ignored.
	if err := os.WriteFile(filepath.Join(dir, "other.txt"), []byte("x"), 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	if err := os.WriteFile(source+"-wal", []byte("v2"), 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	select {
	case e := <-ch:
		changed, ok := e.(SourceChangedEvent)
		if !ok {
			t.Fatalf("Got %T, want SourceChangedEvent", e)
		}
		if changed.Path != source {
			t.Errorf("Path = %q, want %q", changed.Path, source)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("Timeout waiting for SourceChangedEvent")
	}
}

func TestManager_WatchMissingDirectory(t *testing.T) {
	mgr := newTestManager(t, &stubCollector{}, Options{
		SourcePath:  filepath.Join(t.TempDir(), "missing", "knowledgeC.db"),
		WatchSource: true,
	})
	if mgr.watcher != nil {
		t.Error("Watcher should be disabled for a missing directory")
	}
}

func TestWaitForEvent(t *testing.T) {
	ch := make(chan ServiceEvent, 1)
	ch <- SourceChangedEvent{}

	cmd := waitForEvent(ch)
	if msg := cmd(); msg == nil {
		t.Error("waitForEvent cmd returned nil msg")
	}

	close(ch)
	if msg := cmd(); msg != nil {
		t.Errorf("waitForEvent on closed channel = %v, want nil", msg)
	}
}

func TestServiceEvent_Interface(t *testing.T) {
	var _ ServiceEvent = ReportReadyEvent{}
	var _ ServiceEvent = SourceChangedEvent{}
	var _ ServiceEvent = ErrorEvent{}
}

// Package services provides service orchestration for the TUI.
package services

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/dustin/go-humanize"
	"github.com/fsnotify/fsnotify"
	"github.com/gen2brain/beeep"
	"golang.org/x/time/rate"

	"github.com/j-veylop/macwrap/internal/logger"
	"github.com/j-veylop/macwrap/internal/models"
	"github.com/j-veylop/macwrap/internal/recap"
)

// ErrRebuildThrottled is returned when rebuilds are requested too quickly.
var ErrRebuildThrottled = errors.New("rebuild requested too soon")

const (
	debounceInterval = 500 * time.Millisecond
	rebuildInterval  = 3 * time.Second
)

type (
	// ReportReadyEvent is emitted when a recap has been built.
	ReportReadyEvent struct {
		Report  models.AnnualReport
		Elapsed time.Duration
	}

	// SourceChangedEvent is emitted when the usage store changes on disk.
	SourceChangedEvent struct {
		Path string
	}

	// ErrorEvent is emitted when an error occurs in any service.
	ErrorEvent struct {
		Service string
		Error   error
	}
)

// ServiceEvent is the interface implemented by all service events.
type ServiceEvent interface {
	isServiceEvent()
}

func (ReportReadyEvent) isServiceEvent()   {}
func (SourceChangedEvent) isServiceEvent() {}
func (ErrorEvent) isServiceEvent()         {}

// Collector gathers the engine input for a year.
type Collector interface {
	Collect(ctx context.Context, year int) recap.Input
}

// Options configures the manager.
type Options struct {
	SourcePath   string
	SoundsDir    string
	Year         int
	EnableSound  bool
	EnableNotify bool
	WatchSource  bool
}

// Manager builds the recap off the UI goroutine and routes events.
type Manager struct {
	mu            sync.RWMutex
	collector     Collector
	opts          Options
	player        *Player
	limiter       *rate.Limiter
	notify        func(title, body string) error
	watcher       *fsnotify.Watcher
	debounceTimer *time.Timer
	stopChan      chan struct{}
	closeOnce     sync.Once
	subscribers   []chan ServiceEvent
	report        *models.AnnualReport
}

// NewManager creates a new service manager and starts watching the source
// when enabled. A missing source directory disables watching.
func NewManager(opts Options, collector Collector) (*Manager, error) {
	if collector == nil {
		return nil, errors.New("collector is required")
	}

	m := &Manager{
		collector: collector,
		opts:      opts,
		player:    NewPlayer(opts.SoundsDir, opts.EnableSound),
		limiter:   rate.NewLimiter(rate.Every(rebuildInterval), 1),
		notify: func(title, body string) error {
			return beeep.Notify(title, body, "")
		},
		stopChan: make(chan struct{}),
	}

	if opts.WatchSource && opts.SourcePath != "" {
		if err := m.startWatcher(); err != nil {
			logger.Warn("Source watching disabled", "path", opts.SourcePath, "error", err)
		}
	}

	return m, nil
}

// Year returns the year the manager builds recaps for.
func (m *Manager) Year() int {
	return m.opts.Year
}

// BuildReport collects the input and builds the recap. The result is
// broadcast as a ReportReadyEvent; failures as an ErrorEvent.
func (m *Manager) BuildReport(ctx context.Context) (models.AnnualReport, error) {
	if !m.limiter.Allow() {
		return models.AnnualReport{}, ErrRebuildThrottled
	}

	start := time.Now()
	in := m.collector.Collect(ctx, m.opts.Year)
	report, err := recap.Build(in)
	if err != nil {
		err = fmt.Errorf("failed to build recap: %w", err)
		m.broadcast(ErrorEvent{Service: "recap", Error: err})
		return models.AnnualReport{}, err
	}
	elapsed := time.Since(start)

	m.mu.Lock()
	m.report = &report
	m.mu.Unlock()

	logger.Info("Recap built",
		"year", report.Year,
		"hours", report.TotalHours,
		"degraded", report.Degraded(),
		"elapsed", elapsed)

	m.broadcast(ReportReadyEvent{Report: report, Elapsed: elapsed})
	m.notifyReady(&report)

	return report, nil
}

// Report returns the last built recap.
func (m *Manager) Report() (models.AnnualReport, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.report == nil {
		return models.AnnualReport{}, false
	}
	return *m.report, true
}

// PlayCue plays a named sound cue without blocking.
func (m *Manager) PlayCue(cue string) {
	m.player.Play(cue)
}

func (m *Manager) notifyReady(report *models.AnnualReport) {
	if !m.opts.EnableNotify || report.Degraded() {
		return
	}

	title := fmt.Sprintf("Your %d Mac Wrapped is ready", report.Year)
	body := fmt.Sprintf("%s hours across %s launches",
		humanize.Comma(int64(report.TotalHours)),
		humanize.Comma(int64(report.TotalLaunches)))
	if err := m.notify(title, body); err != nil {
		logger.Debug("Desktop notification failed", "error", err)
	}
}

// startWatcher watches the directory holding the usage store.
func (m *Manager) startWatcher() error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}

	dir := filepath.Dir(m.opts.SourcePath)
	if err := watcher.Add(dir); err != nil {
		if closeErr := watcher.Close(); closeErr != nil {
			logger.Error("failed to close watcher", "error", closeErr)
		}
		return err
	}
	m.watcher = watcher

	go m.watchLoop()
	return nil
}

// watchLoop handles file system events with debouncing.
func (m *Manager) watchLoop() {
	base := filepath.Base(m.opts.SourcePath)

	for {
		select {
		case event, ok := <-m.watcher.Events:
			if !ok {
				return
			}

			// The store and its WAL sidecar
			if !strings.HasPrefix(filepath.Base(event.Name), base) {
				continue
			}

			if event.Op&(fsnotify.Write|fsnotify.Create) != 0 {
				m.mu.Lock()
				if m.debounceTimer != nil {
					m.debounceTimer.Stop()
				}
				m.debounceTimer = time.AfterFunc(debounceInterval, func() {
					m.broadcast(SourceChangedEvent{Path: m.opts.SourcePath})
				})
				m.mu.Unlock()
			}

		case err, ok := <-m.watcher.Errors:
			if !ok {
				return
			}
			m.broadcast(ErrorEvent{Service: "watcher", Error: err})

		case <-m.stopChan:
			return
		}
	}
}

// broadcast sends an event to all subscribers.
func (m *Manager) broadcast(event ServiceEvent) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, sub := range m.subscribers {
		select {
		case sub <- event:
		default:
			// Subscriber channel full, skip
		}
	}
}

// Subscribe creates a channel for receiving service events.
// Returns a tea.Cmd that can be used in Bubble Tea's Init or Update.
func (m *Manager) Subscribe() (chan ServiceEvent, tea.Cmd) {
	ch := make(chan ServiceEvent, 50)

	m.mu.Lock()
	m.subscribers = append(m.subscribers, ch)
	m.mu.Unlock()

	return ch, waitForEvent(ch)
}

// waitForEvent returns a tea.Cmd that waits for the next event.
func waitForEvent(ch <-chan ServiceEvent) tea.Cmd {
	return func() tea.Msg {
		event, ok := <-ch
		if !ok {
			return nil
		}
		return event
	}
}

// Unsubscribe removes a subscriber channel.
func (m *Manager) Unsubscribe(ch chan ServiceEvent) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, sub := range m.subscribers {
		if sub == ch {
			m.subscribers = append(m.subscribers[:i], m.subscribers[i+1:]...)
			close(ch)
			break
		}
	}
}

// Close stops the watcher, waits for pending sounds and closes subscribers.
func (m *Manager) Close() error {
	var err error
	m.closeOnce.Do(func() {
		close(m.stopChan)

		m.mu.Lock()
		if m.debounceTimer != nil {
			m.debounceTimer.Stop()
		}
		for _, sub := range m.subscribers {
			close(sub)
		}
		m.subscribers = nil
		m.mu.Unlock()

		if m.watcher != nil {
			err = m.watcher.Close()
		}

		m.player.Wait()
	})
	return err
}

package app

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/j-veylop/macwrap/internal/models"
)

// NotificationType defines the type of notification.
type NotificationType int

const (
	// NotificationSuccess represents a success notification.
	NotificationSuccess NotificationType = iota
	// NotificationError represents an error notification.
	NotificationError
	// NotificationWarning represents a warning notification.
	NotificationWarning
	// NotificationInfo represents an informational notification.
	NotificationInfo
	// NotificationLoading represents a loading notification with spinner.
	NotificationLoading
)

const (
	// LoadingNotificationID is the fixed ID for loading notifications.
	LoadingNotificationID = "__loading__"

	maxNotifications = 10
)

// String returns the string representation of a NotificationType.
func (n NotificationType) String() string {
	switch n {
	case NotificationSuccess:
		return "success"
	case NotificationError:
		return "error"
	case NotificationWarning:
		return "warning"
	case NotificationInfo:
		return "info"
	case NotificationLoading:
		return "loading"
	default:
		return "unknown"
	}
}

// Notification represents a user-facing notification message.
type Notification struct {
	ID        string
	Type      NotificationType
	Message   string
	CreatedAt time.Time
	Duration  time.Duration
}

// IsExpired returns true if the notification has expired.
func (n *Notification) IsExpired() bool {
	if n.Duration <= 0 {
		return false
	}
	return time.Since(n.CreatedAt) > n.Duration
}

// State is shared between the model and its panels. The report is replaced
// wholesale on every build and never mutated in place.
type State struct {
	mu sync.RWMutex

	report    models.AnnualReport
	hasReport bool
	stale     bool
	building  bool

	LastUpdated time.Time

	notifications []Notification
}

// NewState creates an empty state with no report.
func NewState() *State {
	return &State{
		notifications: make([]Notification, 0),
	}
}

// SetReport stores a freshly built report and clears the stale flag.
func (s *State) SetReport(report models.AnnualReport) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.report = report
	s.hasReport = true
	s.stale = false
	s.LastUpdated = time.Now()
}

// GetReport returns the current report and whether one has been built.
func (s *State) GetReport() (models.AnnualReport, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.report, s.hasReport
}

// HasReport returns true once a report has been stored.
func (s *State) HasReport() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.hasReport
}

// MarkStale records that the source changed after the report was built.
func (s *State) MarkStale() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.hasReport {
		s.stale = true
	}
}

// IsStale returns true if the source changed since the last build.
func (s *State) IsStale() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.stale
}

// SetBuilding sets whether a build is in flight.
func (s *State) SetBuilding(building bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.building = building
}

// IsBuilding returns true while a build is in flight.
func (s *State) IsBuilding() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.building
}

// AddNotification adds a new notification and returns its ID.
func (s *State) AddNotification(notifType NotificationType, message string, duration time.Duration) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	notification := Notification{
		ID:        uuid.NewString(),
		Type:      notifType,
		Message:   message,
		CreatedAt: time.Now(),
		Duration:  duration,
	}

	s.notifications = append(s.notifications, notification)

	if len(s.notifications) > maxNotifications {
		s.notifications = s.notifications[len(s.notifications)-maxNotifications:]
	}

	return notification.ID
}

// RemoveNotification removes a notification by ID.
func (s *State) RemoveNotification(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, n := range s.notifications {
		if n.ID == id {
			s.notifications = append(s.notifications[:i], s.notifications[i+1:]...)
			return
		}
	}
}

// ClearExpiredNotifications removes all expired notifications.
func (s *State) ClearExpiredNotifications() {
	s.mu.Lock()
	defer s.mu.Unlock()

	active := make([]Notification, 0, len(s.notifications))
	for _, n := range s.notifications {
		if !n.IsExpired() {
			active = append(active, n)
		}
	}
	s.notifications = active
}

// GetNotifications returns a copy of all active notifications.
func (s *State) GetNotifications() []Notification {
	s.mu.RLock()
	defer s.mu.RUnlock()

	active := make([]Notification, 0, len(s.notifications))
	for _, n := range s.notifications {
		if !n.IsExpired() {
			active = append(active, n)
		}
	}

	return active
}

// ClearAllNotifications removes all notifications.
func (s *State) ClearAllNotifications() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notifications = make([]Notification, 0)
}

// SetLoadingNotification sets a loading notification message.
func (s *State) SetLoadingNotification(message string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, n := range s.notifications {
		if n.ID == LoadingNotificationID {
			s.notifications[i].Message = message
			return
		}
	}

	s.notifications = append(s.notifications, Notification{
		ID:        LoadingNotificationID,
		Type:      NotificationLoading,
		Message:   message,
		CreatedAt: time.Now(),
		Duration:  0,
	})
}

// ClearLoadingNotification removes the loading notification.
func (s *State) ClearLoadingNotification() {
	s.RemoveNotification(LoadingNotificationID)
}

// GetLastUpdated returns the last time a report was stored.
func (s *State) GetLastUpdated() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.LastUpdated
}


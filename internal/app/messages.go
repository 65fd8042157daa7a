package app

import (
	"time"

	"github.com/j-veylop/macwrap/internal/models"
	"github.com/j-veylop/macwrap/internal/services"
)

// TickMsg is sent periodically to expire notifications.
type TickMsg struct {
	Time time.Time
}

// IntroDoneMsg is sent when the intro panel has been on screen long enough.
type IntroDoneMsg struct{}

// LoadingElapsedMsg is sent once the loading panel's minimum time has passed.
type LoadingElapsedMsg struct{}

// ReportBuiltMsg carries the result of a build started by the model.
type ReportBuiltMsg struct {
	Report  models.AnnualReport
	Elapsed time.Duration
	Err     error
}

// RebuildMsg requests a fresh build of the report.
type RebuildMsg struct{}

// NextPanelMsg advances the deck.
type NextPanelMsg struct{}

// PrevPanelMsg steps the deck back.
type PrevPanelMsg struct{}

// GoToPanelMsg jumps to a specific panel.
type GoToPanelMsg struct {
	Panel PanelID
}

// AddNotificationMsg requests adding a new notification.
type AddNotificationMsg struct {
	Type     NotificationType
	Message  string
	Duration time.Duration
}

// RemoveNotificationMsg requests removal of a notification.
type RemoveNotificationMsg struct {
	ID string
}

// ClearExpiredNotificationsMsg triggers clearing of expired notifications.
type ClearExpiredNotificationsMsg struct{}

// ServiceEventMsg wraps a service event from the service manager.
type ServiceEventMsg struct {
	Event services.ServiceEvent
}

// SubscriptionEventMsg is the callback wrapper for service subscription.
type SubscriptionEventMsg struct {
	Channel chan services.ServiceEvent
}

// ToggleHelpMsg toggles the help display.
type ToggleHelpMsg struct{}

// QuitMsg requests the application to quit.
type QuitMsg struct{}

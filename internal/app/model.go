// Package app implements the main Bubble Tea application as a deck of panels.
package app

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/dustin/go-humanize"

	"github.com/j-veylop/macwrap/internal/logger"
	"github.com/j-veylop/macwrap/internal/recap"
	"github.com/j-veylop/macwrap/internal/services"
	"github.com/j-veylop/macwrap/internal/ui/styles"
)

// PanelID identifies a panel in the deck. Panels are shown in ID order.
type PanelID int

const (
	PanelIntro PanelID = iota
	PanelLoading
	PanelTotal
	PanelTopApps
	PanelStreak
	PanelFocus
	PanelWeekend
	PanelHeatmap
	PanelForgotten
	PanelSpike
	PanelLateNight
	PanelLongestSession
	PanelCommandLine
	PanelFileCreation
	PanelPowerEvents
	PanelPersonality
	PanelFinale
	PanelCredits

	// PanelCount is the number of panels; keep it last.
	PanelCount
)

var panelNames = [PanelCount]string{
	"Intro",
	"Loading",
	"Total Time",
	"Top Apps",
	"Streak",
	"Focus",
	"Weekend vs Weekday",
	"Hourly Heatmap",
	"Forgotten App",
	"Spike Day",
	"Late Night",
	"Longest Session",
	"Command Line",
	"File Creation",
	"Power Events",
	"Personality",
	"Finale",
	"Credits",
}

// String returns the display name of the panel.
func (p PanelID) String() string {
	if p < 0 || p >= PanelCount {
		return "Unknown"
	}
	return panelNames[p]
}

// Transient returns true for panels that cannot be navigated back to.
func (p PanelID) Transient() bool {
	return p == PanelIntro || p == PanelLoading
}

// Sound cues played when a panel is entered.
const (
	CueIntro  = "intro"
	CueReveal = "reveal"
	CueFinale = "finale"
)

// Cue returns the sound cue for entering the panel, or "".
func (p PanelID) Cue() string {
	switch p {
	case PanelIntro:
		return CueIntro
	case PanelPersonality:
		return CueReveal
	case PanelFinale:
		return CueFinale
	default:
		return ""
	}
}

// Panel defines the interface that all panels must implement.
type Panel interface {
	// Init initializes the panel and returns any initial commands.
	Init() tea.Cmd

	// Show is called each time the panel becomes the current one.
	Show() tea.Cmd

	// Update handles messages and returns the updated panel and any commands.
	Update(msg tea.Msg) (Panel, tea.Cmd)

	// View renders the panel content.
	View() string

	// SetSize sets the available size for the panel.
	SetSize(width, height int)

	// ShortHelp returns panel specific key bindings.
	ShortHelp() []key.Binding
}

// KeyMap defines the keybindings for the application.
type KeyMap struct {
	Next    key.Binding
	Back    key.Binding
	Rebuild key.Binding
	Help    key.Binding
	Quit    key.Binding
	Escape  key.Binding
	Up      key.Binding
	Down    key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() KeyMap {
	km := KeyMap{}
	km = setDeckKeys(km)
	km = setActionKeys(km)
	km = setScrollKeys(km)
	return km
}

func setDeckKeys(k KeyMap) KeyMap {
	k.Next = key.NewBinding(
		key.WithKeys(" ", "space", "enter", "right", "l"),
		key.WithHelp("space/→", "next"),
	)
	k.Back = key.NewBinding(
		key.WithKeys("left", "h", "backspace"),
		key.WithHelp("←", "back"),
	)
	return k
}

func setActionKeys(k KeyMap) KeyMap {
	k.Rebuild = key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "rebuild"),
	)
	k.Help = key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	)
	k.Quit = key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	)
	k.Escape = key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "close"),
	)
	return k
}

func setScrollKeys(k KeyMap) KeyMap {
	k.Up = key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "scroll up"),
	)
	k.Down = key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "scroll down"),
	)
	return k
}

// ShortHelp returns key bindings for the footer.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Back, k.Rebuild, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Back},
		{k.Up, k.Down},
		{k.Rebuild, k.Help, k.Quit},
	}
}

// Styles defines the application styles.
type Styles struct {
	// Notification styles
	NotificationSuccess lipgloss.Style
	NotificationError   lipgloss.Style
	NotificationWarning lipgloss.Style
	NotificationInfo    lipgloss.Style

	// Content styles
	Content lipgloss.Style
	Footer  lipgloss.Style
	Spinner lipgloss.Style
	Toast   lipgloss.Style

	// Common styles
	Title     lipgloss.Style
	Subtle    lipgloss.Style
	Highlight lipgloss.Style
	Warning   lipgloss.Style
}

// DefaultStyles returns the default application styles.
func DefaultStyles() Styles {
	subtle := lipgloss.AdaptiveColor{Light: "#9B9B9B", Dark: "#5C5C5C"}
	highlight := lipgloss.AdaptiveColor{Light: "#D7005F", Dark: "#FF5FD7"}
	success := lipgloss.AdaptiveColor{Light: "#04B575", Dark: "#04B575"}
	warning := lipgloss.AdaptiveColor{Light: "#FF8C00", Dark: "#FFD75F"}
	errorColor := lipgloss.AdaptiveColor{Light: "#FF5F87", Dark: "#FF5F87"}
	info := lipgloss.AdaptiveColor{Light: "#0087D7", Dark: "#58A6FF"}

	s := Styles{}
	s.NotificationSuccess = lipgloss.NewStyle().Foreground(success).Padding(0, 1)
	s.NotificationError = lipgloss.NewStyle().Foreground(errorColor).Bold(true).Padding(0, 1)
	s.NotificationWarning = lipgloss.NewStyle().Foreground(warning).Padding(0, 1)
	s.NotificationInfo = lipgloss.NewStyle().Foreground(info).Padding(0, 1)

	s.Content = lipgloss.NewStyle().Padding(1, 2)
	s.Footer = lipgloss.NewStyle().Padding(0, 1)
	s.Spinner = lipgloss.NewStyle().Foreground(highlight)
	s.Toast = styles.ToastStyle

	s.Title = lipgloss.NewStyle().Bold(true).Foreground(highlight)
	s.Subtle = lipgloss.NewStyle().Foreground(subtle)
	s.Highlight = lipgloss.NewStyle().Foreground(highlight)
	s.Warning = lipgloss.NewStyle().Foreground(warning)

	return s
}

const footerHeight = 1

// Model is the main application model.
type Model struct {
	// Deck
	current PanelID
	panels  []Panel

	// Shared state
	state    *State
	services *services.Manager
	keymap   KeyMap
	styles   Styles
	year     int

	// UI components
	spinner spinner.Model
	help    help.Model

	// Window dimensions
	width  int
	height int

	// UI state
	showHelp       bool
	ready          bool
	loadingElapsed bool
	builds         int

	// Service subscription
	eventChannel chan services.ServiceEvent
}

// NewModel initializes a new application model. mgr may be nil, in which
// case no report is built and the deck waits for a ReportBuiltMsg.
func NewModel(mgr *services.Manager) *Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(styles.Primary)

	year := time.Now().Year()
	if mgr != nil {
		year = mgr.Year()
	}

	h := help.New()
	h.ShortSeparator = " • "
	h.Styles.ShortKey = styles.HelpKeyStyle
	h.Styles.ShortDesc = styles.HelpDescStyle
	h.Styles.ShortSeparator = styles.HelpSeparatorStyle
	h.Styles.FullKey = styles.HelpKeyStyle
	h.Styles.FullDesc = styles.HelpDescStyle
	h.Styles.FullSeparator = styles.HelpSeparatorStyle

	return &Model{
		current:  PanelIntro,
		state:    NewState(),
		services: mgr,
		keymap:   DefaultKeyMap(),
		styles:   DefaultStyles(),
		year:     year,
		spinner:  s,
		help:     h,
	}
}

// SetPanels sets the deck. Panels are indexed by PanelID.
func (m *Model) SetPanels(panels []Panel) {
	m.panels = panels
	if m.width > 0 && m.height > 0 {
		m.updatePanelSizes()
	}
}

// GetState returns the application state.
func (m *Model) GetState() *State {
	return m.state
}

// Current returns the panel on screen.
func (m *Model) Current() PanelID {
	return m.current
}

// IsReady returns true if the model is ready (window size received).
func (m *Model) IsReady() bool {
	return m.ready
}

// Init initializes the model.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		m.spinner.Tick,
		defaultTickCmd(),
		introTimerCmd(),
	}

	if m.services != nil {
		cmds = append(cmds, subscribeToServicesCmd(m.services))
		m.state.SetBuilding(true)
		cmds = append(cmds, buildReportCmd(m.services))
	}

	for _, panel := range m.panels {
		if panel != nil {
			cmds = append(cmds, panel.Init())
		}
	}
	if panel := m.activePanel(); panel != nil {
		cmds = append(cmds, panel.Show())
	}
	m.playCue(m.current)

	return tea.Batch(cmds...)
}

// Update handles messages and updates the model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		cmd, handled := m.handleKeyMsg(msg)
		if handled {
			return m, cmd
		}

	case tea.WindowSizeMsg, spinner.TickMsg:
		if cmd := m.handleTeaMsg(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}

	default:
		if appCmds := m.handleAppMsg(msg); len(appCmds) > 0 {
			cmds = append(cmds, appCmds...)
		}
	}

	if cmd := m.updateActivePanel(msg); cmd != nil {
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

func (m *Model) handleTeaMsg(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.handleWindowSize(msg)
	case spinner.TickMsg:
		return m.handleSpinnerTick(msg)
	}
	return nil
}

func (m *Model) handleAppMsg(msg tea.Msg) []tea.Cmd {
	var cmds []tea.Cmd
	switch msg := msg.(type) {
	case TickMsg:
		cmds = append(cmds, m.handleTick())
	case IntroDoneMsg:
		if m.current == PanelIntro {
			cmds = append(cmds, m.goTo(PanelLoading))
		}
	case LoadingElapsedMsg:
		m.loadingElapsed = true
		cmds = append(cmds, m.maybeFinishLoading())
	case ReportBuiltMsg:
		cmds = append(cmds, m.handleReportBuilt(msg)...)
	case RebuildMsg:
		cmds = append(cmds, m.rebuild())
	case NextPanelMsg:
		cmds = append(cmds, m.next())
	case PrevPanelMsg:
		cmds = append(cmds, m.back())
	case GoToPanelMsg:
		cmds = append(cmds, m.goTo(msg.Panel))
	case SubscriptionEventMsg:
		m.eventChannel = msg.Channel
		cmds = append(cmds, waitForServiceEventCmd(m.eventChannel))
	case ServiceEventMsg:
		cmds = append(cmds, m.handleServiceEventMsg(msg)...)
	case AddNotificationMsg:
		cmds = append(cmds, m.handleAddNotification(msg))
	case RemoveNotificationMsg:
		m.state.RemoveNotification(msg.ID)
	case ClearExpiredNotificationsMsg:
		m.state.ClearExpiredNotifications()
	case ToggleHelpMsg:
		m.showHelp = !m.showHelp
	case QuitMsg:
		cmds = append(cmds, m.quit())
	}
	return cmds
}

func (m *Model) handleWindowSize(msg tea.WindowSizeMsg) {
	m.width = msg.Width
	m.height = msg.Height
	m.help.Width = msg.Width
	m.ready = true
	m.updatePanelSizes()
}

func (m *Model) handleSpinnerTick(msg spinner.TickMsg) tea.Cmd {
	var cmd tea.Cmd
	m.spinner, cmd = m.spinner.Update(msg)
	return cmd
}

func (m *Model) handleTick() tea.Cmd {
	m.state.ClearExpiredNotifications()
	return defaultTickCmd()
}

func (m *Model) handleReportBuilt(msg ReportBuiltMsg) []tea.Cmd {
	m.state.SetBuilding(false)
	m.state.ClearLoadingNotification()

	if msg.Err != nil {
		if errors.Is(msg.Err, services.ErrRebuildThrottled) {
			return []tea.Cmd{notifyWarningCmd("Rebuild requested too soon, try again in a moment")}
		}
		logger.Warn("Recap build failed", "error", msg.Err)
		// The deck still needs something to show.
		if !m.state.HasReport() {
			m.state.SetReport(recap.Degraded(m.year, msg.Err.Error()))
		}
		return []tea.Cmd{m.maybeFinishLoading()}
	}

	m.state.SetReport(msg.Report)
	m.builds++

	cmds := []tea.Cmd{m.maybeFinishLoading()}
	if m.builds > 1 {
		cmds = append(cmds, notifySuccessCmd(
			fmt.Sprintf("Recap rebuilt in %s", msg.Elapsed.Round(time.Millisecond))))
	}
	return cmds
}

func (m *Model) handleServiceEventMsg(msg ServiceEventMsg) []tea.Cmd {
	var cmds []tea.Cmd
	if cmd := m.handleServiceEvent(msg.Event); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if m.eventChannel != nil {
		cmds = append(cmds, waitForServiceEventCmd(m.eventChannel))
	}
	return cmds
}

func (m *Model) handleServiceEvent(event services.ServiceEvent) tea.Cmd {
	switch e := event.(type) {
	case services.ReportReadyEvent:
		m.state.SetReport(e.Report)
		return m.maybeFinishLoading()

	case services.SourceChangedEvent:
		if !m.state.HasReport() || m.state.IsStale() {
			m.state.MarkStale()
			return nil
		}
		m.state.MarkStale()
		return notifyInfoCmd("Screen Time data changed, press r to rebuild")

	case services.ErrorEvent:
		return notifyErrorCmd(fmt.Sprintf("[%s] %v", e.Service, e.Error))
	}

	return nil
}

func (m *Model) handleAddNotification(msg AddNotificationMsg) tea.Cmd {
	id := m.state.AddNotification(msg.Type, msg.Message, msg.Duration)
	if msg.Duration > 0 {
		return clearNotificationCmd(id, msg.Duration)
	}
	return nil
}

// handleKeyMsg handles global keys. Keys it does not consume are passed to
// the current panel.
func (m *Model) handleKeyMsg(msg tea.KeyMsg) (tea.Cmd, bool) {
	switch {
	case key.Matches(msg, m.keymap.Quit):
		return m.quit(), true

	case key.Matches(msg, m.keymap.Help):
		m.showHelp = !m.showHelp
		return nil, true

	case key.Matches(msg, m.keymap.Escape):
		if m.showHelp {
			m.showHelp = false
			return nil, true
		}
		return nil, false

	case m.showHelp:
		// The help overlay swallows everything else.
		return nil, true

	case key.Matches(msg, m.keymap.Next):
		return m.next(), true

	case key.Matches(msg, m.keymap.Back):
		return m.back(), true

	case key.Matches(msg, m.keymap.Rebuild):
		return m.rebuild(), true
	}

	return nil, false
}

func (m *Model) next() tea.Cmd {
	switch m.current {
	case PanelIntro:
		return m.goTo(PanelLoading)
	case PanelLoading:
		// Leaves on its own once the report is ready.
		return nil
	case PanelCredits:
		return m.quit()
	default:
		return m.goTo(m.current + 1)
	}
}

func (m *Model) back() tea.Cmd {
	prev := m.current - 1
	if prev < 0 || prev.Transient() {
		return nil
	}
	return m.goTo(prev)
}

func (m *Model) goTo(id PanelID) tea.Cmd {
	if id < 0 || id >= PanelCount {
		return nil
	}
	m.current = id

	var cmds []tea.Cmd
	if id == PanelLoading {
		m.loadingElapsed = false
		cmds = append(cmds, loadingTimerCmd())
	}
	if panel := m.activePanel(); panel != nil {
		cmds = append(cmds, panel.Show())
	}
	m.playCue(id)

	return tea.Batch(cmds...)
}

// quit drops the service subscription and ends the program.
func (m *Model) quit() tea.Cmd {
	if m.services != nil && m.eventChannel != nil {
		m.services.Unsubscribe(m.eventChannel)
		m.eventChannel = nil
	}
	return tea.Quit
}

func (m *Model) maybeFinishLoading() tea.Cmd {
	if m.current != PanelLoading || !m.loadingElapsed || !m.state.HasReport() {
		return nil
	}
	return m.goTo(PanelTotal)
}

func (m *Model) rebuild() tea.Cmd {
	if m.services == nil || m.state.IsBuilding() {
		return nil
	}
	m.state.SetBuilding(true)
	m.state.ClearAllNotifications()
	m.state.SetLoadingNotification("Rebuilding your recap...")
	return buildReportCmd(m.services)
}

func (m *Model) playCue(id PanelID) {
	if cue := id.Cue(); cue != "" && m.services != nil {
		m.services.PlayCue(cue)
	}
}

func (m *Model) activePanel() Panel {
	if int(m.current) < len(m.panels) {
		return m.panels[m.current]
	}
	return nil
}

func (m *Model) updateActivePanel(msg tea.Msg) tea.Cmd {
	panel := m.activePanel()
	if panel == nil {
		return nil
	}
	updated, cmd := panel.Update(msg)
	m.panels[m.current] = updated
	return cmd
}

func (m *Model) updatePanelSizes() {
	contentHeight := m.height - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}
	for _, panel := range m.panels {
		if panel != nil {
			panel.SetSize(m.width, contentHeight)
		}
	}
}

// View renders the application UI.
func (m *Model) View() string {
	if !m.ready {
		return m.styles.Content.Render(fmt.Sprintf("%s Loading...", m.spinner.View()))
	}

	var body string
	if panel := m.activePanel(); panel != nil {
		body = panel.View()
	} else {
		body = m.renderPlaceholder()
	}

	mainView := lipgloss.JoinVertical(lipgloss.Left, body, m.renderFooter())

	if m.showHelp {
		mainView = m.overlayCentered(mainView, m.renderHelp())
	}

	if notifications := m.renderNotifications(); len(notifications) > 0 {
		return m.overlayToasts(mainView, notifications)
	}

	return mainView
}

func (m *Model) overlayCentered(mainView string, overlay string) string {
	mainLines := strings.Split(mainView, "\n")
	overlayLines := strings.Split(overlay, "\n")

	overlayHeight := len(overlayLines)
	overlayWidth := lipgloss.Width(overlay)

	y := max((m.height-overlayHeight)/2, 0)
	x := max((m.width-overlayWidth)/2, 0)

	for i, overlayLine := range overlayLines {
		mainY := y + i
		if mainY >= len(mainLines) {
			break
		}

		mainLine := mainLines[mainY]

		// Keep what is left and right of the overlay
		left := ansi.Truncate(mainLine, x, "")
		right := ansi.TruncateLeft(mainLine, x+overlayWidth, "")

		if lipgloss.Width(left) < x {
			left += strings.Repeat(" ", x-lipgloss.Width(left))
		}

		mainLines[mainY] = left + overlayLine + right
	}

	return strings.Join(mainLines, "\n")
}

func (m *Model) renderFooter() string {
	left := m.help.View(m.keymap)

	var right string
	if !m.current.Transient() {
		right = styles.ProgressStyle.Render(
			fmt.Sprintf("%d/%d", int(m.current-PanelTotal)+1, int(PanelCount-PanelTotal)))
	}
	if m.state.IsStale() {
		stale := fmt.Sprintf("stale (built %s), press r", humanize.Time(m.state.GetLastUpdated()))
		right = m.styles.Warning.Render(stale) + "  " + right
	}

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if gap < 1 {
		gap = 1
	}
	return m.styles.Footer.Render(left + strings.Repeat(" ", gap) + right)
}

func (m *Model) renderNotifications() []string {
	notifications := m.state.GetNotifications()
	if len(notifications) == 0 {
		return nil
	}

	var toasts []string
	for _, n := range notifications {
		var style lipgloss.Style
		var prefix string

		switch n.Type {
		case NotificationSuccess:
			style = m.styles.NotificationSuccess
			prefix = "[OK]"
		case NotificationError:
			style = m.styles.NotificationError
			prefix = "[ERR]"
		case NotificationWarning:
			style = m.styles.NotificationWarning
			prefix = "[WARN]"
		case NotificationInfo:
			style = m.styles.NotificationInfo
			prefix = "[INFO]"
		case NotificationLoading:
			style = m.styles.NotificationInfo
			prefix = m.spinner.View()
		}

		content := style.Render(fmt.Sprintf("%s %s", prefix, n.Message))
		toasts = append(toasts, m.styles.Toast.Render(content))
	}

	return toasts
}

func (m *Model) overlayToasts(mainView string, toasts []string) string {
	if len(toasts) == 0 {
		return mainView
	}

	toastStack := lipgloss.JoinVertical(lipgloss.Right, toasts...)
	toastLines := strings.Split(toastStack, "\n")
	mainLines := strings.Split(mainView, "\n")

	toastWidth := lipgloss.Width(toastStack)
	startX := max(m.width-toastWidth-2, 0)

	startY := 1

	for i, toastLine := range toastLines {
		lineIdx := startY + i
		if lineIdx >= len(mainLines) {
			break
		}

		mainLine := mainLines[lineIdx]
		mainLineWidth := lipgloss.Width(mainLine)

		if mainLineWidth < startX {
			padding := strings.Repeat(" ", startX-mainLineWidth)
			mainLines[lineIdx] = mainLine + padding + toastLine
		} else {
			truncated := ansi.Truncate(mainLine, startX, "")
			mainLines[lineIdx] = truncated + toastLine
		}
	}

	return strings.Join(mainLines, "\n")
}

func (m *Model) renderHelp() string {
	var lines []string

	lines = append(lines, m.styles.Title.Render("Keyboard Shortcuts"))
	lines = append(lines, "")

	lines = append(lines, m.styles.Highlight.Render("Navigation"))
	lines = append(lines, "  Space/Enter/→  Next panel")
	lines = append(lines, "  ←/Backspace    Previous panel")
	lines = append(lines, "")

	lines = append(lines, m.styles.Highlight.Render("Actions"))
	lines = append(lines, "  r              Rebuild recap")
	lines = append(lines, "  ?              Toggle help")
	lines = append(lines, "  q/Ctrl+C       Quit")
	lines = append(lines, "")

	if panel := m.activePanel(); panel != nil {
		if panelHelp := panel.ShortHelp(); len(panelHelp) > 0 {
			lines = append(lines, m.styles.Highlight.Render(m.current.String()))
			for _, binding := range panelHelp {
				lines = append(lines, fmt.Sprintf("  %-14s %s", binding.Help().Key, binding.Help().Desc))
			}
			lines = append(lines, "")
		}
	}

	lines = append(lines, m.styles.Subtle.Render("Press ? or Esc to close"))

	return styles.HelpPanelStyle.Render(strings.Join(lines, "\n"))
}

func (m *Model) renderPlaceholder() string {
	content := fmt.Sprintf(
		"%s\n\n%s",
		m.styles.Title.Render(m.current.String()),
		m.styles.Subtle.Render("This panel is not available."),
	)
	return styles.CenterHorizontal(m.styles.Content.Render(content), m.width)
}

package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/MKhiriev/go-feed-sync/internal/app"
	"github.com/MKhiriev/go-feed-sync/internal/config"
	"github.com/MKhiriev/go-feed-sync/internal/utils"
	"github.com/MKhiriev/go-feed-sync/models"
)

type screen int

const (
	screenHome screen = iota
	screenSettings
)

const (
	headerHeight = 4
	footerHeight = 4
	minBodyRows  = 3
)

const statusTTL = 3 * time.Second

// feedController is the part of the sync core the view drives.
type feedController interface {
	RequestRefresh()
	MarkAllRead(watermark string)
	FeedRendered()
	Snapshot() models.SyncState
}

type permissionRequester interface {
	RequestPermission(ctx context.Context) models.Permission
	CurrentState() models.Permission
}

type feedModel struct {
	ctx         context.Context
	appName     string
	homePath    string
	bridge      *Bridge
	feed        feedController
	permissions permissionRequester
	buildInfo   models.AppBuildInfo
	copyText    func(string) error

	screen  screen
	vp      viewport.Model
	width   int
	entries []models.FeedEntry

	indicator            models.UnreadIndicator
	health               models.ChannelHealth
	notificationsEnabled bool
	requesting           bool
	showBuildInfo        bool

	status    string
	statusSeq int
	errMsg    string
}

func newFeedModel(
	ctx context.Context,
	appCfg config.ClientApp,
	bridge *Bridge,
	feed feedController,
	permissions permissionRequester,
	buildInfo models.AppBuildInfo,
) feedModel {
	return feedModel{
		ctx:         ctx,
		appName:     appCfg.Name,
		homePath:    appCfg.HomePath,
		bridge:      bridge,
		feed:        feed,
		permissions: permissions,
		buildInfo:   buildInfo,
		copyText:    clipboard.WriteAll,
		vp:          viewport.New(80, 20),
		width:       80,
		indicator:   models.UnreadIndicator{Title: appCfg.Name},
		health:      models.ChannelDisconnectedRetrying,
	}
}

func (m feedModel) Init() tea.Cmd {
	return tea.Batch(m.bridge.waitForUpdate(), tea.SetWindowTitle(m.indicator.Title))
}

func (m feedModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.vp.Width = max(msg.Width-4, 10)
		m.vp.Height = max(msg.Height-headerHeight-footerHeight, minBodyRows)
		m.vp.SetContent(m.renderEntries())
		m.publishViewport()
		return m, nil

	case unreadMsg:
		m.indicator = msg.indicator
		return m, tea.Batch(tea.SetWindowTitle(msg.indicator.Title), m.bridge.waitForUpdate())

	case feedMsg:
		if m.status == app.MsgRefreshing {
			m.status = ""
		}
		m.entries = msg.page.Entries
		m.vp.SetContent(m.renderEntries())
		m.publishViewport()
		return m, m.bridge.waitForUpdate()

	case notificationsMsg:
		m.notificationsEnabled = msg.enabled
		return m, m.bridge.waitForUpdate()

	case healthMsg:
		m.health = msg.health
		return m, m.bridge.waitForUpdate()

	case permissionMsg:
		m.requesting = false
		cmd := m.flash("Notification permission: " + string(msg.permission))
		return m, cmd

	case copiedMsg:
		if msg.err != nil {
			m.errMsg = fmt.Sprintf("Copy failed: %v", msg.err)
			return m, nil
		}
		m.errMsg = ""
		cmd := m.flash(app.MsgCopiedNewest)
		return m, cmd

	case clearStatusMsg:
		if msg.seq == m.statusSeq {
			m.status = ""
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m feedModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, keys.quit) {
		return m, tea.Quit
	}

	if m.showBuildInfo {
		if key.Matches(msg, keys.esc, keys.info) {
			m.showBuildInfo = false
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.info):
		m.showBuildInfo = true
		return m, nil

	case key.Matches(msg, keys.home), m.screen == screenSettings && key.Matches(msg, keys.esc):
		m.screen = screenHome
		m.vp.GotoTop()
		m.publishViewport()
		// the rendered home feed counts as read even if the refresh fails
		m.feed.FeedRendered()
		m.feed.RequestRefresh()
		cmd := m.flash(app.MsgRefreshing)
		return m, cmd

	case key.Matches(msg, keys.settings):
		m.screen = screenSettings
		m.publishViewport()
		return m, nil

	case key.Matches(msg, keys.refresh):
		m.feed.RequestRefresh()
		cmd := m.flash(app.MsgRefreshing)
		return m, cmd

	case key.Matches(msg, keys.markRead):
		m.feed.MarkAllRead(utils.NowWatermark())
		cmd := m.flash(app.MsgMarkedAllRead)
		return m, cmd

	case key.Matches(msg, keys.notify):
		if m.notificationsEnabled || m.requesting {
			return m, nil
		}
		m.requesting = true
		ctx, permissions := m.ctx, m.permissions
		return m, func() tea.Msg {
			return permissionMsg{permission: permissions.RequestPermission(ctx)}
		}

	case key.Matches(msg, keys.copy):
		if len(m.entries) == 0 {
			cmd := m.flash(app.MsgNothingToCopy)
			return m, cmd
		}
		text, copyText := m.entries[0].Text, m.copyText
		return m, func() tea.Msg {
			return copiedMsg{err: copyText(text)}
		}
	}

	if m.screen == screenHome && key.Matches(msg, keys.up, keys.down, keys.pageUp, keys.pageDown) {
		var cmd tea.Cmd
		m.vp, cmd = m.vp.Update(msg)
		m.publishViewport()
		return m, cmd
	}

	return m, nil
}

// flash shows text in the status line and schedules its removal. A newer
// status outlives the older one's timer.
func (m *feedModel) flash(text string) tea.Cmd {
	m.statusSeq++
	m.status = text
	seq := m.statusSeq
	return tea.Tick(statusTTL, func(time.Time) tea.Msg {
		return clearStatusMsg{seq: seq}
	})
}

// publishViewport hands the current view position to the sync core.
func (m feedModel) publishViewport() {
	vp := models.Viewport{
		Path:         m.homePath,
		FeedPresent:  m.screen == screenHome,
		ScrollOffset: m.vp.YOffset * scrollUnitsPerLine,
	}
	if m.screen == screenSettings {
		vp.Path = strings.TrimRight(m.homePath, "/") + "/settings"
	}
	m.bridge.setViewport(vp)
}

func (m feedModel) View() string {
	if m.showBuildInfo {
		return appStyle.Render(renderBuildInfoWindow(m.appName, m.buildInfo))
	}

	var body, hotKeys string
	switch m.screen {
	case screenSettings:
		body = m.viewSettings()
		hotKeys = "esc/h: feed │ n: enable notifications │ v: about"
	default:
		body = m.vp.View()
		hotKeys = "j/k: scroll │ h: home │ r: refresh │ m: mark read │ c: copy newest │ s: settings │ n: notify"
	}

	var b strings.Builder
	b.WriteString(m.viewHeader())
	b.WriteString("\n")
	if m.errMsg != "" {
		b.WriteString(errorStyle.Render(m.errMsg))
		b.WriteString("\n")
	} else if m.status != "" {
		b.WriteString(helpStyle.Render(m.status))
		b.WriteString("\n")
	}
	b.WriteString(renderPage("", body, hotKeys))

	return appStyle.Render(b.String())
}

func (m feedModel) viewHeader() string {
	parts := []string{titleStyle.Render(m.appName)}
	if m.indicator.BadgeVisible {
		parts = append(parts, badgeStyle.Render(m.indicator.BadgeText))
	}

	if m.health == models.ChannelConnected {
		parts = append(parts, connectedStyle.Render(app.MsgLive))
	} else {
		parts = append(parts, retryingStyle.Render(app.MsgReconnecting))
	}

	parts = append(parts, helpStyle.Render(m.notificationLabel()))

	return strings.Join(parts, "  ")
}

func (m feedModel) notificationLabel() string {
	switch {
	case m.notificationsEnabled:
		return app.MsgNotificationsEnabledTitle
	case m.requesting:
		return app.MsgRequestingPermission
	default:
		return app.MsgEnableNotifications
	}
}

func (m feedModel) viewSettings() string {
	state := m.feed.Snapshot()

	var b strings.Builder
	b.WriteString("Feed:          ")
	b.WriteString(m.homePath)
	b.WriteString("\n")
	b.WriteString("Last seen:     ")
	b.WriteString(formatWatermark(state.LastSeenWatermark))
	b.WriteString("\n")
	b.WriteString("Unread:        ")
	b.WriteString(fmt.Sprint(state.UnreadCount))
	b.WriteString("\n")
	b.WriteString("Notifications: ")
	b.WriteString(string(m.permissions.CurrentState()))
	b.WriteString("\n")
	b.WriteString("Push channel:  ")
	b.WriteString(string(m.health))
	return b.String()
}

func (m feedModel) renderEntries() string {
	if len(m.entries) == 0 {
		return helpStyle.Render(app.MsgNoPosts)
	}

	width := max(m.vp.Width, 10)
	textStyle := lipgloss.NewStyle().Width(width)

	var b strings.Builder
	for i, entry := range m.entries {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(entryIDStyle.Render("#" + entry.PostID))
		b.WriteString("\n")
		b.WriteString(textStyle.Render(fitText(entry.Text, width*4)))
		b.WriteString("\n")
	}
	return b.String()
}

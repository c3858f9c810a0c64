package app

import (
	"context"
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	actdto "gather/internal/modules/activity/dto"
	profiledto "gather/internal/modules/profile/dto"
	sessiondto "gather/internal/modules/session/dto"
	apperrors "gather/internal/platform/errors"
	"gather/internal/platform/logging"
	"gather/internal/ui/theme"
	activitiesview "gather/internal/ui/views/activities"
	authview "gather/internal/ui/views/auth"
	profileview "gather/internal/ui/views/profile"
)

// ─── ports ───────────────────────────────────────────────────────────────────
// Each port is the minimal interface that this orchestration layer requires.
// Sub-view ports are defined in their own packages and narrowed further.

type sessionPort interface {
	SignIn(ctx context.Context, input sessiondto.SignInInput) (sessiondto.SessionOutput, error)
	SignUp(ctx context.Context, input sessiondto.SignUpInput) (sessiondto.SessionOutput, error)
	SignOut(ctx context.Context) error
	Current(ctx context.Context) (sessiondto.SessionOutput, error)
}

type activityPort interface {
	List(ctx context.Context, filter string) ([]actdto.ActivityOutput, error)
	Create(ctx context.Context, input actdto.DraftInput) (actdto.ActivityOutput, error)
	Update(ctx context.Context, id string, input actdto.DraftInput) (actdto.ActivityOutput, error)
	Delete(ctx context.Context, id string) error
}

type profilePort interface {
	Show(ctx context.Context) (profiledto.UserOutput, error)
	Update(ctx context.Context, input profiledto.UpdateInput) (profiledto.UserOutput, error)
}

// ─── tab index ───────────────────────────────────────────────────────────────

type tabID int

const (
	tabActivities tabID = iota
	tabAccount
	tabCount
)

var tabLabels = [tabCount]string{"Activities", "Account"}

// ─── async messages ───────────────────────────────────────────────────────────

type sessionCheckedMsg struct {
	token string
	err   error
}

// ─── key bindings ─────────────────────────────────────────────────────────────

type keyMap struct {
	Tab    key.Binding
	Help   key.Binding
	Quit   key.Binding
	New    key.Binding
	Edit   key.Binding
	Delete key.Binding
	Filter key.Binding
	Reload key.Binding
	Logout key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Tab:    key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next tab")),
		Help:   key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:   key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "quit")),
		New:    key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new activity")),
		Edit:   key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit")),
		Delete: key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "delete")),
		Filter: key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "all/mine")),
		Reload: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
		Logout: key.NewBinding(key.WithKeys("ctrl+o"), key.WithHelp("ctrl+o", "log out")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Tab, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.New, k.Edit, k.Delete},
		{k.Filter, k.Reload, k.Logout},
		{k.Tab, k.Help, k.Quit},
	}
}

// ─── model ───────────────────────────────────────────────────────────────────

// Model is the root Bubble Tea model. It gates the tab views behind the
// sign-in screen, owns tab routing and the global help overlay, and
// logs every failure that reaches this boundary. All business logic is
// delegated to port interfaces; all rendering is delegated to sub-views.
type Model struct {
	session  sessionPort
	activity activityPort
	profile  profilePort
	log      *logging.Logger

	authView     authview.Model
	activView    activitiesview.Model
	profView     profileview.Model
	authed       bool
	checkingAuth bool

	activeTab tabID
	keys      keyMap
	help      help.Model
	showHelp  bool
	status    string
	width     int
	height    int
}

// ─── constructor ─────────────────────────────────────────────────────────────

func NewModel(session sessionPort, activity activityPort, profile profilePort, log *logging.Logger) Model {
	return Model{
		session:      session,
		activity:     activity,
		profile:      profile,
		log:          log,
		authView:     authview.New(sessionPortBridge{p: session}),
		activView:    activitiesview.New(activityPortBridge{p: activity}),
		profView:     profileview.New(profilePortBridge{profile: profile, session: session}),
		checkingAuth: true,
		activeTab:    tabActivities,
		keys:         defaultKeys(),
		help:         help.New(),
		status:       "ready",
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.checkSessionCmd(), m.authView.Init())
}

// ─── update ───────────────────────────────────────────────────────────────────

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = m.width
		m.propagateSize()
		return m, nil

	case sessionCheckedMsg:
		m.checkingAuth = false
		if msg.err != nil || msg.token == "" {
			if msg.err != nil && !errors.Is(msg.err, apperrors.ErrMissingToken) {
				m.log.Warn("session check: %v", msg.err)
			}
			return m, nil
		}
		return m.enterAuthed()

	case authview.AuthedMsg:
		if msg.Err != nil {
			m.log.Warn("sign in: %v", msg.Err)
			var cmd tea.Cmd
			m.authView, cmd = m.authView.Update(msg)
			return m, cmd
		}
		return m.enterAuthed()

	case profileview.SignedOutMsg:
		if msg.Err != nil {
			m.log.Error("sign out: %v", msg.Err)
			m.status = "sign out failed: " + msg.Err.Error()
			return m, nil
		}
		m.authed = false
		m.status = "signed out"
		m.authView = authview.New(sessionPortBridge{p: m.session})
		cmds = append(cmds, m.authView.Init())
		m.propagateSize()
		return m, tea.Batch(cmds...)

	// View-specific responses are routed straight to their view so a
	// fetch finishing on a background tab still lands.
	case activitiesview.ActivitiesLoadedMsg:
		if msg.Err != nil {
			m.log.Warn("list activities (%s): %v", msg.Filter, msg.Err)
		}
		var cmd tea.Cmd
		m.activView, cmd = m.activView.Update(msg)
		return m, cmd

	case activitiesview.ActivitySavedMsg:
		if msg.Err != nil {
			m.log.Warn("save activity: %v", msg.Err)
		} else if msg.Created {
			m.status = "created: " + msg.Activity.Title
		} else {
			m.status = "updated: " + msg.Activity.Title
		}
		var cmd tea.Cmd
		m.activView, cmd = m.activView.Update(msg)
		return m, cmd

	case activitiesview.ActivityDeletedMsg:
		if msg.Err != nil {
			m.log.Warn("delete activity: %v", msg.Err)
		} else {
			m.status = "deleted"
		}
		var cmd tea.Cmd
		m.activView, cmd = m.activView.Update(msg)
		return m, cmd

	case profileview.UserLoadedMsg:
		if msg.Err != nil {
			m.log.Warn("fetch profile: %v", msg.Err)
		}
		var cmd tea.Cmd
		m.profView, cmd = m.profView.Update(msg)
		return m, cmd

	case profileview.UserSavedMsg:
		if msg.Err != nil {
			m.log.Warn("update profile: %v", msg.Err)
		} else {
			m.status = "profile updated"
		}
		var cmd tea.Cmd
		m.profView, cmd = m.profView.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.showHelp {
			if msg.String() == "?" || msg.String() == "esc" {
				m.showHelp = false
			}
			return m, nil
		}
		if m.authed && !m.subViewCapturing() {
			switch msg.String() {
			case "q":
				return m, tea.Quit
			case "tab":
				m.activeTab = (m.activeTab + 1) % tabCount
				return m, nil
			case "shift+tab":
				m.activeTab = (m.activeTab + tabCount - 1) % tabCount
				return m, nil
			case "?":
				m.showHelp = !m.showHelp
				return m, nil
			}
		}
	}

	if m.checkingAuth {
		return m, tea.Batch(cmds...)
	}

	if !m.authed {
		var cmd tea.Cmd
		m.authView, cmd = m.authView.Update(msg)
		cmds = append(cmds, cmd)
		return m, tea.Batch(cmds...)
	}

	var tabCmd tea.Cmd
	switch m.activeTab {
	case tabActivities:
		m.activView, tabCmd = m.activView.Update(msg)
	case tabAccount:
		m.profView, tabCmd = m.profView.Update(msg)
	}
	cmds = append(cmds, tabCmd)

	return m, tea.Batch(cmds...)
}

// ─── view ────────────────────────────────────────────────────────────────────

func (m Model) View() string {
	if m.checkingAuth {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			theme.Muted.Render("Checking session…"))
	}
	if !m.authed {
		return m.authView.View()
	}

	tabBar := m.renderTabBar()
	statusBar := m.renderStatusBar()
	contentH := m.height - lipgloss.Height(tabBar) - lipgloss.Height(statusBar)
	if contentH < 1 {
		contentH = 1
	}

	var content string
	if m.showHelp {
		content = lipgloss.NewStyle().Width(m.width).Height(contentH).
			Render(m.help.View(m.keys))
	} else {
		switch m.activeTab {
		case tabActivities:
			content = m.activView.View()
		case tabAccount:
			content = m.profView.View()
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left, tabBar, content, statusBar)
}

func (m Model) renderTabBar() string {
	parts := make([]string, tabCount)
	for i := tabID(0); i < tabCount; i++ {
		label := tabLabels[i]
		if i == m.activeTab {
			parts[i] = theme.Hot.Render(" " + label + " ")
		} else {
			parts[i] = theme.Muted.Render(" " + label + " ")
		}
	}
	sep := theme.Muted.Render(" │ ")
	bar := "gather  " + strings.Join(parts, sep)
	return lipgloss.NewStyle().Background(theme.Mantle).Width(m.width).Render(bar) + "\n"
}

func (m Model) renderStatusBar() string {
	left := m.status
	right := theme.Muted.Render("?:help  tab:switch  q:quit")
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	bar := left + strings.Repeat(" ", gap) + right
	return "\n" + lipgloss.NewStyle().Background(theme.Mantle).Width(m.width).Render(bar)
}

// ─── helpers ─────────────────────────────────────────────────────────────────

func (m Model) enterAuthed() (tea.Model, tea.Cmd) {
	m.authed = true
	m.status = "signed in"
	m.activeTab = tabActivities
	m.activView = activitiesview.New(activityPortBridge{p: m.activity})
	m.profView = profileview.New(profilePortBridge{profile: m.profile, session: m.session})
	m.propagateSize()
	return m, tea.Batch(m.activView.Init(), m.profView.Init())
}

// subViewCapturing reports whether the active tab needs raw key input,
// either for a list search or an open editor form.
func (m Model) subViewCapturing() bool {
	switch m.activeTab {
	case tabActivities:
		return m.activView.Filtering() || m.activView.Editing()
	case tabAccount:
		return m.profView.Editing()
	}
	return false
}

func (m *Model) propagateSize() {
	sz := tea.WindowSizeMsg{Width: m.width, Height: m.height - 3}
	m.authView, _ = m.authView.Update(tea.WindowSizeMsg{Width: m.width, Height: m.height})
	m.activView, _ = m.activView.Update(sz)
	m.profView, _ = m.profView.Update(sz)
}

// ─── async commands ───────────────────────────────────────────────────────────

func (m Model) checkSessionCmd() tea.Cmd {
	return func() tea.Msg {
		current, err := m.session.Current(context.Background())
		return sessionCheckedMsg{token: current.Token, err: err}
	}
}

// ─── port bridges ─────────────────────────────────────────────────────────────
// Each bridge narrows a broad port interface to the minimal interface needed by
// a specific sub-view, keeping view packages free of knowledge about the wider
// port surface.

type sessionPortBridge struct{ p sessionPort }

func (b sessionPortBridge) SignIn(ctx context.Context, input sessiondto.SignInInput) (sessiondto.SessionOutput, error) {
	return b.p.SignIn(ctx, input)
}
func (b sessionPortBridge) SignUp(ctx context.Context, input sessiondto.SignUpInput) (sessiondto.SessionOutput, error) {
	return b.p.SignUp(ctx, input)
}

type activityPortBridge struct{ p activityPort }

func (b activityPortBridge) List(ctx context.Context, filter string) ([]actdto.ActivityOutput, error) {
	return b.p.List(ctx, filter)
}
func (b activityPortBridge) Create(ctx context.Context, input actdto.DraftInput) (actdto.ActivityOutput, error) {
	return b.p.Create(ctx, input)
}
func (b activityPortBridge) Update(ctx context.Context, id string, input actdto.DraftInput) (actdto.ActivityOutput, error) {
	return b.p.Update(ctx, id, input)
}
func (b activityPortBridge) Delete(ctx context.Context, id string) error {
	return b.p.Delete(ctx, id)
}

type profilePortBridge struct {
	profile profilePort
	session sessionPort
}

func (b profilePortBridge) Show(ctx context.Context) (profiledto.UserOutput, error) {
	return b.profile.Show(ctx)
}
func (b profilePortBridge) Update(ctx context.Context, input profiledto.UpdateInput) (profiledto.UserOutput, error) {
	return b.profile.Update(ctx, input)
}
func (b profilePortBridge) SignOut(ctx context.Context) error {
	return b.session.SignOut(ctx)
}

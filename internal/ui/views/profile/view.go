package profile

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	profiledto "gather/internal/modules/profile/dto"
	apperrors "gather/internal/platform/errors"
	"gather/internal/ui/components"
	"gather/internal/ui/theme"
)

// ─── port ────────────────────────────────────────────────────────────────────

type ProfilePort interface {
	Show(ctx context.Context) (profiledto.UserOutput, error)
	Update(ctx context.Context, input profiledto.UpdateInput) (profiledto.UserOutput, error)
	SignOut(ctx context.Context) error
}

// ─── messages ────────────────────────────────────────────────────────────────

type UserLoadedMsg struct {
	User profiledto.UserOutput
	Err  error
}

type UserSavedMsg struct {
	User profiledto.UserOutput
	Err  error
}

// SignedOutMsg tells the app model to fall back to the sign-in screen.
type SignedOutMsg struct {
	Err error
}

// ─── model ───────────────────────────────────────────────────────────────────

type Model struct {
	port    ProfilePort
	user    profiledto.UserOutput
	editor  components.Form
	spinner spinner.Model
	loading bool
	busy    bool
	status  string
	width   int
	height  int
}

func New(port ProfilePort) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Lavender)
	return Model{port: port, spinner: sp, loading: true}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.loadCmd(), m.spinner.Tick)
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.editor.SetWidth(min(msg.Width, 72))

	case UserLoadedMsg:
		m.loading = false
		if msg.Err != nil {
			m.status = msg.Err.Error()
			return m, nil
		}
		m.status = ""
		m.user = msg.User

	case UserSavedMsg:
		m.busy = false
		if msg.Err != nil {
			if fields, ok := apperrors.FieldErrors(msg.Err); ok {
				return m, m.editor.SetErrors(fields)
			}
			m.status = msg.Err.Error()
			return m, nil
		}
		m.editor.Close()
		m.status = "Profile updated"
		m.user = msg.User

	case components.FormSubmitMsg:
		if m.editor.Visible() && !m.busy {
			m.busy = true
			return m, m.saveCmd(msg.Values)
		}

	case components.FormCancelMsg:
		m.status = ""

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)

	case tea.KeyMsg:
		if m.editor.Visible() {
			break
		}
		switch msg.String() {
		case "e":
			m.editor = newEditor(m.user)
			m.editor.SetWidth(min(m.width, 72))
			m.status = ""
			return m, m.editor.Open()
		case "r":
			m.loading = true
			return m, tea.Batch(m.loadCmd(), m.spinner.Tick)
		case "ctrl+o":
			return m, m.signOutCmd()
		}
	}

	if m.editor.Visible() {
		var cmd tea.Cmd
		m.editor, cmd = m.editor.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

func (m Model) View() string {
	if m.editor.Visible() {
		body := m.editor.View()
		if m.busy {
			body += "\n" + theme.Muted.Render(m.spinner.View()+" Saving…")
		} else if m.status != "" {
			body += "\n" + theme.Error.Render(m.status)
		}
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, body)
	}
	if m.loading {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			m.spinner.View()+" Loading profile…")
	}

	var sb strings.Builder
	sb.WriteString(theme.Title.Render(strings.TrimSpace(m.user.FirstName+" "+m.user.LastName)) + "\n\n")
	if m.user.Email != "" {
		sb.WriteString(theme.Muted.Render("email: ") + m.user.Email + "\n")
	}
	if m.user.Bio != "" {
		sb.WriteString(theme.Muted.Render("bio:   ") + m.user.Bio + "\n")
	}
	if m.user.ImageURL != "" {
		sb.WriteString(theme.Muted.Render("photo: ") + m.user.ImageURL + "\n")
	}
	sb.WriteString("\n" + theme.Muted.Render("e: edit  r: reload  ctrl+o: log out"))
	if m.status != "" {
		sb.WriteString("\n" + theme.Good.Render(m.status))
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
		theme.Pane.Render(sb.String()))
}

// Editing reports whether the editor overlay is open.
func (m Model) Editing() bool {
	return m.editor.Visible()
}

// ─── private ─────────────────────────────────────────────────────────────────

func newEditor(u profiledto.UserOutput) components.Form {
	return components.NewForm("Edit Profile", []components.FieldSpec{
		{Key: "first_name", Label: "First name", Value: u.FirstName},
		{Key: "last_name", Label: "Last name", Value: u.LastName},
		{Key: "bio", Label: "Bio", Value: u.Bio, CharLimit: 512},
		{Key: "image", Label: "Image path", Placeholder: "/path/to/photo.jpg"},
		{Key: "old_password", Label: "Old password", Secret: true},
		{Key: "new_password", Label: "New password", Secret: true},
	})
}

func (m Model) loadCmd() tea.Cmd {
	port := m.port
	return func() tea.Msg {
		user, err := port.Show(context.Background())
		return UserLoadedMsg{User: user, Err: err}
	}
}

func (m Model) saveCmd(values map[string]string) tea.Cmd {
	port := m.port
	input := profiledto.UpdateInput{
		FirstName:   values["first_name"],
		LastName:    values["last_name"],
		Bio:         values["bio"],
		ImagePath:   values["image"],
		OldPassword: values["old_password"],
		NewPassword: values["new_password"],
	}
	return func() tea.Msg {
		user, err := port.Update(context.Background(), input)
		return UserSavedMsg{User: user, Err: err}
	}
}

func (m Model) signOutCmd() tea.Cmd {
	port := m.port
	return func() tea.Msg {
		return SignedOutMsg{Err: port.SignOut(context.Background())}
	}
}

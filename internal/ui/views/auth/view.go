package auth

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	sessiondto "gather/internal/modules/session/dto"
	apperrors "gather/internal/platform/errors"
	"gather/internal/ui/components"
	"gather/internal/ui/theme"
)

// ─── port ────────────────────────────────────────────────────────────────────

type SessionPort interface {
	SignIn(ctx context.Context, input sessiondto.SignInInput) (sessiondto.SessionOutput, error)
	SignUp(ctx context.Context, input sessiondto.SignUpInput) (sessiondto.SessionOutput, error)
}

// ─── messages ────────────────────────────────────────────────────────────────

// AuthedMsg reports the outcome of a sign-in or sign-up attempt.
type AuthedMsg struct {
	Token string
	Err   error
}

// ─── model ───────────────────────────────────────────────────────────────────

type mode int

const (
	modeSignIn mode = iota
	modeSignUp
)

type Model struct {
	port       SessionPort
	form       components.Form
	mode       mode
	submitting bool
	status     string
	width      int
	height     int
}

func New(port SessionPort) Model {
	m := Model{port: port}
	m.form = signInForm()
	return m
}

func signInForm() components.Form {
	return components.NewForm("Sign In", []components.FieldSpec{
		{Key: "email", Label: "Email", Placeholder: "you@example.com"},
		{Key: "password", Label: "Password", Secret: true},
	})
}

func signUpForm() components.Form {
	return components.NewForm("Sign Up", []components.FieldSpec{
		{Key: "first_name", Label: "First name"},
		{Key: "last_name", Label: "Last name"},
		{Key: "email", Label: "Email", Placeholder: "you@example.com"},
		{Key: "password", Label: "Password", Secret: true},
	})
}

func (m Model) Init() tea.Cmd {
	return m.form.Open()
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.form.SetWidth(min(msg.Width, 64))
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+r" && !m.submitting {
			if m.mode == modeSignIn {
				m.mode = modeSignUp
				m.form = signUpForm()
			} else {
				m.mode = modeSignIn
				m.form = signInForm()
			}
			m.status = ""
			m.form.SetWidth(min(m.width, 64))
			return m, m.form.Open()
		}

	case components.FormSubmitMsg:
		if m.submitting {
			return m, nil
		}
		m.submitting = true
		m.status = ""
		return m, m.submitCmd(msg.Values)

	case AuthedMsg:
		m.submitting = false
		if msg.Err != nil {
			if fields, ok := apperrors.FieldErrors(msg.Err); ok {
				return m, m.form.SetErrors(fields)
			}
			m.status = msg.Err.Error()
			return m, nil
		}
		return m, nil
	}

	if m.submitting {
		return m, nil
	}
	var cmd tea.Cmd
	m.form, cmd = m.form.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	var body string
	switch {
	case m.submitting:
		body = theme.Muted.Render("Signing in…")
	default:
		hint := "ctrl+r: create an account instead"
		if m.mode == modeSignUp {
			hint = "ctrl+r: back to sign in"
		}
		body = m.form.View() + "\n" + theme.Muted.Render(hint)
		if m.status != "" {
			body += "\n" + theme.Error.Render(m.status)
		}
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, body)
}

// ─── private ─────────────────────────────────────────────────────────────────

func (m Model) submitCmd(values map[string]string) tea.Cmd {
	port := m.port
	signUp := m.mode == modeSignUp
	return func() tea.Msg {
		if signUp {
			out, err := port.SignUp(context.Background(), sessiondto.SignUpInput{
				FirstName: values["first_name"],
				LastName:  values["last_name"],
				Email:     values["email"],
				Password:  values["password"],
			})
			return AuthedMsg{Token: out.Token, Err: err}
		}
		out, err := port.SignIn(context.Background(), sessiondto.SignInInput{
			Email:    values["email"],
			Password: values["password"],
		})
		return AuthedMsg{Token: out.Token, Err: err}
	}
}

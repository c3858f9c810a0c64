package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"gather/internal/ui/theme"
)

// FormSubmitMsg is emitted when the user confirms the form.
type FormSubmitMsg struct{ Values map[string]string }

// FormCancelMsg is emitted when the user presses esc.
type FormCancelMsg struct{}

// FieldSpec describes one input line of a form.
type FieldSpec struct {
	Key         string
	Label       string
	Placeholder string
	Value       string
	Secret      bool
	CharLimit   int
}

type formField struct {
	spec  FieldSpec
	input textinput.Model
	err   string
}

var (
	formStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(theme.Peach).
			Background(theme.Mantle).
			Foreground(theme.Text).
			Padding(0, 1)

	labelStyle      = lipgloss.NewStyle().Foreground(theme.Subtext0).Width(14)
	labelFocusStyle = lipgloss.NewStyle().Foreground(theme.Lavender).Bold(true).Width(14)
	fieldErrStyle   = lipgloss.NewStyle().Foreground(theme.Red)
)

// Form is a modal editor overlay built from bubbles/textinput lines.
// Keys cycle focus; errors set via SetErrors stick to their field until
// the user types in it again.
type Form struct {
	title   string
	fields  []formField
	focus   int
	visible bool
	width   int
}

func NewForm(title string, specs []FieldSpec) Form {
	fields := make([]formField, 0, len(specs))
	for _, spec := range specs {
		ti := textinput.New()
		ti.Placeholder = spec.Placeholder
		ti.SetValue(spec.Value)
		if spec.CharLimit > 0 {
			ti.CharLimit = spec.CharLimit
		} else {
			ti.CharLimit = 256
		}
		if spec.Secret {
			ti.EchoMode = textinput.EchoPassword
			ti.EchoCharacter = '•'
		}
		fields = append(fields, formField{spec: spec, input: ti})
	}
	return Form{title: title, fields: fields}
}

func (f Form) Visible() bool { return f.visible }

// Open shows the form and focuses its first field.
func (f *Form) Open() tea.Cmd {
	f.visible = true
	f.focus = 0
	for i := range f.fields {
		f.fields[i].input.Blur()
		f.fields[i].err = ""
	}
	if len(f.fields) == 0 {
		return nil
	}
	return f.fields[0].input.Focus()
}

func (f *Form) Close() {
	f.visible = false
	for i := range f.fields {
		f.fields[i].input.Blur()
	}
}

func (f *Form) SetWidth(w int) { f.width = w }

// SetErrors attaches messages to their fields and moves focus to the
// first offending one.
func (f *Form) SetErrors(fields map[string]string) tea.Cmd {
	first := -1
	for i := range f.fields {
		f.fields[i].err = fields[f.fields[i].spec.Key]
		if f.fields[i].err != "" && first == -1 {
			first = i
		}
	}
	if first == -1 {
		return nil
	}
	return f.setFocus(first)
}

// Values returns the current field values keyed by spec key.
func (f Form) Values() map[string]string {
	values := make(map[string]string, len(f.fields))
	for _, field := range f.fields {
		values[field.spec.Key] = strings.TrimSpace(field.input.Value())
	}
	return values
}

func (f Form) Update(msg tea.Msg) (Form, tea.Cmd) {
	if !f.visible {
		return f, nil
	}
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			f.Close()
			return f, func() tea.Msg { return FormCancelMsg{} }
		case "enter":
			values := f.Values()
			return f, func() tea.Msg { return FormSubmitMsg{Values: values} }
		case "tab", "down":
			return f, f.setFocus((f.focus + 1) % len(f.fields))
		case "shift+tab", "up":
			return f, f.setFocus((f.focus - 1 + len(f.fields)) % len(f.fields))
		}
	}
	var cmd tea.Cmd
	before := f.fields[f.focus].input.Value()
	f.fields[f.focus].input, cmd = f.fields[f.focus].input.Update(msg)
	if f.fields[f.focus].input.Value() != before {
		f.fields[f.focus].err = ""
	}
	return f, cmd
}

func (f Form) View() string {
	if !f.visible {
		return ""
	}
	var sb strings.Builder
	sb.WriteString(theme.Title.Render(f.title) + "\n")
	for i, field := range f.fields {
		label := labelStyle
		if i == f.focus {
			label = labelFocusStyle
		}
		sb.WriteString(label.Render(field.spec.Label) + " " + field.input.View() + "\n")
		if field.err != "" {
			sb.WriteString(fieldErrStyle.Render(strings.Repeat(" ", 15)+field.err) + "\n")
		}
	}
	sb.WriteString("\n" + theme.Muted.Render("enter: submit  tab: next field  esc: cancel"))

	w := f.width
	if w < 20 {
		w = 64
	}
	return formStyle.Width(w - 2).Render(sb.String())
}

func (f *Form) setFocus(idx int) tea.Cmd {
	f.fields[f.focus].input.Blur()
	f.focus = idx
	return f.fields[f.focus].input.Focus()
}

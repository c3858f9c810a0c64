package activities

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	actdto "gather/internal/modules/activity/dto"
	apperrors "gather/internal/platform/errors"
	"gather/internal/ui/components"
	"gather/internal/ui/theme"
)

// ─── port ────────────────────────────────────────────────────────────────────

type ActivityPort interface {
	List(ctx context.Context, filter string) ([]actdto.ActivityOutput, error)
	Create(ctx context.Context, input actdto.DraftInput) (actdto.ActivityOutput, error)
	Update(ctx context.Context, id string, input actdto.DraftInput) (actdto.ActivityOutput, error)
	Delete(ctx context.Context, id string) error
}

// ─── messages ────────────────────────────────────────────────────────────────

// ActivitiesLoadedMsg carries one listing response. Seq ties it to the
// fetch that requested it so responses from an abandoned filter are
// dropped instead of overwriting the current one.
type ActivitiesLoadedMsg struct {
	Seq        int
	Filter     string
	Activities []actdto.ActivityOutput
	Err        error
}

type ActivitySavedMsg struct {
	Activity actdto.ActivityOutput
	Created  bool
	Err      error
}

type ActivityDeletedMsg struct {
	ID  string
	Err error
}

// ─── list item ───────────────────────────────────────────────────────────────

type activityItem struct {
	activity actdto.ActivityOutput
}

func (i activityItem) Title() string { return i.activity.Title }
func (i activityItem) Description() string {
	return fmt.Sprintf("%s  %s  %s", i.activity.Category, i.activity.Location, i.activity.StartDate)
}
func (i activityItem) FilterValue() string { return i.activity.Title }

// ─── model ───────────────────────────────────────────────────────────────────

type Model struct {
	port    ActivityPort
	list    list.Model
	editor  components.Form
	editID  string
	spinner spinner.Model
	filter  string
	seq     int
	loading bool
	busy    bool
	status  string
	width   int
	height  int
}

func New(port ActivityPort) Model {
	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.Foreground(theme.Lavender).BorderForeground(theme.Lavender)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.Foreground(theme.Sapphire).BorderForeground(theme.Lavender)

	l := list.New(nil, delegate, 0, 0)
	l.Title = "Activities"
	l.Styles.Title = theme.Title
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Lavender)

	return Model{
		port:    port,
		list:    l,
		spinner: sp,
		filter:  "all",
		loading: true,
	}
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
		m.list.SetSize(msg.Width, msg.Height-1)
		m.editor.SetWidth(min(msg.Width, 72))

	case ActivitiesLoadedMsg:
		// A response from a superseded fetch says nothing about the
		// filter currently on screen.
		if msg.Seq != m.seq {
			return m, nil
		}
		m.loading = false
		if msg.Err != nil {
			m.status = msg.Err.Error()
			return m, nil
		}
		m.status = ""
		items := make([]list.Item, len(msg.Activities))
		for i, a := range msg.Activities {
			items[i] = activityItem{activity: a}
		}
		cmds = append(cmds, m.list.SetItems(items))

	case ActivitySavedMsg:
		m.busy = false
		if msg.Err != nil {
			if fields, ok := apperrors.FieldErrors(msg.Err); ok {
				return m, m.editor.SetErrors(fields)
			}
			m.status = msg.Err.Error()
			return m, nil
		}
		m.editor.Close()
		m.status = ""
		if msg.Created {
			cmds = append(cmds, m.prependItem(msg.Activity))
		} else {
			cmds = append(cmds, m.replaceItem(msg.Activity))
		}

	case ActivityDeletedMsg:
		m.busy = false
		if msg.Err != nil {
			m.status = msg.Err.Error()
			return m, nil
		}
		m.status = ""
		cmds = append(cmds, m.removeItem(msg.ID))

	case components.FormSubmitMsg:
		if m.editor.Visible() && !m.busy {
			m.busy = true
			return m, m.saveCmd(m.editID, msg.Values)
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
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch msg.String() {
		case "f":
			if m.filter == "all" {
				m.filter = "mine"
			} else {
				m.filter = "all"
			}
			m.seq++
			m.loading = true
			return m, tea.Batch(m.loadCmd(), m.spinner.Tick)
		case "r":
			m.seq++
			m.loading = true
			return m, tea.Batch(m.loadCmd(), m.spinner.Tick)
		case "n":
			m.editID = ""
			m.editor = newEditor("New Activity", actdto.ActivityOutput{})
			m.editor.SetWidth(min(m.width, 72))
			return m, m.editor.Open()
		case "e":
			if item, ok := m.list.SelectedItem().(activityItem); ok {
				m.editID = item.activity.ID
				m.editor = newEditor("Edit Activity", item.activity)
				m.editor.SetWidth(min(m.width, 72))
				return m, m.editor.Open()
			}
		case "x":
			if item, ok := m.list.SelectedItem().(activityItem); ok && !m.busy {
				m.busy = true
				return m, m.deleteCmd(item.activity.ID)
			}
		}
	}

	if m.editor.Visible() {
		var cmd tea.Cmd
		m.editor, cmd = m.editor.Update(msg)
		cmds = append(cmds, cmd)
		return m, tea.Batch(cmds...)
	}

	if !m.loading {
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
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
			m.spinner.View()+" Loading activities…")
	}
	if len(m.list.Items()) == 0 {
		empty := theme.Muted.Render("No activities for filter \""+m.filter+"\".") + "\n" +
			theme.Muted.Render("n: create one  f: switch filter  r: reload")
		if m.status != "" {
			empty += "\n" + theme.Error.Render(m.status)
		}
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, empty)
	}
	footer := theme.Muted.Render(fmt.Sprintf("filter: %s  n: new  e: edit  x: delete  f: filter  r: reload", m.filter))
	if m.status != "" {
		footer = theme.Error.Render(m.status)
	}
	return m.list.View() + "\n" + footer
}

// Filtering reports whether the list's search filter is active, so the
// app model can keep its global keys out of the way.
func (m Model) Filtering() bool {
	return m.list.FilterState() == list.Filtering
}

// Editing reports whether the editor overlay is open.
func (m Model) Editing() bool {
	return m.editor.Visible()
}

// Filter returns the active listing filter.
func (m Model) Filter() string { return m.filter }

// Activities returns the listing as currently shown.
func (m Model) Activities() []actdto.ActivityOutput {
	items := m.list.Items()
	out := make([]actdto.ActivityOutput, 0, len(items))
	for _, item := range items {
		if ai, ok := item.(activityItem); ok {
			out = append(out, ai.activity)
		}
	}
	return out
}

// ─── private ─────────────────────────────────────────────────────────────────

func newEditor(title string, a actdto.ActivityOutput) components.Form {
	return components.NewForm(title, []components.FieldSpec{
		{Key: "title", Label: "Title", Value: a.Title},
		{Key: "description", Label: "Description", Value: a.Description, CharLimit: 512},
		{Key: "location", Label: "Location", Value: a.Location},
		{Key: "category", Label: "Category", Placeholder: "Outdoors / Indoors / General", Value: a.Category},
		{Key: "start_date", Label: "Start date", Placeholder: "2026-01-02", Value: a.StartDate},
		{Key: "end_date", Label: "End date", Placeholder: "2026-01-02", Value: a.EndDate},
		{Key: "image", Label: "Image path", Placeholder: "/path/to/photo.jpg"},
	})
}

func (m Model) loadCmd() tea.Cmd {
	seq := m.seq
	filter := m.filter
	port := m.port
	return func() tea.Msg {
		activities, err := port.List(context.Background(), filter)
		return ActivitiesLoadedMsg{Seq: seq, Filter: filter, Activities: activities, Err: err}
	}
}

func (m Model) saveCmd(id string, values map[string]string) tea.Cmd {
	port := m.port
	input := actdto.DraftInput{
		Title:       values["title"],
		Description: values["description"],
		Location:    values["location"],
		Category:    values["category"],
		ImagePath:   values["image"],
		StartDate:   values["start_date"],
		EndDate:     values["end_date"],
	}
	return func() tea.Msg {
		if id == "" {
			created, err := port.Create(context.Background(), input)
			return ActivitySavedMsg{Activity: created, Created: true, Err: err}
		}
		updated, err := port.Update(context.Background(), id, input)
		return ActivitySavedMsg{Activity: updated, Err: err}
	}
}

func (m Model) deleteCmd(id string) tea.Cmd {
	port := m.port
	return func() tea.Msg {
		return ActivityDeletedMsg{ID: id, Err: port.Delete(context.Background(), id)}
	}
}

func (m *Model) prependItem(a actdto.ActivityOutput) tea.Cmd {
	items := append([]list.Item{activityItem{activity: a}}, m.list.Items()...)
	return m.list.SetItems(items)
}

func (m *Model) replaceItem(a actdto.ActivityOutput) tea.Cmd {
	items := m.list.Items()
	next := make([]list.Item, len(items))
	copy(next, items)
	for i, item := range next {
		if ai, ok := item.(activityItem); ok && ai.activity.ID == a.ID {
			next[i] = activityItem{activity: a}
		}
	}
	return m.list.SetItems(next)
}

func (m *Model) removeItem(id string) tea.Cmd {
	items := m.list.Items()
	next := make([]list.Item, 0, len(items))
	for _, item := range items {
		if ai, ok := item.(activityItem); ok && ai.activity.ID == id {
			continue
		}
		next = append(next, item)
	}
	return m.list.SetItems(next)
}

// Package mobile is the users screen: a fetchable list of user records with an
// edit modal, rendered in the terminal with bubbletea.
package mobile

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/harrylevesque/userdeck/internal/edit"
	"github.com/harrylevesque/userdeck/internal/models"
	"github.com/harrylevesque/userdeck/internal/roster"
)

type fetchSettledMsg struct{}

type saveSettledMsg struct {
	err error
}

// Model is the root bubbletea model. The roster and workflow it drives are
// shared by every copy of the model.
type Model struct {
	ctx    context.Context
	roster *roster.Roster
	edit   *edit.Workflow

	keys    keyMap
	help    help.Model
	spinner spinner.Model
	form    form
	cursor  int

	// rows is the scrolling pane for the record list once the terminal size
	// is known.
	rows viewport.Model

	width  int
	height int
}

func New(ctx context.Context, r *roster.Roster, w *edit.Workflow) Model {
	return Model{
		ctx:     ctx,
		roster:  r,
		edit:    w,
		keys:    defaultKeys(),
		help:    help.New(),
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(lipgloss.NewStyle().Foreground(colorBlue))),
	}
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.update(msg)
	next.layoutRows()
	return next, cmd
}

func (m Model) update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		return m, nil

	case spinner.TickMsg:
		if !m.busy() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case fetchSettledMsg:
		m.clampCursor()
		return m, nil

	case saveSettledMsg:
		var verr *edit.ValidationError
		if errors.As(msg.err, &verr) {
			m.form.alert = verr.Message
		}
		if m.edit.State() == edit.Closed {
			m.form = form{}
		}
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.ForceQuit) {
			return m, tea.Quit
		}
		if m.edit.State() != edit.Closed {
			return m.updateModal(msg)
		}
		return m.updateList(msg)
	}
	return m, nil
}

func (m Model) busy() bool {
	return m.roster.State() == roster.Fetching || m.edit.State() == edit.Saving
}

func (m Model) updateList(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Fetch):
		if m.roster.State() == roster.Populated {
			return m, nil
		}
		done, started := m.roster.RequestFetch(m.ctx)
		if !started {
			return m, nil
		}
		m.cursor = 0
		return m, tea.Batch(waitFetch(done), m.spinner.Tick)

	case key.Matches(msg, m.keys.Unfetch):
		if m.roster.Clear() {
			m.cursor = 0
		}
		return m, nil

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.roster.Users())-1 {
			m.cursor++
		}
		return m, nil

	case key.Matches(msg, m.keys.Edit):
		users := m.roster.Users()
		if m.cursor < 0 || m.cursor >= len(users) {
			return m, nil
		}
		u := users[m.cursor]
		if !m.edit.Open(u) {
			return m, nil
		}
		m.form = newForm(u)
		return m, textinput.Blink
	}
	return m, nil
}

func (m Model) updateModal(msg tea.KeyMsg) (Model, tea.Cmd) {
	// Controls are disabled while a save is in flight.
	if m.edit.State() == edit.Saving {
		return m, nil
	}
	if m.form.alert != "" {
		m.form.alert = ""
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Cancel):
		return m.cancel()
	case key.Matches(msg, m.keys.Next):
		cmd := m.form.next()
		return m, cmd
	case key.Matches(msg, m.keys.Prev):
		cmd := m.form.prev()
		return m, cmd
	case key.Matches(msg, m.keys.Save):
		return m.submit()
	case key.Matches(msg, m.keys.Confirm):
		switch m.form.focus {
		case fieldSave:
			return m.submit()
		case fieldCancel:
			return m.cancel()
		}
		cmd := m.form.next()
		return m, cmd
	}

	changed, ok, cmd := m.form.update(msg)
	if ok {
		m.syncField(changed)
	}
	return m, cmd
}

func (m Model) syncField(f field) {
	switch f {
	case fieldName:
		m.edit.SetName(m.form.name.Value())
	case fieldAge:
		m.edit.SetAgeText(m.form.age.Value())
	case fieldEmail:
		m.edit.SetEmail(m.form.email.Value())
	}
}

func (m Model) cancel() (Model, tea.Cmd) {
	if m.edit.Cancel() {
		m.form = form{}
	}
	return m, nil
}

func (m Model) submit() (Model, tea.Cmd) {
	wf, ctx := m.edit, m.ctx
	return m, tea.Batch(func() tea.Msg {
		return saveSettledMsg{err: wf.Submit(ctx)}
	}, m.spinner.Tick)
}

func waitFetch(done <-chan struct{}) tea.Cmd {
	return func() tea.Msg {
		<-done
		return fetchSettledMsg{}
	}
}

func (m *Model) clampCursor() {
	n := len(m.roster.Users())
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m Model) View() string {
	if st := m.edit.State(); st != edit.Closed {
		modal := m.form.view(st == edit.Saving)
		if m.width > 0 && m.height > 0 {
			return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, modal)
		}
		return modal
	}
	return m.listView()
}

func (m Model) listView() string {
	// Re-fit on the copy so the pane reflects records that settled since the
	// last Update.
	m.layoutRows()

	top, bottom := m.listChrome()
	sections := append([]string{}, top...)
	if len(m.roster.Users()) > 0 {
		if m.height > 0 {
			sections = append(sections, m.rows.View())
		} else {
			content, _ := rowBlocks(m.roster.Users(), m.cursor)
			sections = append(sections, content)
		}
	}
	sections = append(sections, bottom)
	return strings.Join(sections, "\n")
}

// listChrome renders everything around the rows: the header and buttons above,
// the key help below.
func (m Model) listChrome() (top []string, bottom string) {
	state := m.roster.State()
	users := m.roster.Users()

	if len(users) > 0 {
		top = append(top, headerStyle.Render("Users Data List"))
	}

	if state != roster.Populated {
		label := "Fetch User Data"
		if state == roster.Fetching {
			label = "Fetching..."
		}
		line := fetchButtonStyle.Render(label)
		if state == roster.Fetching {
			line += " " + m.spinner.View()
		}
		top = append(top, line)
	}

	if state != roster.Fetching && len(users) == 0 {
		top = append(top, emptyStyle.Render("No users found. Please fetch user data again."))
	}

	if state == roster.Populated {
		top = append(top, unfetchButtonStyle.Render("Unfetch User Data")+"\n")
	}

	bindings := []key.Binding{m.keys.Fetch, m.keys.Quit}
	if state == roster.Populated {
		bindings = []key.Binding{m.keys.Unfetch, m.keys.Up, m.keys.Down, m.keys.Edit, m.keys.Quit}
	}
	return top, helpStyle.Render(m.help.ShortHelpView(bindings))
}

// layoutRows sizes the rows pane to whatever height the chrome leaves and
// scrolls it so the selected record is fully in view.
func (m *Model) layoutRows() {
	if m.height <= 0 {
		return
	}
	top, bottom := m.listChrome()
	avail := m.height - lipgloss.Height(bottom)
	if len(top) > 0 {
		avail -= lipgloss.Height(strings.Join(top, "\n"))
	}
	if avail < 1 {
		avail = 1
	}

	content, spans := rowBlocks(m.roster.Users(), m.cursor)
	m.rows.Width = m.width
	m.rows.Height = avail
	m.rows.SetContent(content)

	offset := m.rows.YOffset
	if m.cursor >= 0 && m.cursor < len(spans) {
		sel := spans[m.cursor]
		if end := sel.start + sel.height; end > offset+avail {
			offset = end - avail
		}
		if sel.start < offset {
			offset = sel.start
		}
	}
	m.rows.SetYOffset(offset)
}

type rowSpan struct {
	start, height int
}

// rowBlocks renders one block per user and reports the line span of each.
func rowBlocks(users []models.User, cursor int) (string, []rowSpan) {
	blocks := make([]string, 0, len(users))
	spans := make([]rowSpan, 0, len(users))
	line := 0
	for i, u := range users {
		style := rowStyle
		if i == cursor {
			style = selectedRowStyle
		}
		block := style.Render(rowText(u))
		h := lipgloss.Height(block)
		spans = append(spans, rowSpan{start: line, height: h})
		blocks = append(blocks, block)
		line += h
	}
	return strings.Join(blocks, "\n"), spans
}

func rowText(u models.User) string {
	name := u.Name
	if name == "" {
		name = "Name not available"
	}
	age := "Age not available"
	if u.Age != 0 {
		age = strconv.Itoa(u.Age)
	}
	email := u.Email
	if email == "" {
		email = "Email not available"
	}
	return fmt.Sprintf("%s %d\n%s %s\n%s %s\n%s %s",
		labelStyle.Render("ID:"), u.ID,
		labelStyle.Render("Name:"), name,
		labelStyle.Render("Age:"), age,
		labelStyle.Render("Email:"), email,
	)
}

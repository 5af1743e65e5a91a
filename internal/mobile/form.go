package mobile

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/harrylevesque/userdeck/internal/models"
)

type field int

const (
	fieldName field = iota
	fieldAge
	fieldEmail
	fieldCancel
	fieldSave
	fieldCount
)

// form is the edit modal's view state. The values it holds are mirrored into
// the edit workflow's buffer on every change.
type form struct {
	name  textinput.Model
	age   textinput.Model
	email textinput.Model
	focus field
	alert string
}

func newInput(placeholder, value string) textinput.Model {
	in := textinput.New()
	in.Placeholder = placeholder
	in.Prompt = ""
	in.CharLimit = 80
	in.Width = 40
	in.SetValue(value)
	return in
}

func newForm(u models.User) form {
	f := form{
		name:  newInput("Enter Name", u.Name),
		age:   newInput("Enter Age", strconv.Itoa(u.Age)),
		email: newInput("Enter Email", u.Email),
	}
	f.age.CharLimit = 3
	f.name.Focus()
	return f
}

func (f *form) input(n field) *textinput.Model {
	switch n {
	case fieldName:
		return &f.name
	case fieldAge:
		return &f.age
	case fieldEmail:
		return &f.email
	}
	return nil
}

func (f *form) setFocus(n field) tea.Cmd {
	f.name.Blur()
	f.age.Blur()
	f.email.Blur()
	f.focus = (n + fieldCount) % fieldCount
	if in := f.input(f.focus); in != nil {
		return in.Focus()
	}
	return nil
}

func (f *form) next() tea.Cmd { return f.setFocus(f.focus + 1) }
func (f *form) prev() tea.Cmd { return f.setFocus(f.focus - 1) }

// update forwards msg to the focused input. It reports which field changed.
func (f *form) update(msg tea.Msg) (field, bool, tea.Cmd) {
	in := f.input(f.focus)
	if in == nil {
		return f.focus, false, nil
	}
	before := in.Value()
	var cmd tea.Cmd
	*in, cmd = in.Update(msg)
	return f.focus, in.Value() != before, cmd
}

func (f form) view(saving bool) string {
	var b strings.Builder
	b.WriteString(modalTitleStyle.Render("Edit User"))
	b.WriteString("\n")
	for _, row := range []struct {
		label string
		in    textinput.Model
	}{
		{"Name", f.name},
		{"Age", f.age},
		{"Email", f.email},
	} {
		b.WriteString(labelStyle.Render(row.label) + starStyle.Render("*") + labelStyle.Render(" :"))
		b.WriteString("\n")
		b.WriteString(row.in.View())
		b.WriteString("\n\n")
	}

	cancel := cancelButtonStyle.Render("Cancel")
	save := saveButtonStyle.Render("Save")
	if saving {
		save = saveButtonStyle.Render("Saving...")
	}
	switch f.focus {
	case fieldCancel:
		cancel = focusedButtonStyle.Render(cancel)
	case fieldSave:
		save = focusedButtonStyle.Render(save)
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cancel, "   ", save))

	if f.alert != "" {
		b.WriteString("\n")
		b.WriteString(alertStyle.Render(labelStyle.Render("Validation Error") + "\n" + f.alert))
	}
	return modalStyle.Render(b.String())
}

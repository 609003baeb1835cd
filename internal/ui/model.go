package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"todo/internal/output"
	"todo/internal/service"
	"todo/internal/todo"
)

const addTaskHint = "[a] add task"

// Model is the bubbletea model. Every gesture is dispatched to the service
// synchronously inside Update; the view always renders the service's state.
type Model struct {
	ctx      context.Context
	svc      service.Service
	template todo.Template

	state  todo.State
	cursor int
	input  textinput.Model
	err    error
	styles Styles
}

// New creates a Model over svc, whose state must already be recovered.
func New(ctx context.Context, svc service.Service, tpl todo.Template) Model {
	in := textinput.New()
	in.Placeholder = "your name"
	in.CharLimit = 80
	in.Width = 40
	in.Prompt = "> "

	m := Model{
		ctx:      ctx,
		svc:      svc,
		template: tpl,
		state:    svc.State(),
		input:    in,
		styles:   DefaultStyles(),
	}
	m.syncFocus()
	return m
}

// State returns the state the view is rendering.
func (m Model) State() todo.State { return m.state }

// Cursor returns the index of the selected task.
func (m Model) Cursor() int { return m.cursor }

// Err returns the last error shown in the view, if any.
func (m Model) Err() error { return m.err }

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	if m.input.Focused() {
		return textinput.Blink
	}
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if m.naming() {
			var cmd tea.Cmd
			m.input, cmd = m.input.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	switch keyMsg.String() {
	case "ctrl+c", "esc":
		return m, tea.Quit
	case "ctrl+a":
		m.addTask()
		return m, nil
	}

	if m.naming() {
		return m.updateNaming(keyMsg)
	}
	return m.updateList(keyMsg)
}

func (m Model) updateNaming(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "enter" {
		m.apply(m.svc.SetName(m.ctx, m.input.Value()))
		m.input.Reset()
		m.syncFocus()
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "a":
		m.addTask()
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.state.Tasks)-1 {
			m.cursor++
		}
	case "x", "delete":
		if m.cursor < len(m.state.Tasks) {
			m.apply(m.svc.RemoveTask(m.ctx, m.state.Tasks[m.cursor].ID))
		}
	case "R":
		m.apply(m.svc.Reset(m.ctx))
		m.syncFocus()
	}
	return m, nil
}

func (m *Model) addTask() {
	_, err := m.svc.AddTask(m.ctx, m.template)
	m.apply(err)
}

// apply records the outcome of a dispatch and re-reads the state.
func (m *Model) apply(err error) {
	m.err = err
	m.state = m.svc.State()
	if m.cursor >= len(m.state.Tasks) {
		m.cursor = max(len(m.state.Tasks)-1, 0)
	}
}

func (m Model) naming() bool {
	return !m.state.Name.IsSet()
}

func (m *Model) syncFocus() {
	if m.naming() {
		m.input.Focus()
	} else {
		m.input.Blur()
	}
}

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.styles.Help.Render(addTaskHint))
	b.WriteString("\n\n")

	if m.naming() {
		b.WriteString(m.styles.Heading.Render(output.NamePrompt))
		b.WriteString("\n")
		b.WriteString(m.input.View())
		b.WriteString("\n")
	} else {
		b.WriteString(m.styles.Title.Render(output.Greeting(m.state.Name)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.styles.Heading.Render(output.TasksHeading))
	b.WriteString("  ")
	b.WriteString(m.styles.Help.Render(addTaskHint))
	b.WriteString("\n")

	if len(m.state.Tasks) == 0 {
		b.WriteString(m.styles.Help.Render(output.NoTasks))
		b.WriteString("\n")
	}
	for i, task := range m.state.Tasks {
		cursor := "  "
		name := task.Name
		if i == m.cursor && !m.naming() {
			cursor = m.styles.Cursor.Render("> ")
			name = m.styles.Selected.Render(name)
		}
		fmt.Fprintf(&b, "%s%s  %s  %s\n", cursor, name, output.Flags(task), m.styles.TaskID.Render(task.ID))
	}

	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(m.styles.Error.Render("error: " + m.err.Error()))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.styles.Help.Render(m.helpLine()))
	b.WriteString("\n")
	return b.String()
}

func (m Model) helpLine() string {
	if m.naming() {
		return "enter: save name • ctrl+a: add task • esc: quit"
	}
	return "a: add • ↑/↓: move • x: remove • R: reset • q: quit"
}

package cli

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexanderramin/examsprint/internal/cli/formatter"
	"github.com/alexanderramin/examsprint/internal/notes"
)

type editorKeys struct {
	Save key.Binding
	Undo key.Binding
	Redo key.Binding
	Done key.Binding
	Quit key.Binding
}

func (k editorKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Save, k.Undo, k.Redo, k.Done, k.Quit}
}

func (k editorKeys) FullHelp() [][]key.Binding { return [][]key.Binding{k.ShortHelp()} }

func defaultEditorKeys() editorKeys {
	return editorKeys{
		Save: key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "retry save")),
		Undo: key.NewBinding(key.WithKeys("ctrl+z"), key.WithHelp("ctrl+z", "undo")),
		Redo: key.NewBinding(key.WithKeys("ctrl+y"), key.WithHelp("ctrl+y", "redo")),
		Done: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
		Quit: key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

// editorView edits a block of text (topic notes or the scratchpad) with
// undo/redo. Every change that alters the text is handed to save at once.
// The view is dirty only while the last save failed; esc will not close it
// then, ctrl+c will.
type editorView struct {
	title   string
	area    textarea.Model
	history *notes.History
	save    func(string) error

	saved string
	err   error
	keys  editorKeys
	help  help.Model
}

func newEditorView(title, initial string, save func(string) error) *editorView {
	area := textarea.New()
	area.CharLimit = 0
	area.ShowLineNumbers = false
	area.Placeholder = "Markdown supported"
	area.SetValue(initial)
	area.Focus()

	return &editorView{
		title:   title,
		area:    area,
		history: notes.NewHistory(initial),
		save:    save,
		saved:   initial,
		keys:    defaultEditorKeys(),
		help:    help.New(),
	}
}

func (m *editorView) Init() tea.Cmd { return nil }

// Value is the current text.
func (m *editorView) Value() string { return m.area.Value() }

// Dirty reports text that has not been stored.
func (m *editorView) Dirty() bool { return m.area.Value() != m.saved }

func (m *editorView) flush() {
	if !m.Dirty() {
		m.err = nil
		return
	}
	value := m.area.Value()
	if m.err = m.save(value); m.err == nil {
		m.saved = value
	}
}

func (m *editorView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.area.SetWidth(msg.Width)
		m.area.SetHeight(max(3, msg.Height-4))
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Done):
			m.flush()
			if m.err != nil {
				return m, nil
			}
			return m, tea.Quit
		case key.Matches(msg, m.keys.Save):
			m.flush()
			return m, nil
		case key.Matches(msg, m.keys.Undo):
			if v, ok := m.history.Undo(); ok {
				m.area.SetValue(v)
				m.flush()
			}
			return m, nil
		case key.Matches(msg, m.keys.Redo):
			if v, ok := m.history.Redo(); ok {
				m.area.SetValue(v)
				m.flush()
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.area, cmd = m.area.Update(msg)
	m.history.Push(m.area.Value())
	m.flush()
	return m, cmd
}

func (m *editorView) View() string {
	var b strings.Builder
	status := formatter.Dim("saved")
	if m.Dirty() {
		status = formatter.StyleYellow.Render("unsaved")
	}
	b.WriteString(formatter.StyleHeader.Render(m.title) + "  " + status + "\n")
	b.WriteString(m.area.View() + "\n")
	if m.err != nil {
		b.WriteString(formatter.StyleRed.Render("Error: "+m.err.Error()) + "\n")
	}
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

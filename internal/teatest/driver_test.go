package teatest

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

type pingMsg struct{}

// keyLog records every key it sees and answers "!" with a ping Cmd.
type keyLog struct {
	keys  []string
	pings int
	width int
}

func (m *keyLog) Init() tea.Cmd { return func() tea.Msg { return pingMsg{} } }

func (m *keyLog) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
	case pingMsg:
		m.pings++
	case tea.KeyMsg:
		m.keys = append(m.keys, msg.String())
		switch msg.String() {
		case "!":
			return m, func() tea.Msg { return pingMsg{} }
		case "q":
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m *keyLog) View() string { return strings.Join(m.keys, ",") }

func TestDriver_KeysAndCommands(t *testing.T) {
	m := &keyLog{}
	d := New(t, m, WithSize(100, 30))
	d.DrainInit()
	assert.Equal(t, 100, m.width)
	assert.Equal(t, 1, m.pings)

	d.Type("a\n!")
	d.PressSpace()
	d.PressCtrl('z')
	d.PressEsc()

	assert.Equal(t, []string{"a", "enter", "!", " ", "ctrl+z", "esc"}, m.keys)
	assert.Equal(t, 2, m.pings)
	assert.True(t, d.ViewContains("ctrl+z"))
}

func TestDriver_TickAndQuit(t *testing.T) {
	m := &keyLog{}
	d := New(t, m)
	d.Tick(3, func() tea.Msg { return pingMsg{} })
	assert.Equal(t, 3, m.pings)

	d.PressKey('q')
	assert.True(t, d.Quitting)

	d.PressKey('x')
	assert.NotContains(t, m.keys, "x", "messages after quit are dropped")
}

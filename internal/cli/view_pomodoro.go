package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexanderramin/examsprint/internal/cli/formatter"
	"github.com/alexanderramin/examsprint/internal/pomodoro"
)

// pomodoroTickMsg is one second of a running timer. gen ties it to the run
// that scheduled it; ticks from a paused or reset run are dropped.
type pomodoroTickMsg struct{ gen int }

// secondTick schedules the next pomodoroTickMsg one second out.
func secondTick(gen int) tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg { return pomodoroTickMsg{gen: gen} })
}

type pomodoroKeys struct {
	Toggle key.Binding
	Reset  key.Binding
	Focus  key.Binding
	Short  key.Binding
	Long   key.Binding
	Quit   key.Binding
}

func (k pomodoroKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Reset, k.Focus, k.Short, k.Long, k.Quit}
}

func (k pomodoroKeys) FullHelp() [][]key.Binding { return [][]key.Binding{k.ShortHelp()} }

func defaultPomodoroKeys() pomodoroKeys {
	return pomodoroKeys{
		Toggle: key.NewBinding(key.WithKeys(" ", "enter"), key.WithHelp("space", "start/pause")),
		Reset:  key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset")),
		Focus:  key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "focus")),
		Short:  key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "short break")),
		Long:   key.NewBinding(key.WithKeys("l"), key.WithHelp("l", "long break")),
		Quit:   key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// pomodoroView is the full-screen focus timer. Every completed session is
// handed to record as soon as it finishes.
type pomodoroView struct {
	timer  *pomodoro.Timer
	tick   func(gen int) tea.Cmd
	record func(pomodoro.Completion) error
	start  bool

	gen       int
	completed []pomodoro.Completion
	err       error

	keys  pomodoroKeys
	help  help.Model
	bar   progress.Model
	width int
}

func newPomodoroView(timer *pomodoro.Timer, record func(pomodoro.Completion) error, start bool) *pomodoroView {
	return &pomodoroView{
		timer:  timer,
		tick:   secondTick,
		record: record,
		start:  start,
		keys:   defaultPomodoroKeys(),
		help:   help.New(),
		bar:    progress.New(progress.WithSolidFill(string(formatter.ColorHeader)), progress.WithoutPercentage()),
	}
}

func (m *pomodoroView) Init() tea.Cmd {
	if m.start {
		return m.toggle()
	}
	return nil
}

// toggle starts or pauses the timer. Starting begins a new tick generation.
func (m *pomodoroView) toggle() tea.Cmd {
	m.timer.Toggle()
	m.gen++
	if !m.timer.Running() {
		return nil
	}
	return m.tick(m.gen)
}

func (m *pomodoroView) switchMode(mode pomodoro.Mode) {
	m.timer.SetMode(mode)
	m.gen++
}

func (m *pomodoroView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		m.bar.Width = max(10, min(60, msg.Width-8))
		return m, nil

	case pomodoroTickMsg:
		if msg.gen != m.gen || !m.timer.Running() {
			return m, nil
		}
		c, done := m.timer.Tick()
		if !done {
			return m, m.tick(m.gen)
		}
		m.gen++
		m.completed = append(m.completed, c)
		if m.record != nil {
			m.err = m.record(c)
		}
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.gen++
			return m, tea.Quit
		case key.Matches(msg, m.keys.Toggle):
			return m, m.toggle()
		case key.Matches(msg, m.keys.Reset):
			m.timer.Reset()
			m.gen++
		case key.Matches(msg, m.keys.Focus):
			m.switchMode(pomodoro.ModeFocus)
		case key.Matches(msg, m.keys.Short):
			m.switchMode(pomodoro.ModeShortBreak)
		case key.Matches(msg, m.keys.Long):
			m.switchMode(pomodoro.ModeLongBreak)
		}
	}
	return m, nil
}

func (m *pomodoroView) View() string {
	var b strings.Builder

	modes := []pomodoro.Mode{pomodoro.ModeFocus, pomodoro.ModeShortBreak, pomodoro.ModeLongBreak}
	if m.timer.Mode() == pomodoro.ModeCustom {
		modes = append(modes, pomodoro.ModeCustom)
	}
	tabs := make([]string, len(modes))
	for i, mode := range modes {
		if mode == m.timer.Mode() {
			tabs[i] = formatter.StyleHeader.Render("[" + mode.Label() + "]")
		} else {
			tabs[i] = formatter.Dim(" " + mode.Label() + " ")
		}
	}
	b.WriteString(strings.Join(tabs, " ") + "\n\n")

	clock := lipgloss.NewStyle().Bold(true).Foreground(formatter.ColorFg).Render(m.timer.Clock())
	state := formatter.Dim("paused")
	switch {
	case m.timer.Finished():
		state = formatter.StyleGreen.Render("done")
	case m.timer.Running():
		state = formatter.StyleGreen.Render("running")
	}
	b.WriteString(clock + "  " + state + "\n")
	b.WriteString(m.bar.ViewAs(m.timer.Elapsed()) + "\n\n")

	if n := len(m.completed); n > 0 {
		b.WriteString(formatter.Dim(fmt.Sprintf("%d session(s) recorded", n)) + "\n")
	}
	if m.err != nil {
		b.WriteString(formatter.StyleRed.Render("Error: "+m.err.Error()) + "\n")
	}
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

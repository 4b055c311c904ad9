// Package pomodoro implements the focus timer. Tick is driven externally,
// once per second, so the timer itself never starts goroutines.
package pomodoro

import (
	"fmt"
	"time"

	"github.com/alexanderramin/examsprint/internal/domain"
)

type Mode string

const (
	ModeFocus      Mode = "focus"
	ModeShortBreak Mode = "shortBreak"
	ModeLongBreak  Mode = "longBreak"
	ModeCustom     Mode = "custom"
)

// Presets are the preset lengths in minutes.
type Presets struct {
	FocusMin      int
	ShortBreakMin int
	LongBreakMin  int
}

// DefaultPresets is 25/5/15.
var DefaultPresets = Presets{FocusMin: 25, ShortBreakMin: 5, LongBreakMin: 15}

// Completion is emitted once when a running timer reaches zero.
type Completion struct {
	Mode    Mode
	Minutes int
}

// Kind maps the mode onto the stats bucket: only focus sessions count as
// focus, every other mode (custom included) is break time.
func (c Completion) Kind() domain.SessionKind {
	if c.Mode == ModeFocus {
		return domain.SessionFocus
	}
	return domain.SessionBreak
}

type Timer struct {
	presets   Presets
	mode      Mode
	duration  time.Duration
	remaining time.Duration
	running   bool
}

// New returns a stopped focus timer.
func New(presets Presets) *Timer {
	t := &Timer{presets: presets}
	t.SetMode(ModeFocus)
	return t
}

// SetMode switches to a preset mode, stopping and refilling the timer.
// ModeCustom keeps the current length.
func (t *Timer) SetMode(mode Mode) {
	minutes := int(t.duration / time.Minute)
	switch mode {
	case ModeFocus:
		minutes = t.presets.FocusMin
	case ModeShortBreak:
		minutes = t.presets.ShortBreakMin
	case ModeLongBreak:
		minutes = t.presets.LongBreakMin
	}
	t.set(mode, minutes)
}

// SetCustom sets a custom length; minutes must be positive.
func (t *Timer) SetCustom(minutes int) error {
	if minutes <= 0 {
		return fmt.Errorf("custom length must be a positive number of minutes, got %d", minutes)
	}
	t.set(ModeCustom, minutes)
	return nil
}

func (t *Timer) set(mode Mode, minutes int) {
	t.mode = mode
	t.duration = time.Duration(minutes) * time.Minute
	t.remaining = t.duration
	t.running = false
}

// Toggle starts or pauses. A finished timer does not restart until Reset.
func (t *Timer) Toggle() {
	if t.remaining <= 0 {
		return
	}
	t.running = !t.running
}

// Reset refills the timer to its length and stops it.
func (t *Timer) Reset() {
	t.remaining = t.duration
	t.running = false
}

// Tick advances a running timer by one second. The tick that reaches zero
// stops the timer and returns the completion; every other call returns false.
func (t *Timer) Tick() (Completion, bool) {
	if !t.running || t.remaining <= 0 {
		return Completion{}, false
	}
	t.remaining -= time.Second
	if t.remaining > 0 {
		return Completion{}, false
	}
	t.remaining = 0
	t.running = false
	return Completion{Mode: t.mode, Minutes: int(t.duration / time.Minute)}, true
}

func (t *Timer) Mode() Mode               { return t.mode }
func (t *Timer) Running() bool            { return t.running }
func (t *Timer) Remaining() time.Duration { return t.remaining }
func (t *Timer) Duration() time.Duration  { return t.duration }
func (t *Timer) Finished() bool           { return t.remaining <= 0 }

// Elapsed is the completed fraction in [0, 1].
func (t *Timer) Elapsed() float64 {
	if t.duration <= 0 {
		return 0
	}
	return 1 - float64(t.remaining)/float64(t.duration)
}

// Clock formats the remaining time as MM:SS.
func (t *Timer) Clock() string {
	secs := int(t.remaining / time.Second)
	return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
}

// Label is the mode name shown to the user.
func (m Mode) Label() string {
	switch m {
	case ModeShortBreak:
		return "Short Break"
	case ModeLongBreak:
		return "Long Break"
	case ModeCustom:
		return "Custom"
	default:
		return "Focus"
	}
}

// ParseMode accepts the mode names and the CLI spellings short/long.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "", "focus":
		return ModeFocus, nil
	case "shortBreak", "short", "short-break":
		return ModeShortBreak, nil
	case "longBreak", "long", "long-break":
		return ModeLongBreak, nil
	case "custom":
		return ModeCustom, nil
	}
	return "", fmt.Errorf("invalid mode %q (valid: focus, short, long, custom)", s)
}

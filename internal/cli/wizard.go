package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/pflag"

	"github.com/alexanderramin/examsprint/internal/cli/formatter"
	"github.com/alexanderramin/examsprint/internal/domain"
)

// examsprintHuhTheme returns a huh theme matching the Gruvbox formatter palette.
func examsprintHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// wizardConfirm creates a huh form for a yes/no confirmation.
func wizardConfirm(title string, result *bool) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Affirmative("Yes").
				Negative("No").
				Value(result),
		),
	).WithTheme(examsprintHuhTheme()).WithShowHelp(false)
}

func huhConfirm(title string) (bool, error) {
	var ok bool
	if err := wizardConfirm(title, &ok).Run(); err != nil {
		return false, err
	}
	return ok, nil
}

// wizardNewGoal collects a goal title and type.
func wizardNewGoal(title *string, typ *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Goal title").
				Placeholder("Semester 3 finals").
				Value(title).
				Validate(validateRequired),
			huh.NewSelect[string]().
				Title("Type").
				Options(
					huh.NewOption("Exam sprint", string(domain.GoalExamSprint)),
					huh.NewOption("DSA roadmap (coming soon)", string(domain.GoalDSA)),
				).
				Value(typ),
		),
	).WithTheme(examsprintHuhTheme()).WithShowHelp(false)
}

// wizardText collects a multi-line text such as pasted topic lists.
func wizardText(title string, value *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewText().
				Title(title).
				Description("One entry per line; leading numbers like \"1.\" are dropped.").
				Value(value),
		),
	).WithTheme(examsprintHuhTheme()).WithShowHelp(false)
}

func validateRequired(s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("required")
	}
	return nil
}

// acknowledge collects the confirmation level for a destructive action.
// Each --yes counts as one level; missing levels are asked interactively,
// one prompt per level. proceed is false when the user declines.
func acknowledge(app *App, yes int, prompts ...string) (c domain.Confirmation, proceed bool, err error) {
	level := min(yes, len(prompts))
	if !app.interactive() {
		return domain.Confirmation(level), true, nil
	}
	confirm := app.Confirm
	if confirm == nil {
		confirm = huhConfirm
	}
	for ; level < len(prompts); level++ {
		ok, err := confirm(prompts[level])
		if err != nil {
			return domain.Unconfirmed, false, err
		}
		if !ok {
			return domain.Confirmation(level), false, nil
		}
	}
	return domain.Confirmation(level), true, nil
}

// confirmationHint tells a non-interactive caller how to acknowledge.
func confirmationHint(err error) error {
	if errors.Is(err, domain.ErrConfirmationRequired) {
		return fmt.Errorf("%w: pass --yes (twice for reset)", err)
	}
	return err
}

// dateValue is a pflag.Value holding a YYYY-MM-DD date. "none" or an empty
// string sets the zero Date, which clears dates.
type dateValue struct {
	date *domain.Date
}

var _ pflag.Value = dateValue{}

func newDateValue(p *domain.Date) dateValue { return dateValue{date: p} }

func (v dateValue) String() string {
	if v.date == nil || v.date.IsZero() {
		return ""
	}
	return v.date.String()
}

func (v dateValue) Set(s string) error {
	d, err := parseDateArg(s)
	if err != nil {
		return err
	}
	*v.date = d
	return nil
}

func (dateValue) Type() string { return "date" }

func parseDateArg(s string) (domain.Date, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "none") {
		return domain.Date{}, nil
	}
	d, err := domain.ParseDate(s)
	if err != nil {
		return domain.Date{}, fmt.Errorf("invalid date %q: use YYYY-MM-DD", s)
	}
	return d, nil
}

package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexanderramin/examsprint/internal/domain"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		titleRendered := StyleHeader.Render(strings.ToUpper(title))
		inner := titleRendered + "\n\n" + content
		return boxStyle.Render(inner)
	}

	return boxStyle.Render(content)
}

// DaysLeft describes a remaining day count, colored by how close it is.
func DaysLeft(days int) string {
	switch {
	case days <= 0:
		return StyleRed.Render("due today")
	case days == 1:
		return StyleRed.Render("1 day left")
	case days <= 7:
		return StyleYellow.Render(fmt.Sprintf("%d days left", days))
	default:
		return StyleFg.Render(fmt.Sprintf("%d days left", days))
	}
}

// DateOrNone renders a date, or a dim placeholder for the zero Date.
func DateOrNone(d domain.Date) string {
	if d.IsZero() {
		return StyleDim.Render("--")
	}
	return d.Time().Format("Jan 2, 2006")
}

// Velocity renders topics-per-day to one decimal.
func Velocity(v float64) string {
	return fmt.Sprintf("%.1f/day", v)
}

// Checkbox renders a topic completion box.
func Checkbox(done bool) string {
	if done {
		return StyleGreen.Render("[x]")
	}
	return StyleDim.Render("[ ]")
}

// FormatMinutes converts raw minutes into human-friendly format.
func FormatMinutes(min int) string {
	if min <= 0 {
		return "0m"
	}
	h := min / 60
	m := min % 60
	if h > 0 && m > 0 {
		return fmt.Sprintf("%dh %dm", h, m)
	}
	if h > 0 {
		return fmt.Sprintf("%dh", h)
	}
	return fmt.Sprintf("%dm", m)
}

package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/examsprint/internal/domain"
)

// FormatStats renders pomodoro totals.
func FormatStats(s domain.Stats) string {
	lines := []string{
		fmt.Sprintf("%s  %s", Bold("Focus   "), StyleGreen.Render(FormatMinutes(s.FocusMinutes))),
		fmt.Sprintf("%s  %s", Bold("Breaks  "), StyleBlue.Render(FormatMinutes(s.BreakMinutes))),
		fmt.Sprintf("%s  %d", Bold("Sessions"), s.Sessions),
	}
	return RenderBox("Study Stats", strings.Join(lines, "\n"))
}

// FormatGoals renders the goal library, marking the active goal.
func FormatGoals(goals []domain.Goal, activeID string) string {
	rows := make([][]string, 0, len(goals))
	for _, g := range goals {
		marker := " "
		if g.ID == activeID {
			marker = StyleGreen.Render("●")
		}
		kind := string(g.Type)
		if !g.HasTracker() {
			kind += Dim(" (coming soon)")
		}
		rows = append(rows, []string{marker, g.ID, g.Title, kind, g.CreatedAt.Local().Format("Jan 2, 2006")})
	}
	return RenderTable(Cols("", "ID", "TITLE", "TYPE", "CREATED"), rows)
}

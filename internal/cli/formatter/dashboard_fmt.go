package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/examsprint/internal/scheduler"
)

// FormatAgenda renders the dashboard: overall progress, the daily load and
// what to study today, then every subject by deadline.
func FormatAgenda(a scheduler.Agenda, quote string) string {
	var b strings.Builder

	if quote != "" {
		b.WriteString(StyleDim.Italic(true).Render(quote) + "\n\n")
	}

	summary := []string{
		fmt.Sprintf("%s  %s", Bold("Progress"), RenderProgress(a.OverallProgressPct, 24)),
		fmt.Sprintf("%s  %d/%d topics", Bold("Done    "), a.CompletedTopics, a.TotalTopics),
		fmt.Sprintf("%s  %s", Bold("Daily   "), StyleHeader.Render(fmt.Sprintf("%.1f topics/day", a.TotalDailyTopics))),
	}
	if a.GlobalDaysLeft > 0 {
		summary = append(summary, fmt.Sprintf("%s  %s", Bold("Target  "), DaysLeft(a.GlobalDaysLeft)))
	}
	b.WriteString(RenderBox("ExamSprint", strings.Join(summary, "\n")))
	b.WriteString("\n\n")

	b.WriteString(Header("Today's Agenda") + "\n")
	if len(a.Attention) == 0 {
		b.WriteString(StyleGreen.Render("All caught up. Study ahead!") + "\n")
	}
	for _, item := range a.Attention {
		b.WriteString(fmt.Sprintf("%s  %s\n", Bold(item.SubjectName), Dim(Velocity(item.Velocity))))
		for _, t := range item.Topics {
			b.WriteString(fmt.Sprintf("  %s %s\n", Checkbox(t.Completed), t.Title))
		}
	}

	b.WriteString("\n" + Header("Subjects") + "\n")
	b.WriteString(FormatSubjectPaces(a.Subjects))
	return b.String()
}

// FormatSubjectPaces renders one row per subject. Rows are numbered by plan
// position, which is how CLI subject references are counted.
func FormatSubjectPaces(paces []scheduler.SubjectPace) string {
	if len(paces) == 0 {
		return Dim("No subjects yet.") + "\n"
	}
	rows := make([][]string, 0, len(paces))
	for _, p := range paces {
		deadline := Dim("no deadline")
		if !p.EffectiveDate.IsZero() {
			deadline = DaysLeft(p.DaysLeft)
		}
		rows = append(rows, []string{
			fmt.Sprintf("%d", p.Index+1),
			SubjectName(p.Subject),
			RenderProgress(p.ProgressPct, 12),
			Velocity(p.Velocity),
			UrgencyBadge(p.Urgency.Level, p.Urgency.Severity),
			deadline,
		})
	}
	return RenderTable([]Column{
		{Title: "#", Right: true},
		{Title: "SUBJECT"},
		{Title: "PROGRESS"},
		{Title: "PACE", Right: true},
		{Title: "URGENCY"},
		{Title: "DEADLINE"},
	}, rows)
}

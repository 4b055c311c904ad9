package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/examsprint/internal/domain"
	"github.com/alexanderramin/examsprint/internal/scheduler"
)

// FormatSubjectDetail renders the subject page: paces against each deadline
// and the numbered topic list.
func FormatSubjectDetail(d scheduler.SubjectDetail) string {
	var b strings.Builder
	s := d.Subject

	b.WriteString(SubjectName(s) + "  " + UrgencyBadge(d.Urgency.Level, d.Urgency.Severity) + "\n")
	b.WriteString(RenderProgress(d.ProgressPct, 30) + "  " +
		Dim(fmt.Sprintf("%d done, %d left", d.CompletedTopics, d.RemainingTopics)) + "\n\n")

	rows := [][]string{
		{"Exam", DateOrNone(s.ExamDate), paceDays(s.ExamDate.IsZero(), d.ExamDaysLeft), Velocity(d.ExamVelocity)},
		{"Target", "", paceDays(false, d.GlobalDaysLeft), Velocity(d.GlobalVelocity)},
		{Bold("Smart"), "", "", StyleHeader.Render(Velocity(d.SmartVelocity))},
	}
	b.WriteString(RenderTable([]Column{
		{Title: "PACE"},
		{Title: "DATE"},
		{Title: "DAYS", Right: true},
		{Title: "NEEDED", Right: true},
	}, rows))

	b.WriteString("\n" + Header("Topics") + "\n")
	b.WriteString(FormatTopics(s.Topics))
	return b.String()
}

func paceDays(none bool, days int) string {
	if none {
		return Dim("--")
	}
	return fmt.Sprintf("%d", days)
}

// FormatTopics renders a numbered checklist. Topics with notes are marked.
func FormatTopics(topics []domain.Topic) string {
	if len(topics) == 0 {
		return Dim("No topics.") + "\n"
	}
	var b strings.Builder
	width := len(fmt.Sprintf("%d", len(topics)))
	for i, t := range topics {
		title := t.Title
		if t.Completed {
			title = Dim(title)
		}
		line := fmt.Sprintf("%*d. %s %s", width, i+1, Checkbox(t.Completed), title)
		if strings.TrimSpace(t.Notes) != "" {
			line += " " + StyleBlue.Render("✎")
		}
		b.WriteString(line + "\n")
	}
	return b.String()
}

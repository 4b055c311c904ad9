package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/examsprint/internal/domain"
)

var stepTitles = map[int]string{
	domain.StepWelcome:  "Welcome",
	domain.StepSubjects: "Subjects",
	domain.StepTopics:   "Topic counts",
}

var stepHints = map[int]string{
	domain.StepWelcome:  "Run 'examsprint setup start' to begin, or 'examsprint import FILE' to restore a backup.",
	domain.StepSubjects: "Name your subjects with 'setup add', 'setup bulk' or 'setup set', then 'setup next'.",
	domain.StepTopics:   "Adjust topic counts with 'setup set N --topics K', then 'setup finish'.",
}

// FormatDraft renders the setup in progress.
func FormatDraft(d domain.OnboardingDraft) string {
	var b strings.Builder
	b.WriteString(StyleHeader.Render(fmt.Sprintf("SETUP · STEP %d/3 · %s", d.Step+1, strings.ToUpper(stepTitles[d.Step]))))
	b.WriteString("\n\n")

	rows := make([][]string, 0, len(d.Subjects))
	for i, s := range d.Subjects {
		name := s.Name
		if strings.TrimSpace(name) == "" {
			name = StyleRed.Render("(unnamed)")
		}
		topics := fmt.Sprintf("%d", s.TopicCount)
		if len(s.Topics) > 0 {
			topics += Dim(fmt.Sprintf(" (has %d)", len(s.Topics)))
		}
		rows = append(rows, []string{
			fmt.Sprintf("%d", i+1),
			IconGlyph(s.IconType) + " " + name,
			DateOrNone(s.ExamDate),
			topics,
		})
	}
	b.WriteString(RenderTable([]Column{
		{Title: "#", Right: true},
		{Title: "SUBJECT"},
		{Title: "EXAM"},
		{Title: "TOPICS"},
	}, rows))
	b.WriteString("\n" + Dim(stepHints[d.Step]) + "\n")
	return b.String()
}

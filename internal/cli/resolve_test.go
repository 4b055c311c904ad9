package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/examsprint/internal/domain"
)

func pastPapers() domain.Subject {
	return domain.Subject{ID: "s1", Name: "Maths", Topics: []domain.Topic{
		{ID: "a1b2", Title: "Limits"},
		{ID: "a1c3", Title: "2024"},
		{ID: "1700000000001", Title: "Series"},
		{ID: "x9", Title: "Revision"},
		{ID: "x8", Title: "revision"},
	}}
}

func TestResolveTopic(t *testing.T) {
	s := pastPapers()
	tests := []struct {
		ref  string
		want string
	}{
		{"1", "a1b2"},
		{"2", "a1c3"},
		{"2024", "a1c3"},
		{"1700000000001", "1700000000001"},
		{"a1c", "a1c3"},
		{"LIMITS", "a1b2"},
		{" series ", "1700000000001"},
	}
	for _, tt := range tests {
		t.Run(tt.ref, func(t *testing.T) {
			tp, err := resolveTopic(s, tt.ref)
			require.NoError(t, err)
			assert.Equal(t, tt.want, tp.ID)
		})
	}
}

func TestResolveTopic_Errors(t *testing.T) {
	s := pastPapers()

	_, err := resolveTopic(s, "9")
	assert.EqualError(t, err, "Maths: topic #9 not found (have 5)")

	_, err = resolveTopic(s, "a1")
	assert.ErrorContains(t, err, "ambiguous (2 matches)")

	_, err = resolveTopic(s, "revision")
	assert.ErrorContains(t, err, "ambiguous (2 matches)")

	_, err = resolveTopic(s, "Graphs")
	assert.ErrorContains(t, err, `topic not found: "Graphs"`)

	_, err = resolveTopic(s, "  ")
	assert.ErrorContains(t, err, "topic reference is required")
}

func TestTopicToggleCmd_ByNumericTitle(t *testing.T) {
	app := testApp(t)
	seedOnboarded(t, app)
	mustExecute(t, app, "topic", "title", "physics", "3", "2024")

	out := mustExecute(t, app, "topic", "toggle", "physics", "2024")
	assert.Contains(t, out, "[x] 2024")
	assert.True(t, currentPlan(t, app).Subjects[0].Topics[2].Completed)
}

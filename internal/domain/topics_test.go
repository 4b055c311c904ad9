package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBulkParseLines_StripsOrdinals(t *testing.T) {
	titles := BulkParseLines("1. Intro\n2) Advanced\nNo Number")
	assert.Equal(t, []string{"Intro", "Advanced", "No Number"}, titles)
}

func TestBulkParseLines_DropsBlankLinesAndTrims(t *testing.T) {
	titles := BulkParseLines("\n   \n  Graphs  \n\r\n\t3.  Trees\t\n")
	assert.Equal(t, []string{"Graphs", "Trees"}, titles)
}

func TestBulkParseLines_KeepsInnerNumbers(t *testing.T) {
	titles := BulkParseLines("Unit 01: Intro\n10) Chapter 10.2")
	assert.Equal(t, []string{"Unit 01: Intro", "Chapter 10.2"}, titles)
}

func TestBulkParseLines_NoDeduplication(t *testing.T) {
	titles := BulkParseLines("Recap\nRecap")
	assert.Equal(t, []string{"Recap", "Recap"}, titles)
}

func TestBulkParseLines_Empty(t *testing.T) {
	assert.Empty(t, BulkParseLines(""))
	assert.Empty(t, BulkParseLines(" \n \n"))
}

func TestTopicsFromTitles_FreshTopics(t *testing.T) {
	ids := &CounterIDs{Prefix: "t"}
	topics := TopicsFromTitles(BulkParseLines("1. Intro\n2) Advanced\nNo Number"), ids)
	require.Len(t, topics, 3)
	for i, want := range []string{"Intro", "Advanced", "No Number"} {
		assert.Equal(t, want, topics[i].Title)
		assert.False(t, topics[i].Completed)
		assert.Empty(t, topics[i].Notes)
	}
	assert.Equal(t, "t-1", topics[0].ID)
	assert.Equal(t, "t-3", topics[2].ID)
}

func fiveTopics() []Topic {
	return []Topic{
		{ID: "a", Title: "Limits", Completed: true, Notes: "epsilon-delta"},
		{ID: "b", Title: "Derivatives", Completed: true},
		{ID: "c", Title: "Integrals", Notes: "by parts"},
		{ID: "d", Title: "Series"},
		{ID: "e", Title: "ODEs"},
	}
}

func TestReconcileTopicCount_Grow(t *testing.T) {
	existing := fiveTopics()
	out := ReconcileTopicCount(existing, 8, &CounterIDs{Prefix: "new"})

	require.Len(t, out, 8)
	assert.Equal(t, existing, out[:5])
	assert.Equal(t, "Topic 6", out[5].Title)
	assert.Equal(t, "Topic 7", out[6].Title)
	assert.Equal(t, "Topic 8", out[7].Title)
	for _, tp := range out[5:] {
		assert.False(t, tp.Completed)
		assert.Empty(t, tp.Notes)
	}
}

func TestReconcileTopicCount_Shrink(t *testing.T) {
	existing := fiveTopics()
	out := ReconcileTopicCount(existing, 2, &CounterIDs{Prefix: "new"})
	assert.Equal(t, existing[:2], out)
}

func TestReconcileTopicCount_Equal(t *testing.T) {
	existing := fiveTopics()
	out := ReconcileTopicCount(existing, 5, &CounterIDs{Prefix: "new"})
	assert.Equal(t, existing, out)
}

func TestReconcileTopicCount_NegativeTargetEmpties(t *testing.T) {
	out := ReconcileTopicCount(fiveTopics(), -3, &CounterIDs{Prefix: "new"})
	assert.Empty(t, out)
}

func TestReconcileTopicCount_ShrinkDoesNotAliasInput(t *testing.T) {
	existing := fiveTopics()
	out := ReconcileTopicCount(existing, 2, &CounterIDs{Prefix: "new"})
	out[0].Title = "changed"
	assert.Equal(t, "Limits", existing[0].Title)
}

func TestGenerateTopics_UniqueIDs(t *testing.T) {
	topics := GenerateTopics(50, UUIDGenerator{})
	seen := make(map[string]bool)
	for i, tp := range topics {
		assert.Equal(t, GeneratedTopicTitle(i+1), tp.Title)
		assert.False(t, seen[tp.ID], "duplicate id %s", tp.ID)
		seen[tp.ID] = true
	}
}

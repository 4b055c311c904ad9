package domain

import (
	"fmt"
	"regexp"
	"strings"
)

// ordinalPrefix matches list numbering such as "1. " or "12) ".
var ordinalPrefix = regexp.MustCompile(`^\s*\d+[.)]\s*`)

// GeneratedTopicTitle is the default title of the n-th topic (1-based).
func GeneratedTopicTitle(n int) string {
	return fmt.Sprintf("Topic %d", n)
}

// NewTopic returns a fresh, incomplete topic without notes.
func NewTopic(id, title string) Topic {
	return Topic{ID: id, Title: title}
}

// BulkParseLines turns pasted text into titles: one per non-blank line,
// trimmed, with a leading ordinal ("1." or "2)") removed. Titles are not
// deduplicated.
func BulkParseLines(text string) []string {
	var titles []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		titles = append(titles, strings.TrimSpace(ordinalPrefix.ReplaceAllString(line, "")))
	}
	return titles
}

// TopicsFromTitles builds fresh topics for the given titles.
func TopicsFromTitles(titles []string, ids IDGenerator) []Topic {
	topics := make([]Topic, len(titles))
	for i, title := range titles {
		topics[i] = NewTopic(ids.NewID(), title)
	}
	return topics
}

// GenerateTopics returns count fresh topics titled "Topic 1".."Topic count".
func GenerateTopics(count int, ids IDGenerator) []Topic {
	return ReconcileTopicCount(nil, count, ids)
}

// ReconcileTopicCount resizes existing to target. Growing appends
// "Topic k" entries at the tail; shrinking drops topics from the tail. The
// kept prefix is returned unchanged, preserving early-syllabus progress.
func ReconcileTopicCount(existing []Topic, target int, ids IDGenerator) []Topic {
	if target < 0 {
		target = 0
	}
	current := len(existing)
	switch {
	case target == current:
		return existing
	case target < current:
		out := make([]Topic, target)
		copy(out, existing[:target])
		return out
	}
	out := make([]Topic, current, target)
	copy(out, existing)
	for k := current + 1; k <= target; k++ {
		out = append(out, NewTopic(ids.NewID(), GeneratedTopicTitle(k)))
	}
	return out
}

package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/examsprint/internal/domain"
)

// resolveRef finds an entry by reference, tried in this order:
//   - a 1-based position within range
//   - an exact ID
//   - a case-insensitive name
//   - a unique ID prefix
//
// A number past the end still matches IDs and names, so a topic titled
// "2024" or an imported numeric ID stays reachable.
func resolveRef(kind, ref string, n int, id func(i int) string, name func(i int) string) (int, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return -1, fmt.Errorf("%s reference is required", kind)
	}
	pos, numErr := strconv.Atoi(ref)
	if numErr == nil && pos >= 1 && pos <= n {
		return pos - 1, nil
	}
	for i := range n {
		if id(i) == ref {
			return i, nil
		}
	}

	var matches []int
	for i := range n {
		if strings.EqualFold(strings.TrimSpace(name(i)), ref) {
			matches = append(matches, i)
		}
	}
	if len(matches) == 0 {
		for i := range n {
			if strings.HasPrefix(id(i), ref) {
				matches = append(matches, i)
			}
		}
	}
	switch len(matches) {
	case 0:
		if numErr == nil {
			return -1, fmt.Errorf("%s #%d not found (have %d)", kind, pos, n)
		}
		return -1, fmt.Errorf("%s not found: %q", kind, ref)
	case 1:
		return matches[0], nil
	default:
		return -1, fmt.Errorf("%s reference %q is ambiguous (%d matches)", kind, ref, len(matches))
	}
}

func resolveSubject(p domain.Plan, ref string) (domain.Subject, error) {
	i, err := resolveRef("subject", ref, len(p.Subjects),
		func(i int) string { return p.Subjects[i].ID },
		func(i int) string { return p.Subjects[i].Name })
	if err != nil {
		return domain.Subject{}, err
	}
	return p.Subjects[i], nil
}

func resolveTopic(s domain.Subject, ref string) (domain.Topic, error) {
	i, err := resolveRef("topic", ref, len(s.Topics),
		func(i int) string { return s.Topics[i].ID },
		func(i int) string { return s.Topics[i].Title })
	if err != nil {
		return domain.Topic{}, fmt.Errorf("%s: %w", s.Name, err)
	}
	return s.Topics[i], nil
}

func resolveSetupSubject(d domain.OnboardingDraft, ref string) (domain.SetupSubject, error) {
	i, err := resolveRef("subject", ref, len(d.Subjects),
		func(i int) string { return d.Subjects[i].ID },
		func(i int) string { return d.Subjects[i].Name })
	if err != nil {
		return domain.SetupSubject{}, err
	}
	return d.Subjects[i], nil
}

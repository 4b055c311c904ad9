package scheduler

import (
	"time"

	"github.com/alexanderramin/examsprint/internal/domain"
)

const (
	// minSmartDays caps panic-mode pace at twice the remaining topic count.
	minSmartDays = 0.5

	criticalVelocity = 3.0
	highVelocity     = 1.5
)

// Urgency is the discrete classification of a required pace.
type Urgency struct {
	Level    domain.UrgencyLevel
	Severity domain.Severity
}

// DaysLeft returns whole calendar days from today (the date of now) to
// target. A deadline today or in the past yields 0, as does an unset target.
func DaysLeft(target domain.Date, now time.Time) int {
	if target.IsZero() {
		return 0
	}
	return max(0, target.DaysAfter(domain.DateOf(now)))
}

// RawVelocity is remaining topics per day against a single deadline. An
// unset target or nothing remaining yields 0; a deadline today or overdue
// counts as one day.
func RawVelocity(s domain.Subject, target domain.Date, now time.Time) float64 {
	if target.IsZero() {
		return 0
	}
	remaining := s.Remaining()
	if remaining == 0 {
		return 0
	}
	return float64(remaining) / float64(max(1, DaysLeft(target, now)))
}

// SmartVelocity is remaining topics per day against the tighter of the
// subject's exam date and the global target date. With neither set it is 0.
func SmartVelocity(s domain.Subject, global domain.Date, now time.Time) float64 {
	days, ok := effectiveDays(s.ExamDate, global, now)
	if !ok {
		return 0
	}
	remaining := s.Remaining()
	if remaining == 0 {
		return 0
	}
	return float64(remaining) / max(minSmartDays, float64(days))
}

func effectiveDays(exam, global domain.Date, now time.Time) (int, bool) {
	switch {
	case !exam.IsZero() && !global.IsZero():
		return min(DaysLeft(exam, now), DaysLeft(global, now)), true
	case !exam.IsZero():
		return DaysLeft(exam, now), true
	case !global.IsZero():
		return DaysLeft(global, now), true
	}
	return 0, false
}

// UrgencyFor classifies a velocity. Upper bounds are inclusive: exactly 1.5
// is comfortable and exactly 3 is high.
func UrgencyFor(v float64) Urgency {
	switch {
	case v > criticalVelocity:
		return Urgency{Level: domain.UrgencyCritical, Severity: domain.SeverityDanger}
	case v > highVelocity:
		return Urgency{Level: domain.UrgencyHigh, Severity: domain.SeverityWarning}
	case v <= 0:
		return Urgency{Level: domain.UrgencyDone, Severity: domain.SeveritySuccess}
	default:
		return Urgency{Level: domain.UrgencyComfortable, Severity: domain.SeveritySuccess}
	}
}

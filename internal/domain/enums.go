package domain

type GoalType string

const (
	GoalExamSprint GoalType = "EXAM_SPRINT"
	GoalDSA        GoalType = "DSA"
)

// ValidGoalTypes is the canonical set of accepted goal type strings.
var ValidGoalTypes = map[GoalType]bool{
	GoalExamSprint: true,
	GoalDSA:        true,
}

// IconType is a presentation tag; the glyph lookup lives in the CLI formatter.
type IconType string

const (
	IconCode     IconType = "code"
	IconDatabase IconType = "database"
	IconMath     IconType = "math"
	IconBook     IconType = "book"
	IconActivity IconType = "activity"
	IconLayout   IconType = "layout"
)

// IconTypes lists the icon tags in picker order.
var IconTypes = []IconType{IconCode, IconDatabase, IconMath, IconBook, IconActivity, IconLayout}

func (i IconType) Valid() bool {
	for _, t := range IconTypes {
		if t == i {
			return true
		}
	}
	return false
}

// PaletteSize is the number of subject colors; Subject.Color is an index into it.
const PaletteSize = 7

type UrgencyLevel string

const (
	UrgencyCritical    UrgencyLevel = "CRITICAL"
	UrgencyHigh        UrgencyLevel = "HIGH"
	UrgencyComfortable UrgencyLevel = "COMFORTABLE"
	UrgencyDone        UrgencyLevel = "DONE"
)

type Severity string

const (
	SeverityDanger  Severity = "danger"
	SeverityWarning Severity = "warning"
	SeveritySuccess Severity = "success"
)

type SessionKind string

const (
	SessionFocus SessionKind = "focus"
	SessionBreak SessionKind = "break"
)

// Confirmation is the acknowledgement a destructive operation requires.
type Confirmation int

const (
	Unconfirmed Confirmation = iota
	Confirmed
	DoubleConfirmed
)

// Require returns ErrConfirmationRequired unless c is at least want.
func (c Confirmation) Require(want Confirmation) error {
	if c < want {
		return ErrConfirmationRequired
	}
	return nil
}

package domain

import "errors"

var (
	// ErrConfirmationRequired is returned by destructive operations invoked
	// without an explicit acknowledgement.
	ErrConfirmationRequired = errors.New("confirmation required")

	ErrUnknownGoal     = errors.New("unknown goal")
	ErrNoActiveGoal    = errors.New("no active goal")
	ErrNeedsOnboarding = errors.New("setup not complete")
	ErrSetupFinished   = errors.New("setup already finished")
	ErrUnknownSubject  = errors.New("unknown subject")

	// ErrTrackerUnavailable is returned for goal types that are listed but
	// have no tracker yet.
	ErrTrackerUnavailable = errors.New("tracker coming soon for this goal type")
)

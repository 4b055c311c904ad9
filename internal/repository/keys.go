package repository

// Storage keys. Plan keys are namespaced by goal id so each goal owns an
// independent plan.
const (
	KeyGoals        = "goal-tracker-goals"
	KeyActiveGoalID = "goal-tracker-active-id"

	keyOnboarded  = "mca-tracker-v4-onboarded"
	keySubjects   = "mca-tracker-v4-data"
	keyTarget     = "mca-tracker-v4-target"
	keyScratchpad = "mca-tracker-v4-scratchpad"
	keyStats      = "mca-tracker-v4-stats"
)

// PlanKeyPrefix is the prefix shared by every plan key of a goal.
func PlanKeyPrefix(goalID string) string { return goalID + "_" }

func planKey(goalID, name string) string { return PlanKeyPrefix(goalID) + name }

func draftStepKey(goalID string) string { return "onboarding_draft_" + goalID + "_step" }

func draftSubjectsKey(goalID string) string { return "onboarding_draft_" + goalID + "_subjects" }

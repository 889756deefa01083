package quote

import (
	"github.com/biribar/biribar-backend/internal/models"
)

// SequenceState is the wizard's view of a draft: the current ordered step
// list, the first step still missing an answer, and the completion flag per
// step. CanSubmit is true only when the summary has been legitimately
// reached.
type SequenceState struct {
	Steps     []Step        `json:"steps"`
	Current   Step          `json:"current"`
	Completed map[Step]bool `json:"completed"`
	CanSubmit bool          `json:"canSubmit"`
}

// Describe computes the sequence state for a draft
func Describe(draft *models.QuoteDraft) SequenceState {
	steps := ComputeSteps(draft)
	completed := make(map[Step]bool, len(steps))
	for _, s := range steps {
		if s == StepSummary {
			continue
		}
		completed[s] = StepComplete(draft, s)
	}
	return SequenceState{
		Steps:     steps,
		Current:   FirstIncomplete(draft),
		Completed: completed,
		CanSubmit: CanSubmit(draft),
	}
}

// Package quote implements the quote wizard core: the dynamic step sequence
// and the price estimate. Everything here is a pure function over a
// QuoteDraft and the pricing config; persistence and transport live in the
// services and handlers layers.
package quote

import (
	"strings"

	"github.com/biribar/biribar-backend/internal/models"
)

// Step identifies one question of the wizard
type Step string

const (
	StepName          Step = "name"
	StepPhone         Step = "phone"
	StepGuests        Step = "guests"
	StepLocation      Step = "location"
	StepDate          Step = "date"
	StepTime          Step = "time"
	StepDuration      Step = "duration"
	StepNeedsCounter  Step = "needsCounter"
	StepCupType       Step = "cupType"
	StepGlassQuantity Step = "glassQuantity"
	StepPlanType      Step = "planType"
	StepCaipiFlavors  Step = "caipiFlavors"
	StepFrozenFlavors Step = "frozenFlavors"
	StepSpecialDrinks Step = "specialDrinks"
	StepLabels        Step = "labels"
	StepSummary       Step = "summary"
)

// Exact selection counts enforced before the flavor steps can be left
const (
	CaipiFlavorCount  = 3
	FrozenFlavorCount = 2
)

// ComputeSteps returns the ordered step list for the given draft. The list is
// recomputed from the current answers on every call: glassQuantity is present
// only when glassware was chosen, and the labels step is skipped entirely for
// the non-alcoholic tier. Callers must locate their position by step value,
// not by a stored index, so conditional insertions and removals never
// desynchronize the sequence.
func ComputeSteps(draft *models.QuoteDraft) []Step {
	steps := []Step{
		StepName, StepPhone, StepGuests, StepLocation,
		StepDate, StepTime, StepDuration, StepNeedsCounter, StepCupType,
	}
	if draft.CupType == models.CupGlass {
		steps = append(steps, StepGlassQuantity)
	}
	steps = append(steps, StepPlanType, StepCaipiFlavors, StepFrozenFlavors, StepSpecialDrinks)
	if draft.PlanType != models.PlanNonAlcohol {
		steps = append(steps, StepLabels)
	}
	steps = append(steps, StepSummary)
	return steps
}

// StepComplete reports whether the required-field predicate of a step holds.
// Advancing past a step is allowed only once its predicate is satisfied;
// specialDrinks and labels have no constraint and are always advanceable.
func StepComplete(draft *models.QuoteDraft, step Step) bool {
	switch step {
	case StepName:
		return strings.TrimSpace(draft.Name) != ""
	case StepPhone:
		return strings.TrimSpace(draft.Phone) != ""
	case StepGuests:
		return draft.Guests != ""
	case StepLocation:
		return strings.TrimSpace(draft.Location) != ""
	case StepDate:
		return draft.Date != ""
	case StepTime:
		return draft.Time != ""
	case StepDuration:
		return draft.Duration != ""
	case StepNeedsCounter:
		return draft.NeedsCounter != nil
	case StepCupType:
		return draft.CupType == models.CupStandard || draft.CupType == models.CupGlass
	case StepGlassQuantity:
		return draft.GlassQuantity != ""
	case StepPlanType:
		return draft.PlanType == models.PlanAlcohol ||
			draft.PlanType == models.PlanNonAlcohol ||
			draft.PlanType == models.PlanMixed
	case StepCaipiFlavors:
		return len(draft.CaipiFlavors) == CaipiFlavorCount
	case StepFrozenFlavors:
		return len(draft.FrozenFlavors) == FrozenFlavorCount
	case StepSpecialDrinks, StepLabels:
		return true
	case StepSummary:
		return false
	}
	return false
}

// IndexOf returns the position of a step in the sequence, or -1 when the step
// is not part of it (e.g. glassQuantity after switching back to standard
// cups).
func IndexOf(steps []Step, step Step) int {
	for i, s := range steps {
		if s == step {
			return i
		}
	}
	return -1
}

// NextStep returns the step after the given one. Advancement is forward-only
// and single-step; the summary step is terminal and returns itself.
func NextStep(draft *models.QuoteDraft, current Step) Step {
	steps := ComputeSteps(draft)
	i := IndexOf(steps, current)
	if i < 0 {
		return FirstIncomplete(draft)
	}
	if i+1 >= len(steps) {
		return StepSummary
	}
	return steps[i+1]
}

// FirstIncomplete returns the earliest step whose predicate does not hold.
// On a fully answered draft it returns the summary step.
func FirstIncomplete(draft *models.QuoteDraft) Step {
	steps := ComputeSteps(draft)
	for _, s := range steps {
		if s == StepSummary {
			break
		}
		if !StepComplete(draft, s) {
			return s
		}
	}
	return StepSummary
}

// CanSubmit reports whether the draft has completed every step of its current
// sequence, i.e. the wizard has legitimately reached the summary.
func CanSubmit(draft *models.QuoteDraft) bool {
	return FirstIncomplete(draft) == StepSummary
}

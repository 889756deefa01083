package quote

import (
	"testing"

	"github.com/biribar/biribar-backend/internal/models"
)

func boolPtr(b bool) *bool { return &b }

// completeDraft returns a draft with every required step answered, using
// disposable cups and the non-premium alcohol tier.
func completeDraft() *models.QuoteDraft {
	return &models.QuoteDraft{
		Name:          "Ana Souza",
		Phone:         "11 99999-0000",
		Guests:        "100",
		Location:      "São Paulo",
		Date:          "2026-10-10",
		Time:          "19:00",
		Duration:      "4",
		NeedsCounter:  boolPtr(false),
		CupType:       models.CupStandard,
		PlanType:      models.PlanAlcohol,
		CaipiFlavors:  []string{"Limão", "Morango", "Abacaxi"},
		FrozenFlavors: []string{"Morango", "Maracujá"},
	}
}

func TestComputeStepsBaseSequence(t *testing.T) {
	draft := completeDraft()
	steps := ComputeSteps(draft)

	if IndexOf(steps, StepGlassQuantity) != -1 {
		t.Errorf("glassQuantity step present for standard cups")
	}
	if IndexOf(steps, StepLabels) == -1 {
		t.Errorf("labels step missing for alcohol plan")
	}
	if steps[0] != StepName {
		t.Errorf("first step = %q, want %q", steps[0], StepName)
	}
	if steps[len(steps)-1] != StepSummary {
		t.Errorf("last step = %q, want %q", steps[len(steps)-1], StepSummary)
	}
}

func TestComputeStepsGlassQuantityConditional(t *testing.T) {
	draft := completeDraft()
	draft.CupType = models.CupGlass
	steps := ComputeSteps(draft)

	i := IndexOf(steps, StepGlassQuantity)
	if i == -1 {
		t.Fatalf("glassQuantity step missing for glass cups")
	}
	if steps[i-1] != StepCupType {
		t.Errorf("glassQuantity follows %q, want %q", steps[i-1], StepCupType)
	}

	// Switching back to standard removes the step again.
	draft.CupType = models.CupStandard
	if IndexOf(ComputeSteps(draft), StepGlassQuantity) != -1 {
		t.Errorf("glassQuantity step kept after switching to standard cups")
	}
}

func TestComputeStepsLabelsSkippedForNonAlcohol(t *testing.T) {
	draft := completeDraft()
	draft.PlanType = models.PlanNonAlcohol
	steps := ComputeSteps(draft)

	if IndexOf(steps, StepLabels) != -1 {
		t.Errorf("labels step present for non-alcohol plan")
	}
	i := IndexOf(steps, StepSpecialDrinks)
	if steps[i+1] != StepSummary {
		t.Errorf("step after specialDrinks = %q, want %q", steps[i+1], StepSummary)
	}
}

func TestFirstIncompleteOrdering(t *testing.T) {
	draft := &models.QuoteDraft{}
	if got := FirstIncomplete(draft); got != StepName {
		t.Errorf("FirstIncomplete(empty) = %q, want %q", got, StepName)
	}

	draft.Name = "Ana"
	if got := FirstIncomplete(draft); got != StepPhone {
		t.Errorf("FirstIncomplete = %q, want %q", got, StepPhone)
	}

	// Whitespace-only answers do not count.
	draft.Phone = "   "
	if got := FirstIncomplete(draft); got != StepPhone {
		t.Errorf("FirstIncomplete with blank phone = %q, want %q", got, StepPhone)
	}
}

func TestFirstIncompleteFlavorCardinality(t *testing.T) {
	draft := completeDraft()

	draft.CaipiFlavors = []string{"Limão", "Morango"}
	if got := FirstIncomplete(draft); got != StepCaipiFlavors {
		t.Errorf("FirstIncomplete with 2 caipi flavors = %q, want %q", got, StepCaipiFlavors)
	}

	draft.CaipiFlavors = []string{"Limão", "Morango", "Abacaxi", "Kiwi"}
	if got := FirstIncomplete(draft); got != StepCaipiFlavors {
		t.Errorf("FirstIncomplete with 4 caipi flavors = %q, want %q", got, StepCaipiFlavors)
	}

	draft.CaipiFlavors = []string{"Limão", "Morango", "Abacaxi"}
	draft.FrozenFlavors = []string{"Morango"}
	if got := FirstIncomplete(draft); got != StepFrozenFlavors {
		t.Errorf("FirstIncomplete with 1 frozen flavor = %q, want %q", got, StepFrozenFlavors)
	}
}

func TestFirstIncompleteGlassQuantityRequired(t *testing.T) {
	draft := completeDraft()
	draft.CupType = models.CupGlass
	if got := FirstIncomplete(draft); got != StepGlassQuantity {
		t.Errorf("FirstIncomplete = %q, want %q", got, StepGlassQuantity)
	}

	draft.GlassQuantity = "120"
	if got := FirstIncomplete(draft); got != StepSummary {
		t.Errorf("FirstIncomplete = %q, want %q", got, StepSummary)
	}
}

func TestNextStep(t *testing.T) {
	draft := completeDraft()

	if got := NextStep(draft, StepName); got != StepPhone {
		t.Errorf("NextStep(name) = %q, want %q", got, StepPhone)
	}

	// Summary is terminal.
	if got := NextStep(draft, StepSummary); got != StepSummary {
		t.Errorf("NextStep(summary) = %q, want %q", got, StepSummary)
	}

	// A step no longer in the sequence resolves to the first incomplete one.
	if got := NextStep(draft, StepGlassQuantity); got != StepSummary {
		t.Errorf("NextStep(removed step) = %q, want %q", got, StepSummary)
	}
}

func TestCanSubmit(t *testing.T) {
	draft := completeDraft()
	if !CanSubmit(draft) {
		t.Fatalf("CanSubmit(complete draft) = false")
	}

	draft.NeedsCounter = nil
	if CanSubmit(draft) {
		t.Errorf("CanSubmit without counter answer = true")
	}

	draft = completeDraft()
	draft.Guests = ""
	if CanSubmit(draft) {
		t.Errorf("CanSubmit without guest count = true")
	}
}

func TestStepCompleteEnums(t *testing.T) {
	draft := completeDraft()

	draft.CupType = "porcelain"
	if StepComplete(draft, StepCupType) {
		t.Errorf("StepComplete accepted unknown cup type")
	}

	draft.PlanType = "open-bar"
	if StepComplete(draft, StepPlanType) {
		t.Errorf("StepComplete accepted unknown plan type")
	}
}

package quote

import (
	"math"
	"strconv"
	"strings"

	"github.com/biribar/biribar-backend/internal/models"
)

// Hours included in the base per-guest price; beyond this the extra-hour
// multiplier kicks in. Also the fallback when duration does not parse.
const baseHours = 4

// Staffing rule: one bartender per this many guests, minimum one.
const guestsPerStaff = 50

// Breakdown carries the intermediate values of a price estimate alongside the
// final total. The dashboard shows these; the wizard only needs Total.
type Breakdown struct {
	Guests        int     `json:"guests"`
	Hours         int     `json:"hours"`
	PerGuest      float64 `json:"perGuest"`
	StaffCount    int     `json:"staffCount"`
	StaffCost     float64 `json:"staffCost"`
	CounterFee    float64 `json:"counterFee"`
	GlasswareFee  float64 `json:"glasswareFee"`
	Total         float64 `json:"total"`
}

// EstimateTotal derives the estimated total for a draft from the pricing
// config. Pure and side-effect free; the wizard recomputes it on every
// answer. Unset plan or guest count, or a missing config, yields a zero
// estimate rather than an error, and numeric parse failures fall back to 0
// guests/glasses and a 4-hour duration.
func EstimateTotal(draft *models.QuoteDraft, cfg *models.PricingConfig) Breakdown {
	if draft == nil || cfg == nil || draft.PlanType == "" || draft.Guests == "" {
		return Breakdown{}
	}

	guests := parseIntOr(draft.Guests, 0)
	hours := parseIntOr(draft.Duration, baseHours)

	var ppg float64
	switch draft.PlanType {
	case models.PlanAlcohol:
		ppg = cfg.BaseAlcohol
	case models.PlanNonAlcohol:
		ppg = cfg.BaseNonAlcohol
	default:
		ppg = cfg.BaseMisto
	}

	// Extra hours scale the base itself, not a flat add.
	if hours > baseHours {
		ppg += ppg * float64(hours-baseHours) * cfg.ExtraHourMultiplier
	}

	// One flat surcharge no matter how many premium labels were picked.
	// The non-alcoholic tier never sees the labels step, so its selections
	// (from a previously chosen plan) must not leak into the price.
	if draft.PlanType != models.PlanNonAlcohol && hasPremiumLabel(draft.Labels) {
		ppg += cfg.PremiumLabelFee
	}

	ppg += float64(len(draft.SpecialDrinks)) * cfg.SpecialDrinkFee

	staff := int(math.Ceil(float64(guests) / guestsPerStaff))
	if staff < 1 {
		staff = 1
	}
	staffCost := float64(staff) * cfg.StaffHourlyRate * float64(hours)

	total := ppg*float64(guests) + staffCost

	var counterFee float64
	if draft.NeedsCounter != nil && *draft.NeedsCounter {
		counterFee = cfg.CounterFixedFee
		total += counterFee
	}

	var glasswareFee float64
	if draft.CupType == models.CupGlass {
		glasses := parseIntOr(draft.GlassQuantity, 0)
		glasswareFee = float64(glasses) * cfg.GlasswareFixedFee
		total += glasswareFee
	}

	return Breakdown{
		Guests:       guests,
		Hours:        hours,
		PerGuest:     ppg,
		StaffCount:   staff,
		StaffCost:    staffCost,
		CounterFee:   counterFee,
		GlasswareFee: glasswareFee,
		Total:        total,
	}
}

// hasPremiumLabel reports whether any vodka or gin selection is the premium
// variant. Label names carry a "(Premium)" marker; cachaça choices never
// trigger the surcharge.
func hasPremiumLabel(labels models.LabelSelections) bool {
	for _, l := range labels.Vodka {
		if strings.Contains(l, "Premium") {
			return true
		}
	}
	for _, l := range labels.Gin {
		if strings.Contains(l, "Premium") {
			return true
		}
	}
	return false
}

func parseIntOr(s string, fallback int) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return fallback
	}
	return n
}

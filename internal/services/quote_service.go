package services

import (
	"context"
	"errors"

	"github.com/biribar/biribar-backend/internal/models"
	"github.com/biribar/biribar-backend/internal/quote"
	"github.com/biribar/biribar-backend/internal/repositories"
)

// ErrDraftIncomplete is returned when a draft is submitted before every
// required step of its sequence is satisfied.
var ErrDraftIncomplete = errors.New("quote draft has incomplete steps")

// QuoteService defines the interface for the public quote wizard operations
type QuoteService interface {
	Options(ctx context.Context) (*models.QuoteOptions, error)
	Sequence(draft *models.QuoteDraft) quote.SequenceState
	Estimate(ctx context.Context, draft *models.QuoteDraft) (quote.Breakdown, error)
	Submit(ctx context.Context, draft *models.QuoteDraft) (*models.Lead, error)
}

type quoteService struct {
	pricingRepo repositories.PricingRepository
	drinkRepo   repositories.DrinkRepository
	contentRepo repositories.ContentRepository
	leadRepo    repositories.LeadRepository
}

// NewQuoteService creates a new QuoteService implementation
func NewQuoteService(
	pricingRepo repositories.PricingRepository,
	drinkRepo repositories.DrinkRepository,
	contentRepo repositories.ContentRepository,
	leadRepo repositories.LeadRepository,
) QuoteService {
	return &quoteService{
		pricingRepo: pricingRepo,
		drinkRepo:   drinkRepo,
		contentRepo: contentRepo,
		leadRepo:    leadRepo,
	}
}

// Options returns everything the wizard needs to render its choice steps:
// plan tiers, flavor lists, featured drinks and the label catalog.
func (s *quoteService) Options(ctx context.Context) (*models.QuoteOptions, error) {
	content, err := s.contentRepo.Get(ctx)
	if err != nil {
		return nil, err
	}
	specials, err := s.drinkRepo.FindSpecials(ctx)
	if err != nil {
		return nil, err
	}

	choices := make([]models.SpecialDrinkChoice, 0, len(specials))
	for _, d := range specials {
		choices = append(choices, models.SpecialDrinkChoice{ID: d.ID.Hex(), Name: d.Name})
	}

	return &models.QuoteOptions{
		PlanTypes:     []models.PlanType{models.PlanAlcohol, models.PlanNonAlcohol, models.PlanMixed},
		CaipiFlavors:  content.CaipiFlavors,
		FrozenFlavors: content.FrozenFlavors,
		SpecialDrinks: choices,
		Labels:        models.DefaultLabelCatalog(),
	}, nil
}

// Sequence computes the ordered step list and completion state for a draft
func (s *quoteService) Sequence(draft *models.QuoteDraft) quote.SequenceState {
	return quote.Describe(draft)
}

// Estimate derives the current price estimate for a draft
func (s *quoteService) Estimate(ctx context.Context, draft *models.QuoteDraft) (quote.Breakdown, error) {
	cfg, err := s.pricingRepo.Get(ctx)
	if err != nil {
		return quote.Breakdown{}, err
	}
	return quote.EstimateTotal(draft, cfg), nil
}

// Submit validates a completed draft, recomputes its total server-side and
// persists it as a pending lead. The client-shown estimate is never trusted.
func (s *quoteService) Submit(ctx context.Context, draft *models.QuoteDraft) (*models.Lead, error) {
	if !quote.CanSubmit(draft) {
		return nil, ErrDraftIncomplete
	}

	cfg, err := s.pricingRepo.Get(ctx)
	if err != nil {
		return nil, err
	}
	breakdown := quote.EstimateTotal(draft, cfg)

	labels := draft.Labels
	glassQuantity := draft.GlassQuantity
	if draft.PlanType == models.PlanNonAlcohol {
		// Selections made under a previously chosen alcoholic plan are
		// meaningless once the labels step left the sequence.
		labels = models.LabelSelections{}
	}
	if draft.CupType != models.CupGlass {
		glassQuantity = ""
	}

	lead := &models.Lead{
		Name:          draft.Name,
		Phone:         draft.Phone,
		Guests:        draft.Guests,
		Location:      draft.Location,
		Date:          draft.Date,
		Time:          draft.Time,
		Duration:      draft.Duration,
		NeedsCounter:  draft.NeedsCounter != nil && *draft.NeedsCounter,
		CupType:       draft.CupType,
		GlassQuantity: glassQuantity,
		PlanType:      draft.PlanType,
		CaipiFlavors:  draft.CaipiFlavors,
		FrozenFlavors: draft.FrozenFlavors,
		SpecialDrinks: draft.SpecialDrinks,
		Labels:        labels,
		Total:         breakdown.Total,
		Status:        models.LeadStatusPending,
	}

	if err := s.leadRepo.Create(ctx, lead); err != nil {
		return nil, err
	}
	return lead, nil
}

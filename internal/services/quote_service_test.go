package services

import (
	"context"
	"errors"
	"testing"

	"github.com/biribar/biribar-backend/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// In-memory repository fakes shared by the service tests.

type fakePricingRepo struct {
	cfg models.PricingConfig
}

func (f *fakePricingRepo) Get(ctx context.Context) (*models.PricingConfig, error) {
	cfg := f.cfg
	return &cfg, nil
}

func (f *fakePricingRepo) Update(ctx context.Context, cfg *models.PricingConfig) error {
	f.cfg = *cfg
	return nil
}

type fakeContentRepo struct {
	content models.SiteContent
}

func (f *fakeContentRepo) Get(ctx context.Context) (*models.SiteContent, error) {
	content := f.content
	return &content, nil
}

func (f *fakeContentRepo) Update(ctx context.Context, content *models.SiteContent) error {
	f.content = *content
	return nil
}

type fakeDrinkRepo struct {
	drinks []models.Drink
}

func (f *fakeDrinkRepo) FindAll(ctx context.Context) ([]models.Drink, error) {
	return f.drinks, nil
}

func (f *fakeDrinkRepo) FindSpecials(ctx context.Context) ([]models.Drink, error) {
	specials := []models.Drink{}
	for _, d := range f.drinks {
		if d.IsSpecial {
			specials = append(specials, d)
		}
	}
	return specials, nil
}

func (f *fakeDrinkRepo) ReplaceAll(ctx context.Context, drinks []models.Drink) error {
	for i := range drinks {
		if drinks[i].ID.IsZero() {
			drinks[i].ID = primitive.NewObjectID()
		}
	}
	f.drinks = drinks
	return nil
}

func (f *fakeDrinkRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	for i, d := range f.drinks {
		if d.ID == id {
			f.drinks = append(f.drinks[:i], f.drinks[i+1:]...)
			return nil
		}
	}
	return mongo.ErrNoDocuments
}

func (f *fakeDrinkRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(f.drinks)), nil
}

type fakeLeadRepo struct {
	leads     []models.Lead
	createErr error
}

func (f *fakeLeadRepo) Create(ctx context.Context, lead *models.Lead) error {
	if f.createErr != nil {
		return f.createErr
	}
	lead.ID = primitive.NewObjectID()
	f.leads = append(f.leads, *lead)
	return nil
}

func (f *fakeLeadRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Lead, error) {
	for i := range f.leads {
		if f.leads[i].ID == id {
			lead := f.leads[i]
			return &lead, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (f *fakeLeadRepo) FindAll(ctx context.Context) ([]models.Lead, error) {
	return f.leads, nil
}

func (f *fakeLeadRepo) FindByStatus(ctx context.Context, status models.LeadStatus) ([]models.Lead, error) {
	matched := []models.Lead{}
	for _, l := range f.leads {
		if l.Status == status {
			matched = append(matched, l)
		}
	}
	return matched, nil
}

func (f *fakeLeadRepo) UpdateStatus(ctx context.Context, id primitive.ObjectID, status models.LeadStatus) error {
	for i := range f.leads {
		if f.leads[i].ID == id {
			f.leads[i].Status = status
			return nil
		}
	}
	return mongo.ErrNoDocuments
}

func (f *fakeLeadRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	for i := range f.leads {
		if f.leads[i].ID == id {
			f.leads = append(f.leads[:i], f.leads[i+1:]...)
			return nil
		}
	}
	return mongo.ErrNoDocuments
}

func (f *fakeLeadRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(f.leads)), nil
}

func boolPtr(b bool) *bool { return &b }

func submittableDraft() *models.QuoteDraft {
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

func newTestQuoteService(leadRepo *fakeLeadRepo) QuoteService {
	return NewQuoteService(
		&fakePricingRepo{cfg: *models.DefaultPricingConfig()},
		&fakeDrinkRepo{drinks: models.DefaultDrinks()},
		&fakeContentRepo{content: *models.DefaultSiteContent()},
		leadRepo,
	)
}

func TestSubmitRejectsIncompleteDraft(t *testing.T) {
	leadRepo := &fakeLeadRepo{}
	svc := newTestQuoteService(leadRepo)

	draft := submittableDraft()
	draft.Phone = ""

	if _, err := svc.Submit(context.Background(), draft); !errors.Is(err, ErrDraftIncomplete) {
		t.Fatalf("Submit error = %v, want ErrDraftIncomplete", err)
	}
	if len(leadRepo.leads) != 0 {
		t.Errorf("incomplete draft was persisted")
	}
}

func TestSubmitRecomputesTotal(t *testing.T) {
	leadRepo := &fakeLeadRepo{}
	svc := newTestQuoteService(leadRepo)

	lead, err := svc.Submit(context.Background(), submittableDraft())
	if err != nil {
		t.Fatalf("Submit returned error: %v", err)
	}

	// 65*100 + 2 staff * 35 * 4h
	if lead.Total != 6780 {
		t.Errorf("lead total = %v, want 6780", lead.Total)
	}
	if lead.Status != models.LeadStatusPending {
		t.Errorf("lead status = %q, want %q", lead.Status, models.LeadStatusPending)
	}
	if lead.ID.IsZero() {
		t.Errorf("lead was not assigned an ID")
	}
	if len(leadRepo.leads) != 1 {
		t.Fatalf("lead count = %d, want 1", len(leadRepo.leads))
	}
}

func TestSubmitStripsIrrelevantAnswers(t *testing.T) {
	leadRepo := &fakeLeadRepo{}
	svc := newTestQuoteService(leadRepo)

	draft := submittableDraft()
	draft.PlanType = models.PlanNonAlcohol
	draft.Labels = models.LabelSelections{Vodka: []string{"Skyy (Premium)"}}
	draft.GlassQuantity = "120"

	lead, err := svc.Submit(context.Background(), draft)
	if err != nil {
		t.Fatalf("Submit returned error: %v", err)
	}

	if len(lead.Labels.Vodka) != 0 {
		t.Errorf("labels kept on non-alcohol lead: %v", lead.Labels.Vodka)
	}
	if lead.GlassQuantity != "" {
		t.Errorf("glass quantity kept with standard cups: %q", lead.GlassQuantity)
	}
}

func TestSubmitPropagatesStoreError(t *testing.T) {
	storeErr := errors.New("connection reset")
	leadRepo := &fakeLeadRepo{createErr: storeErr}
	svc := newTestQuoteService(leadRepo)

	if _, err := svc.Submit(context.Background(), submittableDraft()); !errors.Is(err, storeErr) {
		t.Fatalf("Submit error = %v, want %v", err, storeErr)
	}
}

func TestOptionsListsSpecialDrinksOnly(t *testing.T) {
	drinkRepo := &fakeDrinkRepo{drinks: []models.Drink{
		{ID: primitive.NewObjectID(), Name: "Moscow Mule", IsSpecial: true},
		{ID: primitive.NewObjectID(), Name: "Caipirinha de Limão"},
	}}
	svc := NewQuoteService(
		&fakePricingRepo{cfg: *models.DefaultPricingConfig()},
		drinkRepo,
		&fakeContentRepo{content: *models.DefaultSiteContent()},
		&fakeLeadRepo{},
	)

	opts, err := svc.Options(context.Background())
	if err != nil {
		t.Fatalf("Options returned error: %v", err)
	}

	if len(opts.SpecialDrinks) != 1 || opts.SpecialDrinks[0].Name != "Moscow Mule" {
		t.Errorf("SpecialDrinks = %v, want only Moscow Mule", opts.SpecialDrinks)
	}
	if len(opts.PlanTypes) != 3 {
		t.Errorf("PlanTypes count = %d, want 3", len(opts.PlanTypes))
	}
	if len(opts.CaipiFlavors) == 0 || len(opts.FrozenFlavors) == 0 {
		t.Errorf("flavor lists are empty")
	}
	if len(opts.Labels.Vodka) == 0 {
		t.Errorf("label catalog is empty")
	}
}

func TestEstimateUsesStoredPricing(t *testing.T) {
	pricingRepo := &fakePricingRepo{cfg: *models.DefaultPricingConfig()}
	pricingRepo.cfg.BaseAlcohol = 80
	svc := NewQuoteService(pricingRepo, &fakeDrinkRepo{}, &fakeContentRepo{}, &fakeLeadRepo{})

	got, err := svc.Estimate(context.Background(), submittableDraft())
	if err != nil {
		t.Fatalf("Estimate returned error: %v", err)
	}
	if got.PerGuest != 80 {
		t.Errorf("PerGuest = %v, want 80", got.PerGuest)
	}
}

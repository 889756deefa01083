package services

import (
	"context"
	"testing"

	"github.com/biribar/biribar-backend/internal/models"
)

func newTestContentService(contentRepo *fakeContentRepo) ContentService {
	return NewContentService(
		contentRepo,
		&fakePricingRepo{cfg: *models.DefaultPricingConfig()},
		&fakeInventoryRepo{items: models.DefaultInventory()},
		&fakeDrinkRepo{},
		&fakeLeadRepo{},
	)
}

func TestGetSnapshot(t *testing.T) {
	contentRepo := &fakeContentRepo{content: *models.DefaultSiteContent()}
	svc := newTestContentService(contentRepo)

	snap, err := svc.GetSnapshot(context.Background())
	if err != nil {
		t.Fatalf("GetSnapshot returned error: %v", err)
	}

	if snap.Pricing == nil || snap.Pricing.BaseAlcohol != 65 {
		t.Errorf("snapshot pricing missing or wrong: %+v", snap.Pricing)
	}
	if len(snap.Inventory) == 0 {
		t.Errorf("snapshot inventory is empty")
	}
	if len(snap.CaipiFlavors) == 0 || len(snap.FrozenFlavors) == 0 {
		t.Errorf("snapshot flavor lists are empty")
	}
}

func TestUpdateQuoteFlavors(t *testing.T) {
	contentRepo := &fakeContentRepo{content: *models.DefaultSiteContent()}
	svc := newTestContentService(contentRepo)

	before := contentRepo.content.FrozenFlavors

	err := svc.UpdateQuoteFlavors(context.Background(), []string{"Limão", "Kiwi"}, nil)
	if err != nil {
		t.Fatalf("UpdateQuoteFlavors returned error: %v", err)
	}

	if got := contentRepo.content.CaipiFlavors; len(got) != 2 {
		t.Errorf("caipi flavors = %v, want 2 entries", got)
	}
	// A nil list leaves the other family untouched.
	if got := contentRepo.content.FrozenFlavors; len(got) != len(before) {
		t.Errorf("frozen flavors changed: %v", got)
	}
}

func TestUpdateGallery(t *testing.T) {
	contentRepo := &fakeContentRepo{content: *models.DefaultSiteContent()}
	svc := newTestContentService(contentRepo)

	images := []string{"/img/evento-1.jpg", "/img/evento-2.jpg"}
	if err := svc.UpdateGallery(context.Background(), images); err != nil {
		t.Fatalf("UpdateGallery returned error: %v", err)
	}

	if got := contentRepo.content.Gallery; len(got) != 2 || got[0] != images[0] {
		t.Errorf("gallery = %v, want %v", got, images)
	}
}

package services

import (
	"context"
	"testing"

	"github.com/biribar/biribar-backend/internal/models"
)

func TestUpdatePricingBeforeFirstRead(t *testing.T) {
	// A settings save must land even when nothing has read (and therefore
	// seeded) the pricing document yet.
	pricingRepo := &fakePricingRepo{}
	svc := NewPricingService(pricingRepo)

	cfg := models.DefaultPricingConfig()
	cfg.BaseAlcohol = 80
	if err := svc.UpdatePricing(context.Background(), cfg); err != nil {
		t.Fatalf("UpdatePricing returned error: %v", err)
	}

	got, err := svc.GetPricing(context.Background())
	if err != nil {
		t.Fatalf("GetPricing returned error: %v", err)
	}
	if got.BaseAlcohol != 80 {
		t.Errorf("BaseAlcohol = %v, want 80", got.BaseAlcohol)
	}
}

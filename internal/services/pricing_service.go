package services

import (
	"context"

	"github.com/biribar/biribar-backend/internal/models"
	"github.com/biribar/biribar-backend/internal/repositories"
)

// PricingService defines the interface for pricing config operations
type PricingService interface {
	GetPricing(ctx context.Context) (*models.PricingConfig, error)
	UpdatePricing(ctx context.Context, cfg *models.PricingConfig) error
}

type pricingService struct {
	pricingRepo repositories.PricingRepository
}

// NewPricingService creates a new PricingService implementation
func NewPricingService(pricingRepo repositories.PricingRepository) PricingService {
	return &pricingService{pricingRepo: pricingRepo}
}

// GetPricing returns the pricing config, seeding defaults on first read
func (s *pricingService) GetPricing(ctx context.Context) (*models.PricingConfig, error) {
	return s.pricingRepo.Get(ctx)
}

// UpdatePricing replaces the pricing config
func (s *pricingService) UpdatePricing(ctx context.Context, cfg *models.PricingConfig) error {
	return s.pricingRepo.Update(ctx, cfg)
}

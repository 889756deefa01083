package services

import (
	"context"

	"github.com/biribar/biribar-backend/internal/models"
	"github.com/biribar/biribar-backend/internal/repositories"
)

// ContentService defines the interface for site content operations and the
// wholesale snapshot read the screens are built around.
type ContentService interface {
	GetSnapshot(ctx context.Context) (*models.Snapshot, error)
	UpdateGallery(ctx context.Context, images []string) error
	UpdateTestimonials(ctx context.Context, testimonials []models.Testimonial) error
	UpdateServices(ctx context.Context, services []models.SiteService) error
	UpdateAbout(ctx context.Context, about models.AboutContent) error
	UpdateQuoteFlavors(ctx context.Context, caipi, frozen []string) error
}

type contentService struct {
	contentRepo   repositories.ContentRepository
	pricingRepo   repositories.PricingRepository
	inventoryRepo repositories.InventoryRepository
	drinkRepo     repositories.DrinkRepository
	leadRepo      repositories.LeadRepository
}

// NewContentService creates a new ContentService implementation
func NewContentService(
	contentRepo repositories.ContentRepository,
	pricingRepo repositories.PricingRepository,
	inventoryRepo repositories.InventoryRepository,
	drinkRepo repositories.DrinkRepository,
	leadRepo repositories.LeadRepository,
) ContentService {
	return &contentService{
		contentRepo:   contentRepo,
		pricingRepo:   pricingRepo,
		inventoryRepo: inventoryRepo,
		drinkRepo:     drinkRepo,
		leadRepo:      leadRepo,
	}
}

// GetSnapshot assembles the full read model. Screens fetch this wholesale,
// mutate one entity and write that entity back; the store stays the single
// source of truth.
func (s *contentService) GetSnapshot(ctx context.Context) (*models.Snapshot, error) {
	content, err := s.contentRepo.Get(ctx)
	if err != nil {
		return nil, err
	}
	pricing, err := s.pricingRepo.Get(ctx)
	if err != nil {
		return nil, err
	}
	inventory, err := s.inventoryRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	drinks, err := s.drinkRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	leads, err := s.leadRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	return &models.Snapshot{
		Pricing:       pricing,
		Inventory:     inventory,
		Drinks:        drinks,
		Leads:         leads,
		CaipiFlavors:  content.CaipiFlavors,
		FrozenFlavors: content.FrozenFlavors,
		Gallery:       content.Gallery,
		Testimonials:  content.Testimonials,
		Services:      content.Services,
		About:         content.About,
	}, nil
}

// UpdateGallery replaces the gallery image list
func (s *contentService) UpdateGallery(ctx context.Context, images []string) error {
	return s.mutate(ctx, func(c *models.SiteContent) {
		c.Gallery = images
	})
}

// UpdateTestimonials replaces the testimonial list
func (s *contentService) UpdateTestimonials(ctx context.Context, testimonials []models.Testimonial) error {
	return s.mutate(ctx, func(c *models.SiteContent) {
		c.Testimonials = testimonials
	})
}

// UpdateServices replaces the service cards
func (s *contentService) UpdateServices(ctx context.Context, services []models.SiteService) error {
	return s.mutate(ctx, func(c *models.SiteContent) {
		c.Services = services
	})
}

// UpdateAbout replaces the about-page copy
func (s *contentService) UpdateAbout(ctx context.Context, about models.AboutContent) error {
	return s.mutate(ctx, func(c *models.SiteContent) {
		c.About = about
	})
}

// UpdateQuoteFlavors replaces the flavor lists the wizard offers. Nil slices
// leave the corresponding list untouched.
func (s *contentService) UpdateQuoteFlavors(ctx context.Context, caipi, frozen []string) error {
	return s.mutate(ctx, func(c *models.SiteContent) {
		if caipi != nil {
			c.CaipiFlavors = caipi
		}
		if frozen != nil {
			c.FrozenFlavors = frozen
		}
	})
}

// mutate is the read-modify-write cycle every content update goes through.
// Last write wins; there is no optimistic-concurrency check.
func (s *contentService) mutate(ctx context.Context, fn func(*models.SiteContent)) error {
	content, err := s.contentRepo.Get(ctx)
	if err != nil {
		return err
	}
	fn(content)
	return s.contentRepo.Update(ctx, content)
}

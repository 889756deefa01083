package services

import (
	"context"
	"errors"

	"github.com/biribar/biribar-backend/internal/models"
	"github.com/biribar/biribar-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrInvalidLeadStatus is returned when a status update names an unknown
// status value.
var ErrInvalidLeadStatus = errors.New("invalid lead status")

// LeadService defines the interface for dashboard lead management
type LeadService interface {
	GetAllLeads(ctx context.Context) ([]models.Lead, error)
	GetLeadsByStatus(ctx context.Context, status models.LeadStatus) ([]models.Lead, error)
	GetLeadByID(ctx context.Context, id primitive.ObjectID) (*models.Lead, error)
	UpdateLeadStatus(ctx context.Context, id primitive.ObjectID, status models.LeadStatus) error
	DeleteLead(ctx context.Context, id primitive.ObjectID) error
}

type leadService struct {
	leadRepo repositories.LeadRepository
}

// NewLeadService creates a new LeadService implementation
func NewLeadService(leadRepo repositories.LeadRepository) LeadService {
	return &leadService{leadRepo: leadRepo}
}

// GetAllLeads returns every lead, newest first
func (s *leadService) GetAllLeads(ctx context.Context) ([]models.Lead, error) {
	return s.leadRepo.FindAll(ctx)
}

// GetLeadsByStatus returns the leads with the given status
func (s *leadService) GetLeadsByStatus(ctx context.Context, status models.LeadStatus) ([]models.Lead, error) {
	if !validLeadStatus(status) {
		return nil, ErrInvalidLeadStatus
	}
	return s.leadRepo.FindByStatus(ctx, status)
}

// GetLeadByID returns a single lead
func (s *leadService) GetLeadByID(ctx context.Context, id primitive.ObjectID) (*models.Lead, error) {
	return s.leadRepo.FindByID(ctx, id)
}

// UpdateLeadStatus moves a lead between Pending, Approved and Archived
func (s *leadService) UpdateLeadStatus(ctx context.Context, id primitive.ObjectID, status models.LeadStatus) error {
	if !validLeadStatus(status) {
		return ErrInvalidLeadStatus
	}
	return s.leadRepo.UpdateStatus(ctx, id, status)
}

// DeleteLead removes a lead
func (s *leadService) DeleteLead(ctx context.Context, id primitive.ObjectID) error {
	return s.leadRepo.Delete(ctx, id)
}

func validLeadStatus(status models.LeadStatus) bool {
	switch status {
	case models.LeadStatusPending, models.LeadStatusApproved, models.LeadStatusArchived:
		return true
	}
	return false
}

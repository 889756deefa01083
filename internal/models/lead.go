package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// LeadStatus represents the review status of a lead
type LeadStatus string

const (
	LeadStatusPending  LeadStatus = "PENDING"
	LeadStatusApproved LeadStatus = "APPROVED"
	LeadStatusArchived LeadStatus = "ARCHIVED"
)

// Lead is a submitted quote request awaiting staff review. It is created once
// at wizard completion with the computed total frozen in; afterwards staff
// only change its status or delete it.
type Lead struct {
	ID            primitive.ObjectID   `bson:"_id,omitempty" json:"id,omitempty"`
	Name          string               `bson:"name" json:"name"`
	Phone         string               `bson:"phone" json:"phone"`
	Guests        string               `bson:"guests" json:"guests"`
	Location      string               `bson:"location" json:"location"`
	Date          string               `bson:"date" json:"date"`
	Time          string               `bson:"time" json:"time"`
	Duration      string               `bson:"duration" json:"duration"`
	NeedsCounter  bool                 `bson:"needsCounter" json:"needsCounter"`
	CupType       CupType              `bson:"cupType" json:"cupType"`
	GlassQuantity string               `bson:"glassQuantity,omitempty" json:"glassQuantity,omitempty"`
	PlanType      PlanType             `bson:"planType" json:"planType"`
	CaipiFlavors  []string             `bson:"caipiFlavors" json:"caipiFlavors"`
	FrozenFlavors []string             `bson:"frozenFlavors" json:"frozenFlavors"`
	SpecialDrinks []SpecialDrinkChoice `bson:"specialDrinks" json:"specialDrinks"`
	Labels        LabelSelections      `bson:"labels" json:"labels"`
	Total         float64              `bson:"total" json:"total"`
	Status        LeadStatus           `bson:"status" json:"status"`
	CreatedAt     time.Time            `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time            `bson:"updatedAt" json:"updatedAt"`
}

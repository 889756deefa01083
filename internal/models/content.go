package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Testimonial is a customer quote shown on the public site
type Testimonial struct {
	ID      string `bson:"id" json:"id"`
	Name    string `bson:"name" json:"name"`
	Role    string `bson:"role" json:"role"`
	Content string `bson:"content" json:"content"`
	Image   string `bson:"image" json:"image"`
}

// SiteService is one of the service cards on the public site
type SiteService struct {
	ID          string `bson:"id" json:"id"`
	IconName    string `bson:"iconName" json:"iconName"`
	Title       string `bson:"title" json:"title"`
	Description string `bson:"description" json:"description"`
	Image       string `bson:"image" json:"image"`
}

// AboutContent is the about-page copy
type AboutContent struct {
	History string   `bson:"history" json:"history"`
	Mission string   `bson:"mission" json:"mission"`
	Vision  string   `bson:"vision" json:"vision"`
	Values  []string `bson:"values" json:"values"`
}

// SiteContent is the singleton document holding everything the public site
// renders besides the catalog collections: gallery images, testimonials,
// service cards, about copy and the flavor lists the quote wizard offers.
type SiteContent struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Gallery       []string           `bson:"gallery" json:"gallery"`
	Testimonials  []Testimonial      `bson:"testimonials" json:"testimonials"`
	Services      []SiteService      `bson:"services" json:"services"`
	About         AboutContent       `bson:"about" json:"about"`
	CaipiFlavors  []string           `bson:"caipiFlavors" json:"caipiFlavors"`
	FrozenFlavors []string           `bson:"frozenFlavors" json:"frozenFlavors"`
	UpdatedAt     time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// Snapshot is the full read model served to the site and the dashboard.
// Screens fetch it wholesale, mutate one entity and write that entity back;
// there is no finer-grained caching contract.
type Snapshot struct {
	Pricing       *PricingConfig  `json:"pricing"`
	Inventory     []InventoryItem `json:"inventory"`
	Drinks        []Drink         `json:"drinks"`
	Leads         []Lead          `json:"leads"`
	CaipiFlavors  []string        `json:"caipiFlavors"`
	FrozenFlavors []string        `json:"frozenFlavors"`
	Gallery       []string        `json:"gallery"`
	Testimonials  []Testimonial   `json:"testimonials"`
	Services      []SiteService   `json:"services"`
	About         AboutContent    `json:"about"`
}

// DefaultSiteContent returns the seed content used when the store has no
// site content document yet.
func DefaultSiteContent() *SiteContent {
	return &SiteContent{
		Gallery:      []string{},
		Testimonials: []Testimonial{},
		Services:     []SiteService{},
		About: AboutContent{
			Values: []string{},
		},
		CaipiFlavors:  []string{"Limão", "Morango", "Abacaxi", "Pitaya", "Maracujá", "Kiwi", "Tangerina", "Uva Black"},
		FrozenFlavors: []string{"Morango", "Abacaxi", "Maracujá", "Menta", "Chiclete"},
	}
}

package models

// PlanType is one of the three quote tiers, each with its own base per-guest
// price. The wire values are kept from the original site.
type PlanType string

const (
	PlanAlcohol    PlanType = "com-alcool"
	PlanNonAlcohol PlanType = "sem-alcool"
	PlanMixed      PlanType = "misto"
)

// CupType selects between disposable cups and rented glassware
type CupType string

const (
	CupStandard CupType = "standard"
	CupGlass    CupType = "glass"
)

// SpecialDrinkChoice is a featured drink the customer picked as an add-on
type SpecialDrinkChoice struct {
	ID   string `bson:"id" json:"id"`
	Name string `bson:"name" json:"name"`
}

// LabelSelections groups the chosen spirit labels by family. Only vodka and
// gin choices can carry the premium surcharge.
type LabelSelections struct {
	Vodka   []string `bson:"vodka" json:"vodka"`
	Gin     []string `bson:"gin" json:"gin"`
	Cachaca []string `bson:"cachaca" json:"cachaca"`
}

// LabelOption is a single spirit brand the customer can pick
type LabelOption struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// LabelCatalog lists the brand choices per spirit family
type LabelCatalog struct {
	Vodka   []LabelOption `json:"vodka"`
	Gin     []LabelOption `json:"gin"`
	Cachaca []LabelOption `json:"cachaca"`
}

// DefaultLabelCatalog returns the brand choices offered on the labels step.
// The "(Premium)" marker in a name is what triggers the pricing surcharge.
func DefaultLabelCatalog() LabelCatalog {
	return LabelCatalog{
		Vodka: []LabelOption{
			{ID: "roskoff", Name: "Roskoff (Padrão)"},
			{ID: "skyy", Name: "Skyy (Premium)"},
		},
		Gin: []LabelOption{
			{ID: "rocks", Name: "Rocks (Padrão)"},
			{ID: "tanqueray", Name: "Tanqueray (Premium)"},
		},
		Cachaca: []LabelOption{
			{ID: "tatuzinho", Name: "Tatuzinho"},
			{ID: "velho-barreiro", Name: "Velho Barreiro"},
		},
	}
}

// QuoteOptions is everything the wizard needs to render its choice steps
type QuoteOptions struct {
	PlanTypes     []PlanType           `json:"planTypes"`
	CaipiFlavors  []string             `json:"caipiFlavors"`
	FrozenFlavors []string             `json:"frozenFlavors"`
	SpecialDrinks []SpecialDrinkChoice `json:"specialDrinks"`
	Labels        LabelCatalog         `json:"labels"`
}

// QuoteDraft is the transient state of the quote wizard. Numeric answers stay
// strings as entered; parse failures are normalized at estimate time, never
// rejected. A draft is only persisted (as a Lead) once every required step is
// complete.
type QuoteDraft struct {
	Name          string               `json:"name"`
	Phone         string               `json:"phone"`
	Guests        string               `json:"guests"`
	Location      string               `json:"location"`
	Date          string               `json:"date"`
	Time          string               `json:"time"`
	Duration      string               `json:"duration"`
	NeedsCounter  *bool                `json:"needsCounter"`
	CupType       CupType              `json:"cupType"`
	GlassQuantity string               `json:"glassQuantity"`
	PlanType      PlanType             `json:"planType"`
	CaipiFlavors  []string             `json:"caipiFlavors"`
	FrozenFlavors []string             `json:"frozenFlavors"`
	SpecialDrinks []SpecialDrinkChoice `json:"specialDrinks"`
	Labels        LabelSelections      `json:"labels"`
}

package domain

// Product is the canonical product shape the filter and the display layer work with.
// ProductType is assigned from the requested catalog segment, never from the raw
// record. LifeStage keeps the raw value; use LifeStageLabel for display.
type Product struct {
	ID           string          `json:"id,omitempty"`
	Name         string          `json:"name"`
	Description  string          `json:"description,omitempty"`
	ImageURL     string          `json:"image_url,omitempty"`
	ProductType  FoodType        `json:"product_type,omitempty"`
	PetType      PetType         `json:"pet_type,omitempty"`
	LifeStage    string          `json:"life_stage,omitempty"`
	ForPregnant  bool            `json:"for_pregnant"`
	ForLactation bool            `json:"for_lactation"`
	Benefits     BenefitList     `json:"benefits,omitempty"`
	SpecialCares SpecialCareList `json:"special_cares,omitempty"`
}

// DisplayID returns the product identifier, or the "-" placeholder when the
// catalog record carried none.
func (p Product) DisplayID() string {
	if p.ID == "" {
		return "-"
	}
	return p.ID
}

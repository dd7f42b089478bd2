package client

import (
	"encoding/json"
	"strings"

	"petfood/finder/internal/domain"

	log "github.com/sirupsen/logrus"
)

type productsResponse struct {
	Result *struct {
		Products map[string]rawProduct `json:"products"`
	} `json:"result"`
}

type specialCaresResponse struct {
	Result *struct {
		SpecialCares []struct {
			List []map[string]string `json:"list"`
		} `json:"specialCares"`
	} `json:"result"`
}

// rawProduct mirrors one catalog record as the API sends it. Image and pet
// type come in several alternate fields depending on record age; benefits and
// special cares arrive in heterogeneous shapes handled by the domain types.
type rawProduct struct {
	ID           flexID                 `json:"id"`
	Name         string                 `json:"name"`
	Description  string                 `json:"description"`
	Image        string                 `json:"image"`
	ImageURL     string                 `json:"imageUrl"`
	MainImage    string                 `json:"mainImage"`
	PetType      string                 `json:"petType"`
	LegacyType   string                 `json:"type"`
	LifeStages   map[string]string      `json:"lifeStages"`
	ForPregnant  bool                   `json:"forPregnant"`
	ForLactation bool                   `json:"forLactation"`
	Benefits     domain.BenefitList     `json:"benefits"`
	SpecialCares domain.SpecialCareList `json:"specialCares"`
}

// flexID tolerates records carrying numeric or string identifiers. Anything
// else decodes to empty, meaning "unknown".
type flexID string

func (f *flexID) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*f = flexID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err == nil {
		*f = flexID(n.String())
		return nil
	}

	*f = ""
	return nil
}

type catalogMapper struct{}

func newCatalogMapper() *catalogMapper {
	return &catalogMapper{}
}

// MapProduct converts one raw catalog record into the canonical shape. The
// product type comes from the requested food type, not from the record. The
// special-care field is carried through as-is; filtering and display normalize
// it later.
func (m *catalogMapper) MapProduct(raw rawProduct, foodType domain.FoodType) domain.Product {
	p := domain.Product{
		ID:           string(raw.ID),
		Name:         raw.Name,
		Description:  raw.Description,
		ImageURL:     firstNonEmpty(raw.Image, raw.ImageURL, raw.MainImage),
		ProductType:  foodType,
		PetType:      resolvePetType(raw),
		ForPregnant:  raw.ForPregnant,
		ForLactation: raw.ForLactation,
		Benefits:     raw.Benefits,
		SpecialCares: raw.SpecialCares,
	}

	// Records may list several life stages; a single one is shown. Which one
	// wins when there are several is implementation-defined.
	for _, stage := range raw.LifeStages {
		p.LifeStage = stage
		break
	}

	return p
}

// MapSpecialCares converts raw taxonomy records into {id, name} pairs, reading
// the species-prefixed fields (e.g. dogSpecialCareId / dogSpecialCareName).
func (m *catalogMapper) MapSpecialCares(list []map[string]string, petType domain.PetType) []domain.SpecialCareItem {
	idKey := petType.String() + "SpecialCareId"
	nameKey := petType.String() + "SpecialCareName"

	items := make([]domain.SpecialCareItem, 0, len(list))
	for _, record := range list {
		id := record[idKey]
		if id == "" {
			log.Warnf("Skipping special care record without %s field", idKey)
			continue
		}
		items = append(items, domain.SpecialCareItem{
			ID:   id,
			Name: record[nameKey],
		})
	}
	return items
}

func resolvePetType(raw rawProduct) domain.PetType {
	value := raw.PetType
	if value == "" {
		value = raw.LegacyType
	}

	switch strings.ToLower(value) {
	case "dog":
		return domain.PetTypeDog
	case "cat":
		return domain.PetTypeCat
	}
	return ""
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

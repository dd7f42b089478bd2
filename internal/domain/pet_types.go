package domain

// FoodType is the catalog segment a product belongs to.
type FoodType string

func (f FoodType) String() string {
	return string(f)
}

const (
	FoodTypeDry FoodType = "dry"
	FoodTypeWet FoodType = "wet"
)

var FoodTypes = []FoodType{
	FoodTypeDry,
	FoodTypeWet,
}

// DisplayLabel returns the label shown for a product's food type.
// Unrecognized or missing values fall back to "Other".
func (f FoodType) DisplayLabel() string {
	switch f {
	case FoodTypeDry:
		return "Dry food"
	case FoodTypeWet:
		return "Wet food"
	default:
		return "Other"
	}
}

// PetType is the species a product or special-care taxonomy is scoped to.
type PetType string

func (p PetType) String() string {
	return string(p)
}

const (
	PetTypeDog PetType = "dog"
	PetTypeCat PetType = "cat"
)

var PetTypes = []PetType{
	PetTypeDog,
	PetTypeCat,
}

// DisplayLabel returns the label shown for a product's species.
// Unrecognized or missing values fall back to the "-" placeholder.
func (p PetType) DisplayLabel() string {
	switch p {
	case PetTypeDog:
		return "Dog"
	case PetTypeCat:
		return "Cat"
	default:
		return "-"
	}
}

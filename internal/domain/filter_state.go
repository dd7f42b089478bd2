package domain

// FilterState is the single source of truth for both what to fetch and how to
// filter the loaded catalog. Mutate it only through its methods.
type FilterState struct {
	FoodType    FoodType
	PetType     PetType
	IsPregnant  bool
	IsLactating bool
	LifeStage   string
	SpecialCare map[string]struct{}
	SearchTerm  string
}

// NewFilterState returns the default state: dry food for dogs, no other
// criteria enabled.
func NewFilterState() FilterState {
	return FilterState{
		FoodType:    FoodTypeDry,
		PetType:     PetTypeDog,
		SpecialCare: make(map[string]struct{}),
	}
}

// SetPetType switches the species. Changing species drops every selected
// special-care id: the taxonomy is species-scoped and ids from the previous
// species are meaningless.
func (f *FilterState) SetPetType(petType PetType) {
	if petType != f.PetType {
		f.SpecialCare = make(map[string]struct{})
	}
	f.PetType = petType
}

// ToggleSpecialCare selects the id if unselected and deselects it otherwise.
func (f *FilterState) ToggleSpecialCare(id string) {
	if f.SpecialCare == nil {
		f.SpecialCare = make(map[string]struct{})
	}
	if _, ok := f.SpecialCare[id]; ok {
		delete(f.SpecialCare, id)
		return
	}
	f.SpecialCare[id] = struct{}{}
}

// Clone returns an independent copy, including the selected special-care set.
func (f FilterState) Clone() FilterState {
	out := f
	out.SpecialCare = make(map[string]struct{}, len(f.SpecialCare))
	for id := range f.SpecialCare {
		out.SpecialCare[id] = struct{}{}
	}
	return out
}

package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewFilterState(t *testing.T) {
	f := NewFilterState()
	assert.Equal(t, FoodTypeDry, f.FoodType)
	assert.Equal(t, PetTypeDog, f.PetType)
	assert.False(t, f.IsPregnant)
	assert.False(t, f.IsLactating)
	assert.Empty(t, f.LifeStage)
	assert.Empty(t, f.SearchTerm)
	assert.Empty(t, f.SpecialCare)
}

func TestFilterState_SetPetType(t *testing.T) {
	t.Run("changing species clears selected special care ids", func(t *testing.T) {
		f := NewFilterState()
		f.ToggleSpecialCare("1")
		f.ToggleSpecialCare("2")
		assert.Len(t, f.SpecialCare, 2)

		f.SetPetType(PetTypeCat)
		assert.Equal(t, PetTypeCat, f.PetType)
		assert.Empty(t, f.SpecialCare)
	})

	t.Run("re-setting the same species keeps selections", func(t *testing.T) {
		f := NewFilterState()
		f.ToggleSpecialCare("1")

		f.SetPetType(PetTypeDog)
		assert.Len(t, f.SpecialCare, 1)
	})
}

func TestFilterState_ToggleSpecialCare(t *testing.T) {
	f := NewFilterState()

	f.ToggleSpecialCare("1")
	assert.Contains(t, f.SpecialCare, "1")

	f.ToggleSpecialCare("1")
	assert.NotContains(t, f.SpecialCare, "1")

	// Toggling on a zero-value state must not panic.
	var zero FilterState
	zero.ToggleSpecialCare("1")
	assert.Contains(t, zero.SpecialCare, "1")
}

func TestFilterState_Clone(t *testing.T) {
	f := NewFilterState()
	f.ToggleSpecialCare("1")

	clone := f.Clone()
	clone.ToggleSpecialCare("2")

	assert.Len(t, f.SpecialCare, 1)
	assert.Len(t, clone.SpecialCare, 2)
}

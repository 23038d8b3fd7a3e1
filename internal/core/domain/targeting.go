package domain

import "slices"

// GenderAll selects every gender; any other value narrows the audience.
const GenderAll = "all"

// Targeting describes who should see a campaign.
type Targeting struct {
	AgeMin    int      `json:"ageMin" validate:"gte=13,lte=65"`
	AgeMax    int      `json:"ageMax" validate:"gte=13,lte=65,gtefield=AgeMin"`
	Genders   []string `json:"genders" validate:"min=1,dive,oneof=all male female 1 2"`
	Locations []string `json:"locations" validate:"min=1,dive,len=2"`
	Interests []string `json:"interests,omitempty"`
	Behaviors []string `json:"behaviors,omitempty"`
}

// DefaultTargeting is what a fresh draft starts with.
func DefaultTargeting() Targeting {
	return Targeting{
		AgeMin:    18,
		AgeMax:    65,
		Genders:   []string{GenderAll},
		Locations: []string{"US"},
	}
}

// AllGenders reports whether the gender selection is unrestricted.
func (t Targeting) AllGenders() bool {
	return slices.Contains(t.Genders, GenderAll)
}

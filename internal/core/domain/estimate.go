package domain

import "math"

// Estimates are rough presentation figures derived from a draft. They
// are never fetched from or sent to the platform and carry no accuracy
// guarantee; Estimated is always true so clients can label them.
type Estimates struct {
	Estimated      bool    `json:"estimated"`
	AudienceSize   int64   `json:"audienceSize"`
	Reach          int64   `json:"reach"`
	Impressions    int64   `json:"impressions"`
	ProjectedSpend float64 `json:"projectedSpend"`
	DurationDays   *int    `json:"durationDays,omitempty"`
}

// Placeholder heuristics; none of these constants are calibrated.
const (
	audiencePerLocation = 1_000_000
	ageSpan             = 52
	singleGenderFactor  = 0.5
	interestFactor      = 0.3
	behaviorFactor      = 0.2
	reachPerUnit        = 1000
	impressionsPerUnit  = 1500
	dailyProjectionDays = 30
)

// EstimateAudience applies the multiplicative narrowing heuristic to a
// targeting selection.
func EstimateAudience(t Targeting) int64 {
	if len(t.Locations) == 0 || t.AgeMax < t.AgeMin {
		return 0
	}
	size := float64(len(t.Locations)) * audiencePerLocation * (float64(t.AgeMax-t.AgeMin) / ageSpan)
	if !t.AllGenders() {
		size *= singleGenderFactor
	}
	if len(t.Interests) > 0 {
		size *= interestFactor
	}
	if len(t.Behaviors) > 0 {
		size *= behaviorFactor
	}
	return int64(math.Floor(size))
}

// EstimateReach is linear in the budget amount.
func EstimateReach(budget float64) int64 {
	if budget <= 0 {
		return 0
	}
	return int64(math.Floor(budget * reachPerUnit))
}

// EstimateImpressions is linear in the budget amount.
func EstimateImpressions(budget float64) int64 {
	if budget <= 0 {
		return 0
	}
	return int64(math.Floor(budget * impressionsPerUnit))
}

// ProjectedSpend is the lifetime budget, or a daily budget over 30 days.
func ProjectedSpend(bt BudgetType, budget float64) float64 {
	if budget <= 0 {
		return 0
	}
	if bt == BudgetDaily {
		return budget * dailyProjectionDays
	}
	return budget
}

// Estimate computes all estimates for a draft.
func Estimate(d *Draft) Estimates {
	e := Estimates{
		Estimated:      true,
		AudienceSize:   EstimateAudience(d.Targeting),
		Reach:          EstimateReach(d.Budget.Budget),
		Impressions:    EstimateImpressions(d.Budget.Budget),
		ProjectedSpend: ProjectedSpend(d.Budget.BudgetType, d.Budget.Budget),
	}
	if s, end := d.Budget.StartTime, d.Budget.EndTime; s != nil && end != nil && end.After(*s) {
		days := int(math.Ceil(end.Sub(*s).Hours() / 24))
		e.DurationDays = &days
	}
	return e
}

package domain

import "time"

// Metric is one day of delivery statistics for a campaign.
type Metric struct {
	ID          string  `json:"id,omitempty"`
	CampaignID  string  `json:"campaignId"`
	Date        string  `json:"date"`
	Impressions int64   `json:"impressions"`
	Clicks      int64   `json:"clicks"`
	Spend       float64 `json:"spend"`
	Conversions int64   `json:"conversions"`
	CTR         float64 `json:"ctr"`
	CPC         float64 `json:"cpc"`
	CPM         float64 `json:"cpm"`
	ROAS        float64 `json:"roas"`
}

// MetricsFilter selects which metrics are fetched.
type MetricsFilter struct {
	CampaignID  string
	CampaignIDs []string
	Range       *DateRange
	Limit       int
}

// MetricsSummary aggregates a set of metrics. Averages are derived from
// totals, not averaged per row.
type MetricsSummary struct {
	TotalImpressions int64   `json:"totalImpressions"`
	TotalClicks      int64   `json:"totalClicks"`
	TotalSpend       float64 `json:"totalSpend"`
	TotalConversions int64   `json:"totalConversions"`
	AverageCTR       float64 `json:"averageCTR"`
	AverageCPC       float64 `json:"averageCPC"`
	AverageCPM       float64 `json:"averageCPM"`
	AverageROAS      float64 `json:"averageROAS"`
}

// Summarize folds metrics into a MetricsSummary. ROAS is averaged over
// rows with spend, weighted by spend.
func Summarize(metrics []Metric) MetricsSummary {
	var (
		s       MetricsSummary
		revenue float64
	)
	for _, m := range metrics {
		s.TotalImpressions += m.Impressions
		s.TotalClicks += m.Clicks
		s.TotalSpend += m.Spend
		s.TotalConversions += m.Conversions
		revenue += m.ROAS * m.Spend
	}
	s.AverageCTR = CTR(s.TotalClicks, s.TotalImpressions)
	s.AverageCPC = CPC(s.TotalSpend, s.TotalClicks)
	s.AverageCPM = CPM(s.TotalSpend, s.TotalImpressions)
	if s.TotalSpend > 0 {
		s.AverageROAS = revenue / s.TotalSpend
	}
	return s
}

// CTR is the click-through rate in percent.
func CTR(clicks, impressions int64) float64 {
	if impressions == 0 {
		return 0
	}
	return float64(clicks) / float64(impressions) * 100
}

// CPC is the average cost per click.
func CPC(spend float64, clicks int64) float64 {
	if clicks == 0 {
		return 0
	}
	return spend / float64(clicks)
}

// CPM is the cost per thousand impressions.
func CPM(spend float64, impressions int64) float64 {
	if impressions == 0 {
		return 0
	}
	return spend / float64(impressions) * 1000
}

const dateLayout = time.DateOnly

// DateRange is an inclusive range of calendar days.
type DateRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// NewDateRange builds a range from two instants, keeping only the dates.
func NewDateRange(start, end time.Time) DateRange {
	return DateRange{Start: start.Format(dateLayout), End: end.Format(dateLayout)}
}

// ParseDateRange validates start and end as YYYY-MM-DD with start <= end.
func ParseDateRange(start, end string) (DateRange, error) {
	s, err := time.Parse(dateLayout, start)
	if err != nil {
		return DateRange{}, &ValidationError{Fields: []FieldError{{Field: "start", Message: "Start date must be YYYY-MM-DD"}}}
	}
	e, err := time.Parse(dateLayout, end)
	if err != nil {
		return DateRange{}, &ValidationError{Fields: []FieldError{{Field: "end", Message: "End date must be YYYY-MM-DD"}}}
	}
	if e.Before(s) {
		return DateRange{}, &ValidationError{Fields: []FieldError{{Field: "end", Message: "End date must not be before start date"}}}
	}
	return DateRange{Start: start, End: end}, nil
}

// DateRangeFor resolves a named preset relative to now. Unknown presets
// fall back to the last 7 days.
func DateRangeFor(preset string, now time.Time) DateRange {
	day := 24 * time.Hour
	switch preset {
	case "today":
		return NewDateRange(now, now)
	case "yesterday":
		y := now.Add(-day)
		return NewDateRange(y, y)
	case "last30days":
		return NewDateRange(now.Add(-30*day), now)
	case "thisMonth":
		first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		return NewDateRange(first, now)
	case "lastMonth":
		first := time.Date(now.Year(), now.Month()-1, 1, 0, 0, 0, 0, now.Location())
		last := time.Date(now.Year(), now.Month(), 0, 0, 0, 0, 0, now.Location())
		return NewDateRange(first, last)
	default:
		return NewDateRange(now.Add(-7*day), now)
	}
}

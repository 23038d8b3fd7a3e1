package domain

import (
	"encoding/json"
	"time"
)

// Page is a Facebook page connected to the platform.
type Page struct {
	ID       string `json:"id"`
	PageID   string `json:"pageId,omitempty"`
	Name     string `json:"pageName"`
	Category string `json:"pageCategory,omitempty"`
	FanCount int64  `json:"fanCount"`
	URL      string `json:"pageUrl,omitempty"`
}

// PageInsight is one metric series as reported by the Graph API. Values
// are kept raw because some metrics break down by key.
type PageInsight struct {
	Name        string             `json:"name"`
	Period      string             `json:"period"`
	Title       string             `json:"title,omitempty"`
	Description string             `json:"description,omitempty"`
	Values      []PageInsightValue `json:"values"`
}

type PageInsightValue struct {
	Value   json.RawMessage `json:"value"`
	EndTime *time.Time      `json:"end_time,omitempty"`
}

// InsightsQuery selects page metrics. Empty fields use the platform
// defaults.
type InsightsQuery struct {
	Metrics []string `json:"metrics" validate:"omitempty,dive,required"`
	Period  string   `json:"period" validate:"omitempty,oneof=day week days_28 month lifetime total_over_range"`
}

// PagePostInput publishes a post on a page.
type PagePostInput struct {
	Message  string `json:"message" validate:"required"`
	ImageURL string `json:"imageUrl,omitempty" validate:"omitempty,url"`
}

// PagePost is a published page post.
type PagePost struct {
	ID       string `json:"id"`
	Message  string `json:"message,omitempty"`
	ImageURL string `json:"imageUrl,omitempty"`
}

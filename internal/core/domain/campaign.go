package domain

import (
	"strings"
	"time"
)

// Objective is the goal a campaign optimises for.
type Objective string

const (
	ObjectiveAwareness    Objective = "OUTCOME_AWARENESS"
	ObjectiveTraffic      Objective = "OUTCOME_TRAFFIC"
	ObjectiveEngagement   Objective = "OUTCOME_ENGAGEMENT"
	ObjectiveLeads        Objective = "OUTCOME_LEADS"
	ObjectiveAppPromotion Objective = "OUTCOME_APP_PROMOTION"
	ObjectiveSales        Objective = "OUTCOME_SALES"
)

var objectiveLabels = map[Objective]string{
	ObjectiveAwareness:    "Brand Awareness",
	ObjectiveTraffic:      "Traffic",
	ObjectiveEngagement:   "Engagement",
	ObjectiveLeads:        "Lead Generation",
	ObjectiveAppPromotion: "App Promotion",
	ObjectiveSales:        "Sales",
}

// Valid reports whether o is one of the known objectives.
func (o Objective) Valid() bool {
	_, ok := objectiveLabels[o]
	return ok
}

// Label returns the display name, or the raw value without its OUTCOME_
// prefix for unknown objectives.
func (o Objective) Label() string {
	if l, ok := objectiveLabels[o]; ok {
		return l
	}
	return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(string(o), "OUTCOME_")), "_", " ")
}

// CampaignStatus is the delivery state of a campaign. Campaigns are never
// removed by the dashboard; deletion is the DELETED status.
type CampaignStatus string

const (
	StatusActive   CampaignStatus = "ACTIVE"
	StatusPaused   CampaignStatus = "PAUSED"
	StatusDeleted  CampaignStatus = "DELETED"
	StatusArchived CampaignStatus = "ARCHIVED"
)

// Valid reports whether s is a known status.
func (s CampaignStatus) Valid() bool {
	switch s {
	case StatusActive, StatusPaused, StatusDeleted, StatusArchived:
		return true
	}
	return false
}

// BudgetType tells whether Budget is spent per day or over the whole run.
type BudgetType string

const (
	BudgetDaily    BudgetType = "DAILY"
	BudgetLifetime BudgetType = "LIFETIME"
)

// AccountSummary is the slice of the owning account embedded in campaign
// responses.
type AccountSummary struct {
	ID          string `json:"id"`
	AccountName string `json:"accountName"`
	Currency    string `json:"currency"`
}

// Campaign represents an advertising campaign as returned by the platform.
// Budgets are in the account currency's major unit.
type Campaign struct {
	ID             string          `json:"id"`
	MetaAccountID  string          `json:"metaAccountId,omitempty"`
	MetaCampaignID string          `json:"metaCampaignId,omitempty"`
	Name           string          `json:"name"`
	Objective      Objective       `json:"objective"`
	Status         CampaignStatus  `json:"status"`
	BudgetType     BudgetType      `json:"budgetType"`
	Budget         float64         `json:"budget,omitempty"`
	StartTime      *time.Time      `json:"startTime,omitempty"`
	EndTime        *time.Time      `json:"endTime,omitempty"`
	Targeting      *Targeting      `json:"targeting,omitempty"`
	Placements     []string        `json:"placements,omitempty"`
	Creative       *Creative       `json:"creative,omitempty"`
	Account        *AccountSummary `json:"MetaAccount,omitempty"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`
}

// CreateCampaignRequest is the composite payload sent once the builder is
// complete. Field names follow the platform API.
type CreateCampaignRequest struct {
	MetaAccountID  string     `json:"metaAccountId"`
	Name           string     `json:"name"`
	Objective      Objective  `json:"objective"`
	Budget         float64    `json:"budget"`
	BudgetType     BudgetType `json:"budgetType"`
	StartTime      *time.Time `json:"startTime,omitempty"`
	EndTime        *time.Time `json:"endTime,omitempty"`
	Targeting      Targeting  `json:"targeting"`
	Placements     []string   `json:"placements"`
	AdName         string     `json:"adName"`
	AdText         string     `json:"adText"`
	Headline       string     `json:"headline"`
	Description    string     `json:"description,omitempty"`
	CallToAction   string     `json:"callToAction"`
	DestinationURL string     `json:"destinationUrl"`
	ImageURL       string     `json:"imageUrl,omitempty"`
}

// CampaignFilter narrows campaign listings. Status and MetaAccountID are
// forwarded to the platform; Search matches names locally.
type CampaignFilter struct {
	Status        CampaignStatus
	MetaAccountID string
	Search        string
}

// Matches applies the local part of the filter.
func (f CampaignFilter) Matches(c Campaign) bool {
	if f.Status != "" && c.Status != f.Status {
		return false
	}
	if f.Search != "" && !strings.Contains(strings.ToLower(c.Name), strings.ToLower(f.Search)) {
		return false
	}
	return true
}

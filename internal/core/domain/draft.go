package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Step is a 1-based position in the campaign builder.
type Step int

const (
	StepBasics Step = iota + 1
	StepBudget
	StepTargeting
	StepCreative
	StepReview
)

// StepCount is the number of builder steps.
const StepCount = int(StepReview)

var stepNames = [...]string{"", "basics", "budget", "targeting", "creative", "review"}

func (s Step) String() string {
	if s < StepBasics || s > StepReview {
		return "unknown"
	}
	return stepNames[s]
}

// ParseStep resolves a step by name.
func ParseStep(name string) (Step, bool) {
	for i := StepBasics; i <= StepReview; i++ {
		if stepNames[i] == name {
			return i, true
		}
	}
	return 0, false
}

// DraftStatus tracks a draft through submission.
type DraftStatus string

const (
	DraftEditing    DraftStatus = "editing"
	DraftSubmitting DraftStatus = "submitting"
	DraftSubmitted  DraftStatus = "submitted"
)

// BasicsSection is filled by the first step.
type BasicsSection struct {
	MetaAccountID string    `json:"metaAccountId" validate:"required"`
	Name          string    `json:"name" validate:"required,max=255"`
	Objective     Objective `json:"objective" validate:"required,objective"`
}

// BudgetSection holds budget and schedule.
type BudgetSection struct {
	BudgetType BudgetType `json:"budgetType" validate:"required,oneof=DAILY LIFETIME"`
	Budget     float64    `json:"budget" validate:"gt=0"`
	StartTime  *time.Time `json:"startTime,omitempty"`
	EndTime    *time.Time `json:"endTime,omitempty"`
}

// CreativeSection holds placements and the ad itself.
type CreativeSection struct {
	Placements []string `json:"placements" validate:"min=1,dive,placement"`
	Creative
}

// Draft is the single record every builder step reads from and writes
// to. Steps only ever replace their own section, so moving backwards
// never loses input.
type Draft struct {
	ID        uuid.UUID       `json:"id"`
	UserID    string          `json:"userId"`
	Step      Step            `json:"step"`
	Status    DraftStatus     `json:"status"`
	Basics    BasicsSection   `json:"basics"`
	Budget    BudgetSection   `json:"budget"`
	Targeting Targeting       `json:"targeting"`
	Creative  CreativeSection `json:"creative"`
	// CampaignID is set once the platform accepted the submission.
	CampaignID string    `json:"campaignId,omitempty"`
	LastError  string    `json:"lastError,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// NewDraft starts a draft on the first step with the builder defaults.
func NewDraft(userID string, now time.Time) *Draft {
	return &Draft{
		ID:        uuid.New(),
		UserID:    userID,
		Step:      StepBasics,
		Status:    DraftEditing,
		Budget:    BudgetSection{BudgetType: BudgetDaily},
		Targeting: DefaultTargeting(),
		Creative: CreativeSection{
			Placements: []string{"facebook", "instagram"},
			Creative:   Creative{CallToAction: "LEARN_MORE"},
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (d *Draft) editable() error {
	switch d.Status {
	case DraftSubmitting:
		return ErrSubmissionInProgress
	case DraftSubmitted:
		return ErrDraftSubmitted
	}
	return nil
}

// ApplyBasics replaces the basics section.
func (d *Draft) ApplyBasics(b BasicsSection) error {
	if err := d.editable(); err != nil {
		return err
	}
	d.Basics = b
	return nil
}

// ApplyBudget replaces the budget and schedule section.
func (d *Draft) ApplyBudget(b BudgetSection) error {
	if err := d.editable(); err != nil {
		return err
	}
	d.Budget = b
	return nil
}

// ApplyTargeting replaces the targeting section.
func (d *Draft) ApplyTargeting(t Targeting) error {
	if err := d.editable(); err != nil {
		return err
	}
	d.Targeting = t
	return nil
}

// ApplyCreative replaces placements and creative.
func (d *Draft) ApplyCreative(c CreativeSection) error {
	if err := d.editable(); err != nil {
		return err
	}
	d.Creative = c
	return nil
}

// ValidateStep checks the required fields of one step. The review step
// has no fields of its own and validates every other step.
func (d *Draft) ValidateStep(s Step) error {
	switch s {
	case StepBasics:
		return Validate(d.Basics)
	case StepBudget:
		if err := Validate(d.Budget); err != nil {
			return err
		}
		return d.Budget.validateSchedule()
	case StepTargeting:
		return Validate(d.Targeting)
	case StepCreative:
		return Validate(d.Creative)
	case StepReview:
		var all ValidationError
		for st := StepBasics; st < StepReview; st++ {
			err := d.ValidateStep(st)
			if err == nil {
				continue
			}
			ve, ok := AsValidation(err)
			if !ok {
				return err
			}
			all.Fields = append(all.Fields, ve.Fields...)
		}
		if len(all.Fields) > 0 {
			all.Message = "validation failed"
			return &all
		}
		return nil
	}
	return ErrStepOutOfRange
}

func (b BudgetSection) validateSchedule() error {
	if b.StartTime != nil && b.EndTime != nil && !b.EndTime.After(*b.StartTime) {
		return &ValidationError{
			Message: "validation failed",
			Fields:  []FieldError{{Field: "endTime", Message: "End date must be after the start date"}},
		}
	}
	return nil
}

// Next advances one step if the current step validates. The step index is
// left untouched on any error.
func (d *Draft) Next() error {
	if err := d.editable(); err != nil {
		return err
	}
	if d.Step >= StepReview {
		return ErrStepOutOfRange
	}
	if err := d.ValidateStep(d.Step); err != nil {
		return err
	}
	d.Step++
	return nil
}

// Previous moves back one step. It is a no-op on the first step.
func (d *Draft) Previous() error {
	if err := d.editable(); err != nil {
		return err
	}
	if d.Step > StepBasics {
		d.Step--
	}
	return nil
}

// Request merges every section into the payload sent to the platform. It
// is only available on the review step.
func (d *Draft) Request() (CreateCampaignRequest, error) {
	if d.Step != StepReview {
		return CreateCampaignRequest{}, ErrStepOutOfRange
	}
	if err := d.ValidateStep(StepReview); err != nil {
		return CreateCampaignRequest{}, err
	}
	c := d.Creative
	return CreateCampaignRequest{
		MetaAccountID:  d.Basics.MetaAccountID,
		Name:           d.Basics.Name,
		Objective:      d.Basics.Objective,
		Budget:         d.Budget.Budget,
		BudgetType:     d.Budget.BudgetType,
		StartTime:      d.Budget.StartTime,
		EndTime:        d.Budget.EndTime,
		Targeting:      d.Targeting,
		Placements:     append([]string(nil), c.Placements...),
		AdName:         c.AdName,
		AdText:         c.AdText,
		Headline:       c.Headline,
		Description:    c.Description,
		CallToAction:   c.CallToAction,
		DestinationURL: c.DestinationURL,
		ImageURL:       c.ImageURL,
	}, nil
}

// BeginSubmit builds the request and marks the draft as submitting.
func (d *Draft) BeginSubmit() (CreateCampaignRequest, error) {
	if err := d.editable(); err != nil {
		return CreateCampaignRequest{}, err
	}
	req, err := d.Request()
	if err != nil {
		return CreateCampaignRequest{}, err
	}
	d.Status = DraftSubmitting
	d.LastError = ""
	return req, nil
}

// CompleteSubmit records the created campaign.
func (d *Draft) CompleteSubmit(campaignID string) {
	d.Status = DraftSubmitted
	d.CampaignID = campaignID
	d.LastError = ""
}

// FailSubmit returns the draft to editing with every field intact.
func (d *Draft) FailSubmit(err error) {
	d.Status = DraftEditing
	d.LastError = SubmitErrorMessage(err)
}

// SubmitErrorMessage is the single top-level message shown for a failed
// submission.
func SubmitErrorMessage(err error) string {
	if ve, ok := AsValidation(err); ok && len(ve.Fields) > 0 {
		return ve.Fields[0].Message
	}
	if errors.Is(err, ErrUnauthorized) {
		return "Your session has expired. Please log in again."
	}
	return "Failed to create campaign. Please try again."
}

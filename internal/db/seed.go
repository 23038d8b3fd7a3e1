package db

import (
	"context"
	"fmt"
	"time"

	"ads-manager/internal/core/domain"
	"ads-manager/internal/core/port"
)

// Seed stores demo drafts for userID, one parked on each editable step,
// so a local dashboard has something to resume.
func Seed(ctx context.Context, drafts port.DraftRepository, userID string) error {
	now := time.Now().UTC()
	for step := domain.StepBasics; step <= domain.StepReview; step++ {
		d := domain.NewDraft(userID, now)
		d.Basics = domain.BasicsSection{
			MetaAccountID: "demo-account",
			Name:          fmt.Sprintf("Demo campaign %d", step),
			Objective:     domain.ObjectiveTraffic,
		}
		d.Budget.Budget = float64(step) * 25
		d.Creative.Creative = domain.Creative{
			AdName:         fmt.Sprintf("Demo ad %d", step),
			Headline:       "Try it today",
			AdText:         "A demo ad created by the seeder.",
			CallToAction:   "LEARN_MORE",
			DestinationURL: "https://example.com/landing",
		}
		d.Step = step
		if err := drafts.Create(ctx, d); err != nil {
			return fmt.Errorf("seed draft %d: %w", step, err)
		}
	}
	return nil
}

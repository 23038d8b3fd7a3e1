package usecase

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"ads-manager/internal/adapter/cache"
	"ads-manager/internal/core/domain"
	"ads-manager/internal/core/port/mocks"
)

type builderFixture struct {
	api    *mocks.MockPlatformAPI
	drafts *draftStore
	svc    *BuilderService
	sess   *domain.Session
}

func newBuilderFixture(t *testing.T) *builderFixture {
	t.Helper()
	api := mocks.NewMockPlatformAPI(t)
	c := cache.NewMemoryCache()
	drafts := newDraftStore()
	accounts := NewAccountService(api, c, time.Minute, discardLogger())
	campaigns := NewCampaignService(api, c, time.Minute, 2, discardLogger())
	return &builderFixture{
		api:    api,
		drafts: drafts,
		svc:    NewBuilderService(drafts, accounts, campaigns, discardLogger()),
		sess:   testSession(),
	}
}

var (
	testBasics = domain.BasicsSection{MetaAccountID: "acc-1", Name: "Spring sale", Objective: domain.ObjectiveSales}
	testBudget = domain.BudgetSection{BudgetType: domain.BudgetDaily, Budget: 100}
	testAd     = domain.CreativeSection{
		Placements: []string{"facebook"},
		Creative: domain.Creative{
			AdName:         "Spring ad",
			Headline:       "Save 20%",
			AdText:         "Everything must go",
			CallToAction:   "SHOP_NOW",
			DestinationURL: "https://shop.example.com/spring",
		},
	}
)

// toReview walks a fresh draft through every step.
func (f *builderFixture) toReview(t *testing.T) *domain.Draft {
	t.Helper()
	f.api.EXPECT().ListAccounts(mock.Anything, f.sess.Token).
		Return([]domain.MetaAccount{{ID: "acc-1", Currency: "EUR"}}, nil).Maybe()

	ctx := context.Background()
	v, err := f.svc.Start(ctx, f.sess)
	require.NoError(t, err)
	id := v.ID

	_, err = f.svc.UpdateBasics(ctx, f.sess, id, testBasics)
	require.NoError(t, err)
	_, err = f.svc.Next(ctx, f.sess, id)
	require.NoError(t, err)
	_, err = f.svc.UpdateBudget(ctx, f.sess, id, testBudget)
	require.NoError(t, err)
	_, err = f.svc.Next(ctx, f.sess, id)
	require.NoError(t, err)
	_, err = f.svc.Next(ctx, f.sess, id)
	require.NoError(t, err)
	_, err = f.svc.UpdateCreative(ctx, f.sess, id, testAd)
	require.NoError(t, err)
	v, err = f.svc.Next(ctx, f.sess, id)
	require.NoError(t, err)
	require.Equal(t, domain.StepReview, v.Step)
	return v.Draft
}

func TestMissingNameKeepsStep(t *testing.T) {
	f := newBuilderFixture(t)
	f.api.EXPECT().ListAccounts(mock.Anything, f.sess.Token).Return(nil, nil).Maybe()
	ctx := context.Background()
	v, err := f.svc.Start(ctx, f.sess)
	require.NoError(t, err)

	_, err = f.svc.UpdateBasics(ctx, f.sess, v.ID, domain.BasicsSection{MetaAccountID: "acc-1", Objective: domain.ObjectiveTraffic})
	require.NoError(t, err)
	_, err = f.svc.Next(ctx, f.sess, v.ID)

	ve, ok := domain.AsValidation(err)
	require.True(t, ok, "expected validation error, got %v", err)
	assert.Equal(t, "name", ve.Fields[0].Field)

	got, err := f.svc.Get(ctx, f.sess, v.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StepBasics, got.Step)
}

func TestDraftViewCarriesEstimatesAndCurrency(t *testing.T) {
	f := newBuilderFixture(t)
	d := f.toReview(t)

	v, err := f.svc.Get(context.Background(), f.sess, d.ID)
	require.NoError(t, err)
	assert.Equal(t, "EUR", v.Currency)
	assert.True(t, v.Estimates.Estimated)
	assert.Equal(t, int64(100000), v.Estimates.Reach)
	assert.Equal(t, int64(150000), v.Estimates.Impressions)
	assert.Equal(t, 3000.0, v.Estimates.ProjectedSpend)
	assert.Equal(t, int64(903846), v.Estimates.AudienceSize)
}

func TestSubmitSendsUnionOfSteps(t *testing.T) {
	f := newBuilderFixture(t)
	d := f.toReview(t)

	f.api.EXPECT().CreateCampaign(mock.Anything, f.sess.Token, mock.Anything).
		RunAndReturn(func(_ context.Context, _ string, req domain.CreateCampaignRequest) (*domain.Campaign, error) {
			assert.Equal(t, testBasics.MetaAccountID, req.MetaAccountID)
			assert.Equal(t, testBasics.Name, req.Name)
			assert.Equal(t, testBasics.Objective, req.Objective)
			assert.Equal(t, testBudget.Budget, req.Budget)
			assert.Equal(t, testBudget.BudgetType, req.BudgetType)
			assert.Equal(t, domain.DefaultTargeting(), req.Targeting)
			assert.Equal(t, testAd.Placements, req.Placements)
			assert.Equal(t, testAd.Headline, req.Headline)
			assert.Equal(t, testAd.DestinationURL, req.DestinationURL)
			return &domain.Campaign{ID: "cmp-1", Name: req.Name, Status: domain.StatusPaused}, nil
		}).Once()

	cmp, err := f.svc.Submit(context.Background(), f.sess, d.ID)
	require.NoError(t, err)
	assert.Equal(t, "cmp-1", cmp.ID)

	stored, err := f.drafts.Get(context.Background(), d.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.DraftSubmitted, stored.Status)
	assert.Equal(t, "cmp-1", stored.CampaignID)

	_, err = f.svc.Submit(context.Background(), f.sess, d.ID)
	assert.ErrorIs(t, err, domain.ErrDraftSubmitted)
}

func TestSubmitFailureKeepsDraft(t *testing.T) {
	f := newBuilderFixture(t)
	d := f.toReview(t)
	f.api.EXPECT().CreateCampaign(mock.Anything, f.sess.Token, mock.Anything).
		Return(nil, &domain.TransientError{Op: "create campaign", StatusCode: 500, Err: errors.New("boom")})

	_, err := f.svc.Submit(context.Background(), f.sess, d.ID)
	assert.True(t, domain.IsTransient(err))

	stored, err := f.drafts.Get(context.Background(), d.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.DraftEditing, stored.Status)
	assert.Equal(t, domain.StepReview, stored.Step)
	assert.Equal(t, testBasics, stored.Basics)
	assert.Equal(t, testAd, stored.Creative)
	assert.Equal(t, "Failed to create campaign. Please try again.", stored.LastError)
}

func TestConcurrentSubmitRejected(t *testing.T) {
	f := newBuilderFixture(t)
	d := f.toReview(t)

	entered := make(chan struct{})
	release := make(chan struct{})
	f.api.EXPECT().CreateCampaign(mock.Anything, f.sess.Token, mock.Anything).
		RunAndReturn(func(context.Context, string, domain.CreateCampaignRequest) (*domain.Campaign, error) {
			close(entered)
			<-release
			return &domain.Campaign{ID: "cmp-1"}, nil
		}).Once()

	done := make(chan error, 1)
	go func() {
		_, err := f.svc.Submit(context.Background(), f.sess, d.ID)
		done <- err
	}()
	<-entered

	_, err := f.svc.Submit(context.Background(), f.sess, d.ID)
	assert.ErrorIs(t, err, domain.ErrSubmissionInProgress)
	_, err = f.svc.UpdateBasics(context.Background(), f.sess, d.ID, testBasics)
	assert.ErrorIs(t, err, domain.ErrSubmissionInProgress)

	close(release)
	require.NoError(t, <-done)
}

// gatedDrafts holds the next Get until release is closed.
type gatedDrafts struct {
	*draftStore
	armed   atomic.Bool
	entered chan struct{}
	release chan struct{}
}

func (g *gatedDrafts) Get(ctx context.Context, id uuid.UUID) (*domain.Draft, error) {
	if g.armed.CompareAndSwap(true, false) {
		close(g.entered)
		<-g.release
	}
	return g.draftStore.Get(ctx, id)
}

func TestSubmitDuringEditRejected(t *testing.T) {
	f := newBuilderFixture(t)
	d := f.toReview(t)

	gated := &gatedDrafts{draftStore: f.drafts, entered: make(chan struct{}), release: make(chan struct{})}
	gated.armed.Store(true)
	f.svc.drafts = gated

	renamed := testBasics
	renamed.Name = "Renamed"
	done := make(chan error, 1)
	go func() {
		_, err := f.svc.UpdateBasics(context.Background(), f.sess, d.ID, renamed)
		done <- err
	}()
	<-gated.entered

	_, err := f.svc.Submit(context.Background(), f.sess, d.ID)
	assert.ErrorIs(t, err, domain.ErrSubmissionInProgress)

	close(gated.release)
	require.NoError(t, <-done)

	var sent domain.CreateCampaignRequest
	f.api.EXPECT().CreateCampaign(mock.Anything, f.sess.Token, mock.Anything).
		RunAndReturn(func(_ context.Context, _ string, req domain.CreateCampaignRequest) (*domain.Campaign, error) {
			sent = req
			return &domain.Campaign{ID: "cmp-1"}, nil
		}).Once()
	_, err = f.svc.Submit(context.Background(), f.sess, d.ID)
	require.NoError(t, err)
	assert.Equal(t, "Renamed", sent.Name)

	stored, err := f.drafts.Get(context.Background(), d.ID)
	require.NoError(t, err)
	assert.Equal(t, "Renamed", stored.Basics.Name)
	assert.Equal(t, domain.DraftSubmitted, stored.Status)
}

func TestForeignDraftIsNotFound(t *testing.T) {
	f := newBuilderFixture(t)
	v, err := f.svc.Start(context.Background(), f.sess)
	require.NoError(t, err)

	other := testSession()
	other.UserID = "user-2"
	_, err = f.svc.Get(context.Background(), other, v.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestPurgeStale(t *testing.T) {
	f := newBuilderFixture(t)
	now := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	f.svc.now = func() time.Time { return now.Add(-48 * time.Hour) }
	old, err := f.svc.Start(context.Background(), f.sess)
	require.NoError(t, err)
	f.svc.now = func() time.Time { return now }
	fresh, err := f.svc.Start(context.Background(), f.sess)
	require.NoError(t, err)

	n, err := f.svc.PurgeStale(context.Background(), 24*time.Hour)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	_, err = f.drafts.Get(context.Background(), old.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = f.drafts.Get(context.Background(), fresh.ID)
	assert.NoError(t, err)
}

func TestStartReportsStorageFailure(t *testing.T) {
	repo := mocks.NewMockDraftRepository(t)
	repo.EXPECT().Create(mock.Anything, mock.AnythingOfType("*domain.Draft")).Return(errors.New("connection refused"))

	svc := NewBuilderService(repo, nil, nil, discardLogger())
	_, err := svc.Start(context.Background(), testSession())
	assert.ErrorContains(t, err, "create draft")
}

func TestPurgeStaleCutoff(t *testing.T) {
	repo := mocks.NewMockDraftRepository(t)
	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	repo.EXPECT().DeleteStale(mock.Anything, now.Add(-720*time.Hour)).Return(4, nil)

	svc := NewBuilderService(repo, nil, nil, discardLogger())
	svc.now = func() time.Time { return now }
	n, err := svc.PurgeStale(context.Background(), 720*time.Hour)
	require.NoError(t, err)
	assert.Equal(t, int64(4), n)
}

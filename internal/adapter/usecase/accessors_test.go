package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"ads-manager/internal/adapter/cache"
	"ads-manager/internal/core/domain"
	"ads-manager/internal/core/port/mocks"
)

func TestAccountListIsCached(t *testing.T) {
	api := mocks.NewMockPlatformAPI(t)
	sess := testSession()
	api.EXPECT().ListAccounts(mock.Anything, sess.Token).
		Return([]domain.MetaAccount{{ID: "a1", Currency: "USD"}}, nil).Once()

	svc := NewAccountService(api, cache.NewMemoryCache(), time.Minute, discardLogger())
	for range 3 {
		accounts, err := svc.List(context.Background(), sess)
		require.NoError(t, err)
		assert.Len(t, accounts, 1)
	}
}

func TestDisconnectRemovesAccountFromList(t *testing.T) {
	api := mocks.NewMockPlatformAPI(t)
	sess := testSession()
	api.EXPECT().ListAccounts(mock.Anything, sess.Token).
		Return([]domain.MetaAccount{{ID: "a1"}, {ID: "a2"}}, nil).Once()
	api.EXPECT().DisconnectAccount(mock.Anything, sess.Token, "a1").Return(nil).Once()
	api.EXPECT().ListAccounts(mock.Anything, sess.Token).
		Return([]domain.MetaAccount{{ID: "a2"}}, nil).Once()

	svc := NewAccountService(api, cache.NewMemoryCache(), time.Minute, discardLogger())
	before, err := svc.List(context.Background(), sess)
	require.NoError(t, err)
	require.Len(t, before, 2)

	require.NoError(t, svc.Disconnect(context.Background(), sess, "a1"))

	after, err := svc.List(context.Background(), sess)
	require.NoError(t, err)
	_, found := domain.FindAccount(after, "a1")
	assert.False(t, found)
}

func TestDisconnectFailureKeepsCache(t *testing.T) {
	api := mocks.NewMockPlatformAPI(t)
	sess := testSession()
	api.EXPECT().ListAccounts(mock.Anything, sess.Token).Return([]domain.MetaAccount{{ID: "a1"}}, nil).Once()
	api.EXPECT().DisconnectAccount(mock.Anything, sess.Token, "a1").
		Return(&domain.TransientError{Op: "disconnect account", StatusCode: 503, Err: errors.New("down")})

	svc := NewAccountService(api, cache.NewMemoryCache(), time.Minute, discardLogger())
	_, err := svc.List(context.Background(), sess)
	require.NoError(t, err)

	err = svc.Disconnect(context.Background(), sess, "a1")
	assert.True(t, domain.IsTransient(err))

	accounts, err := svc.List(context.Background(), sess)
	require.NoError(t, err)
	assert.Len(t, accounts, 1)
}

func TestStatusChangeVisibleOnNextRead(t *testing.T) {
	api := mocks.NewMockPlatformAPI(t)
	sess := testSession()
	api.EXPECT().GetCampaign(mock.Anything, sess.Token, "c1").
		Return(&domain.Campaign{ID: "c1", Status: domain.StatusActive}, nil).Once()
	api.EXPECT().UpdateCampaignStatus(mock.Anything, sess.Token, "c1", domain.StatusPaused).
		Return(&domain.Campaign{ID: "c1", Status: domain.StatusPaused}, nil)
	api.EXPECT().GetCampaign(mock.Anything, sess.Token, "c1").
		Return(&domain.Campaign{ID: "c1", Status: domain.StatusPaused}, nil).Once()

	svc := NewCampaignService(api, cache.NewMemoryCache(), time.Minute, 2, discardLogger())
	c, err := svc.Get(context.Background(), sess, "c1")
	require.NoError(t, err)
	require.Equal(t, domain.StatusActive, c.Status)

	_, err = svc.UpdateStatus(context.Background(), sess, "c1", domain.StatusPaused)
	require.NoError(t, err)

	c, err = svc.Get(context.Background(), sess, "c1")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPaused, c.Status)
}

func TestUpdateStatusRejectsUnknownValue(t *testing.T) {
	svc := NewCampaignService(mocks.NewMockPlatformAPI(t), cache.NewMemoryCache(), time.Minute, 2, discardLogger())

	_, err := svc.UpdateStatus(context.Background(), testSession(), "c1", "RUNNING")

	ve, ok := domain.AsValidation(err)
	require.True(t, ok)
	assert.Equal(t, "status", ve.Fields[0].Field)
}

func TestCampaignSearchIsLocalAndCaseInsensitive(t *testing.T) {
	api := mocks.NewMockPlatformAPI(t)
	sess := testSession()
	api.EXPECT().ListCampaigns(mock.Anything, sess.Token, domain.CampaignFilter{Status: domain.StatusActive}).
		Return([]domain.Campaign{
			{ID: "c1", Name: "Summer Sale", Status: domain.StatusActive},
			{ID: "c2", Name: "Winter promo", Status: domain.StatusActive},
		}, nil).Once()

	svc := NewCampaignService(api, cache.NewMemoryCache(), time.Minute, 2, discardLogger())
	got, err := svc.List(context.Background(), sess, domain.CampaignFilter{Status: domain.StatusActive, Search: "summer"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "c1", got[0].ID)

	got, err = svc.List(context.Background(), sess, domain.CampaignFilter{Status: domain.StatusActive, Search: "PROMO"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "c2", got[0].ID)
}

func TestBulkUpdateReportsEachFailure(t *testing.T) {
	api := mocks.NewMockPlatformAPI(t)
	sess := testSession()
	api.EXPECT().UpdateCampaignStatus(mock.Anything, sess.Token, "c1", domain.StatusPaused).
		Return(&domain.Campaign{ID: "c1"}, nil)
	api.EXPECT().UpdateCampaignStatus(mock.Anything, sess.Token, "c2", domain.StatusPaused).
		Return(nil, domain.ErrNotFound)
	api.EXPECT().UpdateCampaignStatus(mock.Anything, sess.Token, "c3", domain.StatusPaused).
		Return(&domain.Campaign{ID: "c3"}, nil)

	svc := NewCampaignService(api, cache.NewMemoryCache(), time.Minute, 2, discardLogger())
	res, err := svc.BulkUpdateStatus(context.Background(), sess, []string{"c1", "c2", "c3"}, domain.StatusPaused)
	require.NoError(t, err)
	assert.Equal(t, []string{"c1", "c3"}, res.Updated)
	assert.Contains(t, res.Failed, "c2")
}

func TestBulkUpdateStopsOnRejectedSession(t *testing.T) {
	api := mocks.NewMockPlatformAPI(t)
	sess := testSession()
	api.EXPECT().UpdateCampaignStatus(mock.Anything, sess.Token, "c1", domain.StatusActive).
		Return(nil, domain.ErrUnauthorized)

	svc := NewCampaignService(api, cache.NewMemoryCache(), time.Minute, 1, discardLogger())
	_, err := svc.BulkUpdateStatus(context.Background(), sess, []string{"c1"}, domain.StatusActive)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestMetricsCachedPerFilter(t *testing.T) {
	api := mocks.NewMockPlatformAPI(t)
	sess := testSession()
	week := &domain.DateRange{Start: "2026-01-01", End: "2026-01-07"}
	api.EXPECT().ListMetrics(mock.Anything, sess.Token, mock.Anything).
		Return([]domain.Metric{
			{CampaignID: "c1", Impressions: 1000, Clicks: 20, Spend: 10, ROAS: 2},
			{CampaignID: "c2", Impressions: 3000, Clicks: 40, Spend: 30, ROAS: 4},
		}, nil).Once()

	svc := NewAnalyticsService(api, cache.NewMemoryCache(), time.Minute, discardLogger())
	filter := domain.MetricsFilter{CampaignIDs: []string{"c2", "c1"}, Range: week}
	_, err := svc.Metrics(context.Background(), sess, filter)
	require.NoError(t, err)

	sum, err := svc.Summary(context.Background(), sess, domain.MetricsFilter{CampaignIDs: []string{"c1", "c2"}, Range: week})
	require.NoError(t, err)
	assert.Equal(t, int64(4000), sum.TotalImpressions)
	assert.InDelta(t, 1.5, sum.AverageCTR, 1e-9)
	assert.InDelta(t, 3.5, sum.AverageROAS, 1e-9)
}

package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"ads-manager/internal/adapter/cache"
	"ads-manager/internal/config/configs"
	"ads-manager/internal/core/domain"
	"ads-manager/internal/core/port/mocks"
)

var connectCfg = configs.Connect{
	MarkerTTL:    15 * time.Minute,
	SuccessDelay: 2 * time.Second,
	FailureDelay: 3 * time.Second,
	DefaultView:  "/dashboard",
}

type connectFixture struct {
	api     *mocks.MockPlatformAPI
	markers *cache.MemoryConnectStore
	svc     *ConnectService
	sess    *domain.Session
}

func newConnectFixture(t *testing.T) *connectFixture {
	t.Helper()
	api := mocks.NewMockPlatformAPI(t)
	sessions := cache.NewMemorySessionStore()
	markers := cache.NewMemoryConnectStore()
	sess := testSession()
	require.NoError(t, sessions.Save(context.Background(), *sess, time.Hour))
	accounts := NewAccountService(api, cache.NewMemoryCache(), time.Minute, discardLogger())
	sessionSvc := NewSessionService(sessions, api, sessionCfg, discardLogger())
	return &connectFixture{
		api:     api,
		markers: markers,
		svc:     NewConnectService(api, markers, accounts, sessionSvc, connectCfg, discardLogger()),
		sess:    sess,
	}
}

func TestBeginMarksPending(t *testing.T) {
	f := newConnectFixture(t)
	f.api.EXPECT().ConnectURL(mock.Anything, f.sess.Token).Return("https://facebook.example/dialog/oauth?state=s", nil)

	u, err := f.svc.Begin(context.Background(), f.sess)
	require.NoError(t, err)
	assert.Equal(t, "https://facebook.example/dialog/oauth?state=s", u)

	pending, err := f.markers.Clear(context.Background(), f.sess.UserID)
	require.NoError(t, err)
	assert.True(t, pending)
}

func TestCallbackAccessDenied(t *testing.T) {
	f := newConnectFixture(t)
	require.NoError(t, f.markers.MarkPending(context.Background(), f.sess.UserID, time.Minute))

	out, err := f.svc.Callback(context.Background(), f.sess, "", domain.ConnectErrAccessDenied)
	require.NoError(t, err)
	assert.Equal(t, domain.ConnectFailed, out.Status)
	assert.Equal(t, "Access denied. You need to grant permissions to connect your Meta account.", out.Message)
	assert.Equal(t, "/dashboard", out.RedirectTo)
	assert.Equal(t, 3*time.Second, out.RedirectAfter)

	pending, _ := f.markers.Clear(context.Background(), f.sess.UserID)
	assert.False(t, pending, "marker must be cleared")
}

func TestCallbackUnknownErrorCode(t *testing.T) {
	f := newConnectFixture(t)
	out, err := f.svc.Callback(context.Background(), f.sess, "true", "server_exploded")
	require.NoError(t, err)
	assert.Equal(t, domain.ConnectFailed, out.Status)
	assert.Equal(t, "An error occurred while connecting your Meta account.", out.Message)
}

func TestCallbackSuccessRefetchesAccounts(t *testing.T) {
	f := newConnectFixture(t)
	f.api.EXPECT().ListAccounts(mock.Anything, f.sess.Token).Return([]domain.MetaAccount{{ID: "a1"}}, nil).Once()
	f.api.EXPECT().Me(mock.Anything, f.sess.Token).Return(&domain.User{ID: f.sess.UserID}, nil).Once()

	out, err := f.svc.Callback(context.Background(), f.sess, "true", "")
	require.NoError(t, err)
	assert.Equal(t, domain.ConnectSucceeded, out.Status)
	assert.Equal(t, "Meta account connected successfully!", out.Message)
	assert.Equal(t, 2*time.Second, out.RedirectAfter)
	assert.True(t, out.Refetched)
}

func TestCallbackWithoutOutcome(t *testing.T) {
	f := newConnectFixture(t)

	out, err := f.svc.Callback(context.Background(), f.sess, "", "")
	require.NoError(t, err)
	assert.Equal(t, domain.ConnectUnknown, out.Status)
	assert.Zero(t, out.RedirectAfter)
	assert.False(t, out.Refetched)
}

func TestResumeRefetchesOnce(t *testing.T) {
	f := newConnectFixture(t)
	require.NoError(t, f.markers.MarkPending(context.Background(), f.sess.UserID, time.Minute))
	f.api.EXPECT().ListAccounts(mock.Anything, f.sess.Token).Return(nil, nil).Once()

	resumed, err := f.svc.Resume(context.Background(), f.sess)
	require.NoError(t, err)
	assert.True(t, resumed)

	resumed, err = f.svc.Resume(context.Background(), f.sess)
	require.NoError(t, err)
	assert.False(t, resumed)
}

func TestCallbackPropagatesRejectedSession(t *testing.T) {
	f := newConnectFixture(t)
	f.api.EXPECT().ListAccounts(mock.Anything, f.sess.Token).Return(nil, domain.ErrUnauthorized)

	_, err := f.svc.Callback(context.Background(), f.sess, "true", "")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

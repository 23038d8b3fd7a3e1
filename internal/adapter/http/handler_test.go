package httpadapter

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"ads-manager/internal/adapter/cache"
	"ads-manager/internal/adapter/usecase"
	"ads-manager/internal/config/configs"
	"ads-manager/internal/core/domain"
	"ads-manager/internal/core/port/mocks"
)

var sessionCfg = configs.Session{CookieName: "ads_session", TTL: time.Hour, ExpiryBuffer: time.Minute, LoginView: "/login"}

type memDrafts struct {
	mu     sync.Mutex
	drafts map[uuid.UUID]domain.Draft
}

func (m *memDrafts) Create(_ context.Context, d *domain.Draft) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.drafts[d.ID] = *d
	return nil
}

func (m *memDrafts) Get(_ context.Context, id uuid.UUID) (*domain.Draft, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	d, ok := m.drafts[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &d, nil
}

func (m *memDrafts) Save(ctx context.Context, d *domain.Draft) error {
	return m.Create(ctx, d)
}

func (m *memDrafts) DeleteStale(context.Context, time.Time) (int64, error) {
	return 0, nil
}

type testServer struct {
	api      *mocks.MockPlatformAPI
	sessions *cache.MemorySessionStore
	srv      *httptest.Server
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	api := mocks.NewMockPlatformAPI(t)
	sessions := cache.NewMemorySessionStore()
	c := cache.NewMemoryCache()

	sessionSvc := usecase.NewSessionService(sessions, api, sessionCfg, logger)
	accounts := usecase.NewAccountService(api, c, time.Minute, logger)
	campaigns := usecase.NewCampaignService(api, c, time.Minute, 2, logger)
	connect := usecase.NewConnectService(api, cache.NewMemoryConnectStore(), accounts, sessionSvc, configs.Connect{
		MarkerTTL:    time.Minute,
		SuccessDelay: 2 * time.Second,
		FailureDelay: 3 * time.Second,
		DefaultView:  "/dashboard",
	}, logger)

	h := NewHandler(Services{
		Sessions:  sessionSvc,
		Accounts:  accounts,
		Connect:   connect,
		Campaigns: campaigns,
		Analytics: usecase.NewAnalyticsService(api, c, time.Minute, logger),
		Builder:   usecase.NewBuilderService(&memDrafts{drafts: map[uuid.UUID]domain.Draft{}}, accounts, campaigns, logger),
		MetaApps:  usecase.NewMetaAppService(api, sessionSvc, c, time.Minute, logger),
		Pages:     usecase.NewPageService(api, c, time.Minute, logger),
	}, sessionCfg, logger)

	srv := httptest.NewServer(h.Router())
	t.Cleanup(srv.Close)
	return &testServer{api: api, sessions: sessions, srv: srv}
}

// login stores a session directly and returns its cookie.
func (ts *testServer) login(t *testing.T) (*domain.Session, *http.Cookie) {
	t.Helper()
	s := domain.Session{
		ID:        uuid.New(),
		UserID:    "user-1",
		User:      domain.User{ID: "user-1", Name: "Jane"},
		Token:     "platform-token",
		ExpiresAt: time.Now().Add(time.Hour),
	}
	require.NoError(t, ts.sessions.Save(context.Background(), s, time.Hour))
	return &s, &http.Cookie{Name: sessionCfg.CookieName, Value: s.ID.String()}
}

func (ts *testServer) do(t *testing.T, method, path, body string, cookie *http.Cookie) (*http.Response, map[string]any) {
	t.Helper()
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req, err := http.NewRequest(method, ts.srv.URL+path, rd)
	require.NoError(t, err)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	client := &http.Client{CheckRedirect: func(*http.Request, []*http.Request) error { return http.ErrUseLastResponse }}
	resp, err := client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	out := map[string]any{}
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if len(raw) > 0 && strings.HasPrefix(resp.Header.Get("Content-Type"), "application/json") {
		require.NoError(t, json.Unmarshal(raw, &out))
	}
	return resp, out
}

func TestLoginSetsSessionCookie(t *testing.T) {
	ts := newTestServer(t)
	ts.api.EXPECT().Login(mock.Anything, domain.Credentials{Email: "jane@example.com", Password: "secret"}).
		Return(&domain.AuthResult{User: domain.User{ID: "user-1", Name: "Jane"}, Token: "opaque"}, nil)

	resp, body := ts.do(t, http.MethodPost, "/api/v1/session/login", `{"email":"jane@example.com","password":"secret"}`, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Jane", body["user"].(map[string]any)["name"])

	cookie := sessionCookie(t, resp)
	assert.True(t, cookie.HttpOnly)

	resp, body = ts.do(t, http.MethodGet, "/api/v1/session/me", "", cookie)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "user-1", body["user"].(map[string]any)["id"])
}

func TestMissingSessionRedirectsToLogin(t *testing.T) {
	ts := newTestServer(t)
	resp, body := ts.do(t, http.MethodGet, "/api/v1/campaigns", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "/login", body["redirect"])
}

func TestRejectedTokenRedirectsOnce(t *testing.T) {
	ts := newTestServer(t)
	s, cookie := ts.login(t)
	ts.api.EXPECT().ListCampaigns(mock.Anything, s.Token, mock.Anything).
		Return(nil, errors.Join(domain.ErrUnauthorized, errors.New("jwt expired"))).Once()

	resp, body := ts.do(t, http.MethodGet, "/api/v1/campaigns", "", cookie)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "/login", body["redirect"])

	resp, body = ts.do(t, http.MethodGet, "/api/v1/campaigns", "", cookie)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.NotContains(t, body, "redirect")
}

func sessionCookie(t *testing.T, resp *http.Response) *http.Cookie {
	t.Helper()
	for _, c := range resp.Cookies() {
		if c.Name == sessionCfg.CookieName {
			return c
		}
	}
	require.FailNow(t, "no session cookie")
	return nil
}

func TestIdleExpiredSessionRedirectsOnce(t *testing.T) {
	ts := newTestServer(t)
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "user-1",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Second)),
	}).SignedString([]byte("platform-secret"))
	require.NoError(t, err)
	ts.api.EXPECT().Login(mock.Anything, mock.Anything).
		Return(&domain.AuthResult{User: domain.User{ID: "user-1"}, Token: token}, nil)

	resp, _ := ts.do(t, http.MethodPost, "/api/v1/session/login", `{"email":"jane@example.com","password":"secret"}`, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	cookie := sessionCookie(t, resp)

	// idle past the token expiry
	time.Sleep(1200 * time.Millisecond)

	redirects := 0
	for range 2 {
		resp, body := ts.do(t, http.MethodGet, "/api/v1/accounts", "", cookie)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		if body["redirect"] == "/login" {
			redirects++
		}
	}
	assert.Equal(t, 1, redirects)
}

func TestForbiddenKeepsSession(t *testing.T) {
	ts := newTestServer(t)
	s, cookie := ts.login(t)
	ts.api.EXPECT().GetCampaign(mock.Anything, s.Token, "c1").
		Return(nil, domain.ErrForbidden).Once()
	ts.api.EXPECT().GetCampaign(mock.Anything, s.Token, "c2").
		Return(&domain.Campaign{ID: "c2"}, nil).Once()

	resp, body := ts.do(t, http.MethodGet, "/api/v1/campaigns/c1", "", cookie)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.NotContains(t, body, "redirect")

	resp, _ = ts.do(t, http.MethodGet, "/api/v1/campaigns/c2", "", cookie)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestInvalidStatusIsUnprocessable(t *testing.T) {
	ts := newTestServer(t)
	_, cookie := ts.login(t)

	resp, body := ts.do(t, http.MethodPatch, "/api/v1/campaigns/c1/status", `{"status":"RUNNING"}`, cookie)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	details := body["details"].([]any)
	require.Len(t, details, 1)
	assert.Equal(t, "status", details[0].(map[string]any)["field"])
}

func TestUpstreamFailureIsRetryable(t *testing.T) {
	ts := newTestServer(t)
	s, cookie := ts.login(t)
	ts.api.EXPECT().GetCampaign(mock.Anything, s.Token, "c1").
		Return(nil, &domain.TransientError{Op: "get campaign", StatusCode: 503, Err: errors.New("unavailable")})

	resp, body := ts.do(t, http.MethodGet, "/api/v1/campaigns/c1", "", cookie)
	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
	assert.Equal(t, true, body["retryable"])
}

func TestConnectRedirectsToProvider(t *testing.T) {
	ts := newTestServer(t)
	s, cookie := ts.login(t)
	ts.api.EXPECT().ConnectURL(mock.Anything, s.Token).Return("https://provider.example/oauth", nil)

	resp, _ := ts.do(t, http.MethodGet, "/api/v1/accounts/connect", "", cookie)
	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "https://provider.example/oauth", resp.Header.Get("Location"))
}

func TestConnectCallbackAccessDenied(t *testing.T) {
	ts := newTestServer(t)
	_, cookie := ts.login(t)

	resp, body := ts.do(t, http.MethodGet, "/api/v1/accounts/callback?error=access_denied", "", cookie)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "3; url=/dashboard", resp.Header.Get("Refresh"))
	assert.Equal(t, "error", body["status"])
	assert.Equal(t, "Access denied. You need to grant permissions to connect your Meta account.", body["message"])
	assert.Equal(t, float64(3000), body["redirectAfterMs"])
}

func TestDraftStepBlockedByMissingName(t *testing.T) {
	ts := newTestServer(t)
	s, cookie := ts.login(t)
	ts.api.EXPECT().ListAccounts(mock.Anything, s.Token).
		Return([]domain.MetaAccount{{ID: "acc-1", Currency: "USD"}}, nil).Maybe()

	resp, body := ts.do(t, http.MethodPost, "/api/v1/drafts", "", cookie)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	id := body["id"].(string)
	assert.Equal(t, true, body["estimates"].(map[string]any)["estimated"])

	resp, _ = ts.do(t, http.MethodPut, "/api/v1/drafts/"+id+"/basics", `{"metaAccountId":"acc-1","objective":"OUTCOME_TRAFFIC"}`, cookie)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, body = ts.do(t, http.MethodPost, "/api/v1/drafts/"+id+"/next", "", cookie)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	assert.Equal(t, "name", body["details"].([]any)[0].(map[string]any)["field"])

	resp, body = ts.do(t, http.MethodGet, "/api/v1/drafts/"+id, "", cookie)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, float64(1), body["step"])
	assert.Equal(t, "USD", body["currency"])
}

func TestMalformedDraftIDIsNotFound(t *testing.T) {
	ts := newTestServer(t)
	_, cookie := ts.login(t)
	resp, _ := ts.do(t, http.MethodGet, "/api/v1/drafts/not-a-uuid", "", cookie)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestSummaryRejectsBadDates(t *testing.T) {
	ts := newTestServer(t)
	_, cookie := ts.login(t)
	resp, body := ts.do(t, http.MethodGet, "/api/v1/analytics/summary?start=2026-02-10&end=2026-02-01", "", cookie)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	assert.Equal(t, "end", body["details"].([]any)[0].(map[string]any)["field"])
}

func TestLogoutWithoutSession(t *testing.T) {
	ts := newTestServer(t)
	resp, _ := ts.do(t, http.MethodPost, "/api/v1/session/logout", "", nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
}

func TestMetaAppLifecycle(t *testing.T) {
	ts := newTestServer(t)
	s, cookie := ts.login(t)
	in := domain.MetaAppInput{AppID: "123", AppSecret: "s3cret", AppName: "Shop"}
	app := domain.MetaApp{ID: "m1", AppID: "123", AppName: "Shop", VerificationStatus: domain.VerificationPending}
	ts.api.EXPECT().CreateMetaApp(mock.Anything, s.Token, in).Return(&app, nil).Once()
	ts.api.EXPECT().Me(mock.Anything, s.Token).Return(&domain.User{ID: "user-1", MetaApps: []domain.MetaApp{app}}, nil).Once()
	ts.api.EXPECT().ListMetaApps(mock.Anything, s.Token).Return([]domain.MetaApp{app}, nil).Once()
	ts.api.EXPECT().DeleteMetaApp(mock.Anything, s.Token, "m1").Return(nil).Once()

	resp, body := ts.do(t, http.MethodPost, "/api/v1/meta-apps", `{"appId":"123","appSecret":"s3cret","appName":"Shop"}`, cookie)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := body["metaApp"].(map[string]any)
	assert.Equal(t, "PENDING", created["verificationStatus"])
	assert.NotContains(t, created, "appSecret")

	resp, body = ts.do(t, http.MethodGet, "/api/v1/meta-apps", "", cookie)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, body["metaApps"], 1)

	resp, _ = ts.do(t, http.MethodDelete, "/api/v1/meta-apps/m1", "", cookie)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
}

func TestEmptyMetaAppPatchIsUnprocessable(t *testing.T) {
	ts := newTestServer(t)
	_, cookie := ts.login(t)

	resp, body := ts.do(t, http.MethodPut, "/api/v1/meta-apps/m1", `{}`, cookie)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	assert.Equal(t, "nothing to update", body["error"])
}

func TestProfileUpdateAndPasswordChange(t *testing.T) {
	ts := newTestServer(t)
	s, cookie := ts.login(t)
	ts.api.EXPECT().UpdateProfile(mock.Anything, s.Token, domain.ProfileUpdate{Name: "Jane Roe", Email: "jane@example.com"}).
		Return(&domain.User{ID: "user-1", Name: "Jane Roe", Email: "jane@example.com"}, nil).Once()
	ts.api.EXPECT().ChangePassword(mock.Anything, s.Token, domain.PasswordChange{CurrentPassword: "old-pass", NewPassword: "new-pass-1"}).
		Return(nil).Once()

	resp, body := ts.do(t, http.MethodPut, "/api/v1/session/profile", `{"name":"Jane Roe","email":"jane@example.com"}`, cookie)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Jane Roe", body["user"].(map[string]any)["name"])

	resp, body = ts.do(t, http.MethodGet, "/api/v1/session/me", "", cookie)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Jane Roe", body["user"].(map[string]any)["name"])

	resp, _ = ts.do(t, http.MethodPost, "/api/v1/session/password", `{"currentPassword":"old-pass","newPassword":"new-pass-1"}`, cookie)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
}

func TestPageInsightsQueryParams(t *testing.T) {
	ts := newTestServer(t)
	s, cookie := ts.login(t)
	ts.api.EXPECT().PageInsights(mock.Anything, s.Token, "p1", domain.InsightsQuery{Metrics: []string{"page_impressions", "page_fans"}, Period: "day"}).
		Return([]domain.PageInsight{{Name: "page_impressions", Period: "day"}}, nil).Once()

	resp, body := ts.do(t, http.MethodGet, "/api/v1/pages/p1/insights?metrics=page_impressions,page_fans&period=day", "", cookie)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, body["insights"], 1)
}

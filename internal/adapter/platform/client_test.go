package platform

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ads-manager/internal/config/configs"
	"ads-manager/internal/core/domain"
)

func newTestClient(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	base, err := url.Parse(srv.URL + "/api")
	require.NoError(t, err)
	return NewClient(configs.Platform{BaseURL: *base, Timeout: 5 * time.Second}, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestListAccountsSendsBearerToken(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/accounts", r.URL.Path)
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		_, _ = io.WriteString(w, `{"accounts":[{"id":"a1","accountId":"act_1","accountName":"Main","currency":"EUR","isActive":true}]}`)
	})

	accounts, err := c.ListAccounts(context.Background(), "tok")
	require.NoError(t, err)
	require.Len(t, accounts, 1)
	assert.Equal(t, "EUR", accounts[0].Currency)
}

func TestStatusMapping(t *testing.T) {
	cases := []struct {
		status int
		body   string
		check  func(t *testing.T, err error)
	}{
		{http.StatusUnauthorized, `{"error":"jwt expired"}`, func(t *testing.T, err error) {
			assert.ErrorIs(t, err, domain.ErrUnauthorized)
		}},
		{http.StatusForbidden, `{"error":"not your account"}`, func(t *testing.T, err error) {
			assert.ErrorIs(t, err, domain.ErrForbidden)
			assert.NotErrorIs(t, err, domain.ErrUnauthorized)
		}},
		{http.StatusNotFound, ``, func(t *testing.T, err error) {
			assert.ErrorIs(t, err, domain.ErrNotFound)
		}},
		{http.StatusBadRequest, `{"error":"Validation failed","details":[{"field":"budget","message":"Budget must be positive"}]}`, func(t *testing.T, err error) {
			ve, ok := domain.AsValidation(err)
			require.True(t, ok)
			assert.Equal(t, "Validation failed", ve.Message)
			assert.Equal(t, []domain.FieldError{{Field: "budget", Message: "Budget must be positive"}}, ve.Fields)
		}},
		{http.StatusBadGateway, `{"error":"meta unavailable"}`, func(t *testing.T, err error) {
			assert.True(t, domain.IsTransient(err))
			var te *domain.TransientError
			require.True(t, errors.As(err, &te))
			assert.Equal(t, http.StatusBadGateway, te.StatusCode)
		}},
		{http.StatusTooManyRequests, ``, func(t *testing.T, err error) {
			assert.True(t, domain.IsTransient(err))
		}},
	}
	for _, tc := range cases {
		t.Run(http.StatusText(tc.status), func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				_, _ = io.WriteString(w, tc.body)
			})
			_, err := c.GetCampaign(context.Background(), "tok", "c1")
			require.Error(t, err)
			tc.check(t, err)
		})
	}
}

func TestTransportFailureIsTransient(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	base, _ := url.Parse(srv.URL)
	srv.Close()
	c := NewClient(configs.Platform{BaseURL: *base, Timeout: time.Second}, slog.New(slog.NewTextHandler(io.Discard, nil)))

	_, err := c.ListAccounts(context.Background(), "tok")
	assert.True(t, domain.IsTransient(err), "got %v", err)
}

func TestCreateCampaignPostsCompositePayload(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/campaigns", r.URL.Path)
		var got domain.CreateCampaignRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		assert.Equal(t, "Launch", got.Name)
		assert.Equal(t, []string{"US"}, got.Targeting.Locations)
		w.WriteHeader(http.StatusCreated)
		_, _ = io.WriteString(w, `{"campaign":{"id":"cmp-1","name":"Launch","status":"PAUSED"}}`)
	})

	out, err := c.CreateCampaign(context.Background(), "tok", domain.CreateCampaignRequest{
		Name:      "Launch",
		Targeting: domain.DefaultTargeting(),
	})
	require.NoError(t, err)
	assert.Equal(t, "cmp-1", out.ID)
}

func TestUpdateStatusAndMetricsQuery(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/campaigns/c1/status":
			assert.Equal(t, http.MethodPatch, r.Method)
			var body map[string]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "PAUSED", body["status"])
			w.WriteHeader(http.StatusNoContent)
		case "/api/analytics/metrics":
			q := r.URL.Query()
			assert.Equal(t, "c1", q.Get("campaignId"))
			assert.Equal(t, "2026-01-01", q.Get("dateRange[start]"))
			assert.Equal(t, "2026-01-07", q.Get("dateRange[end]"))
			assert.Equal(t, "50", q.Get("limit"))
			_, _ = io.WriteString(w, `{"metrics":[{"campaignId":"c1","date":"2026-01-01","impressions":10}]}`)
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	})

	updated, err := c.UpdateCampaignStatus(context.Background(), "tok", "c1", domain.StatusPaused)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPaused, updated.Status)

	metrics, err := c.ListMetrics(context.Background(), "tok", domain.MetricsFilter{
		CampaignID: "c1",
		Range:      &domain.DateRange{Start: "2026-01-01", End: "2026-01-07"},
		Limit:      50,
	})
	require.NoError(t, err)
	require.Len(t, metrics, 1)
	assert.Equal(t, int64(10), metrics[0].Impressions)
}

func TestConnectURLRequiresURL(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{}`)
	})
	_, err := c.ConnectURL(context.Background(), "tok")
	assert.True(t, domain.IsTransient(err))
}

func TestMetaAppRequests(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.Method + " " + r.URL.Path {
		case "POST /api/meta-apps":
			var in map[string]any
			require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
			assert.Equal(t, "s3cret", in["appSecret"])
			_, _ = io.WriteString(w, `{"metaApp":{"id":"m1","appId":"123","appName":"Shop","verificationStatus":"PENDING"}}`)
		case "PUT /api/meta-apps/m1":
			var in map[string]any
			require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
			assert.Equal(t, map[string]any{"appName": "Shop EU"}, in)
			_, _ = io.WriteString(w, `{"metaApp":{"id":"m1","appName":"Shop EU"}}`)
		case "POST /api/meta-apps/m1/verify":
			_, _ = io.WriteString(w, `{"message":"ok","metaApp":{"id":"m1","isVerified":true,"verificationStatus":"VERIFIED"}}`)
		default:
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
	})
	ctx := context.Background()

	app, err := c.CreateMetaApp(ctx, "tok", domain.MetaAppInput{AppID: "123", AppSecret: "s3cret", AppName: "Shop"})
	require.NoError(t, err)
	assert.Equal(t, domain.VerificationPending, app.VerificationStatus)

	name := "Shop EU"
	app, err = c.UpdateMetaApp(ctx, "tok", "m1", domain.MetaAppPatch{AppName: &name})
	require.NoError(t, err)
	assert.Equal(t, name, app.AppName)

	v, err := c.VerifyMetaApp(ctx, "tok", "m1")
	require.NoError(t, err)
	assert.True(t, v.Verified)
	assert.Equal(t, domain.VerificationVerified, v.MetaApp.VerificationStatus)
}

func TestPageInsightsQuery(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/facebook/pages/p1/insights", r.URL.Path)
		assert.Equal(t, "page_impressions,page_fans", r.URL.Query().Get("metrics"))
		assert.Equal(t, "week", r.URL.Query().Get("period"))
		_, _ = io.WriteString(w, `{"insights":[{"name":"page_impressions","period":"week","values":[{"value":42,"end_time":"2026-03-01T08:00:00Z"}]}]}`)
	})

	insights, err := c.PageInsights(context.Background(), "tok", "p1", domain.InsightsQuery{Metrics: []string{"page_impressions", "page_fans"}, Period: "week"})
	require.NoError(t, err)
	require.Len(t, insights, 1)
	require.Len(t, insights[0].Values, 1)
	assert.JSONEq(t, `42`, string(insights[0].Values[0].Value))
}

func TestChangePasswordBody(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/auth/change-password", r.URL.Path)
		var in map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		assert.Equal(t, map[string]string{"currentPassword": "old-pass", "newPassword": "new-pass-1"}, in)
		w.WriteHeader(http.StatusNoContent)
	})

	err := c.ChangePassword(context.Background(), "tok", domain.PasswordChange{CurrentPassword: "old-pass", NewPassword: "new-pass-1"})
	assert.NoError(t, err)
}

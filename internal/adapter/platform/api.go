package platform

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"ads-manager/internal/core/domain"
	"ads-manager/internal/core/port"
)

var _ port.PlatformAPI = (*Client)(nil)

var errEmptyAuthURL = errors.New("platform returned no authorization url")

func (c *Client) Login(ctx context.Context, creds domain.Credentials) (*domain.AuthResult, error) {
	var out domain.AuthResult
	err := c.do(ctx, request{op: "login", method: http.MethodPost, path: []string{"auth", "login"}, body: creds}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Register(ctx context.Context, reg domain.Registration) (*domain.AuthResult, error) {
	var out domain.AuthResult
	err := c.do(ctx, request{op: "register", method: http.MethodPost, path: []string{"auth", "register"}, body: reg}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Me(ctx context.Context, token string) (*domain.User, error) {
	var out struct {
		User domain.User `json:"user"`
	}
	err := c.do(ctx, request{op: "current user", method: http.MethodGet, path: []string{"auth", "me"}, token: token}, &out)
	if err != nil {
		return nil, err
	}
	return &out.User, nil
}

func (c *Client) UpdateProfile(ctx context.Context, token string, in domain.ProfileUpdate) (*domain.User, error) {
	var out struct {
		User domain.User `json:"user"`
	}
	err := c.do(ctx, request{op: "update profile", method: http.MethodPut, path: []string{"auth", "profile"}, token: token, body: in}, &out)
	if err != nil {
		return nil, err
	}
	return &out.User, nil
}

func (c *Client) ChangePassword(ctx context.Context, token string, in domain.PasswordChange) error {
	return c.do(ctx, request{op: "change password", method: http.MethodPost, path: []string{"auth", "change-password"}, token: token, body: in}, nil)
}

func (c *Client) ConnectURL(ctx context.Context, token string) (string, error) {
	var out struct {
		AuthURL string `json:"authUrl"`
	}
	err := c.do(ctx, request{op: "connect url", method: http.MethodGet, path: []string{"auth", "meta", "connect"}, token: token}, &out)
	if err != nil {
		return "", err
	}
	if out.AuthURL == "" {
		return "", &domain.TransientError{Op: "connect url", Err: errEmptyAuthURL}
	}
	return out.AuthURL, nil
}

func (c *Client) ListAccounts(ctx context.Context, token string) ([]domain.MetaAccount, error) {
	var out struct {
		Accounts []domain.MetaAccount `json:"accounts"`
	}
	err := c.do(ctx, request{op: "list accounts", method: http.MethodGet, path: []string{"accounts"}, token: token}, &out)
	if err != nil {
		return nil, err
	}
	return out.Accounts, nil
}

func (c *Client) DisconnectAccount(ctx context.Context, token, id string) error {
	return c.do(ctx, request{op: "disconnect account", method: http.MethodDelete, path: []string{"accounts", id}, token: token}, nil)
}

func (c *Client) SyncAccount(ctx context.Context, token, id string) error {
	return c.do(ctx, request{op: "sync account", method: http.MethodPost, path: []string{"accounts", id, "sync"}, token: token}, nil)
}

func (c *Client) ListCampaigns(ctx context.Context, token string, filter domain.CampaignFilter) ([]domain.Campaign, error) {
	q := url.Values{}
	if filter.Status != "" {
		q.Set("status", string(filter.Status))
	}
	if filter.MetaAccountID != "" {
		q.Set("metaAccountId", filter.MetaAccountID)
	}
	var out struct {
		Campaigns []domain.Campaign `json:"campaigns"`
	}
	err := c.do(ctx, request{op: "list campaigns", method: http.MethodGet, path: []string{"campaigns"}, query: q, token: token}, &out)
	if err != nil {
		return nil, err
	}
	return out.Campaigns, nil
}

type campaignEnvelope struct {
	Campaign domain.Campaign `json:"campaign"`
}

func (c *Client) GetCampaign(ctx context.Context, token, id string) (*domain.Campaign, error) {
	var out campaignEnvelope
	err := c.do(ctx, request{op: "get campaign", method: http.MethodGet, path: []string{"campaigns", id}, token: token}, &out)
	if err != nil {
		return nil, err
	}
	return &out.Campaign, nil
}

func (c *Client) CreateCampaign(ctx context.Context, token string, req domain.CreateCampaignRequest) (*domain.Campaign, error) {
	var out campaignEnvelope
	err := c.do(ctx, request{op: "create campaign", method: http.MethodPost, path: []string{"campaigns"}, token: token, body: req}, &out)
	if err != nil {
		return nil, err
	}
	return &out.Campaign, nil
}

func (c *Client) UpdateCampaignStatus(ctx context.Context, token, id string, status domain.CampaignStatus) (*domain.Campaign, error) {
	var out campaignEnvelope
	body := struct {
		Status domain.CampaignStatus `json:"status"`
	}{Status: status}
	err := c.do(ctx, request{op: "update campaign status", method: http.MethodPatch, path: []string{"campaigns", id, "status"}, token: token, body: body}, &out)
	if err != nil {
		return nil, err
	}
	if out.Campaign.ID == "" {
		// Some deployments answer with an empty body.
		out.Campaign.ID = id
		out.Campaign.Status = status
	}
	return &out.Campaign, nil
}

func (c *Client) ListMetrics(ctx context.Context, token string, filter domain.MetricsFilter) ([]domain.Metric, error) {
	var out struct {
		Metrics []domain.Metric `json:"metrics"`
	}
	err := c.do(ctx, request{op: "list metrics", method: http.MethodGet, path: []string{"analytics", "metrics"}, query: metricsQuery(filter), token: token}, &out)
	if err != nil {
		return nil, err
	}
	return out.Metrics, nil
}

func metricsQuery(f domain.MetricsFilter) url.Values {
	q := url.Values{}
	if f.CampaignID != "" {
		q.Set("campaignId", f.CampaignID)
	}
	if len(f.CampaignIDs) > 0 {
		q.Set("campaignIds", strings.Join(f.CampaignIDs, ","))
	}
	if f.Range != nil {
		q.Set("dateRange[start]", f.Range.Start)
		q.Set("dateRange[end]", f.Range.End)
	}
	if f.Limit > 0 {
		q.Set("limit", strconv.Itoa(f.Limit))
	}
	return q
}

type metaAppEnvelope struct {
	MetaApp domain.MetaApp `json:"metaApp"`
}

func (c *Client) ListMetaApps(ctx context.Context, token string) ([]domain.MetaApp, error) {
	var out struct {
		MetaApps []domain.MetaApp `json:"metaApps"`
	}
	err := c.do(ctx, request{op: "list meta apps", method: http.MethodGet, path: []string{"meta-apps"}, token: token}, &out)
	if err != nil {
		return nil, err
	}
	return out.MetaApps, nil
}

func (c *Client) GetMetaApp(ctx context.Context, token, id string) (*domain.MetaApp, error) {
	var out metaAppEnvelope
	err := c.do(ctx, request{op: "get meta app", method: http.MethodGet, path: []string{"meta-apps", id}, token: token}, &out)
	if err != nil {
		return nil, err
	}
	return &out.MetaApp, nil
}

func (c *Client) CreateMetaApp(ctx context.Context, token string, in domain.MetaAppInput) (*domain.MetaApp, error) {
	var out metaAppEnvelope
	err := c.do(ctx, request{op: "create meta app", method: http.MethodPost, path: []string{"meta-apps"}, token: token, body: in}, &out)
	if err != nil {
		return nil, err
	}
	return &out.MetaApp, nil
}

func (c *Client) UpdateMetaApp(ctx context.Context, token, id string, patch domain.MetaAppPatch) (*domain.MetaApp, error) {
	var out metaAppEnvelope
	err := c.do(ctx, request{op: "update meta app", method: http.MethodPut, path: []string{"meta-apps", id}, token: token, body: patch}, &out)
	if err != nil {
		return nil, err
	}
	return &out.MetaApp, nil
}

func (c *Client) DeleteMetaApp(ctx context.Context, token, id string) error {
	return c.do(ctx, request{op: "delete meta app", method: http.MethodDelete, path: []string{"meta-apps", id}, token: token}, nil)
}

func (c *Client) VerifyMetaApp(ctx context.Context, token, id string) (*domain.MetaAppVerification, error) {
	var out domain.MetaAppVerification
	err := c.do(ctx, request{op: "verify meta app", method: http.MethodPost, path: []string{"meta-apps", id, "verify"}, token: token}, &out)
	if err != nil {
		return nil, err
	}
	if out.MetaApp != nil && !out.Verified {
		out.Verified = out.MetaApp.IsVerified
	}
	return &out, nil
}

func (c *Client) ListPages(ctx context.Context, token string) ([]domain.Page, error) {
	var out struct {
		Pages []domain.Page `json:"pages"`
	}
	err := c.do(ctx, request{op: "list pages", method: http.MethodGet, path: []string{"facebook", "pages"}, token: token}, &out)
	if err != nil {
		return nil, err
	}
	return out.Pages, nil
}

func (c *Client) PageInsights(ctx context.Context, token, pageID string, q domain.InsightsQuery) ([]domain.PageInsight, error) {
	query := url.Values{}
	if len(q.Metrics) > 0 {
		query.Set("metrics", strings.Join(q.Metrics, ","))
	}
	if q.Period != "" {
		query.Set("period", q.Period)
	}
	var out struct {
		Insights []domain.PageInsight `json:"insights"`
	}
	err := c.do(ctx, request{op: "page insights", method: http.MethodGet, path: []string{"facebook", "pages", pageID, "insights"}, query: query, token: token}, &out)
	if err != nil {
		return nil, err
	}
	return out.Insights, nil
}

func (c *Client) CreatePagePost(ctx context.Context, token, pageID string, in domain.PagePostInput) (*domain.PagePost, error) {
	var out struct {
		Post domain.PagePost `json:"post"`
	}
	err := c.do(ctx, request{op: "create page post", method: http.MethodPost, path: []string{"facebook", "pages", pageID, "posts"}, token: token, body: in}, &out)
	if err != nil {
		return nil, err
	}
	return &out.Post, nil
}

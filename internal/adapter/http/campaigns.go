package httpadapter

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"ads-manager/internal/core/domain"
)

// handleListCampaigns accepts optional status, metaAccountId and search
// query parameters.
func (h *Handler) handleListCampaigns(w http.ResponseWriter, r *http.Request) {
	s, _ := sessionFrom(r.Context())
	q := r.URL.Query()
	filter := domain.CampaignFilter{
		Status:        domain.CampaignStatus(q.Get("status")),
		MetaAccountID: q.Get("metaAccountId"),
		Search:        q.Get("search"),
	}
	campaigns, err := h.svc.Campaigns.List(r.Context(), s, filter)
	if err != nil {
		h.fail(w, r, "list campaigns", err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]any{"campaigns": campaigns})
}

func (h *Handler) handleGetCampaign(w http.ResponseWriter, r *http.Request) {
	s, _ := sessionFrom(r.Context())
	c, err := h.svc.Campaigns.Get(r.Context(), s, chi.URLParam(r, "id"))
	if err != nil {
		h.fail(w, r, "get campaign", err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]any{"campaign": c})
}

type statusRequest struct {
	Status domain.CampaignStatus `json:"status"`
}

func (h *Handler) handleUpdateStatus(w http.ResponseWriter, r *http.Request) {
	s, _ := sessionFrom(r.Context())
	var req statusRequest
	if !h.decode(w, r, &req) {
		return
	}
	c, err := h.svc.Campaigns.UpdateStatus(r.Context(), s, chi.URLParam(r, "id"), req.Status)
	if err != nil {
		h.fail(w, r, "update campaign status", err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]any{"campaign": c})
}

type bulkStatusRequest struct {
	CampaignIDs []string              `json:"campaignIds"`
	Status      domain.CampaignStatus `json:"status"`
}

// handleBulkStatus answers 200 even when some campaigns failed; the body
// lists every failure.
func (h *Handler) handleBulkStatus(w http.ResponseWriter, r *http.Request) {
	s, _ := sessionFrom(r.Context())
	var req bulkStatusRequest
	if !h.decode(w, r, &req) {
		return
	}
	res, err := h.svc.Campaigns.BulkUpdateStatus(r.Context(), s, req.CampaignIDs, req.Status)
	if err != nil {
		h.fail(w, r, "bulk update status", err)
		return
	}
	h.writeJSON(w, http.StatusOK, res)
}

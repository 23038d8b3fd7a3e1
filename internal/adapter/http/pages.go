package httpadapter

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"ads-manager/internal/core/domain"
)

func (h *Handler) handleListPages(w http.ResponseWriter, r *http.Request) {
	s, _ := sessionFrom(r.Context())
	pages, err := h.svc.Pages.List(r.Context(), s)
	if err != nil {
		h.fail(w, r, "list pages", err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]any{"pages": pages})
}

// handlePageInsights takes a comma separated metrics list and a period.
func (h *Handler) handlePageInsights(w http.ResponseWriter, r *http.Request) {
	s, _ := sessionFrom(r.Context())
	q := domain.InsightsQuery{Period: r.URL.Query().Get("period")}
	if m := r.URL.Query().Get("metrics"); m != "" {
		q.Metrics = strings.Split(m, ",")
	}
	insights, err := h.svc.Pages.Insights(r.Context(), s, chi.URLParam(r, "id"), q)
	if err != nil {
		h.fail(w, r, "page insights", err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]any{"insights": insights})
}

func (h *Handler) handlePublishPost(w http.ResponseWriter, r *http.Request) {
	s, _ := sessionFrom(r.Context())
	var in domain.PagePostInput
	if !h.decode(w, r, &in) {
		return
	}
	post, err := h.svc.Pages.Publish(r.Context(), s, chi.URLParam(r, "id"), in)
	if err != nil {
		h.fail(w, r, "publish page post", err)
		return
	}
	h.writeJSON(w, http.StatusCreated, map[string]any{"post": post})
}

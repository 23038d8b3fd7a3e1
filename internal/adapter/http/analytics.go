package httpadapter

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"ads-manager/internal/core/domain"
)

const defaultMetricsLimit = 100

// metricsFilter reads campaignId, campaignIds (comma separated), start and
// end (YYYY-MM-DD), period (a named preset used when no dates are given)
// and limit.
func metricsFilter(r *http.Request, now time.Time) (domain.MetricsFilter, error) {
	q := r.URL.Query()
	f := domain.MetricsFilter{CampaignID: q.Get("campaignId"), Limit: defaultMetricsLimit}
	if ids := q.Get("campaignIds"); ids != "" {
		for _, id := range strings.Split(ids, ",") {
			if id = strings.TrimSpace(id); id != "" {
				f.CampaignIDs = append(f.CampaignIDs, id)
			}
		}
	}

	start, end := q.Get("start"), q.Get("end")
	switch {
	case start != "" || end != "":
		rng, err := domain.ParseDateRange(start, end)
		if err != nil {
			return f, err
		}
		f.Range = &rng
	case q.Get("period") != "":
		rng := domain.DateRangeFor(q.Get("period"), now)
		f.Range = &rng
	}

	if l := q.Get("limit"); l != "" {
		n, err := strconv.Atoi(l)
		if err != nil || n < 0 {
			return f, &domain.ValidationError{
				Message: "validation failed",
				Fields:  []domain.FieldError{{Field: "limit", Message: "Limit must be a non-negative number"}},
			}
		}
		f.Limit = n
	}
	return f, nil
}

func (h *Handler) handleMetrics(w http.ResponseWriter, r *http.Request) {
	s, _ := sessionFrom(r.Context())
	f, err := metricsFilter(r, time.Now())
	if err != nil {
		h.fail(w, r, "metrics", err)
		return
	}
	metrics, err := h.svc.Analytics.Metrics(r.Context(), s, f)
	if err != nil {
		h.fail(w, r, "metrics", err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]any{"metrics": metrics})
}

func (h *Handler) handleSummary(w http.ResponseWriter, r *http.Request) {
	s, _ := sessionFrom(r.Context())
	f, err := metricsFilter(r, time.Now())
	if err != nil {
		h.fail(w, r, "metrics summary", err)
		return
	}
	sum, err := h.svc.Analytics.Summary(r.Context(), s, f)
	if err != nil {
		h.fail(w, r, "metrics summary", err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]any{"summary": sum})
}

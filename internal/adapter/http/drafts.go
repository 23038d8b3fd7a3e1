package httpadapter

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"ads-manager/internal/core/domain"
	"ads-manager/internal/core/port"
)

func (h *Handler) handleStartDraft(w http.ResponseWriter, r *http.Request) {
	s, _ := sessionFrom(r.Context())
	v, err := h.svc.Builder.Start(r.Context(), s)
	if err != nil {
		h.fail(w, r, "start draft", err)
		return
	}
	h.writeJSON(w, http.StatusCreated, v)
}

// draftAction runs fn against the draft named in the path. Malformed ids
// are answered like unknown ones.
func (h *Handler) draftAction(op string, fn func(ctx context.Context, s *domain.Session, id uuid.UUID) (*port.DraftView, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			h.fail(w, r, op, domain.ErrNotFound)
			return
		}
		s, _ := sessionFrom(r.Context())
		v, err := fn(r.Context(), s, id)
		if err != nil {
			h.fail(w, r, op, err)
			return
		}
		h.writeJSON(w, http.StatusOK, v)
	}
}

// draftUpdate decodes a step section and stores it.
func draftUpdate[T any](h *Handler, op string, apply func(ctx context.Context, s *domain.Session, id uuid.UUID, in T) (*port.DraftView, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in T
		if !h.decode(w, r, &in) {
			return
		}
		h.draftAction(op, func(ctx context.Context, s *domain.Session, id uuid.UUID) (*port.DraftView, error) {
			return apply(ctx, s, id, in)
		})(w, r)
	}
}

func (h *Handler) handleGetDraft(w http.ResponseWriter, r *http.Request) {
	h.draftAction("get draft", h.svc.Builder.Get)(w, r)
}

func (h *Handler) handleUpdateBasics(w http.ResponseWriter, r *http.Request) {
	draftUpdate(h, "update basics", h.svc.Builder.UpdateBasics)(w, r)
}

func (h *Handler) handleUpdateBudget(w http.ResponseWriter, r *http.Request) {
	draftUpdate(h, "update budget", h.svc.Builder.UpdateBudget)(w, r)
}

func (h *Handler) handleUpdateTargeting(w http.ResponseWriter, r *http.Request) {
	draftUpdate(h, "update targeting", h.svc.Builder.UpdateTargeting)(w, r)
}

func (h *Handler) handleUpdateCreative(w http.ResponseWriter, r *http.Request) {
	draftUpdate(h, "update creative", h.svc.Builder.UpdateCreative)(w, r)
}

func (h *Handler) handleNextStep(w http.ResponseWriter, r *http.Request) {
	h.draftAction("next step", h.svc.Builder.Next)(w, r)
}

func (h *Handler) handlePreviousStep(w http.ResponseWriter, r *http.Request) {
	h.draftAction("previous step", h.svc.Builder.Previous)(w, r)
}

func (h *Handler) handleSubmitDraft(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		h.fail(w, r, "submit draft", domain.ErrNotFound)
		return
	}
	s, _ := sessionFrom(r.Context())
	c, err := h.svc.Builder.Submit(r.Context(), s, id)
	if err != nil {
		h.fail(w, r, "submit draft", err)
		return
	}
	h.writeJSON(w, http.StatusCreated, map[string]any{"campaign": c})
}

package httpadapter

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"ads-manager/internal/core/domain"
)

func (h *Handler) handleListMetaApps(w http.ResponseWriter, r *http.Request) {
	s, _ := sessionFrom(r.Context())
	apps, err := h.svc.MetaApps.List(r.Context(), s)
	if err != nil {
		h.fail(w, r, "list meta apps", err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]any{"metaApps": apps})
}

func (h *Handler) handleGetMetaApp(w http.ResponseWriter, r *http.Request) {
	s, _ := sessionFrom(r.Context())
	app, err := h.svc.MetaApps.Get(r.Context(), s, chi.URLParam(r, "id"))
	if err != nil {
		h.fail(w, r, "get meta app", err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]any{"metaApp": app})
}

func (h *Handler) handleCreateMetaApp(w http.ResponseWriter, r *http.Request) {
	s, _ := sessionFrom(r.Context())
	var in domain.MetaAppInput
	if !h.decode(w, r, &in) {
		return
	}
	app, err := h.svc.MetaApps.Create(r.Context(), s, in)
	if err != nil {
		h.fail(w, r, "create meta app", err)
		return
	}
	h.writeJSON(w, http.StatusCreated, map[string]any{"metaApp": app})
}

func (h *Handler) handleUpdateMetaApp(w http.ResponseWriter, r *http.Request) {
	s, _ := sessionFrom(r.Context())
	var patch domain.MetaAppPatch
	if !h.decode(w, r, &patch) {
		return
	}
	app, err := h.svc.MetaApps.Update(r.Context(), s, chi.URLParam(r, "id"), patch)
	if err != nil {
		h.fail(w, r, "update meta app", err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]any{"metaApp": app})
}

func (h *Handler) handleDeleteMetaApp(w http.ResponseWriter, r *http.Request) {
	s, _ := sessionFrom(r.Context())
	if err := h.svc.MetaApps.Delete(r.Context(), s, chi.URLParam(r, "id")); err != nil {
		h.fail(w, r, "delete meta app", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleVerifyMetaApp(w http.ResponseWriter, r *http.Request) {
	s, _ := sessionFrom(r.Context())
	v, err := h.svc.MetaApps.Verify(r.Context(), s, chi.URLParam(r, "id"))
	if err != nil {
		h.fail(w, r, "verify meta app", err)
		return
	}
	h.writeJSON(w, http.StatusOK, v)
}

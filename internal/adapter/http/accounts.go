package httpadapter

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"ads-manager/internal/core/domain"
)

// handleListAccounts first finishes a connect the user abandoned at the
// provider, so a newly linked account shows up without a manual reload.
func (h *Handler) handleListAccounts(w http.ResponseWriter, r *http.Request) {
	s, _ := sessionFrom(r.Context())
	if _, err := h.svc.Connect.Resume(r.Context(), s); err != nil {
		h.fail(w, r, "resume connect", err)
		return
	}
	accounts, err := h.svc.Accounts.List(r.Context(), s)
	if err != nil {
		h.fail(w, r, "list accounts", err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]any{"accounts": accounts})
}

func (h *Handler) handleDisconnectAccount(w http.ResponseWriter, r *http.Request) {
	s, _ := sessionFrom(r.Context())
	if err := h.svc.Accounts.Disconnect(r.Context(), s, chi.URLParam(r, "id")); err != nil {
		h.fail(w, r, "disconnect account", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleSyncAccount(w http.ResponseWriter, r *http.Request) {
	s, _ := sessionFrom(r.Context())
	if err := h.svc.Accounts.Sync(r.Context(), s, chi.URLParam(r, "id")); err != nil {
		h.fail(w, r, "sync account", err)
		return
	}
	w.WriteHeader(http.StatusAccepted)
}

// handleConnect sends the browser to the provider consent screen. Script
// clients asking for JSON get the URL instead.
func (h *Handler) handleConnect(w http.ResponseWriter, r *http.Request) {
	s, _ := sessionFrom(r.Context())
	authURL, err := h.svc.Connect.Begin(r.Context(), s)
	if err != nil {
		h.fail(w, r, "begin connect", err)
		return
	}
	if strings.Contains(r.Header.Get("Accept"), "application/json") {
		h.writeJSON(w, http.StatusOK, map[string]string{"authUrl": authURL})
		return
	}
	http.Redirect(w, r, authURL, http.StatusFound)
}

type connectResponse struct {
	domain.ConnectOutcome
	RedirectAfterMs int64 `json:"redirectAfterMs"`
}

// handleConnectCallback reports the outcome of the provider redirect and
// schedules the move to the default view with a Refresh header.
func (h *Handler) handleConnectCallback(w http.ResponseWriter, r *http.Request) {
	s, _ := sessionFrom(r.Context())
	q := r.URL.Query()
	out, err := h.svc.Connect.Callback(r.Context(), s, q.Get("connected"), q.Get("error"))
	if err != nil {
		h.fail(w, r, "connect callback", err)
		return
	}
	w.Header().Set("Refresh", fmt.Sprintf("%d; url=%s", int(out.RedirectAfter.Seconds()), out.RedirectTo))
	h.logger.Info("connect callback", slog.String("status", string(out.Status)), slog.Bool("refetched", out.Refetched))
	h.writeJSON(w, http.StatusOK, connectResponse{ConnectOutcome: out, RedirectAfterMs: out.RedirectAfter.Milliseconds()})
}

package httpadapter

import (
	"net/http"
	"time"

	"ads-manager/internal/core/domain"
)

type sessionResponse struct {
	User      domain.User `json:"user"`
	ExpiresAt string      `json:"expiresAt"`
}

func newSessionResponse(s *domain.Session) sessionResponse {
	return sessionResponse{User: s.User, ExpiresAt: s.ExpiresAt.UTC().Format(time.RFC3339)}
}

func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	var creds domain.Credentials
	if !h.decode(w, r, &creds) {
		return
	}
	s, err := h.svc.Sessions.Login(r.Context(), creds)
	if err != nil {
		h.fail(w, r, "login", err)
		return
	}
	h.setCookie(w, s)
	h.writeJSON(w, http.StatusOK, newSessionResponse(s))
}

func (h *Handler) handleRegister(w http.ResponseWriter, r *http.Request) {
	var reg domain.Registration
	if !h.decode(w, r, &reg) {
		return
	}
	s, err := h.svc.Sessions.Register(r.Context(), reg)
	if err != nil {
		h.fail(w, r, "register", err)
		return
	}
	h.setCookie(w, s)
	h.writeJSON(w, http.StatusCreated, newSessionResponse(s))
}

// handleLogout is idempotent and succeeds without a session.
func (h *Handler) handleLogout(w http.ResponseWriter, r *http.Request) {
	if id, ok := h.sessionID(r); ok {
		if err := h.svc.Sessions.Logout(r.Context(), id); err != nil {
			h.fail(w, r, "logout", err)
			return
		}
	}
	h.clearCookie(w)
	w.WriteHeader(http.StatusNoContent)
}

// handleMe returns the stored user, re-reading it from the platform when
// refresh=true.
func (h *Handler) handleMe(w http.ResponseWriter, r *http.Request) {
	s, _ := sessionFrom(r.Context())
	if r.URL.Query().Get("refresh") == "true" {
		refreshed, err := h.svc.Sessions.Refresh(r.Context(), s)
		if err != nil {
			h.fail(w, r, "refresh session", err)
			return
		}
		s = refreshed
	}
	h.writeJSON(w, http.StatusOK, newSessionResponse(s))
}

func (h *Handler) handleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	s, _ := sessionFrom(r.Context())
	var in domain.ProfileUpdate
	if !h.decode(w, r, &in) {
		return
	}
	updated, err := h.svc.Sessions.UpdateProfile(r.Context(), s, in)
	if err != nil {
		h.fail(w, r, "update profile", err)
		return
	}
	h.writeJSON(w, http.StatusOK, newSessionResponse(updated))
}

func (h *Handler) handleChangePassword(w http.ResponseWriter, r *http.Request) {
	s, _ := sessionFrom(r.Context())
	var in domain.PasswordChange
	if !h.decode(w, r, &in) {
		return
	}
	if err := h.svc.Sessions.ChangePassword(r.Context(), s, in); err != nil {
		h.fail(w, r, "change password", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

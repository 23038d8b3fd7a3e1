package httpadapter

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"ads-manager/internal/core/domain"
)

type sessionKey struct{}

func withSession(ctx context.Context, s *domain.Session) context.Context {
	return context.WithValue(ctx, sessionKey{}, s)
}

func sessionFrom(ctx context.Context) (*domain.Session, bool) {
	s, ok := ctx.Value(sessionKey{}).(*domain.Session)
	return s, ok && s != nil
}

// sessionID reads the session cookie, falling back to a bearer session id
// for non-browser clients.
func (h *Handler) sessionID(r *http.Request) (uuid.UUID, bool) {
	raw := ""
	if c, err := r.Cookie(h.session.CookieName); err == nil {
		raw = c.Value
	} else if auth := r.Header.Get("Authorization"); strings.HasPrefix(auth, "Bearer ") {
		raw = strings.TrimPrefix(auth, "Bearer ")
	}
	id, err := uuid.Parse(raw)
	return id, err == nil
}

// requireSession resolves the caller's session and stores it in the
// request context. A client without any session is sent to log in. A
// stale session is dropped and only the request that dropped it redirects.
func (h *Handler) requireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := h.sessionID(r)
		if !ok {
			h.writeJSON(w, http.StatusUnauthorized, errorBody{Error: "unauthorized", Redirect: h.session.LoginView})
			return
		}
		s, err := h.svc.Sessions.Current(r.Context(), id)
		if err != nil {
			// Current has no session to attach, so invalidate by id here.
			h.fail(w, r.WithContext(withSession(r.Context(), &domain.Session{ID: id})), "resolve session", err)
			return
		}
		next.ServeHTTP(w, r.WithContext(withSession(r.Context(), s)))
	})
}

func (h *Handler) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		h.logger.Debug("request",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Int("status", ww.Status()),
			slog.Duration("duration", time.Since(start)),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)
	})
}

func (h *Handler) setCookie(w http.ResponseWriter, s *domain.Session) {
	http.SetCookie(w, &http.Cookie{
		Name:     h.session.CookieName,
		Value:    s.ID.String(),
		Path:     "/",
		Expires:  s.ExpiresAt,
		HttpOnly: true,
		Secure:   h.session.SecureCookie,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *Handler) clearCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     h.session.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.session.SecureCookie,
		SameSite: http.SameSiteLaxMode,
	})
}

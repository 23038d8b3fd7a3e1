package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"ads-manager/internal/core/domain"
)

type errorBody struct {
	Error     string              `json:"error"`
	Details   []domain.FieldError `json:"details,omitempty"`
	Redirect  string              `json:"redirect,omitempty"`
	Retryable bool                `json:"retryable,omitempty"`
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}

// decode reads a JSON body into v, answering 400 itself on failure.
func (h *Handler) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<20))
	if err := dec.Decode(v); err != nil {
		h.writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid JSON"})
		return false
	}
	return true
}

// fail maps err onto a status code and body. A rejected platform token
// drops the session; only the response that dropped it tells the client
// to go to the login view.
func (h *Handler) fail(w http.ResponseWriter, r *http.Request, op string, err error) {
	log := h.logger.With(slog.String("op", op), slog.Any("error", err))

	if ve, ok := domain.AsValidation(err); ok {
		log.Info("request rejected")
		msg := ve.Message
		if msg == "" {
			msg = "validation failed"
		}
		h.writeJSON(w, http.StatusUnprocessableEntity, errorBody{Error: msg, Details: ve.Fields})
		return
	}

	switch {
	case errors.Is(err, domain.ErrUnauthorized):
		body := errorBody{Error: "unauthorized"}
		if s, ok := sessionFrom(r.Context()); ok {
			if h.svc.Sessions.Invalidate(r.Context(), s.ID) {
				body.Redirect = h.session.LoginView
			}
			h.clearCookie(w)
		}
		log.Warn("session rejected", slog.Bool("redirect", body.Redirect != ""))
		h.writeJSON(w, http.StatusUnauthorized, body)
	case errors.Is(err, domain.ErrForbidden):
		log.Info("forbidden")
		h.writeJSON(w, http.StatusForbidden, errorBody{Error: "forbidden"})
	case errors.Is(err, domain.ErrNotFound):
		log.Info("not found")
		h.writeJSON(w, http.StatusNotFound, errorBody{Error: "not found"})
	case errors.Is(err, domain.ErrSubmissionInProgress),
		errors.Is(err, domain.ErrDraftSubmitted),
		errors.Is(err, domain.ErrStepOutOfRange):
		log.Info("conflict")
		h.writeJSON(w, http.StatusConflict, errorBody{Error: err.Error()})
	case domain.IsTransient(err):
		log.Error("upstream failure")
		h.writeJSON(w, http.StatusBadGateway, errorBody{Error: "the ads platform is unavailable, please try again", Retryable: true})
	default:
		log.Error("internal error")
		h.writeJSON(w, http.StatusInternalServerError, errorBody{Error: "internal error"})
	}
}

package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/pixelsmith/contactrelay/internal/email"
	"github.com/pixelsmith/contactrelay/internal/middleware"
	"github.com/pixelsmith/contactrelay/internal/model"
	"github.com/pixelsmith/contactrelay/internal/service"
)

// JSON helper functions

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// writeError writes the flat error shape the site expects. Provider
// detail rides along as "details" outside production only.
func (h *Handler) writeError(w http.ResponseWriter, status int, message string, cause error) {
	resp := map[string]interface{}{"error": message}
	if cause != nil && !h.cfg.IsProduction() {
		resp["details"] = cause.Error()
	}
	writeJSON(w, status, resp)
}

func readJSON(r *http.Request, v interface{}) error {
	if r.Body == nil {
		return errors.New("request body is empty")
	}
	defer r.Body.Close()

	decoder := json.NewDecoder(r.Body)
	return decoder.Decode(v)
}

// SubmitContact handles POST /api/v1/contact.
// It validates the submission, then relays it as an owner notification
// followed by an auto-reply to the submitter.
func (h *Handler) SubmitContact(w http.ResponseWriter, r *http.Request) {
	log := h.log.WithRequestID(middleware.GetRequestID(r.Context()))

	var sub model.Submission
	if err := readJSON(r, &sub); err != nil {
		h.writeError(w, http.StatusBadRequest, "Invalid request body.", nil)
		return
	}

	err := h.contactSvc.Submit(r.Context(), sub)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNameRequired):
			h.writeError(w, http.StatusBadRequest, "Full name is required.", nil)
		case errors.Is(err, service.ErrEmailRequired):
			h.writeError(w, http.StatusBadRequest, "Email is required.", nil)
		case errors.Is(err, service.ErrMessageRequired):
			h.writeError(w, http.StatusBadRequest, "Message is required.", nil)
		case errors.Is(err, service.ErrInvalidEmail):
			h.writeError(w, http.StatusBadRequest, "Please provide a valid email address.", nil)
		case errors.Is(err, service.ErrNotConfigured), errors.Is(err, email.ErrNotConfigured):
			// Generic on purpose: never name which credential is missing
			log.Error().Err(err).Msg("contact relay misconfigured")
			h.writeError(w, http.StatusInternalServerError, "Email service is not configured.", nil)
		case errors.Is(err, email.ErrAuthFailed):
			log.Error().Err(err).Msg("email provider rejected credentials")
			h.writeError(w, http.StatusInternalServerError, "Email service authentication failed.", err)
		case errors.Is(err, email.ErrUnreachable):
			log.Error().Err(err).Msg("email provider unreachable")
			h.writeError(w, http.StatusInternalServerError, "Email service is unreachable. Please try again later.", err)
		default:
			log.Error().Err(err).Msg("contact submission failed")
			h.writeError(w, http.StatusInternalServerError, "Failed to send email.", err)
		}
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"message": "Email sent successfully!",
	})
}

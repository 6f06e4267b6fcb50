// internal/adapters/in/http/handlers/contact_handler.go
package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	usecase "sprout/internal/application/usecase"
)

// ContactHandler serves the help-page contact form.
//
//	POST /help/contact  {email, name, subject, body}
//
// Mail delivery failure is non-fatal: logged, 502 to the caller, the
// storefront keeps running.
type ContactHandler struct {
	uc *usecase.InquiryUsecase
}

func NewContactHandler(uc *usecase.InquiryUsecase) http.Handler {
	return &ContactHandler{uc: uc}
}

func (h *ContactHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w)
		return
	}
	if h.uc == nil {
		writeErr(w, http.StatusServiceUnavailable, "contact form is not configured")
		return
	}

	var req struct {
		Email   string `json:"email"`
		Name    string `json:"name"`
		Subject string `json:"subject"`
		Body    string `json:"body"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid json body")
		return
	}

	inq, err := h.uc.Submit(r.Context(), req.Email, req.Name, req.Subject, req.Body)
	if err != nil {
		if errors.Is(err, usecase.ErrInquiryInvalidArgument) {
			writeErr(w, http.StatusBadRequest, "email and body are required")
			return
		}
		log.Printf("[contact_handler] submit failed (non-fatal): %v", err)
		writeErr(w, http.StatusBadGateway, "could not deliver your message, please try again")
		return
	}

	writeJSON(w, http.StatusAccepted, map[string]any{
		"id":     inq.ID,
		"status": "sent",
	})
}

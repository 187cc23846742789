package api

import (
	"encoding/json"
	"net/http"

	"github.com/arina-sh/contact-api/internal/contact"
	"github.com/arina-sh/contact-api/internal/pkg/httputil"
	"github.com/arina-sh/contact-api/internal/pkg/logger"
)

// Handlers holds the contact API handlers.
type Handlers struct {
	pipeline *contact.Pipeline
}

// NewHandlers creates the handler set for the contact API.
func NewHandlers(pipeline *contact.Pipeline) *Handlers {
	return &Handlers{pipeline: pipeline}
}

// SubmitContact handles one contact-form submission.
//
//	POST /api/contact
//
// The request body is parsed here; everything after parsing is the
// pipeline's job. Responses use the fixed message strings of the API
// contract.
func (h *Handlers) SubmitContact(w http.ResponseWriter, r *http.Request) {
	var sub contact.Submission
	if err := json.NewDecoder(r.Body).Decode(&sub); err != nil {
		logger.Warn("submission body unreadable", "remote_addr", r.RemoteAddr, "error", err)
		httputil.BadRequest(w, contact.ReasonNoData)
		return
	}

	res := h.pipeline.Run(r.Context(), r.RemoteAddr, &sub)
	if res.Error != "" {
		httputil.Error(w, res.Status, res.Error)
		return
	}

	httputil.Created(w, httputil.SuccessResponse{
		Success: true,
		Message: contact.MsgSuccess,
	})
}

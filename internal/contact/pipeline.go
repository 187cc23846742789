package contact

import (
	"context"
	"net/http"
	"strings"

	"github.com/arina-sh/contact-api/internal/pkg/logger"
)

// Client-facing messages produced by the pipeline, in addition to the
// validation reasons in validate.go.
const (
	ErrMissingToken = "Missing reCAPTCHA token"
	ErrInvalidToken = "Invalid reCAPTCHA token"
	ErrSaveFailed   = "Failed to save message"
	ErrNotifyFailed = "Failed to send email notification. Please try again later."
	ErrUnexpected   = "An unexpected error occurred"
	MsgSuccess      = "Message sent successfully"
)

// Verifier decides whether a submission came from a human. Implementations
// must fail closed: any internal failure yields false.
type Verifier interface {
	Verify(ctx context.Context, token string) bool
}

// Store persists accepted submissions. Save collapses all internal
// failures to false; callers treat false as a uniform server-side error.
type Store interface {
	Save(ctx context.Context, s Sanitized) bool
}

// Notifier delivers one email notification per accepted submission.
// Delivery is synchronous and attempted exactly once.
type Notifier interface {
	Notify(ctx context.Context, s Sanitized) error
}

// state names the pipeline stages for logging. A run advances strictly
// in order and exits at its first failure.
type state string

const (
	stateReceived   state = "received"
	stateVerifying  state = "verifying"
	stateValidating state = "validating"
	statePersisting state = "persisting"
	stateNotifying  state = "notifying"
	stateCompleted  state = "completed"
)

// Result is the outcome of one pipeline run, ready to serialize at the
// HTTP boundary.
type Result struct {
	Status int    // HTTP status code
	Error  string // client-facing error message, empty on success
}

func rejected(msg string) Result { return Result{Status: http.StatusBadRequest, Error: msg} }
func failed(msg string) Result   { return Result{Status: http.StatusInternalServerError, Error: msg} }

// Pipeline orchestrates one submission through verification, validation,
// sanitization, persistence and notification.
type Pipeline struct {
	verifier Verifier
	store    Store
	notifier Notifier
}

// NewPipeline wires a pipeline from its collaborators.
func NewPipeline(verifier Verifier, store Store, notifier Notifier) *Pipeline {
	return &Pipeline{verifier: verifier, store: store, notifier: notifier}
}

// Run processes a single submission and returns the HTTP outcome.
// remoteAddr is logged on every rejection and failure path. The run is
// strictly sequential; there is no retry and no cancellation beyond ctx.
func (p *Pipeline) Run(ctx context.Context, remoteAddr string, sub *Submission) Result {
	// Received: the submission must exist and carry a verification token.
	if sub == nil {
		logger.Warn("submission rejected", "state", stateReceived, "remote_addr", remoteAddr, "reason", ReasonNoData)
		return rejected(ReasonNoData)
	}
	if strings.TrimSpace(sub.RecaptchaToken) == "" {
		logger.Warn("submission rejected", "state", stateReceived, "remote_addr", remoteAddr, "reason", "no verification token")
		return rejected(ErrMissingToken)
	}

	// Verifying: fail-closed bot check, no retry.
	if !p.verifier.Verify(ctx, sub.RecaptchaToken) {
		logger.Warn("submission rejected", "state", stateVerifying, "remote_addr", remoteAddr, "reason", "verification failed")
		return rejected(ErrInvalidToken)
	}

	// Validating: first failed check wins; reasons reflect raw input.
	ok, reason := Validate(sub)
	if !ok {
		logger.Warn("submission rejected", "state", stateValidating, "remote_addr", remoteAddr, "reason", reason)
		return rejected(reason)
	}

	// Sanitizing happens on the Validating→Persisting transition; it is
	// not an externally observable state.
	clean := sanitizeAll(
		strings.TrimSpace(sub.Name),
		strings.TrimSpace(sub.Email),
		strings.TrimSpace(sub.Message),
	)

	// Persisting: boolean contract, generic failure upstream.
	if !p.store.Save(ctx, clean) {
		logger.Error("submission failed", "state", statePersisting, "remote_addr", remoteAddr, "email", clean.Email)
		return failed(ErrSaveFailed)
	}

	// Notifying: single synchronous attempt. A delivery failure is fatal
	// to the request even though the row is already durable; the caller
	// sees a 500 and may resubmit, so the saved record is logged for
	// operator reconciliation.
	if err := p.notifier.Notify(ctx, clean); err != nil {
		logger.Warn("notification failed after save", "state", stateNotifying,
			"remote_addr", remoteAddr, "email", clean.Email, "error", err)
		return failed(ErrNotifyFailed)
	}

	logger.Info("submission accepted", "state", stateCompleted, "remote_addr", remoteAddr, "email", clean.Email)
	return Result{Status: http.StatusCreated}
}

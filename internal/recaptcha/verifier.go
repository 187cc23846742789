// Package recaptcha verifies contact-form tokens against Google's
// reCAPTCHA v3 siteverify endpoint. The external contract is a single
// fail-closed boolean; the internal result is typed so every failure
// branch can be logged with enough context to diagnose offline.
package recaptcha

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"

	"github.com/arina-sh/contact-api/internal/config"
	"github.com/arina-sh/contact-api/internal/pkg/logger"
)

// outcome classifies a verification attempt before it is collapsed to
// the boolean boundary contract.
type outcome int

const (
	outcomeOK outcome = iota
	outcomeMissingToken
	outcomeTransportError
	outcomeMalformedResponse
	outcomeRejected
	outcomeLowScore
)

// result is the typed verification result kept inside the package.
type result struct {
	outcome    outcome
	score      float64
	errorCodes []string
	err        error
}

// siteverifyResponse mirrors the JSON body returned by the verification
// service.
type siteverifyResponse struct {
	Success     bool     `json:"success"`
	Score       float64  `json:"score"`
	Action      string   `json:"action"`
	ChallengeTS string   `json:"challenge_ts"`
	Hostname    string   `json:"hostname"`
	ErrorCodes  []string `json:"error-codes"`
}

// Verifier calls the external human-verification service.
type Verifier struct {
	secret    string
	minScore  float64
	verifyURL string
	client    *http.Client
}

// New creates a Verifier from configuration. The HTTP client carries an
// explicit timeout so a slow verification service cannot block a request
// indefinitely.
func New(cfg config.RecaptchaConfig) *Verifier {
	return &Verifier{
		secret:    cfg.Secret,
		minScore:  cfg.MinScore,
		verifyURL: cfg.VerifyURL,
		client:    &http.Client{Timeout: cfg.Timeout()},
	}
}

// Verify reports whether the token belongs to a trusted human submission.
// Every internal failure (missing token, network error, malformed
// response, service rejection, low score) yields false; there is no
// retry. A failed verification terminates the submission attempt.
func (v *Verifier) Verify(ctx context.Context, token string) bool {
	res := v.check(ctx, token)

	switch res.outcome {
	case outcomeOK:
		logger.Info("verification passed", "score", res.score)
		return true
	case outcomeMissingToken:
		logger.Warn("verification skipped", "reason", "empty token")
	case outcomeTransportError:
		logger.Error("verification transport failure", "error", res.err)
	case outcomeMalformedResponse:
		logger.Error("verification response malformed", "error", res.err)
	case outcomeRejected:
		logger.Warn("verification rejected by service", "error_codes", strings.Join(res.errorCodes, ","))
	case outcomeLowScore:
		logger.Warn("verification score below threshold", "score", res.score, "min_score", v.minScore)
	}
	return false
}

func (v *Verifier) check(ctx context.Context, token string) result {
	if strings.TrimSpace(token) == "" {
		return result{outcome: outcomeMissingToken}
	}

	form := url.Values{
		"secret":   {v.secret},
		"response": {token},
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, v.verifyURL, strings.NewReader(form.Encode()))
	if err != nil {
		return result{outcome: outcomeTransportError, err: err}
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := v.client.Do(req)
	if err != nil {
		return result{outcome: outcomeTransportError, err: err}
	}
	defer resp.Body.Close()

	var body siteverifyResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return result{outcome: outcomeMalformedResponse, err: err}
	}

	if !body.Success {
		return result{outcome: outcomeRejected, errorCodes: body.ErrorCodes}
	}
	if body.Score < v.minScore {
		return result{outcome: outcomeLowScore, score: body.Score}
	}
	return result{outcome: outcomeOK, score: body.Score}
}

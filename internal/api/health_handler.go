package api

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"time"

	"github.com/arina-sh/contact-api/internal/pkg/httputil"
)

// HealthStatus reports the overall health of the service.
type HealthStatus struct {
	Status string                    `json:"status"` // "healthy" or "degraded"
	Uptime string                    `json:"uptime"`
	Checks map[string]ComponentCheck `json:"checks"`
}

// ComponentCheck reports the health of a single dependency.
type ComponentCheck struct {
	Status  string `json:"status"` // "up", "down", "not_configured"
	Latency string `json:"latency,omitempty"`
	Message string `json:"message,omitempty"`
}

// HealthChecker probes the service's dependencies. Only the database is
// probed: verification and mail are request-scoped calls with no health
// surface of their own.
type HealthChecker struct {
	db        *sql.DB
	startTime time.Time
}

// NewHealthChecker creates a HealthChecker. db may be nil, in which case
// the database check reports "not_configured".
func NewHealthChecker(db *sql.DB) *HealthChecker {
	return &HealthChecker{db: db, startTime: time.Now()}
}

// HandleHealth returns the health of the service and its database.
// Always responds 200; the status field conveys health.
//
//	GET /health
func (hc *HealthChecker) HandleHealth(w http.ResponseWriter, r *http.Request) {
	checks := map[string]ComponentCheck{
		"database": hc.checkDatabase(r.Context()),
	}

	overall := "healthy"
	for _, c := range checks {
		if c.Status == "down" {
			overall = "degraded"
		}
	}

	httputil.OK(w, HealthStatus{
		Status: overall,
		Uptime: time.Since(hc.startTime).Truncate(time.Second).String(),
		Checks: checks,
	})
}

func (hc *HealthChecker) checkDatabase(ctx context.Context) ComponentCheck {
	if hc.db == nil {
		return ComponentCheck{Status: "not_configured"}
	}

	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	start := time.Now()
	if err := hc.db.PingContext(ctx); err != nil {
		return ComponentCheck{Status: "down", Message: err.Error()}
	}
	return ComponentCheck{
		Status:  "up",
		Latency: fmt.Sprintf("%dms", time.Since(start).Milliseconds()),
	}
}

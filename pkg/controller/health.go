package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"go.uber.org/zap"

	"mca/pkg/logger"
)

// Pinger is a dependency whose liveness can be checked.
type Pinger interface {
	Ping(ctx context.Context) error
}

type healthResponse struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

// Health answers 200 when pinger responds within timeout and 503 otherwise.
// A zero timeout only bounds the ping by the request context.
func Health(pinger Pinger, timeout time.Duration) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, timeout)
			defer cancel()
		}

		status, res := http.StatusOK, healthResponse{Status: "ok"}
		if err := pinger.Ping(ctx); err != nil {
			logger.Warn(ctx, "health check failed", zap.Error(err))
			status, res = http.StatusServiceUnavailable, healthResponse{Status: "unavailable", Error: err.Error()}
		}

		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Cache-Control", "no-store")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(res)
	})
}

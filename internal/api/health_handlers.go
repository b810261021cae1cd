package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/peachieglow/glow/pkg/httputil"
)

const healthTimeout = 2 * time.Second

type HealthResponse struct {
	Status   string `json:"status"`
	Storage  string `json:"storage"`
	Degraded bool   `json:"degraded"`
}

// Health answers 200 while the storage is reachable, read-only mode included,
// and 503 when the ping fails.
func (s *Server) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), healthTimeout)
	defer cancel()
	resp := HealthResponse{Status: "ok", Storage: "up", Degraded: s.health.Degraded()}
	if resp.Degraded {
		resp.Status = "degraded"
	}
	if err := s.health.Ping(ctx); err != nil {
		GetLoggerFromCtx(r.Context()).Error("health check error: storage ping failed", slog.String("error", err.Error()))
		resp.Status = "unavailable"
		resp.Storage = "down"
		httputil.WriteJSONResponse(w, http.StatusServiceUnavailable, resp)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, resp)
}

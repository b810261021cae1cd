package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/bytedance/sonic"

	"github.com/peachieglow/glow/internal/service"
	"github.com/peachieglow/glow/pkg/httputil"
)

const dateLayout = "2006-01-02"

// RecordHabit godoc
// @Summary Toggle today's entry of a task
// @Tags habits
// @Accept json
// @Produce json
// @Param request body service.RecordHabitRequest true "habit toggle"
// @Success 200 {object} service.RecordHabitResult
// @Failure 400 {object} httputil.ErrorResponse
// @Failure 404 {object} httputil.ErrorResponse
// @Failure 500 {object} httputil.ErrorResponse
// @Failure 503 {object} httputil.ErrorResponse
// @Router /habits [post]
func (s *Server) RecordHabit(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req service.RecordHabitRequest
	defer r.Body.Close()
	err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("recording habit error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}
	logger = logger.With(slog.String("uid", req.UserID))
	ctx, cancel := context.WithTimeout(r.Context(), s.requestTimeout)
	defer cancel()
	result, err := s.habitsService.RecordHabit(ctx, &req)
	if err != nil {
		writeServiceError(w, logger, "recording habit", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, result)
	logger.Info("habit recorded",
		slog.String("task_id", req.TaskID),
		slog.Bool("completed", req.Completed),
		slog.Int("xp_earned", result.XPEarned),
		slog.Int("new_achievements", len(result.NewAchievements)),
	)
}

// GetHabits godoc
// @Summary List the habit ledger
// @Tags habits
// @Produce json
// @Param userId query string true "user id"
// @Param date query string false "day as YYYY-MM-DD"
// @Success 200 {object} service.HabitsOverview
// @Failure 400 {object} httputil.ErrorResponse
// @Failure 404 {object} httputil.ErrorResponse
// @Failure 500 {object} httputil.ErrorResponse
// @Router /habits [get]
func (s *Server) GetHabits(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	userID := r.URL.Query().Get("userId")
	if userID == "" {
		logger.Error("getting habits error: no user id")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "userId is required")
		return
	}
	var date *time.Time
	if raw := r.URL.Query().Get("date"); raw != "" {
		parsed, err := time.Parse(dateLayout, raw)
		if err != nil {
			logger.Error("getting habits error: invalid date", slog.String("date", raw))
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid date, expected YYYY-MM-DD")
			return
		}
		date = &parsed
	}
	ctx, cancel := context.WithTimeout(r.Context(), s.requestTimeout)
	defer cancel()
	overview, err := s.habitsService.GetHabits(ctx, userID, date)
	if err != nil {
		writeServiceError(w, logger, "getting habits", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, overview)
	logger.Info("successfully provided habits")
}

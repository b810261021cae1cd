package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/bytedance/sonic"

	"github.com/peachieglow/glow/internal/service"
	"github.com/peachieglow/glow/pkg/entity"
	"github.com/peachieglow/glow/pkg/httputil"
)

type EvaluateRequest struct {
	UserID string `json:"userId"`
}

type EvaluateResponse struct {
	NewAchievements []entity.UserAchievement `json:"newAchievements"`
}

// ListAchievements godoc
// @Summary List achievements with user progress
// @Tags achievements
// @Produce json
// @Param userId query string true "user id"
// @Success 200 {object} service.AchievementsOverview
// @Failure 400 {object} httputil.ErrorResponse
// @Failure 404 {object} httputil.ErrorResponse
// @Failure 500 {object} httputil.ErrorResponse
// @Router /achievements [get]
func (s *Server) ListAchievements(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	userID := r.URL.Query().Get("userId")
	if userID == "" {
		logger.Error("listing achievements error: no user id")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "userId is required")
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), s.requestTimeout)
	defer cancel()
	overview, err := s.achievementsService.ListAchievements(ctx, userID)
	if err != nil {
		writeServiceError(w, logger, "listing achievements", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, overview)
	logger.Info("successfully provided achievements")
}

// UnlockAchievement godoc
// @Summary Unlock an achievement manually
// @Tags achievements
// @Accept json
// @Produce json
// @Param request body service.UnlockRequest true "user and achievement"
// @Success 200 {object} service.UnlockResult
// @Failure 400 {object} httputil.ErrorResponse
// @Failure 404 {object} httputil.ErrorResponse
// @Failure 500 {object} httputil.ErrorResponse
// @Failure 503 {object} httputil.ErrorResponse
// @Router /achievements/unlock [post]
func (s *Server) UnlockAchievement(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req service.UnlockRequest
	defer r.Body.Close()
	err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("unlocking achievement error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}
	logger = logger.With(slog.String("uid", req.UserID))
	ctx, cancel := context.WithTimeout(r.Context(), s.requestTimeout)
	defer cancel()
	result, err := s.achievementsService.UnlockManually(ctx, &req)
	if err != nil {
		writeServiceError(w, logger, "unlocking achievement", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, result)
	logger.Info("achievement unlock handled",
		slog.String("achievement_id", req.AchievementID),
		slog.Int("xp_earned", result.XPEarned),
	)
}

// EvaluateAchievements godoc
// @Summary Unlock every achievement the user qualifies for
// @Tags achievements
// @Accept json
// @Produce json
// @Param request body EvaluateRequest true "user"
// @Success 200 {object} EvaluateResponse
// @Failure 400 {object} httputil.ErrorResponse
// @Failure 404 {object} httputil.ErrorResponse
// @Failure 500 {object} httputil.ErrorResponse
// @Failure 503 {object} httputil.ErrorResponse
// @Router /achievements/evaluate [post]
func (s *Server) EvaluateAchievements(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req EvaluateRequest
	defer r.Body.Close()
	err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("evaluating achievements error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}
	logger = logger.With(slog.String("uid", req.UserID))
	ctx, cancel := context.WithTimeout(r.Context(), s.requestTimeout)
	defer cancel()
	unlocked, err := s.achievementsService.Evaluate(ctx, req.UserID)
	if err != nil {
		writeServiceError(w, logger, "evaluating achievements", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, EvaluateResponse{NewAchievements: unlocked})
	logger.Info("achievements evaluated", slog.Int("new_achievements", len(unlocked)))
}

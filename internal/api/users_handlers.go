package api

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/bytedance/sonic"
	"github.com/go-chi/chi/v5"

	"github.com/peachieglow/glow/internal/service"
	"github.com/peachieglow/glow/pkg/entity"
	"github.com/peachieglow/glow/pkg/httputil"
)

type ActivitiesResponse struct {
	Activities []entity.UserActivity `json:"activities"`
}

// ProvisionUser godoc
// @Summary Provision a user
// @Tags users
// @Accept json
// @Produce json
// @Param request body service.ProvisionUserRequest true "profile"
// @Success 201 {object} entity.User
// @Failure 400 {object} httputil.ErrorResponse
// @Failure 409 {object} httputil.ErrorResponse
// @Failure 500 {object} httputil.ErrorResponse
// @Failure 503 {object} httputil.ErrorResponse
// @Router /users [post]
func (s *Server) ProvisionUser(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req service.ProvisionUserRequest
	defer r.Body.Close()
	err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("provisioning user error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), s.requestTimeout)
	defer cancel()
	user, err := s.userService.ProvisionUser(ctx, &req)
	if err != nil {
		writeServiceError(w, logger, "provisioning user", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, user)
	logger.Info("user provisioned", slog.String("uid", user.ID))
}

// UpdateProfile godoc
// @Summary Merge-patch a profile
// @Tags users
// @Accept json
// @Produce json
// @Param userId path string true "user id"
// @Param request body service.UpdateProfileRequest true "changed fields"
// @Success 200 {object} entity.User
// @Failure 400 {object} httputil.ErrorResponse
// @Failure 404 {object} httputil.ErrorResponse
// @Failure 500 {object} httputil.ErrorResponse
// @Failure 503 {object} httputil.ErrorResponse
// @Router /users/{userId} [patch]
func (s *Server) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req service.UpdateProfileRequest
	defer r.Body.Close()
	err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("updating profile error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), s.requestTimeout)
	defer cancel()
	user, err := s.userService.UpdateProfile(ctx, chi.URLParam(r, "userId"), &req)
	if err != nil {
		writeServiceError(w, logger, "updating profile", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, user)
	logger.Info("profile updated")
}

// GetUserStats godoc
// @Summary User dashboard statistics
// @Tags users
// @Produce json
// @Param userId path string true "user id"
// @Success 200 {object} service.UserStats
// @Failure 404 {object} httputil.ErrorResponse
// @Failure 500 {object} httputil.ErrorResponse
// @Router /users/{userId}/stats [get]
func (s *Server) GetUserStats(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	ctx, cancel := context.WithTimeout(r.Context(), s.requestTimeout)
	defer cancel()
	stats, err := s.userService.GetUserStats(ctx, chi.URLParam(r, "userId"))
	if err != nil {
		writeServiceError(w, logger, "getting user stats", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, stats)
	logger.Info("successfully provided user stats")
}

// RecentActivity godoc
// @Summary Recent activity feed
// @Tags users
// @Produce json
// @Param userId path string true "user id"
// @Param limit query int false "default 10, max 100"
// @Success 200 {object} ActivitiesResponse
// @Failure 400 {object} httputil.ErrorResponse
// @Failure 404 {object} httputil.ErrorResponse
// @Failure 500 {object} httputil.ErrorResponse
// @Router /users/{userId}/activities [get]
func (s *Server) RecentActivity(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		var err error
		limit, err = strconv.Atoi(raw)
		if err != nil {
			logger.Error("getting activities error: invalid limit", slog.String("limit", raw))
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid limit value")
			return
		}
	}
	ctx, cancel := context.WithTimeout(r.Context(), s.requestTimeout)
	defer cancel()
	activities, err := s.userService.RecentActivity(ctx, chi.URLParam(r, "userId"), limit)
	if err != nil {
		writeServiceError(w, logger, "getting activities", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, ActivitiesResponse{Activities: activities})
	logger.Info("successfully provided activities", slog.Int("count", len(activities)))
}

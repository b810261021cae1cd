package api

import (
	"errors"
	"log/slog"
	"net/http"

	errorvalues "github.com/peachieglow/glow/internal/error_values"
	"github.com/peachieglow/glow/pkg/httputil"
)

// writeServiceError maps a service error onto a status code. Messages of
// unexpected errors are logged and never sent to the client.
func writeServiceError(w http.ResponseWriter, logger *slog.Logger, op string, err error) {
	switch {
	case errors.Is(err, errorvalues.ErrValidation):
		logger.Error(op+" error: invalid request", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, errorvalues.ErrUserNotFound):
		logger.Error(op + " error: user not found")
		httputil.WriteErrorResponse(w, http.StatusNotFound, "user not found")
	case errors.Is(err, errorvalues.ErrAchievementNotFound):
		logger.Error(op + " error: achievement not found")
		httputil.WriteErrorResponse(w, http.StatusNotFound, "achievement not found")
	case errors.Is(err, errorvalues.ErrNotFound):
		logger.Error(op+" error: not found", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusNotFound, "resource not found")
	case errors.Is(err, errorvalues.ErrUserExists):
		logger.Error(op + " error: existed user")
		httputil.WriteErrorResponse(w, http.StatusConflict, "user with such id or email already exists")
	case errors.Is(err, errorvalues.ErrConflict):
		logger.Error(op+" error: conflict", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusConflict, "request conflicts with current state")
	case errors.Is(err, errorvalues.ErrStorageDegraded):
		logger.Error(op + " error: storage is read-only")
		httputil.WriteErrorResponse(w, http.StatusServiceUnavailable, "service is temporarily read-only, retry later")
	default:
		logger.Error(op+" error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error during "+op)
	}
}

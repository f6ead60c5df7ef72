package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/classaway/internal/logger"
	"github.com/sbilibin2017/classaway/internal/middlewares"
	"github.com/sbilibin2017/classaway/internal/services"
)

// MessageResponse is the {msg} body used by the auth endpoints.
// swagger:model MessageResponse
type MessageResponse struct {
	// Message
	// default: User already exists
	Msg string `json:"msg"`
}

// ErrorResponse is the {error} body used by the OD and placement endpoints.
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// default: OD not found
	Error string `json:"error"`
}

// DeletedResponse confirms a deletion.
// swagger:model DeletedResponse
type DeletedResponse struct {
	// Confirmation message
	// default: OD deleted
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// currentUser returns the id stored by AuthMiddleware. Handlers are mounted
// behind it, so a miss means the router is misconfigured.
func currentUser(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	userID, ok := middlewares.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, MessageResponse{Msg: "Unauthorized"})
	}
	return userID, ok
}

// writeResourceError maps service errors of the OD and placement endpoints.
func writeResourceError(w http.ResponseWriter, err error, notFound string) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		writeJSON(w, http.StatusNotFound, ErrorResponse{Error: notFound})
	case errors.Is(err, services.ErrValidation):
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	default:
		logger.Log.Errorw("internal server error", "err", err)
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
	}
}

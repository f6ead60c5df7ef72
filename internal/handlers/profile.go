package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sbilibin2017/classaway/internal/logger"
	"github.com/sbilibin2017/classaway/internal/models"
	"github.com/sbilibin2017/classaway/internal/services"
)

//go:generate mockgen -source=profile.go -destination=profile_mock.go -package=handlers

type ProfileGetter interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*models.User, error)
}

type ProfileUpdater interface {
	UpdateProfile(ctx context.Context, userID uuid.UUID, upd models.ProfileUpdate) (*models.User, error)
}

// NewGetProfileHandler returns the caller's profile.
// @Summary Get own profile
// @Tags auth
// @Produce json
// @Success 200 {object} models.User
// @Failure 401 {object} handlers.MessageResponse "No token provided / Invalid token"
// @Failure 404 {object} handlers.MessageResponse "User not found"
// @Router /auth/profile [get]
// @Security BearerAuth
func NewGetProfileHandler(svc ProfileGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUser(w, r)
		if !ok {
			return
		}

		user, err := svc.GetProfile(r.Context(), userID)
		if err != nil {
			if errors.Is(err, services.ErrNotFound) {
				writeJSON(w, http.StatusNotFound, MessageResponse{Msg: "User not found"})
				return
			}
			logger.Log.Errorw("internal server error", "err", err)
			writeJSON(w, http.StatusInternalServerError, MessageResponse{Msg: "Failed to fetch profile"})
			return
		}

		writeJSON(w, http.StatusOK, user)
	}
}

// NewUpdateProfileHandler updates whitelisted fields of the caller's profile.
// Unknown keys, password included, are ignored.
// @Summary Update own profile
// @Tags auth
// @Accept json
// @Produce json
// @Param profileUpdate body models.ProfileUpdate true "Fields to change"
// @Success 200 {object} models.User
// @Failure 400 {object} handlers.MessageResponse "Invalid request / email already in use"
// @Failure 401 {object} handlers.MessageResponse "No token provided / Invalid token"
// @Failure 404 {object} handlers.MessageResponse "User not found"
// @Router /auth/profile [put]
// @Security BearerAuth
func NewUpdateProfileHandler(svc ProfileUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUser(w, r)
		if !ok {
			return
		}

		var upd models.ProfileUpdate
		if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
			writeJSON(w, http.StatusBadRequest, MessageResponse{Msg: "Invalid request body"})
			return
		}

		user, err := svc.UpdateProfile(r.Context(), userID, upd)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrNotFound):
				writeJSON(w, http.StatusNotFound, MessageResponse{Msg: "User not found"})
			case errors.Is(err, services.ErrEmailTaken):
				writeJSON(w, http.StatusBadRequest, MessageResponse{Msg: "Email already in use"})
			case errors.Is(err, services.ErrValidation):
				writeJSON(w, http.StatusBadRequest, MessageResponse{Msg: err.Error()})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeJSON(w, http.StatusInternalServerError, MessageResponse{Msg: "Failed to update profile"})
			}
			return
		}

		writeJSON(w, http.StatusOK, user)
	}
}

// RegisterProfileHandlers registers the profile routes.
func RegisterProfileHandlers(r chi.Router, get, update http.HandlerFunc) {
	r.Get("/auth/profile", get)
	r.Put("/auth/profile", update)
}

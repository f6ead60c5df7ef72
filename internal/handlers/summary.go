package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sbilibin2017/classaway/internal/models"
)

//go:generate mockgen -source=summary.go -destination=summary_mock.go -package=handlers

type SummaryGetter interface {
	Summary(ctx context.Context, userID uuid.UUID) (*models.Summary, error)
}

// NewSummaryHandler returns the caller's dashboard counts.
// @Summary Dashboard summary
// @Tags dashboard
// @Produce json
// @Success 200 {object} models.Summary
// @Failure 401 {object} handlers.MessageResponse
// @Failure 500 {object} handlers.ErrorResponse
// @Router /dashboard/summary [get]
// @Security BearerAuth
func NewSummaryHandler(svc SummaryGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUser(w, r)
		if !ok {
			return
		}

		s, err := svc.Summary(r.Context(), userID)
		if err != nil {
			writeResourceError(w, err, "Not found")
			return
		}

		writeJSON(w, http.StatusOK, s)
	}
}

// RegisterSummaryHandler registers the dashboard route.
func RegisterSummaryHandler(r chi.Router, h http.HandlerFunc) {
	r.Get("/dashboard/summary", h)
}

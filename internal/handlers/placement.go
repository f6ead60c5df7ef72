package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sbilibin2017/classaway/internal/models"
)

//go:generate mockgen -source=placement.go -destination=placement_mock.go -package=handlers

type PlacementCreator interface {
	Create(ctx context.Context, userID uuid.UUID, in models.PlacementInput) (*models.Placement, error)
}

type PlacementUpserter interface {
	Upsert(ctx context.Context, userID uuid.UUID, in models.PlacementInput) (*models.Placement, error)
}

type PlacementLister interface {
	List(ctx context.Context, userID uuid.UUID) ([]models.Placement, error)
}

type PlacementDeleter interface {
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

const placementNotFound = "Placement not found"

type placementWriteFunc func(ctx context.Context, userID uuid.UUID, in models.PlacementInput) (*models.Placement, error)

func placementWriteHandler(write placementWriteFunc, status int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUser(w, r)
		if !ok {
			return
		}

		var in models.PlacementInput
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: errInvalidBody.Error()})
			return
		}

		p, err := write(r.Context(), userID, in)
		if err != nil {
			writeResourceError(w, err, placementNotFound)
			return
		}

		writeJSON(w, status, p)
	}
}

// NewCreatePlacementHandler always records a new placement entry.
// @Summary Create placement
// @Description Inserts a new entry even when the company is already tracked.
// @Tags placement
// @Accept json
// @Produce json
// @Param placement body models.PlacementInput true "Placement fields"
// @Success 201 {object} models.Placement
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 401 {object} handlers.MessageResponse
// @Router /placement [post]
// @Security BearerAuth
func NewCreatePlacementHandler(svc PlacementCreator) http.HandlerFunc {
	return placementWriteHandler(svc.Create, http.StatusCreated)
}

// NewUpsertPlacementHandler keeps one entry per company.
// @Summary Create or update placement by company
// @Description Updates the caller's entry for the company in place, or inserts one.
// @Tags placement
// @Accept json
// @Produce json
// @Param placement body models.PlacementInput true "Placement fields"
// @Success 200 {object} models.Placement
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 401 {object} handlers.MessageResponse
// @Router /placement [put]
// @Security BearerAuth
func NewUpsertPlacementHandler(svc PlacementUpserter) http.HandlerFunc {
	return placementWriteHandler(svc.Upsert, http.StatusOK)
}

// NewListPlacementsHandler lists the caller's placements in insertion order.
// @Summary List placements
// @Tags placement
// @Produce json
// @Success 200 {array} models.Placement
// @Failure 401 {object} handlers.MessageResponse
// @Router /placement [get]
// @Security BearerAuth
func NewListPlacementsHandler(svc PlacementLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUser(w, r)
		if !ok {
			return
		}

		ps, err := svc.List(r.Context(), userID)
		if err != nil {
			writeResourceError(w, err, placementNotFound)
			return
		}

		writeJSON(w, http.StatusOK, ps)
	}
}

// NewDeletePlacementHandler deletes one of the caller's placements.
// @Summary Delete placement
// @Tags placement
// @Produce json
// @Param id path string true "Placement id"
// @Success 200 {object} handlers.DeletedResponse
// @Failure 401 {object} handlers.MessageResponse
// @Failure 404 {object} handlers.ErrorResponse "Placement not found"
// @Router /placement/{id} [delete]
// @Security BearerAuth
func NewDeletePlacementHandler(svc PlacementDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUser(w, r)
		if !ok {
			return
		}

		id, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			writeJSON(w, http.StatusNotFound, ErrorResponse{Error: placementNotFound})
			return
		}

		if err := svc.Delete(r.Context(), userID, id); err != nil {
			writeResourceError(w, err, placementNotFound)
			return
		}

		writeJSON(w, http.StatusOK, DeletedResponse{Message: "Placement deleted"})
	}
}

// RegisterPlacementReadHandlers registers the placement read routes.
func RegisterPlacementReadHandlers(r chi.Router, list http.HandlerFunc) {
	r.Get("/placement", list)
}

// RegisterPlacementWriteHandlers registers the placement write routes.
func RegisterPlacementWriteHandlers(r chi.Router, create, upsert, del http.HandlerFunc) {
	r.Post("/placement", create)
	r.Put("/placement", upsert)
	r.Delete("/placement/{id}", del)
}

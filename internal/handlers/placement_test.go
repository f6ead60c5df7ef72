package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/classaway/internal/middlewares"
	"github.com/sbilibin2017/classaway/internal/models"
	"github.com/sbilibin2017/classaway/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestCreatePlacementHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := NewMockPlacementCreator(ctrl)
	handler := NewCreatePlacementHandler(svc)
	userID := uuid.New()

	svc.EXPECT().Create(gomock.Any(), userID, models.PlacementInput{Company: "Acme", Status: "Offer"}).
		Return(&models.Placement{Company: "Acme", Status: models.PlacementOffer}, nil)

	rr := httptest.NewRecorder()
	handler(rr, authed(httptest.NewRequest(http.MethodPost, "/api/placement", strings.NewReader(`{"company":"Acme","status":"Offer"}`)), userID))

	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.Equal(t, "Offer", decodeBody(t, rr)["status"])

	svc.EXPECT().Create(gomock.Any(), userID, gomock.Any()).
		Return(nil, fmt.Errorf("%w: company is required", services.ErrValidation))

	rr = httptest.NewRecorder()
	handler(rr, authed(httptest.NewRequest(http.MethodPost, "/api/placement", strings.NewReader(`{}`)), userID))
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestUpsertPlacementHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := NewMockPlacementUpserter(ctrl)
	handler := NewUpsertPlacementHandler(svc)
	userID := uuid.New()

	svc.EXPECT().Upsert(gomock.Any(), userID, models.PlacementInput{Company: "Acme", Status: "Test"}).
		Return(&models.Placement{Company: "Acme", Status: models.PlacementTest}, nil)

	rr := httptest.NewRecorder()
	handler(rr, authed(httptest.NewRequest(http.MethodPut, "/api/placement", strings.NewReader(`{"company":"Acme","status":"Test"}`)), userID))

	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestListPlacementsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := NewMockPlacementLister(ctrl)
	handler := NewListPlacementsHandler(svc)
	userID := uuid.New()

	svc.EXPECT().List(gomock.Any(), userID).Return([]models.Placement{{Company: "Acme"}, {Company: "Globex"}}, nil)
	rr := httptest.NewRecorder()
	handler(rr, authed(httptest.NewRequest(http.MethodGet, "/api/placement", nil), userID))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"company":"Globex"`)

	svc.EXPECT().List(gomock.Any(), userID).Return(nil, errors.New("db"))
	rr = httptest.NewRecorder()
	handler(rr, authed(httptest.NewRequest(http.MethodGet, "/api/placement", nil), userID))
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}

func TestDeletePlacementHandler_ThroughRouter(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := NewMockPlacementDeleter(ctrl)
	userID := uuid.New()
	id := uuid.New()

	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			next.ServeHTTP(w, req.WithContext(middlewares.WithUserID(req.Context(), userID)))
		})
	})
	RegisterPlacementWriteHandlers(r,
		NewCreatePlacementHandler(NewMockPlacementCreator(ctrl)),
		NewUpsertPlacementHandler(NewMockPlacementUpserter(ctrl)),
		NewDeletePlacementHandler(svc),
	)

	svc.EXPECT().Delete(gomock.Any(), userID, id).Return(services.ErrNotFound)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodDelete, "/placement/"+id.String(), nil))
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, map[string]any{"error": "Placement not found"}, decodeBody(t, rr))

	svc.EXPECT().Delete(gomock.Any(), userID, id).Return(nil)
	rr = httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodDelete, "/placement/"+id.String(), nil))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, map[string]any{"message": "Placement deleted"}, decodeBody(t, rr))
}

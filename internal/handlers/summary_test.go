package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/classaway/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestSummaryHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := NewMockSummaryGetter(ctrl)
	handler := NewSummaryHandler(svc)
	userID := uuid.New()

	svc.EXPECT().Summary(gomock.Any(), userID).Return(&models.Summary{TotalODs: 2, Offers: 1}, nil)
	rr := httptest.NewRecorder()
	handler(rr, authed(httptest.NewRequest(http.MethodGet, "/api/dashboard/summary", nil), userID))

	assert.Equal(t, http.StatusOK, rr.Code)
	resp := decodeBody(t, rr)
	assert.Equal(t, float64(2), resp["totalODs"])
	assert.Equal(t, float64(1), resp["offers"])

	svc.EXPECT().Summary(gomock.Any(), userID).Return(nil, errors.New("db"))
	rr = httptest.NewRecorder()
	handler(rr, authed(httptest.NewRequest(http.MethodGet, "/api/dashboard/summary", nil), userID))
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}

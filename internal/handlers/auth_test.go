package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/classaway/internal/models"
	"github.com/sbilibin2017/classaway/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()

	tests := []struct {
		name         string
		body         string
		mockSetup    func(m *MockRegisterer)
		expectedCode int
		expectedMsg  string
	}{
		{
			name: "success",
			body: `{"name":"Jane","email":"jane@example.com","password":"secret"}`,
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), "Jane", "jane@example.com", "secret").
					Return(&models.AuthResult{ID: userID, Name: "Jane", Email: "jane@example.com", Token: "tok"}, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name: "user already exists",
			body: `{"name":"Jane","email":"JANE@example.com","password":"secret"}`,
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().Register(gomock.Any(), "Jane", "JANE@example.com", "secret").Return(nil, services.ErrEmailTaken)
			},
			expectedCode: http.StatusBadRequest,
			expectedMsg:  "User already exists",
		},
		{
			name: "missing fields",
			body: `{"email":"jane@example.com"}`,
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().Register(gomock.Any(), "", "jane@example.com", "").
					Return(nil, fmt.Errorf("%w: required", services.ErrValidation))
			},
			expectedCode: http.StatusBadRequest,
			expectedMsg:  "Name, email and password are required",
		},
		{
			name: "internal server error",
			body: `{"name":"Bob","email":"bob@example.com","password":"pass"}`,
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().Register(gomock.Any(), "Bob", "bob@example.com", "pass").Return(nil, errors.New("database failure"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedMsg:  "Registration failed",
		},
		{
			name:         "invalid json",
			body:         "{invalid json}",
			expectedCode: http.StatusBadRequest,
			expectedMsg:  "Invalid request body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockRegisterer(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(tt.body))
			rr := httptest.NewRecorder()
			NewRegisterHandler(mockSvc)(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			resp := decodeBody(t, rr)
			if tt.expectedMsg != "" {
				assert.Equal(t, map[string]any{"msg": tt.expectedMsg}, resp)
				return
			}
			assert.Equal(t, userID.String(), resp["id"])
			assert.Equal(t, "tok", resp["token"])
			assert.NotContains(t, resp, "password")
		})
	}
}

func TestLoginHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name         string
		body         string
		mockSetup    func(m *MockLoginer)
		expectedCode int
		expectedBody map[string]any
	}{
		{
			name: "success",
			body: `{"email":"jane@example.com","password":"secret"}`,
			mockSetup: func(m *MockLoginer) {
				m.EXPECT().Login(gomock.Any(), "jane@example.com", "secret").
					Return(&models.AuthResult{Name: "Jane", Email: "jane@example.com", Token: "tok"}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: map[string]any{"id": uuid.Nil.String(), "name": "Jane", "email": "jane@example.com", "token": "tok"},
		},
		{
			name: "invalid credentials",
			body: `{"email":"jane@example.com","password":"wrong"}`,
			mockSetup: func(m *MockLoginer) {
				m.EXPECT().Login(gomock.Any(), "jane@example.com", "wrong").Return(nil, services.ErrInvalidCredentials)
			},
			expectedCode: http.StatusBadRequest,
			expectedBody: map[string]any{"msg": "Invalid email or password"},
		},
		{
			name: "internal error",
			body: `{"email":"jane@example.com","password":"secret"}`,
			mockSetup: func(m *MockLoginer) {
				m.EXPECT().Login(gomock.Any(), "jane@example.com", "secret").Return(nil, errors.New("db down"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: map[string]any{"msg": "Login failed"},
		},
		{
			name:         "invalid json",
			body:         "nope",
			expectedCode: http.StatusBadRequest,
			expectedBody: map[string]any{"msg": "Invalid request body"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockLoginer(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(tt.body))
			rr := httptest.NewRecorder()
			NewLoginHandler(mockSvc)(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			assert.Equal(t, tt.expectedBody, decodeBody(t, rr))
		})
	}
}

func TestGetProfileHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockProfileGetter(ctrl)
	handler := NewGetProfileHandler(mockSvc)
	userID := uuid.New()

	t.Run("success hides password hash", func(t *testing.T) {
		mockSvc.EXPECT().GetProfile(gomock.Any(), userID).
			Return(&models.User{ID: userID, Name: "Jane", PasswordHash: "$2a$10$secret"}, nil)

		rr := httptest.NewRecorder()
		handler(rr, authed(httptest.NewRequest(http.MethodGet, "/api/auth/profile", nil), userID))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.NotContains(t, rr.Body.String(), "secret")
		resp := decodeBody(t, rr)
		assert.Equal(t, "Jane", resp["name"])
		assert.Equal(t, []any{}, resp["skills"])
	})

	t.Run("not found", func(t *testing.T) {
		mockSvc.EXPECT().GetProfile(gomock.Any(), userID).Return(nil, services.ErrNotFound)

		rr := httptest.NewRecorder()
		handler(rr, authed(httptest.NewRequest(http.MethodGet, "/api/auth/profile", nil), userID))

		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.Equal(t, map[string]any{"msg": "User not found"}, decodeBody(t, rr))
	})

	t.Run("unauthenticated", func(t *testing.T) {
		rr := httptest.NewRecorder()
		handler(rr, httptest.NewRequest(http.MethodGet, "/api/auth/profile", nil))
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}

func TestUpdateProfileHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockProfileUpdater(ctrl)
	handler := NewUpdateProfileHandler(mockSvc)
	userID := uuid.New()

	t.Run("password key is dropped", func(t *testing.T) {
		mockSvc.EXPECT().UpdateProfile(gomock.Any(), userID, gomock.Any()).
			DoAndReturn(func(_ interface{}, _ uuid.UUID, upd models.ProfileUpdate) (*models.User, error) {
				require.NotNil(t, upd.Name)
				assert.Nil(t, upd.Email)
				return &models.User{ID: userID, Name: *upd.Name}, nil
			})

		body, _ := json.Marshal(map[string]any{"password": "x", "name": "New Name"})
		rr := httptest.NewRecorder()
		handler(rr, authed(httptest.NewRequest(http.MethodPut, "/api/auth/profile", bytes.NewReader(body)), userID))

		assert.Equal(t, http.StatusOK, rr.Code)
		resp := decodeBody(t, rr)
		assert.Equal(t, "New Name", resp["name"])
		assert.NotContains(t, resp, "password")
	})

	errCases := []struct {
		name string
		err  error
		code int
		msg  string
	}{
		{"not found", services.ErrNotFound, http.StatusNotFound, "User not found"},
		{"email taken", services.ErrEmailTaken, http.StatusBadRequest, "Email already in use"},
		{"internal", errors.New("db"), http.StatusInternalServerError, "Failed to update profile"},
	}
	for _, tc := range errCases {
		t.Run(tc.name, func(t *testing.T) {
			mockSvc.EXPECT().UpdateProfile(gomock.Any(), userID, gomock.Any()).Return(nil, tc.err)

			rr := httptest.NewRecorder()
			handler(rr, authed(httptest.NewRequest(http.MethodPut, "/api/auth/profile", strings.NewReader(`{"email":"x@example.com"}`)), userID))

			assert.Equal(t, tc.code, rr.Code)
			assert.Equal(t, map[string]any{"msg": tc.msg}, decodeBody(t, rr))
		})
	}

	t.Run("invalid json", func(t *testing.T) {
		rr := httptest.NewRecorder()
		handler(rr, authed(httptest.NewRequest(http.MethodPut, "/api/auth/profile", strings.NewReader("[")), userID))
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

package services_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/classaway/internal/middlewares"
	"github.com/sbilibin2017/classaway/internal/models"
	"github.com/sbilibin2017/classaway/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type odMocks struct {
	reader *services.MockODReader
	writer *services.MockODWriter
	files  *services.MockAttachmentRemover
	events *services.MockEventPublisher
	cache  *services.MockSummaryCache
}

func newODService(t *testing.T) (*services.ODService, odMocks) {
	ctrl := gomock.NewController(t)
	m := odMocks{
		reader: services.NewMockODReader(ctrl),
		writer: services.NewMockODWriter(ctrl),
		files:  services.NewMockAttachmentRemover(ctrl),
		events: services.NewMockEventPublisher(ctrl),
		cache:  services.NewMockSummaryCache(ctrl),
	}
	return services.NewODService(m.reader, m.writer, m.files, m.events, m.cache), m
}

func (m odMocks) expectChange(userID uuid.UUID, operation string) {
	m.cache.EXPECT().Invalidate(gomock.Any(), userID).Return(nil)
	m.events.EXPECT().Publish(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, ev models.ActivityEvent) error {
			if ev.UserID != userID || ev.Entity != models.EntityOD || ev.Operation != operation {
				return errors.New("unexpected event")
			}
			return nil
		})
}

func TestODService_Create(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("defaults status to Applied", func(t *testing.T) {
		svc, m := newODService(t)

		m.writer.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
		m.expectChange(userID, models.OperationCreated)

		od, err := svc.Create(ctx, userID, models.ODInput{
			Type:   "Self-Applied",
			Title:  "Hackathon",
			Reason: "Competition",
			Date:   "2025-07-20",
		})
		require.NoError(t, err)
		assert.Equal(t, models.ODStatusApplied, od.Status)
		assert.Equal(t, userID, od.UserID)
		assert.Equal(t, "2025-07-20", od.Date.Format(models.DateLayout))
		assert.NotEqual(t, uuid.Nil, od.ID)
	})

	t.Run("keeps attachment and optional fields", func(t *testing.T) {
		svc, m := newODService(t)

		m.writer.EXPECT().Save(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, od *models.OD) error {
				assert.Equal(t, "/uploads/a.pdf", od.Attachment)
				assert.Equal(t, "2", od.DayOrder)
				require.NotNil(t, od.ApplicationDate)
				return nil
			})
		m.expectChange(userID, models.OperationCreated)

		_, err := svc.Create(ctx, userID, models.ODInput{
			Type:            "Placement",
			Title:           "Drive",
			Reason:          "Interview",
			Date:            "2025-07-20T10:00:00Z",
			Status:          "In Process",
			DayOrder:        "2",
			ApplicationDate: "2025-07-01",
			Attachment:      "/uploads/a.pdf",
		})
		require.NoError(t, err)
	})

	invalid := []struct {
		name string
		in   models.ODInput
	}{
		{"missing title", models.ODInput{Type: "Placement", Reason: "r", Date: "2025-07-20"}},
		{"missing date", models.ODInput{Type: "Placement", Title: "t", Reason: "r"}},
		{"unknown type", models.ODInput{Type: "Holiday", Title: "t", Reason: "r", Date: "2025-07-20"}},
		{"unknown status", models.ODInput{Type: "Placement", Title: "t", Reason: "r", Date: "2025-07-20", Status: "Done"}},
		{"bad date", models.ODInput{Type: "Placement", Title: "t", Reason: "r", Date: "20/07/2025"}},
		{"bad day order", models.ODInput{Type: "Placement", Title: "t", Reason: "r", Date: "2025-07-20", DayOrder: "6"}},
		{"bad application date", models.ODInput{Type: "Placement", Title: "t", Reason: "r", Date: "2025-07-20", ApplicationDate: "soon"}},
	}
	for _, tt := range invalid {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newODService(t)
			od, err := svc.Create(ctx, userID, tt.in)
			assert.ErrorIs(t, err, services.ErrValidation)
			assert.Nil(t, od)
		})
	}

	t.Run("store error", func(t *testing.T) {
		svc, m := newODService(t)
		m.writer.EXPECT().Save(gomock.Any(), gomock.Any()).Return(errors.New("db error"))

		_, err := svc.Create(ctx, userID, models.ODInput{Type: "Placement", Title: "t", Reason: "r", Date: "2025-07-20"})
		assert.EqualError(t, err, "db error")
	})

	t.Run("event failure does not fail the request", func(t *testing.T) {
		svc, m := newODService(t)
		m.writer.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
		m.cache.EXPECT().Invalidate(gomock.Any(), userID).Return(errors.New("redis down"))
		m.events.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(errors.New("kafka down"))

		_, err := svc.Create(ctx, userID, models.ODInput{Type: "Placement", Title: "t", Reason: "r", Date: "2025-07-20"})
		assert.NoError(t, err)
	})
}

func TestODService_List(t *testing.T) {
	svc, m := newODService(t)
	userID := uuid.New()
	filter := models.ODFilter{Type: "Placement"}

	m.reader.EXPECT().List(gomock.Any(), userID, filter).Return(nil, nil)
	ods, err := svc.List(context.Background(), userID, filter)
	require.NoError(t, err)
	assert.NotNil(t, ods)
	assert.Empty(t, ods)

	m.reader.EXPECT().List(gomock.Any(), userID, filter).Return(nil, errors.New("db error"))
	_, err = svc.List(context.Background(), userID, filter)
	assert.Error(t, err)
}

func TestODService_Update(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	odID := uuid.New()

	existing := func() *models.OD {
		return &models.OD{
			ID:     odID,
			UserID: userID,
			Type:   models.ODTypePlacement,
			Title:  "Drive",
			Reason: "Interview",
			Status: models.ODStatusApplied,
		}
	}

	t.Run("partial update", func(t *testing.T) {
		svc, m := newODService(t)
		status := "Approved"

		m.reader.EXPECT().GetByID(gomock.Any(), userID, odID).Return(existing(), nil)
		m.writer.EXPECT().Update(gomock.Any(), gomock.Any()).Return(true, nil)
		m.expectChange(userID, models.OperationUpdated)

		od, err := svc.Update(ctx, userID, odID, models.ODPatch{Status: &status})
		require.NoError(t, err)
		assert.Equal(t, models.ODStatusApproved, od.Status)
		assert.Equal(t, "Drive", od.Title)
	})

	t.Run("foreign or missing is not found", func(t *testing.T) {
		svc, m := newODService(t)
		title := "Hijack"

		m.reader.EXPECT().GetByID(gomock.Any(), userID, odID).Return(nil, nil)

		_, err := svc.Update(ctx, userID, odID, models.ODPatch{Title: &title})
		assert.ErrorIs(t, err, services.ErrNotFound)
	})

	t.Run("row vanished before update", func(t *testing.T) {
		svc, m := newODService(t)
		title := "New"

		m.reader.EXPECT().GetByID(gomock.Any(), userID, odID).Return(existing(), nil)
		m.writer.EXPECT().Update(gomock.Any(), gomock.Any()).Return(false, nil)

		_, err := svc.Update(ctx, userID, odID, models.ODPatch{Title: &title})
		assert.ErrorIs(t, err, services.ErrNotFound)
	})

	t.Run("invalid enum", func(t *testing.T) {
		svc, m := newODService(t)
		status := "Pending"

		m.reader.EXPECT().GetByID(gomock.Any(), userID, odID).Return(existing(), nil)

		_, err := svc.Update(ctx, userID, odID, models.ODPatch{Status: &status})
		assert.ErrorIs(t, err, services.ErrValidation)
	})
}

func TestODService_Delete(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	odID := uuid.New()

	t.Run("removes attachment", func(t *testing.T) {
		svc, m := newODService(t)

		m.writer.EXPECT().Delete(gomock.Any(), userID, odID).
			Return(&models.OD{ID: odID, UserID: userID, Attachment: "/uploads/x.pdf"}, nil)
		m.files.EXPECT().Delete(gomock.Any(), "/uploads/x.pdf").Return(errors.New("gone already"))
		m.expectChange(userID, models.OperationDeleted)

		assert.NoError(t, svc.Delete(ctx, userID, odID))
	})

	t.Run("not owned", func(t *testing.T) {
		svc, m := newODService(t)
		m.writer.EXPECT().Delete(gomock.Any(), userID, odID).Return(nil, nil)

		assert.ErrorIs(t, svc.Delete(ctx, userID, odID), services.ErrNotFound)
	})
}

func TestODService_NilCollaborators(t *testing.T) {
	ctrl := gomock.NewController(t)
	writer := services.NewMockODWriter(ctrl)
	svc := services.NewODService(services.NewMockODReader(ctrl), writer, nil, nil, nil)

	userID := uuid.New()
	odID := uuid.New()
	writer.EXPECT().Delete(gomock.Any(), userID, odID).
		Return(&models.OD{ID: odID, UserID: userID, Attachment: "/uploads/x.pdf"}, nil)

	assert.NoError(t, svc.Delete(context.Background(), userID, odID))
}

func TestODService_DeleteSideEffectsFollowCommit(t *testing.T) {
	tests := []struct {
		name      string
		commitErr error
		wantSide  bool
	}{
		{"Committed", nil, true},
		{"CommitFailed", errors.New("commit failed"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockDB, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer mockDB.Close()
			db := sqlx.NewDb(mockDB, "sqlmock")

			mock.ExpectBegin()
			if tt.commitErr != nil {
				mock.ExpectCommit().WillReturnError(tt.commitErr)
			} else {
				mock.ExpectCommit()
			}

			svc, m := newODService(t)
			userID, odID := uuid.New(), uuid.New()

			m.writer.EXPECT().Delete(gomock.Any(), userID, odID).
				Return(&models.OD{ID: odID, UserID: userID, Attachment: "/uploads/x.pdf"}, nil)

			committed := false
			if tt.wantSide {
				m.files.EXPECT().Delete(gomock.Any(), "/uploads/x.pdf").
					DoAndReturn(func(context.Context, string) error {
						assert.True(t, committed)
						return nil
					})
				m.expectChange(userID, models.OperationDeleted)
			}

			h := middlewares.TxMiddleware(db)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				require.NoError(t, svc.Delete(r.Context(), userID, odID))
				committed = tt.commitErr == nil
				w.WriteHeader(http.StatusOK)
			}))

			rr := httptest.NewRecorder()
			h.ServeHTTP(rr, httptest.NewRequest(http.MethodDelete, "/api/od/"+odID.String(), nil))

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

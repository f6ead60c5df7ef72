package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/classaway/internal/logger"
	"github.com/sbilibin2017/classaway/internal/middlewares"
	"github.com/sbilibin2017/classaway/internal/models"
)

//go:generate mockgen -source=od.go -destination=od_mock.go -package=services

type ODReader interface {
	List(ctx context.Context, userID uuid.UUID, filter models.ODFilter) ([]models.OD, error)
	GetByID(ctx context.Context, userID, id uuid.UUID) (*models.OD, error)
}

type ODWriter interface {
	Save(ctx context.Context, od *models.OD) error
	Update(ctx context.Context, od *models.OD) (bool, error)
	Delete(ctx context.Context, userID, id uuid.UUID) (*models.OD, error)
}

// AttachmentRemover deletes a stored attachment by the reference saved on an OD.
type AttachmentRemover interface {
	Delete(ctx context.Context, ref string) error
}

// ODService manages the caller's OD requests.
type ODService struct {
	reader ODReader
	writer ODWriter
	files  AttachmentRemover
	changeNotifier
}

// NewODService creates a new ODService. files, events and cache may be nil.
func NewODService(
	reader ODReader,
	writer ODWriter,
	files AttachmentRemover,
	events EventPublisher,
	cache SummaryCache,
) *ODService {
	return &ODService{
		reader:         reader,
		writer:         writer,
		files:          files,
		changeNotifier: changeNotifier{events: events, cache: cache},
	}
}

// Create validates in and stores a new OD owned by userID.
func (svc *ODService) Create(ctx context.Context, userID uuid.UUID, in models.ODInput) (*models.OD, error) {
	odType := models.ODType(strings.TrimSpace(in.Type))
	title := strings.TrimSpace(in.Title)
	reason := strings.TrimSpace(in.Reason)
	if odType == "" || title == "" || reason == "" || strings.TrimSpace(in.Date) == "" {
		return nil, validationError("type, title, reason and date are required")
	}
	if !odType.Valid() {
		return nil, validationError("type must be one of %v", models.ODTypes)
	}

	date, err := models.ParseDate(in.Date)
	if err != nil {
		return nil, validationError("date must be a date (YYYY-MM-DD)")
	}

	status := models.ODStatusApplied
	if s := strings.TrimSpace(in.Status); s != "" {
		status = models.ODStatus(s)
		if !status.Valid() {
			return nil, validationError("status must be one of %v", models.ODStatuses)
		}
	}

	if in.DayOrder != "" && !models.ValidDayOrder(in.DayOrder) {
		return nil, validationError("dayOrder must be between 1 and 5")
	}

	appDate, err := parseOptionalDate("applicationDate", in.ApplicationDate)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	od := &models.OD{
		ID:              uuid.New(),
		UserID:          userID,
		Type:            odType,
		Title:           title,
		Reason:          reason,
		Date:            date,
		Status:          status,
		Attachment:      in.Attachment,
		Description:     in.Description,
		DayOrder:        in.DayOrder,
		SalaryRange:     in.SalaryRange,
		JobType:         in.JobType,
		JobRole:         in.JobRole,
		ApplicationDate: appDate,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := svc.writer.Save(ctx, od); err != nil {
		logger.Log.Errorw("failed to save od", "user_id", userID, "err", err)
		return nil, err
	}

	svc.changed(ctx, userID, models.EntityOD, od.ID, models.OperationCreated)
	return od, nil
}

// List returns the caller's ODs matching filter.
func (svc *ODService) List(ctx context.Context, userID uuid.UUID, filter models.ODFilter) ([]models.OD, error) {
	ods, err := svc.reader.List(ctx, userID, filter)
	if err != nil {
		logger.Log.Errorw("failed to list ods", "user_id", userID, "err", err)
		return nil, err
	}
	if ods == nil {
		ods = []models.OD{}
	}
	return ods, nil
}

// Update applies patch to an OD owned by userID. An OD owned by someone else
// yields ErrNotFound, exactly like a missing one.
func (svc *ODService) Update(ctx context.Context, userID, id uuid.UUID, patch models.ODPatch) (*models.OD, error) {
	od, err := svc.reader.GetByID(ctx, userID, id)
	if err != nil {
		logger.Log.Errorw("failed to get od", "od_id", id, "err", err)
		return nil, err
	}
	if od == nil {
		return nil, ErrNotFound
	}

	if err := applyODPatch(od, patch); err != nil {
		return nil, err
	}
	od.UpdatedAt = time.Now().UTC()

	ok, err := svc.writer.Update(ctx, od)
	if err != nil {
		logger.Log.Errorw("failed to update od", "od_id", id, "err", err)
		return nil, err
	}
	if !ok {
		return nil, ErrNotFound
	}

	svc.changed(ctx, userID, models.EntityOD, od.ID, models.OperationUpdated)
	return od, nil
}

func applyODPatch(od *models.OD, p models.ODPatch) error {
	if p.Type != nil {
		t := models.ODType(strings.TrimSpace(*p.Type))
		if !t.Valid() {
			return validationError("type must be one of %v", models.ODTypes)
		}
		od.Type = t
	}
	if p.Title != nil {
		title := strings.TrimSpace(*p.Title)
		if title == "" {
			return validationError("title must not be empty")
		}
		od.Title = title
	}
	if p.Reason != nil {
		reason := strings.TrimSpace(*p.Reason)
		if reason == "" {
			return validationError("reason must not be empty")
		}
		od.Reason = reason
	}
	if p.Date != nil {
		d, err := models.ParseDate(*p.Date)
		if err != nil {
			return validationError("date must be a date (YYYY-MM-DD)")
		}
		od.Date = d
	}
	if p.Status != nil {
		s := models.ODStatus(strings.TrimSpace(*p.Status))
		if !s.Valid() {
			return validationError("status must be one of %v", models.ODStatuses)
		}
		od.Status = s
	}
	if p.DayOrder != nil {
		if *p.DayOrder != "" && !models.ValidDayOrder(*p.DayOrder) {
			return validationError("dayOrder must be between 1 and 5")
		}
		od.DayOrder = *p.DayOrder
	}
	if p.ApplicationDate != nil {
		d, err := parseOptionalDate("applicationDate", *p.ApplicationDate)
		if err != nil {
			return err
		}
		od.ApplicationDate = d
	}
	if p.Description != nil {
		od.Description = *p.Description
	}
	if p.SalaryRange != nil {
		od.SalaryRange = *p.SalaryRange
	}
	if p.JobType != nil {
		od.JobType = *p.JobType
	}
	if p.JobRole != nil {
		od.JobRole = *p.JobRole
	}
	return nil
}

// Delete removes an OD owned by userID together with its stored attachment.
func (svc *ODService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	od, err := svc.writer.Delete(ctx, userID, id)
	if err != nil {
		logger.Log.Errorw("failed to delete od", "od_id", id, "err", err)
		return err
	}
	if od == nil {
		return ErrNotFound
	}

	if od.Attachment != "" && svc.files != nil {
		ref := od.Attachment
		middlewares.AfterCommit(ctx, func() {
			if err := svc.files.Delete(ctx, ref); err != nil {
				logger.Log.Warnw("failed to remove attachment", "ref", ref, "err", err)
			}
		})
	}

	svc.changed(ctx, userID, models.EntityOD, od.ID, models.OperationDeleted)
	return nil
}

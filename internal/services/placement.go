package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/classaway/internal/logger"
	"github.com/sbilibin2017/classaway/internal/models"
)

//go:generate mockgen -source=placement.go -destination=placement_mock.go -package=services

type PlacementReader interface {
	List(ctx context.Context, userID uuid.UUID) ([]models.Placement, error)
	GetByCompany(ctx context.Context, userID uuid.UUID, company string) (*models.Placement, error)
}

type PlacementWriter interface {
	Save(ctx context.Context, p *models.Placement) error
	Update(ctx context.Context, p *models.Placement) (bool, error)
	Delete(ctx context.Context, userID, id uuid.UUID) (*models.Placement, error)
}

// PlacementService manages the caller's placement pipeline entries. Statuses
// may be set in any order.
type PlacementService struct {
	reader PlacementReader
	writer PlacementWriter
	changeNotifier
}

// NewPlacementService creates a new PlacementService. events and cache may be nil.
func NewPlacementService(reader PlacementReader, writer PlacementWriter, events EventPublisher, cache SummaryCache) *PlacementService {
	return &PlacementService{
		reader:         reader,
		writer:         writer,
		changeNotifier: changeNotifier{events: events, cache: cache},
	}
}

// Create always inserts a new placement, even for a company already tracked.
func (svc *PlacementService) Create(ctx context.Context, userID uuid.UUID, in models.PlacementInput) (*models.Placement, error) {
	company := strings.TrimSpace(in.Company)
	if company == "" {
		return nil, validationError("company is required")
	}

	now := time.Now().UTC()
	p := &models.Placement{
		ID:        uuid.New(),
		UserID:    userID,
		Company:   company,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := applyPlacementInput(p, in); err != nil {
		return nil, err
	}

	if err := svc.writer.Save(ctx, p); err != nil {
		logger.Log.Errorw("failed to save placement", "user_id", userID, "err", err)
		return nil, err
	}

	svc.changed(ctx, userID, models.EntityPlacement, p.ID, models.OperationCreated)
	return p, nil
}

// Upsert keeps one placement per company: the latest one for in.Company is
// updated in place, or a new one is inserted when the company is untracked.
func (svc *PlacementService) Upsert(ctx context.Context, userID uuid.UUID, in models.PlacementInput) (*models.Placement, error) {
	company := strings.TrimSpace(in.Company)
	if company == "" {
		return nil, validationError("company is required")
	}

	p, err := svc.reader.GetByCompany(ctx, userID, company)
	if err != nil {
		logger.Log.Errorw("failed to get placement", "company", company, "err", err)
		return nil, err
	}
	if p == nil {
		in.Company = company
		return svc.Create(ctx, userID, in)
	}

	if err := applyPlacementInput(p, in); err != nil {
		return nil, err
	}
	p.UpdatedAt = time.Now().UTC()

	ok, err := svc.writer.Update(ctx, p)
	if err != nil {
		logger.Log.Errorw("failed to update placement", "placement_id", p.ID, "err", err)
		return nil, err
	}
	if !ok {
		return nil, ErrNotFound
	}

	svc.changed(ctx, userID, models.EntityPlacement, p.ID, models.OperationUpdated)
	return p, nil
}

// applyPlacementInput copies the supplied fields of in onto p and fills the
// defaults of any enum still unset.
func applyPlacementInput(p *models.Placement, in models.PlacementInput) error {
	if s := strings.TrimSpace(in.Status); s != "" {
		status := models.PlacementStatus(s)
		if !status.Valid() {
			return validationError("status must be one of %v", models.PlacementPipeline)
		}
		p.Status = status
	}
	if s := strings.TrimSpace(in.SalaryRange); s != "" {
		r := models.SalaryRange(s)
		if !r.Valid() {
			return validationError("salaryRange must be one of %v", models.SalaryRanges)
		}
		p.SalaryRange = r
	}
	if s := strings.TrimSpace(in.JobType); s != "" {
		j := models.JobType(s)
		if !j.Valid() {
			return validationError("jobType must be one of %v", models.JobTypes)
		}
		p.JobType = j
	}
	if in.Salary != nil {
		if *in.Salary < 0 {
			return validationError("salary must not be negative")
		}
		salary := *in.Salary
		p.Salary = &salary
	}
	if in.JobRole != "" {
		p.JobRole = strings.TrimSpace(in.JobRole)
	}
	if in.ApplicationDate != "" {
		d, err := parseOptionalDate("applicationDate", in.ApplicationDate)
		if err != nil {
			return err
		}
		p.ApplicationDate = d
	}

	if p.Status == "" {
		p.Status = models.PlacementApplicationSent
	}
	if p.SalaryRange == "" {
		p.SalaryRange = models.SalaryNotDisclosed
	}
	if p.JobType == "" {
		p.JobType = models.JobFullTime
	}
	return nil
}

// List returns the caller's placements in insertion order.
func (svc *PlacementService) List(ctx context.Context, userID uuid.UUID) ([]models.Placement, error) {
	ps, err := svc.reader.List(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to list placements", "user_id", userID, "err", err)
		return nil, err
	}
	if ps == nil {
		ps = []models.Placement{}
	}
	return ps, nil
}

// Delete removes a placement owned by userID.
func (svc *PlacementService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	p, err := svc.writer.Delete(ctx, userID, id)
	if err != nil {
		logger.Log.Errorw("failed to delete placement", "placement_id", id, "err", err)
		return err
	}
	if p == nil {
		return ErrNotFound
	}

	svc.changed(ctx, userID, models.EntityPlacement, p.ID, models.OperationDeleted)
	return nil
}

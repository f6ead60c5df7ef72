package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/classaway/internal/models"
)

var placementColumns = []string{
	"id", "user_id", "company", "status", "salary_range", "salary", "job_type", "job_role",
	"application_date", "created_at", "updated_at",
}

// PlacementReadRepository reads placement rows, always scoped to one owner.
type PlacementReadRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewPlacementReadRepository(db *sqlx.DB, txGetter TxGetter) *PlacementReadRepository {
	return &PlacementReadRepository{db: db, txGetter: txGetter}
}

// List returns the owner's placements in insertion order.
func (r *PlacementReadRepository) List(ctx context.Context, userID uuid.UUID) ([]models.Placement, error) {
	query, args, err := psql.Select(placementColumns...).
		From("placements").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("created_at ASC").
		ToSql()
	if err != nil {
		return nil, err
	}

	placements := []models.Placement{}
	err = sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &placements, query, args...)

	logQuery(query, args, len(placements), err)

	if err != nil {
		return nil, err
	}
	return placements, nil
}

// GetByCompany returns the owner's most recent placement for company, or nil.
func (r *PlacementReadRepository) GetByCompany(ctx context.Context, userID uuid.UUID, company string) (*models.Placement, error) {
	query, args, err := psql.Select(placementColumns...).
		From("placements").
		Where(squirrel.Eq{"user_id": userID, "company": company}).
		OrderBy("created_at DESC").
		Limit(1).
		ToSql()
	if err != nil {
		return nil, err
	}

	var p models.Placement
	err = sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &p, query, args...)

	logQuery(query, args, p.ID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// PlacementWriteRepository writes placement rows.
type PlacementWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewPlacementWriteRepository(db *sqlx.DB, txGetter TxGetter) *PlacementWriteRepository {
	return &PlacementWriteRepository{db: db, txGetter: txGetter}
}

// Save inserts a new placement.
func (r *PlacementWriteRepository) Save(ctx context.Context, p *models.Placement) error {
	query, args, err := psql.Insert("placements").
		Columns(placementColumns...).
		Values(
			p.ID, p.UserID, p.Company, p.Status, p.SalaryRange, p.Salary, p.JobType, p.JobRole,
			p.ApplicationDate, p.CreatedAt, p.UpdatedAt,
		).
		ToSql()
	if err != nil {
		return err
	}

	_, err = executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, args...)

	logQuery(query, args, p.ID, err)

	return err
}

// Update overwrites the mutable columns of an owned placement and reports
// whether a row matched.
func (r *PlacementWriteRepository) Update(ctx context.Context, p *models.Placement) (bool, error) {
	query, args, err := psql.Update("placements").
		SetMap(map[string]any{
			"status":           p.Status,
			"salary_range":     p.SalaryRange,
			"salary":           p.Salary,
			"job_type":         p.JobType,
			"job_role":         p.JobRole,
			"application_date": p.ApplicationDate,
			"updated_at":       p.UpdatedAt,
		}).
		Where(squirrel.Eq{"id": p.ID, "user_id": p.UserID}).
		ToSql()
	if err != nil {
		return false, err
	}

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logQuery(query, args, rowsAffected, err)

	if err != nil {
		return false, err
	}
	return rowsAffected > 0, nil
}

// Delete removes an owned placement and returns it, or nil when userID owns
// no such placement.
func (r *PlacementWriteRepository) Delete(ctx context.Context, userID, id uuid.UUID) (*models.Placement, error) {
	query, args, err := psql.Delete("placements").
		Where(squirrel.Eq{"id": id, "user_id": userID}).
		Suffix("RETURNING " + joinColumns(placementColumns)).
		ToSql()
	if err != nil {
		return nil, err
	}

	var p models.Placement
	err = sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &p, query, args...)

	logQuery(query, args, p.ID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

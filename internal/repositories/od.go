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

var odColumns = []string{
	"id", "user_id", "type", "title", "reason", "od_date", "status", "attachment",
	"description", "day_order", "salary_range", "job_type", "job_role", "application_date",
	"created_at", "updated_at",
}

// ODReadRepository reads OD rows, always scoped to one owner.
type ODReadRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewODReadRepository(db *sqlx.DB, txGetter TxGetter) *ODReadRepository {
	return &ODReadRepository{db: db, txGetter: txGetter}
}

// List returns the owner's ODs matching filter, newest date first.
func (r *ODReadRepository) List(ctx context.Context, userID uuid.UUID, filter models.ODFilter) ([]models.OD, error) {
	b := psql.Select(odColumns...).
		From("ods").
		Where(squirrel.Eq{"user_id": userID})

	if filter.Type != "" {
		b = b.Where(squirrel.Eq{"type": filter.Type})
	}
	if filter.Status != "" {
		b = b.Where(squirrel.Eq{"status": filter.Status})
	}
	if filter.Date != nil {
		b = b.Where(squirrel.Eq{"od_date": *filter.Date})
	}

	query, args, err := b.OrderBy("od_date DESC", "created_at DESC").ToSql()
	if err != nil {
		return nil, err
	}

	ods := []models.OD{}
	err = sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &ods, query, args...)

	logQuery(query, args, len(ods), err)

	if err != nil {
		return nil, err
	}
	return ods, nil
}

// GetByID returns the OD only if userID owns it, otherwise nil.
func (r *ODReadRepository) GetByID(ctx context.Context, userID, id uuid.UUID) (*models.OD, error) {
	query, args, err := psql.Select(odColumns...).
		From("ods").
		Where(squirrel.Eq{"id": id, "user_id": userID}).
		ToSql()
	if err != nil {
		return nil, err
	}

	var od models.OD
	err = sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &od, query, args...)

	logQuery(query, args, od.ID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &od, nil
}

// ODWriteRepository writes OD rows.
type ODWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewODWriteRepository(db *sqlx.DB, txGetter TxGetter) *ODWriteRepository {
	return &ODWriteRepository{db: db, txGetter: txGetter}
}

// Save inserts a new OD.
func (r *ODWriteRepository) Save(ctx context.Context, od *models.OD) error {
	query, args, err := psql.Insert("ods").
		Columns(odColumns...).
		Values(
			od.ID, od.UserID, od.Type, od.Title, od.Reason, od.Date, od.Status, od.Attachment,
			od.Description, od.DayOrder, od.SalaryRange, od.JobType, od.JobRole, od.ApplicationDate,
			od.CreatedAt, od.UpdatedAt,
		).
		ToSql()
	if err != nil {
		return err
	}

	_, err = executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, args...)

	logQuery(query, args, od.ID, err)

	return err
}

// Update overwrites the mutable columns of an owned OD. It reports false when
// no row with that id belongs to od.UserID.
func (r *ODWriteRepository) Update(ctx context.Context, od *models.OD) (bool, error) {
	query, args, err := psql.Update("ods").
		SetMap(map[string]any{
			"type":             od.Type,
			"title":            od.Title,
			"reason":           od.Reason,
			"od_date":          od.Date,
			"status":           od.Status,
			"attachment":       od.Attachment,
			"description":      od.Description,
			"day_order":        od.DayOrder,
			"salary_range":     od.SalaryRange,
			"job_type":         od.JobType,
			"job_role":         od.JobRole,
			"application_date": od.ApplicationDate,
			"updated_at":       od.UpdatedAt,
		}).
		Where(squirrel.Eq{"id": od.ID, "user_id": od.UserID}).
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

// Delete removes an owned OD and returns it, or nil when userID owns no such OD.
func (r *ODWriteRepository) Delete(ctx context.Context, userID, id uuid.UUID) (*models.OD, error) {
	query, args, err := psql.Delete("ods").
		Where(squirrel.Eq{"id": id, "user_id": userID}).
		Suffix("RETURNING " + joinColumns(odColumns)).
		ToSql()
	if err != nil {
		return nil, err
	}

	var od models.OD
	err = sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &od, query, args...)

	logQuery(query, args, od.ID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &od, nil
}

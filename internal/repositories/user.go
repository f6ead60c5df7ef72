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

const userColumns = `id, name, email, password_hash, phone, branch, year, roll, avatar, resume,
	skills, interests, education, achievements, projects, certifications, socials,
	created_at, updated_at`

type UserReadRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewUserReadRepository(db *sqlx.DB, txGetter TxGetter) *UserReadRepository {
	return &UserReadRepository{db: db, txGetter: txGetter}
}

// GetByEmail returns the user with the given (already normalised) email, or
// nil when there is none.
func (r *UserReadRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	const query = `SELECT ` + userColumns + ` FROM users WHERE LOWER(email) = LOWER($1) LIMIT 1`
	return r.getOne(ctx, query, email)
}

// GetByID returns the user with the given id, or nil when there is none.
func (r *UserReadRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	const query = `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return r.getOne(ctx, query, id)
}

func (r *UserReadRepository) getOne(ctx context.Context, query string, arg any) (*models.User, error) {
	var user models.User
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &user, query, arg)

	logQuery(query, []any{arg}, user.ID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

type UserWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewUserWriteRepository(db *sqlx.DB, txGetter TxGetter) *UserWriteRepository {
	return &UserWriteRepository{db: db, txGetter: txGetter}
}

// Save inserts a new user. A clash on the email index yields ErrDuplicate.
func (r *UserWriteRepository) Save(ctx context.Context, user *models.User) error {
	const query = `
		INSERT INTO users (id, name, email, password_hash, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	args := []any{user.ID, user.Name, user.Email, user.PasswordHash, user.CreatedAt, user.UpdatedAt}

	_, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, args...)

	// never log the hash
	logQuery(query, []any{user.ID, user.Name, user.Email, "***", user.CreatedAt, user.UpdatedAt}, nil, err)

	if isUniqueViolation(err) {
		return ErrDuplicate
	}
	return err
}

// UpdateProfile sets the non-nil whitelisted fields and returns the updated
// row, or nil when no user has that id.
func (r *UserWriteRepository) UpdateProfile(ctx context.Context, id uuid.UUID, upd models.ProfileUpdate) (*models.User, error) {
	b := psql.Update("users").Set("updated_at", squirrel.Expr("NOW()"))

	strFields := []struct {
		column string
		value  *string
	}{
		{"name", upd.Name},
		{"email", upd.Email},
		{"phone", upd.Phone},
		{"branch", upd.Branch},
		{"year", upd.Year},
		{"roll", upd.Roll},
		{"avatar", upd.Avatar},
		{"resume", upd.Resume},
	}
	for _, f := range strFields {
		if f.value != nil {
			b = b.Set(f.column, *f.value)
		}
	}

	if upd.Skills != nil {
		b = b.Set("skills", models.JSONList[string](*upd.Skills))
	}
	if upd.Interests != nil {
		b = b.Set("interests", models.JSONList[string](*upd.Interests))
	}
	if upd.Education != nil {
		b = b.Set("education", models.JSONList[models.Education](*upd.Education))
	}
	if upd.Achievements != nil {
		b = b.Set("achievements", models.JSONList[models.Achievement](*upd.Achievements))
	}
	if upd.Projects != nil {
		b = b.Set("projects", models.JSONList[models.Project](*upd.Projects))
	}
	if upd.Certifications != nil {
		b = b.Set("certifications", models.JSONList[models.Certification](*upd.Certifications))
	}
	if upd.Socials != nil {
		b = b.Set("socials", *upd.Socials)
	}

	query, args, err := b.Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + userColumns).
		ToSql()
	if err != nil {
		return nil, err
	}

	var user models.User
	err = sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &user, query, args...)

	logQuery(query, args, user.ID, err)

	switch {
	case errors.Is(err, sql.ErrNoRows):
		return nil, nil
	case isUniqueViolation(err):
		return nil, ErrDuplicate
	case err != nil:
		return nil, err
	}
	return &user, nil
}

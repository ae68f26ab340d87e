package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"mrtrack/internal/domain"
	"mrtrack/internal/port"
)

const userColumns = `id, username, password_hash, full_name, role, field_rep_id, is_active`

type userRepo struct {
	db *sqlx.DB
}

// NewUserRepo creates a new PostgreSQL-backed UserRepository.
func NewUserRepo(db *sqlx.DB) port.UserRepository {
	return &userRepo{db: db}
}

func (r *userRepo) Create(ctx context.Context, user *domain.User) error {
	_, err := r.db.NamedExecContext(ctx,
		`INSERT INTO users (`+userColumns+`)
		 VALUES (:id, :username, :password_hash, :full_name, :role, :field_rep_id, :is_active)`, user)
	if err != nil {
		if isDuplicateKey(err) {
			return domain.ErrDuplicateUsername
		}
		return fmt.Errorf("userRepo.Create: %w", err)
	}
	return nil
}

func (r *userRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	var user domain.User
	err := r.db.GetContext(ctx, &user, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("userRepo.GetByID: %w", err)
	}
	return &user, nil
}

func (r *userRepo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	var user domain.User
	err := r.db.GetContext(ctx, &user,
		`SELECT `+userColumns+` FROM users WHERE LOWER(username) = LOWER($1)`, username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("userRepo.GetByUsername: %w", err)
	}
	return &user, nil
}

func (r *userRepo) GetByFieldRepID(ctx context.Context, fieldRepID string) (*domain.User, error) {
	var user domain.User
	err := r.db.GetContext(ctx, &user,
		`SELECT `+userColumns+` FROM users WHERE field_rep_id = $1 AND field_rep_id <> '' LIMIT 1`, fieldRepID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("userRepo.GetByFieldRepID: %w", err)
	}
	return &user, nil
}

func (r *userRepo) SetPassword(ctx context.Context, id, passwordHash string) error {
	res, err := r.db.ExecContext(ctx, `UPDATE users SET password_hash = $2 WHERE id = $1`, id, passwordHash)
	if err != nil {
		return fmt.Errorf("userRepo.SetPassword: %w", err)
	}
	return requireRow(res, "userRepo.SetPassword")
}

func (r *userRepo) SetActiveForFieldRep(ctx context.Context, fieldRepID string, active bool) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE users SET is_active = $2 WHERE field_rep_id = $1 AND field_rep_id <> ''`, fieldRepID, active)
	if err != nil {
		return fmt.Errorf("userRepo.SetActiveForFieldRep: %w", err)
	}
	return nil
}

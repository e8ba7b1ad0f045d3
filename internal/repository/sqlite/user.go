package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/stpnv0/LazyReserve/internal/domain"
)

type UserRepository struct {
	db *sql.DB
}

func NewUserRepo(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	query := `INSERT INTO users (id, email, password_hash, name, phone, created_at, updated_at)
			  VALUES (?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(
		ctx, query,
		user.ID, user.Email, user.PasswordHash, user.Name, user.Phone,
		toMillis(user.CreatedAt), toMillis(user.UpdatedAt),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailTaken
		}
		return fmt.Errorf("insert user: %w", err)
	}

	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return r.getBy(ctx, "id", id)
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.getBy(ctx, "email", email)
}

func (r *UserRepository) getBy(ctx context.Context, column, value string) (*domain.User, error) {
	query := `SELECT id, email, password_hash, name, phone, created_at, updated_at
			  FROM users WHERE ` + column + ` = ?`

	var u domain.User
	var created, updated int64
	err := r.db.QueryRowContext(ctx, query, value).
		Scan(&u.ID, &u.Email, &u.PasswordHash, &u.Name, &u.Phone, &created, &updated)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	u.CreatedAt = fromMillis(created)
	u.UpdatedAt = fromMillis(updated)

	return &u, nil
}

func (r *UserRepository) UpdateProfile(ctx context.Context, id string, input domain.UpdateProfileInput) error {
	query := `UPDATE users
			  SET name = COALESCE(?, name), phone = COALESCE(?, phone), updated_at = ?
			  WHERE id = ?`

	res, err := r.db.ExecContext(ctx, query, input.Name, input.Phone, toMillis(time.Now()), id)
	if err != nil {
		return fmt.Errorf("update profile: %w", err)
	}

	return expectOneRow(res, domain.ErrUserNotFound)
}

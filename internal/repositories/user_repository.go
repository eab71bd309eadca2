package repository

import (
	"context"
	"fmt"

	"github.com/tokoretail/retail-platform/internal/models"
)

type UserRepository interface {
	ListUsers(ctx context.Context) ([]*models.User, error)
	GetUserByID(ctx context.Context, id int64) (*models.User, error)
	CreateUser(ctx context.Context, user *models.User) error
	UpdateUser(ctx context.Context, id int64, req *models.UpdateUserRequest) (*models.User, error)
	DeleteUser(ctx context.Context, id int64) error
}

type userRepository struct {
	DB DBTX
}

func NewUserRepo(db DBTX) UserRepository {
	return &userRepository{DB: db}
}

// password_hash is never selected back out of the table.
const userColumns = `id, username, full_name, level, created_at`

func scanUser(row rowScanner) (*models.User, error) {
	u := &models.User{}

	if err := row.Scan(&u.ID, &u.Username, &u.FullName, &u.Level, &u.CreatedAt); err != nil {
		return nil, err
	}

	return u, nil
}

func (r *userRepository) ListUsers(ctx context.Context) ([]*models.User, error) {
	dbCtx, cancel := withDBTimeout(ctx)
	defer cancel()

	rows, err := r.DB.QueryContext(dbCtx, `SELECT `+userColumns+` FROM users ORDER BY username`)
	if err != nil {
		return nil, fmt.Errorf("querying users: %w", err)
	}
	defer rows.Close()

	users := []*models.User{}

	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning user: %w", err)
		}
		users = append(users, u)
	}

	return users, rows.Err()
}

func (r *userRepository) GetUserByID(ctx context.Context, id int64) (*models.User, error) {
	dbCtx, cancel := withDBTimeout(ctx)
	defer cancel()

	u, err := scanUser(r.DB.QueryRowContext(dbCtx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id))
	if err != nil {
		return nil, fmt.Errorf("querying database: %w", err)
	}

	return u, nil
}

// CreateUser stores user.Password as given; callers hash it first.
func (r *userRepository) CreateUser(ctx context.Context, user *models.User) error {
	dbCtx, cancel := withDBTimeout(ctx)
	defer cancel()

	query := `
		INSERT INTO users (username, password_hash, full_name, level)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`

	return r.DB.QueryRowContext(dbCtx, query, user.Username, user.Password, user.FullName, user.Level).Scan(&user.ID, &user.CreatedAt)
}

// UpdateUser writes req.Password verbatim into password_hash; callers hash it first.
func (r *userRepository) UpdateUser(ctx context.Context, id int64, req *models.UpdateUserRequest) (*models.User, error) {

	b := NewUpdateBuilder("users", "id")
	SetIfPresent(b, "username", req.Username)
	SetIfPresent(b, "password_hash", req.Password)
	SetIfPresent(b, "full_name", req.FullName)
	SetIfPresent(b, "level", req.Level)

	if b.Empty() {
		return nil, ErrNoFieldsToUpdate
	}

	query, args, err := b.Build(id, userColumns)
	if err != nil {
		return nil, fmt.Errorf("building update: %w", err)
	}

	dbCtx, cancel := withDBTimeout(ctx)
	defer cancel()

	u, err := scanUser(r.DB.QueryRowContext(dbCtx, query, args...))
	if err != nil {
		return nil, fmt.Errorf("updating user: %w", err)
	}

	return u, nil
}

func (r *userRepository) DeleteUser(ctx context.Context, id int64) error {
	return deleteByID(ctx, r.DB, "DELETE FROM users WHERE id = $1", id)
}

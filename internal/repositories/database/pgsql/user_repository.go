package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nunsahui/cafeledger/internal/apperrors"
	"github.com/nunsahui/cafeledger/internal/core/domain"
	portsrepo "github.com/nunsahui/cafeledger/internal/core/ports/repositories"
)

type userRepository struct {
	BaseRepository
}

func newUserRepository(db *pgxpool.Pool) portsrepo.UserRepositoryFacade {
	return &userRepository{BaseRepository: BaseRepository{Pool: db}}
}

var _ portsrepo.UserRepositoryFacade = (*userRepository)(nil)

const userSelect = `
	SELECT user_id, email, full_name, role,
	       created_at, created_by, last_updated_at, last_updated_by, deleted_at
	FROM users
`

func scanUserRow(row pgx.Row) (*domain.User, error) {
	var u domain.User
	var fullName *string
	err := row.Scan(
		&u.UserID,
		&u.Email,
		&fullName,
		&u.Role,
		&u.CreatedAt,
		&u.CreatedBy,
		&u.LastUpdatedAt,
		&u.LastUpdatedBy,
		&u.DeletedAt,
	)
	if err != nil {
		return nil, err
	}
	if fullName != nil {
		u.FullName = *fullName
	}
	return &u, nil
}

func (r *userRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	row := r.Pool.QueryRow(ctx, userSelect+` WHERE user_id = $1 AND deleted_at IS NULL`, userID)
	u, err := scanUserRow(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: user %s", apperrors.ErrNotFound, userID)
		}
		return nil, fmt.Errorf("error querying user %s: %w", userID, err)
	}
	return u, nil
}

func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	row := r.Pool.QueryRow(ctx, userSelect+` WHERE email = $1 AND deleted_at IS NULL`, email)
	u, err := scanUserRow(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: user %s", apperrors.ErrNotFound, email)
		}
		return nil, fmt.Errorf("error querying user by email: %w", err)
	}
	return u, nil
}

func (r *userRepository) ListUsers(ctx context.Context) ([]domain.User, error) {
	rows, err := r.Pool.Query(ctx, userSelect+` WHERE deleted_at IS NULL ORDER BY created_at ASC`)
	if err != nil {
		return nil, fmt.Errorf("error querying users: %w", err)
	}
	defer rows.Close()

	users := []domain.User{}
	for rows.Next() {
		u, err := scanUserRow(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning user row: %w", err)
		}
		users = append(users, *u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating user rows: %w", err)
	}
	return users, nil
}

func (r *userRepository) CountUsers(ctx context.Context) (int64, error) {
	var count int64
	err := r.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM users WHERE deleted_at IS NULL`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting users: %w", err)
	}
	return count, nil
}

func (r *userRepository) SaveUser(ctx context.Context, user domain.User, passwordHash string) error {
	query := `
		INSERT INTO users (user_id, email, full_name, role, password_hash,
			created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	var fullName *string
	if user.FullName != "" {
		fullName = &user.FullName
	}
	_, err := r.Pool.Exec(ctx, query,
		user.UserID,
		user.Email,
		fullName,
		user.Role,
		passwordHash,
		user.CreatedAt,
		user.CreatedBy,
		user.LastUpdatedAt,
		user.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: email %s already registered", apperrors.ErrDuplicate, user.Email)
		}
		return fmt.Errorf("failed to save user: %w", err)
	}
	return nil
}

func (r *userRepository) UpdateUserRole(ctx context.Context, userID string, role domain.Role, updatedBy string, now time.Time) error {
	tag, err := r.Pool.Exec(ctx, `
		UPDATE users
		SET role = $1, last_updated_at = $2, last_updated_by = $3
		WHERE user_id = $4 AND deleted_at IS NULL
	`, role, now, updatedBy, userID)
	if err != nil {
		return fmt.Errorf("failed to update role for user %s: %w", userID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: user %s", apperrors.ErrNotFound, userID)
	}
	return nil
}

func (r *userRepository) FindPasswordHash(ctx context.Context, email string) (string, error) {
	var hash string
	err := r.Pool.QueryRow(ctx,
		`SELECT password_hash FROM users WHERE email = $1 AND deleted_at IS NULL`,
		email,
	).Scan(&hash)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", fmt.Errorf("%w: user %s", apperrors.ErrNotFound, email)
		}
		return "", fmt.Errorf("error querying password hash: %w", err)
	}
	return hash, nil
}

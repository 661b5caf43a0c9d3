package user

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const pgUniqueViolation = "23505"

type PostgresRepo struct {
	db      *pgxpool.Pool
	timeout time.Duration
}

func NewPostgresRepo(db *pgxpool.Pool, timeout time.Duration) *PostgresRepo {
	return &PostgresRepo{db: db, timeout: timeout}
}

func (r *PostgresRepo) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, r.timeout)
}

func (r *PostgresRepo) Create(ctx context.Context, u *User) error {
	const query = `
	INSERT INTO users (userid, username, password_hash, role)
	VALUES ($1, $2, $3, COALESCE(NULLIF($4, ''), 'USER'))
	RETURNING id, role, created_at, updated_at
	`
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()

	err := r.db.QueryRow(timeoutCtx, query, u.UserID, u.Username, u.Password, u.Role).
		Scan(&u.ID, &u.Role, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return ErrAlreadyExists
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

func (r *PostgresRepo) GetByUserID(ctx context.Context, userID string) (User, error) {
	const query = `
	SELECT id, userid, username, password_hash, profile_pic_url, role, created_at, updated_at
	FROM users
	WHERE userid = $1
	LIMIT 1
	`
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()

	var u User
	err := r.db.QueryRow(timeoutCtx, query, userID).Scan(
		&u.ID, &u.UserID, &u.Username, &u.Password, &u.ProfilePicURL, &u.Role, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return User{}, ErrNotFound
		}
		return User{}, fmt.Errorf("get user: %w", err)
	}
	return u, nil
}

func (r *PostgresRepo) Exists(ctx context.Context, userID string) (bool, error) {
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()

	var exists bool
	err := r.db.QueryRow(timeoutCtx, `SELECT EXISTS(SELECT 1 FROM users WHERE userid = $1)`, userID).Scan(&exists)
	return exists, err
}

func (r *PostgresRepo) UpdateUsername(ctx context.Context, userID, username string) (User, error) {
	const query = `
	UPDATE users
	SET username = $2, updated_at = NOW()
	WHERE userid = $1
	RETURNING id, userid, username, password_hash, profile_pic_url, role, created_at, updated_at
	`
	u, err := r.updateReturning(ctx, query, userID, username)
	if err != nil && !errors.Is(err, ErrNotFound) {
		return User{}, fmt.Errorf("update username: %w", err)
	}
	return u, err
}

func (r *PostgresRepo) UpdateProfilePic(ctx context.Context, userID, url string) (User, error) {
	const query = `
	UPDATE users
	SET profile_pic_url = $2, updated_at = NOW()
	WHERE userid = $1
	RETURNING id, userid, username, password_hash, profile_pic_url, role, created_at, updated_at
	`
	u, err := r.updateReturning(ctx, query, userID, url)
	if err != nil && !errors.Is(err, ErrNotFound) {
		return User{}, fmt.Errorf("update profile picture: %w", err)
	}
	return u, err
}

func (r *PostgresRepo) updateReturning(ctx context.Context, query string, args ...any) (User, error) {
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()

	var u User
	err := r.db.QueryRow(timeoutCtx, query, args...).Scan(
		&u.ID, &u.UserID, &u.Username, &u.Password, &u.ProfilePicURL, &u.Role, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return User{}, ErrNotFound
		}
		return User{}, err
	}
	return u, nil
}

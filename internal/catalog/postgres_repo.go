package catalog

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
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

func (r *PostgresRepo) Insert(ctx context.Context, b *Book) error {
	// ON CONFLICT DO NOTHING makes the uniqueness check and the write one statement.
	const insertSQL = `
		INSERT INTO books (title, image_url, isbn)
		VALUES ($1, $2, $3)
		ON CONFLICT (isbn) DO NOTHING
		RETURNING id, created_at`

	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	err := r.db.QueryRow(ctx, insertSQL, b.Title, b.ImageURL, b.ISBN).Scan(&b.ID, &b.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrDuplicateISBN
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return ErrDuplicateISBN
		}
		return fmt.Errorf("insert book: %w", err)
	}
	return nil
}

func (r *PostgresRepo) List(ctx context.Context) ([]Book, error) {
	const query = `
		SELECT id, title, image_url, isbn, created_at
		FROM books
		ORDER BY seq ASC`

	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list books: %w", err)
	}
	defer rows.Close()

	books := []Book{}
	for rows.Next() {
		var b Book
		if err := rows.Scan(&b.ID, &b.Title, &b.ImageURL, &b.ISBN, &b.CreatedAt); err != nil {
			return nil, err
		}
		books = append(books, b)
	}
	return books, rows.Err()
}

// canonicalID reports whether id is a uuid in lowercase hyphenated form, the
// only form the books table hands back.
func canonicalID(id string) bool {
	u, err := uuid.Parse(id)
	return err == nil && u.String() == id
}

func (r *PostgresRepo) GetByID(ctx context.Context, id string) (Book, error) {
	if !canonicalID(id) {
		return Book{}, ErrNotFound
	}
	return r.getOne(ctx, "id = $1", id)
}

func (r *PostgresRepo) GetByISBN(ctx context.Context, isbn string) (Book, error) {
	return r.getOne(ctx, "isbn = $1", isbn)
}

func (r *PostgresRepo) getOne(ctx context.Context, where string, arg any) (Book, error) {
	query := `SELECT id, title, image_url, isbn, created_at FROM books WHERE ` + where

	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var b Book
	err := r.db.QueryRow(ctx, query, arg).Scan(&b.ID, &b.Title, &b.ImageURL, &b.ISBN, &b.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Book{}, ErrNotFound
		}
		return Book{}, fmt.Errorf("get book: %w", err)
	}
	return b, nil
}

func (r *PostgresRepo) GetByIDs(ctx context.Context, ids []string) (map[string]Book, error) {
	out := make(map[string]Book, len(ids))

	valid := make([]string, 0, len(ids))
	for _, id := range ids {
		if canonicalID(id) {
			valid = append(valid, id)
		}
	}
	if len(valid) == 0 {
		return out, nil
	}

	const query = `
		SELECT id, title, image_url, isbn, created_at
		FROM books
		WHERE id = ANY($1::uuid[])`

	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	rows, err := r.db.Query(ctx, query, valid)
	if err != nil {
		return nil, fmt.Errorf("resolve books: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var b Book
		if err := rows.Scan(&b.ID, &b.Title, &b.ImageURL, &b.ISBN, &b.CreatedAt); err != nil {
			return nil, err
		}
		out[b.ID] = b
	}
	return out, rows.Err()
}

func (r *PostgresRepo) Count(ctx context.Context) (int, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var count int
	err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM books").Scan(&count)
	return count, err
}

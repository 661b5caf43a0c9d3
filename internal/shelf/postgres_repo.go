package shelf

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresRepo stores one row per shelf entry in shelf_entries; the bigserial
// id gives the order within a shelf. Mutations lock the owner's users row, so
// two requests for the same user run one after the other.
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

func lockUser(ctx context.Context, tx pgx.Tx, userID string) error {
	var one int
	err := tx.QueryRow(ctx, `SELECT 1 FROM users WHERE userid = $1 FOR UPDATE`, userID).Scan(&one)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrUserNotFound
		}
		return fmt.Errorf("lock user: %w", err)
	}
	return nil
}

func (r *PostgresRepo) Shelves(ctx context.Context, userID string) (Refs, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var exists bool
	if err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM users WHERE userid = $1)`, userID).Scan(&exists); err != nil {
		return Refs{}, fmt.Errorf("lookup user: %w", err)
	}
	if !exists {
		return Refs{}, ErrUserNotFound
	}

	const query = `
		SELECT shelf, book_id
		FROM shelf_entries
		WHERE user_id = $1
		ORDER BY id ASC`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return Refs{}, fmt.Errorf("list shelf entries: %w", err)
	}
	defer rows.Close()

	var refs Refs
	for rows.Next() {
		var name, bookID string
		if err := rows.Scan(&name, &bookID); err != nil {
			return Refs{}, err
		}
		n, err := ParseName(name)
		if err != nil {
			continue
		}
		refs.add(n, bookID)
	}
	return refs, rows.Err()
}

func (r *PostgresRepo) Add(ctx context.Context, userID, bookID string, shelf Name) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if err := lockUser(ctx, tx, userID); err != nil {
		return err
	}

	var present bool
	const existsSQL = `
		SELECT EXISTS(
			SELECT 1 FROM shelf_entries
			WHERE user_id = $1 AND shelf = $2 AND book_id = $3
		)`
	if err := tx.QueryRow(ctx, existsSQL, userID, string(shelf), bookID).Scan(&present); err != nil {
		return fmt.Errorf("check shelf entry: %w", err)
	}
	if present {
		return ErrAlreadyInShelf
	}

	const insertSQL = `INSERT INTO shelf_entries (user_id, shelf, book_id) VALUES ($1, $2, $3)`
	if _, err := tx.Exec(ctx, insertSQL, userID, string(shelf), bookID); err != nil {
		return fmt.Errorf("insert shelf entry: %w", err)
	}

	return tx.Commit(ctx)
}

func (r *PostgresRepo) Move(ctx context.Context, userID, bookID string, from, to Name) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if err := lockUser(ctx, tx, userID); err != nil {
		return err
	}

	const deleteSQL = `DELETE FROM shelf_entries WHERE user_id = $1 AND shelf = $2 AND book_id = $3`
	if _, err := tx.Exec(ctx, deleteSQL, userID, string(from), bookID); err != nil {
		return fmt.Errorf("remove shelf entries: %w", err)
	}

	const insertSQL = `INSERT INTO shelf_entries (user_id, shelf, book_id) VALUES ($1, $2, $3)`
	if _, err := tx.Exec(ctx, insertSQL, userID, string(to), bookID); err != nil {
		return fmt.Errorf("insert shelf entry: %w", err)
	}

	return tx.Commit(ctx)
}

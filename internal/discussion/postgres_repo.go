package discussion

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

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

// querier is satisfied by both the pool and a transaction.
type querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func (r *PostgresRepo) Create(ctx context.Context, d *Discussion) error {
	const insertSQL = `
		INSERT INTO discussions (title, content, author)
		VALUES ($1, $2, $3)
		RETURNING id, created_at`

	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	if err := r.db.QueryRow(ctx, insertSQL, d.Title, d.Content, d.User).Scan(&d.ID, &d.CreatedAt); err != nil {
		return fmt.Errorf("insert discussion: %w", err)
	}
	if d.Replies == nil {
		d.Replies = []Reply{}
	}
	return nil
}

func (r *PostgresRepo) List(ctx context.Context) ([]Discussion, error) {
	const query = `
		SELECT id, title, content, author, created_at
		FROM discussions
		ORDER BY created_at DESC, seq DESC`

	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list discussions: %w", err)
	}
	defer rows.Close()

	list := []Discussion{}
	for rows.Next() {
		var d Discussion
		if err := rows.Scan(&d.ID, &d.Title, &d.Content, &d.User, &d.CreatedAt); err != nil {
			return nil, err
		}
		d.Replies = []Reply{}
		list = append(list, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return list, nil
	}

	ids := make([]string, len(list))
	index := make(map[string]int, len(list))
	for i, d := range list {
		ids[i] = d.ID
		index[d.ID] = i
	}

	replies, err := loadReplies(ctx, r.db, ids)
	if err != nil {
		return nil, err
	}
	for id, rs := range replies {
		list[index[id]].Replies = rs
	}
	return list, nil
}

func loadReplies(ctx context.Context, q querier, ids []string) (map[string][]Reply, error) {
	const query = `
		SELECT discussion_id, username, content, created_at
		FROM discussion_replies
		WHERE discussion_id = ANY($1::uuid[])
		ORDER BY id ASC`

	rows, err := q.Query(ctx, query, ids)
	if err != nil {
		return nil, fmt.Errorf("list replies: %w", err)
	}
	defer rows.Close()

	out := make(map[string][]Reply)
	for rows.Next() {
		var id string
		var rep Reply
		if err := rows.Scan(&id, &rep.Username, &rep.Content, &rep.CreatedAt); err != nil {
			return nil, err
		}
		out[id] = append(out[id], rep)
	}
	return out, rows.Err()
}

func (r *PostgresRepo) AddReply(ctx context.Context, discussionID string, reply Reply) (Discussion, error) {
	if _, err := uuid.Parse(discussionID); err != nil {
		return Discussion{}, ErrNotFound
	}

	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return Discussion{}, err
	}
	defer tx.Rollback(ctx)

	var d Discussion
	const lockSQL = `
		SELECT id, title, content, author, created_at
		FROM discussions
		WHERE id = $1
		FOR UPDATE`
	err = tx.QueryRow(ctx, lockSQL, discussionID).Scan(&d.ID, &d.Title, &d.Content, &d.User, &d.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Discussion{}, ErrNotFound
		}
		return Discussion{}, fmt.Errorf("lock discussion: %w", err)
	}

	const insertSQL = `INSERT INTO discussion_replies (discussion_id, username, content) VALUES ($1, $2, $3)`
	if _, err := tx.Exec(ctx, insertSQL, discussionID, reply.Username, reply.Content); err != nil {
		return Discussion{}, fmt.Errorf("insert reply: %w", err)
	}

	replies, err := loadReplies(ctx, tx, []string{discussionID})
	if err != nil {
		return Discussion{}, err
	}
	d.Replies = replies[discussionID]
	if d.Replies == nil {
		d.Replies = []Reply{}
	}

	if err := tx.Commit(ctx); err != nil {
		return Discussion{}, err
	}
	return d, nil
}

package message

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Store provides access to the messages table.
type Store struct {
	pool *pgxpool.Pool
}

// NewStore constructs a Store backed by the given connection pool.
func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

// Create inserts the message and returns it with its generated id and timestamp.
func (s *Store) Create(ctx context.Context, m Message) (Message, error) {
	err := s.pool.QueryRow(ctx, `
		INSERT INTO messages (user_id, text, sentiment)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`, m.UserID, m.Text, m.Sentiment).Scan(&m.ID, &m.CreatedAt)

	if err != nil {
		return Message{}, fmt.Errorf("insert message: %w", err)
	}

	return m, nil
}

// ListWithUsers returns all messages joined with their authors, oldest first.
// The ordering key (created_at, id) is total, so repeated reads without
// intervening writes return identical results.
func (s *Store) ListWithUsers(ctx context.Context) ([]WithUser, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT m.id, m.user_id, m.text, m.sentiment, m.created_at,
		       u.id, u.name, u.created_at
		FROM messages m
		JOIN users u ON u.id = m.user_id
		ORDER BY m.created_at, m.id
	`)
	if err != nil {
		return nil, fmt.Errorf("query messages: %w", err)
	}
	defer rows.Close()

	messages := []WithUser{}
	for rows.Next() {
		var m WithUser
		if err := rows.Scan(
			&m.ID, &m.UserID, &m.Text, &m.Sentiment, &m.CreatedAt,
			&m.User.ID, &m.User.Name, &m.User.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan message: %w", err)
		}
		messages = append(messages, m)
	}

	return messages, rows.Err()
}

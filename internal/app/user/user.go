/*
Package user contains the chat participant model and its Postgres-backed store.

A user is registered once with a unique display name and is immutable
afterwards. Uniqueness is enforced by the database constraint, not by a
check-then-insert sequence, so concurrent registrations of the same name
cannot both succeed.
*/
package user

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"moodchat/internal/app/db"
)

// ErrNameTaken is returned by Create when the display name is already registered.
var ErrNameTaken = errors.New("username already taken")

// ErrNotFound is returned by GetByID when no user exists with the given id.
var ErrNotFound = errors.New("user not found")

// User represents a registered chat participant.
type User struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

// Store provides access to the users table.
type Store struct {
	pool *pgxpool.Pool
}

// NewStore constructs a Store backed by the given connection pool.
func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

// Create inserts a new user and returns it with its generated id.
// A conflicting name yields ErrNameTaken.
func (s *Store) Create(ctx context.Context, name string) (User, error) {
	var u User

	err := s.pool.QueryRow(ctx, `
		INSERT INTO users (name)
		VALUES ($1)
		RETURNING id, name, created_at
	`, name).Scan(&u.ID, &u.Name, &u.CreatedAt)

	if err != nil {
		if db.IsUniqueViolation(err) {
			return User{}, ErrNameTaken
		}
		return User{}, fmt.Errorf("insert user: %w", err)
	}

	return u, nil
}

// List returns all users ordered by registration time.
func (s *Store) List(ctx context.Context) ([]User, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, name, created_at
		FROM users
		ORDER BY created_at, id
	`)
	if err != nil {
		return nil, fmt.Errorf("query users: %w", err)
	}
	defer rows.Close()

	users := []User{}
	for rows.Next() {
		var u User
		if err := rows.Scan(&u.ID, &u.Name, &u.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		users = append(users, u)
	}

	return users, rows.Err()
}

// GetByID fetches a single user. Absence yields ErrNotFound.
func (s *Store) GetByID(ctx context.Context, id uuid.UUID) (User, error) {
	var u User

	err := s.pool.QueryRow(ctx, `
		SELECT id, name, created_at
		FROM users
		WHERE id = $1
	`, id).Scan(&u.ID, &u.Name, &u.CreatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return User{}, ErrNotFound
		}
		return User{}, fmt.Errorf("query user by id: %w", err)
	}

	return u, nil
}

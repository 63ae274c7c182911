package token

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/hchen320/bestfriends/internal/database"
)

// Repository handles edit token persistence
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new token repository with database dependency injected
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// Insert stores a freshly minted token for a member
func (r *Repository) Insert(ctx context.Context, memberID int64, token string, expiresAt time.Time) error {
	query := `INSERT INTO edit_tokens (member_id, token, expires_at, created_at) VALUES (?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, query,
		memberID, token, database.FormatTime(expiresAt), database.FormatTime(time.Now()))
	if err != nil {
		return fmt.Errorf("failed to insert token: %w", err)
	}
	return nil
}

// DeleteForMember removes every token row a member owns
func (r *Repository) DeleteForMember(ctx context.Context, memberID int64) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM edit_tokens WHERE member_id = ?`, memberID); err != nil {
		return fmt.Errorf("failed to delete member tokens: %w", err)
	}
	return nil
}

// GetLive looks up a token row that has not expired as of now. The expiry
// check happens at read time on every call; an expired row that still exists
// is never returned. Returns nil without error when nothing matches.
func (r *Repository) GetLive(ctx context.Context, token string, now time.Time) (*EditToken, error) {
	query := `
		SELECT id, member_id, token, expires_at, created_at
		FROM edit_tokens
		WHERE token = ? AND expires_at > ?
	`

	var (
		t         EditToken
		expiresAt string
		createdAt string
	)
	err := r.db.QueryRowContext(ctx, query, token, database.FormatTime(now)).
		Scan(&t.ID, &t.MemberID, &t.Token, &expiresAt, &createdAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to look up token: %w", err)
	}

	if t.ExpiresAt, err = database.ParseTime(expiresAt); err != nil {
		return nil, err
	}
	if t.CreatedAt, err = database.ParseTime(createdAt); err != nil {
		return nil, err
	}

	return &t, nil
}

// DeleteByToken removes the row matching the exact token value, reporting
// how many rows matched
func (r *Repository) DeleteByToken(ctx context.Context, token string) (int64, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM edit_tokens WHERE token = ?`, token)
	if err != nil {
		return 0, fmt.Errorf("failed to delete token: %w", err)
	}
	return result.RowsAffected()
}

// DeleteExpired purges every token at or past its expiry, returning the count
func (r *Repository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	result, err := r.db.ExecContext(ctx,
		`DELETE FROM edit_tokens WHERE expires_at <= ?`, database.FormatTime(now))
	if err != nil {
		return 0, fmt.Errorf("failed to delete expired tokens: %w", err)
	}
	return result.RowsAffected()
}

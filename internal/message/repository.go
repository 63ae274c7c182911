package message

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/hchen320/bestfriends/internal/database"
)

// Repository handles guestbook data persistence. It also checks member
// existence directly against the members table, the same lookup every
// guestbook statement in the store is scoped by.
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new message repository with database dependency injected
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// MemberExists reports whether a member row with the given id exists
func (r *Repository) MemberExists(ctx context.Context, memberID int64) (bool, error) {
	var id int64
	err := r.db.QueryRowContext(ctx, `SELECT id FROM members WHERE id = ?`, memberID).Scan(&id)
	if err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, fmt.Errorf("failed to check member: %w", err)
	}
	return true, nil
}

func scanMessage(rows *sql.Rows, m *Message) error {
	var createdAt string
	if err := rows.Scan(&m.ID, &m.MemberID, &m.Content, &createdAt); err != nil {
		return err
	}
	var err error
	m.CreatedAt, err = database.ParseTime(createdAt)
	return err
}

// ListForMember retrieves the 20 most recent messages for a member, newest first
func (r *Repository) ListForMember(ctx context.Context, memberID int64) ([]*Message, error) {
	query := `
		SELECT id, member_id, content, created_at
		FROM messages
		WHERE member_id = ?
		ORDER BY created_at DESC, id DESC
		LIMIT 20
	`

	rows, err := r.db.QueryContext(ctx, query, memberID)
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}
	defer rows.Close()

	var messages []*Message
	for rows.Next() {
		m := &Message{}
		if err := scanMessage(rows, m); err != nil {
			return nil, fmt.Errorf("failed to scan message: %w", err)
		}
		messages = append(messages, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}

	return messages, nil
}

// ListAll retrieves every message joined with its owner's name, newest first
func (r *Repository) ListAll(ctx context.Context) ([]*MemberMessage, error) {
	query := `
		SELECT m.id, m.member_id, m.content, m.created_at, mb.name
		FROM messages m
		LEFT JOIN members mb ON m.member_id = mb.id
		ORDER BY m.created_at DESC, m.id DESC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list all messages: %w", err)
	}
	defer rows.Close()

	var messages []*MemberMessage
	for rows.Next() {
		m := &MemberMessage{}
		var createdAt string
		var name sql.NullString
		if err := rows.Scan(&m.ID, &m.MemberID, &m.Content, &createdAt, &name); err != nil {
			return nil, fmt.Errorf("failed to scan message: %w", err)
		}
		if m.CreatedAt, err = database.ParseTime(createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan message: %w", err)
		}
		if name.Valid {
			m.MemberName = &name.String
		}
		messages = append(messages, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list all messages: %w", err)
	}

	return messages, nil
}

// Create stores a new message and returns its id
func (r *Repository) Create(ctx context.Context, memberID int64, content string) (int64, error) {
	query := `INSERT INTO messages (member_id, content, created_at) VALUES (?, ?, ?)`

	result, err := r.db.ExecContext(ctx, query, memberID, content, database.FormatTime(time.Now()))
	if err != nil {
		return 0, fmt.Errorf("failed to create message: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get new message id: %w", err)
	}

	return id, nil
}

// Exists reports whether a message row with the given id exists
func (r *Repository) Exists(ctx context.Context, id int64) (bool, error) {
	var found int64
	err := r.db.QueryRowContext(ctx, `SELECT id FROM messages WHERE id = ?`, id).Scan(&found)
	if err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, fmt.Errorf("failed to check message: %w", err)
	}
	return true, nil
}

// Delete removes a single message
func (r *Repository) Delete(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM messages WHERE id = ?`, id); err != nil {
		return fmt.Errorf("failed to delete message: %w", err)
	}
	return nil
}

// DeleteForMember removes all of a member's messages, returning the count deleted
func (r *Repository) DeleteForMember(ctx context.Context, memberID int64) (int64, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM messages WHERE member_id = ?`, memberID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete member messages: %w", err)
	}
	return result.RowsAffected()
}

// DeleteAll removes every message, returning the count deleted
func (r *Repository) DeleteAll(ctx context.Context) (int64, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM messages`)
	if err != nil {
		return 0, fmt.Errorf("failed to delete all messages: %w", err)
	}
	return result.RowsAffected()
}

// GetStats counts totals, today's messages, and distinct posting members
func (r *Repository) GetStats(ctx context.Context) (*Stats, error) {
	stats := &Stats{}

	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM messages`).Scan(&stats.TotalMessages); err != nil {
		return nil, fmt.Errorf("failed to count messages: %w", err)
	}

	today := `SELECT COUNT(*) FROM messages WHERE DATE(created_at) = ?`
	if err := r.db.QueryRowContext(ctx, today, database.FormatDate(time.Now())).Scan(&stats.TodayMessages); err != nil {
		return nil, fmt.Errorf("failed to count today's messages: %w", err)
	}

	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(DISTINCT member_id) FROM messages`).Scan(&stats.ActiveMembers); err != nil {
		return nil, fmt.Errorf("failed to count active members: %w", err)
	}

	return stats, nil
}

package member

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/hchen320/bestfriends/internal/database"
)

const memberColumns = `id, name, avatar, bio, location, coordinates, wechat, tags, join_date, is_group_leader, created_at, updated_at`

// Repository handles member data persistence
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new member repository with database dependency injected
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanMember reads one member row, decoding the JSON text columns.
func scanMember(row rowScanner) (*Member, error) {
	var (
		m           Member
		avatar      sql.NullString
		bio         sql.NullString
		coordinates sql.NullString
		wechat      sql.NullString
		tags        sql.NullString
		joinDate    sql.NullString
		leader      int64
		createdAt   string
		updatedAt   string
	)

	err := row.Scan(
		&m.ID,
		&m.Name,
		&avatar,
		&bio,
		&m.Location,
		&coordinates,
		&wechat,
		&tags,
		&joinDate,
		&leader,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	m.Avatar = avatar.String
	m.Bio = bio.String
	m.Wechat = wechat.String
	m.JoinDate = joinDate.String
	m.IsGroupLeader = leader != 0

	var coordsRaw, tagsRaw *string
	if coordinates.Valid {
		coordsRaw = &coordinates.String
	}
	if tags.Valid {
		tagsRaw = &tags.String
	}
	if m.Coordinates, err = decodeCoordinates(coordsRaw); err != nil {
		return nil, err
	}
	if m.Tags, err = decodeTags(tagsRaw); err != nil {
		return nil, err
	}

	if m.CreatedAt, err = database.ParseTime(createdAt); err != nil {
		return nil, err
	}
	if m.UpdatedAt, err = database.ParseTime(updatedAt); err != nil {
		return nil, err
	}

	return &m, nil
}

// List retrieves all members, newest first
func (r *Repository) List(ctx context.Context) ([]*Member, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM members
		ORDER BY created_at DESC, id DESC
	`, memberColumns)

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}
	defer rows.Close()

	var members []*Member
	for rows.Next() {
		m, err := scanMember(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan member: %w", err)
		}
		members = append(members, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}

	return members, nil
}

// GetByID retrieves a member by id. Returns nil without error when no row matches.
func (r *Repository) GetByID(ctx context.Context, id int64) (*Member, error) {
	query := fmt.Sprintf(`SELECT %s FROM members WHERE id = ?`, memberColumns)

	m, err := scanMember(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get member: %w", err)
	}

	return m, nil
}

// Create inserts a new member and returns the stored record
func (r *Repository) Create(ctx context.Context, req *CreateMemberRequest) (*Member, error) {
	coords, err := encodeCoordinates(req.Coordinates)
	if err != nil {
		return nil, err
	}
	tags, err := encodeTags(req.Tags)
	if err != nil {
		return nil, err
	}

	now := database.FormatTime(time.Now())
	joinDate := req.JoinDate
	if joinDate == "" {
		joinDate = database.FormatDate(time.Now())
	}
	var wechat string
	if req.Social != nil {
		wechat = req.Social.Wechat
	}

	query := `
		INSERT INTO members (name, avatar, bio, location, coordinates, wechat, tags, join_date, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	result, err := r.db.ExecContext(ctx, query,
		req.Name, req.Avatar, req.Bio, req.Location, coords, wechat, tags, joinDate, now, now)
	if err != nil {
		return nil, fmt.Errorf("failed to create member: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get new member id: %w", err)
	}

	return r.GetByID(ctx, id)
}

// Update replaces all mutable fields of a member. When joinDate is empty the
// stored join date is left untouched (token-gated self-service edits).
func (r *Repository) Update(ctx context.Context, id int64, req *UpdateMemberRequest, joinDate string) error {
	coords, err := encodeCoordinates(req.Coordinates)
	if err != nil {
		return err
	}
	tags, err := encodeTags(req.Tags)
	if err != nil {
		return err
	}

	now := database.FormatTime(time.Now())
	var wechat string
	if req.Social != nil {
		wechat = req.Social.Wechat
	}

	if joinDate == "" {
		query := `
			UPDATE members
			SET name = ?, avatar = ?, bio = ?, location = ?, coordinates = ?,
			    wechat = ?, tags = ?, updated_at = ?
			WHERE id = ?
		`
		_, err = r.db.ExecContext(ctx, query,
			req.Name, req.Avatar, req.Bio, req.Location, coords, wechat, tags, now, id)
	} else {
		query := `
			UPDATE members
			SET name = ?, avatar = ?, bio = ?, location = ?, coordinates = ?,
			    wechat = ?, tags = ?, join_date = ?, updated_at = ?
			WHERE id = ?
		`
		_, err = r.db.ExecContext(ctx, query,
			req.Name, req.Avatar, req.Bio, req.Location, coords, wechat, tags, joinDate, now, id)
	}
	if err != nil {
		return fmt.Errorf("failed to update member: %w", err)
	}

	return nil
}

// Delete removes a member. Messages and edit tokens cascade at the store level.
func (r *Repository) Delete(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM members WHERE id = ?`, id); err != nil {
		return fmt.Errorf("failed to delete member: %w", err)
	}
	return nil
}

// SetGroupLeader clears the leader flag everywhere, then sets it on the target.
// These are two independent statements, not a transaction; a concurrent
// reader may briefly observe a directory with no leader.
func (r *Repository) SetGroupLeader(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, `UPDATE members SET is_group_leader = 0`); err != nil {
		return fmt.Errorf("failed to clear group leader: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, `UPDATE members SET is_group_leader = 1 WHERE id = ?`, id); err != nil {
		return fmt.Errorf("failed to set group leader: %w", err)
	}
	return nil
}

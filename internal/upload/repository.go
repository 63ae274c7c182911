package upload

import (
	"context"
	"database/sql"
	"fmt"
	"path"
	"strings"
)

// Repository reads which avatar files the member directory still references
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new upload repository with database dependency injected
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// UsedAvatarFiles returns the set of uploaded avatar filenames referenced by
// any member row. Avatars pointing outside /uploads (external URLs) are ignored.
func (r *Repository) UsedAvatarFiles(ctx context.Context) (map[string]bool, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT avatar FROM members WHERE avatar IS NOT NULL AND avatar != ''`)
	if err != nil {
		return nil, fmt.Errorf("failed to list member avatars: %w", err)
	}
	defer rows.Close()

	used := make(map[string]bool)
	for rows.Next() {
		var avatar string
		if err := rows.Scan(&avatar); err != nil {
			return nil, fmt.Errorf("failed to scan avatar: %w", err)
		}
		if strings.HasPrefix(avatar, "/uploads/") {
			used[path.Base(avatar)] = true
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list member avatars: %w", err)
	}

	return used, nil
}

package database

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenCreatesSchema(t *testing.T) {
	db, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	for _, table := range []string{"members", "messages", "edit_tokens"} {
		var name string
		err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?`, table).Scan(&name)
		require.NoError(t, err, "table %s should exist", table)
	}
}

func TestForeignKeysEnforced(t *testing.T) {
	db, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	// No member with id 999 exists, so the insert must be rejected.
	_, err = db.Exec(`INSERT INTO messages (member_id, content, created_at) VALUES (999, 'hi', ?)`,
		FormatTime(time.Now()))
	assert.Error(t, err)
}

func TestOpenRequiresPath(t *testing.T) {
	_, err := Open("  ")
	assert.Error(t, err)
}

func TestTimeRoundTrip(t *testing.T) {
	now := time.Date(2026, time.March, 14, 9, 26, 53, 0, time.UTC)

	parsed, err := ParseTime(FormatTime(now))
	require.NoError(t, err)
	assert.True(t, parsed.Equal(now))

	assert.Equal(t, "2026-03-14", FormatDate(now))
}

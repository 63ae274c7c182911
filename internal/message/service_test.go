package message

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hchen320/bestfriends/internal/database"
)

func newTestService(t *testing.T) (*Service, *sql.DB) {
	t.Helper()
	db, err := database.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewService(NewRepository(db)), db
}

func insertMember(t *testing.T, db *sql.DB, name string) int64 {
	t.Helper()
	now := database.FormatTime(time.Now())
	result, err := db.Exec(
		`INSERT INTO members (name, location, tags, join_date, created_at, updated_at) VALUES (?, 'L', '[]', ?, ?, ?)`,
		name, database.FormatDate(time.Now()), now, now)
	require.NoError(t, err)
	id, err := result.LastInsertId()
	require.NoError(t, err)
	return id
}

func TestAddContentBounds(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()
	memberID := insertMember(t, db, "A")

	_, err := svc.Add(ctx, memberID, "   ")
	assert.ErrorIs(t, err, ErrContentRequired, "whitespace-only content is empty after trimming")

	_, err = svc.Add(ctx, memberID, strings.Repeat("x", 21))
	assert.ErrorIs(t, err, ErrContentTooLong)

	id, err := svc.Add(ctx, memberID, "x")
	require.NoError(t, err)
	assert.NotZero(t, id)

	_, err = svc.Add(ctx, memberID, strings.Repeat("x", 20))
	assert.NoError(t, err)

	// Length is counted in characters, not bytes.
	_, err = svc.Add(ctx, memberID, strings.Repeat("好", 20))
	assert.NoError(t, err)
}

func TestAddStoresTrimmed(t *testing.T) {
	svc, db := newTestService(t)
	memberID := insertMember(t, db, "A")

	id, err := svc.Add(context.Background(), memberID, "  hello  ")
	require.NoError(t, err)

	var content string
	require.NoError(t, db.QueryRow(`SELECT content FROM messages WHERE id = ?`, id).Scan(&content))
	assert.Equal(t, "hello", content)
}

func TestAddMemberNotFound(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Add(context.Background(), 999, "hi")
	assert.ErrorIs(t, err, ErrMemberNotFound)
}

func TestListForMember(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()
	memberID := insertMember(t, db, "A")

	_, err := svc.ListForMember(ctx, 999)
	assert.ErrorIs(t, err, ErrMemberNotFound, "absent member is an error, not an empty list")

	empty, err := svc.ListForMember(ctx, memberID)
	require.NoError(t, err)
	assert.Empty(t, empty)

	for i := 0; i < 25; i++ {
		_, err := svc.Add(ctx, memberID, fmt.Sprintf("msg %d", i))
		require.NoError(t, err)
	}

	messages, err := svc.ListForMember(ctx, memberID)
	require.NoError(t, err)
	require.Len(t, messages, 20, "listing caps at the 20 most recent")
	assert.Equal(t, "msg 24", messages[0].Content, "newest first")
	assert.Equal(t, "msg 5", messages[19].Content)
}

func TestListAllJoinsMemberName(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()
	aID := insertMember(t, db, "Alice")
	bID := insertMember(t, db, "Bob")

	_, err := svc.Add(ctx, aID, "from a")
	require.NoError(t, err)
	_, err = svc.Add(ctx, bID, "from b")
	require.NoError(t, err)

	all, err := svc.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	require.NotNil(t, all[0].MemberName)
	assert.Equal(t, "Bob", *all[0].MemberName)
	require.NotNil(t, all[1].MemberName)
	assert.Equal(t, "Alice", *all[1].MemberName)
}

func TestDeleteOne(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()
	memberID := insertMember(t, db, "A")

	id, err := svc.Add(ctx, memberID, "hi")
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, id))
	assert.ErrorIs(t, svc.Delete(ctx, id), ErrMessageNotFound)
}

func TestDeleteForMember(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()
	aID := insertMember(t, db, "A")
	bID := insertMember(t, db, "B")

	for i := 0; i < 3; i++ {
		_, err := svc.Add(ctx, aID, "a msg")
		require.NoError(t, err)
	}
	_, err := svc.Add(ctx, bID, "b msg")
	require.NoError(t, err)

	count, err := svc.DeleteForMember(ctx, aID)
	require.NoError(t, err)
	assert.EqualValues(t, 3, count)

	// Member exists but has nothing left: zero, not an error.
	count, err = svc.DeleteForMember(ctx, aID)
	require.NoError(t, err)
	assert.Zero(t, count)

	_, err = svc.DeleteForMember(ctx, 999)
	assert.ErrorIs(t, err, ErrMemberNotFound)
}

func TestDeleteAll(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()
	memberID := insertMember(t, db, "A")

	for i := 0; i < 4; i++ {
		_, err := svc.Add(ctx, memberID, "hi")
		require.NoError(t, err)
	}

	count, err := svc.DeleteAll(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 4, count)

	count, err = svc.DeleteAll(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestStats(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()
	aID := insertMember(t, db, "A")
	bID := insertMember(t, db, "B")

	_, err := svc.Add(ctx, aID, "one")
	require.NoError(t, err)
	_, err = svc.Add(ctx, aID, "two")
	require.NoError(t, err)
	_, err = svc.Add(ctx, bID, "three")
	require.NoError(t, err)

	// Backdate one message so it falls outside today's count.
	_, err = db.Exec(`INSERT INTO messages (member_id, content, created_at) VALUES (?, 'old', ?)`,
		aID, database.FormatTime(time.Now().AddDate(0, 0, -2)))
	require.NoError(t, err)

	stats, err := svc.GetStats(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 4, stats.TotalMessages)
	assert.EqualValues(t, 3, stats.TodayMessages)
	assert.EqualValues(t, 2, stats.ActiveMembers)
}

package member

import (
	"context"
	"database/sql"
	"path/filepath"
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

func TestCreateAndGetRoundTrip(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, &CreateMemberRequest{
		Name:        "A",
		Location:    "B",
		Tags:        []string{"x", "y"},
		Coordinates: []float64{1.1, 2.2},
		Social:      &SocialLinks{Wechat: "wx-a"},
	})
	require.NoError(t, err)
	require.NotZero(t, created.ID)

	got, err := svc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "A", got.Name)
	assert.Equal(t, "B", got.Location)
	assert.Equal(t, []string{"x", "y"}, got.Tags)
	assert.Equal(t, []float64{1.1, 2.2}, got.Coordinates)
	assert.Equal(t, "wx-a", got.Wechat)
	assert.Equal(t, database.FormatDate(time.Now()), got.JoinDate)
	assert.False(t, got.IsGroupLeader)
}

func TestCreateDefaults(t *testing.T) {
	svc, _ := newTestService(t)

	m, err := svc.Create(context.Background(), &CreateMemberRequest{Name: "A", Location: "B"})
	require.NoError(t, err)

	assert.Equal(t, []string{}, m.Tags, "omitted tags decode to an empty list")
	assert.Nil(t, m.Coordinates, "omitted coordinates decode to nil")
	assert.Empty(t, m.Wechat)
}

func TestCreateValidation(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, &CreateMemberRequest{Location: "B"})
	assert.ErrorIs(t, err, ErrNameRequired)

	_, err = svc.Create(ctx, &CreateMemberRequest{Name: "A"})
	assert.ErrorIs(t, err, ErrLocationRequired)
}

func TestGetByIDNotFound(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.GetByID(context.Background(), 12345)
	assert.ErrorIs(t, err, ErrMemberNotFound)
}

func TestUpdateIsFullReplace(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	m, err := svc.Create(ctx, &CreateMemberRequest{
		Name:        "A",
		Location:    "B",
		Bio:         "old bio",
		Tags:        []string{"x"},
		Coordinates: []float64{1.0, 2.0},
	})
	require.NoError(t, err)

	// Omitted optional fields are stored as empty, not kept.
	updated, err := svc.Update(ctx, m.ID, &UpdateMemberRequest{Name: "A2", Location: "B2"})
	require.NoError(t, err)
	assert.Equal(t, "A2", updated.Name)
	assert.Equal(t, "B2", updated.Location)
	assert.Empty(t, updated.Bio)
	assert.Equal(t, []string{}, updated.Tags)
	assert.Nil(t, updated.Coordinates)
}

func TestUpdateNotFound(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Update(context.Background(), 999, &UpdateMemberRequest{Name: "A", Location: "B"})
	assert.ErrorIs(t, err, ErrMemberNotFound)
}

func TestListNewestFirst(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	var ids []int64
	for _, name := range []string{"first", "second", "third"} {
		m, err := svc.Create(ctx, &CreateMemberRequest{Name: name, Location: "L"})
		require.NoError(t, err)
		ids = append(ids, m.ID)
	}

	members, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, members, 3)
	assert.Equal(t, ids[2], members[0].ID)
	assert.Equal(t, ids[1], members[1].ID)
	assert.Equal(t, ids[0], members[2].ID)
}

func TestSetGroupLeaderSingleton(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()

	var ids []int64
	for _, name := range []string{"a", "b", "c"} {
		m, err := svc.Create(ctx, &CreateMemberRequest{Name: name, Location: "L"})
		require.NoError(t, err)
		ids = append(ids, m.ID)
	}

	require.NoError(t, svc.SetGroupLeader(ctx, ids[1]))
	require.NoError(t, svc.SetGroupLeader(ctx, ids[2]))

	var leaders int64
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM members WHERE is_group_leader = 1`).Scan(&leaders))
	assert.EqualValues(t, 1, leaders)

	m, err := svc.GetByID(ctx, ids[2])
	require.NoError(t, err)
	assert.True(t, m.IsGroupLeader)

	assert.ErrorIs(t, svc.SetGroupLeader(ctx, 999), ErrMemberNotFound)
}

func TestDeleteCascades(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()

	m, err := svc.Create(ctx, &CreateMemberRequest{Name: "A", Location: "B"})
	require.NoError(t, err)

	now := database.FormatTime(time.Now())
	_, err = db.Exec(`INSERT INTO messages (member_id, content, created_at) VALUES (?, 'hi', ?)`, m.ID, now)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO edit_tokens (member_id, token, expires_at, created_at) VALUES (?, 'tok', ?, ?)`,
		m.ID, now, now)
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, m.ID))

	var count int64
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM messages WHERE member_id = ?`, m.ID).Scan(&count))
	assert.Zero(t, count, "messages must be gone, not orphaned")
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM edit_tokens WHERE member_id = ?`, m.ID).Scan(&count))
	assert.Zero(t, count, "edit tokens must be gone, not orphaned")

	assert.ErrorIs(t, svc.Delete(ctx, m.ID), ErrMemberNotFound)
}

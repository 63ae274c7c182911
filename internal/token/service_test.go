package token

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hchen320/bestfriends/internal/database"
	"github.com/hchen320/bestfriends/internal/member"
)

func newTestService(t *testing.T) (*Service, *member.Repository, *sql.DB) {
	t.Helper()
	db, err := database.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	members := member.NewRepository(db)
	return NewService(NewRepository(db), members), members, db
}

func createMember(t *testing.T, members *member.Repository, name string) *member.Member {
	t.Helper()
	m, err := members.Create(context.Background(), &member.CreateMemberRequest{Name: name, Location: "L"})
	require.NoError(t, err)
	return m
}

func TestIssueAndVerify(t *testing.T) {
	svc, members, _ := newTestService(t)
	ctx := context.Background()
	m := createMember(t, members, "A")

	value, expiresAt, err := svc.Issue(ctx, m.ID, 24)
	require.NoError(t, err)
	assert.Len(t, value, 64, "32 random bytes, hex encoded")
	assert.True(t, expiresAt.After(time.Now()))

	got, gotExpiry, err := svc.Verify(ctx, value)
	require.NoError(t, err)
	assert.Equal(t, m.ID, got.ID)
	assert.Equal(t, "A", got.Name)
	// Stored with second precision.
	assert.WithinDuration(t, expiresAt, gotExpiry, time.Second)
}

func TestIssueMemberNotFound(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, _, err := svc.Issue(context.Background(), 999, 24)
	assert.ErrorIs(t, err, member.ErrMemberNotFound)
}

func TestReissueReplacesPreviousToken(t *testing.T) {
	svc, members, db := newTestService(t)
	ctx := context.Background()
	m := createMember(t, members, "A")

	first, _, err := svc.Issue(ctx, m.ID, 24)
	require.NoError(t, err)
	second, _, err := svc.Issue(ctx, m.ID, 24)
	require.NoError(t, err)

	_, _, err = svc.Verify(ctx, first)
	assert.ErrorIs(t, err, ErrInvalidToken, "rotated-out token must stop verifying")

	_, _, err = svc.Verify(ctx, second)
	assert.NoError(t, err)

	var rows int64
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM edit_tokens WHERE member_id = ?`, m.ID).Scan(&rows))
	assert.EqualValues(t, 1, rows, "at most one token row per member")
}

func TestVerifyUnknownAndExpiredAreIdentical(t *testing.T) {
	svc, members, _ := newTestService(t)
	ctx := context.Background()
	m := createMember(t, members, "A")

	_, _, unknownErr := svc.Verify(ctx, "never-issued")
	assert.ErrorIs(t, unknownErr, ErrInvalidToken)

	// Expiry at or before issuance means the token is born expired.
	for _, hours := range []int{0, -1} {
		value, _, err := svc.Issue(ctx, m.ID, hours)
		require.NoError(t, err)

		_, _, expiredErr := svc.Verify(ctx, value)
		assert.ErrorIs(t, expiredErr, ErrInvalidToken)
		assert.Equal(t, unknownErr.Error(), expiredErr.Error(),
			"caller cannot tell a wrong token from an expired one")
	}
}

func TestRevoke(t *testing.T) {
	svc, members, _ := newTestService(t)
	ctx := context.Background()
	m := createMember(t, members, "A")

	value, _, err := svc.Issue(ctx, m.ID, 24)
	require.NoError(t, err)

	require.NoError(t, svc.Revoke(ctx, value))

	_, _, err = svc.Verify(ctx, value)
	assert.ErrorIs(t, err, ErrInvalidToken)

	assert.ErrorIs(t, svc.Revoke(ctx, value), ErrTokenNotFound, "second revoke finds nothing")
	assert.ErrorIs(t, svc.Revoke(ctx, "never-issued"), ErrTokenNotFound)
}

func TestCleanupExpired(t *testing.T) {
	svc, members, _ := newTestService(t)
	ctx := context.Background()
	a := createMember(t, members, "A")
	b := createMember(t, members, "B")

	_, _, err := svc.Issue(ctx, a.ID, 0)
	require.NoError(t, err)
	live, _, err := svc.Issue(ctx, b.ID, 24)
	require.NoError(t, err)

	count, err := svc.CleanupExpired(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)

	_, _, err = svc.Verify(ctx, live)
	assert.NoError(t, err, "live token survives cleanup")

	count, err = svc.CleanupExpired(ctx)
	require.NoError(t, err)
	assert.Zero(t, count, "nothing expired means zero, not an error")
}

func TestUpdateMemberJoinDatePermission(t *testing.T) {
	svc, members, _ := newTestService(t)
	ctx := context.Background()

	m, err := members.Create(ctx, &member.CreateMemberRequest{
		Name:     "A",
		Location: "B",
		JoinDate: "2020-01-01",
	})
	require.NoError(t, err)

	value, _, err := svc.Issue(ctx, m.ID, 24)
	require.NoError(t, err)

	// Self-service path: the join date field is ignored.
	req := &member.UpdateMemberRequest{Name: "A2", Location: "B2", JoinDate: "2025-05-05"}
	require.NoError(t, svc.UpdateMember(ctx, value, req, false))

	got, err := members.GetByID(ctx, m.ID)
	require.NoError(t, err)
	assert.Equal(t, "A2", got.Name)
	assert.Equal(t, "2020-01-01", got.JoinDate)

	// Administrative path: the join date is writable.
	require.NoError(t, svc.UpdateMember(ctx, value, req, true))

	got, err = members.GetByID(ctx, m.ID)
	require.NoError(t, err)
	assert.Equal(t, "2025-05-05", got.JoinDate)
}

func TestUpdateMemberValidation(t *testing.T) {
	svc, members, _ := newTestService(t)
	ctx := context.Background()
	m := createMember(t, members, "A")

	value, _, err := svc.Issue(ctx, m.ID, 24)
	require.NoError(t, err)

	err = svc.UpdateMember(ctx, value, &member.UpdateMemberRequest{Location: "B"}, false)
	assert.ErrorIs(t, err, member.ErrNameRequired)

	err = svc.UpdateMember(ctx, value, &member.UpdateMemberRequest{Name: "A"}, false)
	assert.ErrorIs(t, err, member.ErrLocationRequired)

	err = svc.UpdateMember(ctx, "never-issued", &member.UpdateMemberRequest{Name: "A", Location: "B"}, false)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

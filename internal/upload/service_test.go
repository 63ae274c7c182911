package upload

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/base64"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hchen320/bestfriends/internal/database"
)

func newTestService(t *testing.T) (*Service, *sql.DB, string) {
	t.Helper()
	dir := t.TempDir()
	db, err := database.Open(filepath.Join(dir, "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	uploadDir := filepath.Join(dir, "uploads")
	svc, err := NewService(NewRepository(db), uploadDir)
	require.NoError(t, err)
	return svc, db, uploadDir
}

func testPNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 100, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestSaveAvatarResizes(t *testing.T) {
	svc, _, dir := newTestService(t)

	filename, err := svc.SaveAvatar(bytes.NewReader(testPNG(t, 640, 480)))
	require.NoError(t, err)
	assert.Contains(t, filename, avatarPrefix)

	img, err := imaging.Open(filepath.Join(dir, filename))
	require.NoError(t, err)
	bounds := img.Bounds()
	assert.Equal(t, 200, bounds.Dx())
	assert.Equal(t, 200, bounds.Dy())
}

func TestSaveAvatarRejectsNonImage(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.SaveAvatar(bytes.NewReader([]byte("not an image")))
	assert.ErrorIs(t, err, ErrNotImage)
}

func TestSaveAvatarBase64(t *testing.T) {
	svc, _, dir := newTestService(t)
	encoded := base64.StdEncoding.EncodeToString(testPNG(t, 300, 300))

	filename, err := svc.SaveAvatarBase64("data:image/png;base64," + encoded)
	require.NoError(t, err)
	_, err = os.Stat(filepath.Join(dir, filename))
	assert.NoError(t, err)

	// Raw base64 without the data-URL prefix works too.
	_, err = svc.SaveAvatarBase64(encoded)
	assert.NoError(t, err)

	_, err = svc.SaveAvatarBase64("%%%not-base64%%%")
	assert.ErrorIs(t, err, ErrNotImage)
}

func TestDeleteAvatar(t *testing.T) {
	svc, _, _ := newTestService(t)

	filename, err := svc.SaveAvatar(bytes.NewReader(testPNG(t, 100, 100)))
	require.NoError(t, err)

	require.NoError(t, svc.DeleteAvatar(filename))
	assert.ErrorIs(t, svc.DeleteAvatar(filename), ErrFileNotFound)
	assert.ErrorIs(t, svc.DeleteAvatar("../escape.jpg"), ErrBadFilename)
}

func TestCleanupUnused(t *testing.T) {
	svc, db, _ := newTestService(t)
	ctx := context.Background()

	used, err := svc.SaveAvatar(bytes.NewReader(testPNG(t, 100, 100)))
	require.NoError(t, err)
	_, err = svc.SaveAvatar(bytes.NewReader(testPNG(t, 100, 100)))
	require.NoError(t, err)

	now := database.FormatTime(time.Now())
	_, err = db.Exec(
		`INSERT INTO members (name, location, avatar, tags, created_at, updated_at) VALUES ('A', 'L', ?, '[]', ?, ?)`,
		"/uploads/"+used, now, now)
	require.NoError(t, err)

	count, err := svc.CleanupUnused(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count, "only the unreferenced file is removed")

	require.NoError(t, svc.DeleteAvatar(used), "the referenced file must still exist")
}

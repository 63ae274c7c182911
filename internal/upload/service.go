package upload

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"
)

const (
	avatarSize        = 200
	avatarJPEGQuality = 90
	avatarPrefix      = "avatar_"
)

// Common errors
var (
	ErrNotImage     = errors.New("uploaded file is not an image")
	ErrFileNotFound = errors.New("file not found")
	ErrBadFilename  = errors.New("invalid filename")
)

// Service processes avatar uploads: every accepted image is center-cropped to
// a 200x200 JPEG under the upload directory.
type Service struct {
	repo *Repository
	dir  string
}

// NewService creates a new upload service writing into dir, creating it if needed
func NewService(repo *Repository, dir string) (*Service, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &Service{repo: repo, dir: dir}, nil
}

// SaveAvatar decodes, resizes, and stores an uploaded image, returning the
// generated filename
func (s *Service) SaveAvatar(src io.Reader) (string, error) {
	img, err := imaging.Decode(src, imaging.AutoOrientation(true))
	if err != nil {
		return "", ErrNotImage
	}

	resized := imaging.Fill(img, avatarSize, avatarSize, imaging.Center, imaging.Lanczos)

	filename := fmt.Sprintf("%s%s.jpg", avatarPrefix, uuid.New().String())
	f, err := os.Create(filepath.Join(s.dir, filename))
	if err != nil {
		return "", fmt.Errorf("create avatar file: %w", err)
	}
	defer f.Close()

	if err := imaging.Encode(f, resized, imaging.JPEG, imaging.JPEGQuality(avatarJPEGQuality)); err != nil {
		return "", fmt.Errorf("encode avatar: %w", err)
	}

	return filename, nil
}

// SaveAvatarBase64 accepts raw base64 image data, tolerating a data-URL prefix
func (s *Service) SaveAvatarBase64(data string) (string, error) {
	if strings.HasPrefix(data, "data:") {
		if _, rest, found := strings.Cut(data, ","); found {
			data = rest
		}
	}

	decoded, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		return "", ErrNotImage
	}

	return s.SaveAvatar(bytes.NewReader(decoded))
}

// DeleteAvatar removes a previously uploaded file by bare filename
func (s *Service) DeleteAvatar(filename string) error {
	if filename == "" || filename != filepath.Base(filename) {
		return ErrBadFilename
	}

	err := os.Remove(filepath.Join(s.dir, filename))
	if err != nil {
		if os.IsNotExist(err) {
			return ErrFileNotFound
		}
		return fmt.Errorf("delete avatar: %w", err)
	}
	return nil
}

// CleanupUnused deletes uploaded avatar files no member references anymore,
// returning the count removed
func (s *Service) CleanupUnused(ctx context.Context) (int64, error) {
	used, err := s.repo.UsedAvatarFiles(ctx)
	if err != nil {
		return 0, err
	}

	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return 0, fmt.Errorf("read upload dir: %w", err)
	}

	var deleted int64
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasPrefix(name, avatarPrefix) || used[name] {
			continue
		}
		if err := os.Remove(filepath.Join(s.dir, name)); err != nil {
			return deleted, fmt.Errorf("delete unused avatar: %w", err)
		}
		deleted++
	}

	return deleted, nil
}

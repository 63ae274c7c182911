package message

import (
	"context"
	"errors"
	"strings"
	"unicode/utf8"
)

// maxContentLength caps guestbook entries at 20 characters.
const maxContentLength = 20

// Common errors
var (
	ErrMemberNotFound  = errors.New("member not found")
	ErrMessageNotFound = errors.New("message not found")
	ErrContentRequired = errors.New("message content is required")
	ErrContentTooLong  = errors.New("message content must not exceed 20 characters")
)

// Service handles guestbook business logic
type Service struct {
	repo *Repository
}

// NewService creates a new message service with repository dependency injected
func NewService(repo *Repository) *Service {
	return &Service{repo: repo}
}

// ListForMember retrieves a member's recent messages
func (s *Service) ListForMember(ctx context.Context, memberID int64) ([]*Message, error) {
	exists, err := s.repo.MemberExists(ctx, memberID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrMemberNotFound
	}
	return s.repo.ListForMember(ctx, memberID)
}

// Add validates and stores a new message for a member, returning its id.
// Content is rejected when empty after trimming or longer than 20 characters,
// and stored trimmed.
func (s *Service) Add(ctx context.Context, memberID int64, content string) (int64, error) {
	trimmed := strings.TrimSpace(content)
	if trimmed == "" {
		return 0, ErrContentRequired
	}
	if utf8.RuneCountInString(content) > maxContentLength {
		return 0, ErrContentTooLong
	}

	exists, err := s.repo.MemberExists(ctx, memberID)
	if err != nil {
		return 0, err
	}
	if !exists {
		return 0, ErrMemberNotFound
	}

	return s.repo.Create(ctx, memberID, trimmed)
}

// ListAll retrieves every message with its owner's name (admin view)
func (s *Service) ListAll(ctx context.Context) ([]*MemberMessage, error) {
	return s.repo.ListAll(ctx)
}

// Delete removes a single message
func (s *Service) Delete(ctx context.Context, id int64) error {
	exists, err := s.repo.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return ErrMessageNotFound
	}
	return s.repo.Delete(ctx, id)
}

// DeleteForMember clears a member's guestbook, returning the count deleted
func (s *Service) DeleteForMember(ctx context.Context, memberID int64) (int64, error) {
	exists, err := s.repo.MemberExists(ctx, memberID)
	if err != nil {
		return 0, err
	}
	if !exists {
		return 0, ErrMemberNotFound
	}
	return s.repo.DeleteForMember(ctx, memberID)
}

// DeleteAll clears the entire guestbook, returning the count deleted
func (s *Service) DeleteAll(ctx context.Context) (int64, error) {
	return s.repo.DeleteAll(ctx)
}

// GetStats summarizes guestbook activity
func (s *Service) GetStats(ctx context.Context) (*Stats, error) {
	return s.repo.GetStats(ctx)
}

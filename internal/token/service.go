package token

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/hchen320/bestfriends/internal/database"
	"github.com/hchen320/bestfriends/internal/member"
)

// DefaultExpiresInHours is the token lifetime when the caller does not pick one.
const DefaultExpiresInHours = 24

// ErrInvalidToken covers both a token that was never issued and one that has
// expired. The two cases are deliberately indistinguishable to the caller.
var ErrInvalidToken = errors.New("token is invalid or expired")

// ErrTokenNotFound is returned by Revoke when no row matched the token value.
var ErrTokenNotFound = errors.New("token not found")

// Service manages the edit token lifecycle: replace-on-issue, expiry-checked
// verification, token-gated member updates, revocation, and cleanup.
type Service struct {
	repo    *Repository
	members *member.Repository
}

// NewService creates a new token service. The member repository is injected
// so verified tokens can be resolved to full member records.
func NewService(repo *Repository, members *member.Repository) *Service {
	return &Service{repo: repo, members: members}
}

// generateToken mints a 256-bit random token, hex encoded
func generateToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

// Issue creates a new edit token for a member, replacing any existing one.
// The delete and insert are two independent statements; between them a
// concurrent verify may still see the old token.
//
// expiresInHours at or below zero yields a token that is already expired,
// which verification will reject.
func (s *Service) Issue(ctx context.Context, memberID int64, expiresInHours int) (string, time.Time, error) {
	m, err := s.members.GetByID(ctx, memberID)
	if err != nil {
		return "", time.Time{}, err
	}
	if m == nil {
		return "", time.Time{}, member.ErrMemberNotFound
	}

	value, err := generateToken()
	if err != nil {
		return "", time.Time{}, err
	}
	expiresAt := time.Now().Add(time.Duration(expiresInHours) * time.Hour)

	if err := s.repo.DeleteForMember(ctx, memberID); err != nil {
		return "", time.Time{}, err
	}
	if err := s.repo.Insert(ctx, memberID, value, expiresAt); err != nil {
		return "", time.Time{}, err
	}

	return value, expiresAt, nil
}

// Verify resolves a token to its member record. The expiry window is checked
// against the clock on every call, never cached: two calls straddling the
// expiry instant return different results.
func (s *Service) Verify(ctx context.Context, value string) (*member.Member, time.Time, error) {
	t, err := s.repo.GetLive(ctx, value, time.Now())
	if err != nil {
		return nil, time.Time{}, err
	}
	if t == nil {
		return nil, time.Time{}, ErrInvalidToken
	}

	m, err := s.members.GetByID(ctx, t.MemberID)
	if err != nil {
		return nil, time.Time{}, err
	}
	if m == nil {
		// Owner row vanished between lookups; treat like any bad token.
		return nil, time.Time{}, ErrInvalidToken
	}

	return m, t.ExpiresAt, nil
}

// UpdateMember performs a token-gated full-field update of the owning member.
// The join date is only writable when allowJoinDateChange is true (the
// administrative entry point); the self-service path leaves it untouched.
func (s *Service) UpdateMember(ctx context.Context, value string, req *member.UpdateMemberRequest, allowJoinDateChange bool) error {
	t, err := s.repo.GetLive(ctx, value, time.Now())
	if err != nil {
		return err
	}
	if t == nil {
		return ErrInvalidToken
	}

	if req.Name == "" {
		return member.ErrNameRequired
	}
	if req.Location == "" {
		return member.ErrLocationRequired
	}

	joinDate := ""
	if allowJoinDateChange {
		joinDate = req.JoinDate
		if joinDate == "" {
			joinDate = database.FormatDate(time.Now())
		}
	}

	return s.members.Update(ctx, t.MemberID, req, joinDate)
}

// Revoke deletes the row matching the token value. Revoking a token that is
// unknown, or already revoked, reports ErrTokenNotFound either way.
func (s *Service) Revoke(ctx context.Context, value string) error {
	matched, err := s.repo.DeleteByToken(ctx, value)
	if err != nil {
		return err
	}
	if matched == 0 {
		return ErrTokenNotFound
	}
	return nil
}

// CleanupExpired purges every expired token row, returning the count deleted.
// Safe to call at any time; nothing expired means zero.
func (s *Service) CleanupExpired(ctx context.Context) (int64, error) {
	return s.repo.DeleteExpired(ctx, time.Now())
}

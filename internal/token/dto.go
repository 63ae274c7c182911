package token

import (
	"time"

	"github.com/hchen320/bestfriends/internal/database"
	"github.com/hchen320/bestfriends/internal/member"
)

// GenerateTokenRequest asks for a new edit token for a member
type GenerateTokenRequest struct {
	MemberID       int64 `json:"memberId" validate:"required"`
	ExpiresInHours *int  `json:"expiresInHours"`
}

// GenerateTokenResponse carries a freshly issued token
type GenerateTokenResponse struct {
	Token     string `json:"token"`
	ExpiresAt string `json:"expiresAt"`
}

// VerifiedMember is a member record returned by a successful verification,
// annotated with the token's expiry
type VerifiedMember struct {
	member.MemberResponse
	TokenExpiresAt string `json:"tokenExpiresAt"`
}

// VerifyResponse reports a successful token verification
type VerifyResponse struct {
	Valid  bool            `json:"valid"`
	Member *VerifiedMember `json:"member"`
}

// CleanupResponse reports how many expired tokens a cleanup removed
type CleanupResponse struct {
	DeletedCount int64 `json:"deletedCount"`
}

// newVerifiedMember annotates a member with the verified token's expiry
func newVerifiedMember(m *member.Member, expiresAt time.Time) *VerifiedMember {
	return &VerifiedMember{
		MemberResponse: *m.ToResponse(),
		TokenExpiresAt: database.FormatTime(expiresAt),
	}
}

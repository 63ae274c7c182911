package member

import "github.com/hchen320/bestfriends/internal/database"

// SocialLinks nests contact handles in member payloads
type SocialLinks struct {
	Wechat string `json:"wechat"`
}

// CreateMemberRequest represents the request body for creating a member
type CreateMemberRequest struct {
	Name        string       `json:"name" validate:"required"`
	Avatar      string       `json:"avatar"`
	Bio         string       `json:"bio"`
	Location    string       `json:"location" validate:"required"`
	Coordinates []float64    `json:"coordinates" validate:"omitempty,len=2"`
	Tags        []string     `json:"tags"`
	JoinDate    string       `json:"joinDate" validate:"omitempty,datetime=2006-01-02"`
	Social      *SocialLinks `json:"social"`
}

// UpdateMemberRequest represents the request body for updating a member.
// All mutable fields are replaced; an omitted optional field is stored as
// empty, not kept.
type UpdateMemberRequest struct {
	Name        string       `json:"name" validate:"required"`
	Avatar      string       `json:"avatar"`
	Bio         string       `json:"bio"`
	Location    string       `json:"location" validate:"required"`
	Coordinates []float64    `json:"coordinates" validate:"omitempty,len=2"`
	Tags        []string     `json:"tags"`
	JoinDate    string       `json:"joinDate" validate:"omitempty,datetime=2006-01-02"`
	Social      *SocialLinks `json:"social"`
}

// SetGroupLeaderRequest selects the member to promote
type SetGroupLeaderRequest struct {
	MemberID int64 `json:"memberId" validate:"required"`
}

// MemberResponse represents the response for a single member
type MemberResponse struct {
	ID            int64       `json:"id"`
	Name          string      `json:"name"`
	Avatar        string      `json:"avatar"`
	Bio           string      `json:"bio"`
	Location      string      `json:"location"`
	Coordinates   []float64   `json:"coordinates"`
	Tags          []string    `json:"tags"`
	JoinDate      string      `json:"joinDate"`
	IsGroupLeader bool        `json:"isGroupLeader"`
	Social        SocialLinks `json:"social"`
	CreatedAt     string      `json:"createdAt"`
	UpdatedAt     string      `json:"updatedAt"`
}

// MemberListResponse wraps the directory listing
type MemberListResponse struct {
	Members []*MemberResponse `json:"members"`
}

// ToResponse converts a Member model to a MemberResponse DTO
func (m *Member) ToResponse() *MemberResponse {
	return &MemberResponse{
		ID:            m.ID,
		Name:          m.Name,
		Avatar:        m.Avatar,
		Bio:           m.Bio,
		Location:      m.Location,
		Coordinates:   m.Coordinates,
		Tags:          m.Tags,
		JoinDate:      m.JoinDate,
		IsGroupLeader: m.IsGroupLeader,
		Social:        SocialLinks{Wechat: m.Wechat},
		CreatedAt:     m.CreatedAt.Format(database.TimeLayout),
		UpdatedAt:     m.UpdatedAt.Format(database.TimeLayout),
	}
}

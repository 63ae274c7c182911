package message

import "github.com/hchen320/bestfriends/internal/database"

// AddMessageRequest represents the request body for posting a message
type AddMessageRequest struct {
	Content string `json:"content" validate:"required"`
}

// MessageResponse represents a single guestbook message
type MessageResponse struct {
	ID        int64  `json:"id"`
	MemberID  int64  `json:"member_id"`
	Content   string `json:"content"`
	CreatedAt string `json:"created_at"`
}

// MemberMessageResponse adds the owning member's name for the admin view
type MemberMessageResponse struct {
	MessageResponse
	MemberName *string `json:"member_name"`
}

// DeletedResponse reports how many rows a bulk delete removed
type DeletedResponse struct {
	DeletedCount int64 `json:"deletedCount"`
}

// ToResponse converts a Message model to a MessageResponse DTO
func (m *Message) ToResponse() *MessageResponse {
	return &MessageResponse{
		ID:        m.ID,
		MemberID:  m.MemberID,
		Content:   m.Content,
		CreatedAt: m.CreatedAt.Format(database.TimeLayout),
	}
}

// ToResponse converts a MemberMessage model to its DTO
func (m *MemberMessage) ToResponse() *MemberMessageResponse {
	return &MemberMessageResponse{
		MessageResponse: *m.Message.ToResponse(),
		MemberName:      m.MemberName,
	}
}

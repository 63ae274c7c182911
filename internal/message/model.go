package message

import "time"

// Message is one guestbook entry attached to a member
type Message struct {
	ID        int64
	MemberID  int64
	Content   string
	CreatedAt time.Time
}

// MemberMessage is the administrative view of a message joined with its
// owner's name. MemberName is nil when the owning member no longer resolves.
type MemberMessage struct {
	Message
	MemberName *string
}

// Stats summarizes guestbook activity
type Stats struct {
	TotalMessages int64 `json:"totalMessages"`
	TodayMessages int64 `json:"todayMessages"`
	ActiveMembers int64 `json:"activeMembers"`
}

package member

import (
	"encoding/json"
	"fmt"
	"time"
)

// Member represents one entry in the directory.
//
// Coordinates and Tags are persisted as JSON text columns; the rest of the
// system only ever sees the decoded forms. Coordinates is nil when the member
// has no location pin, Tags is never nil.
type Member struct {
	ID            int64
	Name          string
	Avatar        string
	Bio           string
	Location      string
	Coordinates   []float64
	Wechat        string
	Tags          []string
	JoinDate      string // "2006-01-02"
	IsGroupLeader bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// encodeCoordinates serializes a [lng, lat] pair for storage. A nil pair is
// stored as NULL.
func encodeCoordinates(coords []float64) (*string, error) {
	if coords == nil {
		return nil, nil
	}
	b, err := json.Marshal(coords)
	if err != nil {
		return nil, fmt.Errorf("encode coordinates: %w", err)
	}
	s := string(b)
	return &s, nil
}

// decodeCoordinates parses a stored coordinates column. NULL decodes to nil.
func decodeCoordinates(raw *string) ([]float64, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}
	var coords []float64
	if err := json.Unmarshal([]byte(*raw), &coords); err != nil {
		return nil, fmt.Errorf("decode coordinates: %w", err)
	}
	return coords, nil
}

// encodeTags serializes the tag list for storage. An omitted list is stored
// as an empty JSON array, never NULL.
func encodeTags(tags []string) (string, error) {
	if tags == nil {
		tags = []string{}
	}
	b, err := json.Marshal(tags)
	if err != nil {
		return "", fmt.Errorf("encode tags: %w", err)
	}
	return string(b), nil
}

// decodeTags parses a stored tags column. NULL decodes to an empty list.
func decodeTags(raw *string) ([]string, error) {
	if raw == nil || *raw == "" {
		return []string{}, nil
	}
	var tags []string
	if err := json.Unmarshal([]byte(*raw), &tags); err != nil {
		return nil, fmt.Errorf("decode tags: %w", err)
	}
	if tags == nil {
		tags = []string{}
	}
	return tags, nil
}

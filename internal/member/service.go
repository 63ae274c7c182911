package member

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/hchen320/bestfriends/internal/database"
)

// Common errors
var (
	ErrMemberNotFound   = errors.New("member not found")
	ErrNameRequired     = errors.New("name is required")
	ErrLocationRequired = errors.New("location is required")
)

// Service handles member business logic
type Service struct {
	repo *Repository
}

// NewService creates a new member service with repository dependency injected
func NewService(repo *Repository) *Service {
	return &Service{repo: repo}
}

// List retrieves all members, newest first
func (s *Service) List(ctx context.Context) ([]*Member, error) {
	return s.repo.List(ctx)
}

// GetByID retrieves a member by id
func (s *Service) GetByID(ctx context.Context, id int64) (*Member, error) {
	m, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, ErrMemberNotFound
	}
	return m, nil
}

// Create validates required fields and stores a new member
func (s *Service) Create(ctx context.Context, req *CreateMemberRequest) (*Member, error) {
	if err := checkRequired(req.Name, req.Location); err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, req)
}

// Update replaces all fields of an existing member
func (s *Service) Update(ctx context.Context, id int64, req *UpdateMemberRequest) (*Member, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrMemberNotFound
	}
	if err := checkRequired(req.Name, req.Location); err != nil {
		return nil, err
	}

	joinDate := req.JoinDate
	if joinDate == "" {
		joinDate = todayDate()
	}
	if err := s.repo.Update(ctx, id, req, joinDate); err != nil {
		return nil, err
	}

	return s.repo.GetByID(ctx, id)
}

// Delete removes a member along with their messages and edit tokens
func (s *Service) Delete(ctx context.Context, id int64) error {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrMemberNotFound
	}
	return s.repo.Delete(ctx, id)
}

// SetGroupLeader makes the given member the single group leader
func (s *Service) SetGroupLeader(ctx context.Context, id int64) error {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrMemberNotFound
	}
	return s.repo.SetGroupLeader(ctx, id)
}

func todayDate() string {
	return database.FormatDate(time.Now())
}

func checkRequired(name, location string) error {
	if strings.TrimSpace(name) == "" {
		return ErrNameRequired
	}
	if strings.TrimSpace(location) == "" {
		return ErrLocationRequired
	}
	return nil
}

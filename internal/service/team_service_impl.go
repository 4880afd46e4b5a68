package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/alexanderramin/quarterplan/internal/domain"
	"github.com/alexanderramin/quarterplan/internal/repository"
)

type teamService struct {
	prefs repository.PreferencesRepo
}

// NewTeamService creates a TeamService over the given repository.
func NewTeamService(prefs repository.PreferencesRepo) TeamService {
	return &teamService{prefs: prefs}
}

func (s *teamService) Preferences(ctx context.Context) (*domain.Preferences, error) {
	prefs, err := s.prefs.Get(ctx)
	if errors.Is(err, repository.ErrNotFound) {
		defaults := domain.DefaultPreferences()
		return &defaults, nil
	}
	if err != nil {
		return nil, err
	}
	return prefs, nil
}

func (s *teamService) SavePreferences(ctx context.Context, prefs *domain.Preferences) error {
	if err := prefs.Validate(); err != nil {
		return fmt.Errorf("invalid preferences: %w", err)
	}
	return s.prefs.Save(ctx, prefs)
}

func (s *teamService) AddMember(ctx context.Context, name string, role domain.Role, capacity float64) (domain.TeamMember, error) {
	if name == "" {
		return domain.TeamMember{}, fmt.Errorf("member name is required")
	}
	if !domain.ValidRoles[role] {
		return domain.TeamMember{}, fmt.Errorf("invalid role %q", role)
	}
	if capacity < 0 {
		return domain.TeamMember{}, fmt.Errorf("capacity must be non-negative, got %v", capacity)
	}

	prefs, err := s.Preferences(ctx)
	if err != nil {
		return domain.TeamMember{}, err
	}

	member := domain.NewTeamMember(name, role, capacity)
	prefs.TeamMembers = append(prefs.TeamMembers, member)
	if err := s.SavePreferences(ctx, prefs); err != nil {
		return domain.TeamMember{}, err
	}
	return member, nil
}

func (s *teamService) UpdateMember(ctx context.Context, member domain.TeamMember) error {
	if member.Name == "" {
		return fmt.Errorf("member name is required")
	}
	if !domain.ValidRoles[member.Role] {
		return fmt.Errorf("invalid role %q", member.Role)
	}
	if member.Capacity < 0 {
		return fmt.Errorf("capacity must be non-negative, got %v", member.Capacity)
	}

	prefs, err := s.Preferences(ctx)
	if err != nil {
		return err
	}

	existing, ok := prefs.Member(member.ID)
	if !ok {
		return fmt.Errorf("team member %s: %w", member.ID, repository.ErrNotFound)
	}
	*existing = member
	return s.SavePreferences(ctx, prefs)
}

// RemoveMember deletes the roster entry only. The member's allocations
// stay in the plan as dangling references; aggregate queries skip them and
// export validation reports them.
func (s *teamService) RemoveMember(ctx context.Context, id uuid.UUID) error {
	prefs, err := s.Preferences(ctx)
	if err != nil {
		return err
	}

	for i := range prefs.TeamMembers {
		if prefs.TeamMembers[i].ID == id {
			prefs.TeamMembers = append(prefs.TeamMembers[:i], prefs.TeamMembers[i+1:]...)
			return s.SavePreferences(ctx, prefs)
		}
	}
	return fmt.Errorf("team member %s: %w", id, repository.ErrNotFound)
}

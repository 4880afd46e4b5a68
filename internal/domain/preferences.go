package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// SchemaVersion is the current document format version.
const SchemaVersion = "1.0"

// Defaults applied to fresh preferences and to imported plans (sprint
// configuration is deliberately not carried across imports).
const (
	DefaultSprintLengthWeeks = 2
	DefaultCapacity          = 12.0
	DefaultTeamName          = "My Team"
)

// DefaultSprintAnchor returns the default global sprint anchor date.
func DefaultSprintAnchor() Date { return NewDate(2024, time.January, 1) }

// Preferences holds team-level configuration. It is long-lived and shared
// across quarters, unlike PlanState which is quarter-scoped.
type Preferences struct {
	SchemaVersion string       `json:"schema_version"`
	TeamName      string       `json:"team_name"`
	TeamMembers   []TeamMember `json:"team_members"`
	// All sprints are positioned relative to this date, independent of
	// quarter boundaries.
	SprintAnchorDate  Date `json:"sprint_anchor_date"`
	SprintLengthWeeks int  `json:"sprint_length_weeks"`
	// Capacity in weeks pre-filled for new team members.
	DefaultCapacity float64 `json:"default_capacity"`
}

// NewPreferences creates preferences with default sprint configuration.
func NewPreferences(teamName string) Preferences {
	return Preferences{
		SchemaVersion:     SchemaVersion,
		TeamName:          teamName,
		SprintAnchorDate:  DefaultSprintAnchor(),
		SprintLengthWeeks: DefaultSprintLengthWeeks,
		DefaultCapacity:   DefaultCapacity,
	}
}

// DefaultPreferences returns preferences for an unconfigured team.
func DefaultPreferences() Preferences { return NewPreferences(DefaultTeamName) }

// Member returns the roster entry with the given ID.
func (p *Preferences) Member(id uuid.UUID) (*TeamMember, bool) {
	for i := range p.TeamMembers {
		if p.TeamMembers[i].ID == id {
			return &p.TeamMembers[i], true
		}
	}
	return nil, false
}

// MemberRole resolves a member ID to its role. The second return is false
// when the ID is not on the roster, which callers must treat as "no match"
// rather than an error: allocations may reference deleted members.
func (p *Preferences) MemberRole(id uuid.UUID) (Role, bool) {
	m, ok := p.Member(id)
	if !ok {
		return "", false
	}
	return m.Role, true
}

// Validate checks preference-level invariants.
func (p *Preferences) Validate() error {
	if strings.TrimSpace(p.TeamName) == "" {
		return fmt.Errorf("team name must not be empty")
	}
	if p.SprintLengthWeeks < 1 || p.SprintLengthWeeks > 4 {
		return fmt.Errorf("sprint length must be between 1 and 4 weeks, got %d", p.SprintLengthWeeks)
	}
	if p.DefaultCapacity <= 0 {
		return fmt.Errorf("default capacity must be positive, got %v", p.DefaultCapacity)
	}
	return nil
}

// TotalCapacityByRole sums roster capacity split by role, returning
// (engineering, science, total) weeks.
func (p *Preferences) TotalCapacityByRole() (eng, sci, total float64) {
	for _, m := range p.TeamMembers {
		switch m.Role {
		case RoleEngineering:
			eng += m.Capacity
		case RoleScience:
			sci += m.Capacity
		}
	}
	return eng, sci, eng + sci
}

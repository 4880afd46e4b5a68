package planio

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// ValidationCode identifies what an export failed on.
type ValidationCode string

const (
	CodeInvalidVersion       ValidationCode = "invalid_version"
	CodeEmptyTeamName        ValidationCode = "empty_team_name"
	CodeNoTeamMembers        ValidationCode = "no_team_members"
	CodeEmptyQuarterName     ValidationCode = "empty_quarter_name"
	CodeInvalidNumWeeks      ValidationCode = "invalid_num_weeks"
	CodeUnknownTeamMember    ValidationCode = "unknown_team_member"
	CodeUnknownProject       ValidationCode = "unknown_technical_project"
	CodeUnknownRoadmapLink   ValidationCode = "unknown_roadmap_project"
)

// ValidationError reports the first violation found in an export. For the
// referential checks, ID carries the dangling identifier.
type ValidationError struct {
	Code ValidationCode
	ID   uuid.UUID
}

func (e *ValidationError) Error() string {
	switch e.Code {
	case CodeInvalidVersion:
		return "export has no version"
	case CodeEmptyTeamName:
		return "export has an empty team name"
	case CodeNoTeamMembers:
		return "export has no team members"
	case CodeEmptyQuarterName:
		return "export has an empty quarter name"
	case CodeInvalidNumWeeks:
		return "export must span at least one week"
	case CodeUnknownTeamMember:
		return fmt.Sprintf("allocation references unknown team member %s", e.ID)
	case CodeUnknownProject:
		return fmt.Sprintf("assignment references unknown technical project %s", e.ID)
	case CodeUnknownRoadmapLink:
		return fmt.Sprintf("technical project references unknown roadmap project %s", e.ID)
	default:
		return string(e.Code)
	}
}

// Validate checks shape and referential integrity of an export before
// import. It returns the first violation and never repairs data: an
// export failing here must be rejected outright.
func (e Export) Validate() error {
	if e.Version == "" {
		return &ValidationError{Code: CodeInvalidVersion}
	}
	if strings.TrimSpace(e.TeamName) == "" {
		return &ValidationError{Code: CodeEmptyTeamName}
	}
	if len(e.TeamMembers) == 0 {
		return &ValidationError{Code: CodeNoTeamMembers}
	}
	if strings.TrimSpace(e.QuarterName) == "" {
		return &ValidationError{Code: CodeEmptyQuarterName}
	}
	if e.NumWeeks <= 0 {
		return &ValidationError{Code: CodeInvalidNumWeeks}
	}

	members := make(map[uuid.UUID]bool, len(e.TeamMembers))
	for _, m := range e.TeamMembers {
		members[m.ID] = true
	}
	for _, alloc := range e.Allocations {
		if !members[alloc.TeamMemberID] {
			return &ValidationError{Code: CodeUnknownTeamMember, ID: alloc.TeamMemberID}
		}
	}

	projects := make(map[uuid.UUID]bool, len(e.TechnicalProjects))
	for _, p := range e.TechnicalProjects {
		projects[p.ID] = true
	}
	for _, alloc := range e.Allocations {
		for _, asn := range alloc.Assignments {
			if !projects[asn.TechnicalProjectID] {
				return &ValidationError{Code: CodeUnknownProject, ID: asn.TechnicalProjectID}
			}
		}
	}

	roadmaps := make(map[uuid.UUID]bool, len(e.RoadmapProjects))
	for _, p := range e.RoadmapProjects {
		roadmaps[p.ID] = true
	}
	for _, p := range e.TechnicalProjects {
		if p.RoadmapProjectID != nil && !roadmaps[*p.RoadmapProjectID] {
			return &ValidationError{Code: CodeUnknownRoadmapLink, ID: *p.RoadmapProjectID}
		}
	}

	return nil
}

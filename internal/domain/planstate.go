package domain

import (
	"time"

	"github.com/google/uuid"
)

// PlanMetadata carries the document version and audit timestamps.
type PlanMetadata struct {
	Version    string    `json:"version"`
	CreatedAt  time.Time `json:"created_at"`
	ModifiedAt time.Time `json:"modified_at"`
}

// NewPlanMetadata returns metadata for a freshly created plan.
func NewPlanMetadata() PlanMetadata {
	now := time.Now().UTC()
	return PlanMetadata{
		Version:    SchemaVersion,
		CreatedAt:  now,
		ModifiedAt: now,
	}
}

// MarkModified updates the modified timestamp.
func (m *PlanMetadata) MarkModified() {
	m.ModifiedAt = time.Now().UTC()
}

// PlanState is the planning data for a single quarter. It is replaced
// wholesale on import, sample load, and clear.
type PlanState struct {
	// Quarter name, e.g. "Q1 2025".
	QuarterName string `json:"quarter_name"`
	// First Monday of the quarter.
	QuarterStartDate Date `json:"quarter_start_date"`
	// Number of weeks in the quarter, typically 13.
	NumWeeks          int                `json:"num_weeks"`
	RoadmapProjects   []RoadmapProject   `json:"roadmap_projects"`
	TechnicalProjects []TechnicalProject `json:"technical_projects"`
	Allocations       []Allocation       `json:"allocations"`
	Metadata          PlanMetadata       `json:"metadata"`
}

// NewPlanState creates an empty plan for the given quarter.
func NewPlanState(quarterName string, quarterStart Date, numWeeks int) PlanState {
	return PlanState{
		QuarterName:      quarterName,
		QuarterStartDate: quarterStart,
		NumWeeks:         numWeeks,
		Metadata:         NewPlanMetadata(),
	}
}

// RoadmapProject returns the roadmap project with the given ID.
func (s *PlanState) RoadmapProject(id uuid.UUID) (*RoadmapProject, bool) {
	for i := range s.RoadmapProjects {
		if s.RoadmapProjects[i].ID == id {
			return &s.RoadmapProjects[i], true
		}
	}
	return nil, false
}

// TechnicalProject returns the technical project with the given ID.
func (s *PlanState) TechnicalProject(id uuid.UUID) (*TechnicalProject, bool) {
	for i := range s.TechnicalProjects {
		if s.TechnicalProjects[i].ID == id {
			return &s.TechnicalProjects[i], true
		}
	}
	return nil, false
}

// ProjectColor resolves a technical project's display color through its
// roadmap link, falling back to blue when unlinked or dangling.
func (s *PlanState) ProjectColor(p *TechnicalProject) ProjectColor {
	if p.RoadmapProjectID != nil {
		if rp, ok := s.RoadmapProject(*p.RoadmapProjectID); ok {
			return rp.Color
		}
	}
	return ColorBlue
}

// MarkModified updates the plan's modified timestamp.
func (s *PlanState) MarkModified() { s.Metadata.MarkModified() }

// RemoveRoadmapProject deletes a roadmap project and unlinks (does not
// delete) its technical projects.
func (s *PlanState) RemoveRoadmapProject(id uuid.UUID) bool {
	idx := -1
	for i := range s.RoadmapProjects {
		if s.RoadmapProjects[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return false
	}
	s.RoadmapProjects = append(s.RoadmapProjects[:idx], s.RoadmapProjects[idx+1:]...)
	for i := range s.TechnicalProjects {
		if s.TechnicalProjects[i].RoadmapProjectID != nil && *s.TechnicalProjects[i].RoadmapProjectID == id {
			s.TechnicalProjects[i].RoadmapProjectID = nil
		}
	}
	s.MarkModified()
	return true
}

// RemoveTechnicalProject deletes a technical project. Allocations that
// reference it are left in place; aggregate queries treat the dangling ID
// as no match.
func (s *PlanState) RemoveTechnicalProject(id uuid.UUID) bool {
	for i := range s.TechnicalProjects {
		if s.TechnicalProjects[i].ID == id {
			s.TechnicalProjects = append(s.TechnicalProjects[:i], s.TechnicalProjects[i+1:]...)
			s.MarkModified()
			return true
		}
	}
	return false
}

// Package planio implements the portable plan snapshot: the single JSON
// envelope merging team preferences with quarter planning data, its
// validation, and the file/share-string codecs around it.
package planio

import (
	"github.com/alexanderramin/quarterplan/internal/domain"
)

// Export is the self-contained snapshot crossing the trust boundary
// (file save, clipboard, share URL). It flattens the Preferences team
// snapshot and every PlanState field into one document so an importing
// user needs no local context to read it.
type Export struct {
	Version  string              `json:"version"`
	Metadata domain.PlanMetadata `json:"metadata"`

	// Team snapshot at export time.
	TeamName    string              `json:"team_name"`
	TeamMembers []domain.TeamMember `json:"team_members"`

	// Planning data.
	QuarterName       string                    `json:"quarter_name"`
	QuarterStartDate  domain.Date               `json:"quarter_start_date"`
	NumWeeks          int                       `json:"num_weeks"`
	RoadmapProjects   []domain.RoadmapProject   `json:"roadmap_projects"`
	TechnicalProjects []domain.TechnicalProject `json:"technical_projects"`
	Allocations       []domain.Allocation       `json:"allocations"`
}

// Merge flattens preferences and plan state into one export snapshot.
func Merge(prefs domain.Preferences, state domain.PlanState) Export {
	return Export{
		Version:  state.Metadata.Version,
		Metadata: state.Metadata,

		TeamName:    prefs.TeamName,
		TeamMembers: prefs.TeamMembers,

		QuarterName:       state.QuarterName,
		QuarterStartDate:  state.QuarterStartDate,
		NumWeeks:          state.NumWeeks,
		RoadmapProjects:   state.RoadmapProjects,
		TechnicalProjects: state.TechnicalProjects,
		Allocations:       state.Allocations,
	}
}

// Split separates an export back into the two document roots. Sprint
// configuration is intentionally not round-tripped: the importer gets the
// fixed defaults so a team never silently inherits another team's sprint
// cadence.
func (e Export) Split() (domain.Preferences, domain.PlanState) {
	prefs := domain.Preferences{
		SchemaVersion:     domain.SchemaVersion,
		TeamName:          e.TeamName,
		TeamMembers:       e.TeamMembers,
		SprintAnchorDate:  domain.DefaultSprintAnchor(),
		SprintLengthWeeks: domain.DefaultSprintLengthWeeks,
		DefaultCapacity:   domain.DefaultCapacity,
	}

	state := domain.PlanState{
		QuarterName:       e.QuarterName,
		QuarterStartDate:  e.QuarterStartDate,
		NumWeeks:          e.NumWeeks,
		RoadmapProjects:   e.RoadmapProjects,
		TechnicalProjects: e.TechnicalProjects,
		Allocations:       e.Allocations,
		Metadata:          e.Metadata,
	}

	return prefs, state
}

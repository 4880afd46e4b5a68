package ledger

import (
	"github.com/google/uuid"

	"github.com/alexanderramin/quarterplan/internal/domain"
)

// Selection is the brush state during interactive paint mode: either
// nothing (painting clears cells) or one technical project (painting
// assigns it at 100%).
type Selection struct {
	projectID uuid.UUID
	active    bool
}

// SelectNone returns the clearing brush.
func SelectNone() Selection { return Selection{} }

// SelectTechnical returns a brush that assigns the given project.
func SelectTechnical(projectID uuid.UUID) Selection {
	return Selection{projectID: projectID, active: true}
}

// IsNone reports whether the brush clears rather than assigns.
func (s Selection) IsNone() bool { return !s.active }

// ProjectID returns the selected project. Only meaningful when IsNone is
// false.
func (s Selection) ProjectID() uuid.UUID { return s.projectID }

// Paint applies the brush to one cell: a project selection replaces the
// cell with a single 100% assignment, an empty selection clears it. Each
// project added to or removed from the cell gets its dates repropagated,
// so replaced projects shrink back and newly painted ones expand.
//
// Returns false without mutating when the selected project does not exist.
// Drag-to-paint issues one Paint call per cell crossed; each call is
// independently consistent.
func (l *Ledger) Paint(sel Selection, memberID uuid.UUID, weekStart domain.Date, sprintAnchor domain.Date, sprintLengthWeeks int) bool {
	var assignments []domain.Assignment
	if !sel.IsNone() {
		if _, ok := l.state.TechnicalProject(sel.projectID); !ok {
			return false
		}
		asn, err := domain.NewAssignment(sel.projectID, 100)
		if err != nil {
			return false
		}
		assignments = []domain.Assignment{asn}
	}

	touched := l.ReplaceCell(memberID, weekStart, assignments)
	for _, projectID := range touched {
		l.UpdateProjectDates(projectID, sprintAnchor, sprintLengthWeeks)
	}
	return true
}

// Split replaces a cell with a two-project split week. The two projects
// must be distinct and exist in the plan; the percentages are expected to
// sum to 100 but, like ReplaceCell, this is advisory. Date propagation
// runs for every project touched.
func (l *Ledger) Split(memberID uuid.UUID, weekStart domain.Date, first, second domain.Assignment, sprintAnchor domain.Date, sprintLengthWeeks int) bool {
	if first.TechnicalProjectID == second.TechnicalProjectID {
		return false
	}
	if _, ok := l.state.TechnicalProject(first.TechnicalProjectID); !ok {
		return false
	}
	if _, ok := l.state.TechnicalProject(second.TechnicalProjectID); !ok {
		return false
	}

	touched := l.ReplaceCell(memberID, weekStart, []domain.Assignment{first, second})
	for _, projectID := range touched {
		l.UpdateProjectDates(projectID, sprintAnchor, sprintLengthWeeks)
	}
	return true
}

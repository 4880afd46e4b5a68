// Package calendar holds the pure quarter/sprint/week math. Nothing here
// carries state; every function is deterministic in its arguments.
package calendar

import (
	"fmt"
	"time"

	"github.com/alexanderramin/quarterplan/internal/domain"
)

// QuarterWeek describes one week column of the planning grid.
type QuarterWeek struct {
	// Monday of the week.
	StartDate domain.Date
	// 1-based position within the quarter.
	WeekNumber int
	// 1-based sprint index, derived from the sprint length.
	SprintNumber int
	// Total weeks in the quarter.
	TotalWeeks int
	// Sprint length used to derive SprintNumber.
	SprintLengthWeeks int
}

// FormatWeekNumber renders "Week 1", "Week 2", ...
func (w QuarterWeek) FormatWeekNumber() string {
	return fmt.Sprintf("Week %d", w.WeekNumber)
}

// FormatSprintNumber renders "Sprint 1", "Sprint 2", ...
func (w QuarterWeek) FormatSprintNumber() string {
	return fmt.Sprintf("Sprint %d", w.SprintNumber)
}

// FormatDate renders the start date as e.g. "Jan 6", appending "(W)" for a
// Wednesday start when includeWeekday is set.
func (w QuarterWeek) FormatDate(includeWeekday bool) string {
	formatted := fmt.Sprintf("%s %d", w.StartDate.Format("Jan"), w.StartDate.Day())
	if includeWeekday && w.StartDate.Weekday() == time.Wednesday {
		return formatted + " (W)"
	}
	return formatted
}

// IsSprintStart reports whether this week opens a sprint, for grid
// separator rendering.
func (w QuarterWeek) IsSprintStart() bool {
	return (w.WeekNumber-1)%w.SprintLengthWeeks == 0
}

// GenerateQuarterWeeks lists the weeks of a quarter in order. Week numbers
// increase by one per 7-day step from quarterStart; sprint numbers derive
// from sprintLengthWeeks.
func GenerateQuarterWeeks(quarterStart domain.Date, numWeeks, sprintLengthWeeks int) []QuarterWeek {
	weeks := make([]QuarterWeek, 0, numWeeks)
	for i := 0; i < numWeeks; i++ {
		weeks = append(weeks, QuarterWeek{
			StartDate:         quarterStart.AddWeeks(i),
			WeekNumber:        i + 1,
			SprintNumber:      i/sprintLengthWeeks + 1,
			TotalWeeks:        numWeeks,
			SprintLengthWeeks: sprintLengthWeeks,
		})
	}
	return weeks
}

// SprintBoundaries returns the start (Monday) and end (last day) of the
// sprint containing weekStart. Sprints are positioned relative to the
// global anchor date, not the quarter start, so two teams sharing an
// anchor stay in lockstep across quarter boundaries.
func SprintBoundaries(weekStart, anchor domain.Date, sprintLengthWeeks int) (domain.Date, domain.Date) {
	weekIndex := floorDiv(anchor.DaysUntil(weekStart), 7)
	sprintIndex := floorDiv(weekIndex, sprintLengthWeeks)

	start := anchor.AddWeeks(sprintIndex * sprintLengthWeeks)
	end := start.AddWeeks(sprintLengthWeeks).AddDays(-1)
	return start, end
}

// floorDiv rounds toward negative infinity, so weeks before the anchor
// still resolve to the sprint that contains them.
func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

// QuarterStartDate returns the first calendar day of the given quarter:
// Jan 1, Apr 1, Jul 1, or Oct 1.
func QuarterStartDate(year, quarter int) (domain.Date, error) {
	var month time.Month
	switch quarter {
	case 1:
		month = time.January
	case 2:
		month = time.April
	case 3:
		month = time.July
	case 4:
		month = time.October
	default:
		return domain.Date{}, fmt.Errorf("quarter must be 1-4, got %d", quarter)
	}
	return domain.NewDate(year, month, 1), nil
}

// NextQuarterInfo returns the first quarter whose start date is on or
// after today, wrapping to Q1 of the next year when today is past the Q4
// start. Used to seed a fresh plan.
func NextQuarterInfo(today domain.Date) (year, quarter int, start domain.Date, name string) {
	y := today.Year()
	for q := 1; q <= 4; q++ {
		s, _ := QuarterStartDate(y, q)
		if !s.Before(today) {
			return y, q, s, fmt.Sprintf("Q%d %d", q, y)
		}
	}
	s, _ := QuarterStartDate(y+1, 1)
	return y + 1, 1, s, fmt.Sprintf("Q1 %d", y+1)
}

// FirstMondayOnOrAfter returns the given date if it is a Monday, otherwise
// the following Monday.
func FirstMondayOnOrAfter(date domain.Date) domain.Date {
	offset := (int(time.Monday) - int(date.Weekday()) + 7) % 7
	return date.AddDays(offset)
}

// WeekStart returns the Monday of the week containing the given date.
func WeekStart(date domain.Date) domain.Date {
	offset := (int(date.Weekday()) - int(time.Monday) + 7) % 7
	return date.AddDays(-offset)
}

// WeeksBetween returns the (possibly fractional) number of weeks from
// start to end.
func WeeksBetween(start, end domain.Date) float64 {
	return float64(start.DaysUntil(end)) / 7
}

// DateInWeek reports whether date falls within the week beginning at
// weekStart.
func DateInWeek(date, weekStart domain.Date) bool {
	weekEnd := weekStart.AddDays(6)
	return !date.Before(weekStart) && !date.After(weekEnd)
}

package model

import (
	"cmp"
	"slices"
)

// dayRank fixes the five-day week ordering used by the projector. Days
// outside the week sort last.
var dayRank = map[string]int{
	"Sunday":    0,
	"Monday":    1,
	"Tuesday":   2,
	"Wednesday": 3,
	"Thursday":  4,
}

// ScheduleEntry is one scheduled class in the flat output shape handed
// to reporting collaborators.
type ScheduleEntry struct {
	SectionID    string
	CourseCode   string
	CourseName   string
	ActivityType string
	Day          string
	StartTime    string
	EndTime      string
	Room         string
	InstructorID string
	Instructor   string
	StudentCount int
}

// Project flattens an assignment, finished or partial, into ordered
// schedule entries: one per assigned variable, sorted by day rank, then
// start time, then section id. Pure and side-effect free.
func Project(variables []Variable, assignment Assignment) []ScheduleEntry {
	entries := make([]ScheduleEntry, 0, len(assignment))

	for _, variable := range variables {
		value, assigned := assignment[variable.Key()]
		if !assigned {
			continue
		}

		entries = append(entries, ScheduleEntry{
			SectionID:    variable.SectionID,
			CourseCode:   variable.CourseID,
			CourseName:   variable.CourseName,
			ActivityType: variable.CourseType,
			Day:          value.Day,
			StartTime:    value.StartTime,
			EndTime:      value.EndTime,
			Room:         value.RoomID,
			InstructorID: value.InstructorID,
			Instructor:   value.InstructorName,
			StudentCount: variable.StudentCount,
		})
	}

	slices.SortFunc(entries, func(a, b ScheduleEntry) int {
		if comparison := cmp.Compare(rankOf(a.Day), rankOf(b.Day)); comparison != 0 {
			return comparison
		}
		if comparison := cmp.Compare(a.StartTime, b.StartTime); comparison != 0 {
			return comparison
		}
		return cmp.Compare(a.SectionID, b.SectionID)
	})

	return entries
}

func rankOf(day string) int {
	rank, ok := dayRank[day]
	if !ok {
		return len(dayRank)
	}
	return rank
}

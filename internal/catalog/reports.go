package catalog

import (
	"slices"
	"strings"

	"github.com/samber/lo"
)

// Diagnostic reports over a built catalog. They never influence the
// search; they exist so operators can see why an instance is tight
// before burning iterations on it.

type SectionRoomCompatibility struct {
	SectionID    string
	StudentCount int
	RoomIDs      []string
}

// SectionRoomCompatibilityReport lists, per section, the rooms whose
// capacity can seat the whole section.
func SectionRoomCompatibilityReport(catalog *Catalog) []SectionRoomCompatibility {
	return lo.Map(catalog.Sections, func(section Section, _ int) SectionRoomCompatibility {
		suitable := lo.Filter(catalog.Rooms, func(room Room, _ int) bool {
			return room.Capacity >= section.StudentCount
		})

		return SectionRoomCompatibility{
			SectionID:    section.ID,
			StudentCount: section.StudentCount,
			RoomIDs:      lo.Map(suitable, func(room Room, _ int) string { return room.ID }),
		}
	})
}

type RoomTypeSummary struct {
	LectureCourses int
	LabCourses     int
	LectureRooms   int
	LabRooms       int
}

// SummarizeRoomTypes counts courses and rooms per type tag to surface
// lecture/lab supply mismatches.
func SummarizeRoomTypes(catalog *Catalog) RoomTypeSummary {
	return RoomTypeSummary{
		LectureCourses: lo.CountBy(catalog.Courses, func(course Course) bool { return containsFold(course.Type, "lecture") }),
		LabCourses:     lo.CountBy(catalog.Courses, func(course Course) bool { return containsFold(course.Type, "lab") }),
		LectureRooms:   lo.CountBy(catalog.Rooms, func(room Room) bool { return containsFold(room.Type, "lecture") }),
		LabRooms:       lo.CountBy(catalog.Rooms, func(room Room) bool { return containsFold(room.Type, "lab") }),
	}
}

// UncoveredCourses returns the ids of courses no instructor is
// qualified to teach. Their variables will be scheduled with the
// placeholder instructor.
func UncoveredCourses(catalog *Catalog) []string {
	return lo.FilterMap(catalog.Courses, func(course Course, _ int) (string, bool) {
		covered := lo.SomeBy(catalog.Instructors, func(instructor Instructor) bool {
			return slices.Contains(instructor.QualifiedCourses, course.ID)
		})
		return course.ID, !covered
	})
}

func containsFold(value, substr string) bool {
	return strings.Contains(strings.ToLower(value), substr)
}

package catalog

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/samber/lo"
)

type Course struct {
	ID      string
	Name    string
	Type    string
	Credits int
}

type Instructor struct {
	ID               string
	Name             string
	QualifiedCourses []string
	// PreferredSlots is carried through for reporting but never
	// consulted when scheduling.
	PreferredSlots string
}

type Room struct {
	ID       string
	Type     string
	Capacity int
}

type TimeSlot struct {
	ID        string
	Day       string
	StartTime string
	EndTime   string
}

type Section struct {
	ID           string
	StudentCount int
	Courses      []string
}

// Catalog holds the normalized lookup tables built from raw records.
// Slices preserve record order; the whole enumeration order of the
// scheduling pipeline derives from it.
type Catalog struct {
	Courses     []Course
	Instructors []Instructor
	Rooms       []Room
	TimeSlots   []TimeSlot
	Sections    []Section

	courseIndex map[string]int
}

// Course returns the course with the given id, if present.
func (catalog *Catalog) Course(id string) (Course, bool) {
	index, ok := catalog.courseIndex[id]
	if !ok {
		return Course{}, false
	}
	return catalog.Courses[index], true
}

// ConstructionError reports a raw record that references a missing
// entity or carries an unparseable required field. It aborts catalog
// construction: no partial catalog is ever returned.
type ConstructionError struct {
	Entity string
	ID     string
	Reason string
}

func (err *ConstructionError) Error() string {
	return fmt.Sprintf("cannot build catalog: %v \"%v\": %v", err.Entity, err.ID, err.Reason)
}

// NewCatalog normalizes the five raw record collections into typed,
// id-indexed lookup tables.
func NewCatalog(records Records) (*Catalog, error) {
	catalog := &Catalog{
		Courses:     make([]Course, 0, len(records.Courses)),
		Instructors: make([]Instructor, 0, len(records.Instructors)),
		Rooms:       make([]Room, 0, len(records.Rooms)),
		TimeSlots:   make([]TimeSlot, 0, len(records.TimeSlots)),
		Sections:    make([]Section, 0, len(records.Sections)),
		courseIndex: make(map[string]int, len(records.Courses)),
	}

	for _, record := range records.Courses {
		credits, err := strconv.Atoi(strings.TrimSpace(record.Credits))
		if err != nil {
			return nil, &ConstructionError{Entity: "course", ID: record.CourseID, Reason: fmt.Sprintf("unparseable credits %q", record.Credits)}
		}

		catalog.courseIndex[record.CourseID] = len(catalog.Courses)
		catalog.Courses = append(catalog.Courses, Course{
			ID:      record.CourseID,
			Name:    record.CourseName,
			Type:    record.Type,
			Credits: credits,
		})
	}

	for _, record := range records.Instructors {
		qualified := splitIDList(record.QualifiedCourses)
		for _, courseID := range qualified {
			if _, ok := catalog.courseIndex[courseID]; !ok {
				return nil, &ConstructionError{Entity: "instructor", ID: record.InstructorID, Reason: fmt.Sprintf("unknown course %q", courseID)}
			}
		}

		catalog.Instructors = append(catalog.Instructors, Instructor{
			ID:               record.InstructorID,
			Name:             record.Name,
			QualifiedCourses: qualified,
			PreferredSlots:   record.PreferredSlots,
		})
	}

	for _, record := range records.Rooms {
		capacity, err := strconv.Atoi(strings.TrimSpace(record.Capacity))
		if err != nil {
			return nil, &ConstructionError{Entity: "room", ID: record.RoomID, Reason: fmt.Sprintf("unparseable capacity %q", record.Capacity)}
		}

		catalog.Rooms = append(catalog.Rooms, Room{
			ID:       record.RoomID,
			Type:     record.Type,
			Capacity: capacity,
		})
	}

	for _, record := range records.TimeSlots {
		catalog.TimeSlots = append(catalog.TimeSlots, TimeSlot{
			ID:        record.TimeSlotID,
			Day:       record.Day,
			StartTime: record.StartTime,
			EndTime:   record.EndTime,
		})
	}

	for _, record := range records.Sections {
		studentCount, err := strconv.Atoi(strings.TrimSpace(record.StudentCount))
		if err != nil {
			return nil, &ConstructionError{Entity: "section", ID: record.SectionID, Reason: fmt.Sprintf("unparseable student count %q", record.StudentCount)}
		}

		courses := splitIDList(record.Courses)
		for _, courseID := range courses {
			if _, ok := catalog.courseIndex[courseID]; !ok {
				return nil, &ConstructionError{Entity: "section", ID: record.SectionID, Reason: fmt.Sprintf("unknown course %q", courseID)}
			}
		}

		catalog.Sections = append(catalog.Sections, Section{
			ID:           record.SectionID,
			StudentCount: studentCount,
			Courses:      courses,
		})
	}

	return catalog, nil
}

// splitIDList splits a comma-delimited id list, trimming whitespace and
// dropping empty items.
func splitIDList(list string) []string {
	return lo.FilterMap(strings.Split(list, ","), func(item string, _ int) (string, bool) {
		trimmed := strings.TrimSpace(item)
		return trimmed, trimmed != ""
	})
}

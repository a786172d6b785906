package model

import (
	"log"
	"slices"
	"strings"

	"github.com/samber/lo"

	"github.com/campusops/coursetable/internal/catalog"
)

type domainConstructorImplementation struct {
	fallbackRoomLimit int
}

func (constructor *domainConstructorImplementation) Construct(cat *catalog.Catalog) ([]Variable, map[string][]DomainValue, error) {
	variables := createVariables(cat)

	domains := make(map[string][]DomainValue, len(variables))
	for _, variable := range variables {
		rooms := constructor.suitableRooms(cat, variable)
		instructors := qualifiedInstructors(cat, variable.CourseID)

		domain := make([]DomainValue, 0, len(rooms)*len(cat.TimeSlots)*len(instructors))
		for _, room := range rooms {
			for _, slot := range cat.TimeSlots {
				for _, instructor := range instructors {
					domain = append(domain, DomainValue{
						RoomID:         room.ID,
						TimeSlotID:     slot.ID,
						Day:            slot.Day,
						StartTime:      slot.StartTime,
						EndTime:        slot.EndTime,
						InstructorID:   instructor.ID,
						InstructorName: instructor.Name,
					})
				}
			}
		}

		if len(domain) == 0 {
			return nil, nil, &EmptyDomainError{Variable: variable.Key()}
		}
		domains[variable.Key()] = domain
	}

	return variables, domains, nil
}

// createVariables builds one variable per (section, required-course)
// pair, in section order then required-course order.
func createVariables(cat *catalog.Catalog) []Variable {
	variables := make([]Variable, 0)
	for _, section := range cat.Sections {
		for _, courseID := range section.Courses {
			course, ok := cat.Course(courseID)
			if !ok {
				// NewCatalog rejects dangling course references
				log.Panicf("catalog invariant violated: section %q references unknown course %q", section.ID, courseID)
			}

			variables = append(variables, Variable{
				SectionID:    section.ID,
				CourseID:     courseID,
				StudentCount: section.StudentCount,
				CourseType:   course.Type,
				CourseName:   course.Name,
			})
		}
	}
	return variables
}

// suitableRooms applies the three-step relaxation ladder: type and
// capacity, type only, then a bounded prefix of all rooms in catalog
// order as a last resort.
func (constructor *domainConstructorImplementation) suitableRooms(cat *catalog.Catalog, variable Variable) []catalog.Room {
	rooms := lo.Filter(cat.Rooms, func(room catalog.Room, _ int) bool {
		return roomMatchesCourse(room.Type, variable.CourseType) && room.Capacity >= variable.StudentCount
	})

	if len(rooms) == 0 {
		rooms = lo.Filter(cat.Rooms, func(room catalog.Room, _ int) bool {
			return roomMatchesCourse(room.Type, variable.CourseType)
		})
	}

	if len(rooms) == 0 {
		rooms = cat.Rooms[:min(constructor.fallbackRoomLimit, len(cat.Rooms))]
	}

	return rooms
}

// roomMatchesCourse checks room/course type compatibility: lecture
// rooms host lecture courses, lab rooms host lab courses, and combined
// lecture-and-lab courses accept either room type.
func roomMatchesCourse(roomType, courseType string) bool {
	room := strings.ToLower(roomType)
	course := strings.ToLower(courseType)

	if strings.Contains(course, "lecture") && strings.Contains(course, "lab") {
		return true
	}
	if strings.Contains(course, "lecture") && strings.Contains(room, "lecture") {
		return true
	}
	if strings.Contains(course, "lab") && strings.Contains(room, "lab") {
		return true
	}
	return false
}

// qualifiedInstructors returns the instructors qualified for the
// course, or the single placeholder instructor when there are none.
func qualifiedInstructors(cat *catalog.Catalog, courseID string) []catalog.Instructor {
	qualified := lo.Filter(cat.Instructors, func(instructor catalog.Instructor, _ int) bool {
		return slices.Contains(instructor.QualifiedCourses, courseID)
	})

	if len(qualified) == 0 {
		qualified = []catalog.Instructor{{ID: PlaceholderInstructor, Name: "Unassigned"}}
	}
	return qualified
}

package model

// VerifyAssignment re-checks an assignment against the clash rules,
// independent of the search path that produced it:
//   - no two assigned variables share (room, timeslot),
//   - no two assigned variables share a non-placeholder (instructor, timeslot),
//   - no two assigned variables of the same section share a timeslot.
func VerifyAssignment(variables []Variable, assignment Assignment) bool {
	type occupancy struct {
		holder string
		slot   string
	}

	roomTaken := make(map[occupancy]bool, len(assignment))
	instructorTaken := make(map[occupancy]bool, len(assignment))
	sectionTaken := make(map[occupancy]bool, len(assignment))

	for _, variable := range variables {
		value, assigned := assignment[variable.Key()]
		if !assigned {
			continue
		}

		room := occupancy{holder: value.RoomID, slot: value.TimeSlotID}
		if roomTaken[room] {
			return false
		}
		roomTaken[room] = true

		if value.InstructorID != PlaceholderInstructor {
			instructor := occupancy{holder: value.InstructorID, slot: value.TimeSlotID}
			if instructorTaken[instructor] {
				return false
			}
			instructorTaken[instructor] = true
		}

		section := occupancy{holder: variable.SectionID, slot: value.TimeSlotID}
		if sectionTaken[section] {
			return false
		}
		sectionTaken[section] = true
	}

	return true
}

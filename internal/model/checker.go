package model

// consistencyChecker tests one candidate against a partial assignment
// for clashes. Cost is linear in the size of the assignment.
type consistencyChecker struct {
	variables map[string]Variable
}

func newConsistencyChecker(variables []Variable) *consistencyChecker {
	byKey := make(map[string]Variable, len(variables))
	for _, variable := range variables {
		byKey[variable.Key()] = variable
	}
	return &consistencyChecker{variables: byKey}
}

// Consistent reports whether candidate can be assigned to variable
// without clashing with any already-assigned variable:
//   - no two classes in the same room at the same timeslot,
//   - no non-placeholder instructor in two places at the same timeslot,
//   - no section attending two classes at the same timeslot.
func (checker *consistencyChecker) Consistent(variable Variable, candidate DomainValue, assignment Assignment) bool {
	for assignedKey, assigned := range assignment {
		if candidate.TimeSlotID != assigned.TimeSlotID {
			continue
		}

		if candidate.RoomID == assigned.RoomID {
			return false
		}
		if candidate.InstructorID == assigned.InstructorID && candidate.InstructorID != PlaceholderInstructor {
			return false
		}
		if variable.SectionID == checker.variables[assignedKey].SectionID {
			return false
		}
	}
	return true
}

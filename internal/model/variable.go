package model

// PlaceholderInstructor is the synthetic instructor id assigned when no
// qualified instructor exists for a course. It is exempt from the
// instructor clash constraint, so any number of placeholder-taught
// classes may share a timeslot.
const PlaceholderInstructor = "UNASSIGNED"

// Variable is one (section, course) pair requiring exactly one schedule
// assignment. Its attributes are fixed at construction time.
type Variable struct {
	SectionID    string
	CourseID     string
	StudentCount int
	CourseType   string
	CourseName   string
}

// Key uniquely identifies a variable inside an assignment.
func (variable Variable) Key() string {
	return variable.SectionID + "_" + variable.CourseID
}

// DomainValue is one candidate (room, timeslot, instructor) triple for
// a variable. Day and times are denormalized from the timeslot so the
// projector needs no catalog access.
type DomainValue struct {
	RoomID         string
	TimeSlotID     string
	Day            string
	StartTime      string
	EndTime        string
	InstructorID   string
	InstructorName string
}

// Assignment maps variable keys to their chosen candidates. It is
// partial during search and exclusively owned by the search context
// that created it.
type Assignment map[string]DomainValue

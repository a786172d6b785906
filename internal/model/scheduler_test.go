package model

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/campusops/coursetable/internal/catalog"
)

// Two variables competing for a single (room, timeslot) pair.
func clashingRecords() catalog.Records {
	return catalog.Records{
		Courses: []catalog.CourseRecord{
			{CourseID: "C1", CourseName: "Course One", Type: "Lecture", Credits: "3"},
			{CourseID: "C2", CourseName: "Course Two", Type: "Lecture", Credits: "3"},
		},
		Instructors: []catalog.InstructorRecord{
			{InstructorID: "I1", Name: "Dr. Ada", QualifiedCourses: "C1"},
			{InstructorID: "I2", Name: "Dr. Grace", QualifiedCourses: "C2"},
		},
		Rooms: []catalog.RoomRecord{
			{RoomID: "R1", Type: "Lecture Hall", Capacity: "60"},
		},
		TimeSlots: []catalog.TimeSlotRecord{
			{TimeSlotID: "T1", Day: "Sunday", StartTime: "09:00", EndTime: "10:00"},
		},
		Sections: []catalog.SectionRecord{
			{SectionID: "S1", StudentCount: "30", Courses: "C1"},
			{SectionID: "S2", StudentCount: "30", Courses: "C2"},
		},
	}
}

func buildInstance(t *testing.T, records catalog.Records) ([]Variable, map[string][]DomainValue) {
	t.Helper()
	variables, domains, err := NewDomainConstructor(0).Construct(buildCatalog(t, records))
	if err != nil {
		t.Fatalf("cannot construct domains: %v", err)
	}
	return variables, domains
}

func TestSolve(t *testing.T) {
	t.Run("unavoidable room clash exhausts the search", func(t *testing.T) {
		//**Arrange
		variables, domains := buildInstance(t, clashingRecords())
		scheduler := NewScheduler(DefaultConfig)

		// Act
		result := scheduler.Solve(variables, domains)

		// Assert
		assert.Equal(t, Exhausted, result.Status)
		assert.False(t, result.Complete())
		assert.LessOrEqual(t, result.Assigned, 1)
	})

	t.Run("two rooms resolve the clash on a shared timeslot", func(t *testing.T) {
		//**Arrange
		records := clashingRecords()
		records.Rooms = append(records.Rooms, catalog.RoomRecord{RoomID: "R2", Type: "Lecture Hall", Capacity: "60"})
		variables, domains := buildInstance(t, records)
		scheduler := NewScheduler(DefaultConfig)

		// Act
		result := scheduler.Solve(variables, domains)

		// Assert
		assert.Equal(t, Solved, result.Status)
		assert.True(t, result.Complete())

		first, second := result.Assignment["S1_C1"], result.Assignment["S2_C2"]
		assert.Equal(t, first.TimeSlotID, second.TimeSlotID)
		assert.NotEqual(t, first.RoomID, second.RoomID)
		assert.True(t, VerifyAssignment(variables, result.Assignment))
	})

	t.Run("placeholder-taught classes may share a timeslot", func(t *testing.T) {
		//**Arrange
		// C1 has no qualified instructor anywhere
		records := catalog.Records{
			Courses: []catalog.CourseRecord{{CourseID: "C1", CourseName: "Course One", Type: "Lecture", Credits: "3"}},
			Rooms: []catalog.RoomRecord{
				{RoomID: "R1", Type: "Lecture Hall", Capacity: "60"},
				{RoomID: "R2", Type: "Lecture Hall", Capacity: "60"},
			},
			TimeSlots: []catalog.TimeSlotRecord{{TimeSlotID: "T1", Day: "Sunday", StartTime: "09:00", EndTime: "10:00"}},
			Sections: []catalog.SectionRecord{
				{SectionID: "S1", StudentCount: "30", Courses: "C1"},
				{SectionID: "S2", StudentCount: "30", Courses: "C1"},
			},
		}
		variables, domains := buildInstance(t, records)
		scheduler := NewScheduler(DefaultConfig)

		// Act
		result := scheduler.Solve(variables, domains)

		// Assert
		assert.Equal(t, Solved, result.Status)
		assert.Equal(t, PlaceholderInstructor, result.Assignment["S1_C1"].InstructorID)
		assert.Equal(t, PlaceholderInstructor, result.Assignment["S2_C1"].InstructorID)
		assert.Equal(t, result.Assignment["S1_C1"].TimeSlotID, result.Assignment["S2_C1"].TimeSlotID)
		assert.True(t, VerifyAssignment(variables, result.Assignment))
	})

	t.Run("budget of one stops after a single step", func(t *testing.T) {
		//**Arrange
		records := clashingRecords()
		records.Rooms = append(records.Rooms, catalog.RoomRecord{RoomID: "R2", Type: "Lecture Hall", Capacity: "60"})
		variables, domains := buildInstance(t, records)
		scheduler := NewScheduler(Config{MaxIterations: 1})

		// Act
		result := scheduler.Solve(variables, domains)

		// Assert
		assert.Equal(t, BudgetExceeded, result.Status)
		assert.Equal(t, uint64(1), result.Iterations)
		assert.LessOrEqual(t, result.Assigned, 1)
	})
}

func TestSolveLargerInstance(t *testing.T) {
	//**Arrange
	records := catalog.Records{
		Courses: []catalog.CourseRecord{
			{CourseID: "CS101", CourseName: "Intro to Programming", Type: "Lecture", Credits: "3"},
			{CourseID: "CS102", CourseName: "Programming Lab", Type: "Lab", Credits: "1"},
			{CourseID: "MA201", CourseName: "Calculus", Type: "Lecture", Credits: "4"},
			{CourseID: "PH301", CourseName: "Physics", Type: "Lecture and Lab", Credits: "4"},
		},
		Instructors: []catalog.InstructorRecord{
			{InstructorID: "I1", Name: "Dr. Ada", QualifiedCourses: "CS101,CS102"},
			{InstructorID: "I2", Name: "Dr. Grace", QualifiedCourses: "MA201"},
			{InstructorID: "I3", Name: "Dr. Alan", QualifiedCourses: "PH301,CS101"},
		},
		Rooms: []catalog.RoomRecord{
			{RoomID: "R1", Type: "Lecture Hall", Capacity: "80"},
			{RoomID: "R2", Type: "Lecture Hall", Capacity: "40"},
			{RoomID: "R3", Type: "Lab Room", Capacity: "30"},
		},
		TimeSlots: []catalog.TimeSlotRecord{
			{TimeSlotID: "T1", Day: "Sunday", StartTime: "09:00", EndTime: "10:00"},
			{TimeSlotID: "T2", Day: "Sunday", StartTime: "10:00", EndTime: "11:00"},
			{TimeSlotID: "T3", Day: "Monday", StartTime: "09:00", EndTime: "10:00"},
			{TimeSlotID: "T4", Day: "Tuesday", StartTime: "09:00", EndTime: "10:00"},
		},
		Sections: []catalog.SectionRecord{
			{SectionID: "S1", StudentCount: "30", Courses: "CS101,CS102,MA201"},
			{SectionID: "S2", StudentCount: "25", Courses: "CS101,PH301"},
			{SectionID: "S3", StudentCount: "35", Courses: "MA201,PH301"},
		},
	}
	variables, domains := buildInstance(t, records)
	scheduler := NewScheduler(DefaultConfig)

	// Act
	result := scheduler.Solve(variables, domains)

	// Assert
	assert.Equal(t, Solved, result.Status)
	assert.True(t, result.Complete())
	assert.Equal(t, 7, result.Assigned)
	assert.True(t, VerifyAssignment(variables, result.Assignment))
	assert.LessOrEqual(t, result.Iterations, DefaultConfig.MaxIterations)
}

func TestSolveDeterministic(t *testing.T) {
	//**Arrange
	records := clashingRecords()
	records.Rooms = append(records.Rooms, catalog.RoomRecord{RoomID: "R2", Type: "Lecture Hall", Capacity: "60"})

	// Act
	variables1, domains1 := buildInstance(t, records)
	variables2, domains2 := buildInstance(t, records)
	result1 := NewScheduler(DefaultConfig).Solve(variables1, domains1)
	result2 := NewScheduler(DefaultConfig).Solve(variables2, domains2)

	// Assert
	assert.Equal(t, result1, result2)
}

func TestSelectUnassigned(t *testing.T) {
	//**Arrange
	variables := []Variable{
		{SectionID: "S1", CourseID: "C1"},
		{SectionID: "S1", CourseID: "C2"},
		{SectionID: "S2", CourseID: "C1"},
	}
	candidate := DomainValue{RoomID: "R1", TimeSlotID: "T1"}
	context := &searchContext{
		variables: variables,
		domains: map[string][]DomainValue{
			"S1_C1": {candidate, candidate, candidate},
			"S1_C2": {candidate},
			"S2_C1": {candidate},
		},
		assignment: Assignment{},
	}

	t.Run("smallest domain wins, ties to construction order", func(t *testing.T) {
		// Act
		selected := context.selectUnassigned()

		// Assert
		assert.Equal(t, "S1_C2", selected.Key())
	})

	t.Run("assigned variables are skipped", func(t *testing.T) {
		//**Arrange
		context.assignment["S1_C2"] = candidate

		// Act
		selected := context.selectUnassigned()

		// Assert
		assert.Equal(t, "S2_C1", selected.Key())
		delete(context.assignment, "S1_C2")
	})
}

func TestNewSchedulerDefaultsBudget(t *testing.T) {
	//**Arrange
	scheduler := NewScheduler(Config{}).(*backtrackingScheduler)

	// Assert
	assert.Equal(t, DefaultConfig.MaxIterations, scheduler.config.MaxIterations)
}

package catalog

// Raw input records as handed over by the data-loading collaborator.
// Every field is kept as a string straight from the source cell;
// parsing and validation happen in NewCatalog.

type CourseRecord struct {
	CourseID   string `mapstructure:"CourseID"`
	CourseName string `mapstructure:"CourseName"`
	Type       string `mapstructure:"Type"`
	Credits    string `mapstructure:"Credits"`
}

type InstructorRecord struct {
	InstructorID     string `mapstructure:"InstructorID"`
	Name             string `mapstructure:"Name"`
	QualifiedCourses string `mapstructure:"QualifiedCourses"`
	PreferredSlots   string `mapstructure:"PreferredSlots"`
}

type RoomRecord struct {
	RoomID   string `mapstructure:"RoomID"`
	Type     string `mapstructure:"Type"`
	Capacity string `mapstructure:"Capacity"`
}

type TimeSlotRecord struct {
	TimeSlotID string `mapstructure:"TimeSlotID"`
	Day        string `mapstructure:"Day"`
	StartTime  string `mapstructure:"StartTime"`
	EndTime    string `mapstructure:"EndTime"`
}

type SectionRecord struct {
	SectionID    string `mapstructure:"SectionID"`
	StudentCount string `mapstructure:"StudentCount"`
	Courses      string `mapstructure:"Courses"`
}

// Records bundles the five raw catalogs of a single dataset.
type Records struct {
	Courses     []CourseRecord
	Instructors []InstructorRecord
	Rooms       []RoomRecord
	TimeSlots   []TimeSlotRecord
	Sections    []SectionRecord
}

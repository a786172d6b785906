package main

import (
	"encoding/csv"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/samber/lo"

	"github.com/campusops/coursetable/internal/catalog"
	"github.com/campusops/coursetable/internal/model"
)

var scheduleHeader = []string{
	"Section_ID", "Course_Code", "Course_Name", "Activity_Type",
	"Day", "Start_Time", "End_Time", "Room", "Instructor", "Student_Count",
}

func main() {
	// Define arguments
	dataPtr := flag.String("data", "", "Path to the directory containing Courses.csv, Instructor.csv, Rooms.csv, TimeSlots.csv and Sections.csv")
	outPtr := flag.String("out", "", "Path to the schedule CSV output file; if empty, the schedule is written to the Standard Output as JSON")
	iterationsPtr := flag.Uint64("iterations", model.DefaultConfig.MaxIterations, "Maximum number of search iterations")
	fallbackPtr := flag.Int("fallback", model.DefaultFallbackRoomLimit, "Number of rooms used by the degenerate room fallback")
	reportsPtr := flag.Bool("reports", false, "Print catalog diagnostic reports before solving")
	flag.Parse()

	// Validate arguments
	if *dataPtr == "" {
		log.Fatal("a data directory must be specified")
	} else if *iterationsPtr == 0 {
		log.Fatal("iterations must be a positive integer")
	}

	// Extract input
	records, err := catalog.LoadRecords(*dataPtr)
	if err != nil {
		log.Fatalf("cannot load catalog records: %v", err)
	}

	cat, err := catalog.NewCatalog(records)
	if err != nil {
		log.Fatalf("cannot build catalog: %v", err)
	}

	if *reportsPtr {
		printReports(cat)
	}

	// Build variables and domains
	constructor := model.NewDomainConstructor(*fallbackPtr)
	variables, domains, err := constructor.Construct(cat)
	if err != nil {
		log.Fatalf("cannot construct domains: %v", err)
	}

	feasible, err := model.Feasible(variables, domains)
	if err != nil {
		log.Fatalf("cannot run feasibility precheck: %v", err)
	} else if !feasible {
		log.Println("warning: fewer free (room, timeslot) pairs than variables; the instance is unsatisfiable")
	}

	// Solve
	scheduler := model.NewScheduler(model.Config{MaxIterations: *iterationsPtr})
	result := scheduler.Solve(variables, domains)

	fmt.Printf("Status: %v\n", result.Status)
	fmt.Printf("Iterations: %v\n", result.Iterations)
	fmt.Printf("Assigned: %v/%v\n", result.Assigned, result.Variables)

	// Verify schedule correctness
	if !model.VerifyAssignment(variables, result.Assignment) {
		os.Exit(15)
	}

	entries := model.Project(variables, result.Assignment)
	printStatistics(entries)

	if err := writeSchedule(entries, *outPtr); err != nil {
		log.Fatalf("cannot write schedule: %v", err)
	}

	if result.Status != model.Solved {
		os.Exit(20)
	}
	os.Exit(10)
}

func printReports(cat *catalog.Catalog) {
	summary := catalog.SummarizeRoomTypes(cat)
	fmt.Printf("Lecture courses: %v, Lab courses: %v\n", summary.LectureCourses, summary.LabCourses)
	fmt.Printf("Lecture rooms: %v, Lab rooms: %v\n", summary.LectureRooms, summary.LabRooms)

	for _, compatibility := range catalog.SectionRoomCompatibilityReport(cat) {
		fmt.Printf("Section %v (%v students): %v suitable rooms\n", compatibility.SectionID, compatibility.StudentCount, len(compatibility.RoomIDs))
	}

	uncovered := catalog.UncoveredCourses(cat)
	if len(uncovered) > 0 {
		fmt.Printf("Courses with no qualified instructor: %v\n", uncovered)
	}
}

func printStatistics(entries []model.ScheduleEntry) {
	fmt.Printf("Scheduled classes: %v\n", len(entries))

	byType := lo.CountValuesBy(entries, func(entry model.ScheduleEntry) string { return entry.ActivityType })
	for activityType, count := range byType {
		fmt.Printf("  %v: %v\n", activityType, count)
	}

	rooms := lo.Uniq(lo.Map(entries, func(entry model.ScheduleEntry, _ int) string { return entry.Room }))
	instructors := lo.Uniq(lo.Map(entries, func(entry model.ScheduleEntry, _ int) string { return entry.Instructor }))
	fmt.Printf("Rooms used: %v, Instructors used: %v\n", len(rooms), len(instructors))
}

func writeSchedule(entries []model.ScheduleEntry, outFile string) error {
	// An empty outfile means the schedule goes to the Standard Output
	if outFile == "" {
		encoded, err := json.Marshal(entries)
		if err != nil {
			return err
		}
		fmt.Println(string(encoded))
		return nil
	}

	file, err := os.Create(outFile)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if err := writer.Write(scheduleHeader); err != nil {
		return err
	}

	for _, entry := range entries {
		record := []string{
			entry.SectionID,
			entry.CourseCode,
			entry.CourseName,
			entry.ActivityType,
			entry.Day,
			entry.StartTime,
			entry.EndTime,
			entry.Room,
			entry.Instructor,
			strconv.Itoa(entry.StudentCount),
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}

	return writer.Error()
}

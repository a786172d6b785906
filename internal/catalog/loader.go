package catalog

import (
	"encoding/csv"
	"fmt"
	"os"
	"path"
	"strings"

	"github.com/mitchellh/mapstructure"
)

const (
	coursesFile     = "Courses.csv"
	instructorsFile = "Instructor.csv"
	roomsFile       = "Rooms.csv"
	timeSlotsFile   = "TimeSlots.csv"
	sectionsFile    = "Sections.csv"
)

// LoadRecords reads the five catalog CSV files from directory and
// decodes their rows into raw records. Column headers are matched by
// name with surrounding whitespace trimmed.
func LoadRecords(directory string) (Records, error) {
	var records Records

	if err := loadFile(path.Join(directory, coursesFile), &records.Courses); err != nil {
		return Records{}, err
	}
	if err := loadFile(path.Join(directory, instructorsFile), &records.Instructors); err != nil {
		return Records{}, err
	}
	if err := loadFile(path.Join(directory, roomsFile), &records.Rooms); err != nil {
		return Records{}, err
	}
	if err := loadFile(path.Join(directory, timeSlotsFile), &records.TimeSlots); err != nil {
		return Records{}, err
	}
	if err := loadFile(path.Join(directory, sectionsFile), &records.Sections); err != nil {
		return Records{}, err
	}

	return records, nil
}

func loadFile(file string, target any) error {
	rows, err := readRows(file)
	if err != nil {
		return fmt.Errorf("cannot load %v: %w", file, err)
	}

	if err := mapstructure.Decode(rows, target); err != nil {
		return fmt.Errorf("cannot decode %v: %w", file, err)
	}
	return nil
}

// readRows reads a CSV file into one header-keyed map per data row.
func readRows(file string) ([]map[string]string, error) {
	handle, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer handle.Close()

	reader := csv.NewReader(handle)
	reader.TrimLeadingSpace = true

	lines, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, fmt.Errorf("missing header row")
	}

	header := lines[0]
	for i, column := range header {
		header[i] = strings.TrimSpace(column)
	}

	rows := make([]map[string]string, 0, len(lines)-1)
	for _, line := range lines[1:] {
		row := make(map[string]string, len(header))
		for i, column := range header {
			if i < len(line) {
				row[column] = strings.TrimSpace(line[i])
			}
		}
		rows = append(rows, row)
	}

	return rows, nil
}

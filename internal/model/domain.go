package model

import (
	"fmt"

	"github.com/campusops/coursetable/internal/catalog"
)

// DefaultFallbackRoomLimit bounds the degenerate room fallback: when
// neither type nor capacity matching yields a room, the first N rooms
// of the catalog are used instead.
const DefaultFallbackRoomLimit = 10

// DomainConstructor derives, per (section, course) variable, the
// ordered set of feasible (room, timeslot, instructor) candidates. The
// enumeration order (room, then timeslot, then instructor, each in
// catalog order) is the candidate-trial order during search.
type DomainConstructor interface {
	Construct(cat *catalog.Catalog) ([]Variable, map[string][]DomainValue, error)
}

func NewDomainConstructor(fallbackRoomLimit int) DomainConstructor {
	if fallbackRoomLimit <= 0 {
		fallbackRoomLimit = DefaultFallbackRoomLimit
	}
	return &domainConstructorImplementation{fallbackRoomLimit: fallbackRoomLimit}
}

// EmptyDomainError reports a variable whose domain is empty after every
// fallback relaxation. This can only happen when the global room or
// timeslot catalog is itself empty.
type EmptyDomainError struct {
	Variable string
}

func (err *EmptyDomainError) Error() string {
	return fmt.Sprintf("variable %q has an empty domain: the room or timeslot catalog is empty", err.Variable)
}

package model

// Scheduler performs a bounded backtracking search over the constructed
// domains. A Solve call never fails with an error: budget or search
// space exhaustion is a normal Result, not a fault.
type Scheduler interface {
	Solve(variables []Variable, domains map[string][]DomainValue) Result
}

func NewScheduler(config Config) Scheduler {
	if config.MaxIterations == 0 {
		config.MaxIterations = DefaultConfig.MaxIterations
	}
	return &backtrackingScheduler{config: config}
}

// Config is the only configuration surface owned by the search engine.
type Config struct {
	// MaxIterations caps the number of recursive search steps. The
	// budget check at the top of each step is the sole cancellation
	// point; a wall-clock deadline must be translated into an
	// equivalent budget by the caller.
	MaxIterations uint64
}

var DefaultConfig = Config{
	MaxIterations: 1000,
}

type Status int

const (
	// Searching is the engine's initial state; it never appears in a
	// returned Result.
	Searching Status = iota
	Solved
	Exhausted
	BudgetExceeded
)

var statusNames = map[Status]string{
	Searching:      "searching",
	Solved:         "solved",
	Exhausted:      "exhausted",
	BudgetExceeded: "budget exceeded",
}

func (status Status) String() string {
	return statusNames[status]
}

// Result carries the terminal search state together with whatever
// assignment exists at termination: complete on Solved, the best
// partial otherwise.
type Result struct {
	Status     Status
	Assignment Assignment
	Iterations uint64
	Assigned   int
	Variables  int
}

// Complete reports whether every variable was assigned.
func (result Result) Complete() bool {
	return result.Assigned == result.Variables
}

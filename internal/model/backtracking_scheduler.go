package model

type backtrackingScheduler struct {
	config Config
}

// searchContext is the mutable state of one Solve call: the partial
// assignment and the iteration counter. It is owned by the single
// active call stack and discarded when the search terminates.
type searchContext struct {
	variables     []Variable
	domains       map[string][]DomainValue
	checker       *consistencyChecker
	assignment    Assignment
	iterations    uint64
	maxIterations uint64
}

func (scheduler *backtrackingScheduler) Solve(variables []Variable, domains map[string][]DomainValue) Result {
	context := &searchContext{
		variables:     variables,
		domains:       domains,
		checker:       newConsistencyChecker(variables),
		assignment:    Assignment{},
		maxIterations: scheduler.config.MaxIterations,
	}

	status := context.backtrack()

	return Result{
		Status:     status,
		Assignment: context.assignment,
		Iterations: context.iterations,
		Assigned:   len(context.assignment),
		Variables:  len(variables),
	}
}

// backtrack is one depth-first search step. It returns Solved as soon
// as the assignment is complete, BudgetExceeded when the iteration cap
// is hit (unwinding with the partial assignment intact), and Exhausted
// when no candidate works anywhere below this frame.
func (context *searchContext) backtrack() Status {
	context.iterations++
	if context.iterations >= context.maxIterations {
		return BudgetExceeded
	}

	if len(context.assignment) == len(context.variables) {
		return Solved
	}

	variable := context.selectUnassigned()
	key := variable.Key()

	for _, candidate := range context.domains[key] {
		if !context.checker.Consistent(variable, candidate, context.assignment) {
			continue
		}

		context.assignment[key] = candidate

		switch status := context.backtrack(); status {
		case Solved, BudgetExceeded:
			return status
		}

		// Exact rollback before trying the next candidate
		delete(context.assignment, key)
	}

	return Exhausted
}

// selectUnassigned picks the unassigned variable with the smallest
// domain (minimum remaining values). Domain sizes are fixed at
// construction time, so this is a static ordering heuristic; ties go to
// the earliest-constructed variable.
func (context *searchContext) selectUnassigned() Variable {
	var selected Variable
	selectedSize := -1

	for _, variable := range context.variables {
		if _, assigned := context.assignment[variable.Key()]; assigned {
			continue
		}

		size := len(context.domains[variable.Key()])
		if selectedSize < 0 || size < selectedSize {
			selected, selectedSize = variable, size
		}
	}

	return selected
}

package model

import (
	"github.com/onsi/gomega/matchers/support/goraph/bipartitegraph"
	"github.com/samber/lo"
)

// Feasible runs a matching-based precheck before any search: every
// variable must end up on its own (room, timeslot) pair, so a maximum
// bipartite matching between variables and the pairs occurring in their
// domains that is smaller than the variable count proves the instance
// unsatisfiable. A feasible verdict guarantees nothing; the check is a
// cheap diagnostic and never alters solve semantics.
func Feasible(variables []Variable, domains map[string][]DomainValue) (bool, error) {
	type roomSlot struct {
		room string
		slot string
	}

	pairs := make([]roomSlot, 0)
	seen := make(map[roomSlot]bool)
	edges := make(map[string]map[roomSlot]bool, len(variables))

	for _, variable := range variables {
		key := variable.Key()
		edges[key] = make(map[roomSlot]bool)

		for _, candidate := range domains[key] {
			pair := roomSlot{room: candidate.RoomID, slot: candidate.TimeSlotID}
			edges[key][pair] = true

			if !seen[pair] {
				seen[pair] = true
				pairs = append(pairs, pair)
			}
		}
	}

	neighbors := func(variableAny any, pairAny any) (bool, error) {
		return edges[variableAny.(string)][pairAny.(roomSlot)], nil
	}

	variablesAny := lo.Map(variables, func(variable Variable, _ int) any { return variable.Key() })
	pairsAny := lo.Map(pairs, func(pair roomSlot, _ int) any { return pair })

	graph, err := bipartitegraph.NewBipartiteGraph(variablesAny, pairsAny, neighbors)
	if err != nil {
		return false, err
	}

	matching := graph.LargestMatching()
	return len(matching) == len(variables), nil
}

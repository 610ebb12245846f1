package automata

import (
	"slices"
	"strings"
)

// SubsetSeparator joins the member states of a subset into its canonical name.
const SubsetSeparator = ","

// CanonicalName returns the name of the subset made of states: sorted, deduplicated and
// joined with SubsetSeparator. Equal subsets always get the same name.
func CanonicalName(states []State) State {
	subset := canonicalSubset(states)
	parts := make([]string, len(subset))
	for i, s := range subset {
		parts[i] = string(s)
	}
	return State(strings.Join(parts, SubsetSeparator))
}

func canonicalSubset(states []State) []State {
	subset := slices.Clone(states)
	slices.Sort(subset)
	return slices.Compact(subset)
}

// relationIndex maps a source state and symbol to every target named by the relation.
type relationIndex map[State]map[Symbol][]State

func newRelationIndex(relation []Triple) relationIndex {
	index := make(relationIndex)
	for _, t := range relation {
		row, ok := index[t.Source]
		if !ok {
			row = make(map[Symbol][]State)
			index[t.Source] = row
		}
		row[t.Symbol] = append(row[t.Symbol], t.Target)
	}
	return index
}

func (ix relationIndex) has(from State, symbol Symbol) bool {
	return len(ix[from][symbol]) > 0
}

// move returns the canonical set of states reachable from any member of subset on symbol.
func (ix relationIndex) move(subset []State, symbol Symbol) []State {
	var targets []State
	for _, from := range subset {
		targets = append(targets, ix[from][symbol]...)
	}
	return canonicalSubset(targets)
}

// subsetConstruction is the result of determinizing a transition relation.
type subsetConstruction struct {
	dfa     *Deterministic
	subsets map[State][]State
}

// determinize runs the powerset construction breadth-first from {initialState}.
// Only reachable subsets become states; each subset is queued at most once, so the
// discovery order (and with it the state order of the result) is reproducible.
func determinize(def *definition, index relationIndex) subsetConstruction {
	start := []State{def.initialState}
	startName := CanonicalName(start)

	queue := [][]State{start}
	discovered := map[State]struct{}{startName: {}}
	subsets := make(map[State][]State)

	var (
		states      []State
		finalStates []State
		transitions = NewTransitionTable()
	)

	for len(queue) > 0 {
		subset := queue[0]
		queue = queue[1:]

		name := CanonicalName(subset)
		if _, processed := subsets[name]; processed {
			continue
		}
		subsets[name] = subset
		states = append(states, name)

		if slices.ContainsFunc(subset, def.IsFinal) {
			finalStates = append(finalStates, name)
		}

		for _, symbol := range def.alphabet {
			targets := index.move(subset, symbol)
			if len(targets) == 0 {
				continue
			}
			targetName := CanonicalName(targets)
			transitions.Set(name, symbol, targetName)
			if _, seen := discovered[targetName]; !seen {
				discovered[targetName] = struct{}{}
				queue = append(queue, targets)
			}
		}
	}

	return subsetConstruction{
		dfa:     NewDeterministic(states, def.alphabet, startName, finalStates, transitions),
		subsets: subsets,
	}
}

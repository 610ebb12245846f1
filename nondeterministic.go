package automata

import (
	"fmt"
	"slices"
)

// NonDeterministic is a non-deterministic finite automaton given by a transition relation.
// An equivalent deterministic automaton is derived by subset construction when it is created;
// recognition is delegated to it.
//
// The derived automaton can have up to 2^n states for n original states, so construction
// of very large automata may take exponential time and memory.
type NonDeterministic struct {
	definition
	relation []Triple
	index    relationIndex
	derived  subsetConstruction
}

var _ Automaton = (*NonDeterministic)(nil)

// NewNonDeterministic creates a non-deterministic automaton and derives its deterministic
// equivalent. The relation may contain duplicate triples and several triples per
// (state, symbol) pair. The inputs are copied.
func NewNonDeterministic(
	states []State,
	alphabet []Symbol,
	initialState State,
	finalStates []State,
	relation []Triple,
) *NonDeterministic {
	n := &NonDeterministic{
		definition: newDefinition(states, alphabet, initialState, finalStates),
		relation:   slices.Clone(relation),
	}
	n.index = newRelationIndex(n.relation)
	n.derived = determinize(&n.definition, n.index)
	return n
}

// Transitions returns a copy of the transition relation as supplied.
func (n *NonDeterministic) Transitions() []Triple {
	return slices.Clone(n.relation)
}

// Triples returns a copy of the transition relation as supplied.
func (n *NonDeterministic) Triples() []Triple {
	return slices.Clone(n.relation)
}

// Deterministic returns the derived deterministic automaton. Its states are canonical subset names.
func (n *NonDeterministic) Deterministic() *Deterministic {
	return n.derived.dfa
}

// Subset returns the original states that make up a state of the derived automaton.
func (n *NonDeterministic) Subset(name State) ([]State, bool) {
	subset, ok := n.derived.subsets[name]
	if !ok {
		return nil, false
	}
	return slices.Clone(subset), true
}

// Targets returns the distinct targets of from on symbol in canonical order.
func (n *NonDeterministic) Targets(from State, symbol Symbol) []State {
	return n.index.move([]State{from}, symbol)
}

// IsComplete checks the relation itself: a (state, symbol) pair is missing when no triple
// starts with it. Missing pairs are reported over the original states.
//
// A complete relation always yields a complete derived automaton. The converse does not hold:
// a state lacking a move can be covered by another member of every reachable subset it
// appears in, or be unreachable altogether.
func (n *NonDeterministic) IsComplete() CompletenessReport {
	missing := make([]MissingTransition, 0)
	for _, state := range n.states {
		for _, symbol := range n.alphabet {
			if !n.index.has(state, symbol) {
				missing = append(missing, MissingTransition{State: state, Symbol: symbol})
			}
		}
	}
	return CompletenessReport{
		IsComplete:         len(missing) == 0,
		MissingTransitions: missing,
	}
}

// Recognizes runs word through the derived deterministic automaton. The steps are therefore
// expressed over canonical subset names rather than the original states.
func (n *NonDeterministic) Recognizes(word string) RecognitionResult {
	return n.derived.dfa.Recognizes(word)
}

// String returns a short description of the automaton.
func (n *NonDeterministic) String() string {
	return fmt.Sprintf("NonDeterministic { States = %d, Alphabet = %d, Transitions = %d, DerivedStates = %d }",
		len(n.states), len(n.alphabet), len(n.relation), len(n.derived.dfa.states))
}

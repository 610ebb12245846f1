package automata

import "fmt"

// Deterministic is a deterministic finite automaton with a possibly partial transition function.
// It is immutable once constructed and safe for concurrent queries.
type Deterministic struct {
	definition
	transitions *TransitionTable
}

var _ Automaton = (*Deterministic)(nil)

// NewDeterministic creates a deterministic automaton. The inputs are copied.
// Callers are responsible for initialState being one of states and finalStates being a subset of states.
func NewDeterministic(
	states []State,
	alphabet []Symbol,
	initialState State,
	finalStates []State,
	transitions *TransitionTable,
) *Deterministic {
	return &Deterministic{
		definition:  newDefinition(states, alphabet, initialState, finalStates),
		transitions: transitions.Clone(),
	}
}

// Transitions returns a copy of the transition table.
func (d *Deterministic) Transitions() *TransitionTable {
	return d.transitions.Clone()
}

// Step returns the target of the transition from state on symbol.
func (d *Deterministic) Step(from State, symbol Symbol) (State, bool) {
	return d.transitions.Lookup(from, symbol)
}

// Triples returns the defined transitions in declared state and alphabet order.
func (d *Deterministic) Triples() []Triple {
	triples := make([]Triple, 0, d.transitions.Len())
	for _, state := range d.states {
		for _, symbol := range d.alphabet {
			if to, ok := d.transitions.Lookup(state, symbol); ok {
				triples = append(triples, Triple{Source: state, Symbol: symbol, Target: to})
			}
		}
	}
	return triples
}

// IsComplete checks every (state, symbol) pair for a defined transition.
func (d *Deterministic) IsComplete() CompletenessReport {
	missing := make([]MissingTransition, 0)
	for _, state := range d.states {
		for _, symbol := range d.alphabet {
			if _, ok := d.transitions.Lookup(state, symbol); !ok {
				missing = append(missing, MissingTransition{State: state, Symbol: symbol})
			}
		}
	}
	return CompletenessReport{
		IsComplete:         len(missing) == 0,
		MissingTransitions: missing,
	}
}

// Recognizes runs word from the initial state. The trace stops at the first undefined transition,
// in which case the word is rejected. Characters outside the alphabet simply have no transition.
func (d *Deterministic) Recognizes(word string) RecognitionResult {
	state := d.initialState
	steps := make([]RecognitionStep, 0, len(word))

	index := 0
	for _, r := range word {
		symbol := Symbol(r)
		next, ok := d.transitions.Lookup(state, symbol)
		steps = append(steps, RecognitionStep{
			Source:  state,
			Symbol:  symbol,
			Index:   index,
			Target:  next,
			Defined: ok,
		})
		if !ok {
			return RecognitionResult{Recognized: false, Steps: steps}
		}
		state = next
		index++
	}

	return RecognitionResult{
		Recognized: d.IsFinal(state),
		Steps:      steps,
	}
}

// String returns a short description of the automaton.
func (d *Deterministic) String() string {
	return fmt.Sprintf("Deterministic { States = %d, Alphabet = %d, Transitions = %d }",
		len(d.states), len(d.alphabet), d.transitions.Len())
}

// Package graph provides visualization utilities for finite automata.
package graph

import (
	"github.com/atlekbai/automata"
)

// State represents a state in the graph.
type State struct {
	// StateName is the name of the state.
	StateName string

	// NodeName is the name used for the node in the graph.
	NodeName string

	// Initial marks the initial state of the automaton.
	Initial bool

	// Final marks an accepting state.
	Final bool

	// Leaving are the transitions leaving this state.
	Leaving []*Transition

	// Arriving are the transitions arriving at this state.
	Arriving []*Transition
}

// Transition represents every move between one pair of states.
// Moves on different symbols are merged into a single edge.
type Transition struct {
	// Symbols are the symbols that cause this transition, in alphabet order.
	Symbols []automata.Symbol

	// SourceState is the source state of the transition.
	SourceState *State

	// DestinationState is the destination state of the transition.
	DestinationState *State
}

// IsLoop reports whether the transition leads back to its source.
func (t *Transition) IsLoop() bool {
	return t.SourceState == t.DestinationState
}

// Labels returns the symbols as strings.
func (t *Transition) Labels() []string {
	labels := make([]string, len(t.Symbols))
	for i, s := range t.Symbols {
		labels[i] = s.String()
	}
	return labels
}

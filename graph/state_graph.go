package graph

import (
	"strings"

	"github.com/atlekbai/automata"
)

// StateGraph generates a symbolic representation of the graph structure.
type StateGraph struct {
	// InitialState is the initial state of the automaton.
	InitialState *State

	// States contains all states in the graph, indexed by state name.
	States map[string]*State

	// Order lists the state names in declaration order.
	Order []string

	// Transitions contains all transitions in the graph.
	Transitions []*Transition
}

// NewStateGraph creates a new state graph from an automaton.
func NewStateGraph(a automata.Automaton) *StateGraph {
	sg := &StateGraph{
		States: make(map[string]*State),
	}

	sg.addStates(a)
	sg.addTransitions(a)

	return sg
}

// addStates adds the declared states, then any state named only by a transition.
func (sg *StateGraph) addStates(a automata.Automaton) {
	for _, s := range a.States() {
		sg.addState(a, s)
	}
	if initial := sg.addState(a, a.InitialState()); initial != nil {
		initial.Initial = true
		sg.InitialState = initial
	}
	for _, t := range a.Triples() {
		sg.addState(a, t.Source)
		sg.addState(a, t.Target)
	}
}

func (sg *StateGraph) addState(a automata.Automaton, s automata.State) *State {
	name := string(s)
	if state, exists := sg.States[name]; exists {
		return state
	}
	state := &State{
		StateName: name,
		NodeName:  name,
		Final:     a.IsFinal(s),
	}
	sg.States[name] = state
	sg.Order = append(sg.Order, name)
	return state
}

// addTransitions merges the moves of each (source, destination) pair into one edge.
// Edges follow the order of their first move; symbols follow the alphabet order.
func (sg *StateGraph) addTransitions(a automata.Automaton) {
	position := make(map[automata.Symbol]int)
	for i, s := range a.Alphabet() {
		position[s] = i
	}

	type edgeKey struct{ from, to string }
	edges := make(map[edgeKey]*Transition)

	for _, t := range a.Triples() {
		key := edgeKey{string(t.Source), string(t.Target)}
		transit, exists := edges[key]
		if !exists {
			transit = &Transition{
				SourceState:      sg.States[key.from],
				DestinationState: sg.States[key.to],
			}
			edges[key] = transit
			sg.Transitions = append(sg.Transitions, transit)
			transit.SourceState.Leaving = append(transit.SourceState.Leaving, transit)
			transit.DestinationState.Arriving = append(transit.DestinationState.Arriving, transit)
		}
		transit.Symbols = insertSymbol(transit.Symbols, t.Symbol, position)
	}
}

// insertSymbol adds symbol once, keeping alphabet order. Symbols outside the alphabet go last.
func insertSymbol(symbols []automata.Symbol, symbol automata.Symbol, position map[automata.Symbol]int) []automata.Symbol {
	rank := func(s automata.Symbol) int {
		if p, ok := position[s]; ok {
			return p
		}
		return len(position)
	}
	for i, existing := range symbols {
		if existing == symbol {
			return symbols
		}
		if rank(symbol) < rank(existing) {
			symbols = append(symbols, 0)
			copy(symbols[i+1:], symbols[i:])
			symbols[i] = symbol
			return symbols
		}
	}
	return append(symbols, symbol)
}

// FinalStates returns the accepting states in declaration order.
func (sg *StateGraph) FinalStates() []*State {
	var finals []*State
	for _, name := range sg.Order {
		if state := sg.States[name]; state.Final {
			finals = append(finals, state)
		}
	}
	return finals
}

// ToGraph converts the state graph to a string representation using the specified style.
func (sg *StateGraph) ToGraph(style Style) string {
	var sb strings.Builder

	sb.WriteString(style.GetPrefix())

	for _, name := range sg.Order {
		sb.WriteString(style.FormatOneState(sg.States[name]))
	}

	lines := style.FormatAllTransitions(sg.Transitions)
	for _, line := range lines {
		sb.WriteString("\n")
		sb.WriteString(line)
	}

	sb.WriteString(style.GetInitialTransition(sg.InitialState))
	sb.WriteString(style.GetSuffix(sg.FinalStates()))

	return sb.String()
}

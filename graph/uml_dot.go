package graph

import (
	"fmt"
	"strings"

	"github.com/atlekbai/automata"
)

// UmlDotGraphStyle generates DOT graphs with the usual automaton notation:
// circles for states, double circles for final states and an arrow from a point into
// the initial state.
type UmlDotGraphStyle struct{}

// NewUmlDotGraphStyle creates a new DOT graph style.
func NewUmlDotGraphStyle() *UmlDotGraphStyle {
	return &UmlDotGraphStyle{}
}

// GetPrefix returns the text that starts a new DOT graph.
func (s *UmlDotGraphStyle) GetPrefix() string {
	var sb strings.Builder
	sb.WriteString("digraph {\n")
	sb.WriteString("node [shape=circle]\n")
	sb.WriteString("rankdir=\"LR\"\n")
	return sb.String()
}

// FormatOneState formats a single state.
func (s *UmlDotGraphStyle) FormatOneState(state *State) string {
	escapedName := EscapeLabel(state.NodeName)
	if state.Final {
		return fmt.Sprintf("\"%s\" [label=\"%s\", shape=doublecircle];\n", escapedName, EscapeLabel(state.StateName))
	}
	return fmt.Sprintf("\"%s\" [label=\"%s\"];\n", escapedName, EscapeLabel(state.StateName))
}

// FormatAllTransitions formats all transitions.
func (s *UmlDotGraphStyle) FormatAllTransitions(transitions []*Transition) []string {
	return FormatTransitions(s, transitions)
}

// FormatOneTransition formats a single transition.
func (s *UmlDotGraphStyle) FormatOneTransition(sourceNodeName string, symbols []string, destinationNodeName string) string {
	return formatOneLine(sourceNodeName, destinationNodeName, strings.Join(symbols, ", "))
}

// GetInitialTransition returns the text for the initial state transition.
func (s *UmlDotGraphStyle) GetInitialTransition(initialState *State) string {
	if initialState == nil {
		return ""
	}

	var sb strings.Builder
	sb.WriteString("\n")
	sb.WriteString(" init [label=\"\", shape=point];")
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf(" init -> \"%s\"[style = \"solid\"]", EscapeLabel(initialState.NodeName)))
	return sb.String()
}

// GetSuffix closes the graph. Final states are already marked by their shape.
func (s *UmlDotGraphStyle) GetSuffix(_ []*State) string {
	return "\n}"
}

// formatOneLine formats a single transition line.
func formatOneLine(fromNodeName, toNodeName, label string) string {
	return fmt.Sprintf("\"%s\" -> \"%s\" [style=\"solid\", label=\"%s\"];",
		EscapeLabel(fromNodeName), EscapeLabel(toNodeName), EscapeLabel(label))
}

// EscapeLabel escapes special characters in a label.
func EscapeLabel(label string) string {
	label = strings.ReplaceAll(label, "\\", "\\\\")
	label = strings.ReplaceAll(label, "\"", "\\\"")
	return label
}

// UmlDotGraph generates a DOT graph of an automaton.
func UmlDotGraph(a automata.Automaton) string {
	graph := NewStateGraph(a)
	return graph.ToGraph(NewUmlDotGraphStyle())
}

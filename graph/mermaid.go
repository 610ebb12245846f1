package graph

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/atlekbai/automata"
)

// MermaidGraphDirection specifies the direction of the Mermaid graph.
type MermaidGraphDirection int

const (
	// TopToBottom flows from top to bottom.
	TopToBottom MermaidGraphDirection = iota
	// BottomToTop flows from bottom to top.
	BottomToTop
	// LeftToRight flows from left to right.
	LeftToRight
	// RightToLeft flows from right to left.
	RightToLeft
)

// ParseMermaidGraphDirection parses a direction code such as "LR".
func ParseMermaidGraphDirection(code string) (MermaidGraphDirection, error) {
	switch strings.ToUpper(code) {
	case "TB", "TD":
		return TopToBottom, nil
	case "BT":
		return BottomToTop, nil
	case "LR":
		return LeftToRight, nil
	case "RL":
		return RightToLeft, nil
	default:
		return TopToBottom, fmt.Errorf("unknown mermaid direction '%s'", code)
	}
}

// MermaidGraphStyle generates Mermaid state diagrams.
type MermaidGraphStyle struct {
	graph     *StateGraph
	direction *MermaidGraphDirection

	// aliases maps state names to sanitized node names.
	aliases map[string]string
}

// NewMermaidGraphStyle creates a new Mermaid graph style.
func NewMermaidGraphStyle(graph *StateGraph, direction *MermaidGraphDirection) *MermaidGraphStyle {
	s := &MermaidGraphStyle{
		graph:     graph,
		direction: direction,
		aliases:   make(map[string]string),
	}
	s.buildSanitizedNames()
	return s
}

// GetPrefix returns the text that starts a new Mermaid graph.
func (s *MermaidGraphStyle) GetPrefix() string {
	var sb strings.Builder
	sb.WriteString("stateDiagram-v2")

	if s.direction != nil {
		sb.WriteString("\n")
		sb.WriteString(fmt.Sprintf("\tdirection %s", DirectionCode(*s.direction)))
	}

	// Add state aliases for states with sanitized names
	for _, name := range s.graph.Order {
		if sanitized := s.aliases[name]; sanitized != name {
			sb.WriteString("\n")
			sb.WriteString(fmt.Sprintf("\t%s : %s", sanitized, name))
		}
	}

	return sb.String()
}

// FormatOneState formats a single state (Mermaid doesn't need explicit state definitions).
func (s *MermaidGraphStyle) FormatOneState(_ *State) string {
	return ""
}

// FormatAllTransitions formats all transitions.
func (s *MermaidGraphStyle) FormatAllTransitions(transitions []*Transition) []string {
	return FormatTransitions(s, transitions)
}

// FormatOneTransition formats a single transition.
func (s *MermaidGraphStyle) FormatOneTransition(sourceNodeName string, symbols []string, destinationNodeName string) string {
	return fmt.Sprintf("\t%s --> %s : %s",
		s.getSanitizedStateName(sourceNodeName),
		s.getSanitizedStateName(destinationNodeName),
		strings.Join(symbols, ", "))
}

// GetInitialTransition returns the text for the initial state transition.
func (s *MermaidGraphStyle) GetInitialTransition(initialState *State) string {
	if initialState == nil {
		return ""
	}
	return fmt.Sprintf("\n[*] --> %s", s.getSanitizedStateName(initialState.NodeName))
}

// GetSuffix marks the final states with transitions to the end pseudo-state.
func (s *MermaidGraphStyle) GetSuffix(finalStates []*State) string {
	var sb strings.Builder
	for _, state := range finalStates {
		sb.WriteString(fmt.Sprintf("\n%s --> [*]", s.getSanitizedStateName(state.NodeName)))
	}
	return sb.String()
}

// buildSanitizedNames assigns every state a unique name that is valid in Mermaid.
func (s *MermaidGraphStyle) buildSanitizedNames() {
	taken := make(map[string]bool)
	for _, name := range s.graph.Order {
		if SanitizeStateName(name) == name {
			taken[name] = true
		}
	}

	for _, name := range s.graph.Order {
		sanitizedName := SanitizeStateName(name)

		if sanitizedName != name {
			count := 1
			tempName := sanitizedName
			for tempName == "" || taken[tempName] {
				tempName = fmt.Sprintf("%s_%d", sanitizedName, count)
				count++
			}
			sanitizedName = tempName
			taken[sanitizedName] = true
		}

		s.aliases[name] = sanitizedName
	}
}

// getSanitizedStateName returns the sanitized name for a state.
func (s *MermaidGraphStyle) getSanitizedStateName(stateName string) string {
	if sanitized, ok := s.aliases[stateName]; ok {
		return sanitized
	}
	return stateName
}

// SanitizeStateName removes characters that would cause invalid Mermaid graphs.
// The comma is removed as well since subset construction uses it in state names.
func SanitizeStateName(name string) string {
	var result strings.Builder
	for _, c := range name {
		if !unicode.IsSpace(c) && c != ':' && c != '-' && c != ',' {
			result.WriteRune(c)
		}
	}
	return result.String()
}

// DirectionCode returns the Mermaid direction code.
func DirectionCode(direction MermaidGraphDirection) string {
	switch direction {
	case TopToBottom:
		return "TB"
	case BottomToTop:
		return "BT"
	case LeftToRight:
		return "LR"
	case RightToLeft:
		return "RL"
	default:
		return "TB"
	}
}

// MermaidGraph generates a Mermaid state diagram of an automaton.
func MermaidGraph(a automata.Automaton, direction *MermaidGraphDirection) string {
	graph := NewStateGraph(a)
	return graph.ToGraph(NewMermaidGraphStyle(graph, direction))
}

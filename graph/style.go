package graph

// Style defines the interface for formatting state graphs.
type Style interface {
	// GetPrefix returns the text that starts a new graph.
	GetPrefix() string

	// FormatOneState formats a single state.
	FormatOneState(state *State) string

	// FormatAllTransitions formats all transitions.
	FormatAllTransitions(transitions []*Transition) []string

	// FormatOneTransition formats a single transition.
	FormatOneTransition(sourceNodeName string, symbols []string, destinationNodeName string) string

	// GetInitialTransition returns the text for the initial state transition.
	GetInitialTransition(initialState *State) string

	// GetSuffix returns the text that ends the graph.
	GetSuffix(finalStates []*State) string
}

// FormatTransitions is a helper that formats all transitions using the given style.
// This eliminates duplicate logic between different style implementations.
func FormatTransitions(style Style, transitions []*Transition) []string {
	var lines []string

	for _, transit := range transitions {
		if transit.SourceState == nil || transit.DestinationState == nil {
			continue
		}
		line := style.FormatOneTransition(
			transit.SourceState.NodeName,
			transit.Labels(),
			transit.DestinationState.NodeName,
		)
		if line != "" {
			lines = append(lines, line)
		}
	}

	return lines
}

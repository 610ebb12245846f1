package automata

// TransitionTable is a partial transition function from (state, symbol) to a single target.
// A missing entry means the move is undefined; it is never confused with a present entry.
type TransitionTable struct {
	entries map[State]map[Symbol]State
	size    int
}

// NewTransitionTable creates an empty transition table.
func NewTransitionTable() *TransitionTable {
	return &TransitionTable{entries: make(map[State]map[Symbol]State)}
}

// Set defines the transition from state on symbol, replacing any previous target.
// It returns the table to allow chaining.
func (t *TransitionTable) Set(from State, symbol Symbol, to State) *TransitionTable {
	if t.entries == nil {
		t.entries = make(map[State]map[Symbol]State)
	}
	row, ok := t.entries[from]
	if !ok {
		row = make(map[Symbol]State)
		t.entries[from] = row
	}
	if _, exists := row[symbol]; !exists {
		t.size++
	}
	row[symbol] = to
	return t
}

// Lookup returns the target of the transition from state on symbol.
// The boolean is false when no transition is defined.
func (t *TransitionTable) Lookup(from State, symbol Symbol) (State, bool) {
	if t == nil {
		return "", false
	}
	to, ok := t.entries[from][symbol]
	return to, ok
}

// Len returns the number of defined transitions.
func (t *TransitionTable) Len() int {
	if t == nil {
		return 0
	}
	return t.size
}

// Clone returns an independent copy of the table.
func (t *TransitionTable) Clone() *TransitionTable {
	clone := NewTransitionTable()
	if t == nil {
		return clone
	}
	for from, row := range t.entries {
		copied := make(map[Symbol]State, len(row))
		for symbol, to := range row {
			copied[symbol] = to
		}
		clone.entries[from] = copied
	}
	clone.size = t.size
	return clone
}

// Equal reports whether both tables define exactly the same transitions.
func (t *TransitionTable) Equal(other *TransitionTable) bool {
	if t.Len() != other.Len() {
		return false
	}
	if t == nil {
		return true
	}
	for from, row := range t.entries {
		for symbol, to := range row {
			if got, ok := other.Lookup(from, symbol); !ok || got != to {
				return false
			}
		}
	}
	return true
}

// Package automata models finite automata over a finite alphabet.
//
// Two automaton kinds implement the Automaton interface:
//
//   - Deterministic: a possibly partial transition function, at most one target per (state, symbol)
//   - NonDeterministic: a transition relation, converted into an equivalent Deterministic
//     automaton by subset construction when it is created
//
// Both answer two questions: whether every (state, symbol) pair has a transition
// (IsComplete), and whether a word is accepted (Recognizes). Neither query returns an
// error. An undefined move is a regular outcome that rejects the word and ends the trace.
//
// # Basic Usage
//
// Build a deterministic automaton from a transition table:
//
//	table := automata.NewTransitionTable().
//	    Set("q0", '0', "q0").
//	    Set("q0", '1', "q1")
//	dfa := automata.NewDeterministic(
//	    []automata.State{"q0", "q1"},
//	    []automata.Symbol{'0', '1'},
//	    "q0",
//	    []automata.State{"q1"},
//	    table,
//	)
//
// Query it:
//
//	report := dfa.IsComplete()   // q1 has no moves: report.IsComplete == false
//	result := dfa.Recognizes("01") // result.Recognized == true
//
// # Non-deterministic Automata
//
// A relation may give several targets to one (state, symbol) pair:
//
//	nfa := automata.NewNonDeterministic(
//	    []automata.State{"A", "B"},
//	    []automata.Symbol{'a'},
//	    "A",
//	    []automata.State{"B"},
//	    []automata.Triple{{"A", 'a', "A"}, {"A", 'a', "B"}},
//	)
//	nfa.Deterministic().States() // ["A", "A,B"]
//
// Recognition traces of a NonDeterministic automaton are expressed over the states of
// the derived automaton, whose names are the sorted members of each subset joined by ",".
//
// # Definitions
//
// Definition is the plain-data form used by editors and YAML catalogs. It validates the
// invariants the engine assumes and builds the matching automaton:
//
//	a, err := def.Build()
//
// # Graph Generation
//
// Export to DOT or Mermaid format:
//
//	import "github.com/atlekbai/automata/graph"
//	dot := graph.UmlDotGraph(a)
package automata

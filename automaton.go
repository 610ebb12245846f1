package automata

import (
	"fmt"
	"slices"
	"unicode/utf8"
)

// State is an opaque state label.
type State string

// Symbol is a single character of an alphabet.
type Symbol rune

// String returns the symbol as a one-character string.
func (s Symbol) String() string {
	return string(rune(s))
}

// MarshalText encodes the symbol as its character.
func (s Symbol) MarshalText() ([]byte, error) {
	return []byte(string(rune(s))), nil
}

// UnmarshalText decodes a symbol from exactly one character.
func (s *Symbol) UnmarshalText(text []byte) error {
	r, size := utf8.DecodeRune(text)
	if r == utf8.RuneError || size != len(text) {
		return &ArgumentError{ParamName: "symbol", Message: fmt.Sprintf("symbol must be a single character, got %q", text)}
	}
	*s = Symbol(r)
	return nil
}

// Triple is a single (source, symbol, target) entry of a transition relation.
type Triple struct {
	Source State  `json:"source" yaml:"source"`
	Symbol Symbol `json:"symbol" yaml:"symbol"`
	Target State  `json:"target" yaml:"target"`
}

// String returns the triple in "source -symbol-> target" form.
func (t Triple) String() string {
	return fmt.Sprintf("%s -%s-> %s", t.Source, t.Symbol, t.Target)
}

// Automaton is the capability shared by deterministic and non-deterministic automata.
type Automaton interface {
	// States returns the declared states in order.
	States() []State

	// Alphabet returns the declared symbols in order.
	Alphabet() []Symbol

	// InitialState returns the initial state.
	InitialState() State

	// FinalStates returns the declared final states in order.
	FinalStates() []State

	// IsFinal reports whether state is a final state.
	IsFinal(state State) bool

	// Triples returns every defined transition as a triple.
	Triples() []Triple

	// IsComplete reports which (state, symbol) pairs have no transition.
	IsComplete() CompletenessReport

	// Recognizes runs word through the automaton.
	Recognizes(word string) RecognitionResult
}

// definition holds the parts common to both automaton kinds.
type definition struct {
	states       []State
	alphabet     []Symbol
	initialState State
	finalStates  []State
	finalSet     map[State]struct{}
}

func newDefinition(states []State, alphabet []Symbol, initialState State, finalStates []State) definition {
	finalSet := make(map[State]struct{}, len(finalStates))
	for _, s := range finalStates {
		finalSet[s] = struct{}{}
	}
	return definition{
		states:       slices.Clone(states),
		alphabet:     slices.Clone(alphabet),
		initialState: initialState,
		finalStates:  slices.Clone(finalStates),
		finalSet:     finalSet,
	}
}

// States returns the declared states in order.
func (d *definition) States() []State {
	return slices.Clone(d.states)
}

// Alphabet returns the declared symbols in order.
func (d *definition) Alphabet() []Symbol {
	return slices.Clone(d.alphabet)
}

// InitialState returns the initial state.
func (d *definition) InitialState() State {
	return d.initialState
}

// FinalStates returns the declared final states in order.
func (d *definition) FinalStates() []State {
	return slices.Clone(d.finalStates)
}

// IsFinal reports whether state is a final state.
func (d *definition) IsFinal(state State) bool {
	_, ok := d.finalSet[state]
	return ok
}

// SymbolsOf splits a word into symbols.
func SymbolsOf(word string) []Symbol {
	symbols := make([]Symbol, 0, utf8.RuneCountInString(word))
	for _, r := range word {
		symbols = append(symbols, Symbol(r))
	}
	return symbols
}

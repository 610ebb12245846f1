package automata

import (
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// MissingTransition is a (state, symbol) pair without a defined transition.
type MissingTransition struct {
	State  State  `json:"sourceState" yaml:"sourceState"`
	Symbol Symbol `json:"char" yaml:"char"`
}

// CompletenessReport lists every undefined (state, symbol) pair, state-major, symbol-minor.
type CompletenessReport struct {
	IsComplete         bool                `json:"isComplete" yaml:"isComplete"`
	MissingTransitions []MissingTransition `json:"missingTransitions" yaml:"missingTransitions"`
}

// RecognitionStep is one consumed symbol of a recognition trace.
type RecognitionStep struct {
	// Source is the state occupied before consuming the symbol.
	Source State

	// Symbol is the consumed character, whether or not it belongs to the alphabet.
	Symbol Symbol

	// Index is the zero-based position of the symbol in the word.
	Index int

	// Target is the resulting state. It is only meaningful when Defined is true.
	Target State

	// Defined is false when no transition existed for Source and Symbol.
	Defined bool
}

// TargetState returns the target and whether it exists.
func (s RecognitionStep) TargetState() (State, bool) {
	return s.Target, s.Defined
}

type recognitionStepWire struct {
	Source State  `json:"sourceState" yaml:"sourceState"`
	Symbol Symbol `json:"char" yaml:"char"`
	Index  int    `json:"charIndex" yaml:"charIndex"`
	Target *State `json:"targetState" yaml:"targetState"`
}

func (s RecognitionStep) wire() recognitionStepWire {
	w := recognitionStepWire{Source: s.Source, Symbol: s.Symbol, Index: s.Index}
	if s.Defined {
		target := s.Target
		w.Target = &target
	}
	return w
}

func (s *RecognitionStep) fromWire(w recognitionStepWire) {
	*s = RecognitionStep{Source: w.Source, Symbol: w.Symbol, Index: w.Index}
	if w.Target != nil {
		s.Target = *w.Target
		s.Defined = true
	}
}

// MarshalJSON encodes an absent target as null.
func (s RecognitionStep) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.wire())
}

// UnmarshalJSON decodes a null target as absent.
func (s *RecognitionStep) UnmarshalJSON(data []byte) error {
	var w recognitionStepWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	s.fromWire(w)
	return nil
}

// MarshalYAML encodes an absent target as null.
func (s RecognitionStep) MarshalYAML() (any, error) {
	return s.wire(), nil
}

// UnmarshalYAML decodes a null target as absent.
func (s *RecognitionStep) UnmarshalYAML(node *yaml.Node) error {
	var w recognitionStepWire
	if err := node.Decode(&w); err != nil {
		return err
	}
	s.fromWire(w)
	return nil
}

// RecognitionResult is the verdict for a word plus the trace that produced it.
type RecognitionResult struct {
	Recognized bool              `json:"recognized" yaml:"recognized"`
	Steps      []RecognitionStep `json:"steps" yaml:"steps"`
}

// Rejected returns the step at which recognition stopped on an undefined transition.
func (r RecognitionResult) Rejected() (RecognitionStep, bool) {
	if len(r.Steps) == 0 {
		return RecognitionStep{}, false
	}
	last := r.Steps[len(r.Steps)-1]
	return last, !last.Defined
}

package automata

import (
	"errors"
	"fmt"
	"reflect"
	"slices"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Kind selects how the transitions of a definition are interpreted.
type Kind string

const (
	// KindDeterministic treats transitions as a partial function: at most one target per (state, symbol).
	KindDeterministic Kind = "deterministic"

	// KindNonDeterministic treats transitions as a relation: any number of targets per (state, symbol).
	KindNonDeterministic Kind = "nondeterministic"
)

// ParseKind parses a kind name. Common spellings such as "dfa", "nfa" and
// "non-deterministic" are accepted.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "deterministic", "dfa":
		return KindDeterministic, nil
	case "nondeterministic", "non-deterministic", "non_deterministic", "nfa":
		return KindNonDeterministic, nil
	default:
		return "", &UnknownKindError{Kind: s}
	}
}

// UnmarshalText parses the kind from its name.
func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// Definition is the plain-data description of an automaton as authored by a user.
// Transitions are [source, symbol, target] triples for both kinds.
type Definition struct {
	Name         string     `json:"name" yaml:"name"`
	Kind         Kind       `json:"type" yaml:"type" validate:"required,oneof=deterministic nondeterministic"`
	States       []string   `json:"states" yaml:"states" validate:"required,min=1,unique,dive,required"`
	Alphabet     []string   `json:"alphabet" yaml:"alphabet" validate:"unique,dive,len=1"`
	InitialState string     `json:"initialState" yaml:"initialState" validate:"required"`
	FinalStates  []string   `json:"finalStates" yaml:"finalStates" validate:"unique,dive,required"`
	Transitions  [][]string `json:"transitions" yaml:"transitions" validate:"dive,len=3"`
	Words        []string   `json:"words,omitempty" yaml:"words,omitempty"`
}

// validate is a singleton validator instance reporting fields by their YAML names.
var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("yaml"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
}

// Validate checks the definition against the rules the engine relies on but does not enforce:
// states and symbols are unique, symbols are single characters, the initial and final states
// are declared states, and every transition connects declared states on a declared symbol.
// Deterministic definitions may not give one (state, symbol) pair two different targets.
func (d *Definition) Validate() error {
	var errs ValidationErrors

	if err := validate.Struct(d); err != nil {
		errs = append(errs, convertValidationErrors(err)...)
	}

	states := make(map[string]struct{}, len(d.States))
	for _, s := range d.States {
		states[s] = struct{}{}
	}
	symbols := make(map[string]struct{}, len(d.Alphabet))
	for _, s := range d.Alphabet {
		symbols[s] = struct{}{}
	}

	if d.InitialState != "" {
		if _, ok := states[d.InitialState]; !ok {
			errs = append(errs, &ValidationError{
				Field:   "initialState",
				Message: fmt.Sprintf("'%s' is not a declared state", d.InitialState),
			})
		}
	}

	for i, s := range d.FinalStates {
		if _, ok := states[s]; !ok && s != "" {
			errs = append(errs, &ValidationError{
				Field:   fmt.Sprintf("finalStates[%d]", i),
				Message: fmt.Sprintf("'%s' is not a declared state", s),
			})
		}
	}

	type move struct{ from, symbol string }
	targets := make(map[move]string)
	for i, t := range d.Transitions {
		if len(t) != 3 {
			continue
		}
		field := fmt.Sprintf("transitions[%d]", i)
		from, symbol, to := t[0], t[1], t[2]
		if _, ok := states[from]; !ok {
			errs = append(errs, &ValidationError{Field: field, Message: fmt.Sprintf("source '%s' is not a declared state", from)})
		}
		if _, ok := symbols[symbol]; !ok {
			errs = append(errs, &ValidationError{Field: field, Message: fmt.Sprintf("symbol '%s' is not in the alphabet", symbol)})
		}
		if _, ok := states[to]; !ok {
			errs = append(errs, &ValidationError{Field: field, Message: fmt.Sprintf("target '%s' is not a declared state", to)})
		}
		if d.Kind != KindDeterministic {
			continue
		}
		key := move{from, symbol}
		if previous, ok := targets[key]; ok && previous != to {
			errs = append(errs, &ValidationError{
				Field: field,
				Message: fmt.Sprintf("state '%s' already moves to '%s' on '%s'; a deterministic automaton allows one target",
					from, previous, symbol),
			})
			continue
		}
		targets[key] = to
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// convertValidationErrors turns struct tag failures into ValidationErrors.
func convertValidationErrors(err error) ValidationErrors {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return ValidationErrors{{Field: "definition", Message: err.Error()}}
	}

	errs := make(ValidationErrors, 0, len(validationErrs))
	for _, e := range validationErrs {
		var message string
		switch e.Tag() {
		case "required":
			message = "field is required"
		case "min":
			message = fmt.Sprintf("must contain at least %s element(s)", e.Param())
		case "unique":
			message = "must not contain duplicates"
		case "len":
			if e.Kind() == reflect.String {
				message = fmt.Sprintf("must be exactly %s character(s)", e.Param())
			} else {
				message = fmt.Sprintf("must have exactly %s elements", e.Param())
			}
		case "oneof":
			message = fmt.Sprintf("must be one of: %s", e.Param())
		default:
			message = fmt.Sprintf("validation failed (%s)", e.Tag())
		}
		errs = append(errs, &ValidationError{Field: e.Field(), Message: message})
	}
	return errs
}

// Build validates the definition and constructs the automaton it describes.
func (d *Definition) Build() (Automaton, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}

	states := toStates(d.States)
	finalStates := toStates(d.FinalStates)
	alphabet := make([]Symbol, len(d.Alphabet))
	for i, s := range d.Alphabet {
		alphabet[i] = SymbolsOf(s)[0]
	}

	switch d.Kind {
	case KindDeterministic:
		table := NewTransitionTable()
		for _, t := range d.Transitions {
			table.Set(State(t[0]), SymbolsOf(t[1])[0], State(t[2]))
		}
		return NewDeterministic(states, alphabet, State(d.InitialState), finalStates, table), nil
	case KindNonDeterministic:
		relation := make([]Triple, len(d.Transitions))
		for i, t := range d.Transitions {
			relation[i] = Triple{Source: State(t[0]), Symbol: SymbolsOf(t[1])[0], Target: State(t[2])}
		}
		return NewNonDeterministic(states, alphabet, State(d.InitialState), finalStates, relation), nil
	default:
		return nil, &UnknownKindError{Kind: string(d.Kind)}
	}
}

// DefinitionOf describes an existing automaton as plain data. For a non-deterministic
// automaton the relation is kept; pass its Deterministic() to describe the derived automaton.
func DefinitionOf(name string, a Automaton) Definition {
	kind := KindDeterministic
	if _, ok := a.(*NonDeterministic); ok {
		kind = KindNonDeterministic
	}

	alphabet := make([]string, 0)
	for _, s := range a.Alphabet() {
		alphabet = append(alphabet, s.String())
	}
	transitions := make([][]string, 0)
	for _, t := range a.Triples() {
		transitions = append(transitions, []string{string(t.Source), t.Symbol.String(), string(t.Target)})
	}

	return Definition{
		Name:         name,
		Kind:         kind,
		States:       fromStates(a.States()),
		Alphabet:     alphabet,
		InitialState: string(a.InitialState()),
		FinalStates:  fromStates(a.FinalStates()),
		Transitions:  transitions,
	}
}

// ExampleDefinition returns the sample automaton offered to new users: binary words over
// states q0..q3 that are accepted once they contain "101".
func ExampleDefinition() Definition {
	return Definition{
		Name:         "Example",
		Kind:         KindDeterministic,
		States:       []string{"q0", "q1", "q2", "q3"},
		Alphabet:     []string{"0", "1"},
		InitialState: "q0",
		FinalStates:  []string{"q3"},
		Transitions: [][]string{
			{"q0", "0", "q0"},
			{"q0", "1", "q1"},
			{"q1", "0", "q2"},
			{"q1", "1", "q1"},
			{"q2", "0", "q0"},
			{"q2", "1", "q3"},
			{"q3", "0", "q3"},
			{"q3", "1", "q3"},
		},
		Words: []string{"101"},
	}
}

// WordReport is the recognition result for one word of a definition.
type WordReport struct {
	Word              string `json:"word" yaml:"word"`
	RecognitionResult `yaml:",inline"`
}

// DerivedReport describes the deterministic automaton derived from a non-deterministic one.
type DerivedReport struct {
	States       []State            `json:"states" yaml:"states"`
	InitialState State              `json:"initialState" yaml:"initialState"`
	FinalStates  []State            `json:"finalStates" yaml:"finalStates"`
	Transitions  []Triple           `json:"transitions" yaml:"transitions"`
	Completeness CompletenessReport `json:"completeness" yaml:"completeness"`
}

// Report is the outcome of evaluating a definition, ready for rendering.
type Report struct {
	Name         string             `json:"name" yaml:"name"`
	Kind         Kind               `json:"type" yaml:"type"`
	Completeness CompletenessReport `json:"completeness" yaml:"completeness"`
	Derived      *DerivedReport     `json:"derived,omitempty" yaml:"derived,omitempty"`
	Words        []WordReport       `json:"words" yaml:"words"`
}

// Evaluate builds the automaton, checks its completeness and runs its words followed by
// any extra words.
func (d *Definition) Evaluate(extraWords ...string) (*Report, error) {
	a, err := d.Build()
	if err != nil {
		return nil, fmt.Errorf("evaluating '%s': %w", d.Name, err)
	}
	return Evaluate(d.Name, a, append(slices.Clone(d.Words), extraWords...)...), nil
}

// Evaluate checks the completeness of an automaton and runs each word through it.
func Evaluate(name string, a Automaton, words ...string) *Report {
	report := &Report{
		Name:         name,
		Kind:         KindDeterministic,
		Completeness: a.IsComplete(),
		Words:        make([]WordReport, 0, len(words)),
	}

	if n, ok := a.(*NonDeterministic); ok {
		dfa := n.Deterministic()
		report.Kind = KindNonDeterministic
		report.Derived = &DerivedReport{
			States:       dfa.States(),
			InitialState: dfa.InitialState(),
			FinalStates:  dfa.FinalStates(),
			Transitions:  dfa.Triples(),
			Completeness: dfa.IsComplete(),
		}
	}

	for _, word := range words {
		report.Words = append(report.Words, WordReport{
			Word:              word,
			RecognitionResult: a.Recognizes(word),
		})
	}
	return report
}

func toStates(names []string) []State {
	states := make([]State, len(names))
	for i, name := range names {
		states[i] = State(name)
	}
	return states
}

func fromStates(states []State) []string {
	names := make([]string, len(states))
	for i, s := range states {
		names[i] = string(s)
	}
	return names
}

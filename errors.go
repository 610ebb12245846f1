package automata

import (
	"fmt"
	"strings"
)

// ArgumentError indicates an invalid argument was passed.
type ArgumentError struct {
	ParamName string
	Message   string
}

func (e *ArgumentError) Error() string {
	if e.ParamName != "" {
		return fmt.Sprintf("%s (parameter: %s)", e.Message, e.ParamName)
	}
	return e.Message
}

// ValidationError describes one violated rule of an automaton definition.
type ValidationError struct {
	// Field is the definition field at fault, e.g. "initialState" or "transitions[3]".
	Field string

	// Message describes the violation.
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors collects every violation found in a definition.
type ValidationErrors []*ValidationError

func (e ValidationErrors) Error() string {
	messages := make([]string, len(e))
	for i, err := range e {
		messages[i] = err.Error()
	}
	return fmt.Sprintf("invalid automaton definition: %s", strings.Join(messages, "; "))
}

// Fields returns the names of the fields at fault, in report order.
func (e ValidationErrors) Fields() []string {
	fields := make([]string, len(e))
	for i, err := range e {
		fields[i] = err.Field
	}
	return fields
}

// UnknownKindError is returned when a definition names an automaton kind that does not exist.
type UnknownKindError struct {
	Kind string
}

func (e *UnknownKindError) Error() string {
	return fmt.Sprintf("unknown automaton kind '%s'; expected '%s' or '%s'",
		e.Kind, KindDeterministic, KindNonDeterministic)
}

// UnknownDefinitionError is returned when a catalog has no definition with the requested name.
type UnknownDefinitionError struct {
	Name      string
	Available []string
}

func (e *UnknownDefinitionError) Error() string {
	if len(e.Available) == 0 {
		return fmt.Sprintf("no definition named '%s'; the catalog is empty", e.Name)
	}
	return fmt.Sprintf("no definition named '%s'. Available definitions: %s.",
		e.Name, strings.Join(e.Available, ", "))
}

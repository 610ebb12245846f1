package graph_test

import (
	"strings"
	"testing"

	"github.com/atlekbai/automata"
	"github.com/atlekbai/automata/graph"
)

func newTestDFA() *automata.Deterministic {
	table := automata.NewTransitionTable().
		Set("A", 'x', "B").
		Set("A", 'y', "C").
		Set("B", 'z', "A").
		Set("C", 'z', "A")
	return automata.NewDeterministic(
		[]automata.State{"A", "B", "C"},
		[]automata.Symbol{'x', 'y', 'z'},
		"A",
		[]automata.State{"C"},
		table,
	)
}

func newTestNFA() *automata.NonDeterministic {
	return automata.NewNonDeterministic(
		[]automata.State{"A", "B"},
		[]automata.Symbol{'a'},
		"A",
		[]automata.State{"B"},
		[]automata.Triple{{Source: "A", Symbol: 'a', Target: "A"}, {Source: "A", Symbol: 'a', Target: "B"}},
	)
}

func TestUmlDotGraph(t *testing.T) {
	dotGraph := graph.UmlDotGraph(newTestDFA())

	// Check basic structure
	if !strings.Contains(dotGraph, "digraph") {
		t.Error("expected DOT graph to contain 'digraph'")
	}
	if !strings.Contains(dotGraph, "init") {
		t.Error("expected DOT graph to contain 'init' node")
	}
	if !strings.Contains(dotGraph, "\"A\"") {
		t.Error("expected DOT graph to contain 'A'")
	}
	if !strings.Contains(dotGraph, "\"B\"") {
		t.Error("expected DOT graph to contain 'B'")
	}
	if !strings.Contains(dotGraph, "\"C\"") {
		t.Error("expected DOT graph to contain 'C'")
	}
	if !strings.HasSuffix(dotGraph, "}") {
		t.Error("expected DOT graph to be closed")
	}
}

func TestMermaidGraph(t *testing.T) {
	direction := graph.LeftToRight
	mermaidGraph := graph.MermaidGraph(newTestDFA(), &direction)

	// Check basic structure
	if !strings.Contains(mermaidGraph, "stateDiagram-v2") {
		t.Error("expected Mermaid graph to contain 'stateDiagram-v2'")
	}
	if !strings.Contains(mermaidGraph, "direction LR") {
		t.Error("expected Mermaid graph to contain 'direction LR'")
	}
	if !strings.Contains(mermaidGraph, "[*] --> A") {
		t.Error("expected Mermaid graph to contain initial transition")
	}
	if !strings.Contains(mermaidGraph, "C --> [*]") {
		t.Error("expected Mermaid graph to mark final state C")
	}
}

func TestMermaidGraphWithoutDirection(t *testing.T) {
	mermaidGraph := graph.MermaidGraph(newTestDFA(), nil)

	if !strings.Contains(mermaidGraph, "stateDiagram-v2") {
		t.Error("expected Mermaid graph to contain 'stateDiagram-v2'")
	}
	if strings.Contains(mermaidGraph, "direction") {
		t.Error("expected Mermaid graph not to contain 'direction' when not specified")
	}
}

func TestNewStateGraph(t *testing.T) {
	sg := graph.NewStateGraph(newTestDFA())

	if sg == nil {
		t.Fatal("expected non-nil StateGraph")
	}
	if len(sg.States) != 3 {
		t.Errorf("expected 3 states, got %d", len(sg.States))
	}
	if sg.InitialState == nil || sg.InitialState.StateName != "A" {
		t.Errorf("expected initial state A, got %+v", sg.InitialState)
	}
	if !sg.States["C"].Final || sg.States["A"].Final {
		t.Error("expected only C to be final")
	}
	if len(sg.Transitions) != 4 {
		t.Errorf("expected 4 transitions, got %d", len(sg.Transitions))
	}
	if len(sg.States["A"].Leaving) != 2 || len(sg.States["A"].Arriving) != 2 {
		t.Errorf("expected A to have 2 leaving and 2 arriving transitions, got %d and %d",
			len(sg.States["A"].Leaving), len(sg.States["A"].Arriving))
	}
}

func TestStateGraphKeepsDeclarationOrder(t *testing.T) {
	sg := graph.NewStateGraph(newTestDFA())

	expected := []string{"A", "B", "C"}
	if strings.Join(sg.Order, " ") != strings.Join(expected, " ") {
		t.Errorf("expected order %v, got %v", expected, sg.Order)
	}
}

func TestStateGraphMergesSymbols(t *testing.T) {
	// Declared in reverse alphabet order to check the merged label is still sorted by alphabet.
	table := automata.NewTransitionTable().
		Set("p", '1', "q").
		Set("p", '0', "q").
		Set("q", '0', "q").
		Set("q", '1', "q")
	dfa := automata.NewDeterministic(
		[]automata.State{"p", "q"},
		[]automata.Symbol{'0', '1'},
		"p",
		[]automata.State{"q"},
		table,
	)

	sg := graph.NewStateGraph(dfa)
	if len(sg.Transitions) != 2 {
		t.Fatalf("expected 2 merged transitions, got %d", len(sg.Transitions))
	}
	for _, transit := range sg.Transitions {
		if got := strings.Join(transit.Labels(), ","); got != "0,1" {
			t.Errorf("expected merged symbols 0,1, got %s", got)
		}
	}
	if !sg.Transitions[1].IsLoop() {
		t.Error("expected q -> q to be a loop")
	}
}

func TestUmlDotGraphStyle(t *testing.T) {
	style := graph.NewUmlDotGraphStyle()

	prefix := style.GetPrefix()
	if !strings.Contains(prefix, "digraph") {
		t.Error("expected prefix to contain 'digraph'")
	}
	if !strings.Contains(prefix, "node [shape=circle]") {
		t.Error("expected prefix to contain node style")
	}
}

func TestMermaidGraphStyle(t *testing.T) {
	sg := graph.NewStateGraph(newTestDFA())
	direction := graph.TopToBottom
	style := graph.NewMermaidGraphStyle(sg, &direction)

	prefix := style.GetPrefix()
	if !strings.Contains(prefix, "stateDiagram-v2") {
		t.Error("expected prefix to contain 'stateDiagram-v2'")
	}
	if !strings.Contains(prefix, "direction TB") {
		t.Error("expected prefix to contain 'direction TB'")
	}
}

func TestEscapeLabel(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"simple", "simple"},
		{`with"quotes`, `with\"quotes`},
		{`with\backslash`, `with\\backslash`},
		{`both"and\`, `both\"and\\`},
	}

	for _, tc := range tests {
		result := graph.EscapeLabel(tc.input)
		if result != tc.expected {
			t.Errorf("EscapeLabel(%q) = %q, expected %q", tc.input, result, tc.expected)
		}
	}
}

func TestSanitizeStateName(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"SimpleState", "SimpleState"},
		{"State With Spaces", "StateWithSpaces"},
		{"State-With-Dashes", "StateWithDashes"},
		{"State:With:Colons", "StateWithColons"},
		{"q0,q1,q2", "q0q1q2"},
	}

	for _, tc := range tests {
		result := graph.SanitizeStateName(tc.input)
		if result != tc.expected {
			t.Errorf("SanitizeStateName(%q) = %q, expected %q", tc.input, result, tc.expected)
		}
	}
}

func TestDirectionCode(t *testing.T) {
	tests := []struct {
		direction graph.MermaidGraphDirection
		expected  string
	}{
		{graph.TopToBottom, "TB"},
		{graph.BottomToTop, "BT"},
		{graph.LeftToRight, "LR"},
		{graph.RightToLeft, "RL"},
	}

	for _, tc := range tests {
		result := graph.DirectionCode(tc.direction)
		if result != tc.expected {
			t.Errorf("DirectionCode(%v) = %q, expected %q", tc.direction, result, tc.expected)
		}
		parsed, err := graph.ParseMermaidGraphDirection(tc.expected)
		if err != nil || parsed != tc.direction {
			t.Errorf("ParseMermaidGraphDirection(%q) = %v, %v", tc.expected, parsed, err)
		}
	}

	if _, err := graph.ParseMermaidGraphDirection("diagonal"); err == nil {
		t.Error("expected an error for an unknown direction")
	}
}

// =============================================================================
// DOT Graph Fixture Tests
// =============================================================================

func TestDotGraph_SimpleTransition(t *testing.T) {
	dfa := automata.NewDeterministic(
		[]automata.State{"A", "B"},
		[]automata.Symbol{'x'},
		"A",
		nil,
		automata.NewTransitionTable().Set("A", 'x', "B"),
	)

	expected := "digraph {\n" +
		"node [shape=circle]\n" +
		"rankdir=\"LR\"\n" +
		"\"A\" [label=\"A\"];\n" +
		"\"B\" [label=\"B\"];\n" +
		"\n\"A\" -> \"B\" [style=\"solid\", label=\"x\"];" +
		"\n init [label=\"\", shape=point];" +
		"\n init -> \"A\"[style = \"solid\"]" +
		"\n}"

	if dotGraph := graph.UmlDotGraph(dfa); dotGraph != expected {
		t.Errorf("unexpected graph.\nExpected:\n%s\nGot:\n%s", expected, dotGraph)
	}
}

func TestDotGraph_FinalStateIsDoubleCircle(t *testing.T) {
	dotGraph := graph.UmlDotGraph(newTestDFA())

	if !strings.Contains(dotGraph, `"C" [label="C", shape=doublecircle];`) {
		t.Errorf("Expected graph to draw C as final, got:\n%s", dotGraph)
	}
	if !strings.Contains(dotGraph, `"A" [label="A"];`) {
		t.Errorf("Expected graph to draw A as a plain state, got:\n%s", dotGraph)
	}
}

func TestDotGraph_SelfLoop(t *testing.T) {
	dotGraph := graph.UmlDotGraph(newTestNFA())

	if !strings.Contains(dotGraph, `"A" -> "A" [style="solid", label="a"];`) {
		t.Errorf("Expected graph to contain loop on A, got:\n%s", dotGraph)
	}
	if !strings.Contains(dotGraph, `"A" -> "B" [style="solid", label="a"];`) {
		t.Errorf("Expected graph to contain A->B transition, got:\n%s", dotGraph)
	}
}

func TestDotGraph_DerivedAutomaton(t *testing.T) {
	dotGraph := graph.UmlDotGraph(newTestNFA().Deterministic())

	if !strings.Contains(dotGraph, `"A,B" [label="A,B", shape=doublecircle];`) {
		t.Errorf("Expected graph to contain final subset state A,B, got:\n%s", dotGraph)
	}
	if !strings.Contains(dotGraph, `"A" -> "A,B"`) {
		t.Errorf("Expected graph to contain A -> A,B, got:\n%s", dotGraph)
	}
	if !strings.Contains(dotGraph, `"A,B" -> "A,B"`) {
		t.Errorf("Expected graph to contain loop on A,B, got:\n%s", dotGraph)
	}
}

func TestDotGraph_Deterministic(t *testing.T) {
	first := graph.UmlDotGraph(newTestDFA())
	for i := 0; i < 10; i++ {
		if got := graph.UmlDotGraph(newTestDFA()); got != first {
			t.Fatalf("expected identical output on every run, got:\n%s\nthen:\n%s", first, got)
		}
	}
}

// =============================================================================
// Mermaid Graph Fixture Tests
// =============================================================================

func TestMermaidGraph_SimpleTransition(t *testing.T) {
	dfa := automata.NewDeterministic(
		[]automata.State{"A", "B"},
		[]automata.Symbol{'x'},
		"A",
		[]automata.State{"B"},
		automata.NewTransitionTable().Set("A", 'x', "B"),
	)

	expected := "stateDiagram-v2" +
		"\n\tA --> B : x" +
		"\n[*] --> A" +
		"\nB --> [*]"

	if mermaidGraph := graph.MermaidGraph(dfa, nil); mermaidGraph != expected {
		t.Errorf("unexpected graph.\nExpected:\n%s\nGot:\n%s", expected, mermaidGraph)
	}
}

func TestMermaidGraph_SubsetStatesAreAliased(t *testing.T) {
	mermaidGraph := graph.MermaidGraph(newTestNFA().Deterministic(), nil)

	if !strings.Contains(mermaidGraph, "\tAB : A,B") {
		t.Errorf("Expected alias for A,B, got:\n%s", mermaidGraph)
	}
	if !strings.Contains(mermaidGraph, "\tA --> AB : a") {
		t.Errorf("Expected transition to alias, got:\n%s", mermaidGraph)
	}
	if !strings.Contains(mermaidGraph, "AB --> [*]") {
		t.Errorf("Expected final alias, got:\n%s", mermaidGraph)
	}
}

func TestMermaidGraph_AliasCollision(t *testing.T) {
	dfa := automata.NewDeterministic(
		[]automata.State{"AB", "A B"},
		[]automata.Symbol{'x'},
		"AB",
		nil,
		automata.NewTransitionTable().Set("AB", 'x', "A B"),
	)

	mermaidGraph := graph.MermaidGraph(dfa, nil)
	if !strings.Contains(mermaidGraph, "\tAB_1 : A B") {
		t.Errorf("Expected colliding alias to be numbered, got:\n%s", mermaidGraph)
	}
	if !strings.Contains(mermaidGraph, "\tAB --> AB_1 : x") {
		t.Errorf("Expected transition to numbered alias, got:\n%s", mermaidGraph)
	}
}

// Command automata evaluates finite automata described in a YAML catalog.
//
// Each definition is checked for completeness and run against its words. Reports are
// written to stdout as YAML or JSON; verdicts are logged to stderr.
//
//	automata -file catalog.yaml -name Example -word 1101,0
//	automata -file catalog.yaml -name "Ends with ab" -graph dot -derived
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"

	"github.com/atlekbai/automata"
	"github.com/atlekbai/automata/graph"
)

var (
	acceptedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#00AF00"))
	rejectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#D70000"))
)

// wordList collects -word values; it may be repeated and split on commas.
type wordList []string

func (w *wordList) String() string {
	return strings.Join(*w, ",")
}

func (w *wordList) Set(value string) error {
	*w = append(*w, strings.Split(value, ",")...)
	return nil
}

type options struct {
	file      string
	name      string
	words     wordList
	graph     string
	direction string
	derived   bool
	format    string
	debug     bool
	init      bool
}

func parseOptions(args []string, stderr io.Writer) (*options, error) {
	opts := &options{}
	fs := flag.NewFlagSet("automata", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.file, "file", "", "Catalog file (default: the built-in example)")
	fs.StringVar(&opts.name, "name", "", "Evaluate only the definition with this name")
	fs.Var(&opts.words, "word", "Extra word to recognize; repeatable, comma separated")
	fs.StringVar(&opts.graph, "graph", "none", "Render a graph instead of reports: none, dot or mermaid")
	fs.StringVar(&opts.direction, "direction", "LR", "Mermaid graph direction: TB, BT, LR or RL")
	fs.BoolVar(&opts.derived, "derived", false, "Graph the derived deterministic automaton of a non-deterministic one")
	fs.StringVar(&opts.format, "format", "yaml", "Report format: yaml or json")
	fs.BoolVar(&opts.debug, "debug", false, "Log recognition steps")
	fs.BoolVar(&opts.init, "init", false, "Print the built-in example catalog and exit")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	switch opts.graph {
	case "none", "dot", "mermaid":
	default:
		return nil, fmt.Errorf("unknown graph format '%s'", opts.graph)
	}
	switch opts.format {
	case "yaml", "json":
	default:
		return nil, fmt.Errorf("unknown report format '%s'", opts.format)
	}
	return opts, nil
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			log.Error("automata failed", "err", err)
		}
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	opts, err := parseOptions(args, stderr)
	if err != nil {
		return err
	}

	logger := log.NewWithOptions(stderr, log.Options{Prefix: "automata"})
	if opts.debug {
		logger.SetLevel(log.DebugLevel)
	}

	if opts.init {
		return automata.DefaultCatalog().Write(stdout)
	}

	catalog := automata.DefaultCatalog()
	if opts.file != "" {
		if catalog, err = automata.LoadCatalogFile(opts.file); err != nil {
			return err
		}
		logger.Debug("catalog loaded", "file", opts.file, "definitions", len(catalog.Definitions))
	}

	definitions := catalog.Definitions
	if opts.name != "" {
		def, err := catalog.Lookup(opts.name)
		if err != nil {
			return err
		}
		definitions = []automata.Definition{*def}
	}

	if opts.graph != "none" {
		return renderGraphs(definitions, opts, stdout, logger)
	}

	reports := make([]*automata.Report, 0, len(definitions))
	var failed []error
	for i := range definitions {
		report, err := definitions[i].Evaluate(opts.words...)
		if err != nil {
			logger.Error("invalid definition", "name", definitions[i].Name, "err", err)
			failed = append(failed, err)
			continue
		}
		logReport(logger, report)
		reports = append(reports, report)
	}

	if err := writeReports(stdout, opts.format, reports); err != nil {
		return err
	}
	return errors.Join(failed...)
}

func renderGraphs(definitions []automata.Definition, opts *options, stdout io.Writer, logger *log.Logger) error {
	direction, err := graph.ParseMermaidGraphDirection(opts.direction)
	if err != nil {
		return err
	}

	for i := range definitions {
		a, err := definitions[i].Build()
		if err != nil {
			return fmt.Errorf("building '%s': %w", definitions[i].Name, err)
		}
		if nfa, ok := a.(*automata.NonDeterministic); ok && opts.derived {
			a = nfa.Deterministic()
			logger.Debug("graphing derived automaton", "name", definitions[i].Name, "states", len(a.States()))
		}

		switch opts.graph {
		case "dot":
			fmt.Fprintln(stdout, graph.UmlDotGraph(a))
		case "mermaid":
			fmt.Fprintln(stdout, graph.MermaidGraph(a, &direction))
		}
	}
	return nil
}

func logReport(logger *log.Logger, report *automata.Report) {
	logger.Info("completeness",
		"name", report.Name,
		"type", report.Kind,
		"complete", report.Completeness.IsComplete,
		"missing", len(report.Completeness.MissingTransitions))

	for _, w := range report.Words {
		verdict := rejectedStyle.Render("rejected")
		if w.Recognized {
			verdict = acceptedStyle.Render("accepted")
		}
		logger.Info("word", "name", report.Name, "word", fmt.Sprintf("%q", w.Word), "verdict", verdict)

		for _, s := range w.Steps {
			target := "none"
			if to, ok := s.TargetState(); ok {
				target = string(to)
			}
			logger.Debug("step", "index", s.Index, "from", s.Source, "char", s.Symbol.String(), "to", target)
		}
	}
}

func writeReports(w io.Writer, format string, reports []*automata.Report) error {
	switch format {
	case "json":
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(reports)
	default:
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		if err := encoder.Encode(reports); err != nil {
			return err
		}
		return encoder.Close()
	}
}

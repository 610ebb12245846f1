package automata

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Catalog is a named collection of automaton definitions, as saved by an editor.
type Catalog struct {
	Definitions []Definition `json:"automata" yaml:"automata"`
}

// DefaultCatalog returns a catalog holding only the example definition.
func DefaultCatalog() *Catalog {
	return &Catalog{Definitions: []Definition{ExampleDefinition()}}
}

// LoadCatalog decodes a YAML catalog. Definitions are not validated; see Catalog.Validate.
func LoadCatalog(r io.Reader) (*Catalog, error) {
	var catalog Catalog
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&catalog); err != nil {
		if errors.Is(err, io.EOF) {
			return &catalog, nil
		}
		return nil, fmt.Errorf("decoding catalog: %w", err)
	}
	return &catalog, nil
}

// LoadCatalogFile reads a YAML catalog from path.
func LoadCatalogFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening catalog: %w", err)
	}
	defer f.Close()

	catalog, err := LoadCatalog(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return catalog, nil
}

// Write encodes the catalog as YAML.
func (c *Catalog) Write(w io.Writer) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(c); err != nil {
		return fmt.Errorf("encoding catalog: %w", err)
	}
	return encoder.Close()
}

// Names returns the definition names in catalog order.
func (c *Catalog) Names() []string {
	names := make([]string, len(c.Definitions))
	for i, d := range c.Definitions {
		names[i] = d.Name
	}
	return names
}

// Lookup returns the first definition with the given name.
func (c *Catalog) Lookup(name string) (*Definition, error) {
	for i := range c.Definitions {
		if c.Definitions[i].Name == name {
			return &c.Definitions[i], nil
		}
	}
	return nil, &UnknownDefinitionError{Name: name, Available: c.Names()}
}

// Validate validates every definition, reporting failures by definition name.
func (c *Catalog) Validate() error {
	var errs []error
	for i := range c.Definitions {
		d := &c.Definitions[i]
		if err := d.Validate(); err != nil {
			errs = append(errs, fmt.Errorf("definition %d (%q): %w", i, d.Name, err))
		}
	}
	return errors.Join(errs...)
}

package propgen

import (
	"errors"
	"fmt"
	"os"
	"unicode"

	"github.com/pelletier/go-toml/v2"
)

// ErrInvalidSchema is returned when the TOML input is inconsistent.
var ErrInvalidSchema = errors.New("invalid property schema")

// File is a parsed property description.
type File struct {
	Package    string     `toml:"package"`
	Tables     []Table    `toml:"table"`
	Properties []Property `toml:"property"`
}

// Table describes one node type's descriptor table.
type Table struct {
	Name     string `toml:"name"`
	Parent   string `toml:"parent"`
	Receiver string `toml:"receiver"`
}

// Property describes one registered property.
type Property struct {
	Owner    string   `toml:"owner"`
	Name     string   `toml:"name"`
	Type     string   `toml:"type"`
	Default  string   `toml:"default"`
	Flags    []string `toml:"flags"`
	Coerce   string   `toml:"coerce"`
	Equal    string   `toml:"equal"`
	Changed  string   `toml:"changed"`
	Attached bool     `toml:"attached"`
	Doc      string   `toml:"doc"`
}

var validFlags = map[string]bool{
	"AffectsMeasure":       true,
	"AffectsArrange":       true,
	"AffectsParentMeasure": true,
	"AffectsParentArrange": true,
	"AffectsRender":        true,
}

// Parse decodes and validates a property description.
func Parse(data []byte) (*File, error) {
	var f File
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse property schema: %w", err)
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

// ParseFile reads and parses the description at path.
func ParseFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// Validate checks names, references and flags.
func (f *File) Validate() error {
	if f.Package == "" {
		return fmt.Errorf("%w: missing package", ErrInvalidSchema)
	}

	tables := make(map[string]bool, len(f.Tables))
	for _, t := range f.Tables {
		if !isIdent(t.Name) {
			return fmt.Errorf("%w: table name %q", ErrInvalidSchema, t.Name)
		}
		if tables[t.Name] {
			return fmt.Errorf("%w: table %q declared twice", ErrInvalidSchema, t.Name)
		}
		if t.Parent != "" && !tables[t.Parent] {
			return fmt.Errorf("%w: table %q has unknown parent %q (parents must come first)", ErrInvalidSchema, t.Name, t.Parent)
		}
		if !isIdent(t.Receiver) {
			return fmt.Errorf("%w: table %q receiver %q", ErrInvalidSchema, t.Name, t.Receiver)
		}
		tables[t.Name] = true
	}

	seen := make(map[string]bool, len(f.Properties))
	for _, p := range f.Properties {
		full := p.Owner + "." + p.Name
		if !tables[p.Owner] {
			return fmt.Errorf("%w: property %s has unknown owner", ErrInvalidSchema, full)
		}
		if !isIdent(p.Name) {
			return fmt.Errorf("%w: property name %q", ErrInvalidSchema, p.Name)
		}
		if seen[full] {
			return fmt.Errorf("%w: property %s declared twice", ErrInvalidSchema, full)
		}
		seen[full] = true
		if p.Type == "" || p.Default == "" {
			return fmt.Errorf("%w: property %s needs a type and a default", ErrInvalidSchema, full)
		}
		for _, flag := range p.Flags {
			if !validFlags[flag] {
				return fmt.Errorf("%w: property %s has unknown flag %q", ErrInvalidSchema, full, flag)
			}
		}
	}
	return nil
}

func (f *File) table(name string) Table {
	for _, t := range f.Tables {
		if t.Name == name {
			return t
		}
	}
	return Table{}
}

func isIdent(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		if r != '_' && !unicode.IsLetter(r) && (i == 0 || !unicode.IsDigit(r)) {
			return false
		}
	}
	return true
}

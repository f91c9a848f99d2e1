package propgen

import (
	"bytes"
	"fmt"
	"go/format"
	"strings"

	"golang.org/x/tools/imports"
)

// PropertyImport is the import path of the property runtime used by
// generated code.
const PropertyImport = "github.com/grindlemire/go-panels/internal/property"

// Generator turns a property description into Go source.
type Generator struct {
	buf        bytes.Buffer
	indent     int
	sourceFile string // original .toml filename for header comment

	// SkipImports uses format.Source instead of imports.Process (faster for tests)
	SkipImports bool
}

// NewGenerator creates a new code generator.
func NewGenerator() *Generator {
	return &Generator{}
}

// Generate produces formatted Go source for f.
func (g *Generator) Generate(f *File, sourceFile string) ([]byte, error) {
	g.buf.Reset()
	g.indent = 0
	g.sourceFile = sourceFile

	g.generateHeader()
	g.writef("package %s\n\n", f.Package)
	g.generateImports(f)
	g.generateTables(f)
	for _, p := range f.Properties {
		g.generateRegistration(p)
	}
	for _, p := range f.Properties {
		if p.Attached {
			g.generateAttachedAccessors(p)
		} else {
			g.generateAccessors(f.table(p.Owner), p)
		}
	}

	if g.SkipImports {
		out, err := format.Source(g.buf.Bytes())
		if err != nil {
			return nil, fmt.Errorf("failed to format generated code: %w", err)
		}
		return out, nil
	}

	out, err := imports.Process(g.sourceFile, g.buf.Bytes(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to process imports: %w", err)
	}
	return out, nil
}

func (g *Generator) generateHeader() {
	g.writeln("// Code generated by panels generate. DO NOT EDIT.")
	if g.sourceFile != "" {
		g.writef("// Source: %s\n", g.sourceFile)
	}
	g.writeln("")
}

func (g *Generator) generateImports(f *File) {
	usesMath := false
	for _, p := range f.Properties {
		if strings.Contains(p.Default, "math.") {
			usesMath = true
			break
		}
	}

	g.writeln("import (")
	g.indent++
	if usesMath {
		g.writeln(`"math"`)
		g.writeln("")
	}
	g.writef("%q\n", PropertyImport)
	g.indent--
	g.writeln(")")
	g.writeln("")
}

func (g *Generator) generateTables(f *File) {
	if len(f.Tables) == 0 {
		return
	}
	g.writeln("var (")
	g.indent++
	for _, t := range f.Tables {
		parent := "nil"
		if t.Parent != "" {
			parent = tableVar(t.Parent)
		}
		g.writef("%s = property.NewTable(%q, %s)\n", tableVar(t.Name), t.Name, parent)
	}
	g.indent--
	g.writeln(")")
	g.writeln("")
}

func (g *Generator) generateRegistration(p Property) {
	register := "Register"
	if p.Attached {
		register = "RegisterAttached"
	}
	g.writef("var %s = property.%s(%s, %q, property.Metadata[%s]{\n",
		propertyVar(p), register, tableVar(p.Owner), p.Name, p.Type)
	g.indent++
	g.writef("Default: %s,\n", p.Default)
	g.writef("Flags: %s,\n", flagExpr(p.Flags))
	if p.Coerce != "" {
		g.writef("Coerce: %s,\n", p.Coerce)
	}
	if p.Equal != "" {
		g.writef("Equal: %s,\n", p.Equal)
	}
	if p.Changed != "" {
		g.writef("Changed: %s,\n", p.Changed)
	}
	g.indent--
	g.writeln("})")
	g.writeln("")
}

func (g *Generator) generateAccessors(t Table, p Property) {
	r := t.Receiver
	if p.Doc != "" {
		g.writef("// %s %s\n", p.Name, p.Doc)
	}
	g.writef("func (%s *%s) %s() %s {\n", r, t.Name, p.Name, p.Type)
	g.indent++
	g.writef("return %s.Get(%s)\n", propertyVar(p), r)
	g.indent--
	g.writeln("}")
	g.writeln("")

	g.writef("// Set%s sets %s.\n", p.Name, p.Name)
	g.writef("func (%s *%s) Set%s(v %s) {\n", r, t.Name, p.Name, p.Type)
	g.indent++
	g.writef("%s.Set(%s, v)\n", propertyVar(p), r)
	g.indent--
	g.writeln("}")
	g.writeln("")
}

func (g *Generator) generateAttachedAccessors(p Property) {
	full := p.Owner + "." + p.Name
	comment := fmt.Sprintf("// Get%s returns the %s value attached to e.", p.Name, full)
	if p.Doc != "" {
		comment += fmt.Sprintf(" %s %s", full, p.Doc)
	}
	g.writeln(comment)
	g.writef("func Get%s(e Element) %s {\n", p.Name, p.Type)
	g.indent++
	g.writef("return %s.Get(e)\n", propertyVar(p))
	g.indent--
	g.writeln("}")
	g.writeln("")

	g.writef("// Set%s attaches a %s value to e.\n", p.Name, full)
	g.writef("func Set%s(e Element, v %s) {\n", p.Name, p.Type)
	g.indent++
	g.writef("%s.Set(e, v)\n", propertyVar(p))
	g.indent--
	g.writeln("}")
	g.writeln("")
}

func flagExpr(flags []string) string {
	if len(flags) == 0 {
		return "property.None"
	}
	parts := make([]string, len(flags))
	for i, f := range flags {
		parts[i] = "property." + f
	}
	return strings.Join(parts, " | ")
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}

func tableVar(name string) string {
	return lowerFirst(name) + "Table"
}

func propertyVar(p Property) string {
	return lowerFirst(p.Owner) + p.Name + "Property"
}

// writef writes a formatted string with indentation.
func (g *Generator) writef(format string, args ...any) {
	g.writeIndent()
	fmt.Fprintf(&g.buf, format, args...)
}

// writeln writes a line with indentation.
func (g *Generator) writeln(s string) {
	if s == "" {
		g.buf.WriteByte('\n')
		return
	}
	g.writeIndent()
	g.buf.WriteString(s)
	g.buf.WriteByte('\n')
}

// writeIndent writes the current indentation.
func (g *Generator) writeIndent() {
	for i := 0; i < g.indent; i++ {
		g.buf.WriteByte('\t')
	}
}

package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/mod/modfile"
	"golang.org/x/sync/errgroup"

	"github.com/grindlemire/go-panels/internal/propgen"
)

// modulePath is the module generated accessors must live in: they import
// its internal property package.
const modulePath = "github.com/grindlemire/go-panels"

// runGenerate implements the generate subcommand.
// It turns property schemas (.toml) into Go accessor files.
func runGenerate(args []string) error {
	fs := flag.NewFlagSet("generate", flag.ContinueOnError)
	output := fs.String("o", "", "Output file (only with a single input)")
	verbose := fs.Bool("v", false, "Verbose output")

	if err := fs.Parse(args); err != nil {
		return err
	}

	files := fs.Args()
	if len(files) == 0 {
		return fmt.Errorf("no schema files given")
	}
	if *output != "" && len(files) > 1 {
		return fmt.Errorf("-o requires exactly one input file")
	}

	var g errgroup.Group
	for _, inputPath := range files {
		inputPath := inputPath
		outputPath := *output
		if outputPath == "" {
			outputPath = outputFileName(inputPath)
		}
		g.Go(func() error {
			if *verbose {
				fmt.Printf("Processing %s -> %s\n", inputPath, outputPath)
			}
			if err := generateFile(inputPath, outputPath); err != nil {
				return fmt.Errorf("%s: %w", inputPath, err)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	if *verbose {
		fmt.Printf("Successfully generated %d file(s)\n", len(files))
	}
	return nil
}

// outputFileName converts a schema filename to its output .go filename.
// Examples:
//
//	props.toml       -> props_gen.go
//	extra-props.toml -> extra_props_gen.go
func outputFileName(inputPath string) string {
	dir := filepath.Dir(inputPath)
	name := strings.TrimSuffix(filepath.Base(inputPath), ".toml")
	name = strings.ReplaceAll(name, "-", "_")
	return filepath.Join(dir, name+"_gen.go")
}

// generateFile parses a schema and writes the generated accessors.
func generateFile(inputPath, outputPath string) error {
	if err := checkModule(filepath.Dir(outputPath)); err != nil {
		return err
	}

	f, err := propgen.ParseFile(inputPath)
	if err != nil {
		return err
	}

	output, err := propgen.NewGenerator().Generate(f, filepath.Base(inputPath))
	if err != nil {
		return fmt.Errorf("generating code: %w", err)
	}

	if err := os.WriteFile(outputPath, output, 0644); err != nil {
		return fmt.Errorf("writing file: %w", err)
	}
	return nil
}

// checkModule finds the go.mod governing dir and rejects modules other than
// this one, where the generated import of the internal property package
// would not compile.
func checkModule(dir string) error {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return err
	}
	for {
		data, err := os.ReadFile(filepath.Join(abs, "go.mod"))
		switch {
		case err == nil:
			path := modfile.ModulePath(data)
			if path != modulePath && !strings.HasPrefix(path, modulePath+"/") {
				return fmt.Errorf("output is in module %q; generated code only builds inside %s", path, modulePath)
			}
			return nil
		case !errors.Is(err, os.ErrNotExist):
			return fmt.Errorf("reading go.mod: %w", err)
		}
		parent := filepath.Dir(abs)
		if parent == abs {
			return fmt.Errorf("no go.mod found above %s", dir)
		}
		abs = parent
	}
}

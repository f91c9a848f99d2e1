// Package main provides the panels CLI.
//
// Usage:
//
//	panels demo [options]              Lay out a sample tree and draw it
//	panels props [type...]             List the registered properties
//	panels generate [options] file...  Generate property accessors
//	panels config [path]               Print the effective configuration
//	panels help                        Show help
//
// Examples:
//
//	panels demo -w 100 -h 30          Draw the demo at a fixed size
//	panels demo -tree                 Print the arranged tree instead
//	panels props Grid DockPanel       Show what a Grid and a DockPanel accept
//	panels generate -o props_gen.go props.toml
package main

import (
	"fmt"
	"os"
)

const version = "0.1.0"

const usage = `panels - retained-mode layout engine tools

Usage:
  panels <command> [options] [args...]

Commands:
  demo        Lay out a sample tree and draw it with box characters
  props       List the registered properties of every element type
  generate    Generate property accessors from a TOML schema
  config      Print the effective configuration
  version     Print version information
  help        Show this help message

Examples:
  panels demo                          Draw the demo at the terminal size
  panels demo -w 100 -h 30 -tree       Print bounds of every node at 100x30
  panels demo -config panels.toml      Use a configuration file
  panels props Grid                    Show the properties a Grid accepts
  panels generate -o props_gen.go props.toml
  panels config                        Print defaults merged with panels.toml

For more information, see https://github.com/grindlemire/go-panels
`

func main() {
	if len(os.Args) < 2 {
		fmt.Print(usage)
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "demo":
		if err := runDemo(args); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	case "props":
		if err := runProps(args); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	case "generate":
		if err := runGenerate(args); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	case "config":
		if err := runConfig(args); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	case "version":
		fmt.Printf("panels version %s\n", version)
	case "help", "-h", "--help":
		fmt.Print(usage)
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n\n", command)
		fmt.Print(usage)
		os.Exit(1)
	}
}

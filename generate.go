//go:build ignore

package main

// This file exists solely to provide a go:generate directive at the project root.
// Run `go generate` to regenerate props_gen.go from props.toml.
//
// Usage:
//   go generate

//go:generate go run ./cmd/panels generate -o props_gen.go props.toml

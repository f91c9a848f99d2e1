package main

import (
	"fmt"
	"os"

	"github.com/grindlemire/go-panels/internal/config"
)

// runConfig implements the config subcommand. It prints the configuration
// loaded from the given path (default panels.toml), or the defaults when the
// file does not exist.
func runConfig(args []string) error {
	path := config.DefaultFile
	switch len(args) {
	case 0:
	case 1:
		path = args[0]
	default:
		return fmt.Errorf("config takes at most one path")
	}

	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	data, err := cfg.Marshal()
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(data)
	return err
}

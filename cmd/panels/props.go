package main

import (
	"fmt"
	"slices"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	panels "github.com/grindlemire/go-panels"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// runProps implements the props subcommand. With no arguments every element
// type is listed; otherwise only the named types.
func runProps(args []string) error {
	known := map[string]bool{}
	for _, t := range panels.Properties() {
		known[t.Name()] = true
	}
	for _, name := range args {
		if !known[name] {
			return fmt.Errorf("unknown element type %q", name)
		}
	}

	for _, t := range panels.Properties() {
		if len(args) > 0 && !slices.Contains(args, t.Name()) {
			continue
		}
		heading := titleStyle.Render(t.Name())
		if p := t.Parent(); p != nil {
			heading += dimStyle.Render(" (inherits " + p.Name() + ")")
		}
		fmt.Println(heading)

		own := t.Own()
		if len(own) == 0 {
			fmt.Println(dimStyle.Render("  no properties of its own"))
			fmt.Println()
			continue
		}

		tbl := table.New().
			Border(lipgloss.NormalBorder()).
			Headers("Property", "Type", "Default", "Flags").
			StyleFunc(func(row, col int) lipgloss.Style {
				if row == table.HeaderRow {
					return headerStyle
				}
				return cellStyle
			})
		for _, d := range own {
			name := d.Name
			if d.Attached {
				name += " (attached)"
			}
			tbl.Row(name, d.ValueType(), fmt.Sprint(d.DefaultValue()), d.Flags.String())
		}
		fmt.Println(tbl.Render())
		fmt.Println()
	}
	return nil
}

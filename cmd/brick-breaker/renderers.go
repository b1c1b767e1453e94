package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/brick-breaker/internal/registry"
)

var renderersCmd = &cobra.Command{
	Use:   "renderers",
	Short: "List all render drivers",
	Long:  `Shows the render drivers available to the trace command.`,
	Args:  cobra.NoArgs,
	Run:   runRenderers,
}

func runRenderers(cmd *cobra.Command, _ []string) {
	drivers := registry.List()
	out := cmd.OutOrStdout()

	if len(drivers) == 0 {
		fmt.Fprintln(out, "No renderers available.")
		return
	}

	fmt.Fprintln(out, "Available renderers:")
	fmt.Fprintln(out)

	// Calculate column widths
	maxNameLen := 4 // "Name" header
	for _, d := range drivers {
		if len(d.Name) > maxNameLen {
			maxNameLen = len(d.Name)
		}
	}

	// Print header
	fmt.Fprintf(out, "  %-*s  %s\n", maxNameLen, "Name", "Description")
	fmt.Fprintf(out, "  %-*s  %s\n", maxNameLen, "----", "-----------")

	// Print drivers
	for _, d := range drivers {
		fmt.Fprintf(out, "  %-*s  %s\n", maxNameLen, d.Name, d.Description)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Run 'brick-breaker trace --renderer <name>' to use one.")
}

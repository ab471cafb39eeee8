package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for shapereport.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "shapereport",
		Short: "Localized area and perimeter reports for geometric shapes",
		Long: `shapereport summarizes a list of squares, circles, equilateral triangles,
trapezoids and rectangles: how many of each kind there are, their summed
areas and perimeters, and the grand totals.

Reports are localized to Spanish, English or Portuguese and can be written
as HTML, plain text, Markdown or JSON. Rendered reports can be kept in a
local history database.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")

	cmd.AddCommand(NewRenderCmd())
	cmd.AddCommand(NewHistoryCmd())
	cmd.AddCommand(NewInitCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

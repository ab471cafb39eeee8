package main

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"

	"github.com/nao1215/shapereport/internal/config"
	"github.com/spf13/cobra"
)

//go:embed templates/shapes.yaml
var shapeTemplate embed.FS

// shapeTemplatePath is the path of the example shape file inside shapeTemplate.
const shapeTemplatePath = "templates/shapes.yaml"

// NewInitCmd creates the init command.
func NewInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create an example shape file",
		Long: `Init writes an example shape file, shapes.yaml by default.

A shape file is YAML with three keys:
  language  default report language (es, en, pt), overridden by --lang
  format    default output format (html, text, markdown, json), overridden by --format
  shapes    the shapes to report on, each with a kind and its dimensions

The example holds one shape of every kind, so it also documents which
dimensions each kind needs. Edit or replace the entries, then render it.
"shapereport render" finds shapes.yaml in the current directory or in
~/.config/shapereport without -f.

Examples:
  # Create shapes.yaml in the current directory
  shapereport init

  # Create the shape file that render finds from any directory
  shapereport init -o ~/.config/shapereport/shapes.yaml

  # Replace an existing shape file with the example
  shapereport init -f`,
		RunE: runInitCmd,
	}

	cmd.Flags().StringP("output", "o", config.DefaultShapeFile,
		"Output file path for the shape file")
	cmd.Flags().BoolP("force", "f", false,
		"Overwrite existing shape file")

	return cmd
}

// runInitCmd executes the init command.
func runInitCmd(cmd *cobra.Command, _ []string) error {
	outputPath, err := cmd.Flags().GetString("output")
	if err != nil {
		return err
	}

	force, err := cmd.Flags().GetBool("force")
	if err != nil {
		return err
	}

	if !force {
		if _, err := os.Stat(outputPath); err == nil {
			return fmt.Errorf("shape file already exists: %s (use -f to overwrite)", outputPath)
		}
	}

	content, err := shapeTemplate.ReadFile(shapeTemplatePath)
	if err != nil {
		return fmt.Errorf("failed to read shape file template: %w", err)
	}

	file, err := config.ParseShapeFile(content)
	if err != nil {
		return fmt.Errorf("invalid shape file template: %w", err)
	}

	dir := filepath.Dir(outputPath)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	if err := os.WriteFile(outputPath, content, 0600); err != nil {
		return fmt.Errorf("failed to write shape file: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Created shape file with %d example shapes: %s\n", len(file.Shapes), outputPath)
	fmt.Fprintf(out, "Language: %s, format: %s\n", file.Language, file.Format)
	fmt.Fprintf(out, "\nRender it with:\n  shapereport render -f %s\n", outputPath)
	fmt.Fprintf(out, "Add shapes from the command line with:\n  shapereport render -f %s circle:2 rectangle:3,4\n", outputPath)

	return nil
}

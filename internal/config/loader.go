package config

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultShapeFile is the file name searched for when no input is given.
const DefaultShapeFile = "shapes.yaml"

// ErrConfigNotFound is returned when the shape file does not exist.
var ErrConfigNotFound = errors.New("shape file not found")

// LoadShapeFile loads a shape file from a YAML document.
// If the file does not exist, it returns ErrConfigNotFound.
func LoadShapeFile(path string) (*File, error) {
	data, err := os.ReadFile(path) //nolint:gosec // User-provided shape file path is intentional
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	return ParseShapeFile(data)
}

// ParseShapeFile decodes a shape file from YAML data.
func ParseShapeFile(data []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, err
	}

	if f.Shapes == nil {
		f.Shapes = make([]ShapeSpec, 0)
	}

	return &f, nil
}

// FindShapeFile searches for the shape file in the following order:
// 1. If path is specified, use it directly
// 2. Look for shapes.yaml in the current directory
// 3. Look for shapes.yaml in the XDG config directory
//
// Returns the path to the shape file if found, or empty string if not found.
func FindShapeFile(path string) string {
	if path != "" {
		if _, err := os.Stat(path); err == nil {
			return path
		}
		return ""
	}

	cwd, err := os.Getwd()
	if err == nil {
		cwdFile := filepath.Join(cwd, DefaultShapeFile)
		if _, err := os.Stat(cwdFile); err == nil {
			return cwdFile
		}
	}

	xdgFile := filepath.Join(XDGConfigDir(), DefaultShapeFile)
	if _, err := os.Stat(xdgFile); err == nil {
		return xdgFile
	}

	return ""
}

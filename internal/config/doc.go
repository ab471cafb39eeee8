// Package config provides configuration structures and utilities for
// shapereport. It defines the options collected from CLI flags, the YAML
// shape files read by the render command, and the XDG directories used for
// configuration and report history.
package config

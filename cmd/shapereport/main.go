// Package main provides the entry point for the shapereport CLI.
//
// shapereport prints a per-kind summary of the areas and perimeters of a
// list of geometric shapes, localized to Spanish, English or Portuguese.
//
// Usage:
//
//	shapereport render square:5 circle:4 --lang es
//	shapereport render -f shapes.yaml --all-languages
//
// See --help for all available options.
package main

// main is the entry point for shapereport.
func main() {
	Execute()
}

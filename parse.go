package apetag

import (
	"iter"

	"github.com/simonhull/apetag/internal/parsing"
	"github.com/simonhull/apetag/internal/registry"
)

// KeySpec is an alias to registry.KeySpec.
type KeySpec = registry.KeySpec

// ParseTags parses "key=value" arguments against the built-in key table.
//
// Keys match case-insensitively and are stored with their canonical
// spelling. Numbers must be unsigned 32-bit decimals; dates YYYY, YYYY-MM,
// or YYYY-MM-DD.
//
// Example:
//
//	items, err := apetag.ParseTags([]string{"artist=John Doe", "Track=7"})
func ParseTags(args []string) ([]TagItem, error) {
	return parsing.NewParser(nil).ParseArgs(args)
}

// ParseTagFile reads tag items from an HCL file of key = value attributes.
// Underscores in attribute names stand for spaces.
func ParseTagFile(path string) ([]TagItem, error) {
	return parsing.NewParser(nil).ParseTagFile(path)
}

// Keys iterates over the built-in tag keys in table order.
func Keys() iter.Seq[KeySpec] {
	return registry.DefaultKeys().All()
}

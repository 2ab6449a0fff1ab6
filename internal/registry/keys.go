package registry

import (
	"fmt"
	"iter"

	"golang.org/x/text/cases"

	"github.com/simonhull/apetag/internal/types"
)

// KeySpec describes a recognized tag key.
type KeySpec struct {
	// Name is the canonical spelling written to the tag.
	Name        string
	Description string
	Kind        types.Kind
}

// Keys is an immutable, case-insensitive table of recognized tag keys.
type Keys struct {
	byFold map[string]KeySpec
	specs  []KeySpec
}

// NewKeys builds a key table. Names that differ only in case are rejected.
func NewKeys(specs ...KeySpec) (*Keys, error) {
	k := &Keys{
		byFold: make(map[string]KeySpec, len(specs)),
		specs:  make([]KeySpec, 0, len(specs)),
	}
	for _, spec := range specs {
		if spec.Name == "" {
			return nil, fmt.Errorf("key spec with empty name")
		}
		if spec.Kind == types.KindInvalid {
			return nil, fmt.Errorf("key %q: no value kind", spec.Name)
		}
		folded := foldKey(spec.Name)
		if prev, ok := k.byFold[folded]; ok {
			return nil, fmt.Errorf("key %q duplicates %q", spec.Name, prev.Name)
		}
		k.byFold[folded] = spec
		k.specs = append(k.specs, spec)
	}
	return k, nil
}

// Lookup finds the spec for name, ignoring case.
func (k *Keys) Lookup(name string) (KeySpec, bool) {
	spec, ok := k.byFold[foldKey(name)]
	return spec, ok
}

// All iterates over the specs in table order.
func (k *Keys) All() iter.Seq[KeySpec] {
	return func(yield func(KeySpec) bool) {
		for _, spec := range k.specs {
			if !yield(spec) {
				return
			}
		}
	}
}

// foldKey returns the case-folded form of name. A Caser is not safe for
// concurrent use, so each call gets its own.
func foldKey(name string) string {
	return cases.Fold().String(name)
}

// Len returns the number of keys in the table.
func (k *Keys) Len() int {
	return len(k.specs)
}

// DefaultKeySpecs are the keys accepted on the command line.
var DefaultKeySpecs = []KeySpec{
	{Name: "Album", Kind: types.KindString, Description: "Album name"},
	{Name: "Artist", Kind: types.KindString, Description: "Performing artist"},
	{Name: "Comment", Kind: types.KindString, Description: "User comments"},
	{Name: "Composer", Kind: types.KindString, Description: "Name of the original composer"},
	{Name: "Copyright", Kind: types.KindString, Description: "Copyright holder"},
	{Name: "Genre", Kind: types.KindString, Description: "Genre, normally English terms"},
	{Name: "Language", Kind: types.KindString, Description: "Used language for music/words"},
	{Name: "Media", Kind: types.KindString, Description: "Source media"},
	{Name: "Publisher", Kind: types.KindString, Description: "Record label or publisher"},
	{Name: "Record Date", Kind: types.KindDate, Description: "Record date"},
	{Name: "Record Location", Kind: types.KindString, Description: "Record location"},
	{Name: "Subtitle", Kind: types.KindString, Description: "Additional sub title"},
	{Name: "Title", Kind: types.KindString, Description: "Music piece title"},
	{Name: "Track", Kind: types.KindNumber, Description: "Track number"},
	{Name: "Year", Kind: types.KindDate, Description: "Year"},
}

// DefaultKeys returns the table built from DefaultKeySpecs.
func DefaultKeys() *Keys {
	return defaultKeys
}

var defaultKeys = mustKeys(DefaultKeySpecs...)

func mustKeys(specs ...KeySpec) *Keys {
	k, err := NewKeys(specs...)
	if err != nil {
		panic(err)
	}
	return k
}

package parsing

import (
	"fmt"
	"slices"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"

	"github.com/simonhull/apetag/internal/types"
)

// RawTag is a key and its textual value as read from a tag file.
type RawTag struct {
	Key   string
	Value string
	// Line is the 1-based source line of the attribute.
	Line int
}

// LoadTagFile reads an HCL file of tag attributes, one per tag:
//
//	artist      = "John Doe"
//	track       = 7
//	year        = "2021"
//	record_date = "2020-05-03"
//
// Underscores in attribute names stand for spaces, so record_date names
// the "Record Date" key. Tags are returned in source order.
func LoadTagFile(path string) ([]RawTag, error) {
	file, diags := hclparse.NewParser().ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse tag file %s: %w", path, diags)
	}
	return rawTagsFromBody(path, file.Body)
}

// ParseTagSource is LoadTagFile for in-memory source.
func ParseTagSource(src []byte, filename string) ([]RawTag, error) {
	file, diags := hclparse.NewParser().ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse tag file %s: %w", filename, diags)
	}
	return rawTagsFromBody(filename, file.Body)
}

func rawTagsFromBody(filename string, body hcl.Body) ([]RawTag, error) {
	attrs, diags := body.JustAttributes()
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode tag file %s: %w", filename, diags)
	}

	// JustAttributes returns a map; restore the order the user wrote.
	ordered := make([]*hcl.Attribute, 0, len(attrs))
	for _, attr := range attrs {
		ordered = append(ordered, attr)
	}
	slices.SortFunc(ordered, func(a, b *hcl.Attribute) int {
		return a.Range.Start.Byte - b.Range.Start.Byte
	})

	tags := make([]RawTag, 0, len(ordered))
	for _, attr := range ordered {
		val, valDiags := attr.Expr.Value(nil)
		if valDiags.HasErrors() {
			return nil, fmt.Errorf("%s:%d: %w", filename, attr.Range.Start.Line, valDiags)
		}
		text, err := ctyText(val)
		if err != nil {
			return nil, fmt.Errorf("%s:%d: attribute %q: %w", filename, attr.Range.Start.Line, attr.Name, err)
		}
		tags = append(tags, RawTag{
			Key:   strings.ReplaceAll(attr.Name, "_", " "),
			Value: text,
			Line:  attr.Range.Start.Line,
		})
	}
	return tags, nil
}

// ctyText renders a string or whole-number value as text.
func ctyText(val cty.Value) (string, error) {
	if val.IsNull() {
		return "", fmt.Errorf("value is null")
	}
	if !val.IsKnown() {
		return "", fmt.Errorf("value is not known")
	}

	switch val.Type() {
	case cty.String:
		return val.AsString(), nil
	case cty.Number:
		bf := val.AsBigFloat()
		if !bf.IsInt() {
			return "", fmt.Errorf("number %s is not a whole number", bf.Text('g', -1))
		}
		return bf.Text('f', 0), nil
	default:
		return "", fmt.Errorf("unsupported value type %s", val.Type().FriendlyName())
	}
}

// ParseTagFile loads path and parses every tag in it.
func (p *Parser) ParseTagFile(path string) ([]types.TagItem, error) {
	raw, err := LoadTagFile(path)
	if err != nil {
		return nil, err
	}
	return p.ParseRaw(raw)
}

// ParseRaw parses tags read from a tag file, in order.
func (p *Parser) ParseRaw(raw []RawTag) ([]types.TagItem, error) {
	items := make([]types.TagItem, 0, len(raw))
	for _, tag := range raw {
		key, value := strings.Trim(tag.Key, space), strings.Trim(tag.Value, space)
		if value == "" {
			return nil, fmt.Errorf("line %d: %w", tag.Line,
				&types.ParseError{Arg: key + "=", Reason: "key or value is empty"})
		}
		item, err := p.Parse(key, value)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", tag.Line, err)
		}
		items = append(items, item)
	}
	return items, nil
}

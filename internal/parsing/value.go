// Package parsing turns textual tag input into typed tag items.
package parsing

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/simonhull/apetag/internal/registry"
	"github.com/simonhull/apetag/internal/types"
)

// space is the set trimmed from keys and values.
const space = " \t\r\n"

// datePattern accepts YYYY, YYYY-MM, and YYYY-MM-DD with unpadded parts.
var datePattern = regexp.MustCompile(`^(\d{1,4})(?:-(\d{1,2})(?:-(\d{1,2}))?)?$`)

// Parser converts "key=value" arguments into tag items using a key table.
type Parser struct {
	keys *registry.Keys
}

// NewParser returns a Parser that accepts the keys in keys.
// A nil table means registry.DefaultKeys().
func NewParser(keys *registry.Keys) *Parser {
	if keys == nil {
		keys = registry.DefaultKeys()
	}
	return &Parser{keys: keys}
}

// ParseArgs parses each argument in order. It stops at the first failure.
func (p *Parser) ParseArgs(args []string) ([]types.TagItem, error) {
	items := make([]types.TagItem, 0, len(args))
	for _, arg := range args {
		item, err := p.ParseArg(arg)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

// ParseArg parses a single "key=value" argument.
//
// The argument is split at the first '='; surrounding whitespace is
// trimmed from both halves and neither may be empty.
func (p *Parser) ParseArg(arg string) (types.TagItem, error) {
	key, value, ok := strings.Cut(arg, "=")
	if !ok {
		return types.TagItem{}, &types.ParseError{Arg: arg, Reason: "separator '=' is missing"}
	}
	key = strings.Trim(key, space)
	value = strings.Trim(value, space)
	if key == "" || value == "" {
		return types.TagItem{}, &types.ParseError{Arg: arg, Reason: "key or value is empty"}
	}
	return p.Parse(key, value)
}

// Parse builds a tag item from an already separated key and value.
//
// The key is matched case-insensitively and replaced by its canonical
// spelling; the value is parsed according to the key's kind.
func (p *Parser) Parse(key, raw string) (types.TagItem, error) {
	arg := key + "=" + raw

	spec, ok := p.keys.Lookup(key)
	if !ok {
		return types.TagItem{}, &types.ParseError{Arg: arg, Reason: fmt.Sprintf("unknown key %q", key)}
	}

	var value types.TagValue
	switch spec.Kind {
	case types.KindString:
		if err := checkString(raw); err != nil {
			return types.TagItem{}, &types.ParseError{Arg: arg, Reason: err.Error()}
		}
		value = types.StringValue(raw)
	case types.KindNumber:
		n, err := ParseNumber(raw)
		if err != nil {
			return types.TagItem{}, &types.ParseError{Arg: arg, Reason: err.Error()}
		}
		value = types.NumberValue(n)
	case types.KindDate:
		d, err := ParseDate(raw)
		if err != nil {
			return types.TagItem{}, &types.ParseError{Arg: arg, Reason: err.Error()}
		}
		value = types.DateValue(d.Year, d.Month, d.Day)
	case types.KindInvalid:
		return types.TagItem{}, &types.ParseError{Arg: arg, Reason: "key has no value kind"}
	}

	item, err := types.NewTagItem(spec.Name, value)
	if err != nil {
		return types.TagItem{}, &types.ParseError{Arg: arg, Reason: err.Error()}
	}
	return item, nil
}

// ParseNumber parses an unsigned 32-bit decimal number.
func ParseNumber(s string) (uint32, error) {
	n, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("malformed number %q", s)
	}
	return uint32(n), nil
}

// ParseDate parses YYYY, YYYY-MM, or YYYY-MM-DD.
//
// Year must be 1..9999, month 0..12 and day 0..31; a month or day of 0
// is treated as unspecified.
func ParseDate(s string) (types.Date, error) {
	m := datePattern.FindStringSubmatch(s)
	if m == nil {
		return types.Date{}, fmt.Errorf("malformed date %q, expected YYYY, YYYY-MM or YYYY-MM-DD", s)
	}

	var parts [3]uint32
	for i, field := range m[1:] {
		if field == "" {
			continue
		}
		v, err := strconv.ParseUint(field, 10, 32)
		if err != nil {
			return types.Date{}, fmt.Errorf("malformed date %q", s)
		}
		parts[i] = uint32(v)
	}

	d := types.Date{Year: parts[0], Month: parts[1], Day: parts[2]}
	if err := d.Validate(); err != nil {
		return types.Date{}, err
	}
	return d, nil
}

func checkString(s string) error {
	if !utf8.ValidString(s) {
		return fmt.Errorf("value is not valid UTF-8")
	}
	if strings.IndexByte(s, 0) >= 0 {
		return fmt.Errorf("value contains a NUL byte")
	}
	return nil
}

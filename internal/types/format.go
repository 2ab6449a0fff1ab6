package types

import "strings"

// TagFormat identifies a tag block format that can be appended to a file.
type TagFormat int

const (
	// FormatUnknown represents an unknown or unsupported tag format.
	FormatUnknown TagFormat = iota
	// FormatAPEv2 represents APE tags, version 2 (2000).
	FormatAPEv2
)

// String returns the command-line name of the format.
func (f TagFormat) String() string {
	switch f {
	case FormatAPEv2:
		return "APE2"
	case FormatUnknown:
		return "Unknown"
	default:
		return "Unknown"
	}
}

// Description returns a human-readable description of the format.
func (f TagFormat) Description() string {
	switch f {
	case FormatAPEv2:
		return "APE Tag, version 2"
	case FormatUnknown:
		return ""
	default:
		return ""
	}
}

// ParseTagFormat maps a command-line name such as "APE2" to a TagFormat.
// Matching is case-insensitive.
func ParseTagFormat(name string) (TagFormat, error) {
	if strings.EqualFold(strings.TrimSpace(name), "APE2") {
		return FormatAPEv2, nil
	}
	return FormatUnknown, &UnsupportedFormatError{Name: name}
}

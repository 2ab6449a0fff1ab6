package apetag

import (
	"github.com/simonhull/apetag/internal/types"
)

// TagItem is an alias to types.TagItem.
// Re-exporting from internal/types to maintain public API.
type TagItem = types.TagItem

// TagValue is an alias to types.TagValue.
type TagValue = types.TagValue

// Date is an alias to types.Date.
type Date = types.Date

// Kind is an alias to types.Kind.
type Kind = types.Kind

// TagFormat is an alias to types.TagFormat.
type TagFormat = types.TagFormat

// Value kinds.
const (
	KindString = types.KindString
	KindNumber = types.KindNumber
	KindDate   = types.KindDate
)

// Tag formats.
const (
	FormatUnknown = types.FormatUnknown
	FormatAPEv2   = types.FormatAPEv2
)

// NewTagItem returns a TagItem for key and value.
// It fails with ErrInvalidArgument if the key is empty or not printable
// ASCII, or if value is the zero TagValue.
func NewTagItem(key string, value TagValue) (TagItem, error) {
	return types.NewTagItem(key, value)
}

// StringValue returns a TagValue holding s.
func StringValue(s string) TagValue {
	return types.StringValue(s)
}

// NumberValue returns a TagValue holding n.
func NumberValue(n uint32) TagValue {
	return types.NumberValue(n)
}

// DateValue returns a TagValue holding a date. Pass 0 for an unspecified
// month or day.
func DateValue(year, month, day uint32) TagValue {
	return types.DateValue(year, month, day)
}

// ParseTagFormat maps a name such as "APE2" to a TagFormat, ignoring case.
func ParseTagFormat(name string) (TagFormat, error) {
	return types.ParseTagFormat(name)
}

// Package types provides the core data structures for APEv2 tag items.
//
// This package defines TagValue, TagItem, and TagFormat along with the
// error types shared by the encoder, parser, and public API.
package types

import "fmt"

// MaxKeyLength is the longest key an APEv2 item record may carry.
const MaxKeyLength = 255

// TagItem is one named tag value. It is immutable once constructed.
type TagItem struct {
	key   string
	value TagValue
}

// NewTagItem returns a TagItem for key and value.
//
// Keys must be non-empty printable ASCII (0x20-0x7E) of at most
// MaxKeyLength bytes, since the key is written NUL-terminated.
// The value must not be the zero TagValue.
func NewTagItem(key string, value TagValue) (TagItem, error) {
	if key == "" {
		return TagItem{}, &InvalidArgumentError{Field: "key", Reason: "key is empty"}
	}
	if len(key) > MaxKeyLength {
		return TagItem{}, &InvalidArgumentError{
			Field:  "key",
			Reason: fmt.Sprintf("key is %d bytes, limit is %d", len(key), MaxKeyLength),
		}
	}
	for i := 0; i < len(key); i++ {
		if c := key[i]; c < 0x20 || c > 0x7E {
			return TagItem{}, &InvalidArgumentError{
				Field:  "key",
				Reason: fmt.Sprintf("byte 0x%02x at position %d is not printable ASCII", c, i),
			}
		}
	}
	if value.IsZero() {
		return TagItem{}, &InvalidArgumentError{Field: "value", Reason: "value is absent"}
	}
	return TagItem{key: key, value: value}, nil
}

// StringItem is shorthand for NewTagItem(key, StringValue(s)).
func StringItem(key, s string) (TagItem, error) {
	return NewTagItem(key, StringValue(s))
}

// NumberItem is shorthand for NewTagItem(key, NumberValue(n)).
func NumberItem(key string, n uint32) (TagItem, error) {
	return NewTagItem(key, NumberValue(n))
}

// DateItem is shorthand for NewTagItem(key, DateValue(year, month, day)).
func DateItem(key string, year, month, day uint32) (TagItem, error) {
	return NewTagItem(key, DateValue(year, month, day))
}

// Key returns the item key.
func (i TagItem) Key() string {
	return i.key
}

// Value returns the item value.
func (i TagItem) Value() TagValue {
	return i.value
}

package ape

import (
	"fmt"
	"strconv"

	"github.com/simonhull/apetag/internal/types"
)

// Render returns the bytes stored as the value of an item holding v.
//
// Strings are stored as-is, numbers as decimal text, and dates as
// YYYY, YYYY-MM, or YYYY-MM-DD depending on which parts are specified.
func Render(v types.TagValue) ([]byte, error) {
	switch v.Kind() {
	case types.KindString:
		s, err := v.AsString()
		if err != nil {
			return nil, err
		}
		return []byte(s), nil
	case types.KindNumber:
		n, err := v.AsNumber()
		if err != nil {
			return nil, err
		}
		return strconv.AppendUint(nil, uint64(n), 10), nil
	case types.KindDate:
		d, err := v.AsDate()
		if err != nil {
			return nil, err
		}
		return renderDate(d)
	case types.KindInvalid:
		return nil, &types.InvalidArgumentError{Field: "value", Reason: "value is absent"}
	default:
		return nil, &types.InvalidArgumentError{Field: "value", Reason: fmt.Sprintf("unknown kind %d", v.Kind())}
	}
}

func renderDate(d types.Date) ([]byte, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	switch {
	case d.Month > 0 && d.Day > 0:
		return fmt.Appendf(nil, "%04d-%02d-%02d", d.Year, d.Month, d.Day), nil
	case d.Month > 0:
		return fmt.Appendf(nil, "%04d-%02d", d.Year, d.Month), nil
	default:
		return fmt.Appendf(nil, "%04d", d.Year), nil
	}
}

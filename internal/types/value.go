package types

// Kind identifies which variant a TagValue holds.
type Kind int

const (
	// KindInvalid is the zero Kind; a TagValue of this kind is absent.
	KindInvalid Kind = iota
	// KindString holds UTF-8 text.
	KindString
	// KindNumber holds an unsigned 32-bit integer.
	KindNumber
	// KindDate holds a year with optional month and day.
	KindDate
)

// String returns the lower-case name of the kind.
func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindDate:
		return "date"
	case KindInvalid:
		return "invalid"
	default:
		return "invalid"
	}
}

// Date is a calendar date whose month and day may be left unspecified.
//
// Month and Day of 0 mean "unspecified". A specified day requires a
// specified month.
type Date struct {
	Year  uint32
	Month uint32
	Day   uint32
}

// Validate checks the date ranges used by the APEv2 text rendering.
func (d Date) Validate() error {
	switch {
	case d.Year < 1:
		return &InvalidDateError{Date: d, Reason: "year must be at least 1"}
	case d.Year > 9999:
		return &InvalidDateError{Date: d, Reason: "year must be at most 9999"}
	case d.Month > 12:
		return &InvalidDateError{Date: d, Reason: "month must be at most 12"}
	case d.Day > 31:
		return &InvalidDateError{Date: d, Reason: "day must be at most 31"}
	case d.Day > 0 && d.Month == 0:
		return &InvalidDateError{Date: d, Reason: "day given without month"}
	}
	return nil
}

// TagValue is a string, number, or date. The zero value is absent.
type TagValue struct {
	str  string
	date Date
	num  uint32
	kind Kind
}

// StringValue returns a TagValue holding s.
func StringValue(s string) TagValue {
	return TagValue{kind: KindString, str: s}
}

// NumberValue returns a TagValue holding n.
func NumberValue(n uint32) TagValue {
	return TagValue{kind: KindNumber, num: n}
}

// DateValue returns a TagValue holding the given date.
//
// The date is not validated here; rendering fails for out-of-range dates.
func DateValue(year, month, day uint32) TagValue {
	return TagValue{kind: KindDate, date: Date{Year: year, Month: month, Day: day}}
}

// Kind returns the variant held by v.
func (v TagValue) Kind() Kind {
	return v.kind
}

// IsZero reports whether v holds no value.
func (v TagValue) IsZero() bool {
	return v.kind == KindInvalid
}

// AsString returns the string held by v.
func (v TagValue) AsString() (string, error) {
	if v.kind != KindString {
		return "", &TypeMismatchError{Want: KindString, Got: v.kind}
	}
	return v.str, nil
}

// AsNumber returns the number held by v.
func (v TagValue) AsNumber() (uint32, error) {
	if v.kind != KindNumber {
		return 0, &TypeMismatchError{Want: KindNumber, Got: v.kind}
	}
	return v.num, nil
}

// AsDate returns the date held by v.
func (v TagValue) AsDate() (Date, error) {
	if v.kind != KindDate {
		return Date{}, &TypeMismatchError{Want: KindDate, Got: v.kind}
	}
	return v.date, nil
}

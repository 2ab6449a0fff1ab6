package types

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTagItem(t *testing.T) {
	item, err := NewTagItem("Artist", StringValue("John Doe"))
	require.NoError(t, err)

	assert.Equal(t, "Artist", item.Key())
	s, err := item.Value().AsString()
	require.NoError(t, err)
	assert.Equal(t, "John Doe", s)
}

func TestNewTagItem_InvalidArguments(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value TagValue
		field string
	}{
		{name: "empty key", key: "", value: StringValue("x"), field: "key"},
		{name: "absent value", key: "Artist", value: TagValue{}, field: "value"},
		{name: "NUL in key", key: "Art\x00ist", value: StringValue("x"), field: "key"},
		{name: "non-ASCII key", key: "Künstler", value: StringValue("x"), field: "key"},
		{name: "key too long", key: strings.Repeat("k", MaxKeyLength+1), value: NumberValue(1), field: "key"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewTagItem(tt.key, tt.value)
			require.ErrorIs(t, err, ErrInvalidArgument)

			var argErr *InvalidArgumentError
			require.ErrorAs(t, err, &argErr)
			assert.Equal(t, tt.field, argErr.Field)
		})
	}
}

func TestConvenienceConstructors(t *testing.T) {
	track, err := NumberItem("Track", 7)
	require.NoError(t, err)
	assert.Equal(t, KindNumber, track.Value().Kind())

	year, err := DateItem("Year", 2021, 0, 0)
	require.NoError(t, err)
	d, err := year.Value().AsDate()
	require.NoError(t, err)
	assert.Equal(t, Date{Year: 2021}, d)

	_, err = StringItem("", "x")
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

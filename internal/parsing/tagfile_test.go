package parsing

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simonhull/apetag/internal/types"
)

const sampleTagFile = `
title       = "Blue in Green"
artist      = "Miles Davis"
track       = 3
year        = 1959
record_date = "1959-03-02"
`

func TestParseTagSource(t *testing.T) {
	raw, err := ParseTagSource([]byte(sampleTagFile), "tags.hcl")
	require.NoError(t, err)

	want := []RawTag{
		{Key: "title", Value: "Blue in Green", Line: 2},
		{Key: "artist", Value: "Miles Davis", Line: 3},
		{Key: "track", Value: "3", Line: 4},
		{Key: "year", Value: "1959", Line: 5},
		{Key: "record date", Value: "1959-03-02", Line: 6},
	}
	assert.Equal(t, want, raw)
}

func TestParser_ParseTagFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tags.hcl")
	require.NoError(t, os.WriteFile(path, []byte(sampleTagFile), 0o644))

	items, err := NewParser(nil).ParseTagFile(path)
	require.NoError(t, err)
	require.Len(t, items, 5)

	keys := make([]string, len(items))
	for i, item := range items {
		keys[i] = item.Key()
	}
	assert.Equal(t, []string{"Title", "Artist", "Track", "Year", "Record Date"}, keys)

	d, err := items[4].Value().AsDate()
	require.NoError(t, err)
	assert.Equal(t, types.Date{Year: 1959, Month: 3, Day: 2}, d)
}

func TestParseTagSource_Errors(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{name: "syntax error", src: `artist = `},
		{name: "fractional number", src: `track = 1.5`},
		{name: "boolean", src: `track = true`},
		{name: "null", src: `artist = null`},
		{name: "blocks are not tags", src: "tag {\n  artist = \"x\"\n}\n"},
		{name: "variable reference", src: `artist = var.name`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseTagSource([]byte(tt.src), "bad.hcl")
			assert.Error(t, err)
		})
	}
}

func TestParser_ParseRaw_Errors(t *testing.T) {
	p := NewParser(nil)

	_, err := p.ParseRaw([]RawTag{{Key: "artist", Value: "  ", Line: 4}})
	require.ErrorIs(t, err, types.ErrParse)
	assert.Contains(t, err.Error(), "line 4")

	_, err = p.ParseRaw([]RawTag{{Key: "track", Value: "-3", Line: 9}})
	require.ErrorIs(t, err, types.ErrParse)
	assert.Contains(t, err.Error(), "line 9")
}

func TestLoadTagFile_Missing(t *testing.T) {
	_, err := LoadTagFile(filepath.Join(t.TempDir(), "missing.hcl"))
	assert.Error(t, err)
}

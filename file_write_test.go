package apetag

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var audioBytes = []byte("ID3\x03\x00\x00\x00\x00\x00\x00fake mpeg frames")

func writeAudio(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "song.mp3")
	require.NoError(t, os.WriteFile(path, audioBytes, 0o644))
	return path
}

func sampleItems(t *testing.T) []TagItem {
	t.Helper()
	artist, err := NewTagItem("Artist", StringValue("John Doe"))
	require.NoError(t, err)
	track, err := NewTagItem("Track", NumberValue(7))
	require.NoError(t, err)
	year, err := NewTagItem("Year", DateValue(2021, 0, 0))
	require.NoError(t, err)
	return []TagItem{artist, track, year}
}

func TestAppendFile(t *testing.T) {
	path := writeAudio(t)
	items := sampleItems(t)

	res, err := AppendFile(path, items)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	// Existing content is untouched and the block follows it.
	require.True(t, bytes.HasPrefix(data, audioBytes))
	block := data[len(audioBytes):]

	assert.Equal(t, path, res.Path)
	assert.Equal(t, 3, res.Items)
	assert.Equal(t, len(block), res.Bytes)
	assert.Equal(t, xxhash.Sum64(block), res.Digest)

	// 64 + (8+7+8) + (8+6+1) + (8+5+4)
	assert.Equal(t, 64+23+15+17, len(block))
	assert.Equal(t, "APETAGEX", string(block[:8]))
	assert.Equal(t, uint32(3), binary.LittleEndian.Uint32(block[16:20]))
	assert.Equal(t, "APETAGEX", string(block[len(block)-32:len(block)-24]))
}

func TestAppendFile_Twice(t *testing.T) {
	path := writeAudio(t)
	items := sampleItems(t)

	first, err := AppendFile(path, items)
	require.NoError(t, err)
	_, err = AppendFile(path, items[:1])
	require.NoError(t, err)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, int64(len(audioBytes)+first.Bytes+64+23), info.Size())
}

func TestAppendFile_MissingFile(t *testing.T) {
	_, err := AppendFile(filepath.Join(t.TempDir(), "missing.mp3"), sampleItems(t))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestAppendFile_RenderFailureLeavesFileUntouched(t *testing.T) {
	path := writeAudio(t)
	bad, err := NewTagItem("Year", DateValue(0, 0, 0))
	require.NoError(t, err)

	old := time.Date(2001, 2, 3, 4, 5, 6, 0, time.UTC)
	require.NoError(t, os.Chtimes(path, old, old))

	_, err = AppendFile(path, append(sampleItems(t), bad), WithBackup(".bak"), WithPreserveModTime())
	require.ErrorIs(t, err, ErrInvalidDate)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, audioBytes, data)

	_, err = os.Stat(path + ".bak")
	assert.ErrorIs(t, err, os.ErrNotExist, "no backup is made for items that do not render")

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.True(t, info.ModTime().Equal(old), "file mod time unchanged")
}

func TestAppendFile_RenderFailureOnMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.mp3")
	bad, err := NewTagItem("Year", DateValue(0, 0, 0))
	require.NoError(t, err)

	_, err = AppendFile(path, []TagItem{bad})
	assert.ErrorIs(t, err, ErrInvalidDate, "items are checked before the file is touched")
	assert.NotErrorIs(t, err, os.ErrNotExist)
}

func TestAppendFile_UnsupportedFormat(t *testing.T) {
	path := writeAudio(t)

	_, err := AppendFile(path, sampleItems(t), WithFormat(FormatUnknown))
	var unsupported *UnsupportedFormatError
	require.ErrorAs(t, err, &unsupported)
	assert.Equal(t, "Unknown", unsupported.Name)
}

func TestAppendFile_Options(t *testing.T) {
	path := writeAudio(t)
	old := time.Date(2001, 2, 3, 4, 5, 6, 0, time.UTC)
	require.NoError(t, os.Chtimes(path, old, old))

	res, err := AppendFile(path, sampleItems(t),
		WithBackup(".bak"),
		WithVerify(),
		WithSync(),
		WithPreserveModTime(),
	)
	require.NoError(t, err)
	assert.Positive(t, res.Bytes)

	backup, err := os.ReadFile(path + ".bak")
	require.NoError(t, err)
	assert.Equal(t, audioBytes, backup, "backup holds the file as it was before appending")

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.True(t, info.ModTime().Equal(old), "mod time = %v, want %v", info.ModTime(), old)
}

func TestVerifyTail_Mismatch(t *testing.T) {
	path := writeAudio(t)
	res, err := AppendFile(path, sampleItems(t))
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	written := bytes.Clone(data[len(data)-res.Bytes:])

	// Flip a byte in the stored block.
	data[len(data)-40] ^= 0xFF
	require.NoError(t, os.WriteFile(path, data, 0o644))

	err = verifyTail(path, written, xxhash.Sum64(written))
	var verr *VerifyError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Reason, "digest mismatch")

	err = verifyTail(path, make([]byte, len(data)+1), 0)
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Reason, "smaller")
}

// shortWriter accepts only the first limit bytes ever written.
type shortWriter struct {
	buf   bytes.Buffer
	limit int
}

func (w *shortWriter) Write(p []byte) (int, error) {
	room := w.limit - w.buf.Len()
	if room < len(p) {
		if room < 0 {
			room = 0
		}
		w.buf.Write(p[:room])
		return room, io.ErrShortWrite
	}
	return w.buf.Write(p)
}

func TestAppend_ShortWriteOnFooter(t *testing.T) {
	items := sampleItems(t)

	var full bytes.Buffer
	written, err := Append(&full, items)
	require.NoError(t, err)
	assert.Equal(t, full.Bytes(), written)

	// Room for header and items but only part of the footer.
	w := &shortWriter{limit: full.Len() - 10}
	_, err = Append(w, items)
	require.ErrorIs(t, err, ErrIO)

	var ioErr *IOError
	require.ErrorAs(t, err, &ioErr)
	assert.Equal(t, "footer", ioErr.Stage)
	assert.Equal(t, full.Bytes()[:full.Len()-32], w.buf.Bytes()[:full.Len()-32])
}

func TestAppend_Empty(t *testing.T) {
	var buf bytes.Buffer
	written, err := Append(&buf, nil)
	require.NoError(t, err)
	assert.Len(t, written, 64)
}

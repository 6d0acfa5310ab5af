package transcode

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// failingDestination accepts limit bytes and then fails every write
type failingDestination struct {
	buf     bytes.Buffer
	limit   int
	syncErr error
	synced  int
}

func (d *failingDestination) Write(p []byte) (int, error) {
	room := d.limit - d.buf.Len()
	if room <= 0 {
		return 0, errors.New("no space left on device")
	}
	if len(p) > room {
		d.buf.Write(p[:room])
		return room, errors.New("no space left on device")
	}
	return d.buf.Write(p)
}

func (d *failingDestination) Sync() error {
	d.synced++
	return d.syncErr
}

func TestSinkWriter_Append(t *testing.T) {
	var buf bytes.Buffer
	w := NewSinkWriter(&buf, SinkConfig{})

	require.NoError(t, w.Append([]byte("e")))
	// Each record is on the destination as soon as Append returns
	assert.Equal(t, "e\n", buf.String())

	require.NoError(t, w.Append([]byte("dd")))
	require.NoError(t, w.Close())

	assert.Equal(t, "e\ndd\n", buf.String())
	assert.Equal(t, int64(2), w.Records())
	assert.Equal(t, int64(5), w.Size())
}

func TestSinkWriter_EmptyRecord(t *testing.T) {
	var buf bytes.Buffer
	w := NewSinkWriter(&buf, SinkConfig{})

	require.NoError(t, w.Append(nil))
	assert.Equal(t, "\n", buf.String())
	assert.Equal(t, int64(1), w.Size())
}

func TestSinkWriter_LargeRecord(t *testing.T) {
	var buf bytes.Buffer
	w := NewSinkWriter(&buf, SinkConfig{})

	record := bytes.Repeat([]byte("x"), 64*1024)
	require.NoError(t, w.Append(record))
	require.NoError(t, w.Close())

	assert.Equal(t, len(record)+1, buf.Len())
	assert.Equal(t, byte('\n'), buf.Bytes()[buf.Len()-1])
}

func TestSinkWriter_WriteFailure(t *testing.T) {
	dst := &failingDestination{limit: 3}
	w := NewSinkWriter(dst, SinkConfig{})

	require.NoError(t, w.Append([]byte("ab")))

	err := w.Append([]byte("cd"))
	require.Error(t, err)
	assert.True(t, IsIOFailure(err))

	// Sticky, and Close reports the same failure
	assert.Equal(t, err, w.Append([]byte("ef")))
	assert.Equal(t, err, w.Close())

	assert.Equal(t, int64(1), w.Records())
	assert.Equal(t, int64(3), w.Size())
	assert.Equal(t, "ab\n", dst.buf.String())
}

func TestSinkWriter_Sync(t *testing.T) {
	t.Run("sync enabled", func(t *testing.T) {
		dst := &failingDestination{limit: 100}
		w := NewSinkWriter(dst, SinkConfig{Sync: true})
		require.NoError(t, w.Append([]byte("a")))
		require.NoError(t, w.Close())
		assert.Equal(t, 1, dst.synced)
	})

	t.Run("sync disabled", func(t *testing.T) {
		dst := &failingDestination{limit: 100}
		w := NewSinkWriter(dst, SinkConfig{})
		require.NoError(t, w.Close())
		assert.Equal(t, 0, dst.synced)
	})

	t.Run("sync failure", func(t *testing.T) {
		dst := &failingDestination{limit: 100, syncErr: errors.New("fsync failed")}
		w := NewSinkWriter(dst, SinkConfig{Sync: true})
		err := w.Close()
		require.Error(t, err)
		assert.True(t, IsIOFailure(err))
	})

	t.Run("destination without sync", func(t *testing.T) {
		var buf bytes.Buffer
		w := NewSinkWriter(&buf, SinkConfig{Sync: true})
		assert.NoError(t, w.Close())
	})
}

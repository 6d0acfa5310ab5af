package transcode

import (
	"bufio"
)

// SinkWriter appends records to the destination, each followed by a single
// '\n'. Every record is flushed before Append returns, so no more than one
// record is ever held in memory.
type SinkWriter struct {
	dst     Destination
	writer  *bufio.Writer
	config  SinkConfig
	records int64
	offset  int64 // bytes appended so far
	err     error
}

// NewSinkWriter creates a sink writer appending to dst
func NewSinkWriter(dst Destination, config SinkConfig) *SinkWriter {
	return &SinkWriter{
		dst:    dst,
		writer: bufio.NewWriter(dst),
		config: config,
	}
}

// Append writes record and its trailing delimiter to the destination
func (w *SinkWriter) Append(record []byte) error {
	if w.err != nil {
		return w.err
	}

	n, err := w.writer.Write(record)
	if err == nil {
		err = w.writer.WriteByte('\n')
		if err == nil {
			n++
		}
	}
	if err == nil {
		err = w.writer.Flush()
	}
	if err != nil {
		w.err = ioFailure(err, "write", map[string]interface{}{"record": w.records, "offset": w.offset})
		return w.err
	}

	w.offset += int64(n)
	w.records++
	return nil
}

// Close flushes pending bytes and, when configured, syncs the destination.
// It does not close the destination; the caller that opened it does.
func (w *SinkWriter) Close() error {
	if w.err != nil {
		return w.err
	}

	if err := w.writer.Flush(); err != nil {
		w.err = ioFailure(err, "flush", nil)
		return w.err
	}

	if w.config.Sync {
		if s, ok := w.dst.(Syncer); ok {
			if err := s.Sync(); err != nil {
				w.err = ioFailure(err, "sync", nil)
				return w.err
			}
		}
	}

	return nil
}

// Records returns the number of records appended
func (w *SinkWriter) Records() int64 {
	return w.records
}

// Size returns the number of bytes appended, delimiters included
func (w *SinkWriter) Size() int64 {
	return w.offset
}

package transcode

import (
	"io"
	"log/slog"
	"time"

	"github.com/jmgilman/go/errors"
)

// Source is a read-only, randomly addressable byte source
type Source interface {
	io.Reader
	io.Seeker
}

// Destination is a write-capable, append-ordered byte sink
type Destination interface {
	io.Writer
}

// Syncer is implemented by destinations that can commit writes to stable storage
type Syncer interface {
	Sync() error
}

// SinkConfig holds configuration for the sink writer
type SinkConfig struct {
	Sync bool // Sync the destination on Close when it implements Syncer
}

// Options holds the per-transcode settings
type Options struct {
	Mode   Mode         // Mode policy, selected once per transcode
	Sink   SinkConfig   // Sink writer configuration
	Logger *slog.Logger // Optional; nil disables pipeline logging
}

// FileConfig holds configuration for a file-to-file transcode
type FileConfig struct {
	SourcePath string // Path of the source file, opened read-only
	DestPath   string // Path of the destination file, created if absent
	Append     bool   // Append to an existing destination instead of truncating it
	Options
}

// Stats reports the progress of a transcode. It is filled in even when the
// transcode fails part way.
type Stats struct {
	Mode         Mode
	Records      int64 // Records appended to the destination
	BytesRead    int64 // Source bytes consumed by the scanner
	BytesWritten int64 // Bytes appended to the destination, delimiters included
	Duration     time.Duration
}

// CodeIOFailure identifies an open, read, write, seek, sync or close failure
// on either handle.
const CodeIOFailure errors.ErrorCode = "IO_FAILURE"

// IsIOFailure reports whether err, or any error it wraps, is an IOFailure.
// Every branch of a joined error is checked.
func IsIOFailure(err error) bool {
	if err == nil {
		return false
	}

	if pe, ok := err.(errors.PlatformError); ok && pe.Code() == CodeIOFailure {
		return true
	}

	switch e := err.(type) {
	case interface{ Unwrap() []error }:
		for _, branch := range e.Unwrap() {
			if IsIOFailure(branch) {
				return true
			}
		}
		return false
	case interface{ Unwrap() error }:
		return IsIOFailure(e.Unwrap())
	}
	return false
}

func ioFailure(err error, op string, ctx map[string]interface{}) error {
	if ctx == nil {
		ctx = map[string]interface{}{}
	}
	ctx["op"] = op
	return errors.WrapWithContext(err, CodeIOFailure, op+" failed", ctx)
}

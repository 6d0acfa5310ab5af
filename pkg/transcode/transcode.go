package transcode

import (
	stderrors "errors"
	"log/slog"
	"time"

	"github.com/jmgilman/go/errors"
)

// Transcode streams src backwards into dst using opts.Mode. It returns the
// progress made even when it fails; bytes already written to dst stay there.
//
// Transcode does not open or close either handle. The sink is flushed before
// Transcode returns.
func Transcode(src Source, dst Destination, opts Options) (Stats, error) {
	started := time.Now()
	stats := Stats{Mode: opts.Mode}

	if !opts.Mode.Valid() {
		return stats, errors.Newf(errors.CodeInvalidInput, "invalid mode %d", int(opts.Mode))
	}

	log := opts.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	scanner, err := NewBackwardScanner(src)
	if err != nil {
		return stats, err
	}
	reassembler := NewReassembler(scanner)
	sink := NewSinkWriter(dst, opts.Sink)

	log.Debug("transcode started", "mode", opts.Mode.String(), "source_bytes", scanner.Len())

	var runErr error
	for reassembler.Next() {
		record := opts.Mode.Apply(reassembler.Record())
		if err := sink.Append(record); err != nil {
			runErr = err
			break
		}
		log.Debug("record emitted", "offset", reassembler.Offset(), "length", len(record))
	}
	if runErr == nil {
		runErr = reassembler.Err()
	}

	// Draining: flush whatever the sink holds, even after a failure
	if err := sink.Close(); err != nil && runErr == nil {
		runErr = err
	} else if err != nil && !stderrors.Is(err, runErr) {
		runErr = stderrors.Join(runErr, err)
	}

	stats.Records = sink.Records()
	stats.BytesRead = scanner.BytesRead()
	stats.BytesWritten = sink.Size()
	stats.Duration = time.Since(started)

	if runErr != nil {
		log.Debug("transcode failed", "error", runErr, "records", stats.Records)
		return stats, runErr
	}

	log.Debug("transcode finished", "records", stats.Records, "bytes_written", stats.BytesWritten)
	return stats, nil
}

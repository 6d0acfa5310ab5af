package transcode

import (
	stderrors "errors"
	"os"
	"path/filepath"

	"github.com/go-git/go-billy/v5"
	"github.com/jmgilman/go/errors"
)

// TranscodeFile opens config.SourcePath read-only and config.DestPath for
// writing on fs, runs Transcode between them and releases both handles
// whether or not the transcode succeeded.
func TranscodeFile(fs billy.Filesystem, config FileConfig) (stats Stats, err error) {
	stats.Mode = config.Mode
	if config.SourcePath == "" || config.DestPath == "" {
		return stats, errors.New(errors.CodeInvalidInput, "source and destination paths are required")
	}
	if !config.Mode.Valid() {
		return stats, errors.Newf(errors.CodeInvalidInput, "invalid mode %d", int(config.Mode))
	}
	// Truncating the destination would empty a shared source before the scan
	if filepath.Clean(config.SourcePath) == filepath.Clean(config.DestPath) {
		return stats, errors.New(errors.CodeInvalidInput, "source and destination must differ")
	}

	src, err := fs.Open(config.SourcePath)
	if err != nil {
		return stats, ioFailure(err, "open", map[string]interface{}{"path": config.SourcePath})
	}
	defer func() {
		if closeErr := src.Close(); closeErr != nil {
			err = stderrors.Join(err, ioFailure(closeErr, "close", map[string]interface{}{"path": config.SourcePath}))
		}
	}()

	dst, err := OpenDestination(fs, config.DestPath, config.Append)
	if err != nil {
		return stats, err
	}
	defer func() {
		if closeErr := dst.Close(); closeErr != nil {
			err = stderrors.Join(err, ioFailure(closeErr, "close", map[string]interface{}{"path": config.DestPath}))
		}
	}()

	return Transcode(src, dst, config.Options)
}

// CountFile returns the number of records a transcode of path would produce,
// without writing anything.
func CountFile(fs billy.Filesystem, path string) (n int64, err error) {
	src, err := fs.Open(path)
	if err != nil {
		return 0, ioFailure(err, "open", map[string]interface{}{"path": path})
	}
	defer func() {
		if closeErr := src.Close(); closeErr != nil {
			err = stderrors.Join(err, ioFailure(closeErr, "close", map[string]interface{}{"path": path}))
		}
	}()

	scanner, err := NewBackwardScanner(src)
	if err != nil {
		return 0, err
	}
	r := NewReassembler(scanner)
	for r.Next() {
		n++
	}
	return n, r.Err()
}

// OpenDestination creates path and its parent directory when missing and
// opens it for sequential writes. Existing content is truncated unless
// appendMode is set.
func OpenDestination(fs billy.Filesystem, path string, appendMode bool) (billy.File, error) {
	if dir := filepath.Dir(path); dir != "." && dir != "/" {
		if err := fs.MkdirAll(dir, 0750); err != nil {
			return nil, ioFailure(err, "mkdir", map[string]interface{}{"path": dir})
		}
	}

	flag := os.O_CREATE | os.O_WRONLY
	if appendMode {
		flag |= os.O_APPEND
	} else {
		flag |= os.O_TRUNC
	}

	f, err := fs.OpenFile(path, flag, 0600)
	if err != nil {
		return nil, ioFailure(err, "open", map[string]interface{}{"path": path})
	}
	return f, nil
}

package transcode

import (
	"io"
)

// BackwardScanner yields the bytes of a source from its last offset down to
// offset 0. Each step positions the source and reads exactly one byte; nothing
// beyond the current byte is kept in memory.
type BackwardScanner struct {
	src    Source
	length int64
	cursor int64 // next offset to read; traversal ends below 0
	offset int64
	b      [1]byte
	read   int64
	err    error
}

// NewBackwardScanner measures src and returns a scanner positioned past its
// last byte.
func NewBackwardScanner(src Source) (*BackwardScanner, error) {
	length, err := src.Seek(0, io.SeekEnd)
	if err != nil {
		return nil, ioFailure(err, "seek", nil)
	}

	return &BackwardScanner{
		src:    src,
		length: length,
		cursor: length - 1,
		offset: -1,
	}, nil
}

// Next advances to the previous byte of the source. It returns false once
// offset 0 has been consumed or a read failed; check Err to tell them apart.
func (s *BackwardScanner) Next() bool {
	if s.err != nil || s.cursor < 0 {
		return false
	}

	if _, err := s.src.Seek(s.cursor, io.SeekStart); err != nil {
		s.err = ioFailure(err, "seek", map[string]interface{}{"offset": s.cursor})
		return false
	}
	if _, err := io.ReadFull(s.src, s.b[:]); err != nil {
		s.err = ioFailure(err, "read", map[string]interface{}{"offset": s.cursor})
		return false
	}

	s.offset = s.cursor
	s.cursor--
	s.read++
	return true
}

// Offset returns the absolute offset of the current byte
func (s *BackwardScanner) Offset() int64 {
	return s.offset
}

// Byte returns the current byte
func (s *BackwardScanner) Byte() byte {
	return s.b[0]
}

// Err returns the failure that stopped the scan, if any
func (s *BackwardScanner) Err() error {
	return s.err
}

// Len returns the source length measured when the scanner was created
func (s *BackwardScanner) Len() int64 {
	return s.length
}

// BytesRead returns the number of bytes consumed so far
func (s *BackwardScanner) BytesRead() int64 {
	return s.read
}

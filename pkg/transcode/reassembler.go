package transcode

// IsDelimiter reports whether b terminates a record
func IsDelimiter(b byte) bool {
	return b == '\n' || b == '\r'
}

// Reassembler groups the scanner's bytes into records. Records are produced
// in reverse source order, each holding its bytes in backward-scan order.
type Reassembler struct {
	scanner *BackwardScanner
	buf     []byte
	record  []byte
	start   int64 // offset of the first source byte of the current record
	done    bool
}

// NewReassembler creates a reassembler reading from scanner
func NewReassembler(scanner *BackwardScanner) *Reassembler {
	return &Reassembler{scanner: scanner}
}

// Next assembles the next record. It returns false when the source is
// exhausted or the scanner failed.
func (r *Reassembler) Next() bool {
	if r.done {
		return false
	}

	r.buf = r.buf[:0]
	for r.scanner.Next() {
		b := r.scanner.Byte()
		if IsDelimiter(b) {
			if len(r.buf) > 0 {
				r.record = r.buf
				return true
			}
			continue
		}
		r.buf = append(r.buf, b)
		r.start = r.scanner.Offset()
	}

	// First record of the source has no delimiter before offset 0
	r.done = true
	if r.scanner.Err() != nil || len(r.buf) == 0 {
		r.record = nil
		return false
	}
	r.record = r.buf
	return true
}

// Record returns the current record. The slice is reused by the next call
// to Next.
func (r *Reassembler) Record() []byte {
	return r.record
}

// Offset returns the source offset where the current record starts
func (r *Reassembler) Offset() int64 {
	return r.start
}

// Err returns the scanner failure that stopped reassembly, if any
func (r *Reassembler) Err() error {
	return r.scanner.Err()
}

package transcode

import (
	"strings"

	"github.com/jmgilman/go/errors"
)

// Mode selects how each record's bytes are emitted
type Mode int

const (
	// ModeLineReverse emits records as collected by the backward scan, so the
	// bytes inside each record come out reversed.
	ModeLineReverse Mode = iota
	// ModeTokenReverse reverses each record before emission, restoring its
	// original byte order.
	ModeTokenReverse
)

// String returns the name used for the mode in flags and config files
func (m Mode) String() string {
	switch m {
	case ModeLineReverse:
		return "lines"
	case ModeTokenReverse:
		return "tokens"
	default:
		return "unknown"
	}
}

// Valid reports whether m is one of the defined modes
func (m Mode) Valid() bool {
	return m == ModeLineReverse || m == ModeTokenReverse
}

// Apply transforms a record collected in backward-scan order. The record is
// modified in place and returned.
func (m Mode) Apply(record []byte) []byte {
	if m == ModeTokenReverse {
		reverse(record)
	}
	return record
}

// ParseMode converts a mode name to a Mode
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "lines", "line", "line-reverse":
		return ModeLineReverse, nil
	case "tokens", "token", "token-reverse":
		return ModeTokenReverse, nil
	default:
		return ModeLineReverse, errors.Newf(errors.CodeInvalidInput, "unknown mode %q (want lines or tokens)", s)
	}
}

// MarshalText implements encoding.TextMarshaler
func (m Mode) MarshalText() ([]byte, error) {
	if !m.Valid() {
		return nil, errors.Newf(errors.CodeInvalidInput, "invalid mode %d", int(m))
	}
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (m *Mode) UnmarshalText(text []byte) error {
	mode, err := ParseMode(string(text))
	if err != nil {
		return err
	}
	*m = mode
	return nil
}

func reverse(b []byte) {
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
}

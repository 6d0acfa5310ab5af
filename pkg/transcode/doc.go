// Package transcode implements the reverse-order file transcoder used by revline.
//
// A transcode reads a source from its last byte to its first using only
// seek-based random access and writes a destination whose records appear in
// reverse order. The whole source is never loaded into memory: at most one
// record is resident at any time.
//
// # Pipeline
//
// A transcode is a chain of four small components:
//
//	source -> BackwardScanner -> Reassembler -> Mode -> SinkWriter -> destination
//
//   - BackwardScanner yields (offset, byte) pairs from offset len-1 down to 0,
//     one Seek plus one single-byte Read per pair.
//   - Reassembler splits that stream into records on the delimiter set
//     {'\n', '\r'}. Delimiters are discarded and runs of delimiters never
//     produce empty records.
//   - Mode decides how each record's bytes are emitted (see below).
//   - SinkWriter appends every record followed by a single '\n'.
//
// # Modes
//
// ModeLineReverse emits the record buffer as collected, i.e. with its bytes in
// backward-scan order. ModeTokenReverse reverses the buffer first, so every
// record keeps its original byte order while the record order is reversed:
//
//	input:  "a1\nb2\nc3\n"
//	lines:  "3c\n2b\n1a\n"
//	tokens: "c3\nb2\na1\n"
//
// # Usage
//
//	fs := osfs.New("/")
//	stats, err := transcode.TranscodeFile(fs, transcode.FileConfig{
//	    SourcePath: "/tmp/in.txt",
//	    DestPath:   "/tmp/out.txt",
//	    Options:    transcode.Options{Mode: transcode.ModeTokenReverse},
//	})
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("wrote %d records\n", stats.Records)
//
// # Error Handling
//
// Every failure on either handle is reported as a PlatformError with code
// CodeIOFailure. Failures are not retried and output already written is left
// in place. An empty source is not an error; it produces an empty destination.
//
// # Thread Safety
//
// None of the types in this package are safe for concurrent use. A transcode
// assumes exclusive ownership of both handles for its whole duration.
package transcode

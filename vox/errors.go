package vox

// kindError is a sentinel error that may belong to a broader kind, so that
// errors.Is(ErrUnexpectedEOF, ErrIO) holds.
type kindError struct {
	msg    string
	parent error
}

func (e *kindError) Error() string { return e.msg }
func (e *kindError) Unwrap() error { return e.parent }

var (
	// ErrIO reports a failure of the underlying source: unreadable path,
	// failed read or seek.
	ErrIO = &kindError{msg: "vox: i/o failure"}
	// ErrUnexpectedEOF reports a read past the end of the source. It is also
	// an ErrIO.
	ErrUnexpectedEOF = &kindError{msg: "vox: unexpected end of stream", parent: ErrIO}
	// ErrFormatMismatch reports a 4-byte identifier that does not match the
	// expected one, e.g. a file that does not start with "VOX ".
	ErrFormatMismatch = &kindError{msg: "vox: format mismatch"}
	// ErrMalformedArgument reports a usage error by the caller of this
	// package, not a data error.
	ErrMalformedArgument = &kindError{msg: "vox: malformed argument"}
	// ErrOutOfBounds reports a dense model access outside the model extent.
	ErrOutOfBounds = &kindError{msg: "vox: coordinate out of bounds"}
	// ErrMissingSize reports an XYZI chunk with no preceding SIZE chunk in
	// the same MAIN scope.
	ErrMissingSize = &kindError{msg: "vox: XYZI chunk without preceding SIZE"}
	// ErrNestingTooDeep reports a chunk tree deeper than maxChunkDepth.
	ErrNestingTooDeep = &kindError{msg: "vox: chunk nesting too deep"}
	// ErrExtentTooLarge reports a SIZE chunk whose cell count exceeds
	// Options.MaxDenseCells.
	ErrExtentTooLarge = &kindError{msg: "vox: model extent too large"}

	// ErrPackFormat reports a malformed .voxpack container.
	ErrPackFormat = &kindError{msg: "vox: invalid pack"}
	// ErrPackChecksum reports a pack entry whose cells do not match the
	// stored fingerprint.
	ErrPackChecksum = &kindError{msg: "vox: pack checksum mismatch", parent: ErrPackFormat}
)

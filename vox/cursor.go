package vox

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/pkg/errors"
)

// Cursor reads little-endian primitives sequentially from a seekable source
// and tracks the absolute offset of the next byte.
type Cursor struct {
	r   io.ReadSeeker
	pos int64
	buf [4]byte
}

// NewCursor returns a Cursor positioned at the current offset of r.
func NewCursor(r io.ReadSeeker) (*Cursor, error) {
	pos, err := r.Seek(0, io.SeekCurrent)
	if err != nil {
		return nil, ioFailure(err, "locate start of stream")
	}
	return &Cursor{r: r, pos: pos}, nil
}

// Tell returns the absolute offset of the next byte to be read.
func (c *Cursor) Tell() int64 { return c.pos }

// Seek moves the cursor to an absolute offset. Seeking past the end is
// allowed; the next read reports ErrUnexpectedEOF.
func (c *Cursor) Seek(offset int64) error {
	if offset < 0 {
		return errors.Wrapf(ErrMalformedArgument, "seek to negative offset %d", offset)
	}
	if _, err := c.r.Seek(offset, io.SeekStart); err != nil {
		return ioFailure(err, "seek to offset %d", offset)
	}
	c.pos = offset
	return nil
}

func (c *Cursor) fill(n int) error {
	got, err := io.ReadFull(c.r, c.buf[:n])
	if err != nil {
		at := c.pos
		c.pos += int64(got)
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return errors.Wrapf(ErrUnexpectedEOF, "read %d bytes at offset %d", n, at)
		}
		return ioFailure(err, "read %d bytes at offset %d", n, at)
	}
	c.pos += int64(n)
	return nil
}

// ReadU32LE reads a little-endian uint32.
func (c *Cursor) ReadU32LE() (uint32, error) {
	if err := c.fill(4); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(c.buf[:4]), nil
}

// ReadI32LE reads the same 4 bytes as ReadU32LE reinterpreted as signed.
func (c *Cursor) ReadI32LE() (int32, error) {
	v, err := c.ReadU32LE()
	return int32(v), err
}

// ReadU8 reads one unsigned byte.
func (c *Cursor) ReadU8() (uint8, error) {
	if err := c.fill(1); err != nil {
		return 0, err
	}
	return c.buf[0], nil
}

// ReadSByte reads one byte as a signed char widened to int, so 0xFF yields -1.
// Palette channels go through this path while coordinates use ReadU8;
// converting the result back with uint8() restores the raw byte.
func (c *Cursor) ReadSByte() (int, error) {
	if err := c.fill(1); err != nil {
		return 0, err
	}
	return int(int8(c.buf[0])), nil
}

// ReadID reads a 4-byte identifier and checks it against id.
func (c *Cursor) ReadID(id string) error {
	if len(id) != 4 {
		return errors.Wrapf(ErrMalformedArgument, "identifier %q must be 4 characters", id)
	}
	at := c.pos
	if err := c.fill(4); err != nil {
		return err
	}
	if string(c.buf[:4]) != id {
		return errors.Wrapf(ErrFormatMismatch, "expected %q but found %q at offset %d", id, c.buf[:4], at)
	}
	return nil
}

// readTag reads a 4-byte chunk tag.
func (c *Cursor) readTag() (string, error) {
	if err := c.fill(4); err != nil {
		return "", err
	}
	return string(c.buf[:4]), nil
}

func ioFailure(err error, format string, args ...any) error {
	return errors.WithStack(fmt.Errorf("%w: %s: %w", ErrIO, fmt.Sprintf(format, args...), err))
}

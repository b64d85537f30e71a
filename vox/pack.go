package vox

import (
	"bytes"
	"compress/zlib"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/klauspost/compress/zstd"
	"github.com/pkg/errors"
)

// PackCompression indicates the compression used for the pack content section.
type PackCompression uint8

const (
	PackCompNone PackCompression = 0
	PackCompZlib PackCompression = 1
	PackCompZstd PackCompression = 2
)

// ParsePackCompression maps "none", "zlib" and "zstd" to a PackCompression.
func ParsePackCompression(s string) (PackCompression, error) {
	switch s {
	case "none", "":
		return PackCompNone, nil
	case "zlib":
		return PackCompZlib, nil
	case "zstd":
		return PackCompZstd, nil
	}
	return 0, errors.Wrapf(ErrMalformedArgument, "unknown pack compression %q", s)
}

func (c PackCompression) String() string {
	switch c {
	case PackCompNone:
		return "none"
	case PackCompZlib:
		return "zlib"
	case PackCompZstd:
		return "zstd"
	}
	return fmt.Sprintf("PackCompression(%d)", uint8(c))
}

const (
	packMagicStr = "VOXPACK\x00"
	packVersion1 = 1
)

// PackModel is one dense model stored in a pack.
type PackModel struct {
	Name  string
	Size  Vec3i
	Cells []uint8 // linear order, see DenseModel
}

// Pack is a cache container for decoded dense models sharing one palette.
// It is not the .vox format.
type Pack struct {
	Version int32 // version of the source .vox file
	Palette Palette
	Models  []PackModel
}

// PackFromFile collects the dense models of f. Models are named model_<i>.
func PackFromFile(f *File) *Pack {
	p := &Pack{Version: f.Version, Palette: f.Palette}
	for i, m := range f.Dense {
		cells := append([]uint8(nil), m.Data()...)
		p.Models = append(p.Models, PackModel{Name: fmt.Sprintf("model_%d", i), Size: m.Size(), Cells: cells})
	}
	return p
}

// DenseModels rebuilds dense models carrying the pack palette.
func (p *Pack) DenseModels() ([]*DenseModel, error) {
	out := make([]*DenseModel, 0, len(p.Models))
	for _, pm := range p.Models {
		m, err := NewDenseModelFromData(pm.Size, append([]uint8(nil), pm.Cells...), p.Palette)
		if err != nil {
			return nil, errors.Wrapf(err, "model %s", pm.Name)
		}
		out = append(out, m)
	}
	return out, nil
}

// Marshal encodes the pack. Models identical to an earlier one (same
// fingerprint and cells) are stored as a reference to it.
func (p *Pack) Marshal(comp PackCompression) ([]byte, error) {
	var content bytes.Buffer
	_ = binary.Write(&content, binary.LittleEndian, p.Version)
	for _, c := range p.Palette {
		_, _ = content.Write([]byte{c.R, c.G, c.B, c.A})
	}
	_ = binary.Write(&content, binary.LittleEndian, uint32(len(p.Models)))

	seen := make(map[uint64][]int, len(p.Models))
	for i, m := range p.Models {
		if uint64(len(m.Cells)) != m.Size.Cells() {
			return nil, errors.Wrapf(ErrMalformedArgument, "model %s: %d cells for extent %dx%dx%d", m.Name, len(m.Cells), m.Size.X, m.Size.Y, m.Size.Z)
		}
		nb := []byte(m.Name)
		if len(nb) > 0xFFFF {
			return nil, errors.Wrapf(ErrMalformedArgument, "name too long: %s", m.Name)
		}
		_ = binary.Write(&content, binary.LittleEndian, uint16(len(nb)))
		_, _ = content.Write(nb)
		_ = binary.Write(&content, binary.LittleEndian, [3]uint32{m.Size.X, m.Size.Y, m.Size.Z})
		fp := fingerprint(m.Size, m.Cells)
		_ = binary.Write(&content, binary.LittleEndian, fp)

		ref := int32(-1)
		for _, j := range seen[fp] {
			if p.Models[j].Size == m.Size && bytes.Equal(p.Models[j].Cells, m.Cells) {
				ref = int32(j)
				break
			}
		}
		_ = binary.Write(&content, binary.LittleEndian, ref)
		if ref >= 0 {
			continue
		}
		seen[fp] = append(seen[fp], i)
		stream := mortonFlatten(m.Size, m.Cells)
		_ = binary.Write(&content, binary.LittleEndian, uint32(len(stream)))
		_, _ = content.Write(stream)
	}

	var finalContent []byte
	switch comp {
	case PackCompNone:
		finalContent = content.Bytes()
	case PackCompZlib:
		var buf bytes.Buffer
		zw, _ := zlib.NewWriterLevel(&buf, zlib.BestCompression)
		if _, err := zw.Write(content.Bytes()); err != nil {
			return nil, err
		}
		if err := zw.Close(); err != nil {
			return nil, err
		}
		finalContent = buf.Bytes()
	case PackCompZstd:
		enc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
		if err != nil {
			return nil, err
		}
		finalContent = enc.EncodeAll(content.Bytes(), nil)
		_ = enc.Close()
	default:
		return nil, errors.Wrapf(ErrMalformedArgument, "unsupported compression: %d", comp)
	}

	var out bytes.Buffer
	out.WriteString(packMagicStr)
	_ = out.WriteByte(packVersion1)
	_ = out.WriteByte(uint8(comp))
	_, _ = out.Write(finalContent)
	return out.Bytes(), nil
}

// UnmarshalPack parses a .voxpack and returns the pack and the compression
// it was stored with.
func UnmarshalPack(data []byte) (*Pack, PackCompression, error) {
	if len(data) < len(packMagicStr)+2 || string(data[:len(packMagicStr)]) != packMagicStr {
		return nil, 0, errors.Wrap(ErrPackFormat, "missing VOXPACK magic")
	}
	version := data[len(packMagicStr)]
	if version != packVersion1 {
		return nil, 0, errors.Wrapf(ErrPackFormat, "unsupported pack version: %d", version)
	}
	comp := PackCompression(data[len(packMagicStr)+1])
	contentBytes := data[len(packMagicStr)+2:]
	switch comp {
	case PackCompNone:
	case PackCompZlib:
		zr, err := zlib.NewReader(bytes.NewReader(contentBytes))
		if err != nil {
			return nil, 0, errors.Wrapf(ErrPackFormat, "zlib: %v", err)
		}
		defer zr.Close()
		b, err := io.ReadAll(zr)
		if err != nil {
			return nil, 0, errors.Wrapf(ErrPackFormat, "zlib: %v", err)
		}
		contentBytes = b
	case PackCompZstd:
		dec, err := zstd.NewReader(nil)
		if err != nil {
			return nil, 0, err
		}
		defer dec.Close()
		b, err := dec.DecodeAll(contentBytes, nil)
		if err != nil {
			return nil, 0, errors.Wrapf(ErrPackFormat, "zstd: %v", err)
		}
		contentBytes = b
	default:
		return nil, 0, errors.Wrapf(ErrPackFormat, "unsupported compression: %d", comp)
	}

	p, err := readPackContent(bytes.NewReader(contentBytes))
	if err != nil {
		return nil, 0, err
	}
	return p, comp, nil
}

func readPackContent(r *bytes.Reader) (*Pack, error) {
	short := func(err error, what string) error {
		return errors.Wrapf(ErrPackFormat, "%s: %v", what, err)
	}
	p := &Pack{}
	if err := binary.Read(r, binary.LittleEndian, &p.Version); err != nil {
		return nil, short(err, "version")
	}
	var pal [256][4]uint8
	if err := binary.Read(r, binary.LittleEndian, &pal); err != nil {
		return nil, short(err, "palette")
	}
	for i, c := range pal {
		p.Palette[i] = Color{R: c[0], G: c[1], B: c[2], A: c[3]}
	}
	var n uint32
	if err := binary.Read(r, binary.LittleEndian, &n); err != nil {
		return nil, short(err, "model count")
	}
	for i := uint32(0); i < n; i++ {
		var nameLen uint16
		if err := binary.Read(r, binary.LittleEndian, &nameLen); err != nil {
			return nil, short(err, "name length")
		}
		nameBytes := make([]byte, nameLen)
		if _, err := io.ReadFull(r, nameBytes); err != nil {
			return nil, short(err, "name")
		}
		var dims [3]uint32
		if err := binary.Read(r, binary.LittleEndian, &dims); err != nil {
			return nil, short(err, "extent")
		}
		var fp uint64
		if err := binary.Read(r, binary.LittleEndian, &fp); err != nil {
			return nil, short(err, "fingerprint")
		}
		var ref int32
		if err := binary.Read(r, binary.LittleEndian, &ref); err != nil {
			return nil, short(err, "reference")
		}
		m := PackModel{Name: string(nameBytes), Size: Vec3i{X: dims[0], Y: dims[1], Z: dims[2]}}
		if ref >= 0 {
			if uint32(ref) >= i {
				return nil, errors.Wrapf(ErrPackFormat, "model %s references later model %d", m.Name, ref)
			}
			src := p.Models[ref]
			if src.Size != m.Size {
				return nil, errors.Wrapf(ErrPackFormat, "model %s references model %d of different extent", m.Name, ref)
			}
			m.Cells = append([]uint8(nil), src.Cells...)
		} else {
			var plen uint32
			if err := binary.Read(r, binary.LittleEndian, &plen); err != nil {
				return nil, short(err, "cells length")
			}
			if uint64(plen) != m.Size.Cells() || int64(plen) > int64(r.Len()) {
				return nil, errors.Wrapf(ErrPackFormat, "model %s: %d cells for extent %dx%dx%d", m.Name, plen, dims[0], dims[1], dims[2])
			}
			stream := make([]uint8, plen)
			if _, err := io.ReadFull(r, stream); err != nil {
				return nil, short(err, "cells")
			}
			m.Cells = mortonRestore(m.Size, stream)
		}
		if got := fingerprint(m.Size, m.Cells); got != fp {
			return nil, errors.Wrapf(ErrPackChecksum, "model %s: fingerprint %016x, stored %016x", m.Name, got, fp)
		}
		p.Models = append(p.Models, m)
	}
	return p, nil
}

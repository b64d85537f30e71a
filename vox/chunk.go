package vox

import (
	"github.com/pkg/errors"
)

// maxChunkDepth bounds recursion through nested MAIN chunks.
const maxChunkDepth = 64

// scope is the state shared by the children of one MAIN chunk. The extent
// set by a SIZE chunk is consumed by the XYZI chunks that follow it.
type scope struct {
	size    Vec3i
	hasSize bool
}

// readChunk reads one chunk and its children, then seeks to the end of the
// chunk so a handler that reads too little or too much does not desync the
// stream.
func (s *session) readChunk(sc *scope, depth int) error {
	if depth > maxChunkDepth {
		return errors.Wrapf(ErrNestingTooDeep, "at offset %d", s.c.Tell())
	}
	id, err := s.c.readTag()
	if err != nil {
		return errors.Wrap(err, "chunk tag")
	}
	contentsSize, err := s.c.ReadU32LE()
	if err != nil {
		return errors.Wrapf(err, "%s contents size", id)
	}
	childrenSize, err := s.c.ReadU32LE()
	if err != nil {
		return errors.Wrapf(err, "%s children size", id)
	}
	hdr := ChunkHeader{
		ID:            id,
		ContentsSize:  contentsSize,
		ChildrenSize:  childrenSize,
		ContentsStart: s.c.Tell(),
		Depth:         depth,
	}
	s.file.Chunks = append(s.file.Chunks, hdr)
	s.log.Debugf("chunk %s at %d: contents=%d children=%d depth=%d", id, hdr.Start(), contentsSize, childrenSize, depth)

	switch id {
	case tagMain:
		err = s.readMain(hdr, depth)
	case tagSize:
		err = s.readSize(sc)
	case tagXYZI:
		err = s.readXYZI(sc)
	case tagRGBA:
		err = s.readRGBA()
	default:
		if s.file.Skipped == nil {
			s.file.Skipped = make(map[string]int)
		}
		s.file.Skipped[id]++
		s.log.Debugf("skipping unhandled chunk %q", id)
	}
	if err != nil {
		return errors.Wrapf(err, "%s chunk at offset %d", id, hdr.Start())
	}
	return s.c.Seek(hdr.End())
}

// readMain skips MAIN's own contents and reads its children in stream order
// until the cursor reaches the end of the children.
func (s *session) readMain(hdr ChunkHeader, depth int) error {
	if err := s.c.Seek(hdr.ContentsStart + int64(hdr.ContentsSize)); err != nil {
		return err
	}
	end := s.c.Tell() + int64(hdr.ChildrenSize)
	sc := &scope{}
	for s.c.Tell() < end {
		if err := s.readChunk(sc, depth+1); err != nil {
			return err
		}
	}
	return nil
}

func (s *session) readSize(sc *scope) error {
	var dims [3]uint32
	for i := range dims {
		v, err := s.c.ReadU32LE()
		if err != nil {
			return err
		}
		dims[i] = v
	}
	size := Vec3i{X: dims[0], Y: dims[1], Z: dims[2]}
	if size.Cells() > s.opts.maxDenseCells() {
		return errors.Wrapf(ErrExtentTooLarge, "%dx%dx%d exceeds %d cells", size.X, size.Y, size.Z, s.opts.maxDenseCells())
	}
	sc.size, sc.hasSize = size, true
	return nil
}

// readXYZI builds one model from the voxel stream. The dense model is always
// built because the hidden-voxel filter needs neighbor lookups; the options
// only decide which representations are kept.
func (s *session) readXYZI(sc *scope) error {
	if !sc.hasSize {
		return errors.WithStack(ErrMissingSize)
	}
	dense := NewDenseModel(sc.size)
	sparse := NewSparseModel(sc.size)

	n, err := s.c.ReadU32LE()
	if err != nil {
		return errors.Wrap(err, "voxel count")
	}
	var voxels []Voxel
	for i := uint32(0); i < n; i++ {
		var rec [4]uint8
		for j := range rec {
			if rec[j], err = s.c.ReadU8(); err != nil {
				return errors.Wrapf(err, "voxel %d of %d", i, n)
			}
		}
		v := Voxel{X: rec[0], Y: rec[1], Z: rec[2], Color: rec[3]}
		if err := dense.SetVoxel(int(v.X), int(v.Y), int(v.Z), v.Color); err != nil {
			return errors.Wrapf(err, "voxel %d of %d", i, n)
		}
		voxels = append(voxels, v)
	}

	if s.opts.RemoveHiddenVoxels {
		kept, removed := RemoveHiddenVoxels(dense, voxels)
		sparse.Voxels = kept
		s.log.Debugf("model %d: removed %d hidden voxels of %d", s.models, removed, len(voxels))
	} else {
		sparse.Voxels = voxels
	}
	s.models++

	if s.opts.LoadDense {
		s.file.Dense = append(s.file.Dense, dense)
	}
	if s.opts.LoadSparse {
		s.file.Sparse = append(s.file.Sparse, sparse)
	}
	return nil
}

// readRGBA fills palette indices 1..255 from the first 255 color groups of
// the chunk. Index 0 is never written and the 256th group is left unread.
func (s *session) readRGBA() error {
	for i := 1; i < len(s.file.Palette); i++ {
		var ch [4]int
		for j := range ch {
			v, err := s.c.ReadSByte()
			if err != nil {
				return errors.Wrapf(err, "palette entry %d", i)
			}
			ch[j] = v
		}
		s.file.Palette[i] = Color{R: uint8(ch[0]), G: uint8(ch[1]), B: uint8(ch[2]), A: uint8(ch[3])}
	}
	return nil
}

package vox

import (
	"bytes"
	"io"
	"os"

	"github.com/pkg/errors"
)

// DefaultMaxDenseCells caps the cell count of a single model. MagicaVoxel
// models are at most 256^3 cells.
const DefaultMaxDenseCells = 1 << 30

// Options selects which representations a Loader keeps.
type Options struct {
	// LoadDense keeps a DenseModel per XYZI chunk.
	LoadDense bool
	// LoadSparse keeps a SparseModel per XYZI chunk.
	LoadSparse bool
	// RemoveHiddenVoxels drops voxels enclosed on all six sides from sparse
	// models and clears them in dense models.
	RemoveHiddenVoxels bool
	// StampSparsePalette also copies the file palette onto sparse models.
	// When false, sparse models keep the default palette they were built
	// with, even if the file has an RGBA chunk.
	StampSparsePalette bool
	// MaxDenseCells rejects SIZE chunks with more cells. Zero means
	// DefaultMaxDenseCells.
	MaxDenseCells uint64
	// Logger receives chunk-level diagnostics. May be nil.
	Logger Logger
}

// DefaultOptions keeps both representations and removes hidden voxels.
func DefaultOptions() Options {
	return Options{LoadDense: true, LoadSparse: true, RemoveHiddenVoxels: true}
}

func (o Options) maxDenseCells() uint64 {
	if o.MaxDenseCells == 0 {
		return DefaultMaxDenseCells
	}
	return o.MaxDenseCells
}

// File is the result of one load.
type File struct {
	// Version is the format version from the file header. It is not
	// validated.
	Version int32
	// Palette is the default palette, overwritten by the file's RGBA chunk.
	Palette Palette
	Dense   []*DenseModel
	Sparse  []*SparseModel
	// Chunks lists every visited chunk header in stream order.
	Chunks []ChunkHeader
	// Skipped counts chunks by tag that were not interpreted.
	Skipped map[string]int
}

// Loader reads .vox files. A Loader must not be used by more than one
// goroutine at a time.
type Loader struct {
	opts   Options
	dense  []*DenseModel
	sparse []*SparseModel
}

// NewLoader returns a loader with the given options.
func NewLoader(opts Options) *Loader {
	return &Loader{opts: opts}
}

// DenseModels returns the dense models of the last successful load.
func (l *Loader) DenseModels() []*DenseModel { return l.dense }

// SparseModels returns the sparse models of the last successful load.
func (l *Loader) SparseModels() []*SparseModel { return l.sparse }

// Load reads the whole file at path and decodes it.
func (l *Loader) Load(path string) (*File, error) {
	l.reset()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, ioFailure(err, "read %s", path)
	}
	return l.LoadBytes(data)
}

// LoadBytes decodes a .vox file held in memory.
func (l *Loader) LoadBytes(data []byte) (*File, error) {
	return l.LoadReader(bytes.NewReader(data))
}

// LoadReader decodes a .vox file starting at the current offset of r.
// Chunk offsets in File.Chunks are absolute offsets in r.
func (l *Loader) LoadReader(r io.ReadSeeker) (*File, error) {
	l.reset()
	c, err := NewCursor(r)
	if err != nil {
		return nil, err
	}
	s := &session{
		c:    c,
		opts: l.opts,
		log:  l.opts.Logger,
		file: &File{Palette: DefaultPalette},
	}
	if s.log == nil {
		s.log = nopLogger{}
	}
	if err := s.run(); err != nil {
		return nil, err
	}
	l.dense, l.sparse = s.file.Dense, s.file.Sparse
	return s.file, nil
}

func (l *Loader) reset() {
	l.dense, l.sparse = nil, nil
}

// session holds the mutable state of a single load.
type session struct {
	c      *Cursor
	opts   Options
	log    Logger
	file   *File
	models int
}

func (s *session) run() error {
	if err := s.c.ReadID(fileMagic); err != nil {
		return err
	}
	version, err := s.c.ReadI32LE()
	if err != nil {
		return errors.Wrap(err, "version")
	}
	s.file.Version = version

	// Only the first top-level chunk is read; files carry a single MAIN.
	if err := s.readChunk(&scope{}, 0); err != nil {
		return err
	}

	for _, m := range s.file.Dense {
		m.Palette = s.file.Palette
	}
	if s.opts.StampSparsePalette {
		for _, m := range s.file.Sparse {
			m.Palette = s.file.Palette
		}
	}
	s.log.Debugf("loaded version %d: %d dense, %d sparse models", version, len(s.file.Dense), len(s.file.Sparse))
	return nil
}

// Load reads the file at path with DefaultOptions.
func Load(path string) (*File, error) {
	return NewLoader(DefaultOptions()).Load(path)
}

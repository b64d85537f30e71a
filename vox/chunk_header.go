package vox

// Chunk tags understood by the loader. Any other tag is skipped.
const (
	tagMain = "MAIN"
	tagSize = "SIZE"
	tagXYZI = "XYZI"
	tagRGBA = "RGBA"

	fileMagic = "VOX "

	// chunkHeaderLen is the tag plus the two u32 size fields.
	chunkHeaderLen = 12
)

// ChunkHeader is the 12-byte header of one chunk, as visited by the loader.
// ContentsStart is the absolute offset right after the header.
type ChunkHeader struct {
	ID            string
	ContentsSize  uint32
	ChildrenSize  uint32
	ContentsStart int64
	Depth         int
}

// Start returns the absolute offset of the chunk tag.
func (h ChunkHeader) Start() int64 { return h.ContentsStart - chunkHeaderLen }

// End returns the absolute offset of the byte after the chunk's children,
// where the next sibling chunk begins.
func (h ChunkHeader) End() int64 {
	return h.ContentsStart + int64(h.ContentsSize) + int64(h.ChildrenSize)
}

package vox

import (
	"bytes"
	"encoding/binary"
)

// chunk is a test fixture node serialized as a .vox chunk.
type chunk struct {
	id       string
	contents []byte
	children []chunk
}

func (c chunk) bytes() []byte {
	var kids bytes.Buffer
	for _, k := range c.children {
		kids.Write(k.bytes())
	}
	var b bytes.Buffer
	b.WriteString(c.id)
	_ = binary.Write(&b, binary.LittleEndian, uint32(len(c.contents)))
	_ = binary.Write(&b, binary.LittleEndian, uint32(kids.Len()))
	b.Write(c.contents)
	b.Write(kids.Bytes())
	return b.Bytes()
}

func sizeChunk(x, y, z uint32) chunk {
	var b bytes.Buffer
	_ = binary.Write(&b, binary.LittleEndian, [3]uint32{x, y, z})
	return chunk{id: "SIZE", contents: b.Bytes()}
}

func xyziChunk(voxels ...Voxel) chunk {
	var b bytes.Buffer
	_ = binary.Write(&b, binary.LittleEndian, uint32(len(voxels)))
	for _, v := range voxels {
		b.Write([]byte{v.X, v.Y, v.Z, v.Color})
	}
	return chunk{id: "XYZI", contents: b.Bytes()}
}

// rgbaChunk writes 256 color groups; entries maps a stream position to a
// color, other positions are zero.
func rgbaChunk(entries map[int]Color) chunk {
	b := make([]byte, 256*4)
	for k, c := range entries {
		copy(b[k*4:], []byte{c.R, c.G, c.B, c.A})
	}
	return chunk{id: "RGBA", contents: b}
}

func mainChunk(children ...chunk) chunk {
	return chunk{id: "MAIN", children: children}
}

func voxFile(root chunk) []byte {
	var b bytes.Buffer
	b.WriteString("VOX ")
	_ = binary.Write(&b, binary.LittleEndian, int32(150))
	b.Write(root.bytes())
	return b.Bytes()
}

func solidCube(n int, color uint8) []Voxel {
	var out []Voxel
	for z := 0; z < n; z++ {
		for y := 0; y < n; y++ {
			for x := 0; x < n; x++ {
				out = append(out, Voxel{X: uint8(x), Y: uint8(y), Z: uint8(z), Color: color})
			}
		}
	}
	return out
}

func cubeCorners(color uint8) []Voxel {
	var out []Voxel
	for z := uint8(0); z < 2; z++ {
		for y := uint8(0); y < 2; y++ {
			for x := uint8(0); x < 2; x++ {
				out = append(out, Voxel{X: x, Y: y, Z: z, Color: color + x + 2*y + 4*z})
			}
		}
	}
	return out
}

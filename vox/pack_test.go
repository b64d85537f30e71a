package vox

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadTestFile(t *testing.T) *File {
	t.Helper()
	data := voxFile(mainChunk(
		sizeChunk(3, 3, 3), xyziChunk(solidCube(3, 4)...),
		sizeChunk(2, 2, 2), xyziChunk(cubeCorners(1)...),
		sizeChunk(3, 3, 3), xyziChunk(solidCube(3, 4)...),
		rgbaChunk(map[int]Color{0: {R: 9, G: 8, B: 7, A: 6}}),
	))
	f, err := NewLoader(DefaultOptions()).LoadBytes(data)
	require.NoError(t, err)
	require.Len(t, f.Dense, 3)
	return f
}

func TestPack_Roundtrip(t *testing.T) {
	f := loadTestFile(t)
	p := PackFromFile(f)

	for _, comp := range []PackCompression{PackCompNone, PackCompZlib, PackCompZstd} {
		data, err := p.Marshal(comp)
		require.NoError(t, err, comp.String())

		got, gotComp, err := UnmarshalPack(data)
		require.NoError(t, err, comp.String())
		assert.Equal(t, comp, gotComp)
		assert.Equal(t, p, got, comp.String())

		models, err := got.DenseModels()
		require.NoError(t, err)
		require.Len(t, models, 3)
		for i, m := range models {
			assert.Equal(t, f.Dense[i].Size(), m.Size())
			assert.Equal(t, f.Dense[i].Data(), m.Data())
			assert.Equal(t, f.Palette, m.Palette)
			assert.Equal(t, f.Dense[i].Fingerprint(), m.Fingerprint())
		}
	}
}

func TestPack_DeduplicatesIdenticalModels(t *testing.T) {
	p := PackFromFile(loadTestFile(t))
	withDup, err := p.Marshal(PackCompNone)
	require.NoError(t, err)

	p.Models = p.Models[:2]
	withoutDup, err := p.Marshal(PackCompNone)
	require.NoError(t, err)

	// the third model adds only its header and a reference
	extra := len(withDup) - len(withoutDup)
	assert.Equal(t, 2+len("model_2")+12+8+4, extra)
}

func TestPack_ChecksumMismatch(t *testing.T) {
	p := &Pack{Palette: DefaultPalette, Models: []PackModel{{Name: "a", Size: Vec3i{X: 1, Y: 1, Z: 1}, Cells: []uint8{3}}}}
	data, err := p.Marshal(PackCompNone)
	require.NoError(t, err)
	data[len(data)-1] = 4

	_, _, err = UnmarshalPack(data)
	assert.ErrorIs(t, err, ErrPackChecksum)
	assert.ErrorIs(t, err, ErrPackFormat)
}

func TestPack_Malformed(t *testing.T) {
	_, _, err := UnmarshalPack([]byte("VOX 1234"))
	assert.ErrorIs(t, err, ErrPackFormat)

	p := &Pack{Palette: DefaultPalette}
	data, err := p.Marshal(PackCompZstd)
	require.NoError(t, err)
	_, _, err = UnmarshalPack(data[:len(data)-3])
	assert.ErrorIs(t, err, ErrPackFormat)

	data[8] = 9
	_, _, err = UnmarshalPack(data)
	assert.ErrorIs(t, err, ErrPackFormat)

	bad := &Pack{Models: []PackModel{{Name: "x", Size: Vec3i{X: 2, Y: 2, Z: 2}, Cells: []uint8{1}}}}
	_, err = bad.Marshal(PackCompNone)
	assert.ErrorIs(t, err, ErrMalformedArgument)
	_, err = p.Marshal(PackCompression(42))
	assert.ErrorIs(t, err, ErrMalformedArgument)
}

func TestParsePackCompression(t *testing.T) {
	for s, want := range map[string]PackCompression{"none": PackCompNone, "zlib": PackCompZlib, "zstd": PackCompZstd} {
		got, err := ParsePackCompression(s)
		require.NoError(t, err)
		assert.Equal(t, want, got)
		assert.Equal(t, s, got.String())
	}
	_, err := ParsePackCompression("lz4")
	assert.ErrorIs(t, err, ErrMalformedArgument)
}

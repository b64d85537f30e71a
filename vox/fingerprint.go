package vox

import (
	"encoding/binary"

	xxhash "github.com/cespare/xxhash/v2"
)

// Fingerprint hashes the extent and cells of m. The palette is not included,
// so two models with the same occupancy and indices match.
func (m *DenseModel) Fingerprint() uint64 {
	return fingerprint(m.size, m.voxels)
}

func fingerprint(size Vec3i, cells []uint8) uint64 {
	var hdr [12]byte
	binary.LittleEndian.PutUint32(hdr[0:], size.X)
	binary.LittleEndian.PutUint32(hdr[4:], size.Y)
	binary.LittleEndian.PutUint32(hdr[8:], size.Z)
	d := xxhash.New()
	_, _ = d.Write(hdr[:])
	_, _ = d.Write(cells)
	return d.Sum64()
}

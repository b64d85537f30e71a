package utils

import (
	"fmt"
	"os"
	"time"

	"github.com/voxoid0/vox-file/api"
	"github.com/voxoid0/vox-file/vox"
)

func convertFile(inPath, outPath string, conv func([]byte) ([]byte, error)) error {
	in, err := os.ReadFile(inPath)
	if err != nil {
		return err
	}
	out, err := conv(in)
	if err != nil {
		return fmt.Errorf("%s: %w", inPath, err)
	}
	return os.WriteFile(outPath, out, 0o644)
}

// RunVox2GLB converts a .vox file to a .glb file, one node per model.
func RunVox2GLB(inPath, outPath string, opts vox.Options, glb api.GLBOptions) error {
	return convertFile(inPath, outPath, func(b []byte) ([]byte, error) {
		return api.VoxToGLB(b, opts, glb)
	})
}

// RunVox2Pack converts a .vox file to a .voxpack file.
func RunVox2Pack(inPath, outPath string, opts vox.Options, comp vox.PackCompression) error {
	return convertFile(inPath, outPath, func(b []byte) ([]byte, error) {
		start := time.Now()
		out, err := api.VoxToPack(b, opts, comp)
		if err == nil && opts.Logger != nil {
			opts.Logger.Infof("packing %s (%s) took %d ms", inPath, comp, time.Since(start).Milliseconds())
		}
		return out, err
	})
}

// RunPack2GLB converts a .voxpack file to a .glb file.
func RunPack2GLB(inPath, outPath string, glb api.GLBOptions) error {
	return convertFile(inPath, outPath, func(b []byte) ([]byte, error) {
		return api.PackToGLB(b, glb)
	})
}

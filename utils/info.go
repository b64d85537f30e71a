package utils

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/voxoid0/vox-file/api"
	"github.com/voxoid0/vox-file/vox"
)

// FileInfo is the summary of one inspected file.
type FileInfo struct {
	Path    string       `json:"path"`
	Summary *api.Summary `json:"summary,omitempty"`
	Error   string       `json:"error,omitempty"`
}

// Inspect summarizes every path in parallel. Each goroutine uses its own
// loader. Results keep the order of paths; per-file failures are reported in
// FileInfo.Error.
func Inspect(paths []string, opts vox.Options) []FileInfo {
	infos := make([]FileInfo, len(paths))
	var wg sync.WaitGroup
	for i := range paths {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			infos[i].Path = paths[i]
			b, err := os.ReadFile(paths[i])
			if err != nil {
				infos[i].Error = err.Error()
				return
			}
			s, err := api.Summarize(b, opts)
			if err != nil {
				infos[i].Error = err.Error()
				return
			}
			infos[i].Summary = &s
		}(i)
	}
	wg.Wait()
	return infos
}

// RunInfo writes one JSON document per path to w. It returns an error if
// any file failed to load.
func RunInfo(w io.Writer, paths []string, opts vox.Options) error {
	if len(paths) == 0 {
		return fmt.Errorf("no .vox files provided")
	}
	infos := Inspect(paths, opts)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	failed := 0
	for _, info := range infos {
		if err := enc.Encode(info); err != nil {
			return err
		}
		if info.Error != "" {
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d files failed to load", failed, len(paths))
	}
	return nil
}

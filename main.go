//go:build !(js && wasm)

package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/voxoid0/vox-file/config"
	"github.com/voxoid0/vox-file/utils"
	"github.com/voxoid0/vox-file/vox"
)

func usage() {
	fmt.Println("Usage: voxtool [-config voxtool.yaml] [-debug] <command> [args]")
	fmt.Println("Commands:")
	fmt.Println("  info input1.vox [input2.vox ...]      (print a JSON summary per file)")
	fmt.Println("  vox2glb input.vox output.glb          (convert .vox -> .glb using greedy mesh, one node per model)")
	fmt.Println("  vox2pack input.vox output.voxpack     (cache the dense models of a .vox in a .voxpack)")
	fmt.Println("  pack2glb input.voxpack output.glb     (convert .voxpack -> .glb)")
}

func fail(err error) {
	fmt.Println("Error:", err)
	os.Exit(1)
}

func main() {
	var (
		configPath = flag.String("config", "", "path to voxtool.yaml (default: built-in defaults)")
		debug      = flag.Bool("debug", false, "log every chunk visited")
	)
	flag.Usage = usage
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fail(err)
	}
	logger := vox.NewStdLogger("voxtool", cfg.Debug || *debug)
	opts := cfg.LoaderOptions(logger)

	args := flag.Args()
	if len(args) < 1 {
		usage()
		os.Exit(1)
	}

	switch args[0] {
	case "info":
		if len(args) < 2 {
			usage()
			os.Exit(1)
		}
		if err := utils.RunInfo(os.Stdout, args[1:], opts); err != nil {
			fail(err)
		}
		return
	case "vox2glb":
		if len(args) != 3 {
			usage()
			os.Exit(1)
		}
		if err := utils.RunVox2GLB(args[1], args[2], opts, cfg.GLBOptions()); err != nil {
			fail(err)
		}
	case "vox2pack":
		if len(args) != 3 {
			usage()
			os.Exit(1)
		}
		if err := utils.RunVox2Pack(args[1], args[2], opts, cfg.Compression()); err != nil {
			fail(err)
		}
	case "pack2glb":
		if len(args) != 3 {
			usage()
			os.Exit(1)
		}
		if err := utils.RunPack2GLB(args[1], args[2], cfg.GLBOptions()); err != nil {
			fail(err)
		}
	default:
		usage()
		os.Exit(1)
	}

	fmt.Println("Operation completed!")
}

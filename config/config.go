package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/voxoid0/vox-file/api"
	"github.com/voxoid0/vox-file/vox"
)

type Config struct {
	Load  LoadSpec `yaml:"load"`
	Pack  PackSpec `yaml:"pack"`
	GLB   GLBSpec  `yaml:"glb"`
	Debug bool     `yaml:"debug"`
}

type LoadSpec struct {
	Dense              bool   `yaml:"dense"`
	Sparse             bool   `yaml:"sparse"`
	RemoveHidden       bool   `yaml:"remove_hidden"`
	StampSparsePalette bool   `yaml:"stamp_sparse_palette"`
	MaxDenseCells      uint64 `yaml:"max_dense_cells"`
}

type PackSpec struct {
	Compression string `yaml:"compression"`
}

type GLBSpec struct {
	Generator string  `yaml:"generator"`
	Gap       float32 `yaml:"gap"`
}

// Load reads a YAML config from path. An empty path yields the defaults.
func Load(path string) (Config, error) {
	cfg := defaults()
	if strings.TrimSpace(path) == "" {
		cfg.Normalize()
		return cfg, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func defaults() Config {
	glb := api.DefaultGLBOptions()
	return Config{
		Load: LoadSpec{
			Dense:         true,
			Sparse:        true,
			RemoveHidden:  true,
			MaxDenseCells: vox.DefaultMaxDenseCells,
		},
		Pack: PackSpec{Compression: vox.PackCompZstd.String()},
		GLB:  GLBSpec{Generator: glb.Generator, Gap: glb.Gap},
	}
}

func (c *Config) Normalize() {
	if c == nil {
		return
	}
	c.Pack.Compression = strings.ToLower(strings.TrimSpace(c.Pack.Compression))
	if c.Pack.Compression == "" {
		c.Pack.Compression = vox.PackCompZstd.String()
	}
	if c.Load.MaxDenseCells == 0 {
		c.Load.MaxDenseCells = vox.DefaultMaxDenseCells
	}
	if strings.TrimSpace(c.GLB.Generator) == "" {
		c.GLB.Generator = api.DefaultGLBOptions().Generator
	}
}

func (c Config) Validate() error {
	if !c.Load.Dense && !c.Load.Sparse {
		return fmt.Errorf("load: at least one of dense or sparse must be enabled")
	}
	if _, err := vox.ParsePackCompression(c.Pack.Compression); err != nil {
		return fmt.Errorf("pack.compression: %w", err)
	}
	if c.GLB.Gap < 0 {
		return fmt.Errorf("glb.gap must be >= 0, got %v", c.GLB.Gap)
	}
	return nil
}

// LoaderOptions maps the load section onto vox.Options.
func (c Config) LoaderOptions(log vox.Logger) vox.Options {
	return vox.Options{
		LoadDense:          c.Load.Dense,
		LoadSparse:         c.Load.Sparse,
		RemoveHiddenVoxels: c.Load.RemoveHidden,
		StampSparsePalette: c.Load.StampSparsePalette,
		MaxDenseCells:      c.Load.MaxDenseCells,
		Logger:             log,
	}
}

// Compression returns the parsed pack compression. Validate has already
// rejected unknown names.
func (c Config) Compression() vox.PackCompression {
	comp, err := vox.ParsePackCompression(c.Pack.Compression)
	if err != nil {
		return vox.PackCompZstd
	}
	return comp
}

func (c Config) GLBOptions() api.GLBOptions {
	return api.GLBOptions{Generator: c.GLB.Generator, Gap: c.GLB.Gap}
}

// Package config loads the small YAML file that describes the
// environment a build-index run executes in: where the content lives,
// how to convert binary assets to text, and the default traversal
// caps. The teacher exposes the equivalent tunables as CLI flags
// (renderer.Options, cmd/render.go); this pipeline is meant to run
// unattended in a build step, so they are persisted to disk instead.
package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds host-provided environment and default traversal caps.
//
// MaxFiles is a literal cap on distinct source files entered beyond
// SkipFiles, not a "0 disables the cap" flag: a traversal configured
// with MaxFiles == 0 and SkipFiles == 0 does not load even the root
// stage and therefore emits no records. Default() picks a large
// sentinel so an unconfigured run behaves as unbounded; only an explicit
// 0 in a loaded config file means "cap at zero".
type Config struct {
	ContentRoot       string `yaml:"content_root"`
	BinaryToTextTool  string `yaml:"binary_to_text_tool"`
	MaxDepth          int    `yaml:"max_depth"`
	MaxFiles          int    `yaml:"max_files"`
	SkipFiles         int    `yaml:"skip_files"`
	FlushEveryNMeshes int    `yaml:"flush_every_n_meshes"`
}

// unboundedFiles is the MaxFiles sentinel Default() uses to mean "no
// practical cap"; it is not the zero value, since zero is a legitimate,
// literal cap of its own (see Config's doc comment).
const unboundedFiles = 1 << 30

// Default returns the configuration used when no file is supplied.
func Default() *Config {
	return &Config{
		MaxDepth:          32,
		MaxFiles:          unboundedFiles,
		SkipFiles:         0,
		FlushEveryNMeshes: 2048,
	}
}

// Load reads and parses a YAML config file. Fields the file omits keep
// their Default() value; an explicit 0 for max_depth or
// flush_every_n_meshes is also replaced by the default, while an
// explicit 0 for max_files or skip_files is kept as written.
func Load(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := Default()
	if err := yaml.Unmarshal(raw, cfg); err != nil {
		return nil, err
	}

	def := Default()
	if cfg.MaxDepth == 0 {
		cfg.MaxDepth = def.MaxDepth
	}
	if cfg.FlushEveryNMeshes == 0 {
		cfg.FlushEveryNMeshes = def.FlushEveryNMeshes
	}
	return cfg, nil
}

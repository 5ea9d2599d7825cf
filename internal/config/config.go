// Package config holds defaults for the split and stats commands and
// loads overrides from a YAML or JSON file.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"dsprep/internal/split"
	"dsprep/internal/stats"
)

// Split configures the stratified splitter.
type Split struct {
	Input      string  `json:"input" yaml:"input"`
	OutDir     string  `json:"outdir" yaml:"outdir"`
	Train      float64 `json:"train" yaml:"train"`
	Dev        float64 `json:"dev" yaml:"dev"`
	Test       float64 `json:"test" yaml:"test"`
	Seed       int64   `json:"seed" yaml:"seed"`
	LabelField string  `json:"label_field" yaml:"label_field"`
}

// Ratios returns the configured (unnormalized) ratios.
func (s Split) Ratios() split.Ratios {
	return split.Ratios{Train: s.Train, Dev: s.Dev, Test: s.Test}
}

// Stats configures the dataset reporter.
type Stats struct {
	AllowedLabels []string `json:"allowed_labels" yaml:"allowed_labels"`
	TopDuplicates int      `json:"top_duplicates" yaml:"top_duplicates"`
	PreviewWidth  int      `json:"preview_width" yaml:"preview_width"`
	Format        string   `json:"format" yaml:"format"`
}

// Options converts the section to reporter options.
func (s Stats) Options() stats.Options {
	return stats.Options{
		AllowedLabels: s.AllowedLabels,
		TopDuplicates: s.TopDuplicates,
		PreviewWidth:  s.PreviewWidth,
	}
}

// Config is the whole configuration file.
type Config struct {
	Split Split `json:"split" yaml:"split"`
	Stats Stats `json:"stats" yaml:"stats"`
}

// Default returns the built-in defaults.
func Default() *Config {
	return &Config{
		Split: Split{
			Input:      "all.jsonl",
			OutDir:     ".",
			Train:      split.DefaultRatios.Train,
			Dev:        split.DefaultRatios.Dev,
			Test:       split.DefaultRatios.Test,
			Seed:       42,
			LabelField: "label",
		},
		Stats: Stats{
			AllowedLabels: append([]string(nil), stats.AllowedLabels...),
			TopDuplicates: stats.DefaultTopDuplicates,
			PreviewWidth:  stats.DefaultPreviewWidth,
			Format:        "text",
		},
	}
}

// LoadFromPath reads a config file (YAML or JSON) over the defaults.
// Format is detected by extension (.yaml/.yml → YAML, .json → JSON) or by content.
func LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	return Load(data, filepath.Ext(path))
}

// Load parses config bytes over the defaults. ext is the file extension
// used as a format hint; empty means detect from content.
func Load(data []byte, ext string) (*Config, error) {
	c := Default()
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		return c, decodeYAML(data, c)
	case ".json":
		return c, decodeJSON(data, c)
	}
	if strings.HasPrefix(strings.TrimSpace(string(data)), "{") {
		return c, decodeJSON(data, c)
	}
	return c, decodeYAML(data, c)
}

func decodeYAML(data []byte, c *Config) error {
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse config yaml: %w", err)
	}
	return nil
}

func decodeJSON(data []byte, c *Config) error {
	if err := json.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse config json: %w", err)
	}
	return nil
}

// Package config resolves which tool srcfmt runs, and on which files.
package config

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"

	"github.com/andyballingall/srcfmt/internal/fs"
	"github.com/andyballingall/srcfmt/internal/tool"
	"github.com/andyballingall/srcfmt/internal/validator"
)

const (
	YAMLFile    = ".srcfmt.yml"
	YAMLAltFile = ".srcfmt.yaml"
	TOMLFile    = ".srcfmt.toml"

	// EnvVar names an override file, as --config does.
	EnvVar = "SRCFMT_CONFIG"

	schemaID = "srcfmt-config.schema.json"
)

// SearchOrder lists the override files looked for in the working directory. First match wins.
var SearchOrder = []string{YAMLFile, YAMLAltFile, TOMLFile}

//go:embed config.schema.json
var schemaJSON []byte

// Config describes one formatting sweep.
type Config struct {
	// Tool is the formatter executable, resolved on PATH unless it contains a separator.
	Tool string `json:"tool"`
	// Args precede the file path on each invocation.
	Args []string `json:"args"`
	// Roots are swept in order.
	Roots []string `json:"roots"`
	// Extensions are matched as file name suffixes.
	Extensions []string `json:"extensions"`
	// Exclude holds doublestar globs matched against slash-separated paths relative to the working directory.
	Exclude []string `json:"exclude"`

	// Source is the file the config was read from; empty when only defaults apply.
	Source string `json:"-"`
}

// Default returns the fixed sweep: clang-format over src, include and tests for .c and .h files.
func Default() *Config {
	return &Config{
		Tool:       tool.DefaultCommand,
		Args:       tool.DefaultArgs(),
		Roots:      []string{"src", "include", "tests"},
		Extensions: []string{".c", ".h"},
	}
}

// Load returns the configuration for a sweep run from dir. An explicit path
// must exist; otherwise the first file in SearchOrder found in dir is used,
// and Default applies when there is none. Fields the file omits keep their
// defaults. Load registers the config schema with compiler, so each call
// needs a fresh compiler.
func Load(dir, explicit string, compiler validator.Compiler) (*Config, error) {
	path, err := locate(dir, explicit)
	if err != nil {
		return nil, err
	}

	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &InvalidConfigError{Path: path, Wrapped: err}
	}

	normalised, err := normalise(path, data)
	if err != nil {
		return nil, err
	}

	if vErr := validate(path, normalised, compiler); vErr != nil {
		return nil, vErr
	}

	if err = json.Unmarshal(normalised, cfg); err != nil {
		return nil, &InvalidConfigError{Path: path, Wrapped: err}
	}

	for _, p := range cfg.Exclude {
		if !doublestar.ValidatePattern(p) {
			return nil, &InvalidConfigError{Path: path, Wrapped: &InvalidExcludePatternError{Pattern: p}}
		}
	}

	for i, r := range cfg.Roots {
		cfg.Roots[i] = filepath.FromSlash(r)
	}
	cfg.Source = path

	return cfg, nil
}

func locate(dir, explicit string) (string, error) {
	if explicit != "" {
		if !fs.Exists(explicit) {
			return "", &MissingConfigError{Path: explicit}
		}
		return explicit, nil
	}

	for _, name := range SearchOrder {
		p := filepath.Join(dir, name)
		if fs.Exists(p) {
			return p, nil
		}
	}
	return "", nil
}

// normalise decodes a YAML or TOML document and re-encodes it as JSON, so that
// schema validation and field decoding see the same document whatever the source format.
func normalise(path string, data []byte) ([]byte, error) {
	var doc map[string]any

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yml", ".yaml":
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, &InvalidYAMLError{Path: path, Wrapped: err}
		}
	case ".toml":
		if err := toml.Unmarshal(data, &doc); err != nil {
			return nil, &InvalidTOMLError{Path: path, Wrapped: err}
		}
	default:
		return nil, &UnsupportedConfigFormatError{Path: path}
	}

	// An empty file is an empty override.
	if doc == nil {
		doc = map[string]any{}
	}

	out, err := json.Marshal(doc)
	if err != nil {
		return nil, &InvalidConfigError{Path: path, Wrapped: err}
	}
	return out, nil
}

func validate(path string, normalised []byte, compiler validator.Compiler) error {
	schemaDoc, err := validator.ParseJSON(bytes.NewReader(schemaJSON))
	if err != nil {
		return fmt.Errorf("embedded config schema is not valid JSON: %w", err)
	}
	if err = compiler.AddSchema(schemaID, schemaDoc); err != nil {
		return fmt.Errorf("failed to register config schema: %w", err)
	}
	v, err := compiler.Compile(schemaID)
	if err != nil {
		return fmt.Errorf("failed to compile config schema: %w", err)
	}

	doc, err := validator.ParseJSON(bytes.NewReader(normalised))
	if err != nil {
		return &InvalidConfigError{Path: path, Wrapped: err}
	}
	if err = v.Validate(doc); err != nil {
		return &InvalidConfigError{Path: path, Wrapped: err}
	}
	return nil
}

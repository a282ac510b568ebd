package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andyballingall/srcfmt/internal/validator"
)

type stubCompiler struct {
	addErr     error
	compileErr error
}

func (s *stubCompiler) AddSchema(_ string, _ validator.JSONSchema) error {
	return s.addErr
}

func (s *stubCompiler) Compile(_ string) (validator.Validator, error) {
	return nil, s.compileErr
}

func writeConfig(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o600))
	return p
}

func TestDefault(t *testing.T) {
	t.Parallel()

	cfg := Default()
	assert.Equal(t, "clang-format", cfg.Tool)
	assert.Equal(t, []string{"-i", "--style=file"}, cfg.Args)
	assert.Equal(t, []string{"src", "include", "tests"}, cfg.Roots)
	assert.Equal(t, []string{".c", ".h"}, cfg.Extensions)
	assert.Empty(t, cfg.Exclude)
	assert.Empty(t, cfg.Source)
}

func TestLoad_NoConfigFile(t *testing.T) {
	t.Parallel()

	cfg, err := Load(t.TempDir(), "", validator.NewSanthoshCompiler())
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_Overrides(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		file    string
		content string
		check   func(t *testing.T, cfg *Config)
	}{
		{
			name: "yaml overrides only the given fields",
			file: YAMLFile,
			content: `
tool: clang-format-18
extensions: [".c", ".h", ".cpp"]
`,
			check: func(t *testing.T, cfg *Config) {
				t.Helper()
				assert.Equal(t, "clang-format-18", cfg.Tool)
				assert.Equal(t, []string{".c", ".h", ".cpp"}, cfg.Extensions)
				assert.Equal(t, []string{"src", "include", "tests"}, cfg.Roots)
				assert.Equal(t, []string{"-i", "--style=file"}, cfg.Args)
			},
		},
		{
			name:    "alternate yaml extension",
			file:    YAMLAltFile,
			content: "roots: [lib]\n",
			check: func(t *testing.T, cfg *Config) {
				t.Helper()
				assert.Equal(t, []string{"lib"}, cfg.Roots)
			},
		},
		{
			name: "toml",
			file: TOMLFile,
			content: `
tool = "clang-format"
args = ["-i", "--style=file", "--verbose"]
exclude = ["**/third_party/**"]
`,
			check: func(t *testing.T, cfg *Config) {
				t.Helper()
				assert.Equal(t, []string{"-i", "--style=file", "--verbose"}, cfg.Args)
				assert.Equal(t, []string{"**/third_party/**"}, cfg.Exclude)
			},
		},
		{
			name:    "empty yaml file keeps defaults",
			file:    YAMLFile,
			content: "",
			check: func(t *testing.T, cfg *Config) {
				t.Helper()
				assert.Equal(t, Default().Roots, cfg.Roots)
				assert.Equal(t, Default().Tool, cfg.Tool)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			dir := t.TempDir()
			path := writeConfig(t, dir, tt.file, tt.content)

			cfg, err := Load(dir, "", validator.NewSanthoshCompiler())
			require.NoError(t, err)
			assert.Equal(t, path, cfg.Source)
			tt.check(t, cfg)
		})
	}
}

func TestLoad_SearchOrder(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeConfig(t, dir, TOMLFile, `tool = "from-toml"`)
	yml := writeConfig(t, dir, YAMLFile, "tool: from-yml\n")

	cfg, err := Load(dir, "", validator.NewSanthoshCompiler())
	require.NoError(t, err)
	assert.Equal(t, "from-yml", cfg.Tool)
	assert.Equal(t, yml, cfg.Source)
}

func TestLoad_ExplicitPath(t *testing.T) {
	t.Parallel()

	t.Run("explicit file wins over the search", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		writeConfig(t, dir, YAMLFile, "tool: from-search\n")
		explicit := writeConfig(t, t.TempDir(), "custom.toml", `tool = "from-explicit"`)

		cfg, err := Load(dir, explicit, validator.NewSanthoshCompiler())
		require.NoError(t, err)
		assert.Equal(t, "from-explicit", cfg.Tool)
	})

	t.Run("missing explicit file", func(t *testing.T) {
		t.Parallel()
		missing := filepath.Join(t.TempDir(), "nope.yml")

		_, err := Load(t.TempDir(), missing, validator.NewSanthoshCompiler())
		var target *MissingConfigError
		require.ErrorAs(t, err, &target)
		assert.EqualError(t, err, "config file not found: "+missing)
	})

	t.Run("unsupported extension", func(t *testing.T) {
		t.Parallel()
		p := writeConfig(t, t.TempDir(), "srcfmt.json", `{}`)

		_, err := Load(t.TempDir(), p, validator.NewSanthoshCompiler())
		var target *UnsupportedConfigFormatError
		require.ErrorAs(t, err, &target)
	})
}

func TestLoad_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		file    string
		content string
		errType any
		errStr  string
	}{
		{
			name:    "invalid yaml",
			file:    YAMLFile,
			content: "invalid: yaml: :",
			errType: new(*InvalidYAMLError),
			errStr:  "is not a valid yaml document",
		},
		{
			name:    "yaml sequence at top level",
			file:    YAMLFile,
			content: "- src\n- include\n",
			errType: new(*InvalidYAMLError),
			errStr:  "is not a valid yaml document",
		},
		{
			name:    "invalid toml",
			file:    TOMLFile,
			content: "tool = ",
			errType: new(*InvalidTOMLError),
			errStr:  "is not a valid toml document",
		},
		{
			name:    "unknown key",
			file:    YAMLFile,
			content: "style: google\n",
			errType: new(*InvalidConfigError),
			errStr:  "is not a valid srcfmt config",
		},
		{
			name:    "wrong type",
			file:    YAMLFile,
			content: "roots: src\n",
			errType: new(*InvalidConfigError),
			errStr:  "is not a valid srcfmt config",
		},
		{
			name:    "empty tool",
			file:    YAMLFile,
			content: "tool: \"\"\n",
			errType: new(*InvalidConfigError),
			errStr:  "is not a valid srcfmt config",
		},
		{
			name:    "no roots",
			file:    YAMLFile,
			content: "roots: []\n",
			errType: new(*InvalidConfigError),
			errStr:  "is not a valid srcfmt config",
		},
		{
			name:    "extension without leading dot",
			file:    TOMLFile,
			content: `extensions = ["c"]`,
			errType: new(*InvalidConfigError),
			errStr:  "is not a valid srcfmt config",
		},
		{
			name:    "bad exclude glob",
			file:    YAMLFile,
			content: "exclude: [\"src/[\"]\n",
			errType: new(*InvalidExcludePatternError),
			errStr:  `exclude pattern "src/[" is not a valid glob`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			dir := t.TempDir()
			writeConfig(t, dir, tt.file, tt.content)

			_, err := Load(dir, "", validator.NewSanthoshCompiler())
			require.Error(t, err)
			require.ErrorAs(t, err, tt.errType)
			assert.Contains(t, err.Error(), tt.errStr)
		})
	}
}

func TestLoad_SchemaRegistrationFailures(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeConfig(t, dir, YAMLFile, "tool: clang-format\n")

	_, err := Load(dir, "", &stubCompiler{addErr: errors.New("boom")})
	require.ErrorContains(t, err, "failed to register config schema: boom")

	_, err = Load(dir, "", &stubCompiler{compileErr: errors.New("bang")})
	require.ErrorContains(t, err, "failed to compile config schema: bang")
}

package config

import (
	"fmt"
)

type MissingConfigError struct {
	Path string
}

func (e *MissingConfigError) Error() string {
	return fmt.Sprintf("config file not found: %s", e.Path)
}

type UnsupportedConfigFormatError struct {
	Path string
}

func (e *UnsupportedConfigFormatError) Error() string {
	return fmt.Sprintf("config file %s has an unsupported format (use .yml, .yaml or .toml)", e.Path)
}

type InvalidYAMLError struct {
	Wrapped error
	Path    string
}

func (e *InvalidYAMLError) Error() string {
	return fmt.Sprintf("%s is not a valid yaml document: %v", e.Path, e.Wrapped)
}

func (e *InvalidYAMLError) Unwrap() error {
	return e.Wrapped
}

type InvalidTOMLError struct {
	Wrapped error
	Path    string
}

func (e *InvalidTOMLError) Error() string {
	return fmt.Sprintf("%s is not a valid toml document: %v", e.Path, e.Wrapped)
}

func (e *InvalidTOMLError) Unwrap() error {
	return e.Wrapped
}

// InvalidConfigError reports a config file that parsed but does not describe a usable configuration.
type InvalidConfigError struct {
	Wrapped error
	Path    string
}

func (e *InvalidConfigError) Error() string {
	return fmt.Sprintf("%s is not a valid srcfmt config: %v", e.Path, e.Wrapped)
}

func (e *InvalidConfigError) Unwrap() error {
	return e.Wrapped
}

type InvalidExcludePatternError struct {
	Pattern string
}

func (e *InvalidExcludePatternError) Error() string {
	return fmt.Sprintf("exclude pattern %q is not a valid glob", e.Pattern)
}

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/gogpu/meander"
)

// ErrUnsupportedFormat is returned for preset files that are neither TOML
// nor YAML.
var ErrUnsupportedFormat = errors.New("config: unsupported format")

// Format is a preset file encoding.
type Format int

// Preset formats.
const (
	FormatTOML Format = iota
	FormatYAML
)

func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// FormatOf returns the format implied by the extension of path.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnsupportedFormat, path)
}

// Load reads a preset file. The format follows the file extension.
// Keys missing from the file keep their defaults.
func Load(path string) (Params, error) {
	f, err := FormatOf(path)
	if err != nil {
		return Params{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Params{}, fmt.Errorf("config: %w", err)
	}

	p, err := Decode(bytes.NewReader(data), f)
	if err != nil {
		return Params{}, fmt.Errorf("config: %s: %w", path, err)
	}

	meander.Logger().Debug("preset loaded", "file", path, "kind", p.Kind)
	return p, nil
}

// Decode reads a preset in format f. Shared fields start from their
// defaults and the variant named by kind is completed with defaults.
func Decode(r io.Reader, f Format) (Params, error) {
	p := shared("")

	var err error
	switch f {
	case FormatTOML:
		err = toml.NewDecoder(r).Decode(&p)
	case FormatYAML:
		err = yaml.NewDecoder(r).Decode(&p)
		if errors.Is(err, io.EOF) {
			err = nil
		}
	default:
		return Params{}, fmt.Errorf("%w: %v", ErrUnsupportedFormat, f)
	}
	if err != nil {
		return Params{}, fmt.Errorf("config: decode %v: %w", f, err)
	}

	p.fillDefaults()
	return p, nil
}

// Encode writes p in format f.
func Encode(w io.Writer, p Params, f Format) error {
	var err error
	switch f {
	case FormatTOML:
		err = toml.NewEncoder(w).Encode(p)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err = enc.Encode(p); err == nil {
			err = enc.Close()
		}
	default:
		return fmt.Errorf("%w: %v", ErrUnsupportedFormat, f)
	}
	if err != nil {
		return fmt.Errorf("config: encode %v: %w", f, err)
	}
	return nil
}

// Save writes p to path in the format implied by its extension.
func Save(path string, p Params) (err error) {
	f, err := FormatOf(path)
	if err != nil {
		return err
	}
	fp, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	defer func() {
		if cerr := fp.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("config: %w", cerr)
		}
	}()
	return Encode(fp, p, f)
}

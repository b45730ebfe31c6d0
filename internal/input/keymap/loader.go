package keymap

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/dshills/keypress/internal/input/key"
)

// ErrUnsupportedFormat is returned for keymap files with an unknown
// extension.
var ErrUnsupportedFormat = errors.New("unsupported keymap format")

// Format is a keymap file encoding.
type Format uint8

const (
	// FormatTOML is the default keymap format.
	FormatTOML Format = iota
	// FormatYAML is YAML.
	FormatYAML
	// FormatJSON is JSON.
	FormatJSON
	// FormatINI is the INI layout of binds.conf style files.
	FormatINI
)

// String returns the format name.
func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	case FormatJSON:
		return "json"
	case FormatINI:
		return "ini"
	default:
		return fmt.Sprintf("Format(%d)", f)
	}
}

// FormatFromPath returns the format matching the extension of path.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	case ".ini", ".conf":
		return FormatINI, nil
	default:
		return 0, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
}

// ParseFormat returns the format with the given name ("toml", "yaml",
// "yml", "json" or "ini").
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(name) {
	case "toml":
		return FormatTOML, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "json":
		return FormatJSON, nil
	case "ini":
		return FormatINI, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedFormat, name)
	}
}

// FileSystem is the file access used by Loader.
// This allows for easy testing with in-memory file systems.
type FileSystem interface {
	// ReadFile reads the entire file at path.
	ReadFile(path string) ([]byte, error)
}

// OSFS implements FileSystem using the real OS file system.
type OSFS struct{}

// ReadFile reads the entire file at path.
func (OSFS) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// Loader loads keymap tables from files.
type Loader struct {
	fs FileSystem
}

// NewLoader creates a loader reading from the OS file system.
func NewLoader() *Loader {
	return &Loader{fs: OSFS{}}
}

// NewLoaderWithFS creates a loader with a custom file system.
func NewLoaderWithFS(fs FileSystem) *Loader {
	return &Loader{fs: fs}
}

// LoadFile loads a table from path. The format is picked from the
// file extension. A table without a name is named after the file.
func (l *Loader) LoadFile(path string) (*Table, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	data, err := l.fs.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading keymap file: %w", err)
	}

	return l.LoadBytes(path, format, data)
}

// LoadReader loads a table in the given format from r.
func (l *Loader) LoadReader(r io.Reader, format Format) (*Table, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading keymap: %w", err)
	}
	return l.LoadBytes("<reader>", format, data)
}

// LoadBytes decodes data in the given format and builds a table.
// source names the data in error messages.
func (l *Loader) LoadBytes(source string, format Format, data []byte) (*Table, error) {
	var cfg fileConfig
	if err := decode(format, data, &cfg); err != nil {
		return nil, newParseError(source, err)
	}

	name := cfg.Name
	if name == "" {
		name = strings.TrimSuffix(filepath.Base(source), filepath.Ext(source))
	}
	return NewTable(name, source, cfg.Bindings)
}

// fileConfig is the structure of keymap files.
type fileConfig struct {
	Name     string  `json:"name,omitempty" toml:"name,omitempty" yaml:"name,omitempty"`
	Bindings []Entry `json:"bindings" toml:"bindings" yaml:"bindings"`
}

func decode(format Format, data []byte, cfg *fileConfig) error {
	switch format {
	case FormatTOML:
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		return dec.Decode(cfg)
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		err := dec.Decode(cfg)
		if errors.Is(err, io.EOF) {
			// Empty document.
			return nil
		}
		return err
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(cfg); err != nil {
			return err
		}
		if _, err := dec.Token(); !errors.Is(err, io.EOF) {
			return errors.New("unexpected data after top-level object")
		}
		return nil
	case FormatINI:
		return decodeINI(data, cfg)
	default:
		return fmt.Errorf("%w: %v", ErrUnsupportedFormat, format)
	}
}

// Marshal encodes a table in the given format. Bindings are written
// with the canonical token of their key, so the output loads back into
// an equivalent table.
func Marshal(t *Table, format Format) ([]byte, error) {
	cfg := fileConfig{Name: t.Name, Bindings: make([]Entry, 0, t.Len())}
	for _, b := range t.Bindings() {
		cfg.Bindings = append(cfg.Bindings, Entry{
			Key:         tokenName(b),
			Command:     b.Command,
			Description: b.Description,
		})
	}

	switch format {
	case FormatTOML:
		return toml.Marshal(cfg)
	case FormatYAML:
		return yaml.Marshal(cfg)
	case FormatJSON:
		return json.MarshalIndent(cfg, "", "  ")
	case FormatINI:
		return encodeINI(cfg)
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedFormat, format)
	}
}

// tokenName returns a token that parses back to the binding's key. The
// literal space is written by name so it survives trimming editors.
func tokenName(b Binding) string {
	if l := b.Token.Logical(); b.Token.IsKeyboard() && l.IsCharacter() && l.Text == " " {
		return "space"
	}
	return b.Token.Render(key.HostOther)
}

// ParseError represents an error while decoding a keymap file.
type ParseError struct {
	Path    string
	Line    int
	Column  int
	Message string
	Err     error
}

func newParseError(path string, err error) *ParseError {
	pe := &ParseError{Path: path, Message: err.Error(), Err: err}

	var decErr *toml.DecodeError
	if errors.As(err, &decErr) {
		pe.Line, pe.Column = decErr.Position()
	}
	return pe
}

func (e *ParseError) Error() string {
	if e.Line > 0 && e.Column > 0 {
		return fmt.Sprintf("parse error in %s at line %d, column %d: %s", e.Path, e.Line, e.Column, e.Message)
	}
	if e.Line > 0 {
		return fmt.Sprintf("parse error in %s at line %d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error in %s: %s", e.Path, e.Message)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

package keymap

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/go-ini/ini"
)

// INI keymaps keep the name in the default section and one binding per
// key in [bindings]. A comment directly above a binding is its
// description:
//
//	name = editor
//
//	[bindings]
//	# Run the current target
//	f5 = build.run
//	mousemiddle = clipboard.paste
const iniBindingsSection = "bindings"

func iniLoadOptions() ini.LoadOptions {
	return ini.LoadOptions{
		IgnoreInlineComment: true,
	}
}

func decodeINI(data []byte, cfg *fileConfig) error {
	f, err := ini.LoadSources(iniLoadOptions(), data)
	if err != nil {
		return err
	}

	for _, sec := range f.Sections() {
		switch sec.Name() {
		case ini.DefaultSection:
			for _, k := range sec.Keys() {
				if k.Name() != "name" {
					return fmt.Errorf("unknown key %q in default section", k.Name())
				}
				cfg.Name = k.String()
			}
		case iniBindingsSection:
			for _, k := range sec.Keys() {
				cfg.Bindings = append(cfg.Bindings, Entry{
					Key:         k.Name(),
					Command:     k.String(),
					Description: iniComment(k.Comment),
				})
			}
		default:
			return fmt.Errorf("unknown section [%s]", sec.Name())
		}
	}
	return nil
}

// iniComment strips comment markers from the lines above a key.
func iniComment(c string) string {
	var parts []string
	for _, line := range strings.Split(c, "\n") {
		line = strings.TrimSpace(strings.TrimLeft(strings.TrimSpace(line), "#;"))
		if line != "" {
			parts = append(parts, line)
		}
	}
	return strings.Join(parts, " ")
}

func encodeINI(cfg fileConfig) ([]byte, error) {
	f := ini.Empty(iniLoadOptions())
	if cfg.Name != "" {
		if _, err := f.Section("").NewKey("name", cfg.Name); err != nil {
			return nil, err
		}
	}

	sec, err := f.NewSection(iniBindingsSection)
	if err != nil {
		return nil, err
	}
	for _, e := range cfg.Bindings {
		if !iniSafeKey(e.Key) {
			return nil, fmt.Errorf("%w: key %q cannot be written as ini", ErrUnsupportedFormat, e.Key)
		}
		k, err := sec.NewKey(e.Key, e.Command)
		if err != nil {
			return nil, err
		}
		if e.Description != "" {
			k.Comment = "# " + e.Description
		}
	}

	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// iniSafeKey reports whether name survives as an INI key. Lines starting
// with a comment or section marker are not keys, and "-" is read as an
// auto-increment key.
func iniSafeKey(name string) bool {
	if name == "" || name == "-" {
		return false
	}
	switch name[0] {
	case '#', ';', '[':
		return false
	}
	return true
}

// Package config loads named sections of a structured file (YAML or
// JSON) into flat key/value lookup objects. Nested mappings are
// flattened to dotted keys; value coercion is lookup-time. The stream
// core never reads configuration, only the CLI does.
package config

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cast"
	"sigs.k8s.io/yaml"
)

// File is a parsed configuration file: a set of named sections.
type File struct {
	path     string
	sections map[string]Section
}

// Section is a flat key/value lookup over one named section.
type Section map[string]any

// Load parses the file at path. Every top-level key must hold a
// mapping; each mapping becomes a section with its nested keys
// flattened into dotted form.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %s", path, err)
	}

	return Parse(path, data)
}

// Empty returns a File with no sections, for runs without a config
// file.
func Empty() *File {
	return &File{path: "", sections: map[string]Section{}}
}

// Parse builds a File from raw YAML or JSON bytes.
func Parse(path string, data []byte) (*File, error) {
	raw := map[string]any{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %s", path, err)
	}

	file := &File{path: path, sections: map[string]Section{}}
	for name, value := range raw {
		mapping, ok := value.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("config %s: top-level key %q is not a section", path, name)
		}

		section := Section{}
		flatten("", mapping, section)
		file.sections[name] = section
	}

	return file, nil
}

func flatten(prefix string, in map[string]any, out Section) {
	for key, value := range in {
		full := key
		if prefix != "" {
			full = prefix + "." + key
		}

		if nested, ok := value.(map[string]any); ok {
			flatten(full, nested, out)
			continue
		}
		out[full] = value
	}
}

// Path returns the location the file was loaded from.
func (f *File) Path() string { return f.path }

// Has reports whether a section exists.
func (f *File) Has(name string) bool {
	_, found := f.sections[name]
	return found
}

// Section returns the named section or an error when it is missing.
func (f *File) Section(name string) (Section, error) {
	section, found := f.sections[name]
	if !found {
		return nil, fmt.Errorf("config %s: section %q not found", f.path, name)
	}
	return section, nil
}

// SectionOr returns the named section, or an empty one when missing.
func (f *File) SectionOr(name string) Section {
	if section, found := f.sections[name]; found {
		return section
	}
	return Section{}
}

// SectionNames returns the section names in sorted order.
func (f *File) SectionNames() []string {
	names := make([]string, 0, len(f.sections))
	for name := range f.sections {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Has reports whether the key is present.
func (s Section) Has(key string) bool {
	_, found := s[key]
	return found
}

// Get returns the raw value and whether the key is present.
func (s Section) Get(key string) (any, bool) {
	value, found := s[key]
	return value, found
}

// String returns the key's value coerced to a string, or def.
func (s Section) String(key, def string) string {
	if value, found := s[key]; found {
		return cast.ToString(value)
	}
	return def
}

// Int returns the key's value coerced to an int, or def.
func (s Section) Int(key string, def int) int {
	if value, found := s[key]; found {
		return cast.ToInt(value)
	}
	return def
}

// Bool returns the key's value coerced to a bool, or def.
func (s Section) Bool(key string, def bool) bool {
	if value, found := s[key]; found {
		return cast.ToBool(value)
	}
	return def
}

// Strings returns the key's value coerced to a string slice.
func (s Section) Strings(key string) []string {
	value, found := s[key]
	if !found {
		return nil
	}
	return cast.ToStringSlice(value)
}

// Require fails unless every key is present.
func (s Section) Require(keys ...string) error {
	missing := []string{}
	for _, key := range keys {
		if !s.Has(key) {
			missing = append(missing, key)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("missing required config keys: %s", strings.Join(missing, ", "))
	}
	return nil
}

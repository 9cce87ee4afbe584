package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/esimov/svgavatar"
	"gopkg.in/yaml.v3"
)

// validExtensions lists the supported output formats.
var validExtensions = []string{".svg", ".ivg"}

// Manifest describes a batch of avatars. Rings and Stroke are the defaults
// of the entries which do not set them.
type Manifest struct {
	Dir     string          `yaml:"dir,omitempty"`
	Rings   svgavatar.Rings `yaml:"rings,omitempty"`
	Stroke  string          `yaml:"stroke,omitempty"`
	Avatars []Entry         `yaml:"avatars"`
}

// Entry is a single avatar to generate.
type Entry struct {
	ID     string          `yaml:"id"`
	Rings  svgavatar.Rings `yaml:"rings,omitempty"`
	Stroke string          `yaml:"stroke,omitempty"`
	Out    string          `yaml:"out,omitempty"`
}

// LoadManifest reads and validates the manifest at path. Relative output
// directories are resolved against the directory of the manifest file.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("manifest: read %s: %w", path, err)
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("manifest: parse %s: %w", path, err)
	}

	m.applyDefaults()
	m.normalize(filepath.Dir(path))
	if err := m.validate(); err != nil {
		return nil, fmt.Errorf("manifest: %w", err)
	}
	return &m, nil
}

func (m *Manifest) applyDefaults() {
	if m.Rings == 0 {
		m.Rings = svgavatar.DefaultRings
	}
	if strings.TrimSpace(m.Stroke) == "" {
		m.Stroke = svgavatar.DefaultStrokeColor
	}
	for i := range m.Avatars {
		e := &m.Avatars[i]
		if e.Rings == 0 {
			e.Rings = m.Rings
		}
		if e.Stroke == "" {
			e.Stroke = m.Stroke
		}
	}
}

func (m *Manifest) normalize(base string) {
	m.Dir = strings.TrimSpace(m.Dir)
	if !filepath.IsAbs(m.Dir) {
		m.Dir = filepath.Join(base, m.Dir)
	}
	for i := range m.Avatars {
		e := &m.Avatars[i]
		e.ID = strings.TrimSpace(e.ID)
		e.Out = strings.TrimSpace(e.Out)
		if e.Out == "" {
			e.Out = e.ID + ".svg"
		}
		if !filepath.IsAbs(e.Out) {
			e.Out = filepath.Join(m.Dir, e.Out)
		}
	}
}

func (m *Manifest) validate() error {
	if len(m.Avatars) == 0 {
		return errors.New("no avatars defined")
	}
	if !m.Rings.Valid() {
		return fmt.Errorf("invalid ring count: %d", m.Rings)
	}

	seen := make(map[string]int, len(m.Avatars))
	for i, e := range m.Avatars {
		if err := e.validate(); err != nil {
			return fmt.Errorf("avatars[%d]: %w", i, err)
		}
		if j, ok := seen[e.Out]; ok {
			return fmt.Errorf("avatars[%d]: output %s already used by avatars[%d]", i, e.Out, j)
		}
		seen[e.Out] = i
	}
	return nil
}

func (e Entry) validate() error {
	if e.ID == "" {
		return errors.New("id is required")
	}
	if !e.Rings.Valid() {
		return fmt.Errorf("invalid ring count: %d", e.Rings)
	}
	if ext := filepath.Ext(e.Out); !isValidExtension(ext, validExtensions) {
		return fmt.Errorf("%q file type not supported", ext)
	}
	return nil
}

// isValidExtension checks for the supported extensions.
func isValidExtension(ext string, extensions []string) bool {
	for _, ex := range extensions {
		if ex == ext {
			return true
		}
	}
	return false
}

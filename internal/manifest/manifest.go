// Package manifest writes a canonical YAML record next to each installer.
package manifest

import (
	"bytes"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Manifest describes one installer build.
type Manifest struct {
	Installer       string
	Mode            string
	SizeBytes       int64
	CompilerPath    string
	CompilerVersion string
	AppVersion      string
	Commit          string
	BuiltAt         time.Time
}

// PathFor returns <installer without extension>.manifest.yaml.
func PathFor(installer string) string {
	return strings.TrimSuffix(installer, filepath.Ext(installer)) + ".manifest.yaml"
}

func (m Manifest) fields() map[string]any {
	out := map[string]any{
		"installer":   filepath.ToSlash(m.Installer),
		"mode":        m.Mode,
		"size_bytes":  m.SizeBytes,
		"app_version": m.AppVersion,
		"built_at":    m.BuiltAt.UTC().Format(time.RFC3339),
		"compiler": map[string]any{
			"path":    filepath.ToSlash(m.CompilerPath),
			"version": m.CompilerVersion,
		},
	}
	if m.Commit != "" {
		out["source"] = map[string]any{"commit": m.Commit}
	}
	return out
}

// Marshal returns canonical YAML bytes with sorted keys.
func Marshal(m Manifest) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(canonicalNode(m.fields())); err != nil {
		_ = enc.Close()
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	out := bytes.TrimRight(buf.Bytes(), "\n")
	out = append(out, '\n')
	return out, nil
}

// Write writes m to PathFor(m.Installer), creating parent directories.
func Write(m Manifest) (string, error) {
	path := PathFor(m.Installer)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", err
	}
	b, err := Marshal(m)
	if err != nil {
		return "", err
	}
	return path, os.WriteFile(path, b, 0o644)
}

// Read decodes a manifest written by Write.
func Read(path string) (Manifest, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Manifest{}, err
	}
	var raw struct {
		Installer  string `yaml:"installer"`
		Mode       string `yaml:"mode"`
		SizeBytes  int64  `yaml:"size_bytes"`
		AppVersion string `yaml:"app_version"`
		BuiltAt    string `yaml:"built_at"`
		Compiler   struct {
			Path    string `yaml:"path"`
			Version string `yaml:"version"`
		} `yaml:"compiler"`
		Source struct {
			Commit string `yaml:"commit"`
		} `yaml:"source"`
	}
	if err := yaml.Unmarshal(b, &raw); err != nil {
		return Manifest{}, err
	}
	builtAt, _ := time.Parse(time.RFC3339, raw.BuiltAt)
	return Manifest{
		Installer:       filepath.FromSlash(raw.Installer),
		Mode:            raw.Mode,
		SizeBytes:       raw.SizeBytes,
		CompilerPath:    filepath.FromSlash(raw.Compiler.Path),
		CompilerVersion: raw.Compiler.Version,
		AppVersion:      raw.AppVersion,
		Commit:          raw.Source.Commit,
		BuiltAt:         builtAt,
	}, nil
}

func scalarNode(v string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: v}
}

func scalarFrom(v any) *yaml.Node {
	n := &yaml.Node{}
	_ = n.Encode(v)
	return n
}

func canonicalNode(v any) *yaml.Node {
	m, ok := v.(map[string]any)
	if !ok {
		return scalarFrom(v)
	}
	n := &yaml.Node{Kind: yaml.MappingNode}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		n.Content = append(n.Content, scalarNode(k), canonicalNode(m[k]))
	}
	return n
}

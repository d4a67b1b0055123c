// Package codec reads and writes whole project documents as YAML.
package codec

import (
	"bytes"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/dshills/plotdoc/internal/project"
)

// EncodeYAML writes p to w.
func EncodeYAML(w io.Writer, p *project.Project) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(map[string]any(p.ToDict())); err != nil {
		return fmt.Errorf("encode project %q: %w", p.Name, err)
	}
	return enc.Close()
}

// MarshalYAML returns p as a YAML document.
func MarshalYAML(p *project.Project) ([]byte, error) {
	var buf bytes.Buffer
	if err := EncodeYAML(&buf, p); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// DecodeYAML reads a project document from r.
func DecodeYAML(r io.Reader) (*project.Project, error) {
	var doc map[string]any
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("decode project: empty document")
		}
		return nil, fmt.Errorf("decode project: %w", err)
	}
	return project.ProjectFromDict(doc)
}

// UnmarshalYAML decodes a project document from data.
func UnmarshalYAML(data []byte) (*project.Project, error) {
	return DecodeYAML(bytes.NewReader(data))
}

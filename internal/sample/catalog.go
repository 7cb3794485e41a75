// Package sample holds the fixed menu of fetchable iXBRL filings and the
// static XBRL snippet shown by the preview.
package sample

import (
	_ "embed"
	"os"
	"strings"

	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var builtinCatalog []byte

// Document describes a fetchable sample filing.
type Document struct {
	Name        string `yaml:"name" json:"name"`
	SourceURL   string `yaml:"source_url" json:"source_url"`
	Description string `yaml:"description" json:"description"`
}

// Catalog is an immutable list of sample documents.
type Catalog struct {
	docs []Document
}

// Builtin returns the catalog compiled into the binary.
func Builtin() *Catalog {
	c, err := ParseCatalog(builtinCatalog)
	if err != nil {
		panic(err)
	}
	return c
}

// LoadCatalog reads a catalog from a YAML file.
func LoadCatalog(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrapf(err, "sample: read catalog %s", path)
	}
	return ParseCatalog(data)
}

// ParseCatalog parses catalog YAML. Names must be unique and every entry
// needs a source URL.
func ParseCatalog(data []byte) (*Catalog, error) {
	var file struct {
		Documents []Document `yaml:"documents"`
	}
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, eris.Wrap(err, "sample: parse catalog")
	}

	seen := make(map[string]bool, len(file.Documents))
	for i, d := range file.Documents {
		key := strings.ToLower(strings.TrimSpace(d.Name))
		if key == "" {
			return nil, eris.Errorf("sample: document %d has no name", i)
		}
		if d.SourceURL == "" {
			return nil, eris.Errorf("sample: document %q has no source_url", d.Name)
		}
		if seen[key] {
			return nil, eris.Errorf("sample: duplicate document name %q", d.Name)
		}
		seen[key] = true
	}
	return &Catalog{docs: file.Documents}, nil
}

// Documents returns a copy of the catalog entries in file order.
func (c *Catalog) Documents() []Document {
	out := make([]Document, len(c.docs))
	copy(out, c.docs)
	return out
}

// Lookup finds a document by name, ignoring case.
func (c *Catalog) Lookup(name string) (Document, bool) {
	name = strings.TrimSpace(name)
	for _, d := range c.docs {
		if strings.EqualFold(d.Name, name) {
			return d, true
		}
	}
	return Document{}, false
}

// Resolve maps a sample name to its URL. Anything that is not a known sample
// name is returned unchanged.
func (c *Catalog) Resolve(target string) string {
	if d, ok := c.Lookup(target); ok {
		return d.SourceURL
	}
	return target
}

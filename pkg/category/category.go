package category

import (
	"embed"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed data/categories.yaml
var dataFS embed.FS

const defaultCatalogPath = "data/categories.yaml"

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
	defaultErr     error
)

// Category is one selectable complaint category.
type Category struct {
	Slug  string `yaml:"slug"`
	Label string `yaml:"label"`
}

// Catalog is an ordered, read-only set of categories.
type Catalog struct {
	items []Category
	index map[string]int
}

type document struct {
	Categories []Category `yaml:"categories"`
}

// Default returns the embedded catalog.
func Default() (*Catalog, error) {
	defaultOnce.Do(func() {
		f, err := dataFS.Open(defaultCatalogPath)
		if err != nil {
			defaultErr = errors.Join(ErrFailedToReadFile, err)
			return
		}
		defer func() { _ = f.Close() }()

		defaultCatalog, defaultErr = Parse(f)
	})
	return defaultCatalog, defaultErr
}

// Load reads a catalog from a YAML file on disk.
func Load(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadFile, err)
	}
	defer func() { _ = f.Close() }()

	return Parse(f)
}

// Parse decodes a catalog document. Entries keep their document order.
func Parse(r io.Reader) (*Catalog, error) {
	var doc document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyCatalog
		}
		return nil, errors.Join(ErrFailedToParseYAML, err)
	}
	return New(doc.Categories...)
}

// New builds a catalog from categories, trimming slugs and labels.
func New(categories ...Category) (*Catalog, error) {
	if len(categories) == 0 {
		return nil, ErrEmptyCatalog
	}

	c := &Catalog{
		items: make([]Category, 0, len(categories)),
		index: make(map[string]int, len(categories)),
	}
	for i, item := range categories {
		item.Slug = strings.TrimSpace(item.Slug)
		item.Label = strings.TrimSpace(item.Label)
		if item.Slug == "" || item.Label == "" {
			return nil, fmt.Errorf("%w: entry %d", ErrInvalidEntry, i)
		}
		if _, dup := c.index[item.Slug]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateSlug, item.Slug)
		}
		c.index[item.Slug] = len(c.items)
		c.items = append(c.items, item)
	}
	return c, nil
}

// All returns a copy of the categories in catalog order.
func (c *Catalog) All() []Category {
	return append([]Category(nil), c.items...)
}

// Slugs returns the category slugs in catalog order.
func (c *Catalog) Slugs() []string {
	slugs := make([]string, len(c.items))
	for i, item := range c.items {
		slugs[i] = item.Slug
	}
	return slugs
}

// Label returns the display label of slug, or an empty string when the slug
// is not in the catalog.
func (c *Catalog) Label(slug string) string {
	if i, ok := c.index[slug]; ok {
		return c.items[i].Label
	}
	return ""
}

// Contains reports whether slug is in the catalog.
func (c *Catalog) Contains(slug string) bool {
	_, ok := c.index[slug]
	return ok
}

func (c *Catalog) Len() int {
	return len(c.items)
}

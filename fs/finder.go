// Package fs provides file-based page discovery, reading and writing.
package fs

import (
	"context"
	iofs "io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/spafrag"
)

// Ensure Finder implements spafrag.PageFinder at compile time.
var _ spafrag.PageFinder = (*Finder)(nil)

// Finder walks a directory tree looking for convertible pages.
type Finder struct {
	config *spafrag.Config
}

// NewFinder creates a new Finder using the extension and exclusions of cfg.
func NewFinder(cfg *spafrag.Config) *Finder {
	return &Finder{config: cfg}
}

// FindPages returns every page below root, in lexical walk order,
// that has the configured extension and is not excluded.
func (f *Finder) FindPages(ctx context.Context, root string) ([]string, error) {
	var pages []string
	err := filepath.WalkDir(root, func(path string, d iofs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), f.config.Extension) {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			rel = path
		}
		if f.config.IsExcluded(rel) {
			return nil
		}
		pages = append(pages, path)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return pages, nil
}

// Ensure Reader implements spafrag.PageReader at compile time.
var _ spafrag.PageReader = (*Reader)(nil)

// Reader reads pages from disk.
type Reader struct{}

// NewReader creates a new Reader.
func NewReader() *Reader {
	return &Reader{}
}

// ReadPage reads the page at path.
func (r *Reader) ReadPage(ctx context.Context, path string) (*spafrag.Page, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return spafrag.NewPage(path, string(content)), nil
}

package spafrag

import (
	"context"
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// Page is the raw text of one input file.
type Page struct {
	Path        string
	Content     string
	ContentHash string
}

// NewPage returns a Page with its content hash computed.
func NewPage(path, content string) *Page {
	return &Page{
		Path:        path,
		Content:     content,
		ContentHash: ComputeHash(content),
	}
}

// ComputeHash computes a hash of the content using xxhash.
func ComputeHash(content string) string {
	return fmt.Sprintf("%x", xxhash.Sum64String(content))
}

// PageFinder discovers candidate pages below a root directory.
type PageFinder interface {
	FindPages(ctx context.Context, root string) ([]string, error)
}

// PageReader loads a page from storage.
type PageReader interface {
	ReadPage(ctx context.Context, path string) (*Page, error)
}

// PageSink receives converted output. Implementations decide whether the
// source page is overwritten or written somewhere else.
type PageSink interface {
	// WriteFragment stores the fragment of the page at path and returns
	// the location it was written to.
	WriteFragment(ctx context.Context, path, content string) (string, error)

	// WriteScript fully overwrites the script file at path, creating
	// parent directories as needed, and returns the location written to.
	WriteScript(ctx context.Context, path, content string) (string, error)
}

package spafrag

import "context"

// Conversion describes the outcome of converting one page.
type Conversion struct {
	// Path is the source page.
	Path string

	// Destination is where the fragment was written.
	Destination string

	// ScriptPath is where inline scripts were written.
	// Empty when the page had no inline scripts.
	ScriptPath string

	Styles  int
	Scripts int

	SourceHash   string
	FragmentHash string
}

// PageConverter rewrites a single page into a fragment.
type PageConverter interface {
	// ConvertPage converts the page at path.
	// Returns ENOTFOUND, without writing anything, when the page has no body.
	ConvertPage(ctx context.Context, path string) (*Conversion, error)
}

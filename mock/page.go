package mock

import (
	"context"

	"github.com/fwojciec/spafrag"
)

var _ spafrag.PageFinder = (*PageFinder)(nil)

// PageFinder is a mock implementation of spafrag.PageFinder.
type PageFinder struct {
	FindPagesFn func(ctx context.Context, root string) ([]string, error)
}

func (f *PageFinder) FindPages(ctx context.Context, root string) ([]string, error) {
	return f.FindPagesFn(ctx, root)
}

var _ spafrag.PageReader = (*PageReader)(nil)

// PageReader is a mock implementation of spafrag.PageReader.
type PageReader struct {
	ReadPageFn func(ctx context.Context, path string) (*spafrag.Page, error)
}

func (r *PageReader) ReadPage(ctx context.Context, path string) (*spafrag.Page, error) {
	return r.ReadPageFn(ctx, path)
}

var _ spafrag.PageSink = (*PageSink)(nil)

// PageSink is a mock implementation of spafrag.PageSink.
type PageSink struct {
	WriteFragmentFn func(ctx context.Context, path, content string) (string, error)
	WriteScriptFn   func(ctx context.Context, path, content string) (string, error)
}

func (s *PageSink) WriteFragment(ctx context.Context, path, content string) (string, error) {
	return s.WriteFragmentFn(ctx, path, content)
}

func (s *PageSink) WriteScript(ctx context.Context, path, content string) (string, error) {
	return s.WriteScriptFn(ctx, path, content)
}

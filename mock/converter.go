package mock

import (
	"context"

	"github.com/fwojciec/spafrag"
)

var _ spafrag.PageConverter = (*PageConverter)(nil)

// PageConverter is a mock implementation of spafrag.PageConverter.
type PageConverter struct {
	ConvertPageFn func(ctx context.Context, path string) (*spafrag.Conversion, error)
}

func (c *PageConverter) ConvertPage(ctx context.Context, path string) (*spafrag.Conversion, error) {
	return c.ConvertPageFn(ctx, path)
}

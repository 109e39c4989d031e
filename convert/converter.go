// Package convert provides page conversion orchestration.
// It coordinates reading, markup extraction, script emission and
// fragment writing for single pages and for whole page trees.
package convert

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fwojciec/spafrag"
)

// Ensure Converter implements spafrag.PageConverter at compile time.
var _ spafrag.PageConverter = (*Converter)(nil)

// Converter rewrites one page into a fragment.
type Converter struct {
	Config *spafrag.Config
	Markup spafrag.Markup
	Pages  spafrag.PageReader
	Sink   spafrag.PageSink
}

// ConvertPage converts the page at path. Pages without a body element are
// left untouched and reported with ENOTFOUND.
func (c *Converter) ConvertPage(ctx context.Context, path string) (*spafrag.Conversion, error) {
	page, err := c.Pages.ReadPage(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("reading page: %w", err)
	}

	body, ok := c.Markup.ExtractRegion(page.Content, "body")
	if !ok {
		return nil, spafrag.Errorf(spafrag.ENOTFOUND, "no <body> element in %s", path)
	}
	head, _ := c.Markup.ExtractRegion(page.Content, "head")

	styles := c.Markup.ExtractStyles(head)

	// Head scripts run before body scripts.
	scripts := c.Markup.ExtractInlineScripts(head)
	scripts = append(scripts, c.Markup.ExtractInlineScripts(body)...)

	body = c.Markup.RemoveGlobalScripts(body, c.Config.GlobalScripts)
	body = c.Markup.RemoveScripts(body)

	conv := &spafrag.Conversion{
		Path:       path,
		Styles:     len(styles),
		Scripts:    len(scripts),
		SourceHash: page.ContentHash,
	}

	var scriptRef string
	if len(scripts) > 0 {
		content := spafrag.FormatScriptFile(filepath.Base(path), scripts)
		dest, err := c.Sink.WriteScript(ctx, c.Config.ScriptPath(path), content)
		if err != nil {
			return nil, fmt.Errorf("writing scripts: %w", err)
		}
		conv.ScriptPath = dest
		scriptRef = c.Config.ScriptRef(path)
	}

	fragment := spafrag.BuildFragment(c.Config.WrapperClass, styles, body, scriptRef)
	dest, err := c.Sink.WriteFragment(ctx, path, fragment)
	if err != nil {
		return nil, fmt.Errorf("writing fragment: %w", err)
	}
	conv.Destination = dest
	conv.FragmentHash = spafrag.ComputeHash(fragment)

	return conv, nil
}

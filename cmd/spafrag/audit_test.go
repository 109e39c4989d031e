package main_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/fwojciec/spafrag"
	main "github.com/fwojciec/spafrag/cmd/spafrag"
	"github.com/fwojciec/spafrag/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuditCmd_Run(t *testing.T) {
	t.Parallel()

	newDeps := func(stdout, stderr *bytes.Buffer) *main.Dependencies {
		return &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: stderr,
			Config: spafrag.DefaultConfig(),
			Finder: &mock.PageFinder{
				FindPagesFn: func(_ context.Context, _ string) ([]string, error) {
					return []string{"www/a.html", "www/b.html", "www/broken.html"}, nil
				},
			},
			Pages: &mock.PageReader{
				ReadPageFn: func(_ context.Context, path string) (*spafrag.Page, error) {
					if path == "www/broken.html" {
						return nil, errors.New("permission denied")
					}
					return spafrag.NewPage(path, ""), nil
				},
			},
			Auditor: &mock.AssetAuditor{
				AuditFn: func(page *spafrag.Page) (*spafrag.AssetReport, error) {
					if page.Path == "www/b.html" {
						return &spafrag.AssetReport{Path: page.Path}, nil
					}
					return &spafrag.AssetReport{
						Path: page.Path,
						Scripts: []spafrag.AssetRef{
							{URL: "./auth.js", Global: true},
							{URL: "./lib/chart.js"},
						},
						Stylesheets: []spafrag.AssetRef{
							{URL: "style.css", Global: true},
						},
					}, nil
				},
			},
		}
	}

	t.Run("lists all references", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		err := (&main.AuditCmd{}).Run(newDeps(stdout, stderr))

		require.NoError(t, err)
		out := stdout.String()
		assert.Contains(t, out, "www/a.html\n")
		assert.Contains(t, out, "  script      ./auth.js  (global)\n")
		assert.Contains(t, out, "  script      ./lib/chart.js\n")
		assert.Contains(t, out, "  stylesheet  style.css  (global)\n")
		assert.NotContains(t, out, "www/b.html")
		assert.Contains(t, out, "Audited 3 pages: 1 global script references, 1 global stylesheet references")
		assert.Contains(t, stderr.String(), "skip www/broken.html: permission denied")
	})

	t.Run("global only hides page specific references", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}

		err := (&main.AuditCmd{GlobalOnly: true}).Run(newDeps(stdout, &bytes.Buffer{}))

		require.NoError(t, err)
		assert.NotContains(t, stdout.String(), "chart.js")
		assert.Contains(t, stdout.String(), "./auth.js  (global)")
	})
}

// Package goquery inspects page markup with a structural HTML parser.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/spafrag"
)

// Ensure Auditor implements spafrag.AssetAuditor at compile time.
var _ spafrag.AssetAuditor = (*Auditor)(nil)

// Auditor lists the external scripts and stylesheets a page references and
// flags those the shell layout already provides. Unlike conversion, it
// sees the whole document, head included.
type Auditor struct {
	config *spafrag.Config
}

// NewAuditor creates a new Auditor that classifies assets using cfg.
func NewAuditor(cfg *spafrag.Config) *Auditor {
	return &Auditor{config: cfg}
}

// Audit parses the page and returns its external asset references in
// document order.
func (a *Auditor) Audit(page *spafrag.Page) (*spafrag.AssetReport, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page.Content))
	if err != nil {
		return nil, spafrag.Errorf(spafrag.EINVALID, "failed to parse HTML: %v", err)
	}

	report := &spafrag.AssetReport{Path: page.Path}

	doc.Find("script[src]").Each(func(_ int, sel *goquery.Selection) {
		src := strings.TrimSpace(sel.AttrOr("src", ""))
		if src == "" {
			return
		}
		report.Scripts = append(report.Scripts, spafrag.AssetRef{
			URL:    src,
			Global: a.config.IsGlobalScript(src),
		})
	})

	doc.Find("link[href]").Each(func(_ int, sel *goquery.Selection) {
		if !isStylesheet(sel.AttrOr("rel", "")) {
			return
		}
		href := strings.TrimSpace(sel.AttrOr("href", ""))
		if href == "" {
			return
		}
		report.Stylesheets = append(report.Stylesheets, spafrag.AssetRef{
			URL:    href,
			Global: a.config.IsGlobalStyle(href),
		})
	})

	return report, nil
}

// isStylesheet checks whether a rel attribute lists the stylesheet keyword.
func isStylesheet(rel string) bool {
	for _, token := range strings.Fields(strings.ToLower(rel)) {
		if token == "stylesheet" {
			return true
		}
	}
	return false
}

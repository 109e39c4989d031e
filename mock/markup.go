package mock

import "github.com/fwojciec/spafrag"

var _ spafrag.Markup = (*Markup)(nil)

// Markup is a mock implementation of spafrag.Markup.
type Markup struct {
	ExtractRegionFn        func(text, tag string) (string, bool)
	ExtractStylesFn        func(text string) []string
	ExtractInlineScriptsFn func(text string) []string
	RemoveGlobalScriptsFn  func(text string, names []string) string
	RemoveScriptsFn        func(text string) string
}

func (m *Markup) ExtractRegion(text, tag string) (string, bool) {
	return m.ExtractRegionFn(text, tag)
}

func (m *Markup) ExtractStyles(text string) []string {
	return m.ExtractStylesFn(text)
}

func (m *Markup) ExtractInlineScripts(text string) []string {
	return m.ExtractInlineScriptsFn(text)
}

func (m *Markup) RemoveGlobalScripts(text string, names []string) string {
	return m.RemoveGlobalScriptsFn(text, names)
}

func (m *Markup) RemoveScripts(text string) string {
	return m.RemoveScriptsFn(text)
}

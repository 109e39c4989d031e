package spafrag

// Markup isolates the handling of page markup from its callers so the
// pattern-based implementation can be replaced by a structural parser.
type Markup interface {
	// ExtractRegion returns the inner text of the first tag element.
	// The boolean is false when no such element exists.
	ExtractRegion(text, tag string) (string, bool)

	// ExtractStyles returns complete style elements in document order.
	ExtractStyles(text string) []string

	// ExtractInlineScripts returns the trimmed bodies of inline script
	// elements in document order. Empty bodies, external scripts and
	// bodies starting with "src=" are left out.
	ExtractInlineScripts(text string) []string

	// RemoveGlobalScripts removes external script elements whose src
	// contains one of names, ignoring case.
	RemoveGlobalScripts(text string, names []string) string

	// RemoveScripts removes every inline script element, content included.
	// External script references are kept.
	RemoveScripts(text string) string
}

package spafrag

import (
	"fmt"
	"strings"
)

// BuildFragment assembles the embeddable fragment of a page.
// Styles come first, one per line, then the trimmed body, then the
// reference to the extracted scripts when scriptRef is not empty.
func BuildFragment(wrapperClass string, styles []string, body, scriptRef string) string {
	var b strings.Builder
	b.WriteString(`<div class="`)
	b.WriteString(wrapperClass)
	b.WriteString("\">\n")

	if len(styles) > 0 {
		b.WriteString(strings.Join(styles, "\n"))
		b.WriteString("\n")
	}

	b.WriteString(strings.TrimSpace(body))
	b.WriteString("\n")

	if scriptRef != "" {
		b.WriteString("\n<script src=\"")
		b.WriteString(scriptRef)
		b.WriteString("\"></script>\n")
	}

	b.WriteString("</div>")
	return b.String()
}

// FormatScriptFile formats the inline scripts of a page as one script file.
// sourceName is the page's file name. Each script is preceded by an
// ordinal comment and followed by a blank line.
func FormatScriptFile(sourceName string, scripts []string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "// Inline scripts extracted from %s\n", sourceName)
	b.WriteString("// Generated automatically - do not edit manually\n\n")
	for i, script := range scripts {
		fmt.Fprintf(&b, "// Script inline %d\n%s\n\n", i+1, script)
	}
	return b.String()
}

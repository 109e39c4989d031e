// Package regexp implements spafrag.Markup with regular expressions.
// Matching is case-insensitive and spans newlines; elements are matched
// non-greedily from their opening tag to the first closing tag.
package regexp

import (
	"regexp"
	"strings"

	"github.com/fwojciec/spafrag"
)

// Ensure Markup implements spafrag.Markup at compile time.
var _ spafrag.Markup = (*Markup)(nil)

var (
	styleRe  = regexp.MustCompile(`(?is)<style\b[^>]*>.*?</style>`)
	scriptRe = regexp.MustCompile(`(?is)<script\b([^>]*)>(.*?)</script>`)

	// attrRe matches one name[=value] pair of an opening tag's attribute
	// list, with double, single or no quotes around the value.
	attrRe = regexp.MustCompile(`(?is)([^\s=/>]+)(?:\s*=\s*(?:"([^"]*)"|'([^']*)'|([^\s"'>]+)))?`)
)

// Markup extracts and strips page markup using regular expressions.
type Markup struct {
	regions map[string]*regexp.Regexp
}

// NewMarkup creates a new Markup.
func NewMarkup() *Markup {
	m := &Markup{regions: make(map[string]*regexp.Regexp)}
	// Pages are always split on these two.
	m.regionPattern("head")
	m.regionPattern("body")
	return m
}

// ExtractRegion returns the inner text of the first tag element in text.
func (m *Markup) ExtractRegion(text, tag string) (string, bool) {
	if tag == "" {
		return "", false
	}
	match := m.regionPattern(tag).FindStringSubmatch(text)
	if match == nil {
		return "", false
	}
	return match[1], true
}

func (m *Markup) regionPattern(tag string) *regexp.Regexp {
	key := strings.ToLower(tag)
	if re, ok := m.regions[key]; ok {
		return re
	}
	quoted := regexp.QuoteMeta(key)
	re := regexp.MustCompile(`(?is)<` + quoted + `\b[^>]*>(.*?)</` + quoted + `>`)
	m.regions[key] = re
	return re
}

// ExtractStyles returns complete style elements, tags included, in order.
func (m *Markup) ExtractStyles(text string) []string {
	return styleRe.FindAllString(text, -1)
}

// ExtractInlineScripts returns the trimmed bodies of inline scripts in order.
func (m *Markup) ExtractInlineScripts(text string) []string {
	var scripts []string
	for _, match := range scriptRe.FindAllStringSubmatch(text, -1) {
		if _, external := srcValue(match[1]); external {
			continue
		}
		body := strings.TrimSpace(match[2])
		// A leading src= means an attribute leaked into the element body.
		if body == "" || strings.HasPrefix(body, "src=") {
			continue
		}
		scripts = append(scripts, body)
	}
	return scripts
}

// RemoveGlobalScripts removes external scripts whose src contains one of names.
func (m *Markup) RemoveGlobalScripts(text string, names []string) string {
	if len(names) == 0 {
		return text
	}
	return scriptRe.ReplaceAllStringFunc(text, func(element string) string {
		match := scriptRe.FindStringSubmatch(element)
		src, ok := srcValue(match[1])
		if ok && spafrag.ContainsAnyFold(src, names) {
			return ""
		}
		return element
	})
}

// RemoveScripts removes inline script elements and keeps external ones.
func (m *Markup) RemoveScripts(text string) string {
	return scriptRe.ReplaceAllStringFunc(text, func(element string) string {
		match := scriptRe.FindStringSubmatch(element)
		if _, external := srcValue(match[1]); external {
			return element
		}
		return ""
	})
}

// srcValue returns the src attribute value of an opening tag's attributes.
// Only attribute names are compared, so src= inside another value is ignored.
func srcValue(attrs string) (string, bool) {
	for _, match := range attrRe.FindAllStringSubmatch(attrs, -1) {
		if !strings.EqualFold(match[1], "src") {
			continue
		}
		for _, v := range match[2:] {
			if v != "" {
				return v, true
			}
		}
		return "", true
	}
	return "", false
}

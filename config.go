package spafrag

import (
	"path/filepath"
	"strings"
)

// Config describes where pages live and which assets the shell layout
// already provides. It is read-only for the duration of a run.
type Config struct {
	// Root is the directory scanned for pages.
	Root string `yaml:"root"`

	// PagesDir is where extracted inline scripts are written, relative to Root.
	PagesDir string `yaml:"pagesDir"`

	// ScriptBaseURL prefixes the script reference inserted into fragments.
	ScriptBaseURL string `yaml:"scriptBaseURL"`

	// Extension selects candidate page files.
	Extension string `yaml:"extension"`

	// ExcludedNames are file names that are never converted.
	ExcludedNames []string `yaml:"excludedNames"`

	// ExcludedPaths are path segments; any page whose path contains one is skipped.
	ExcludedPaths []string `yaml:"excludedPaths"`

	// GlobalScripts are script file names loaded once by the shell layout.
	GlobalScripts []string `yaml:"globalScripts"`

	// GlobalStyles are stylesheet names loaded once by the shell layout.
	// They are reported by audits but not stripped from pages.
	GlobalStyles []string `yaml:"globalStyles"`

	// WrapperClass is the class of the div wrapping every fragment.
	WrapperClass string `yaml:"wrapperClass"`
}

// DefaultConfig returns the configuration of the www/ application tree.
func DefaultConfig() *Config {
	return &Config{
		Root:          "www",
		PagesDir:      "assets/js/pages",
		ScriptBaseURL: "./assets/js/pages/",
		Extension:     ".html",
		ExcludedNames: []string{"layout.html", "index.html"},
		ExcludedPaths: []string{"assets/html"},
		GlobalScripts: []string{
			"www-config.js",
			"auth.js",
			"spa-navigation.js",
			"app-state.js",
			"bottom-nav.js",
			"banner-carousel.js",
		},
		GlobalStyles: []string{
			"style.css",
			"pages/_dashboard.css",
		},
		WrapperClass: "app-container",
	}
}

// Validate returns an error if the configuration contains invalid fields.
func (c *Config) Validate() error {
	if c.Root == "" {
		return Errorf(EINVALID, "config root required")
	}
	if c.Extension == "" {
		return Errorf(EINVALID, "config extension required")
	}
	if c.PagesDir == "" {
		return Errorf(EINVALID, "config pages directory required")
	}
	if c.WrapperClass == "" {
		return Errorf(EINVALID, "config wrapper class required")
	}
	return nil
}

// IsExcluded reports whether a page path must be left alone.
// Names match exactly against the base name; paths match as substrings
// of the slash-separated path, which should be relative to Root.
func (c *Config) IsExcluded(path string) bool {
	name := filepath.Base(path)
	for _, excluded := range c.ExcludedNames {
		if name == excluded {
			return true
		}
	}
	slashed := filepath.ToSlash(path)
	for _, segment := range c.ExcludedPaths {
		if segment != "" && strings.Contains(slashed, segment) {
			return true
		}
	}
	return false
}

// IsGlobalScript reports whether src references a script the shell provides.
func (c *Config) IsGlobalScript(src string) bool {
	return ContainsAnyFold(src, c.GlobalScripts)
}

// IsGlobalStyle reports whether href references a stylesheet the shell provides.
func (c *Config) IsGlobalStyle(href string) bool {
	return ContainsAnyFold(href, c.GlobalStyles)
}

// PageName returns the page's base name without its extension.
func (c *Config) PageName(pagePath string) string {
	return strings.TrimSuffix(filepath.Base(pagePath), filepath.Ext(pagePath))
}

// ScriptPath returns where the inline scripts of a page are written.
func (c *Config) ScriptPath(pagePath string) string {
	return filepath.Join(c.Root, filepath.FromSlash(c.PagesDir), c.PageName(pagePath)+".js")
}

// ScriptRef returns the src used by a fragment to load its extracted scripts.
func (c *Config) ScriptRef(pagePath string) string {
	return c.ScriptBaseURL + c.PageName(pagePath) + ".js"
}

// ContainsAnyFold reports whether s contains any non-empty name, ignoring case.
func ContainsAnyFold(s string, names []string) bool {
	lower := strings.ToLower(s)
	for _, name := range names {
		if name != "" && strings.Contains(lower, strings.ToLower(name)) {
			return true
		}
	}
	return false
}

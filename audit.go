package spafrag

// AssetRef is an external asset referenced by a page.
type AssetRef struct {
	URL string

	// Global is true when the shell layout already provides the asset.
	Global bool
}

// AssetReport lists the external assets a page references.
type AssetReport struct {
	Path        string
	Scripts     []AssetRef
	Stylesheets []AssetRef
}

// Globals returns the global references of the report, scripts first.
func (r *AssetReport) Globals() []AssetRef {
	var refs []AssetRef
	for _, ref := range r.Scripts {
		if ref.Global {
			refs = append(refs, ref)
		}
	}
	for _, ref := range r.Stylesheets {
		if ref.Global {
			refs = append(refs, ref)
		}
	}
	return refs
}

// AssetAuditor inspects a page's external asset references without changing it.
type AssetAuditor interface {
	Audit(page *Page) (*AssetReport, error)
}

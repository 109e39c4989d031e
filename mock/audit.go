package mock

import "github.com/fwojciec/spafrag"

var _ spafrag.AssetAuditor = (*AssetAuditor)(nil)

// AssetAuditor is a mock implementation of spafrag.AssetAuditor.
type AssetAuditor struct {
	AuditFn func(page *spafrag.Page) (*spafrag.AssetReport, error)
}

func (a *AssetAuditor) Audit(page *spafrag.Page) (*spafrag.AssetReport, error) {
	return a.AuditFn(page)
}

package external_services

import (
	"github.com/medcharfeddine/nutricoach/internal/domain/contract"
	"github.com/microcosm-cc/bluemonday"
)

// HTMLSanitizer strips scripts and unsafe attributes from rich text bodies.
type HTMLSanitizer struct {
	policy *bluemonday.Policy
}

var _ contract.IHTMLSanitizer = (*HTMLSanitizer)(nil)

func NewHTMLSanitizer() *HTMLSanitizer {
	policy := bluemonday.UGCPolicy()
	policy.AllowAttrs("class").OnElements("p", "span", "div", "figure")
	policy.RequireNoFollowOnLinks(true)
	return &HTMLSanitizer{policy: policy}
}

func (s *HTMLSanitizer) Sanitize(html string) string {
	return s.policy.Sanitize(html)
}

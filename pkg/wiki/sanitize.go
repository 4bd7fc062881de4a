package wiki

import (
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	contentPolicyOnce sync.Once
	contentPolicy     *bluemonday.Policy
)

// Sanitize strips scripts, event handlers and other unsafe markup from
// scraped page content so it can be injected into the output region.
func Sanitize(raw string) string {
	return contentSanitizer().Sanitize(raw)
}

func contentSanitizer() *bluemonday.Policy {
	contentPolicyOnce.Do(func() {
		policy := bluemonday.UGCPolicy()
		policy.AllowAttrs("class", "id", "role").Globally()
		policy.AllowElements("nav", "header", "main", "section", "figure", "figcaption")
		contentPolicy = policy
	})
	return contentPolicy
}

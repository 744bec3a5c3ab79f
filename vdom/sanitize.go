package vdom

import (
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	fragmentPolicyOnce sync.Once
	fragmentPolicy     *bluemonday.Policy
)

// SafeHTML serializes n and passes it through a strict policy that only
// keeps the structural elements and presentation attributes produced by the
// app's components. The result is safe to embed in a third-party page.
func SafeHTML(n *VNode) (string, error) {
	raw, err := HTMLString(n)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(fragmentSanitizer().Sanitize(raw)), nil
}

func fragmentSanitizer() *bluemonday.Policy {
	fragmentPolicyOnce.Do(func() {
		policy := bluemonday.StrictPolicy()
		policy.AllowElements("div", "span", "p", "label", "h1", "h2", "h3", "h4", "h5", "h6")
		policy.AllowAttrs("class", "id").Globally()
		policy.AllowAttrs("for").OnElements("label")
		policy.AllowDataAttributes()
		fragmentPolicy = policy
	})
	return fragmentPolicy
}

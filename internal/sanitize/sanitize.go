// Package sanitize cleans user-submitted form text before it is stored.
// Uses bluemonday's strict policy to strip all HTML markup -- idea titles
// and details are plain text, so any tags in the input are attacker noise.
package sanitize

import (
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

// policy is the singleton bluemonday policy. Initialized once via sync.Once
// for thread-safe lazy initialization.
var (
	policy     *bluemonday.Policy
	policyOnce sync.Once
)

// getPolicy returns the shared sanitization policy, initializing it on first call.
func getPolicy() *bluemonday.Policy {
	policyOnce.Do(func() {
		// StrictPolicy strips every element and attribute. Text content of
		// non-executable elements is kept; script and style bodies are dropped.
		policy = bluemonday.StrictPolicy()
	})
	return policy
}

// Text strips all HTML from user-submitted text and trims surrounding
// whitespace. Called on every form field before validation so that markup
// cannot smuggle an "empty" value past the required-field checks.
func Text(input string) string {
	return strings.TrimSpace(getPolicy().Sanitize(input))
}

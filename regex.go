package tagspec

import "regexp"

// Template placeholders like {{version}} or {{date 'YYYYMMDD'}} are resolved
// by downstream evaluators; values containing them cannot be linted as
// literals.
var tmplRe = regexp.MustCompile(`{{[^{}]*}}`)

// isTemplated reports whether s contains a template placeholder.
func isTemplated(s string) bool {
	return tmplRe.MatchString(s)
}

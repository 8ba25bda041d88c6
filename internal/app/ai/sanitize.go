package ai

import (
	"regexp"
	"strings"
)

// Line-leading markers are removed before inline emphasis so that
// "* item" is read as a bullet, not as an opening italic.
var sanitizeRules = []struct {
	pattern *regexp.Regexp
	repl    string
}{
	// A run of blockquote, heading, bullet and numbered-list markers is
	// consumed in one match, however deeply they are stacked.
	{regexp.MustCompile(`(?m)^(?:[ \t]*(?:>|#{1,6}[ \t]|[-*+][ \t]|\d+[.)][ \t]))+[ \t]*`), ""},
	{regexp.MustCompile(`\*\*(.*?)\*\*`), "${1}"}, // bold
	{regexp.MustCompile(`\*(.*?)\*`), "${1}"},     // italic
	{regexp.MustCompile("`(.*?)`"), "${1}"},       // inline code
}

// Sanitize strips incidental markdown from model output.
//
// Every rule only deletes characters, so a pass that changes the text makes it
// strictly shorter; repeating passes until nothing changes terminates and
// makes Sanitize idempotent.
func Sanitize(raw string) string {
	s := raw
	for {
		next := sanitizePass(s)
		if next == s {
			return s
		}
		s = next
	}
}

func sanitizePass(s string) string {
	for _, r := range sanitizeRules {
		s = r.pattern.ReplaceAllString(s, r.repl)
	}
	return strings.TrimSpace(s)
}

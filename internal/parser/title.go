package parser

import (
	"regexp"
	"strings"
)

var leadingIRe = regexp.MustCompile(`^[Ii]\s+`)

// CleanItemTitle removes a stray leading "I " token left over from phrasings
// like "I need shovels", unless the remainder begins with a whitelisted
// product name ("iPad", "IKEA", ...). Pure and idempotent.
func CleanItemTitle(title string) string {
	for {
		loc := leadingIRe.FindStringIndex(title)
		if loc == nil {
			return title
		}
		rest := title[loc[1]:]
		if startsWithProductName(rest) {
			return title
		}
		title = rest
	}
}

func startsWithProductName(s string) bool {
	lowered := strings.ToLower(s)
	for _, product := range productWhitelist {
		if strings.HasPrefix(lowered, product) {
			return true
		}
	}
	return false
}

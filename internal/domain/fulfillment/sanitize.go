package fulfillment

import "strings"

// Sanitize replaces every character that is invalid in a path segment on
// common filesystems (\ / * ? : " < > |) with 'x'. It must be applied to
// every user-supplied string that ends up in a folder or file name.
func Sanitize(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '\\', '/', '*', '?', ':', '"', '<', '>', '|':
			return 'x'
		default:
			return r
		}
	}, s)
}

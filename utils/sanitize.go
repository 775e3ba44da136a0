package utils

import "github.com/microcosm-cc/bluemonday"

var sanitizer = bluemonday.UGCPolicy()

// Sanitize strips unsafe HTML from user-supplied post fields, keeping the
// formatting tags the UGC policy allows. Applied to stored values only, never
// as input validation.
func Sanitize(input string) string {
	return sanitizer.Sanitize(input)
}

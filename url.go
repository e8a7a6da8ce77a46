package websum

import "strings"

// NormalizeURL prepends https:// to raw unless it already carries an
// http:// or https:// scheme.
func NormalizeURL(raw string) string {
	lower := strings.ToLower(raw)
	if strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://") {
		return raw
	}
	return "https://" + raw
}

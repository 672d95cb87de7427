package api

import "strings"

// publicURL turns a stored object key into the URL the browser fetches.
// Keys that are already absolute (remote buckets with their own domain)
// pass through untouched. It is handed to the converter as its URLFunc.
func (h *HTTPHandler) publicURL(key string) string {
	key = strings.TrimSpace(key)
	switch {
	case key == "":
		return ""
	case isAbsoluteURL(key):
		return key
	}
	return h.storagePublicBase + "/" + strings.TrimLeft(key, "/")
}

func isAbsoluteURL(value string) bool {
	return strings.HasPrefix(value, "http://") || strings.HasPrefix(value, "https://")
}

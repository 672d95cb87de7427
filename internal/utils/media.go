package utils

import (
	"encoding/base64"
	"net/http"
	"strings"
)

// EncodeDataURL wraps raw bytes into a base64 data URL. An empty mime type is
// sniffed from the payload.
func EncodeDataURL(mimeType string, data []byte) string {
	mimeType = strings.TrimSpace(mimeType)
	if mimeType == "" {
		mimeType = http.DetectContentType(data)
	}
	return "data:" + mimeType + ";base64," + base64.StdEncoding.EncodeToString(data)
}

// MimeFromExtension maps an upload extension to its image mime type.
func MimeFromExtension(ext string) string {
	switch strings.ToLower(strings.TrimPrefix(strings.TrimSpace(ext), ".")) {
	case "png":
		return "image/png"
	case "jpg", "jpeg":
		return "image/jpeg"
	case "gif":
		return "image/gif"
	case "webp":
		return "image/webp"
	default:
		return ""
	}
}

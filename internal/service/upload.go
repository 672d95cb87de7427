package service

import (
	"path"
	"strings"
	"time"
)

// Upload is an image received from a client.
type Upload struct {
	Filename string
	Data     []byte
}

var allowedImageExtensions = map[string]struct{}{
	"png":  {},
	"jpg":  {},
	"jpeg": {},
	"gif":  {},
}

// ImageExtension returns the lowercase extension of an allowed image name.
func ImageExtension(filename string) (string, error) {
	ext := strings.ToLower(strings.TrimPrefix(path.Ext(normalizeFilename(filename)), "."))
	if _, ok := allowedImageExtensions[ext]; !ok {
		return "", ErrInvalidImageType
	}
	return ext, nil
}

// uploadBaseName prefixes the client file name with the upload time so
// repeated uploads of the same file do not collide.
func uploadBaseName(filename string, now time.Time) string {
	name := path.Base(normalizeFilename(filename))
	name = strings.TrimSuffix(name, path.Ext(name))
	return now.UTC().Format("20060102_150405") + "_" + name
}

func normalizeFilename(filename string) string {
	return strings.ReplaceAll(strings.TrimSpace(filename), "\\", "/")
}

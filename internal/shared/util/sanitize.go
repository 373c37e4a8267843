package util

import (
	"errors"
	"path"
	"regexp"
	"strings"
)

const maxFileNameLen = 128

// ErrInvalidFileName is returned for names that cannot be stored safely.
var ErrInvalidFileName = errors.New("invalid file name")

var unsafeRun = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// SanitizeFileName reduces an uploaded file name to a safe base name,
// preserving the extension used for format dispatch.
func SanitizeFileName(name string) (string, error) {
	s := strings.TrimSpace(name)
	if s == "" || strings.Contains(s, "..") {
		return "", ErrInvalidFileName
	}
	s = path.Base(strings.ReplaceAll(s, "\\", "/"))
	s = strings.Trim(unsafeRun.ReplaceAllString(s, "_"), "_")
	if s == "" || s == "." || s == "/" {
		return "", ErrInvalidFileName
	}
	if len(s) > maxFileNameLen {
		ext := path.Ext(s)
		if len(ext) >= maxFileNameLen {
			return "", ErrInvalidFileName
		}
		s = s[:maxFileNameLen-len(ext)] + ext
	}
	return s, nil
}

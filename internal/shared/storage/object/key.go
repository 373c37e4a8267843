package object

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"path"

	"github.com/google/uuid"

	"jd-backend/internal/shared/util"
)

const sniffLen = 512

// NewKey returns a fresh key <owner namespace>/<uuid>_<sanitized name>.
func NewKey(owner, fileName string) (string, error) {
	name, err := util.SanitizeFileName(fileName)
	if err != nil {
		return "", fmt.Errorf("sanitize file name: %w", err)
	}
	return path.Join(util.NamespaceKey(owner), uuid.NewString()+"_"+name), nil
}

// Sniff detects the content type of r from its first bytes and returns a
// reader that still yields the whole body.
func Sniff(r io.Reader) (io.Reader, string, error) {
	head := make([]byte, sniffLen)
	n, err := io.ReadFull(r, head)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return nil, "", fmt.Errorf("read sniff: %w", err)
	}
	head = head[:n]
	return io.MultiReader(bytes.NewReader(head), r), http.DetectContentType(head), nil
}

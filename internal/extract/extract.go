// Package extract turns uploaded job-description documents into plain text.
package extract

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"golang.org/x/text/unicode/norm"

	"jd-backend/internal/shared/storage/object"
	"jd-backend/internal/shared/telemetry"
)

// ErrUnsupportedFormat is returned when the file extension is not recognized.
var ErrUnsupportedFormat = errors.New("unsupported file format")

// DocUnsupportedMessage is returned in place of text for legacy .doc uploads.
const DocUnsupportedMessage = "DOC files are not supported in cloud deployment. Please convert to DOCX or PDF format."

// Format identifies a recognized document type.
type Format string

const (
	FormatPDF   Format = "pdf"
	FormatDOCX  Format = "docx"
	FormatDOC   Format = "doc"
	FormatImage Format = "image"
)

// DetectFormat maps a file name to a Format by its extension.
func DetectFormat(fileName string) (Format, bool) {
	switch strings.ToLower(filepath.Ext(strings.TrimSpace(fileName))) {
	case ".pdf":
		return FormatPDF, true
	case ".docx":
		return FormatDOCX, true
	case ".doc":
		return FormatDOC, true
	case ".png", ".jpg", ".jpeg", ".gif":
		return FormatImage, true
	}
	return "", false
}

// FromFile returns the best-effort text of data. Legacy Word and image files
// yield a fixed explanatory text instead of failing. Unknown extensions fail
// with ErrUnsupportedFormat.
func FromFile(ctx context.Context, data []byte, fileName string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	format, ok := DetectFormat(fileName)
	if !ok {
		return "", fmt.Errorf("%w: %s (only PDF, DOCX and image formats are supported)", ErrUnsupportedFormat, fileName)
	}

	var (
		text string
		err  error
	)
	switch format {
	case FormatPDF:
		text, err = extractPDF(data)
	case FormatDOCX:
		text, err = extractDOCX(data)
	case FormatDOC:
		text = DocUnsupportedMessage
	case FormatImage:
		text = describeImage(data)
	}
	if err != nil {
		telemetry.Error("extract.failed", map[string]any{
			"file_name": fileName,
			"format":    string(format),
			"error":     err,
		})
		return "", fmt.Errorf("extract %s file=%s: %w", format, fileName, err)
	}
	return clean(text), nil
}

// FromObject reads a stored upload, extracts its text and persists the text
// next to it as <key>.extracted.txt.
func FromObject(ctx context.Context, store object.Store, key string, fileName string) (string, error) {
	body, err := store.Open(ctx, key)
	if err != nil {
		return "", fmt.Errorf("extract text key=%s: %w", key, err)
	}
	defer body.Close()

	raw, err := io.ReadAll(body)
	if err != nil {
		return "", fmt.Errorf("extract text key=%s: read: %w", key, err)
	}

	text, err := FromFile(ctx, raw, fileName)
	if err != nil {
		return "", err
	}

	if _, err := store.PutKey(ctx, key+".extracted.txt", "text/plain; charset=utf-8", strings.NewReader(text)); err != nil {
		return "", fmt.Errorf("extract text key=%s: save: %w", key, err)
	}
	return text, nil
}

func clean(text string) string {
	return strings.TrimSpace(norm.NFC.String(text))
}

// joinSections concatenates non-empty trimmed sections with newlines.
func joinSections(sections ...string) string {
	parts := make([]string, 0, len(sections))
	for _, s := range sections {
		if s = strings.TrimSpace(s); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, "\n")
}

package extract

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"strings"
)

const ocrUnavailable = `OCR text extraction is not available in cloud deployment.
The system will attempt to extract any visible text from the image,
but for best results please convert the image to PDF or DOCX format
with proper text content.

If this is a scanned document, consider using a document conversion
service to convert it to searchable PDF before uploading.`

// describeImage reports what is known about an image upload. It never fails.
func describeImage(data []byte) string {
	header := "Image received: format could not be determined."
	if cfg, format, err := image.DecodeConfig(bytes.NewReader(data)); err == nil {
		header = fmt.Sprintf("Image received: %s format, %dx%d pixels.", strings.ToUpper(format), cfg.Width, cfg.Height)
	}
	return header + "\n\n" + ocrUnavailable
}

package extract

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// extractPDF returns page text followed by link annotation URIs, one per line.
func extractPDF(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}

	var text strings.Builder
	var links []string
	fonts := make(map[string]*pdf.Font)
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		for _, name := range page.Fonts() {
			if _, ok := fonts[name]; !ok {
				f := page.Font(name)
				fonts[name] = &f
			}
		}
		content, err := page.GetPlainText(fonts)
		if err != nil {
			return "", fmt.Errorf("page %d: %w", i, err)
		}
		text.WriteString(content)
		links = append(links, pageLinks(page)...)
	}
	return joinSections(text.String(), strings.Join(links, "\n")), nil
}

func pageLinks(page pdf.Page) []string {
	annots := page.V.Key("Annots")
	var out []string
	for i := 0; i < annots.Len(); i++ {
		uri := strings.TrimSpace(annots.Index(i).Key("A").Key("URI").RawString())
		if uri != "" {
			out = append(out, uri)
		}
	}
	return out
}

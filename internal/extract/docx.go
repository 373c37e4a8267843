package extract

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"errors"
	"io"
	"regexp"
	"sort"
	"strings"
)

const documentPart = "word/document.xml"

var hrefPattern = regexp.MustCompile(`href="([^"]+)"`)

// extractDOCX returns body paragraphs, then hyperlink targets, then header
// and footer text.
func extractDOCX(data []byte) (string, error) {
	if len(data) == 0 {
		return "", errors.New("empty docx data")
	}
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}

	parts := make(map[string]*zip.File, len(zr.File))
	names := make([]string, 0, len(zr.File))
	for _, f := range zr.File {
		name := strings.ReplaceAll(f.Name, "\\", "/")
		parts[name] = f
		names = append(names, name)
	}
	sort.Strings(names)

	doc, ok := parts[documentPart]
	if !ok {
		return "", errors.New("document.xml file not found")
	}
	raw, err := readPart(doc)
	if err != nil {
		return "", err
	}
	body := docxText(raw)

	var links []string
	var headerFooter []string
	for _, name := range names {
		base := strings.TrimPrefix(name, "word/")
		switch {
		case strings.Contains(name, "hyperlink"):
			content, err := readPart(parts[name])
			if err != nil {
				return "", err
			}
			for _, m := range hrefPattern.FindAllStringSubmatch(string(content), -1) {
				links = append(links, m[1])
			}
		case name == "word/_rels/document.xml.rels":
			content, err := readPart(parts[name])
			if err != nil {
				return "", err
			}
			links = append(links, externalLinks(content)...)
		case strings.HasPrefix(name, "word/") && !strings.Contains(base, "/") &&
			(strings.HasPrefix(base, "header") || strings.HasPrefix(base, "footer")) &&
			strings.HasSuffix(base, ".xml"):
			content, err := readPart(parts[name])
			if err != nil {
				return "", err
			}
			headerFooter = append(headerFooter, docxText(content))
		}
	}

	return joinSections(body, strings.Join(links, "\n"), strings.Join(headerFooter, "\n")), nil
}

func readPart(f *zip.File) ([]byte, error) {
	rc, err := f.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return io.ReadAll(rc)
}

// docxText flattens WordprocessingML into text with one line per paragraph.
func docxText(raw []byte) string {
	decoder := xml.NewDecoder(bytes.NewReader(raw))
	var buf strings.Builder
	inText := false
	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return strings.TrimSpace(buf.String())
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "t":
				inText = true
			case "tab":
				buf.WriteString("\t")
			}
		case xml.CharData:
			if inText {
				buf.Write(t)
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				inText = false
			case "p", "br":
				buf.WriteString("\n")
			}
		}
	}
	return strings.TrimSpace(buf.String())
}

type relationships struct {
	Items []struct {
		Type       string `xml:"Type,attr"`
		Target     string `xml:"Target,attr"`
		TargetMode string `xml:"TargetMode,attr"`
	} `xml:"Relationship"`
}

func externalLinks(raw []byte) []string {
	var rels relationships
	if err := xml.Unmarshal(raw, &rels); err != nil {
		return nil
	}
	var out []string
	for _, r := range rels.Items {
		if strings.HasSuffix(r.Type, "/hyperlink") && strings.EqualFold(r.TargetMode, "External") && r.Target != "" {
			out = append(out, r.Target)
		}
	}
	return out
}

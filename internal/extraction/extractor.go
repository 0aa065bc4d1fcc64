// Package extraction converts binary resume documents into plain text.
// It is the only stage that touches document bytes; everything after it
// operates on the extracted string.
package extraction

import (
	"archive/zip"
	"bytes"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"
)

// Format identifies a supported document container.
type Format string

const (
	FormatPDF  Format = "pdf"
	FormatDOCX Format = "docx"
)

// FormatFromFilename derives the container kind from a file name
// extension. Unknown extensions return an UnsupportedFormatError.
func FormatFromFilename(name string) (Format, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(name), "."))
	switch ext {
	case "pdf":
		return FormatPDF, nil
	case "docx", "doc":
		return FormatDOCX, nil
	default:
		return "", &UnsupportedFormatError{Format: ext}
	}
}

// Extract produces the visible text of the document, pages or
// paragraphs concatenated in document order and separated by newlines.
func Extract(data []byte, format Format) (string, error) {
	switch format {
	case FormatPDF:
		return extractPDF(data)
	case FormatDOCX:
		return extractDOCX(data)
	default:
		return "", &UnsupportedFormatError{Format: string(format)}
	}
}

func extractPDF(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", &ExtractionError{Format: "pdf", Cause: err}
	}

	var sb strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			return "", &ExtractionError{Format: "pdf", Cause: fmt.Errorf("page %d: %w", i, err)}
		}
		sb.WriteString(text)
		sb.WriteString("\n")
	}

	return sb.String(), nil
}

var xmlTagPattern = regexp.MustCompile(`<[^>]+>`)

func extractDOCX(data []byte) (string, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", &ExtractionError{Format: "docx", Cause: err}
	}

	var docXML []byte
	for _, f := range zr.File {
		if f.Name == "word/document.xml" {
			rc, err := f.Open()
			if err != nil {
				return "", &ExtractionError{Format: "docx", Cause: err}
			}
			buf := new(bytes.Buffer)
			_, err = buf.ReadFrom(rc)
			_ = rc.Close()
			if err != nil {
				return "", &ExtractionError{Format: "docx", Cause: err}
			}
			docXML = buf.Bytes()
			break
		}
	}
	if len(docXML) == 0 {
		return "", &ExtractionError{Format: "docx", Cause: fmt.Errorf("no word/document.xml in archive")}
	}

	// Paragraph closes become newlines so each paragraph lands on its
	// own line; remaining markup is stripped.
	text := string(docXML)
	text = strings.ReplaceAll(text, "</w:p>", "\n")
	text = strings.ReplaceAll(text, "<w:tab/>", "\t")
	text = xmlTagPattern.ReplaceAllString(text, "")
	text = unescapeXML(text)

	return text, nil
}

func unescapeXML(s string) string {
	replacer := strings.NewReplacer(
		"&amp;", "&",
		"&lt;", "<",
		"&gt;", ">",
		"&quot;", `"`,
		"&apos;", "'",
	)
	return replacer.Replace(s)
}

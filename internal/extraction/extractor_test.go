package extraction

import (
	"archive/zip"
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildDOCX assembles a minimal DOCX archive with one paragraph per
// input string.
func buildDOCX(t *testing.T, paragraphs []string) []byte {
	t.Helper()

	var body bytes.Buffer
	body.WriteString(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>`)
	body.WriteString(`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>`)
	for _, p := range paragraphs {
		body.WriteString(`<w:p><w:r><w:t>` + p + `</w:t></w:r></w:p>`)
	}
	body.WriteString(`</w:body></w:document>`)

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	f, err := zw.Create("word/document.xml")
	require.NoError(t, err)
	_, err = f.Write(body.Bytes())
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	return buf.Bytes()
}

func TestExtract_DOCXParagraphsSeparatedByNewlines(t *testing.T) {
	data := buildDOCX(t, []string{"John Doe", "john@x.com", "Software Engineer"})

	text, err := Extract(data, FormatDOCX)

	require.NoError(t, err)
	assert.Contains(t, text, "John Doe\n")
	assert.Contains(t, text, "john@x.com\n")
	assert.Contains(t, text, "Software Engineer\n")
}

func TestExtract_DOCXUnescapesEntities(t *testing.T) {
	data := buildDOCX(t, []string{"R&amp;D Engineer"})

	text, err := Extract(data, FormatDOCX)

	require.NoError(t, err)
	assert.Contains(t, text, "R&D Engineer")
}

func TestExtract_DOCXMissingDocumentXML(t *testing.T) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	f, err := zw.Create("unrelated.txt")
	require.NoError(t, err)
	_, err = f.Write([]byte("nothing"))
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	_, err = Extract(buf.Bytes(), FormatDOCX)

	var extractErr *ExtractionError
	require.ErrorAs(t, err, &extractErr)
	assert.Equal(t, "docx", extractErr.Format)
}

func TestExtract_CorruptDOCX(t *testing.T) {
	_, err := Extract([]byte("not a zip archive"), FormatDOCX)

	var extractErr *ExtractionError
	assert.ErrorAs(t, err, &extractErr)
}

func TestExtract_CorruptPDF(t *testing.T) {
	_, err := Extract([]byte("not a pdf"), FormatPDF)

	var extractErr *ExtractionError
	require.ErrorAs(t, err, &extractErr)
	assert.Equal(t, "pdf", extractErr.Format)
}

func TestExtract_UnsupportedFormat(t *testing.T) {
	_, err := Extract([]byte("data"), Format("rtf"))

	var unsupported *UnsupportedFormatError
	require.ErrorAs(t, err, &unsupported)
	assert.Equal(t, "rtf", unsupported.Format)
}

func TestFormatFromFilename(t *testing.T) {
	format, err := FormatFromFilename("resume.PDF")
	require.NoError(t, err)
	assert.Equal(t, FormatPDF, format)

	format, err = FormatFromFilename("resume.docx")
	require.NoError(t, err)
	assert.Equal(t, FormatDOCX, format)

	format, err = FormatFromFilename("resume.doc")
	require.NoError(t, err)
	assert.Equal(t, FormatDOCX, format)

	_, err = FormatFromFilename("resume.txt")
	var unsupported *UnsupportedFormatError
	assert.ErrorAs(t, err, &unsupported)
}

package rendering

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"strings"

	"github.com/jonathan/resume-analyzer/internal/types"
)

const docxContentTypes = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
  <Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>
  <Default Extension="xml" ContentType="application/xml"/>
  <Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>
</Types>`

const docxRels = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
  <Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>
</Relationships>`

// styleAccents maps each style to the run color used for headings.
var styleAccents = map[Style]string{
	StyleProfessional: "1A1A1A",
	StyleModern:       "0066CC",
	StyleClassic:      "000000",
}

// RenderDOCX renders the resume as a WordprocessingML document.
func RenderDOCX(resume *types.Resume, style Style) ([]byte, error) {
	accent, ok := styleAccents[style]
	if !ok {
		return nil, &TemplateError{Message: fmt.Sprintf("unknown style %q", style)}
	}

	w := &docxWriter{accent: accent}
	w.writeResume(resume)

	var buf bytes.Buffer
	archive := zip.NewWriter(&buf)
	parts := []struct {
		name    string
		content string
	}{
		{"[Content_Types].xml", docxContentTypes},
		{"_rels/.rels", docxRels},
		{"word/document.xml", w.document()},
	}
	for _, part := range parts {
		f, err := archive.Create(part.name)
		if err != nil {
			return nil, &RenderError{Message: fmt.Sprintf("failed to create archive entry %s", part.name), Cause: err}
		}
		if _, err := f.Write([]byte(part.content)); err != nil {
			return nil, &RenderError{Message: fmt.Sprintf("failed to write archive entry %s", part.name), Cause: err}
		}
	}
	if err := archive.Close(); err != nil {
		return nil, &RenderError{Message: "failed to finalize document archive", Cause: err}
	}
	return buf.Bytes(), nil
}

// docxWriter accumulates document.xml paragraphs
type docxWriter struct {
	body   strings.Builder
	accent string
}

func (w *docxWriter) writeResume(resume *types.Resume) {
	w.title(resume.PersonalInfo.Name)
	if contact := contactLine(resume.PersonalInfo); len(contact) > 0 {
		w.centered(strings.Join(contact, " | "))
	}

	if resume.Summary != "" {
		w.heading("Professional Summary")
		w.text(resume.Summary)
	}

	if resume.HasEducation() {
		w.heading("Education")
		for _, edu := range resume.Education {
			if edu.IsZero() {
				continue
			}
			w.entryTitle(edu.Degree, edu.Institution)
			meta := edu.GraduationDate
			if edu.GPA != "" {
				meta = strings.TrimSpace(meta + " | GPA: " + edu.GPA)
			}
			if meta != "" {
				w.meta(meta)
			}
		}
	}

	if resume.HasExperience() {
		w.heading("Work Experience")
		for _, exp := range resume.Experience {
			if exp.IsZero() {
				continue
			}
			w.entryTitle(exp.Title, exp.Company)
			if exp.StartDate != "" || exp.EndDate != "" {
				w.meta(fmt.Sprintf("%s - %s", exp.StartDate, exp.EndDate))
			}
			for _, bullet := range splitBullets(exp.Responsibilities) {
				w.bullet(bullet)
			}
		}
	}

	if !resume.Skills.IsEmpty() {
		w.heading("Skills")
		if resume.Skills.Technical != "" {
			w.labeled("Technical Skills", resume.Skills.Technical)
		}
		if resume.Skills.Soft != "" {
			w.labeled("Soft Skills", resume.Skills.Soft)
		}
	}

	if resume.HasProjects() {
		w.heading("Projects")
		for _, project := range resume.Projects {
			if project.IsZero() {
				continue
			}
			w.entryTitle(project.Name, project.Technologies)
			if project.Description != "" {
				w.text(project.Description)
			}
		}
	}
}

func (w *docxWriter) document() string {
	return `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>` +
		w.body.String() + `</w:body></w:document>`
}

// title writes the centered resume name line.
func (w *docxWriter) title(text string) {
	w.paragraph(`<w:pPr><w:jc w:val="center"/></w:pPr>`, `<w:b/><w:sz w:val="48"/>`, text)
}

func (w *docxWriter) centered(text string) {
	w.paragraph(`<w:pPr><w:jc w:val="center"/></w:pPr>`, `<w:sz w:val="20"/>`, text)
}

func (w *docxWriter) heading(text string) {
	w.paragraph(`<w:pPr><w:spacing w:before="240" w:after="80"/></w:pPr>`,
		fmt.Sprintf(`<w:b/><w:sz w:val="28"/><w:color w:val="%s"/>`, w.accent), text)
}

// entryTitle writes a bold title, optionally followed by a secondary
// part in the same paragraph.
func (w *docxWriter) entryTitle(title, secondary string) {
	var runs strings.Builder
	runs.WriteString(fmt.Sprintf(`<w:r><w:rPr><w:b/></w:rPr><w:t xml:space="preserve">%s</w:t></w:r>`, escapeDocxText(title)))
	if secondary != "" {
		runs.WriteString(fmt.Sprintf(`<w:r><w:t xml:space="preserve"> — %s</w:t></w:r>`, escapeDocxText(secondary)))
	}
	w.body.WriteString(`<w:p>` + runs.String() + `</w:p>`)
}

func (w *docxWriter) meta(text string) {
	w.paragraph("", `<w:i/><w:sz w:val="20"/>`, text)
}

func (w *docxWriter) text(text string) {
	w.paragraph("", "", text)
}

func (w *docxWriter) bullet(text string) {
	w.paragraph(`<w:pPr><w:ind w:left="360"/></w:pPr>`, `<w:sz w:val="20"/>`, "• "+text)
}

func (w *docxWriter) labeled(label, text string) {
	w.body.WriteString(fmt.Sprintf(
		`<w:p><w:r><w:rPr><w:b/></w:rPr><w:t xml:space="preserve">%s: </w:t></w:r><w:r><w:t xml:space="preserve">%s</w:t></w:r></w:p>`,
		escapeDocxText(label), escapeDocxText(text)))
}

func (w *docxWriter) paragraph(props, runProps, text string) {
	if runProps != "" {
		runProps = `<w:rPr>` + runProps + `</w:rPr>`
	}
	w.body.WriteString(fmt.Sprintf(`<w:p>%s<w:r>%s<w:t xml:space="preserve">%s</w:t></w:r></w:p>`,
		props, runProps, escapeDocxText(text)))
}

func escapeDocxText(text string) string {
	var buf bytes.Buffer
	// xml.EscapeText only fails on a failing writer, which bytes.Buffer is not.
	_ = xml.EscapeText(&buf, []byte(text))
	return buf.String()
}

package word

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"strings"
)

// Placeholders replaced in the report template
const (
	PlaceholderDate     = "{{Date}}"
	PlaceholderInput    = "{{Input}}"
	PlaceholderVehicles = "{{Vehicles}}"
	PlaceholderEntries  = "{{Entries}}"
	PlaceholderContent  = "{{Content}}"
)

// Part is one file inside a .docx package
type Part struct {
	Name string
	Body string
}

// Placeholders lists every placeholder the exporter fills in
var Placeholders = []string{
	PlaceholderDate,
	PlaceholderInput,
	PlaceholderVehicles,
	PlaceholderEntries,
	PlaceholderContent,
}

const documentPart = "word/document.xml"

var templateParts = []Part{
	{"[Content_Types].xml", `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>
<Default Extension="xml" ContentType="application/xml"/>
<Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>
</Types>`},
	{"_rels/.rels", `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>
</Relationships>`},
	{"word/_rels/document.xml.rels", `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
</Relationships>`},
	{documentPart, `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
<w:body>
<w:p><w:r><w:rPr><w:b/><w:sz w:val="32"/></w:rPr><w:t>UVA Matrix Summary</w:t></w:r></w:p>
<w:p><w:r><w:t>Date: {{Date}}</w:t></w:r></w:p>
<w:p><w:r><w:t>Workbook: {{Input}}</w:t></w:r></w:p>
<w:p><w:r><w:t>Vehicles: {{Vehicles}}</w:t></w:r></w:p>
<w:p><w:r><w:t>L2 Entries: {{Entries}}</w:t></w:r></w:p>
<w:p><w:r><w:t xml:space="preserve">{{Content}}</w:t></w:r></w:p>
</w:body>
</w:document>`},
}

// WriteTemplate writes the minimal .docx report template to w.
// Each placeholder sits in a single run so it survives text replacement.
func WriteTemplate(w io.Writer) error {
	return writeParts(w, templateParts)
}

func writeParts(w io.Writer, parts []Part) error {
	zw := zip.NewWriter(w)
	for _, part := range parts {
		pw, err := zw.Create(part.Name)
		if err != nil {
			return err
		}
		if _, err := io.WriteString(pw, part.Body); err != nil {
			return err
		}
	}
	return zw.Close()
}

func templateBytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteTemplate(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// checkPlaceholders fails when the document part of a template misses a placeholder
func checkPlaceholders(data []byte) error {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return err
	}
	for _, f := range zr.File {
		if f.Name != documentPart {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return err
		}
		body, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return err
		}

		var missing []string
		for _, p := range Placeholders {
			if !strings.Contains(string(body), p) {
				missing = append(missing, p)
			}
		}
		if len(missing) > 0 {
			return fmt.Errorf("template is missing placeholders %v", missing)
		}
		return nil
	}
	return fmt.Errorf("template has no %s", documentPart)
}

package extract

import (
	"bytes"
	"encoding/xml"
	"io"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

// Text pulls plain text out of the file at path based on its declared
// extension. Extraction is best-effort: unsupported formats, corrupt files
// and library failures all degrade to an empty string, never an error.
// Libraries used: github.com/ledongthuc/pdf (PDF) and github.com/nguyenthenguyen/docx (DOCX).
func Text(path string, ext string) string {
	switch strings.ToLower(strings.TrimSpace(ext)) {
	case ".pdf", "pdf":
		return extractPDF(path)
	case ".docx", "docx":
		return extractDOCX(path)
	default:
		return ""
	}
}

func extractPDF(path string) (text string) {
	// The pdf package can panic on malformed xref tables.
	defer func() {
		if recover() != nil {
			text = ""
		}
	}()

	f, reader, err := pdf.Open(path)
	if err != nil {
		return ""
	}
	defer f.Close()

	plain, err := reader.GetPlainText()
	if err != nil {
		return ""
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, plain); err != nil {
		return ""
	}
	return buf.String()
}

func extractDOCX(path string) string {
	doc, err := docx.ReadDocxFile(path)
	if err != nil {
		return ""
	}
	defer doc.Close()

	return stripDocxXML(doc.Editable().GetContent())
}

// stripDocxXML flattens word/document.xml to paragraph text in document order.
func stripDocxXML(raw string) string {
	decoder := xml.NewDecoder(strings.NewReader(raw))
	var buf strings.Builder
	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return strings.TrimSpace(buf.String())
		}
		switch t := tok.(type) {
		case xml.CharData:
			buf.WriteString(string(t))
		case xml.EndElement:
			if t.Name.Local == "p" || t.Name.Local == "br" {
				if buf.Len() > 0 {
					buf.WriteString("\n")
				}
			}
		}
	}
	return strings.TrimSpace(buf.String())
}

package extract

import (
	"os"
	"path/filepath"
	"testing"
)

func TestTextUnsupportedExtension(t *testing.T) {
	if got := Text("whatever.txt", ".txt"); got != "" {
		t.Fatalf("expected empty text for unsupported extension, got %q", got)
	}
}

func TestTextMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.pdf")
	if got := Text(path, ".pdf"); got != "" {
		t.Fatalf("expected empty text for missing file, got %q", got)
	}
}

func TestTextCorruptPDF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corrupt.pdf")
	if err := os.WriteFile(path, []byte("%PDF-1.4\nnot really a pdf"), 0o600); err != nil {
		t.Fatalf("write file: %v", err)
	}
	if got := Text(path, ".pdf"); got != "" {
		t.Fatalf("expected empty text for corrupt pdf, got %q", got)
	}
}

func TestStripDocxXML(t *testing.T) {
	raw := `<w:document><w:body>` +
		`<w:p><w:r><w:t>Work Experience</w:t></w:r></w:p>` +
		`<w:p><w:r><w:t>Led a team of</w:t></w:r><w:r><w:t> five engineers</w:t></w:r></w:p>` +
		`</w:body></w:document>`
	got := stripDocxXML(raw)
	want := "Work Experience\nLed a team of five engineers"
	if got != want {
		t.Fatalf("stripDocxXML = %q, want %q", got, want)
	}
}

func TestStripDocxXMLMalformed(t *testing.T) {
	got := stripDocxXML(`<w:p><w:t>partial`)
	if got != "partial" {
		t.Fatalf("stripDocxXML = %q, want partial content preserved", got)
	}
}

package ats

import (
	"archive/zip"
	"bytes"
	"net/http"
	"strings"
)

const (
	mimePDF  = "application/pdf"
	mimeDOC  = "application/msword"
	mimeDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
)

var allowedMimeTypes = map[string]struct{}{
	mimePDF:  {},
	mimeDOC:  {},
	mimeDOCX: {},
}

// cfbMagic is the Compound File Binary header shared by legacy Office formats.
var cfbMagic = []byte{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1, 0x1A, 0xE1}

// sniffMimeType determines the content type from the actual payload bytes,
// never from the file name. OOXML files sniff as application/zip, so zip
// payloads are inspected for the Word document part; legacy .doc files are
// recognized by the compound-file magic.
func sniffMimeType(data []byte) string {
	head := data
	if len(head) > 512 {
		head = head[:512]
	}
	detected := strings.ToLower(strings.TrimSpace(strings.Split(http.DetectContentType(head), ";")[0]))

	switch detected {
	case "application/zip":
		if mapped := mapOOXMLFromZip(data); mapped != "" {
			return mapped
		}
		return detected
	case "application/octet-stream":
		if bytes.HasPrefix(data, cfbMagic) {
			return mimeDOC
		}
		return detected
	default:
		return detected
	}
}

func mapOOXMLFromZip(data []byte) string {
	if len(data) == 0 {
		return ""
	}
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return ""
	}
	for _, f := range zr.File {
		name := strings.ReplaceAll(f.Name, "\\", "/")
		if name == "word/document.xml" {
			return mimeDOCX
		}
	}
	return ""
}

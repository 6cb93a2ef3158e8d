package ingestion

import (
	"archive/zip"
	"bytes"
	"io"
	"path/filepath"
	"regexp"
	"strings"

	pdf "github.com/ledongthuc/pdf"
)

// FileKind identifies a supported resume file format.
type FileKind string

const (
	KindPDF       FileKind = "pdf"
	KindDOCX      FileKind = "docx"
	KindPlaintext FileKind = "txt"
)

// KindForFilename maps a filename to its file kind by extension.
func KindForFilename(filename string) (FileKind, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".pdf":
		return KindPDF, nil
	case ".docx":
		return KindDOCX, nil
	case ".txt", ".text", ".md":
		return KindPlaintext, nil
	default:
		return "", &UnsupportedFormatError{Filename: filename, Extension: ext}
	}
}

// DecodeFile extracts plain text from a resume file. The returned text is
// whitespace-normalized; a file that decodes to nothing yields an
// EmptyDocumentError.
func DecodeFile(filename string, data []byte) (string, error) {
	kind, err := KindForFilename(filename)
	if err != nil {
		return "", err
	}

	var text string
	switch kind {
	case KindPDF:
		text, err = decodePDF(data)
	case KindDOCX:
		text, err = decodeDOCX(data)
	case KindPlaintext:
		text = string(data)
	}
	if err != nil {
		return "", err
	}

	text = CleanText(text)
	if text == "" {
		return "", &EmptyDocumentError{Filename: filename}
	}
	return text, nil
}

func decodePDF(data []byte) (string, error) {
	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", &DecodeError{Format: KindPDF, Message: "failed to open document", Cause: err}
	}
	rs, err := r.GetPlainText()
	if err != nil {
		return "", &DecodeError{Format: KindPDF, Message: "failed to extract text", Cause: err}
	}
	var buf bytes.Buffer
	if _, err = io.Copy(&buf, rs); err != nil {
		return "", &DecodeError{Format: KindPDF, Message: "failed to read text stream", Cause: err}
	}
	return buf.String(), nil
}

var xmlTagRe = regexp.MustCompile(`<[^>]+>`)

func decodeDOCX(data []byte) (string, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", &DecodeError{Format: KindDOCX, Message: "failed to open archive", Cause: err}
	}

	var docXML []byte
	for _, f := range zr.File {
		if f.Name != "word/document.xml" {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return "", &DecodeError{Format: KindDOCX, Message: "failed to open document.xml", Cause: err}
		}
		docXML, err = io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return "", &DecodeError{Format: KindDOCX, Message: "failed to read document.xml", Cause: err}
		}
		break
	}
	if len(docXML) == 0 {
		return "", &DecodeError{Format: KindDOCX, Message: "no document.xml found in archive"}
	}

	// Paragraph boundaries become newlines, then all remaining markup is
	// stripped. Crude, but resumes are flat documents.
	xml := string(docXML)
	xml = strings.ReplaceAll(xml, "</w:p>", "\n")
	xml = strings.ReplaceAll(xml, "<w:tab/>", "\t")
	return xmlTagRe.ReplaceAllString(xml, " "), nil
}

// Package ingestion decodes uploaded resume files into plain text suitable
// for classification. Supported formats: PDF, DOCX, and plain text.
package ingestion

import "fmt"

// UnsupportedFormatError indicates the file extension is not a supported
// resume format.
type UnsupportedFormatError struct {
	Filename  string
	Extension string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported file format %q for %q: only pdf, docx, and txt are allowed", e.Extension, e.Filename)
}

// DecodeError represents a failure while extracting text from a supported format.
type DecodeError struct {
	Format  FileKind
	Message string
	Cause   error
}

func (e *DecodeError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("decode %s: %s: %v", e.Format, e.Message, e.Cause)
	}
	return fmt.Sprintf("decode %s: %s", e.Format, e.Message)
}

func (e *DecodeError) Unwrap() error {
	return e.Cause
}

// EmptyDocumentError indicates the file decoded successfully but yielded no
// usable text. Distinguishable from DecodeError so callers can tell a
// corrupted file from a blank one.
type EmptyDocumentError struct {
	Filename string
}

func (e *EmptyDocumentError) Error() string {
	return fmt.Sprintf("document %q contains no extractable text", e.Filename)
}

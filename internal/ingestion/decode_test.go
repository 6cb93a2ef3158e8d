package ingestion

import (
	"archive/zip"
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindForFilename(t *testing.T) {
	tests := []struct {
		filename string
		want     FileKind
	}{
		{"resume.pdf", KindPDF},
		{"Resume.PDF", KindPDF},
		{"resume.docx", KindDOCX},
		{"resume.txt", KindPlaintext},
		{"notes.md", KindPlaintext},
	}

	for _, tt := range tests {
		kind, err := KindForFilename(tt.filename)
		require.NoError(t, err, tt.filename)
		assert.Equal(t, tt.want, kind, tt.filename)
	}
}

func TestKindForFilename_Unsupported(t *testing.T) {
	for _, filename := range []string{"resume.doc", "resume.png", "resume"} {
		_, err := KindForFilename(filename)
		require.Error(t, err, filename)

		var unsupported *UnsupportedFormatError
		require.ErrorAs(t, err, &unsupported)
		assert.Equal(t, filename, unsupported.Filename)
	}
}

func TestDecodeFile_Plaintext(t *testing.T) {
	text, err := DecodeFile("resume.txt", []byte("Product   Manager\n\n\nLed   team of 5"))
	require.NoError(t, err)

	assert.Equal(t, "Product Manager\nLed team of 5", text)
}

func TestDecodeFile_EmptyPlaintext(t *testing.T) {
	_, err := DecodeFile("resume.txt", []byte("   \n\t\n"))
	require.Error(t, err)

	var empty *EmptyDocumentError
	require.ErrorAs(t, err, &empty)
	assert.Equal(t, "resume.txt", empty.Filename)
}

func TestDecodeFile_DOCX(t *testing.T) {
	doc := `<?xml version="1.0"?><w:document><w:body>` +
		`<w:p><w:r><w:t>Product Manager at Acme</w:t></w:r></w:p>` +
		`<w:p><w:r><w:t>Increased revenue by 20%</w:t></w:r></w:p>` +
		`</w:body></w:document>`

	text, err := DecodeFile("resume.docx", buildDocx(t, doc))
	require.NoError(t, err)

	assert.Contains(t, text, "Product Manager at Acme")
	assert.Contains(t, text, "Increased revenue by 20%")
	// Paragraphs stay on separate lines for role detection.
	assert.Contains(t, text, "\n")
}

func TestDecodeFile_DOCXMissingDocumentXML(t *testing.T) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("word/styles.xml")
	require.NoError(t, err)
	_, err = w.Write([]byte("<w:styles/>"))
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	_, err = DecodeFile("resume.docx", buf.Bytes())
	require.Error(t, err)

	var decodeErr *DecodeError
	require.ErrorAs(t, err, &decodeErr)
	assert.Equal(t, KindDOCX, decodeErr.Format)
}

func TestDecodeFile_CorruptDOCX(t *testing.T) {
	_, err := DecodeFile("resume.docx", []byte("not a zip archive"))
	require.Error(t, err)

	var decodeErr *DecodeError
	assert.ErrorAs(t, err, &decodeErr)
}

func TestDecodeFile_CorruptPDF(t *testing.T) {
	_, err := DecodeFile("resume.pdf", []byte("not a pdf"))
	require.Error(t, err)

	var decodeErr *DecodeError
	require.ErrorAs(t, err, &decodeErr)
	assert.Equal(t, KindPDF, decodeErr.Format)
}

func TestCleanText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"collapses spaces", "a   b\t\tc", "a b c"},
		{"collapses newlines", "a\n\n\nb", "a\nb"},
		{"non-breaking space", "a b", "a b"},
		{"trims lines", "  a  \n  b  ", "a\nb"},
		{"empty", "  \n \t ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanText(tt.in))
		})
	}
}

func buildDocx(t *testing.T, documentXML string) []byte {
	t.Helper()

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("word/document.xml")
	require.NoError(t, err)
	_, err = w.Write([]byte(documentXML))
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	return buf.Bytes()
}

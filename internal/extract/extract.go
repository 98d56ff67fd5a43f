// Package extract defines the document upload collaborator contract:
// turn an uploaded file into plain text or reject it before any remote
// call is made.
package extract

import (
	"errors"
	"fmt"
	"mime"
	"strings"
	"unicode/utf8"
)

// MaxDocumentBytes caps uploads at 10MB, matching the upload UI
const MaxDocumentBytes = 10 << 20

// ErrDocumentTooLarge rejects uploads over MaxDocumentBytes
var ErrDocumentTooLarge = errors.New("document exceeds the 10MB size limit")

// UnsupportedInputError rejects a file type the extractor cannot read
type UnsupportedInputError struct {
	ContentType string
}

func (e *UnsupportedInputError) Error() string {
	return fmt.Sprintf("unsupported document type %q", e.ContentType)
}

// Extractor converts an uploaded document into plain text
type Extractor interface {
	Extract(contentType string, data []byte) (string, error)
}

// PlainText accepts textual uploads as-is. PDF extraction is a separate
// collaborator; anything non-textual is rejected up front.
type PlainText struct{}

func NewPlainText() *PlainText {
	return &PlainText{}
}

var textualTypes = map[string]bool{
	"text/plain":      true,
	"text/markdown":   true,
	"text/x-markdown": true,
}

func (p *PlainText) Extract(contentType string, data []byte) (string, error) {
	if len(data) > MaxDocumentBytes {
		return "", ErrDocumentTooLarge
	}

	mediaType := contentType
	if parsed, _, err := mime.ParseMediaType(contentType); err == nil {
		mediaType = parsed
	}
	mediaType = strings.ToLower(strings.TrimSpace(mediaType))

	if !textualTypes[mediaType] {
		return "", &UnsupportedInputError{ContentType: contentType}
	}
	if !utf8.Valid(data) {
		return "", &UnsupportedInputError{ContentType: contentType}
	}
	return string(data), nil
}

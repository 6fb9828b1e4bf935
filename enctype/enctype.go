// Package enctype defines the body encoding types a request can declare and
// how each of them turns parameters or raw text into body bytes.
package enctype

import (
	"strings"
)

type EncodingType int

const (
	// URLEncoded is application/x-www-form-urlencoded. It is the zero value.
	URLEncoded EncodingType = iota
	// Multipart is multipart/form-data.
	Multipart
	// TextPlain is text/plain.
	TextPlain
)

const (
	urlEncodedName = "application/x-www-form-urlencoded"
	multipartName  = "multipart/form-data"
	textPlainName  = "text/plain"
)

func (e EncodingType) String() string {
	switch e {
	case Multipart:
		return multipartName
	case TextPlain:
		return textPlainName
	default:
		return urlEncodedName
	}
}

// ParsesBody reports whether a raw body declared with this encoding is
// decomposed into parameters. Only URL-encoded bodies are.
func (e EncodingType) ParsesBody() bool {
	return e == URLEncoded
}

// Parse maps a MIME type to an encoding type. Parameters after ";" and case
// are ignored. Unknown types map to URLEncoded with ok set to false.
func Parse(mimeType string) (e EncodingType, ok bool) {
	if i := strings.IndexByte(mimeType, ';'); i >= 0 {
		mimeType = mimeType[:i]
	}
	switch strings.ToLower(strings.TrimSpace(mimeType)) {
	case urlEncodedName:
		return URLEncoded, true
	case multipartName:
		return Multipart, true
	case textPlainName:
		return TextPlain, true
	default:
		return URLEncoded, false
	}
}

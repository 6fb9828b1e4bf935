package enctype

import (
	"bytes"
	"io"
	"io/ioutil"
	"mime/multipart"
	"strings"

	"github.com/google/uuid"
	"github.com/nojima/webreq/param"
	"github.com/pkg/errors"
)

// Body is a serialized request body together with its content type.
type Body struct {
	Data        []byte
	ContentType string
}

// Reader returns a fresh reader over the body bytes.
func (b Body) Reader() io.ReadCloser {
	return ioutil.NopCloser(bytes.NewReader(b.Data))
}

func (b Body) Len() int64 {
	return int64(len(b.Data))
}

// MultipartEncoder renders parameters as multipart/form-data, one part per
// parameter, and returns the bytes with the boundary it used.
type MultipartEncoder interface {
	EncodeMultipart(params param.List) ([]byte, string, error)
}

// FormDataEncoder is the default MultipartEncoder built on mime/multipart.
type FormDataEncoder struct {
	// NewBoundary returns the boundary to use. When nil, a random one is
	// derived from a UUID.
	NewBoundary func() string
}

// NewBoundary returns a random multipart boundary derived from a UUID.
func NewBoundary() string {
	return "webreq" + strings.ReplaceAll(uuid.New().String(), "-", "")
}

func (f FormDataEncoder) EncodeMultipart(params param.List) ([]byte, string, error) {
	var buffer bytes.Buffer
	writer := multipart.NewWriter(&buffer)

	newBoundary := f.NewBoundary
	if newBoundary == nil {
		newBoundary = NewBoundary
	}
	if err := writer.SetBoundary(newBoundary()); err != nil {
		return nil, "", errors.Wrap(err, "setting multipart boundary")
	}

	for _, p := range params {
		if err := writer.WriteField(p.Name, p.Value); err != nil {
			return nil, "", errors.Wrapf(err, "writing multipart field '%s'", p.Name)
		}
	}
	if err := writer.Close(); err != nil {
		return nil, "", errors.Wrap(err, "closing multipart writer")
	}
	return buffer.Bytes(), writer.Boundary(), nil
}

// EncodeParameters serializes a structured parameter list under the given
// encoding. mp is only consulted for Multipart; nil means FormDataEncoder.
func EncodeParameters(e EncodingType, params param.List, mp MultipartEncoder) (Body, error) {
	switch e {
	case Multipart:
		if mp == nil {
			mp = FormDataEncoder{}
		}
		data, boundary, err := mp.EncodeMultipart(params)
		if err != nil {
			return Body{}, err
		}
		return Body{
			Data:        data,
			ContentType: multipartName + "; boundary=" + boundary,
		}, nil
	case TextPlain:
		return Body{
			Data:        []byte(renderPlain(params)),
			ContentType: textPlainName,
		}, nil
	default:
		return Body{
			Data:        []byte(param.EncodeQuery(params)),
			ContentType: urlEncodedName,
		}, nil
	}
}

// EncodeRaw wraps raw body text. The bytes are sent verbatim whatever the
// encoding; a multipart raw body carries no boundary since none is known.
func EncodeRaw(e EncodingType, raw string) Body {
	return Body{
		Data:        []byte(raw),
		ContentType: e.String(),
	}
}

func renderPlain(params param.List) string {
	var b strings.Builder
	for _, p := range params {
		b.WriteString(p.Name)
		b.WriteByte('=')
		b.WriteString(p.Value)
		b.WriteString("\r\n")
	}
	return b.String()
}

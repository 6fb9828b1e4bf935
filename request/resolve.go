package request

import (
	"net/url"

	"github.com/nojima/webreq/enctype"
	"github.com/nojima/webreq/param"
)

// Parameters returns the parameters an observer of this request perceives,
// in order.
//
// Methods without a body report the explicitly set parameter list if there
// is one (it replaces the URL query, see URL) and otherwise the URL query.
// Methods with a body report the URL query followed by the body parameters:
// the explicit list if set, else the raw body decoded as a query when the
// encoding is URL-encoded. Names present in both parts are kept twice.
//
// Parameters performs no I/O and returns a fresh list on every call.
func (r *Request) Parameters() param.List {
	if !r.method.HasBody() && r.source == SourceStructured {
		return r.params.Clone()
	}
	params := param.ParseQuery(r.rawQuery())
	if !r.method.HasBody() {
		return params
	}
	return append(params, r.bodyParameters()...)
}

func (r *Request) bodyParameters() param.List {
	switch r.source {
	case SourceStructured:
		return r.params
	case SourceRaw:
		if r.encoding.ParsesBody() && r.rawBody != nil {
			return param.ParseQuery(*r.rawBody)
		}
	}
	return nil
}

func (r *Request) rawQuery() string {
	if r.url == nil {
		return ""
	}
	return r.url.RawQuery
}

// URL returns the URL to dispatch. For a method without a body whose
// parameters were set explicitly, the query is replaced by those
// parameters. The result is a copy.
func (r *Request) URL() *url.URL {
	if r.url == nil {
		return nil
	}
	if !r.method.HasBody() && r.source == SourceStructured {
		return RewriteQueryFromParameters(r.url, r.params)
	}
	return r.RawURL()
}

// RewriteQueryFromParameters returns a copy of u whose query is exactly
// param.EncodeQuery(params).
func RewriteQueryFromParameters(u *url.URL, params param.List) *url.URL {
	c := *u
	c.RawQuery = param.EncodeQuery(params)
	c.ForceQuery = false
	return &c
}

// Body serializes the request body. Methods without a body, and requests
// with a body method but nothing to send, yield a zero Body.
//
// An explicit parameter list wins over the raw text for URL-encoded and
// multipart bodies. Text bodies send the raw text verbatim when it is set.
// Repeated calls return identical bytes.
func (r *Request) Body() (enctype.Body, error) {
	if !r.method.HasBody() {
		return enctype.Body{}, nil
	}
	structured := r.source == SourceStructured
	if structured && r.encoding != enctype.TextPlain {
		return enctype.EncodeParameters(r.encoding, r.params, r.multipartEncoder())
	}
	if r.rawBody != nil {
		return enctype.EncodeRaw(r.encoding, *r.rawBody), nil
	}
	if structured {
		return enctype.EncodeParameters(r.encoding, r.params, r.multipartEncoder())
	}
	return enctype.Body{}, nil
}

func (r *Request) multipartEncoder() enctype.MultipartEncoder {
	if r.multipart != nil {
		return r.multipart
	}
	return enctype.FormDataEncoder{NewBoundary: r.multipartBoundary}
}

func (r *Request) multipartBoundary() string {
	if r.boundary == "" {
		r.boundary = enctype.NewBoundary()
	}
	return r.boundary
}

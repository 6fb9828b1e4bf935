// Package request models an outgoing HTTP request before it is handed to
// the transport: its URL, method, body encoding, headers and body, and the
// parameters an observer of the request would see.
//
// A Request is built and mutated by a single goroutine and then dispatched.
// It has no internal locking; use Clone to dispatch the same request from
// several goroutines.
package request

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/nojima/webreq/enctype"
	"github.com/nojima/webreq/logger"
	"github.com/nojima/webreq/method"
	"github.com/nojima/webreq/param"
)

// Source tells which of the body inputs feeds parameter resolution.
type Source int

const (
	// SourceUnset means neither a raw body nor parameters were set.
	SourceUnset Source = iota
	// SourceRaw means the raw body text was set.
	SourceRaw
	// SourceStructured means a parameter list was set explicitly. Once
	// reached it is never left.
	SourceStructured
)

func (s Source) String() string {
	switch s {
	case SourceRaw:
		return "raw"
	case SourceStructured:
		return "structured"
	default:
		return "unset"
	}
}

type Request struct {
	url       *url.URL
	method    method.Method
	encoding  enctype.EncodingType
	header    http.Header
	source    Source
	rawBody   *string
	params    param.List
	multipart enctype.MultipartEncoder
	// boundary is chosen on the first multipart serialization and reused,
	// so repeated Body calls and clones produce the same bytes.
	boundary  string
	log       logger.Logger
}

// New creates a GET request for u with URL-encoded body encoding.
func New(u *url.URL) *Request {
	r := &Request{
		method:   method.Get,
		encoding: enctype.URLEncoded,
		header:   make(http.Header),
		log:      logger.Default,
	}
	r.SetURL(u)
	return r
}

// Parse is a shorthand for New(url.Parse(rawurl)).
func Parse(rawurl string) (*Request, error) {
	u, err := url.Parse(rawurl)
	if err != nil {
		return nil, err
	}
	return New(u), nil
}

// SetLogger sets where warnings about the request go.
func (r *Request) SetLogger(l logger.Logger) {
	if l == nil {
		l = logger.Nop
	}
	r.log = l
}

func (r *Request) warnings() logger.Logger {
	if r.log == nil {
		return logger.Default
	}
	return r.log
}

// SetURL replaces the URL. The request keeps its own copy.
func (r *Request) SetURL(u *url.URL) {
	if u == nil {
		r.url = nil
		return
	}
	c := *u
	r.url = &c
}

// RawURL returns a copy of the URL as set, before any rewrite of its query.
func (r *Request) RawURL() *url.URL {
	if r.url == nil {
		return nil
	}
	c := *r.url
	return &c
}

// SetMethod sets the HTTP method. A method whose body classification is not
// known is accepted, treated as carrying no body, and reported as a warning.
func (r *Request) SetMethod(m method.Method) {
	m, known := method.Classify(string(m))
	if !known {
		r.warnings().Warningf("unknown HTTP method %q; treating it as a method without body", string(m))
	}
	r.method = m
}

func (r *Request) Method() method.Method {
	return r.method
}

// SetEncodingType changes the body encoding. Parameters already set are
// kept and are re-evaluated against the new encoding.
func (r *Request) SetEncodingType(e enctype.EncodingType) {
	r.encoding = e
}

func (r *Request) EncodingType() enctype.EncodingType {
	return r.encoding
}

// SetMultipartEncoder overrides the encoder used for multipart bodies.
func (r *Request) SetMultipartEncoder(mp enctype.MultipartEncoder) {
	r.multipart = mp
}

// SetBody sets the raw body text. If parameters were set explicitly the
// text is stored but they keep feeding resolution.
func (r *Request) SetBody(text string) {
	r.rawBody = &text
	if r.source != SourceStructured {
		r.source = SourceRaw
	}
}

// ClearBody removes the raw body text.
func (r *Request) ClearBody() {
	r.rawBody = nil
	if r.source == SourceRaw {
		r.source = SourceUnset
	}
}

// RawBody returns the raw body text and whether it was set.
func (r *Request) RawBody() (string, bool) {
	if r.rawBody == nil {
		return "", false
	}
	return *r.rawBody, true
}

// SetParameters sets the structured parameter list. The list is copied.
func (r *Request) SetParameters(params param.List) {
	r.params = params.Clone()
	r.source = SourceStructured
}

// HasParameters reports whether SetParameters was called.
func (r *Request) HasParameters() bool {
	return r.source == SourceStructured
}

// Source reports which body input feeds parameter resolution.
func (r *Request) Source() Source {
	return r.source
}

// Header returns the additional request headers. The map is live.
func (r *Request) Header() http.Header {
	if r.header == nil {
		r.header = make(http.Header)
	}
	return r.header
}

func (r *Request) SetHeader(name, value string) {
	r.Header().Set(name, value)
}

func (r *Request) AddHeader(name, value string) {
	r.Header().Add(name, value)
}

// Clone returns a deep copy of r.
func (r *Request) Clone() *Request {
	c := *r
	c.url = r.RawURL()
	c.header = r.header.Clone()
	if r.rawBody != nil {
		body := *r.rawBody
		c.rawBody = &body
	}
	if r.params != nil {
		c.params = r.params.Clone()
	}
	return &c
}

func (r *Request) String() string {
	u := ""
	if r.url != nil {
		u = r.url.String()
	}
	return fmt.Sprintf("Request[url=%s, method=%s, encodingType=%s, source=%s, parameters=%s]",
		u, r.method, r.encoding, r.source, param.EncodeQuery(r.Parameters()))
}

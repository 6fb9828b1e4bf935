// Package exchange turns a request model into a net/http request and sends
// it.
package exchange

import (
	"context"
	"io"
	"net/http"

	"github.com/nojima/webreq/request"
	"github.com/nojima/webreq/version"
	"github.com/pkg/errors"
)

// BuildHTTPRequest builds the wire request for req: its effective URL (with
// the query rewritten when parameters replace it), its headers, and its
// serialized body. A Content-Type set on the request wins over the one the
// body encoding implies.
func BuildHTTPRequest(ctx context.Context, req *request.Request, options *Options) (*http.Request, error) {
	u := req.URL()
	if u == nil {
		return nil, errors.New("request has no URL")
	}

	header := buildHTTPHeader(req, options)

	body, err := req.Body()
	if err != nil {
		return nil, errors.Wrap(err, "serializing request body")
	}

	if header.Get("Content-Type") == "" && body.ContentType != "" {
		header.Set("Content-Type", body.ContentType)
	}
	if header.Get("User-Agent") == "" {
		header.Set("User-Agent", version.Current().UserAgent())
	}

	r := &http.Request{
		Method:     string(req.Method()),
		URL:        u,
		Proto:      "HTTP/1.1",
		ProtoMajor: 1,
		ProtoMinor: 1,
		Header:     header,
		Host:       header.Get("Host"),
	}
	if body.Data != nil {
		r.Body = body.Reader()
		r.ContentLength = body.Len()
		r.GetBody = func() (io.ReadCloser, error) {
			return body.Reader(), nil
		}
	}
	if options.Auth.Enabled {
		r.SetBasicAuth(options.Auth.UserName, options.Auth.Password)
	}
	return r.WithContext(ctx), nil
}

func buildHTTPHeader(req *request.Request, options *Options) http.Header {
	header := make(http.Header)
	for name, values := range options.DefaultHeader {
		for _, value := range values {
			header.Add(name, value)
		}
	}
	for name, values := range req.Header() {
		header.Del(name)
		for _, value := range values {
			header.Add(name, value)
		}
	}
	return header
}

package exchange

import (
	"context"
	"net/http"

	"github.com/nojima/webreq/logger"
	"github.com/nojima/webreq/request"
	"github.com/pkg/errors"
)

// SendRequest builds the wire request for req and dispatches it once.
// Cancellation and timeouts come from ctx and options.Timeout; req itself
// is not modified.
func SendRequest(ctx context.Context, req *request.Request, options *Options) (*http.Response, error) {
	r, err := BuildHTTPRequest(ctx, req, options)
	if err != nil {
		return nil, err
	}
	return Send(r, options)
}

// Send dispatches a request built by BuildHTTPRequest. Callers that print
// the request before sending it use this so the printed and the sent bytes
// are the same.
func Send(r *http.Request, options *Options) (*http.Response, error) {
	client, err := BuildHTTPClient(options)
	if err != nil {
		return nil, err
	}

	log := options.Logger
	if log == nil {
		log = logger.Nop
	}
	log.Debugf("sending %s %s (%d bytes)", r.Method, r.URL, r.ContentLength)

	resp, err := client.Do(r)
	if err != nil {
		return nil, errors.Wrap(err, "sending HTTP request")
	}
	log.Debugf("received %s", resp.Status)

	return resp, nil
}

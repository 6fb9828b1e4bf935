package exchange

import (
	"crypto/tls"
	"net/http"

	"github.com/nojima/webreq/logger"
	"github.com/pkg/errors"
)

const maxRedirects = 10

// BuildHTTPClient returns a client configured by options. A *http.Transport
// given in options.Transport is cloned before TLS settings are applied.
func BuildHTTPClient(options *Options) (*http.Client, error) {
	log := options.Logger
	if log == nil {
		log = logger.Nop
	}

	checkRedirect := func(req *http.Request, via []*http.Request) error {
		// Do not follow redirects
		return http.ErrUseLastResponse
	}
	if options.FollowRedirects {
		checkRedirect = func(req *http.Request, via []*http.Request) error {
			if len(via) >= maxRedirects {
				return errors.Errorf("stopped after %d redirects", maxRedirects)
			}
			log.Infof("following redirect to %s %s", req.Method, req.URL)
			return nil
		}
	}

	transport := options.Transport
	if transport == nil {
		transport = http.DefaultTransport
	}
	if t, ok := transport.(*http.Transport); ok {
		t = t.Clone()
		if t.TLSClientConfig == nil {
			t.TLSClientConfig = &tls.Config{}
		}
		t.TLSClientConfig.InsecureSkipVerify = options.SkipVerify
		if options.ForceHTTP1 {
			t.TLSClientConfig.NextProtos = []string{"http/1.1", "http/1.0"}
			t.TLSNextProto = make(map[string]func(string, *tls.Conn) http.RoundTripper)
			t.ForceAttemptHTTP2 = false
		}
		transport = t
	} else if options.SkipVerify || options.ForceHTTP1 {
		log.Warningf("custom transport %T ignores TLS options", transport)
	}

	return &http.Client{
		CheckRedirect: checkRedirect,
		Timeout:       options.Timeout,
		Transport:     transport,
	}, nil
}

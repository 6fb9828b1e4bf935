package exchange

import (
	"net/http"
	"time"

	"github.com/nojima/webreq/logger"
)

type Options struct {
	Timeout         time.Duration
	FollowRedirects bool
	Auth            AuthOptions
	SkipVerify      bool
	ForceHTTP1      bool
	// DefaultHeader is applied before the request's own headers.
	DefaultHeader http.Header
	Transport     http.RoundTripper
	Logger        logger.Logger
}

type AuthOptions struct {
	Enabled  bool
	UserName string
	Password string
}

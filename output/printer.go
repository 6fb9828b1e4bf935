package output

import (
	"io"
	"net/http"

	"github.com/nojima/webreq/param"
)

type Printer interface {
	PrintStatusLine(proto string, status string, statusCode int) error
	PrintRequestLine(request *http.Request) error
	PrintHeader(header http.Header) error
	PrintBody(body io.Reader, contentType string) error
	PrintParameters(params param.List) error
}

// NewPrinter picks the printer matching the options.
func NewPrinter(w io.Writer, options *Options) Printer {
	if options.EnableFormat {
		return NewPrettyPrinter(PrettyPrinterConfig{
			Writer:      w,
			EnableColor: options.EnableColor,
		})
	}
	return NewPlainPrinter(w)
}

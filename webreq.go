// Package webreq is the command line front end: it parses flags and request
// items, builds a request model, sends it and prints the exchange.
package webreq

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"

	"github.com/nojima/webreq/config"
	"github.com/nojima/webreq/exchange"
	"github.com/nojima/webreq/flags"
	"github.com/nojima/webreq/input"
	"github.com/nojima/webreq/logger"
	"github.com/nojima/webreq/output"
	"github.com/nojima/webreq/request"
	"github.com/nojima/webreq/version"
	"github.com/pkg/errors"
)

// Options replaces process-level resources. Zero fields fall back to the
// os package and the default HTTP transport.
type Options struct {
	Args      []string
	Stdin     io.Reader
	Stdout    io.Writer
	Stderr    io.Writer
	Transport http.RoundTripper
}

func (o *Options) withDefaults() *Options {
	r := *o
	if r.Args == nil {
		r.Args = os.Args
	}
	if r.Stdin == nil {
		r.Stdin = os.Stdin
	}
	if r.Stdout == nil {
		r.Stdout = os.Stdout
	}
	if r.Stderr == nil {
		r.Stderr = os.Stderr
	}
	return &r
}

func Main(options *Options) error {
	if options == nil {
		options = &Options{}
	}
	options = options.withDefaults()

	cfg, err := config.LoadDefault()
	if err != nil {
		return err
	}

	// Parse flags
	args, flagSet, optionSet, err := flags.Parse(options.Args, cfg)
	if err != nil {
		if flagSet != nil {
			flagSet.PrintUsage(options.Stderr)
		}
		return err
	}
	if optionSet.PrintVersion {
		version.PrintVersion(options.Stdout)
		return nil
	}
	if optionSet.PrintLicenses {
		version.PrintLicenses(options.Stdout)
		return nil
	}

	log := logger.NewSimpleLogger(options.Stderr, optionSet.LogLevel, optionSet.OutputOptions.EnableColor)
	inputOptions := optionSet.InputOptions
	exchangeOptions := optionSet.ExchangeOptions
	exchangeOptions.Logger = log
	exchangeOptions.Transport = options.Transport
	outputOptions := optionSet.OutputOptions

	// Parse positional arguments
	in, err := input.ParseArgs(args, options.Stdin, &inputOptions)
	if _, ok := errors.Cause(err).(*input.UsageError); ok {
		flagSet.PrintUsage(options.Stderr)
		return err
	}
	if err != nil {
		return err
	}
	req, err := input.BuildRequest(in, &inputOptions, log)
	if err != nil {
		return err
	}
	log.Debugf("built %s", req)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	writer := bufio.NewWriter(options.Stdout)
	defer writer.Flush()
	printer := output.NewPrinter(writer, &outputOptions)

	// The same wire request is printed and sent.
	r, err := exchange.BuildHTTPRequest(ctx, req, &exchangeOptions)
	if err != nil {
		return err
	}
	if outputOptions.PrintsRequest() {
		if err := printRequest(writer, printer, req, r, &outputOptions); err != nil {
			return err
		}
		writer.Flush()
	}

	// Send request and receive response
	resp, err := exchange.Send(r, &exchangeOptions)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if outputOptions.Download {
		if outputOptions.PrintResponseHeader {
			if err := printResponseHeader(printer, resp); err != nil {
				return err
			}
			writer.Flush()
		}
		fileWriter := output.NewFileWriter(resp.Request.URL, &outputOptions)
		return fileWriter.Download(resp, options.Stderr)
	}

	if outputOptions.PrintResponseHeader {
		if err := printResponseHeader(printer, resp); err != nil {
			return err
		}
		writer.Flush()
	}
	if outputOptions.PrintResponseBody {
		if err := printer.PrintBody(resp.Body, resp.Header.Get("Content-Type")); err != nil {
			return err
		}
	}
	return nil
}

func printRequest(w io.Writer, printer output.Printer, req *request.Request, r *http.Request, outputOptions *output.Options) error {
	if outputOptions.PrintRequestHeader {
		if err := printer.PrintRequestLine(r); err != nil {
			return err
		}
		if err := printer.PrintHeader(r.Header); err != nil {
			return err
		}
	}
	if outputOptions.PrintParameters {
		if err := printer.PrintParameters(req.Parameters()); err != nil {
			return err
		}
	}
	if outputOptions.PrintRequestBody && r.GetBody != nil {
		// GetBody leaves r.Body unread for sending.
		body, err := r.GetBody()
		if err != nil {
			return errors.Wrap(err, "reading request body")
		}
		defer body.Close()
		if err := printer.PrintBody(body, r.Header.Get("Content-Type")); err != nil {
			return err
		}
		fmt.Fprint(w, "\n\n")
	}
	return nil
}

func printResponseHeader(printer output.Printer, resp *http.Response) error {
	if err := printer.PrintStatusLine(resp.Proto, resp.Status, resp.StatusCode); err != nil {
		return err
	}
	return printer.PrintHeader(resp.Header)
}

package flags

import (
	"io"
	"net/http"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/nojima/webreq/config"
	"github.com/nojima/webreq/enctype"
	"github.com/nojima/webreq/exchange"
	"github.com/nojima/webreq/input"
	"github.com/nojima/webreq/logger"
	"github.com/nojima/webreq/output"
	"github.com/pborman/getopt"
	"github.com/pkg/errors"
)

var reNumber = regexp.MustCompile(`^[0-9.]+$`)

// "\000" indicates that the user did not specify the flag.
const unspecified = "\000"

type FlagSet interface {
	Args() []string
	PrintUsage(w io.Writer)
}

type OptionSet struct {
	InputOptions    input.Options
	ExchangeOptions exchange.Options
	OutputOptions   output.Options
	LogLevel        string
	PrintVersion    bool
	PrintLicenses   bool
}

type terminalInfo struct {
	stdinIsTerminal  bool
	stdoutIsTerminal bool
}

// Parse parses command line flags. Values missing from args are taken from
// cfg.
func Parse(args []string, cfg *config.Config) ([]string, FlagSet, *OptionSet, error) {
	return parse(args, terminalInfo{
		stdinIsTerminal:  isatty.IsTerminal(os.Stdin.Fd()),
		stdoutIsTerminal: isatty.IsTerminal(os.Stdout.Fd()),
	}, cfg)
}

func parse(args []string, terminalInfo terminalInfo, cfg *config.Config) ([]string, FlagSet, *OptionSet, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	outputOptions := output.Options{}
	exchangeOptions := exchange.Options{}
	var form, multipart, text bool
	var ignoreStdin bool
	var verbose bool
	var printVersion, printLicenses bool
	printFlag := unspecified
	prettyFlag := unspecified
	authFlag := ""
	timeout := cfg.Timeout
	followRedirects := cfg.GetFollow()
	verifyFlag := "yes"
	if !cfg.GetVerify() {
		verifyFlag = "no"
	}
	forceHTTP1 := cfg.GetHTTP1()
	logLevel := cfg.LogLevel

	flagSet := getopt.New()
	flagSet.SetParameters("[METHOD] URL [REQUEST_ITEM [REQUEST_ITEM ...]]")
	flagSet.BoolVarLong(&form, "form", 'f', "serialize body in application/x-www-form-urlencoded (default)")
	flagSet.BoolVarLong(&multipart, "multipart", 'm', "serialize body in multipart/form-data")
	flagSet.BoolVarLong(&text, "text", 't', "serialize body in text/plain")
	flagSet.StringVarLong(&printFlag, "print", 'p', "specifies what the output should contain (HBhbP)")
	flagSet.BoolVarLong(&verbose, "verbose", 'v', "print the request as well as the response (same as --print=HBhb)")
	flagSet.StringVarLong(&prettyFlag, "pretty", 0, "controls output processing (all, colors, format, none)")
	flagSet.BoolVarLong(&ignoreStdin, "ignore-stdin", 0, "do not attempt to read stdin")
	flagSet.StringVarLong(&timeout, "timeout", 0, "timeout seconds that you allow the whole operation to take")
	flagSet.BoolVarLong(&followRedirects, "follow", 'F', "follow 30x Location redirects")
	flagSet.StringVarLong(&verifyFlag, "verify", 0, "verify the server's TLS certificate (yes or no)")
	flagSet.BoolVarLong(&forceHTTP1, "http1", 0, "use HTTP/1.1 even if HTTP/2 is available")
	flagSet.StringVarLong(&authFlag, "auth", 'a', "colon-separated username and password for authentication")
	flagSet.BoolVarLong(&outputOptions.Download, "download", 'd', "download the response body to a file")
	flagSet.StringVarLong(&outputOptions.OutputFile, "output", 'o', "file to save the body to with --download")
	flagSet.BoolVarLong(&outputOptions.Overwrite, "overwrite", 0, "overwrite an existing file with --download")
	flagSet.StringVarLong(&logLevel, "log-level", 0, "log level (error, warning, info, debug)")
	flagSet.BoolVarLong(&printVersion, "version", 0, "print version and exit")
	flagSet.BoolVarLong(&printLicenses, "licenses", 0, "print licenses of dependencies and exit")
	if err := flagSet.Getopt(args, nil); err != nil {
		return nil, flagSet, nil, errors.WithStack(err)
	}

	// Check stdin
	inputOptions := input.Options{}
	if !ignoreStdin && !terminalInfo.stdinIsTerminal {
		inputOptions.ReadStdin = true
	}

	// Encoding
	encoding, err := parseEncoding(cfg.Encoding, form, multipart, text)
	if err != nil {
		return nil, flagSet, nil, err
	}
	inputOptions.Encoding = encoding

	// Parse --print
	if verbose && printFlag == unspecified {
		printFlag = "HBhb"
	}
	if err := parsePrintFlag(printFlag, terminalInfo, &outputOptions); err != nil {
		return nil, flagSet, nil, err
	}
	if err := parsePrettyFlag(prettyFlag, terminalInfo, &outputOptions); err != nil {
		return nil, flagSet, nil, err
	}

	// Parse --timeout
	d, err := parseDurationOrSeconds(timeout)
	if err != nil {
		return nil, flagSet, nil, err
	}
	exchangeOptions.Timeout = d

	// Parse --verify
	verify, err := parseYesNo(verifyFlag)
	if err != nil {
		return nil, flagSet, nil, errors.Wrap(err, "--verify")
	}
	exchangeOptions.SkipVerify = !verify
	exchangeOptions.FollowRedirects = followRedirects
	exchangeOptions.ForceHTTP1 = forceHTTP1

	// Parse --auth
	if authFlag != "" {
		if err := parseAuth(authFlag, &exchangeOptions.Auth); err != nil {
			return nil, flagSet, nil, err
		}
	}

	exchangeOptions.DefaultHeader = defaultHeader(cfg.Headers)

	if err := logger.ValidLevel(logLevel); err != nil {
		return nil, flagSet, nil, err
	}

	optionSet := &OptionSet{
		InputOptions:    inputOptions,
		ExchangeOptions: exchangeOptions,
		OutputOptions:   outputOptions,
		LogLevel:        strings.ToLower(logLevel),
		PrintVersion:    printVersion,
		PrintLicenses:   printLicenses,
	}
	return flagSet.Args(), flagSet, optionSet, nil
}

func parseEncoding(configured string, form, multipart, text bool) (enctype.EncodingType, error) {
	var candidates []enctype.EncodingType
	if form {
		candidates = append(candidates, enctype.URLEncoded)
	}
	if multipart {
		candidates = append(candidates, enctype.Multipart)
	}
	if text {
		candidates = append(candidates, enctype.TextPlain)
	}
	switch len(candidates) {
	case 0:
	case 1:
		return candidates[0], nil
	default:
		return enctype.URLEncoded, errors.New("--form, --multipart and --text are mutually exclusive")
	}

	if configured == "" {
		return enctype.URLEncoded, nil
	}
	e, ok := enctype.Parse(configured)
	if !ok {
		return enctype.URLEncoded, errors.Errorf("unsupported encoding in config: %s", configured)
	}
	return e, nil
}

func parsePrintFlag(printFlag string, terminalInfo terminalInfo, outputOptions *output.Options) error {
	if printFlag == unspecified {
		// --print is not specified
		if terminalInfo.stdoutIsTerminal {
			outputOptions.PrintResponseHeader = true
			outputOptions.PrintResponseBody = true
		} else {
			outputOptions.PrintResponseBody = true
		}
		return nil
	}
	for _, c := range printFlag {
		switch c {
		case 'H':
			outputOptions.PrintRequestHeader = true
		case 'B':
			outputOptions.PrintRequestBody = true
		case 'h':
			outputOptions.PrintResponseHeader = true
		case 'b':
			outputOptions.PrintResponseBody = true
		case 'P':
			outputOptions.PrintParameters = true
		default:
			return errors.Errorf("Invalid char in --print value (must be consist of HBhbP): %c", c)
		}
	}
	return nil
}

func parsePrettyFlag(prettyFlag string, terminalInfo terminalInfo, outputOptions *output.Options) error {
	switch prettyFlag {
	case unspecified:
		outputOptions.EnableFormat = terminalInfo.stdoutIsTerminal
		outputOptions.EnableColor = terminalInfo.stdoutIsTerminal
	case "all":
		outputOptions.EnableFormat = true
		outputOptions.EnableColor = true
	case "colors":
		outputOptions.EnableColor = true
	case "format":
		outputOptions.EnableFormat = true
	case "none":
	default:
		return errors.Errorf("Value of --pretty must be one of all, colors, format or none: %s", prettyFlag)
	}
	return nil
}

func parseDurationOrSeconds(timeout string) (time.Duration, error) {
	if reNumber.MatchString(timeout) {
		timeout += "s"
	}
	d, err := time.ParseDuration(timeout)
	if err != nil {
		return time.Duration(0), errors.Errorf("Value of --timeout must be a number or duration string: %v", timeout)
	}
	return d, nil
}

func parseYesNo(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "yes", "true":
		return true, nil
	case "no", "false":
		return false, nil
	default:
		return false, errors.Errorf("value must be yes or no: %s", s)
	}
}

func parseAuth(authFlag string, authOptions *exchange.AuthOptions) error {
	authOptions.Enabled = true
	i := strings.Index(authFlag, ":")
	if i >= 0 {
		authOptions.UserName = authFlag[:i]
		authOptions.Password = authFlag[i+1:]
		return nil
	}
	password, err := askPassword(authFlag)
	if err != nil {
		return err
	}
	authOptions.UserName = authFlag
	authOptions.Password = password
	return nil
}

func defaultHeader(headers map[string]string) http.Header {
	if len(headers) == 0 {
		return nil
	}
	header := make(http.Header)
	for name, value := range headers {
		header.Set(name, value)
	}
	return header
}

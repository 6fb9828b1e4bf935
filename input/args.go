package input

import (
	"io"
	"io/ioutil"
	"net/url"
	"regexp"
	"strings"

	"github.com/nojima/webreq/enctype"
	"github.com/nojima/webreq/method"
	"github.com/pkg/errors"
)

var (
	reMethod          = regexp.MustCompile(`^[a-zA-Z]+$`)
	reHeaderFieldName = regexp.MustCompile("^[-!#$%&'*+.^_|~a-zA-Z0-9]+$")
	reScheme          = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9+-.]*://`)
	emptyMethod       = method.Method("")
)

type itemType int

const (
	unknownItem itemType = iota
	httpHeaderItem
	urlParameterItem
	dataFieldItem
	rawJSONFieldItem
	formFileFieldItem
)

type Options struct {
	Encoding  enctype.EncodingType
	ReadStdin bool
}

type UsageError string

func (e *UsageError) Error() string {
	return string(*e)
}

func newUsageError(message string) error {
	u := UsageError(message)
	return errors.WithStack(&u)
}

type state struct {
	stdinConsumed bool
}

// ParseArgs parses the positional arguments [METHOD] URL [ITEM ...].
// When options.ReadStdin is set and no item consumed stdin, stdin becomes
// the raw request body.
func ParseArgs(args []string, stdin io.Reader, options *Options) (*Input, error) {
	argMethod, argURL, argItems, err := splitArgs(args)
	if err != nil {
		return nil, err
	}

	in := Input{}
	state := state{}

	if in.URL, err = parseURL(argURL); err != nil {
		return nil, err
	}
	for _, arg := range argItems {
		if err := parseItem(arg, stdin, &state, &in); err != nil {
			return nil, err
		}
	}
	if options.ReadStdin && !state.stdinConsumed {
		if err := readBodyFromStdin(stdin, &in); err != nil {
			return nil, err
		}
		state.stdinConsumed = true
	}

	if argMethod == "" {
		in.Method = guessMethod(&in)
	} else if in.Method, err = parseMethod(argMethod); err != nil {
		return nil, err
	}
	return &in, nil
}

// splitArgs treats the first argument as METHOD only when it looks like one
// and a URL follows.
func splitArgs(args []string) (string, string, []string, error) {
	if len(args) == 0 {
		return "", "", nil, newUsageError("URL is required")
	}
	if len(args) >= 2 && reMethod.MatchString(args[0]) {
		return args[0], args[1], args[2:], nil
	}
	return "", args[0], args[1:], nil
}

func readBodyFromStdin(stdin io.Reader, in *Input) error {
	if in.Body.BodyType != EmptyBody {
		return errors.New("request body (from stdin) and request item (key=value) cannot be mixed")
	}
	raw, err := ioutil.ReadAll(stdin)
	if err != nil {
		return errors.Wrap(err, "reading request body from stdin")
	}
	in.Body = Body{BodyType: RawBody, Raw: raw}
	return nil
}

func parseMethod(s string) (method.Method, error) {
	if !reMethod.MatchString(s) {
		return emptyMethod, errors.Errorf("METHOD must consist of alphabets: %s", s)
	}

	m, _ := method.Classify(s)
	return m, nil
}

func guessMethod(in *Input) method.Method {
	if in.Body.BodyType == EmptyBody {
		return method.Get
	} else {
		return method.Post
	}
}

func parseURL(s string) (*url.URL, error) {
	defaultScheme := "http"
	defaultHost := "localhost"

	// ex) :8080/hello or /hello
	if strings.HasPrefix(s, ":") || strings.HasPrefix(s, "/") {
		s = defaultHost + s
	}

	// ex) example.com/hello
	if !reScheme.MatchString(s) {
		s = defaultScheme + "://" + s
	}

	u, err := url.Parse(s)
	if err != nil {
		return nil, newUsageError("Invalid URL: " + s)
	}
	u.Host = strings.TrimSuffix(u.Host, ":")
	if u.Path == "" {
		u.Path = "/"
	}
	return u, nil
}

func parseItem(s string, stdin io.Reader, state *state, in *Input) error {
	itemType, name, value := splitItem(s)
	if itemType == httpHeaderItem && !isValidHeaderFieldName(name) {
		return errors.Errorf("invalid header field name: %s", name)
	}

	switch itemType {
	case rawJSONFieldItem:
		return errors.Errorf("raw JSON field items are not supported (bodies are form encoded): %s", s)
	case formFileFieldItem:
		return errors.Errorf("file upload items are not supported (use name=@file to read a value from a file): %s", s)
	case unknownItem:
		return errors.Errorf("unknown request item: %s", s)
	}

	field, err := parseField(name, value, stdin, state)
	if err != nil {
		return err
	}
	switch itemType {
	case dataFieldItem:
		in.Body.BodyType = FieldsBody
		in.Body.Fields = append(in.Body.Fields, field)
	case httpHeaderItem:
		in.Header.Fields = append(in.Header.Fields, field)
	case urlParameterItem:
		in.Parameters = append(in.Parameters, field)
	}
	return nil
}

// splitItem finds the first separator (":", ":=", "=", "==", "@") that is
// not escaped with a backslash. Escapes are removed from the name.
func splitItem(s string) (itemType, string, string) {
	var name strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '\\' && i+1 < len(s) && isSeparator(s[i+1]) {
			name.WriteByte(s[i+1])
			i++
			continue
		}
		next := byte(0)
		if i+1 < len(s) {
			next = s[i+1]
		}
		switch {
		case c == ':' && next == '=':
			return rawJSONFieldItem, name.String(), s[i+2:]
		case c == ':':
			return httpHeaderItem, name.String(), s[i+1:]
		case c == '=' && next == '=':
			return urlParameterItem, name.String(), s[i+2:]
		case c == '=':
			return dataFieldItem, name.String(), s[i+1:]
		case c == '@':
			return formFileFieldItem, name.String(), s[i+1:]
		}
		name.WriteByte(c)
	}
	return unknownItem, "", ""
}

func isSeparator(c byte) bool {
	return c == ':' || c == '=' || c == '@' || c == '\\'
}

func isValidHeaderFieldName(s string) bool {
	return reHeaderFieldName.MatchString(s)
}

// parseField resolves "@-" to stdin contents now; "@path" is kept as a file
// reference and read when the request is built.
func parseField(name, value string, stdin io.Reader, state *state) (Field, error) {
	switch {
	case value == "@-":
		if state.stdinConsumed {
			return Field{}, errors.Errorf("stdin was already consumed before '%s'", name)
		}
		b, err := ioutil.ReadAll(stdin)
		if err != nil {
			return Field{}, errors.Wrapf(err, "reading stdin for '%s'", name)
		}
		state.stdinConsumed = true
		return Field{Name: name, Value: string(b)}, nil
	case strings.HasPrefix(value, "@"):
		return Field{Name: name, Value: value[1:], IsFile: true}, nil
	default:
		return Field{Name: name, Value: value}, nil
	}
}

package param

import (
	"net/url"
	"strings"
)

// ParseQuery splits an application/x-www-form-urlencoded string into an
// ordered list of parameters.
//
// Empty segments are dropped, a segment without "=" yields an empty value,
// and a malformed percent escape is kept as-is instead of failing the
// whole parse. A leading "?" is part of the first name, as a server
// would read it. The result is never nil.
func ParseQuery(query string) List {
	l := List{}
	for _, segment := range strings.Split(query, "&") {
		if segment == "" {
			continue
		}
		name, value := segment, ""
		if i := strings.IndexByte(segment, '='); i >= 0 {
			name, value = segment[:i], segment[i+1:]
		}
		l = append(l, Parameter{
			Name:  unescape(name),
			Value: unescape(value),
		})
	}
	return l
}

// EncodeQuery is the inverse of ParseQuery. Names and values are escaped
// with url.QueryEscape and empty values still produce "name=".
func EncodeQuery(l List) string {
	var b strings.Builder
	for i, p := range l {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(p.Name))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(p.Value))
	}
	return b.String()
}

// unescape decodes "+" as a space and %XX as a byte. Escapes that are not
// followed by two hex digits are copied through unchanged.
func unescape(s string) string {
	if !strings.ContainsAny(s, "%+") {
		return s
	}
	if decoded, err := url.QueryUnescape(s); err == nil {
		return decoded
	}

	b := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case c == '+':
			b = append(b, ' ')
		case c == '%' && i+2 < len(s) && isHex(s[i+1]) && isHex(s[i+2]):
			b = append(b, unhex(s[i+1])<<4|unhex(s[i+2]))
			i += 2
		default:
			b = append(b, c)
		}
	}
	return string(b)
}

func isHex(c byte) bool {
	switch {
	case '0' <= c && c <= '9', 'a' <= c && c <= 'f', 'A' <= c && c <= 'F':
		return true
	}
	return false
}

func unhex(c byte) byte {
	switch {
	case '0' <= c && c <= '9':
		return c - '0'
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10
	default:
		return c - 'A' + 10
	}
}

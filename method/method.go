// Package method classifies HTTP methods by whether their requests carry a
// body.
package method

import "strings"

type Method string

const (
	Get     Method = "GET"
	Head    Method = "HEAD"
	Delete  Method = "DELETE"
	Options Method = "OPTIONS"
	Trace   Method = "TRACE"
	Connect Method = "CONNECT"
	Post    Method = "POST"
	Put     Method = "PUT"
	Patch   Method = "PATCH"
)

var carriesBody = map[Method]bool{
	Get:     false,
	Head:    false,
	Delete:  false,
	Options: false,
	Trace:   false,
	Connect: false,
	Post:    true,
	Put:     true,
	Patch:   true,
}

// Classify normalizes s to upper case and reports whether it is a method
// with a known body classification.
func Classify(s string) (Method, bool) {
	m := Method(strings.ToUpper(strings.TrimSpace(s)))
	_, known := carriesBody[m]
	return m, known
}

// HasBody reports whether requests with this method carry a body.
// Unknown methods carry none, so their parameters travel in the URL.
func (m Method) HasBody() bool {
	return carriesBody[m]
}

func (m Method) Known() bool {
	_, known := carriesBody[m]
	return known
}

func (m Method) String() string {
	return string(m)
}

package output

import (
	"net/http"
	"strings"
	"testing"

	"github.com/nojima/webreq/param"
)

func TestPlainPrinter(t *testing.T) {
	// Setup
	var buffer strings.Builder
	printer := NewPlainPrinter(&buffer)
	request := &http.Request{
		Method: "POST",
		URL:    parseURL(t, "http://example.com/form?a=1"),
		Proto:  "HTTP/1.1",
	}

	// Exercise
	printer.PrintRequestLine(request)
	printer.PrintHeader(http.Header{"X-B": []string{"2"}, "X-A": []string{"1"}})
	printer.PrintParameters(param.Of("a", "1", "b", "2"))
	printer.PrintBody(strings.NewReader(`{"b":2}`), "application/json")
	printer.PrintStatusLine("HTTP/1.1", "404 Not Found", 404)

	// Verify
	expected := strings.Join([]string{
		"POST http://example.com/form?a=1 HTTP/1.1\n",
		"X-A: 1\n",
		"X-B: 2\n",
		"\n",
		"Parameters: \n",
		"  'a': '1'\n",
		"  'b': '2'\n",
		"\n",
		`{"b":2}`,
		"HTTP/1.1 404 Not Found\n",
	}, "")
	if buffer.String() != expected {
		t.Errorf("unexpected output: expected=%q, actual=%q", expected, buffer.String())
	}
}

func TestNewPrinter(t *testing.T) {
	var buffer strings.Builder
	if _, ok := NewPrinter(&buffer, &Options{EnableFormat: true}).(*PrettyPrinter); !ok {
		t.Errorf("expected a pretty printer when formatting is enabled")
	}
	if _, ok := NewPrinter(&buffer, &Options{}).(*PlainPrinter); !ok {
		t.Errorf("expected a plain printer when formatting is disabled")
	}
}

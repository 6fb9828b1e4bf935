package output

import (
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/nojima/webreq/param"
)

func parseURL(t *testing.T, rawurl string) *url.URL {
	u, err := url.Parse(rawurl)
	if err != nil {
		t.Fatalf("failed to parse URL: url=%s, err=%s", u, err)
	}
	return u
}

func TestPrettyPrinter_PrintStatusLine(t *testing.T) {
	// Setup
	var buffer strings.Builder
	printer := NewPrettyPrinter(PrettyPrinterConfig{
		Writer:      &buffer,
		EnableColor: false,
	})
	response := &http.Response{
		Status:     "200 OK",
		StatusCode: 200,
		Proto:      "HTTP/1.1",
	}

	// Exercise
	err := printer.PrintStatusLine(response.Proto, response.Status, response.StatusCode)
	if err != nil {
		t.Fatalf("unexpected error: err=%+v", err)
	}

	// Verify
	expected := "HTTP/1.1 200 OK\n"
	if buffer.String() != expected {
		t.Errorf("unexpected output: expected=%s, actual=%s", expected, buffer.String())
	}
}

func TestPrettyPrinter_PrintRequestLine(t *testing.T) {
	// Setup
	var buffer strings.Builder
	printer := NewPrettyPrinter(PrettyPrinterConfig{
		Writer:      &buffer,
		EnableColor: false,
	})
	request := &http.Request{
		Method: "GET",
		URL:    parseURL(t, "http://example.com/hello?foo=bar&hoge=piyo"),
		Proto:  "HTTP/1.1",
	}

	// Exercise
	err := printer.PrintRequestLine(request)
	if err != nil {
		t.Fatalf("unexpected error: err=%+v", err)
	}

	// Verify
	expected := "GET http://example.com/hello?foo=bar&hoge=piyo HTTP/1.1\n"
	if buffer.String() != expected {
		t.Errorf("unexpected output: expected=%s, actual=%s", expected, buffer.String())
	}
}

func TestPrettyPrinter_PrintHeader(t *testing.T) {
	// Setup
	var buffer strings.Builder
	printer := NewPrettyPrinter(PrettyPrinterConfig{
		Writer:      &buffer,
		EnableColor: false,
	})
	header := http.Header{
		"Content-Type": []string{"application/json"},
		"X-Foo":        []string{"hello", "world", "aaa"},
		"Date":         []string{"Tue, 12 Feb 2019 16:01:54 GMT"},
	}

	// Exercise
	err := printer.PrintHeader(header)
	if err != nil {
		t.Fatalf("unexpected error: err=%+v", err)
	}

	// Verify
	expected := strings.Join([]string{
		"Content-Type: application/json\n",
		"Date: Tue, 12 Feb 2019 16:01:54 GMT\n",
		"X-Foo: hello\n",
		"X-Foo: world\n",
		"X-Foo: aaa\n",
		"\n",
	}, "")
	if buffer.String() != expected {
		t.Errorf("unexpected output: expected=\n%s\n (len=%d)\nactual=\n%s\n (len=%d)",
			expected, len(expected), buffer.String(), len(buffer.String()))
	}
}

func TestPrettyPrinter_PrintBody(t *testing.T) {
	testCases := []struct {
		title       string
		body        string
		contentType string
		expected    string
	}{
		{
			title:       "Normal JSON",
			body:        `{"zzz": "hello", "aaa": [3.14, true, false, "x"], "123": {}, "": [], "n": null}`,
			contentType: "application/json",
			expected: strings.Join([]string{
				`{`,
				`    "zzz": "hello",`,
				`    "aaa": [`,
				`        3.14,`,
				`        true,`,
				`        false,`,
				`        "x"`,
				`    ],`,
				`    "123": {},`,
				`    "": [],`,
				`    "n": null`,
				"}\n",
			}, "\n"),
		},
		{
			title:       "Escaped",
			body:        `{"\"": "aaa\nbbb"}`,
			contentType: "application/json; charset=utf-8",
			expected: strings.Join([]string{
				`{`,
				`    "\"": "aaa\nbbb"`,
				"}\n",
			}, "\n"),
		},
		{
			title:       "Body is empty",
			body:        "",
			contentType: "application/json",
			expected:    "",
		},
		{
			title:       "Body contains only whitespaces",
			body:        "    \n",
			contentType: "application/json",
			expected:    "    \n",
		},
		{
			title:       "Not a JSON",
			body:        `[100 200]`,
			contentType: "application/json",
			expected:    `[100 200]`,
		},
		{
			title:       "Malformed JSON",
			body:        `{"hello": "world"`,
			contentType: "application/json",
			expected:    `{"hello": "world"`,
		},
		{
			title:       "Form body is not formatted",
			body:        `a=1&b=2`,
			contentType: "application/x-www-form-urlencoded",
			expected:    `a=1&b=2`,
		},
	}

	for _, tt := range testCases {
		t.Run(tt.title, func(t *testing.T) {
			// Setup
			var buffer strings.Builder
			printer := NewPrettyPrinter(PrettyPrinterConfig{
				Writer:      &buffer,
				EnableColor: false,
			})

			// Exercise
			err := printer.PrintBody(strings.NewReader(tt.body), tt.contentType)
			if err != nil {
				t.Fatalf("unexpected error: err=%+v", err)
			}

			// Verify
			if buffer.String() != tt.expected {
				t.Errorf("unexpected output: expected=\n%s\nactual=\n%s\n", tt.expected, buffer.String())
			}
		})
	}
}

func TestPrettyPrinter_PrintParameters(t *testing.T) {
	// Setup
	var buffer strings.Builder
	printer := NewPrettyPrinter(PrettyPrinterConfig{
		Writer:      &buffer,
		EnableColor: false,
	})

	// Exercise
	err := printer.PrintParameters(param.Of("a", "1", "b", ""))
	if err != nil {
		t.Fatalf("unexpected error: err=%+v", err)
	}

	// Verify
	expected := "Parameters:\n  'a': '1'\n  'b': ''\n\n"
	if buffer.String() != expected {
		t.Errorf("unexpected output: expected=%q, actual=%q", expected, buffer.String())
	}
}

func TestPrettyPrinter_DetectJSON(t *testing.T) {
	if !isJSON("application/json") {
		t.Errorf("didn't detect application/json as JSON")
	}

	// See https://tools.ietf.org/html/rfc7807
	if !isJSON("application/problem+json") {
		t.Errorf("didn't detect application/problem+json as JSON")
	}

	if isJSON("text/plain") {
		t.Errorf("detected text/plain as JSON")
	}
}

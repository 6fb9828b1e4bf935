package webreq

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/nojima/webreq/config"
)

func inspectHandler(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	w.Header().Set("Content-Type", "text/plain")
	fmt.Fprintf(w, "%s %s", r.Method, r.URL.RawQuery)
	for _, name := range []string{"a", "q"} {
		fmt.Fprintf(w, " %s=%s", name, strings.Join(r.Form[name], ","))
	}
}

func runMain(t *testing.T, args ...string) (string, string, error) {
	os.Setenv(config.EnvConfigPath, filepath.Join(os.TempDir(), "webreq-no-config", "config.yaml"))
	defer os.Unsetenv(config.EnvConfigPath)

	var stdout, stderr strings.Builder
	err := Main(&Options{
		Args:   append([]string{"wr", "--ignore-stdin"}, args...),
		Stdin:  strings.NewReader(""),
		Stdout: &stdout,
		Stderr: &stderr,
	})
	return stdout.String(), stderr.String(), err
}

func TestWebreq_GetReplacesQuery(t *testing.T) {
	// Setup
	server := httptest.NewServer(http.HandlerFunc(inspectHandler))
	defer server.Close()

	// Exercise
	stdout, _, err := runMain(t, "--print=b", "GET", server.URL+"/?q=old", "a=1")
	if err != nil {
		t.Fatalf("unexpected error: err=%+v", err)
	}

	// Verify
	expected := "GET a=1 a=1 q="
	if stdout != expected {
		t.Errorf("unexpected output: expected=%q, actual=%q", expected, stdout)
	}
}

func TestWebreq_PostPrintsParameters(t *testing.T) {
	// Setup
	server := httptest.NewServer(http.HandlerFunc(inspectHandler))
	defer server.Close()

	// Exercise
	stdout, _, err := runMain(t, "--print=Pb", "POST", server.URL+"/?q=0", "a=1")
	if err != nil {
		t.Fatalf("unexpected error: err=%+v", err)
	}

	// Verify
	expected := "Parameters: \n  'q': '0'\n  'a': '1'\n\nPOST q=0 a=1 q=0"
	if stdout != expected {
		t.Errorf("unexpected output: expected=%q, actual=%q", expected, stdout)
	}
}

func TestWebreq_Version(t *testing.T) {
	stdout, _, err := runMain(t, "--version")
	if err != nil {
		t.Fatalf("unexpected error: err=%+v", err)
	}
	if !strings.HasPrefix(stdout, "webreq ") {
		t.Errorf("unexpected output: %q", stdout)
	}
}

func TestWebreq_UsageError(t *testing.T) {
	_, stderr, err := runMain(t)
	if err == nil {
		t.Fatalf("expected an error without URL")
	}
	if !strings.Contains(stderr, "Usage:") {
		t.Errorf("usage should be printed: %q", stderr)
	}
}

func TestWebreq_PrintedRequestIsSent(t *testing.T) {
	// Setup
	var received string
	var form map[string][]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		received = r.Header.Get("Content-Type")
		if err := r.ParseMultipartForm(1 << 20); err == nil {
			form = r.MultipartForm.Value
		}
	}))
	defer server.Close()

	// Exercise
	stdout, _, err := runMain(t, "--print=HB", "--multipart", "POST", server.URL+"/", "a=1")
	if err != nil {
		t.Fatalf("unexpected error: err=%+v", err)
	}

	// Verify
	if !strings.HasPrefix(received, "multipart/form-data; boundary=") {
		t.Fatalf("unexpected content type on the wire: %s", received)
	}
	if !strings.Contains(stdout, "Content-Type: "+received+"\n") {
		t.Errorf("printed content type differs from the sent one: sent=%s, output=\n%s", received, stdout)
	}
	if !strings.Contains(stdout, `name="a"`) {
		t.Errorf("request body should be printed: %s", stdout)
	}
	if !reflect.DeepEqual(form, map[string][]string{"a": {"1"}}) {
		t.Errorf("unexpected form on the wire: %v", form)
	}
}

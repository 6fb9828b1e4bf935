package output

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"code.cloudfoundry.org/bytefmt"
	"github.com/pkg/errors"
)

var reIndexSuffix = regexp.MustCompile(`\.(\d+)$`)

// createFile is replaced in tests.
var createFile = func(path string) (io.WriteCloser, error) {
	return os.Create(path)
}

type FileWriter struct {
	fullPath string
}

func NewFileWriter(url *url.URL, options *Options) *FileWriter {
	var fullPath string

	if options.OutputFile == "" {
		base := filepath.Base(url.Path)
		if base == "/" || base == "." {
			base = "index.html"
		}
		fullPath = fmt.Sprintf("./%s", base)
	} else {
		fullPath = options.OutputFile
	}

	if !options.Overwrite {
		fullPath = makeNonOverlappingFilename(fullPath)
	}

	return &FileWriter{
		fullPath: fullPath,
	}
}

func makeNonOverlappingFilename(path string) string {
	_, err := os.Stat(path)
	if err == nil {
		newPath := reIndexSuffix.ReplaceAllStringFunc(path, func(index string) string {
			i, err := strconv.Atoi(strings.TrimPrefix(index, "."))
			if err != nil {
				panic(err)
			}
			i++
			return fmt.Sprintf(".%d", i)
		})
		if path == newPath {
			path = fmt.Sprintf("%s.%d", path, 1)
		} else {
			path = newPath
		}
		path = makeNonOverlappingFilename(path)
	}
	return path
}

// progressWriter reports the number of bytes written so far.
type progressWriter struct {
	w       io.Writer
	total   int64
	written int64
}

func (p *progressWriter) Write(b []byte) (int, error) {
	p.written += int64(len(b))
	if p.total > 0 {
		fmt.Fprintf(p.w, "\rDownloading: %s / %s (%d%%)",
			bytefmt.ByteSize(uint64(p.written)),
			bytefmt.ByteSize(uint64(p.total)),
			p.written*100/p.total)
	} else {
		fmt.Fprintf(p.w, "\rDownloading: %s", bytefmt.ByteSize(uint64(p.written)))
	}
	return len(b), nil
}

// Download saves the response body to the file and reports progress to
// progress.
func (f *FileWriter) Download(resp *http.Response, progress io.Writer) error {
	file, err := createFile(f.fullPath)
	if err != nil {
		return errors.Wrapf(err, "creating %s", f.fullPath)
	}

	pw := &progressWriter{w: progress, total: resp.ContentLength}
	if _, err := io.Copy(file, io.TeeReader(resp.Body, pw)); err != nil {
		file.Close()
		return errors.Wrapf(err, "writing %s", f.fullPath)
	}
	// A failed close can lose buffered data.
	if err := file.Close(); err != nil {
		return errors.Wrapf(err, "closing %s", f.fullPath)
	}
	fmt.Fprintf(progress, "\nDone. %s saved to %s\n", bytefmt.ByteSize(uint64(pw.written)), f.Filename())
	return nil
}

func (f *FileWriter) Filename() string {
	return filepath.Base(f.fullPath)
}

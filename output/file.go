package output

import (
	"fmt"
	"io"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"code.cloudfoundry.org/bytefmt"
	"github.com/pkg/errors"
)

var reIndexSuffix = regexp.MustCompile(`\.(\d+)$`)

type FileWriter struct {
	fullPath string
}

// NewFileWriter picks the destination for a response body: the --output
// file if given, otherwise the last segment of the request path.
func NewFileWriter(u *url.URL, options *Options) *FileWriter {
	var fullPath string

	if options.OutputFile == "" {
		name := path.Base(u.Path)
		if name == "/" || name == "." {
			name = "index"
		}
		fullPath = fmt.Sprintf("./%s", name)
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

// Write copies body into the destination file and returns the number of bytes written.
func (f *FileWriter) Write(body io.Reader) (int64, error) {
	file, err := os.Create(f.fullPath)
	if err != nil {
		return 0, errors.Wrapf(err, "creating '%s'", f.fullPath)
	}
	defer file.Close()

	n, err := io.Copy(file, body)
	if err != nil {
		return n, errors.Wrapf(err, "writing response body to '%s'", f.fullPath)
	}
	return n, nil
}

// Summary is the line reported once Write returned n bytes.
func (f *FileWriter) Summary(n int64) string {
	return fmt.Sprintf("Saved %s to %s", bytefmt.ByteSize(uint64(n)), f.Filename())
}

func (f *FileWriter) Filename() string {
	return filepath.Base(f.fullPath)
}

func (f *FileWriter) Path() string {
	return f.fullPath
}

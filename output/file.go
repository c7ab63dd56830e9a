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

// FileWriter stores a response body in a file instead of printing it.
type FileWriter struct {
	fullPath string
}

func NewFileWriter(u *url.URL, options *Options) *FileWriter {
	var fullPath string

	if options.OutputFile == "" {
		base := filepath.Base(u.Path)
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

// makeNonOverlappingFilename appends or increments a numeric suffix until
// the name no longer exists.
func makeNonOverlappingFilename(path string) string {
	_, err := os.Stat(path)
	if err == nil {
		re := regexp.MustCompile(`\.(\d+)$`)
		newPath := re.ReplaceAllStringFunc(path, func(index string) string {
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

func (f *FileWriter) Download(resp *http.Response) (int64, error) {
	file, err := os.Create(f.fullPath)
	if err != nil {
		return 0, errors.Wrapf(err, "creating '%s'", f.fullPath)
	}
	defer file.Close()

	written, err := io.Copy(file, resp.Body)
	if err != nil {
		return written, errors.Wrapf(err, "writing '%s'", f.fullPath)
	}
	return written, nil
}

func (f *FileWriter) Filename() string {
	return filepath.Base(f.fullPath)
}

// Summary renders a human-readable completion message for a download.
func (f *FileWriter) Summary(written int64) string {
	return fmt.Sprintf("%s written to %s", bytefmt.ByteSize(uint64(written)), f.Filename())
}

package stats

import (
	"os"
	"path"
	"path/filepath"
	"strings"
)

// File represents a file containing the statistical data.
// This is a table of data in CSV or Excel format, read from disk or downloaded.
type File struct {
	Source  string
	Content []byte
}

// Format returns the lowercase extension of the source, e.g. ".csv".
func (f *File) Format() string {
	name := f.Source
	if isURL(name) {
		// Drop any query string before looking at the extension.
		if i := strings.IndexAny(name, "?#"); i >= 0 {
			name = name[:i]
		}
		return strings.ToLower(path.Ext(name))
	}
	return strings.ToLower(filepath.Ext(name))
}

// ReadFile loads the content of a local path or an http(s) URL.
func ReadFile(source string) (*File, error) {
	f := &File{Source: source}

	var err error
	if isURL(source) {
		f.Content, err = download(source)
	} else {
		f.Content, err = os.ReadFile(source)
	}
	if err != nil {
		return nil, &LoadError{Source: source, Err: err}
	}
	return f, nil
}

func isURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}

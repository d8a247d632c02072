package content

import (
	"io/fs"
	"os"
	"path"
	"strings"

	"github.com/arthur-debert/preload/pkg/content/catalog"
	"github.com/arthur-debert/preload/pkg/errors"
)

// DefaultExtensions are the file extensions read as slots by FS sources
var DefaultExtensions = []string{".md", ".markdown", ".txt"}

// FSOption configures an FS source
type FSOption func(*fsSource)

// WithExtensions replaces the accepted file extensions
func WithExtensions(exts ...string) FSOption {
	return func(s *fsSource) {
		s.extensions = exts
	}
}

type fsSource struct {
	name       string
	fsys       fs.FS
	dir        string
	extensions []string
}

// FromFS reads every file under dir in fsys whose extension is accepted.
// The slot key is the base name without extension.
func FromFS(fsys fs.FS, dir string, opts ...FSOption) Source {
	s := &fsSource{
		name:       "fs:" + dir,
		fsys:       fsys,
		dir:        dir,
		extensions: DefaultExtensions,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// FromDir reads slots from a directory on disk
func FromDir(dir string, opts ...FSOption) Source {
	s := FromFS(os.DirFS(dir), ".", opts...).(*fsSource)
	s.name = "dir:" + dir
	return s
}

// Embedded returns the catalog compiled into the binary
func Embedded() Source {
	s := FromFS(catalog.FS, catalog.Dir).(*fsSource)
	s.name = "embedded"
	return s
}

func (s *fsSource) Name() string { return s.name }

func (s *fsSource) Load() (Entries, error) {
	entries := make(Entries)
	origins := make(map[string]string)

	err := fs.WalkDir(s.fsys, s.dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !d.Type().IsRegular() {
			return nil
		}

		ext := path.Ext(p)
		if !s.accepts(ext) {
			return nil
		}

		key := strings.TrimSuffix(path.Base(p), ext)
		if prev, exists := origins[key]; exists {
			return errors.Newf(errors.ErrContentLoad, "slot '%s' is defined by both %s and %s", key, prev, p).
				WithDetail(errors.DetailKey, key)
		}

		data, err := fs.ReadFile(s.fsys, p)
		if err != nil {
			return err
		}
		entries[key] = string(data)
		origins[key] = p
		return nil
	})
	if err != nil {
		if errors.GetErrorCode(err) != errors.ErrUnknown {
			return nil, err
		}
		return nil, errors.Wrapf(err, errors.ErrContentLoad, "failed to read slots from %s", s.name)
	}

	return entries, nil
}

func (s *fsSource) accepts(ext string) bool {
	for _, valid := range s.extensions {
		if ext == valid {
			return true
		}
	}
	return false
}

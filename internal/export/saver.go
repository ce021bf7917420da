package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"litedata/internal/errors"
)

// Saver persists a downloaded blob and returns where it ended up.
type Saver interface {
	Save(name string, data []byte) (string, error)
}

// DirSaver writes downloads into Dir. Existing files are never overwritten:
// a clash becomes "name (1).ext", "name (2).ext" and so on.
type DirSaver struct {
	Dir string
}

// Save implements Saver.
func (s DirSaver) Save(name string, data []byte) (string, error) {
	dir := s.Dir
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", errors.NewFileError("cannot create output directory", dir, errors.FileCreateFailed, err)
	}

	ext := filepath.Ext(name)
	stem := strings.TrimSuffix(name, ext)
	for n := 0; ; n++ {
		candidate := name
		if n > 0 {
			candidate = fmt.Sprintf("%s (%d)%s", stem, n, ext)
		}
		path := filepath.Join(dir, candidate)

		f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
		if os.IsExist(err) {
			continue
		}
		if err != nil {
			kind := errors.FileCreateFailed
			if os.IsPermission(err) {
				kind = errors.FileAccessDenied
			}
			return "", errors.NewFileError("cannot create file", path, kind, err)
		}

		if _, err := f.Write(data); err != nil {
			f.Close()
			_ = os.Remove(path)
			return "", errors.NewFileError("cannot write file", path, errors.FileCreateFailed, err)
		}
		if err := f.Close(); err != nil {
			return "", errors.NewFileError("cannot write file", path, errors.FileCreateFailed, err)
		}
		return path, nil
	}
}

package shell

import (
	"errors"
	"io/fs"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

// ErrNotFound is the error resulting if a path search failed to find an executable file.
var ErrNotFound = exec.ErrNotFound

func findExecutable(fsys afero.Fs, file string) error {
	d, err := fsys.Stat(file)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return ErrNotFound
	case err != nil:
		return err
	}
	if m := d.Mode(); !m.IsDir() && m&0111 != 0 {
		return nil
	}
	return fs.ErrPermission
}

// LookPath searches for an executable named file in the directories named by
// path, a list in PATH format. If file contains a slash, it is tried directly
// and path is not consulted.
//
// When no directory holds an executable file, LookPath returns
// fs.ErrPermission if a non-executable match was seen and ErrNotFound
// otherwise.
func LookPath(fsys afero.Fs, path, file string) (string, error) {
	if strings.Contains(file, "/") {
		if err := findExecutable(fsys, file); err != nil {
			return "", err
		}
		return file, nil
	}

	var sawPermission bool
	for _, dir := range filepath.SplitList(path) {
		if dir == "" {
			// Unix shell semantics: path element "" means "."
			dir = "."
		}
		candidate := filepath.Join(dir, file)
		err := findExecutable(fsys, candidate)
		if err == nil {
			return candidate, nil
		}
		if errors.Is(err, fs.ErrPermission) {
			sawPermission = true
		}
	}
	if sawPermission {
		return "", fs.ErrPermission
	}
	return "", ErrNotFound
}

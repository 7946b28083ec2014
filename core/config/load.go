package config

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/spf13/afero"
	"sigs.k8s.io/yaml"
)

// Load loads the configuration from path, either a directory holding
// config.yaml or the file itself. Fields missing from the file keep their
// default values.
func Load(fsys afero.Fs, path string) (*Configuration, error) {
	if filepath.Base(path) != ConfigurationName {
		if info, err := fsys.Stat(path); err == nil && info.IsDir() {
			path = filepath.Join(path, ConfigurationName)
		}
	}

	configContents, err := afero.ReadFile(fsys, path)
	if err != nil {
		return nil, err
	}

	out := defaultConfig()
	if err := yaml.UnmarshalStrict(configContents, out); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := out.Validate(); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", path, err)
	}
	out.configFs = fsys
	return out, nil
}

// Initialize writes the default configuration into dir. It won't overwrite
// an existing configuration.
func Initialize(fsys afero.Fs, dir string) (string, error) {
	path := filepath.Join(dir, ConfigurationName)

	switch _, err := fsys.Stat(path); {
	case err == nil:
		return "", fmt.Errorf("%s: %w", path, fs.ErrExist)
	case !errors.Is(err, fs.ErrNotExist):
		return "", err
	}

	if err := fsys.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	if err := afero.WriteFile(fsys, path, defaultConfigData, 0644); err != nil {
		return "", err
	}
	return path, nil
}

package config

import (
	_ "embed"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/afero"
	"sigs.k8s.io/yaml"
)

var (
	//go:embed default/config.yaml
	defaultConfigData []byte
)

const (
	ConfigurationName = "config.yaml"
)

type Configuration struct {
	configFs afero.Fs

	Prompt       string `json:"prompt"`
	Color        string `json:"color" validate:"oneof=always auto never"`
	Tokenizer    string `json:"tokenizer" validate:"oneof=whitespace shlex"`
	EventLog     string `json:"event_log"`
	HistoryFile  string `json:"history_file"`
	HistoryLimit int    `json:"history_limit" validate:"gte=-1"`
}

// Validate the configuration for basic semantic errors.
func (c *Configuration) Validate() error {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		return name
	})

	return validate.Struct(c)
}

func (c *Configuration) fs() afero.Fs {
	if c.configFs == nil {
		return afero.NewOsFs()
	}
	return c.configFs
}

// OpenEventLog opens the event log in an append only state. It returns nil
// when the event log is disabled.
func (c *Configuration) OpenEventLog() (afero.File, error) {
	if c.EventLog == "" {
		return nil, nil
	}
	path := expandHome(c.EventLog)
	if err := c.fs().MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nil, err
	}
	return c.fs().OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
}

// ReadEventLog opens the event log for reading.
func (c *Configuration) ReadEventLog() (afero.File, error) {
	return c.fs().OpenFile(expandHome(c.EventLog), os.O_RDONLY, 0600)
}

// HistoryPath returns the history file with ~ expanded.
func (c *Configuration) HistoryPath() string {
	return expandHome(c.HistoryFile)
}

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}

// Default returns the built-in configuration backed by the OS filesystem.
func Default() *Configuration {
	return defaultConfig()
}

func defaultConfig() *Configuration {
	var out Configuration
	if err := yaml.UnmarshalStrict(defaultConfigData, &out); err != nil {
		panic(err)
	}
	return &out
}

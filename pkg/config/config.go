// Package config reads the YAML configuration of the hashset programs.
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strings"

	"github.com/phuslu/log"
	yaml "gopkg.in/yaml.v3"
)

// DefaultCapacity is a prime number of slots.
const DefaultCapacity = 5009

type Config struct {
	Capacity int
	Log      Log
	WordFreq WordFreq
	Metrics  Metrics
}

type Log struct {
	Level   log.Level
	Console bool
}

type WordFreq struct {
	// Top is the number of most frequent words to report,
	// 0 disables the report.
	Top int
}

type Metrics struct {
	// Textfile is the path of the Prometheus textfile to write
	// table statistics to, empty disables the export.
	Textfile string
}

// Default returns the configuration used when no file is provided.
func Default() *Config {
	return &Config{
		Capacity: DefaultCapacity,
		Log:      Log{Level: log.InfoLevel},
	}
}

type config struct {
	Capacity *int `yaml:"capacity"`
	Log      *struct {
		Level   *string `yaml:"level"`
		Console *bool   `yaml:"console"`
	} `yaml:"log"`
	WordFreq *struct {
		Top *int `yaml:"top"`
	} `yaml:"wordfreq"`
	Metrics *struct {
		Textfile *string `yaml:"textfile"`
	} `yaml:"metrics"`
}

var levels = []string{"trace", "debug", "info", "warn", "error", "fatal"}

// Read reads the configuration file at path from filesystem.
// Settings missing in the file keep their default values.
func Read(filesystem fs.FS, path string) (*Config, error) {
	f, err := filesystem.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &ErrorMissing{FilePath: path}
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}
	defer f.Close()

	var c config
	d := yaml.NewDecoder(f)
	d.KnownFields(true)
	if err := d.Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return nil, &ErrorIllegal{
			FilePath: path,
			Message:  err.Error(),
		}
	}

	conf := Default()
	if c.Capacity != nil {
		if *c.Capacity < 1 {
			return nil, &ErrorIllegal{
				FilePath: path,
				Feature:  "capacity",
				Message:  "must be positive",
			}
		}
		conf.Capacity = *c.Capacity
	}
	if c.Log != nil {
		if c.Log.Level != nil {
			l := strings.ToLower(*c.Log.Level)
			if !contains(levels, l) {
				return nil, &ErrorIllegal{
					FilePath: path,
					Feature:  "log.level",
					Message: fmt.Sprintf(
						"unknown level %q, expected one of: %s",
						*c.Log.Level, strings.Join(levels, ", "),
					),
				}
			}
			conf.Log.Level = log.ParseLevel(l)
		}
		if c.Log.Console != nil {
			conf.Log.Console = *c.Log.Console
		}
	}
	if c.WordFreq != nil && c.WordFreq.Top != nil {
		if *c.WordFreq.Top < 0 {
			return nil, &ErrorIllegal{
				FilePath: path,
				Feature:  "wordfreq.top",
				Message:  "must not be negative",
			}
		}
		conf.WordFreq.Top = *c.WordFreq.Top
	}
	if c.Metrics != nil && c.Metrics.Textfile != nil {
		conf.Metrics.Textfile = *c.Metrics.Textfile
	}
	return conf, nil
}

func contains(s []string, x string) bool {
	for i := range s {
		if s[i] == x {
			return true
		}
	}
	return false
}

type ErrorMissing struct {
	FilePath string
}

func (e ErrorMissing) Error() string {
	return "missing " + e.FilePath
}

type ErrorIllegal struct {
	FilePath string
	Feature  string
	Message  string
}

func (e ErrorIllegal) Error() string {
	var b strings.Builder
	b.WriteString("illegal ")
	if e.Feature != "" {
		b.WriteString(e.Feature)
		b.WriteString(" in ")
	}
	b.WriteString(e.FilePath)
	b.WriteString(": ")
	b.WriteString(e.Message)
	return b.String()
}

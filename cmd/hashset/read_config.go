package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/graph-guard/hashset/pkg/config"
	"github.com/graph-guard/hashset/pkg/math"
	"github.com/graph-guard/hashset/pkg/setmetrics"
	"github.com/phuslu/log"
)

// ReadConfig reads the configuration file at configPath or returns
// the defaults if configPath is empty. Returns nil on failure.
func ReadConfig(w io.Writer, configPath string) *config.Config {
	if configPath == "" {
		return config.Default()
	}
	basePath, fileName := basePathAndFileName(configPath)
	conf, err := config.Read(os.DirFS(basePath), fileName)
	if err != nil {
		fmt.Fprintf(w, "reading config: %s\n", err)
		return nil
	}
	return conf
}

func basePathAndFileName(path string) (basePath, fileName string) {
	return filepath.Dir(path), filepath.Base(path)
}

func newLogger(w io.Writer, conf *config.Config, program string) log.Logger {
	l := log.Logger{
		Level:  conf.Log.Level,
		Writer: &log.IOWriter{Writer: w},
	}
	if conf.Log.Console {
		l.Writer = &log.ConsoleWriter{Writer: w}
	}
	l.Context = log.NewContext(nil).Str("program", program).Value()

	if !math.IsPrime(conf.Capacity) {
		l.Warn().
			Int("capacity", conf.Capacity).
			Int("suggested", math.NextPrime(conf.Capacity)).
			Msg("capacity is not a prime number")
	}
	return l
}

// exportMetrics writes the table statistics of src to path
// unless path is empty.
func exportMetrics(
	l *log.Logger,
	path, namespace string,
	src setmetrics.StatsSource,
) bool {
	if path == "" {
		return true
	}
	if err := setmetrics.WriteTextfile(
		path, setmetrics.New(namespace, src),
	); err != nil {
		l.Error().Err(err).Str("path", path).Msg("writing metrics")
		return false
	}
	l.Debug().Str("path", path).Msg("metrics written")
	return true
}

func pick(override, fallback string) string {
	if override != "" {
		return override
	}
	return fallback
}

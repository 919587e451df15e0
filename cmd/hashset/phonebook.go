package main

import (
	"io"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/graph-guard/hashset/pkg/cli"
	"github.com/graph-guard/hashset/pkg/phonebook"
)

func phoneBook(stdin io.Reader, stdout, stderr io.Writer, c cli.CommandPhoneBook) bool {
	conf := ReadConfig(stderr, c.ConfigPath)
	if conf == nil {
		return false
	}
	l := newLogger(stderr, conf, "phonebook")

	b, err := phonebook.New(conf.Capacity, l)
	if err != nil {
		l.Error().Err(err).Msg("creating phone book")
		return false
	}

	if c.LoadPath != "" {
		data, err := os.ReadFile(c.LoadPath)
		if err != nil {
			l.Error().Err(err).Msg("reading records")
			return false
		}
		if _, err := b.Import(data); err != nil {
			l.Error().Err(err).Str("path", c.LoadPath).Msg("importing records")
			return false
		}
		l.Info().
			Str("path", c.LoadPath).
			Str("size", humanize.Bytes(uint64(len(data)))).
			Msg("loaded")
	}

	if err := b.Run(stdin, stdout); err != nil {
		l.Error().Err(err).Msg("running")
		return false
	}

	return exportMetrics(
		&l, pick(c.MetricsPath, conf.Metrics.Textfile), "hashset_phonebook", b,
	)
}

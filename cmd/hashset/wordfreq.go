package main

import (
	"io"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/graph-guard/hashset/pkg/cli"
	"github.com/graph-guard/hashset/pkg/wordfreq"
)

func wordFreq(stdin io.Reader, stdout, stderr io.Writer, c cli.CommandWordFreq) bool {
	conf := ReadConfig(stderr, c.ConfigPath)
	if conf == nil {
		return false
	}
	l := newLogger(stderr, conf, "wordfreq")

	counter, err := wordfreq.New(conf.Capacity, l)
	if err != nil {
		l.Error().Err(err).Msg("creating counter")
		return false
	}

	input := stdin
	if c.InputPath != "" {
		f, err := os.Open(c.InputPath)
		if err != nil {
			l.Error().Err(err).Msg("cannot open an input file")
			return false
		}
		defer f.Close()
		input = f
	}

	if err := counter.Count(input); err != nil {
		l.Error().Err(err).Msg("reading input")
		return false
	}
	l.Info().
		Str("read", humanize.Bytes(uint64(counter.BytesRead()))).
		Str("words", humanize.Comma(int64(counter.Len()))).
		Msg("counted")

	if err := counter.Report(stdout); err != nil {
		l.Error().Err(err).Msg("writing report")
		return false
	}

	top := conf.WordFreq.Top
	if c.Top > 0 {
		top = c.Top
	}
	if top > 0 {
		_, _ = io.WriteString(stdout, "\n")
		counter.ReportTop(stdout, top)
	}

	return exportMetrics(
		&l, pick(c.MetricsPath, conf.Metrics.Textfile), "hashset_wordfreq", counter,
	)
}

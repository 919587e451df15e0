package cli

import (
	"flag"
	"fmt"
	"io"
	"path/filepath"
)

// Command can be any of:
//
//	CommandPhoneBook
//	CommandWordFreq
type Command any

type CommandPhoneBook struct {
	ConfigPath  string
	LoadPath    string
	MetricsPath string
}

type CommandWordFreq struct {
	ConfigPath  string
	InputPath   string
	MetricsPath string

	// Top overrides the configured number of most frequent words
	// to report when positive.
	Top int
}

func Parse(w io.Writer, args []string) (cmd Command) {
	fm := fmt.Sprintf

	executableName := "hashset"
	if len(args) > 0 {
		executableName = filepath.Base(args[0])
	}

	flags := flag.NewFlagSet("hashset", flag.ContinueOnError)
	flags.SetOutput(w)
	flags.Usage = func() {
		writeLines(w,
			fm("usage: %s <command> [flags]", executableName),
			"",
			"commands available:",
			" phonebook - starts the interactive phone book editor",
			" wordfreq - counts word frequencies of a text",
			" help - prints this help",
		)
	}

	parseFlags := func() (ok bool) {
		err := flags.Parse(args[2:])
		// flags will automatically call .Usage()
		return err == nil
	}

	if len(args) < 2 {
		flags.Usage()
		return nil
	}

	configFlagUsage := "-config <path>: defines the configuration file path " +
		"(default: built-in defaults)"
	metricsFlagUsage := "-metrics <path>: writes table statistics " +
		"to a Prometheus textfile (overrides config)"

	switch args[1] {
	case "phonebook":
		c := CommandPhoneBook{}
		flags.Usage = func() {
			writeLines(w,
				"",
				fm("usage: %s phonebook "+
					"[-config <path>] [-load <path>] [-metrics <path>]",
					executableName),
				"",
				"flags:",
				configFlagUsage,
				"-load <path>: imports records from a JSON object file "+
					"before starting",
				metricsFlagUsage,
			)
		}
		flags.StringVar(&c.ConfigPath, "config", "", "")
		flags.StringVar(&c.LoadPath, "load", "", "")
		flags.StringVar(&c.MetricsPath, "metrics", "", "")
		if !parseFlags() {
			return nil
		}
		if flags.NArg() > 0 {
			writeLines(w, fm("unexpected argument: %s", flags.Arg(0)))
			flags.Usage()
			return nil
		}
		cmd = c

	case "wordfreq":
		c := CommandWordFreq{}
		flags.Usage = func() {
			writeLines(w,
				"",
				fm("usage: %s wordfreq "+
					"[-config <path>] [-top <n>] [-metrics <path>] [input_file]",
					executableName),
				"",
				"flags:",
				configFlagUsage,
				"-top <n>: reports the n most frequent words "+
					"(overrides config)",
				metricsFlagUsage,
				"",
				"reads from standard input if no input file is given",
			)
		}
		flags.StringVar(&c.ConfigPath, "config", "", "")
		flags.IntVar(&c.Top, "top", 0, "")
		flags.StringVar(&c.MetricsPath, "metrics", "", "")
		if !parseFlags() {
			return nil
		}
		if c.Top < 0 {
			writeLines(w, fm("invalid top: %d", c.Top))
			flags.Usage()
			return nil
		}
		switch flags.NArg() {
		case 0:
		case 1:
			c.InputPath = flags.Arg(0)
		default:
			writeLines(w, fm("unexpected argument: %s", flags.Arg(1)))
			flags.Usage()
			return nil
		}
		cmd = c

	case "help":
		flags.Usage()
		return nil

	default:
		flags.Usage()
		return nil
	}
	return cmd
}

func writeLines(w io.Writer, lines ...string) {
	for i := range lines {
		_, _ = w.Write([]byte(lines[i]))
		_, _ = w.Write([]byte("\n"))
	}
}

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/graph-guard/hashset/pkg/cli"
)

func main() {
	os.Exit(run(os.Args, os.Stdin, os.Stdout, os.Stderr))
}

// run executes the command described by args and returns the exit code.
// Program output goes to stdout, logs and errors go to stderr.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var ok bool
	switch c := cli.Parse(stdout, args).(type) {
	case cli.CommandPhoneBook:
		ok = phoneBook(stdin, stdout, stderr, c)
	case cli.CommandWordFreq:
		ok = wordFreq(stdin, stdout, stderr, c)
	default:
		if c != nil {
			panic(fmt.Errorf("unexpected command: %#v", c))
		}
		return 2
	}
	if !ok {
		return 1
	}
	return 0
}

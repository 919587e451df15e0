// Package phonebook implements an interactive name to number directory
// on top of a hashset.Set.
package phonebook

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/graph-guard/hashset/pkg/hashset"
	"github.com/graph-guard/hashset/pkg/integer"
	"github.com/graph-guard/hashset/pkg/word"
	"github.com/phuslu/log"
	"github.com/tidwall/gjson"
)

var (
	ErrInvalidJSON = errors.New("invalid JSON")
	ErrNotObject   = errors.New("expected a JSON object")
	ErrEmptyName   = errors.New("empty name")
)

// ErrorNumber is returned by Import for a record
// whose number isn't an integer.
type ErrorNumber struct {
	Name string
	Raw  string
}

func (e ErrorNumber) Error() string {
	return fmt.Sprintf("number of %q is not an integer: %s", e.Name, e.Raw)
}

// Book maps names to phone numbers.
type Book struct {
	set *hashset.Set[*word.Word, *integer.Integer]
	log log.Logger
}

func New(capacity int, l log.Logger) (*Book, error) {
	s, err := hashset.New[*word.Word, *integer.Integer](capacity)
	if err != nil {
		return nil, err
	}
	return &Book{set: s, log: l}, nil
}

// Add sets the number of name, replacing any previous number.
func (b *Book) Add(name string, number int) error {
	if name == "" {
		return ErrEmptyName
	}
	if err := b.set.Add(word.New(name), integer.New(number)); err != nil {
		return err
	}
	b.log.Debug().Str("name", name).Int("number", number).Msg("added")
	return nil
}

// Remove deletes name and returns true if it was present.
func (b *Book) Remove(name string) bool {
	removed := b.set.Remove(word.New(name))
	b.log.Debug().Str("name", name).Bool("removed", removed).Msg("remove")
	return removed
}

// Number returns the number of name.
func (b *Book) Number(name string) (int, bool) {
	v, ok := b.set.Lookup(word.New(name))
	if !ok {
		return 0, false
	}
	return v.N, true
}

func (b *Book) Len() int { return b.set.Len() }

// Stats exposes the occupancy of the underlying table.
func (b *Book) Stats() hashset.Stats { return b.set.Stats() }

// Show writes all records in table order.
func (b *Book) Show(w io.Writer) error {
	var err error
	b.set.Visit(func(k *word.Word, v *integer.Integer) bool {
		_, err = fmt.Fprintf(w, "\t%s\t%d\n", k, v.N)
		return err != nil
	})
	return err
}

// Import adds all records of a JSON object of the form
// {"name": number, ...} and returns the number of records added.
// Nothing is added if any of the records is invalid.
func (b *Book) Import(data []byte) (int, error) {
	if !gjson.ValidBytes(data) {
		return 0, ErrInvalidJSON
	}
	obj := gjson.ParseBytes(data)
	if !obj.IsObject() {
		return 0, ErrNotObject
	}

	type record struct {
		name   string
		number int
	}
	var records []record
	var err error
	obj.ForEach(func(key, value gjson.Result) bool {
		if key.String() == "" {
			err = ErrEmptyName
			return false
		}
		if value.Type != gjson.Number || float64(value.Int()) != value.Num {
			err = &ErrorNumber{Name: key.String(), Raw: value.Raw}
			return false
		}
		records = append(records, record{key.String(), int(value.Int())})
		return true
	})
	if err != nil {
		return 0, err
	}

	for _, r := range records {
		if err := b.Add(r.name, r.number); err != nil {
			return 0, err
		}
	}
	b.log.Info().Int("records", len(records)).Msg("imported")
	return len(records), nil
}

// Run executes the command loop reading commands from r line by line
// and writing prompts and output to w until "quit" or the end of r.
func (b *Book) Run(r io.Reader, w io.Writer) error {
	if err := PrintHelp(w); err != nil {
		return err
	}
	br := bufio.NewReader(r)
	for {
		if _, err := io.WriteString(w, "Command>"); err != nil {
			return err
		}
		line, err := br.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return err
		}
		if line == "" && err != nil {
			return nil
		}
		quit, execErr := b.exec(line, w)
		if execErr != nil {
			return execErr
		}
		if quit || err != nil {
			return nil
		}
	}
}

// exec executes a single command line.
func (b *Book) exec(line string, w io.Writer) (quit bool, err error) {
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")

	i := skip(line, 0, isSpace)
	if i >= len(line) {
		return false, nil
	}

	switch line[i] {
	case 'q':
		return true, nil
	case 'a':
		name, number, ok := parseAdd(line, i)
		if !ok {
			b.log.Debug().Str("line", line).Msg("malformed add")
			return false, nil
		}
		return false, b.Add(name, number)
	case 'r':
		name, ok := parseRemove(line, i)
		if !ok {
			b.log.Debug().Str("line", line).Msg("malformed remove")
			return false, nil
		}
		b.Remove(name)
		return false, nil
	case 's':
		return false, b.Show(w)
	}
	return false, PrintHelp(w)
}

// parseArg skips the command word starting at i and the blanks
// following it. Returns the index of the argument.
func parseArg(line string, i int) (int, bool) {
	i = skip(line, i, isLetter)
	if i >= len(line)-2 || !isSpace(line[i]) {
		return 0, false
	}
	i = skip(line, i, isSpace)
	return i, i < len(line)
}

// parseAdd parses "add <name> <number>". The name ends before
// the first digit, the number is the leading run of digits.
func parseAdd(line string, i int) (name string, number int, ok bool) {
	if i, ok = parseArg(line, i); !ok {
		return "", 0, false
	}
	begin := i
	i = skip(line, i, func(c byte) bool { return !isDigit(c) })
	for j := i; j < len(line) && isDigit(line[j]); j++ {
		number = number*10 + int(line[j]-'0')
	}
	for i > begin+1 && isSpace(line[i-1]) {
		i--
	}
	if i <= begin {
		return "", 0, false
	}
	return line[begin:i], number, true
}

// parseRemove parses "remove <name>".
func parseRemove(line string, i int) (name string, ok bool) {
	if i, ok = parseArg(line, i); !ok {
		return "", false
	}
	return line[i:], true
}

func skip(s string, i int, fn func(byte) bool) int {
	for i < len(s) && fn(s[i]) {
		i++
	}
	return i
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

func isLetter(c byte) bool { return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' }

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func PrintHelp(w io.Writer) error {
	_, err := io.WriteString(w, "Telephone Book (based on HashSet)\n"+
		"Commands:\n"+
		"\t\tadd name number,\n"+
		"\t\tremove name,\n"+
		"\t\tshow,\n"+
		"\t\thelp,\n"+
		"\t\tquit.\n"+
		"\tThe \"add\" command modifies a number,\n"+
		"\tif name is already in the phone book.\n")
	return err
}

package phonebook_test

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/graph-guard/hashset/pkg/decl"
	"github.com/graph-guard/hashset/pkg/hashset"
	"github.com/graph-guard/hashset/pkg/phonebook"
	"github.com/phuslu/log"
	"github.com/stretchr/testify/require"
)

var help = lines(
	"Telephone Book (based on HashSet)",
	"Commands:",
	"\t\tadd name number,",
	"\t\tremove name,",
	"\t\tshow,",
	"\t\thelp,",
	"\t\tquit.",
	"\tThe \"add\" command modifies a number,",
	"\tif name is already in the phone book.",
)

func newBook(t *testing.T, capacity int) *phonebook.Book {
	b, err := phonebook.New(capacity, log.Logger{
		Level:  log.ErrorLevel,
		Writer: &log.IOWriter{Writer: io.Discard},
	})
	require.NoError(t, err)
	return b
}

func TestNewInvalidCapacity(t *testing.T) {
	b, err := phonebook.New(0, log.Logger{})
	require.ErrorIs(t, err, hashset.ErrInvalidCapacity)
	require.Nil(t, b)
}

func TestAddUpdate(t *testing.T) {
	b := newBook(t, 5009)
	require.NoError(t, b.Add("Alice", 12345))
	require.NoError(t, b.Add("Bob", 555))
	require.NoError(t, b.Add("Alice", 67890))
	require.Equal(t, 2, b.Len())

	n, ok := b.Number("Alice")
	require.True(t, ok)
	require.Equal(t, 67890, n)

	n, ok = b.Number("Bob")
	require.True(t, ok)
	require.Equal(t, 555, n)

	_, ok = b.Number("Carol")
	require.False(t, ok)

	require.ErrorIs(t, b.Add("", 1), phonebook.ErrEmptyName)
}

func TestRemove(t *testing.T) {
	b := newBook(t, 1)
	require.NoError(t, b.Add("Alice", 1))
	require.NoError(t, b.Add("Bob", 2))
	require.True(t, b.Remove("Alice"))
	require.False(t, b.Remove("Alice"))
	require.Equal(t, 1, b.Len())

	out := new(bytes.Buffer)
	require.NoError(t, b.Show(out))
	require.Equal(t, "\tBob\t2\n", out.String())
}

func TestShowTableOrder(t *testing.T) {
	// A single slot keeps insertion order.
	b := newBook(t, 1)
	require.NoError(t, b.Add("Carol", 3))
	require.NoError(t, b.Add("Alice", 1))
	require.NoError(t, b.Add("Bob", 2))

	out := new(bytes.Buffer)
	require.NoError(t, b.Show(out))
	require.Equal(t, "\tCarol\t3\n\tAlice\t1\n\tBob\t2\n", out.String())
}

type TestImport struct {
	Input  string
	Expect map[string]int
	Err    string
}

func TestImportRecords(t *testing.T) {
	for _, td := range []decl.Declaration[TestImport]{
		decl.New(TestImport{
			Input:  `{}`,
			Expect: map[string]int{},
		}),
		decl.New(TestImport{
			Input:  `{"Alice": 12345, "Bob": 555}`,
			Expect: map[string]int{"Alice": 12345, "Bob": 555},
		}),
		decl.New(TestImport{
			Input:  `{"Alice": 1, "Alice": 2}`,
			Expect: map[string]int{"Alice": 2},
		}),
		decl.New(TestImport{
			Input: `{"Alice": 1`,
			Err:   "invalid JSON",
		}),
		decl.New(TestImport{
			Input: `[1, 2]`,
			Err:   "expected a JSON object",
		}),
		decl.New(TestImport{
			Input: `{"Alice": 1, "Bob": "555"}`,
			Err:   `number of "Bob" is not an integer: "555"`,
		}),
		decl.New(TestImport{
			Input: `{"Alice": 1.5}`,
			Err:   `number of "Alice" is not an integer: 1.5`,
		}),
		decl.New(TestImport{
			Input: `{"": 1}`,
			Err:   "empty name",
		}),
	} {
		t.Run(td.Decl, func(t *testing.T) {
			b := newBook(t, 17)
			n, err := b.Import([]byte(td.Data.Input))
			if td.Data.Err != "" {
				require.Error(t, err)
				require.Equal(t, td.Data.Err, err.Error())
				require.Zero(t, n)
				require.Zero(t, b.Len())
				return
			}
			require.NoError(t, err)
			require.Equal(t, len(td.Data.Expect), b.Len())
			for name, number := range td.Data.Expect {
				actual, ok := b.Number(name)
				require.True(t, ok, name)
				require.Equal(t, number, actual, name)
			}
		})
	}
}

func TestRunScenario(t *testing.T) {
	b := newBook(t, 5009)
	out := new(bytes.Buffer)
	err := b.Run(strings.NewReader(lines(
		"add Alice 12345",
		"add Bob 555",
		"add Alice 67890",
		"quit",
		"add Carol 1",
	)), out)
	require.NoError(t, err)
	require.Equal(t, 2, b.Len())
	n, _ := b.Number("Alice")
	require.Equal(t, 67890, n)
	n, _ = b.Number("Bob")
	require.Equal(t, 555, n)
	_, ok := b.Number("Carol")
	require.False(t, ok)
	require.Equal(t, help+strings.Repeat("Command>", 4), out.String())
}

type TestCommand struct {
	Input  string
	Expect map[string]int
	Output string
}

func TestRunCommands(t *testing.T) {
	for _, td := range []decl.Declaration[TestCommand]{
		decl.New(TestCommand{
			Input:  "add Alice 12345\r\n",
			Expect: map[string]int{"Alice": 12345},
		}),
		decl.New(TestCommand{
			Input:  "   a  Alice Smith   42\n",
			Expect: map[string]int{"Alice Smith": 42},
		}),
		decl.New(TestCommand{
			Input:  "add Alice\n",
			Expect: map[string]int{"Alice": 0},
		}),
		decl.New(TestCommand{
			Input:  "add R2D2\n",
			Expect: map[string]int{"R": 2},
		}),
		decl.New(TestCommand{
			// No space after the command word.
			Input:  "add,Alice 1\n",
			Expect: map[string]int{},
		}),
		decl.New(TestCommand{
			// Less than two characters after the command word.
			Input:  "add A\n",
			Expect: map[string]int{},
		}),
		decl.New(TestCommand{
			// Name missing.
			Input:  "add  123\n",
			Expect: map[string]int{},
		}),
		decl.New(TestCommand{
			Input:  "\n\n   \n",
			Expect: map[string]int{},
		}),
		decl.New(TestCommand{
			Input:  lines("add Alice 1", "add Bob 2", "remove Alice"),
			Expect: map[string]int{"Bob": 2},
		}),
		decl.New(TestCommand{
			Input:  lines("add Alice 1", "  r   Alice"),
			Expect: map[string]int{},
		}),
		decl.New(TestCommand{
			Input:  lines("add Alice 1", "remove Carol"),
			Expect: map[string]int{"Alice": 1},
		}),
		decl.New(TestCommand{
			Input:  lines("add Alice 1", "show"),
			Expect: map[string]int{"Alice": 1},
			Output: "\tAlice\t1\n",
		}),
		decl.New(TestCommand{
			Input:  "help\n",
			Expect: map[string]int{},
			Output: help,
		}),
		decl.New(TestCommand{
			Input:  "xyz\n",
			Expect: map[string]int{},
			Output: help,
		}),
		decl.New(TestCommand{
			// Last line without a line break.
			Input:  "add Alice 7",
			Expect: map[string]int{"Alice": 7},
		}),
	} {
		t.Run(td.Decl, func(t *testing.T) {
			b := newBook(t, 17)
			out := new(bytes.Buffer)
			require.NoError(t, b.Run(strings.NewReader(td.Data.Input), out))

			require.Equal(t, len(td.Data.Expect), b.Len())
			for name, number := range td.Data.Expect {
				actual, ok := b.Number(name)
				require.True(t, ok, name)
				require.Equal(t, number, actual, name)
			}

			o := strings.TrimPrefix(out.String(), help)
			o = strings.ReplaceAll(o, "Command>", "")
			require.Equal(t, td.Data.Output, o)
		})
	}
}

func TestRunWriteError(t *testing.T) {
	b := newBook(t, 17)
	err := b.Run(strings.NewReader("quit\n"), failingWriter{})
	require.ErrorIs(t, err, io.ErrClosedPipe)
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, io.ErrClosedPipe }

func lines(lines ...string) string {
	var b strings.Builder
	for i := range lines {
		b.WriteString(lines[i])
		b.WriteByte('\n')
	}
	return b.String()
}

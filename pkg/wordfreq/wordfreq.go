// Package wordfreq counts the occurrences of words in a text.
// A word is a maximal run of ASCII letters, words are case sensitive.
package wordfreq

import (
	"bufio"
	"cmp"
	"errors"
	"fmt"
	"io"
	"slices"
	"strconv"

	heap "github.com/emirpasic/gods/v2/trees/binaryheap"
	"github.com/graph-guard/hashset/pkg/hashset"
	"github.com/graph-guard/hashset/pkg/integer"
	"github.com/graph-guard/hashset/pkg/word"
	"github.com/olekukonko/tablewriter"
	"github.com/phuslu/log"
)

type Counter struct {
	set   *hashset.Set[*word.Word, *integer.Integer]
	log   log.Logger
	bytes int64
}

// Frequency is the number of occurrences of a word.
type Frequency struct {
	Word  string
	Count int
}

func New(capacity int, l log.Logger) (*Counter, error) {
	s, err := hashset.New[*word.Word, *integer.Integer](capacity)
	if err != nil {
		return nil, err
	}
	return &Counter{set: s, log: l}, nil
}

// Count reads r until EOF counting all words.
// Counts accumulate over subsequent calls.
func (c *Counter) Count(r io.Reader) error {
	br := bufio.NewReader(r)
	current := word.New("")
	var n int64
	for {
		b, err := br.ReadByte()
		if err != nil && !errors.Is(err, io.EOF) {
			return err
		}
		if err == nil {
			n++
			if isLetter(b) {
				current.Append(b)
				continue
			}
		}
		if current.Len() > 0 {
			if err := c.add(current); err != nil {
				return err
			}
			current.Reset()
		}
		if err != nil {
			break
		}
	}
	c.bytes += n
	c.log.Debug().
		Int64("bytes", n).
		Int("words", c.set.Len()).
		Msg("counted")
	return nil
}

func (c *Counter) add(w *word.Word) error {
	if c.set.LookupFn(w, func(v **integer.Integer) { (*v).Inc() }) {
		return nil
	}
	return c.set.Add(w, integer.New(1))
}

// BytesRead returns the total number of bytes consumed by Count.
func (c *Counter) BytesRead() int64 { return c.bytes }

// Frequency returns the number of occurrences of w.
func (c *Counter) Frequency(w string) int {
	v, ok := c.set.Lookup(word.New(w))
	if !ok {
		return 0
	}
	return v.N
}

// Len returns the number of different words.
func (c *Counter) Len() int { return c.set.Len() }

// Stats exposes the occupancy of the underlying table.
func (c *Counter) Stats() hashset.Stats { return c.set.Stats() }

// Visit calls fn for every word in table order.
func (c *Counter) Visit(fn func(f Frequency) (stop bool)) {
	c.set.Visit(func(k *word.Word, v *integer.Integer) bool {
		return fn(Frequency{Word: k.String(), Count: v.N})
	})
}

// MostFrequent returns the first word in table order
// with the highest count. Returns ("", 0) if there are no words.
func (c *Counter) MostFrequent() (w string, count int) {
	c.set.VisitAll(func(k *word.Word, v *integer.Integer) {
		if v.N > count {
			w, count = k.String(), v.N
		}
	})
	return w, count
}

// Top returns at most n most frequent words ordered by
// count descending and word ascending.
func (c *Counter) Top(n int) []Frequency {
	if n < 1 {
		return nil
	}
	// The root is the least frequent of the kept words.
	h := heap.NewWith(func(a, b Frequency) int {
		if r := cmp.Compare(a.Count, b.Count); r != 0 {
			return r
		}
		return cmp.Compare(b.Word, a.Word)
	})
	c.Visit(func(f Frequency) bool {
		h.Push(f)
		if h.Size() > n {
			h.Pop()
		}
		return false
	})
	top := make([]Frequency, 0, h.Size())
	for !h.Empty() {
		f, _ := h.Pop()
		top = append(top, f)
	}
	slices.Reverse(top)
	return top
}

// Report writes all words in table order followed by a summary.
func (c *Counter) Report(w io.Writer) error {
	bw := bufio.NewWriter(w)
	_, _ = bw.WriteString("The text contains the following words:\n")
	c.Visit(func(f Frequency) bool {
		fmt.Fprintf(bw, "%d\t%s\n", f.Count, f.Word)
		return false
	})
	mw, mc := c.MostFrequent()
	fmt.Fprintf(bw,
		"----\n"+
			"Number of different words in the text = %d\n"+
			"The most frequent word is %q, included %d times.\n",
		c.Len(), mw, mc,
	)
	return bw.Flush()
}

// ReportTop writes the n most frequent words as a table.
func (c *Counter) ReportTop(w io.Writer, n int) {
	top := c.Top(n)
	data := make([][]string, len(top))
	for i, f := range top {
		data[i] = []string{f.Word, strconv.Itoa(f.Count)}
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"WORD", "COUNT"})
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetNoWhiteSpace(true)
	table.SetTablePadding("    ")
	table.AppendBulk(data)
	table.Render()
}

func isLetter(c byte) bool { return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' }

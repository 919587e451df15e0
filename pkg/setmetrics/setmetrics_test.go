package setmetrics_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/graph-guard/hashset/pkg/hashset"
	"github.com/graph-guard/hashset/pkg/integer"
	"github.com/graph-guard/hashset/pkg/setmetrics"
	"github.com/graph-guard/hashset/pkg/word"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func newSet(t *testing.T, keys ...string) *hashset.Set[*word.Word, *integer.Integer] {
	t.Helper()
	s := hashset.MustNew[*word.Word, *integer.Integer](8)
	for i, k := range keys {
		require.NoError(t, s.Add(word.New(k), integer.New(i)))
	}
	return s
}

func TestCollect(t *testing.T) {
	s := newSet(t, "a", "b", "c", "d")
	c := setmetrics.New("test", s)

	require.Equal(t, 5, testutil.CollectAndCount(c))
	require.NoError(t, testutil.CollectAndCompare(c, strings.NewReader(`
# HELP test_capacity Number of slots.
# TYPE test_capacity gauge
test_capacity 8
# HELP test_entries Number of live entries.
# TYPE test_entries gauge
test_entries 4
# HELP test_load_factor Ratio of live entries to slots.
# TYPE test_load_factor gauge
test_load_factor 0.5
`), "test_capacity", "test_entries", "test_load_factor"))

	// Statistics are read on every collection.
	require.NoError(t, s.Add(word.New("e"), integer.New(0)))
	require.NoError(t, testutil.CollectAndCompare(c, strings.NewReader(`
# HELP test_entries Number of live entries.
# TYPE test_entries gauge
test_entries 5
`), "test_entries"))
}

func TestWriteTextfile(t *testing.T) {
	s := newSet(t, "x")
	p := filepath.Join(t.TempDir(), "hashset.prom")
	require.NoError(t, setmetrics.WriteTextfile(p, setmetrics.New("wordfreq", s)))

	b, err := os.ReadFile(p)
	require.NoError(t, err)
	require.Contains(t, string(b), "wordfreq_entries 1\n")
	require.Contains(t, string(b), "wordfreq_capacity 8\n")
	require.Contains(t, string(b), "wordfreq_used_slots 1\n")
	require.Contains(t, string(b), "wordfreq_longest_chain 1\n")
}

func TestWriteTextfileError(t *testing.T) {
	s := newSet(t)
	p := filepath.Join(t.TempDir(), "missing", "dir", "hashset.prom")
	require.Error(t, setmetrics.WriteTextfile(p, setmetrics.New("x", s)))
}

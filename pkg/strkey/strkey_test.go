package strkey_test

import (
	"testing"

	"github.com/graph-guard/hashset/pkg/strkey"
	"github.com/stretchr/testify/require"
	"github.com/zeebo/xxh3"
)

func TestHash(t *testing.T) {
	for _, k := range []strkey.Key{"", "a", "hello world"} {
		h := k.Hash()
		require.Zero(t, h&0x80000000)
		require.Equal(t, uint32(xxh3.HashString(string(k)))&0x7fffffff, h)
		require.Equal(t, h, strkey.Key(string(k)).Hash())
	}
}

func TestEqualClone(t *testing.T) {
	k := strkey.Key("key")
	require.True(t, k.Equal(k.Clone()))
	require.False(t, k.Equal("other"))
}

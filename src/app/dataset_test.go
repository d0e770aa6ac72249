package app

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Blackdeer1524/chainhash/src/pkg/utils"
)

func TestReadDataset(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/data/animals.env", []byte(`
# animals
cat = V1
dog=V2

empty=
url=https://example.com/?a=b
cat=V3
`), 0o644))

	pairs, err := ReadDataset(fs, "/data/animals.env")
	require.NoError(t, err)

	assert.Equal(t, []utils.Pair[string, string]{
		{First: "cat", Second: "V1"},
		{First: "dog", Second: "V2"},
		{First: "empty", Second: ""},
		{First: "url", Second: "https://example.com/?a=b"},
		{First: "cat", Second: "V3"},
	}, pairs)
}

func TestReadDataset_Errors(t *testing.T) {
	fs := afero.NewMemMapFs()

	t.Run("missing file", func(t *testing.T) {
		_, err := ReadDataset(fs, "/nope")
		require.Error(t, err)
	})

	t.Run("no separator", func(t *testing.T) {
		require.NoError(t, afero.WriteFile(fs, "/bad", []byte("a=1\njust a key\n"), 0o644))

		_, err := ReadDataset(fs, "/bad")
		require.ErrorContains(t, err, "/bad:2")
	})

	t.Run("empty key", func(t *testing.T) {
		require.NoError(t, afero.WriteFile(fs, "/bad-key", []byte(" =value\n"), 0o644))

		_, err := ReadDataset(fs, "/bad-key")
		require.ErrorContains(t, err, "/bad-key:1")
	})
}

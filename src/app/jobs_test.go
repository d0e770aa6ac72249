package app

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Blackdeer1524/chainhash/src/hashtable"
	"github.com/Blackdeer1524/chainhash/src/pkg/optional"
)

// isolateEnv unsets every CHAINHASH_ variable for the test and returns the
// path of an empty .env file, so only defaults apply.
func isolateEnv(t *testing.T) string {
	t.Helper()

	for _, key := range []string{
		"CHAINHASH_ENVIRONMENT",
		"CHAINHASH_CAPACITY",
		"CHAINHASH_WORKERS",
	} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}

	path := filepath.Join(t.TempDir(), "empty.env")
	require.NoError(t, os.WriteFile(path, nil, 0o600))

	return path
}

func newTestEntrypoint(t *testing.T, fs afero.Fs, job Job) (*TableEntrypoint, *bytes.Buffer) {
	t.Helper()

	var out bytes.Buffer

	return &TableEntrypoint{
		ConfigPath: isolateEnv(t),
		Fs:         fs,
		Out:        &out,
		Log:        zap.NewNop().Sugar(),
		Job:        job,
	}, &out
}

func TestLoadJob(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "animals.txt", []byte("cat=V1\ndog=V2\ncat=V3\n"), 0o644))

	e, out := newTestEntrypoint(t, fs, LoadJob("animals.txt", []string{"cat", "dog", "bird"}))
	require.NoError(t, Run(context.Background(), e))

	assert.Equal(t, uint32(16), e.Table.Stats().Slots)
	assert.Equal(t, ""+
		"cat => V1\n"+
		"dog => V2\n"+
		"bird: not found\n"+
		"\n"+
		"slots:         16\n"+
		"entries:       3\n"+
		"used slots:    2\n"+
		"longest chain: 2\n"+
		"load factor:   0.188\n",
		out.String(),
	)
}

func TestLoadJob_MissingDataset(t *testing.T) {
	e, _ := newTestEntrypoint(t, afero.NewMemMapFs(), LoadJob("missing.txt", nil))
	require.Error(t, Run(context.Background(), e))
}

func TestFillJob(t *testing.T) {
	e, out := newTestEntrypoint(t, afero.NewMemMapFs(), FillJob(500))
	e.Capacity = optional.Some(10)
	e.JSON = true

	require.NoError(t, Run(context.Background(), e))

	var got struct {
		Stats struct {
			Slots   uint32 `json:"slots"`
			Entries int    `json:"entries"`
		} `json:"stats"`
	}
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))

	assert.Equal(t, uint32(100), got.Stats.Slots)
	assert.Equal(t, 500, got.Stats.Entries)
}

func TestFillJob_NegativeCount(t *testing.T) {
	e, _ := newTestEntrypoint(t, afero.NewMemMapFs(), FillJob(-1))
	require.Error(t, Run(context.Background(), e))
}

func TestTableEntrypoint_NoJob(t *testing.T) {
	e, _ := newTestEntrypoint(t, afero.NewMemMapFs(), nil)
	require.Error(t, Run(context.Background(), e))
}

func TestTableEntrypoint_CapacityOverride(t *testing.T) {
	t.Run("unset keeps the configured capacity", func(t *testing.T) {
		e, _ := newTestEntrypoint(t, afero.NewMemMapFs(), FillJob(1))
		require.NoError(t, Run(context.Background(), e))

		assert.Equal(t, uint32(16), e.Table.Stats().Slots)
	})

	for _, capacity := range []int{0, -3, hashtable.MaxRequestedCapacity + 1} {
		t.Run(fmt.Sprintf("invalid %d is rejected", capacity), func(t *testing.T) {
			e, out := newTestEntrypoint(t, afero.NewMemMapFs(), FillJob(1))
			e.Capacity = optional.Some(capacity)

			err := Run(context.Background(), e)
			require.ErrorIs(t, err, hashtable.ErrInvalidCapacity)
			assert.Nil(t, e.Table)
			assert.Empty(t, out.String())
		})
	}
}

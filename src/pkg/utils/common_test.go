package utils

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMust(t *testing.T) {
	t.Run("value passes through", func(t *testing.T) {
		assert.Equal(t, 42, Must(42, nil))
	})

	t.Run("error panics", func(t *testing.T) {
		err := errors.New("boom")
		assert.PanicsWithError(t, "boom", func() { Must(0, err) })
	})
}

func TestPairDestruct(t *testing.T) {
	first, second := Pair[string, int]{First: "cat", Second: 1}.Destruct()

	assert.Equal(t, "cat", first)
	assert.Equal(t, 1, second)
}

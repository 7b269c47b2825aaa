package utils

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChunkStrings(t *testing.T) {
	t.Run("divide preservando a ordem", func(t *testing.T) {
		items := make([]string, 1230)
		for i := range items {
			items[i] = fmt.Sprintf("id%d", i)
		}

		chunks := ChunkStrings(items, 500)

		require.Len(t, chunks, 3)
		assert.Len(t, chunks[0], 500)
		assert.Len(t, chunks[1], 500)
		assert.Len(t, chunks[2], 230)
		assert.Equal(t, "id0", chunks[0][0])
		assert.Equal(t, "id500", chunks[1][0])
		assert.Equal(t, "id1229", chunks[2][229])
	})

	t.Run("lista menor que o lote vira lote único", func(t *testing.T) {
		chunks := ChunkStrings([]string{"a", "b"}, 500)

		require.Len(t, chunks, 1)
		assert.Equal(t, []string{"a", "b"}, chunks[0])
	})

	t.Run("lista vazia não gera lotes", func(t *testing.T) {
		assert.Nil(t, ChunkStrings(nil, 500))
	})
}

package repositoryImp

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cropadvisor/database"
	"cropadvisor/entities"
)

func TestKBRepository(t *testing.T) {
	ctx := context.Background()
	db, err := database.OpenSQLite(filepath.Join(t.TempDir(), "kb.db"), nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close(db) })
	r := New(db)

	first := &entities.KBDocument{Title: "Wheat rust", Tags: "wheat,disease"}
	require.NoError(t, r.CreateDoc(ctx, first, []entities.KBChunk{{Ord: 0, Text: "yellow rust"}, {Ord: 1, Text: "brown rust"}}))
	second := &entities.KBDocument{Title: "Empty note"}
	require.NoError(t, r.CreateDoc(ctx, second, nil))

	docs, err := r.ListDocs(ctx)
	require.NoError(t, err)
	require.Len(t, docs, 2)
	assert.Equal(t, "Empty note", docs[0].Title, "newest first")

	chunks, err := r.AllChunks(ctx)
	require.NoError(t, err)
	require.Len(t, chunks, 2)
	assert.Equal(t, first.DocID, chunks[1].DocID)
	assert.Equal(t, 1, chunks[1].Ord)

	m, err := r.DocsByIDs(ctx, []uint{first.DocID, 999})
	require.NoError(t, err)
	assert.Len(t, m, 1)
	assert.Equal(t, "Wheat rust", m[first.DocID].Title)

	m, err = r.DocsByIDs(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, m)

	n, err := r.CountDocs(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 2, n)
}

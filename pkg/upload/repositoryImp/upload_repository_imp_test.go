package repositoryImp

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"cropadvisor/database"
	"cropadvisor/entities"
)

func openDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.OpenSQLite(filepath.Join(t.TempDir(), "test.db"), nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close(db) })
	return db
}

func TestUploadRepository(t *testing.T) {
	ctx := context.Background()
	r := New(openDB(t))

	require.NoError(t, r.Create(ctx, &entities.UploadRecord{ID: "a", Purpose: entities.UploadGeneral, Filename: "leaf.jpg", Size: 10}))
	require.NoError(t, r.Create(ctx, &entities.UploadRecord{ID: "b", Purpose: entities.UploadPestDetection, Filename: "boll.png"}))
	require.NoError(t, r.Create(ctx, &entities.UploadRecord{ID: "c", Purpose: entities.UploadPestDetection, Filename: "stem.png"}))

	require.NoError(t, r.SetResult(ctx, "b", "bollworm"))
	got, err := r.FindByID(ctx, "b")
	require.NoError(t, err)
	assert.Equal(t, "bollworm", got.Result)
	assert.Equal(t, "boll.png", got.Filename)

	assert.ErrorIs(t, r.SetResult(ctx, "zzz", "aphids"), gorm.ErrRecordNotFound)
	_, err = r.FindByID(ctx, "zzz")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	counts, err := r.CountByPurpose(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string]int64{entities.UploadGeneral: 1, entities.UploadPestDetection: 2}, counts)
}

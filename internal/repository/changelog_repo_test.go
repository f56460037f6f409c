package repository

import (
	"context"
	"sort"
	"sync"
	"testing"
	"time"

	"inventory-sync/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChangeLogRepository_BumpStartsAtOneAndIncrements(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewChangeLogRepository(db)
	txm := NewTransactionManager(db)
	actor := model.Actor{ID: "7", Role: "staff"}

	var versions []int64
	for i := 0; i < 3; i++ {
		err := txm.RunInTx(ctx, func(txCtx context.Context) error {
			v, err := repo.Bump(txCtx, 42, ChangeMeta{Actor: actor, UnitType: model.UnitPerPiece, At: time.Now().UTC()})
			versions = append(versions, v)
			return err
		})
		require.NoError(t, err)
	}
	assert.Equal(t, []int64{1, 2, 3}, versions)

	rec, err := repo.Get(ctx, 42)
	require.NoError(t, err)
	assert.Equal(t, "7", rec.ChangedByID)
	assert.Equal(t, "staff", rec.ChangedByRole)
}

func TestChangeLogRepository_ConcurrentBumpsAreGapless(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewChangeLogRepository(db)
	txm := NewTransactionManager(db)

	const n = 10
	var (
		wg  sync.WaitGroup
		mu  sync.Mutex
		got []int64
	)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := txm.RunInTx(ctx, func(txCtx context.Context) error {
				v, err := repo.Bump(txCtx, 1, ChangeMeta{Actor: model.SystemActor, At: time.Now().UTC()})
				if err != nil {
					return err
				}
				mu.Lock()
				got = append(got, v)
				mu.Unlock()
				return nil
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	sort.Slice(got, func(i, j int) bool { return got[i] < got[j] })
	for i, v := range got {
		assert.Equal(t, int64(i+1), v)
	}
}

func TestChangeLogRepository_SnapshotAndFeeds(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewChangeLogRepository(db)
	txm := NewTransactionManager(db)
	before := time.Now().UTC().Add(-time.Minute)

	price := "12.50"
	require.NoError(t, txm.RunInTx(ctx, func(txCtx context.Context) error {
		if _, err := repo.Bump(txCtx, 5, ChangeMeta{Actor: model.SystemActor, At: time.Now().UTC()}); err != nil {
			return err
		}
		return repo.SaveSnapshot(txCtx, 5, map[string]model.VariantSnapshot{
			"Red/2mm": {UnitType: model.UnitPerPiece, UnitPrice: &price, Stock: 50},
		})
	}))

	rec, err := repo.Get(ctx, 5)
	require.NoError(t, err)
	require.Contains(t, rec.Variants, "Red/2mm")
	assert.Equal(t, 50, rec.Variants["Red/2mm"].Stock)

	changed, err := repo.ChangedSince(ctx, before)
	require.NoError(t, err)
	require.Len(t, changed, 1)

	versions, err := repo.VersionMap(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[uint]int64{5: 1}, versions)

	mtime, err := repo.LatestMtime(ctx)
	require.NoError(t, err)
	assert.True(t, mtime.After(before))

	require.NoError(t, repo.MarkDeleted(ctx, 5, time.Now().UTC()))
	rec, err = repo.Get(ctx, 5)
	require.NoError(t, err)
	assert.True(t, rec.Deleted)
	assert.Equal(t, int64(1), rec.Version, "deletion does not bump the version")

	changed, err = repo.ChangedSince(ctx, before)
	require.NoError(t, err)
	assert.Empty(t, changed)
}

func TestChangeLogRepository_GetMissing(t *testing.T) {
	db := newTestDB(t)
	_, err := NewChangeLogRepository(db).Get(context.Background(), 3)
	assert.ErrorIs(t, err, ErrItemNotFound)

	mtime, err := NewChangeLogRepository(db).LatestMtime(context.Background())
	require.NoError(t, err)
	assert.True(t, mtime.IsZero())
}

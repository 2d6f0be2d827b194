package bolt

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.etcd.io/bbolt"

	"bakehouse/internal/domain/entity"
	"bakehouse/internal/domain/repository"
)

func openTestDB(t *testing.T) *bbolt.DB {
	t.Helper()

	db, err := bbolt.Open(filepath.Join(t.TempDir(), "test.db"), 0o600, &bbolt.Options{
		Timeout: time.Second,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, db.Update(func(tx *bbolt.Tx) error {
		for _, bucket := range [][]byte{productsBucket, fastFoodBucket, siteConfigBucket} {
			if _, err := tx.CreateBucketIfNotExists(bucket); err != nil {
				return err
			}
		}

		return nil
	}))

	return db
}

func TestProductRepository_CreateAndFind(t *testing.T) {
	repo := NewProductRepository(openTestDB(t))
	ctx := context.Background()

	item := &entity.Product{ID: "cake1", Name: "Chocolate Truffle Cake", Price: 799, Category: "Cakes"}
	require.NoError(t, repo.Create(ctx, item))
	assert.False(t, item.CreatedAt.IsZero(), "create stamps timestamps")

	found, err := repo.FindByID(ctx, "cake1")
	require.NoError(t, err)
	assert.Equal(t, item.Name, found.Name)
	assert.Equal(t, item.Price, found.Price)
}

func TestProductRepository_CreateDuplicate(t *testing.T) {
	repo := NewProductRepository(openTestDB(t))
	ctx := context.Background()

	item := &entity.Product{ID: "cake1", Name: "Chocolate Truffle Cake", Price: 799, Category: "Cakes"}
	require.NoError(t, repo.Create(ctx, item))

	err := repo.Create(ctx, &entity.Product{ID: "cake1", Name: "Impostor", Price: 1, Category: "Cakes"})
	assert.ErrorIs(t, err, repository.ErrDuplicateID)
}

func TestProductRepository_FindMissing(t *testing.T) {
	repo := NewProductRepository(openTestDB(t))

	_, err := repo.FindByID(context.Background(), "ghost")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestProductRepository_ListNewestFirst(t *testing.T) {
	repo := NewProductRepository(openTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &entity.Product{ID: "p1", Name: "First", Price: 10, Category: "Cakes"}))
	require.NoError(t, repo.Create(ctx, &entity.Product{ID: "p2", Name: "Second", Price: 20, Category: "Cakes"}))

	items, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.False(t, items[0].CreatedAt.Before(items[1].CreatedAt), "newest first")
}

func TestProductRepository_UpdateMissingIsNoop(t *testing.T) {
	repo := NewProductRepository(openTestDB(t))
	ctx := context.Background()

	err := repo.Update(ctx, &entity.Product{ID: "ghost", Name: "Nobody"})
	require.NoError(t, err)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count, "a missing-id update must not create a record")
}

func TestProductRepository_UpdatePreservesCreatedAt(t *testing.T) {
	repo := NewProductRepository(openTestDB(t))
	ctx := context.Background()

	item := &entity.Product{ID: "cake1", Name: "Original", Price: 100, Category: "Cakes"}
	require.NoError(t, repo.Create(ctx, item))
	created := item.CreatedAt

	require.NoError(t, repo.Update(ctx, &entity.Product{ID: "cake1", Name: "Renamed", Price: 150, Category: "Cakes"}))

	found, err := repo.FindByID(ctx, "cake1")
	require.NoError(t, err)
	assert.Equal(t, "Renamed", found.Name)
	assert.True(t, found.CreatedAt.Equal(created), "update keeps the original creation time")
}

func TestProductRepository_DeleteIdempotent(t *testing.T) {
	repo := NewProductRepository(openTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &entity.Product{ID: "cake1", Name: "Cake", Price: 1, Category: "Cakes"}))
	require.NoError(t, repo.Delete(ctx, "cake1"))
	require.NoError(t, repo.Delete(ctx, "cake1"), "deleting an absent id still succeeds")

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestSiteConfigRepository_RoundTrip(t *testing.T) {
	repo := NewSiteConfigRepository(openTestDB(t))
	ctx := context.Background()

	_, err := repo.Load(ctx)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	cfg := entity.DefaultSiteConfig()
	require.NoError(t, repo.Save(ctx, cfg))

	loaded, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, cfg.ShopName, loaded.ShopName)
	assert.Equal(t, cfg.ChefPrice, loaded.ChefPrice)
}

func TestFastFoodRepository_TierRoundTrip(t *testing.T) {
	repo := NewFastFoodRepository(openTestDB(t))
	ctx := context.Background()

	half := 0
	full := 50
	item := &entity.FastFoodItem{
		ID:       "ff1",
		Name:     "Steam Momos (Veg.)",
		Category: "Momos",
		Prices:   entity.PriceTiers{Half: &half, Full: &full},
	}
	require.NoError(t, repo.Create(ctx, item))

	found, err := repo.FindByID(ctx, "ff1")
	require.NoError(t, err)
	require.NotNil(t, found.Prices.Half)
	assert.Equal(t, 0, *found.Prices.Half, "a zero tier survives storage")
	require.NotNil(t, found.Prices.Full)
	assert.Equal(t, 50, *found.Prices.Full)

	// Withdrawing a tier clears it in storage.
	item.Prices.Half = nil
	require.NoError(t, repo.Update(ctx, item))

	found, err = repo.FindByID(ctx, "ff1")
	require.NoError(t, err)
	assert.Nil(t, found.Prices.Half)
}

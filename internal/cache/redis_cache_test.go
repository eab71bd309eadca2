package cache_test

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tokoretail/retail-platform/internal/cache"
	"github.com/tokoretail/retail-platform/internal/config"
	"github.com/tokoretail/retail-platform/internal/models"
)

func setup(t *testing.T) (cache.Cache, redismock.ClientMock, config.CacheConfig) {
	t.Helper()

	client, mock := redismock.NewClientMock()
	t.Cleanup(func() {
		client.Close()
	})

	cfg := config.CacheConfig{DefaultTTL: 10 * time.Minute}

	return cache.NewRedisCache(client, cfg), mock, cfg
}

func TestProductKeys(t *testing.T) {
	assert.Equal(t, "store:product:7", cache.ProductKey(7))
	assert.Equal(t, []string{cache.AvailableProductsKey, "store:product:1", "store:product:2"}, cache.ProductKeys(1, 2))
	assert.Equal(t, []string{cache.AvailableProductsKey}, cache.ProductKeys())
}

func TestGet(t *testing.T) {
	ctx := t.Context()
	key := cache.ProductKey(1)
	product := models.Product{ID: 1, Name: "Beras 5kg", UnitPrice: decimal.RequireFromString("72500.5"), StockQuantity: 12}
	jsonData, err := json.Marshal(product)
	require.NoError(t, err)

	t.Run("Success - Key found", func(t *testing.T) {
		redisCache, mock, _ := setup(t)
		mock.ExpectGet(key).SetVal(string(jsonData))

		var got models.Product
		found, err := redisCache.Get(ctx, key, &got)

		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, "Beras 5kg", got.Name)
		assert.True(t, product.UnitPrice.Equal(got.UnitPrice))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Success - Cache miss", func(t *testing.T) {
		redisCache, mock, _ := setup(t)
		mock.ExpectGet(key).SetErr(redis.Nil)

		var got models.Product
		found, err := redisCache.Get(ctx, key, &got)

		require.NoError(t, err)
		assert.False(t, found)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - Redis error", func(t *testing.T) {
		redisCache, mock, _ := setup(t)
		redisErr := errors.New("redis connection error")
		mock.ExpectGet(key).SetErr(redisErr)

		var got models.Product
		found, err := redisCache.Get(ctx, key, &got)

		assert.False(t, found)
		assert.ErrorIs(t, err, redisErr)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - Corrupt entry", func(t *testing.T) {
		redisCache, mock, _ := setup(t)
		mock.ExpectGet(key).SetVal(`{"id": "not-a-number"}`)

		var got models.Product
		found, err := redisCache.Get(ctx, key, &got)

		assert.False(t, found)
		var typeErr *json.UnmarshalTypeError
		assert.ErrorAs(t, err, &typeErr)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestSet(t *testing.T) {
	ctx := t.Context()
	products := []*models.Product{{ID: 1, Name: "Beras 5kg", StockQuantity: 12}}
	jsonData, err := json.Marshal(products)
	require.NoError(t, err)

	t.Run("Success - Explicit TTL", func(t *testing.T) {
		redisCache, mock, _ := setup(t)
		mock.ExpectSet(cache.AvailableProductsKey, jsonData, time.Minute).SetVal("OK")

		require.NoError(t, redisCache.Set(ctx, cache.AvailableProductsKey, products, time.Minute))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Success - Default TTL", func(t *testing.T) {
		redisCache, mock, cfg := setup(t)
		mock.ExpectSet(cache.AvailableProductsKey, jsonData, cfg.DefaultTTL).SetVal("OK")

		require.NoError(t, redisCache.Set(ctx, cache.AvailableProductsKey, products, 0))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - Marshal error", func(t *testing.T) {
		redisCache, mock, _ := setup(t)

		err := redisCache.Set(ctx, "bad", make(chan int), time.Minute)

		var jsonErr *json.UnsupportedTypeError
		assert.ErrorAs(t, err, &jsonErr)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestDelete(t *testing.T) {
	ctx := t.Context()
	keys := cache.ProductKeys(1, 2)

	t.Run("Success", func(t *testing.T) {
		redisCache, mock, _ := setup(t)
		mock.ExpectDel(keys...).SetVal(3)

		require.NoError(t, redisCache.Delete(ctx, keys...))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Success - No keys is a no-op", func(t *testing.T) {
		redisCache, mock, _ := setup(t)

		require.NoError(t, redisCache.Delete(ctx))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - Redis error", func(t *testing.T) {
		redisCache, mock, _ := setup(t)
		redisErr := errors.New("READONLY")
		mock.ExpectDel(keys...).SetErr(redisErr)

		err := redisCache.Delete(ctx, keys...)

		assert.ErrorIs(t, err, redisErr)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

package cache

import (
	"context"
	"strconv"
	"time"
)

// Cache stores JSON-encoded values by key. A miss is reported as
// found == false with a nil error.
type Cache interface {
	Get(ctx context.Context, key string, value any) (bool, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}

const (
	AvailableProductsKey = "store:products:available"
	ProductKeyPrefix     = "store:product"
)

func Key(prefix string, id string) string {
	return prefix + ":" + id
}

// ProductKey is the storefront cache key of a single product.
func ProductKey(id int64) string {
	return Key(ProductKeyPrefix, strconv.FormatInt(id, 10))
}

// ProductKeys returns the keys to invalidate when the given products change,
// always including the available-products listing.
func ProductKeys(ids ...int64) []string {
	keys := make([]string, 0, len(ids)+1)
	keys = append(keys, AvailableProductsKey)
	for _, id := range ids {
		keys = append(keys, ProductKey(id))
	}

	return keys
}

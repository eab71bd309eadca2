// Package mocks holds testify mocks of the cache interfaces.
package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/tokoretail/retail-platform/internal/testutils"
)

type Cache struct {
	mock.Mock
}

func (_m *Cache) Get(ctx context.Context, key string, value any) (bool, error) {
	ret := _m.Called(ctx, key, value)
	return testutils.Ret[bool](ret, 0), ret.Error(1)
}

func (_m *Cache) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	ret := _m.Called(ctx, key, value, ttl)
	return ret.Error(0)
}

func (_m *Cache) Delete(ctx context.Context, keys ...string) error {
	ret := _m.Called(ctx, keys)
	return ret.Error(0)
}

func NewCache(t testutils.TestingT) *Cache {
	m := &Cache{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

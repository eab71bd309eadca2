package repository

import (
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tokoretail/retail-platform/internal/config"
)

func setupRateLimiterTest(t *testing.T, now time.Time) (*redisRateLimiter, redismock.ClientMock) {
	t.Helper()

	client, mock := redismock.NewClientMock()
	t.Cleanup(func() {
		client.Close()
	})

	limiter := &redisRateLimiter{
		client: client,
		cfg:    config.RateConfig{MaxAttempts: 3, WindowSize: 15 * time.Second},
		now:    func() time.Time { return now },
	}

	return limiter, mock
}

func expectAttempt(mock redismock.ClientMock, key string, now time.Time, window time.Duration, count int64) {
	mock.ExpectZRemRangeByScore(key, "0", strconv.FormatInt(now.Add(-window).UnixNano(), 10)).SetVal(0)
	mock.ExpectZAdd(key, redis.Z{Score: float64(now.UnixNano()), Member: now.UnixNano()}).SetVal(1)
	mock.ExpectZCard(key).SetVal(count)
	mock.ExpectExpire(key, window).SetVal(true)
}

func TestCheckCheckoutRateLimit(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)
	key := checkoutAttemptsKey(5)

	t.Run("Success - Under the limit", func(t *testing.T) {
		limiter, mock := setupRateLimiterTest(t, now)
		expectAttempt(mock, key, now, limiter.cfg.WindowSize, 2)

		allowed, remaining, retryAfter, err := limiter.CheckCheckoutRateLimit(t.Context(), 5)

		require.NoError(t, err)
		assert.True(t, allowed)
		assert.Equal(t, 1, remaining)
		assert.Zero(t, retryAfter)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - Limit exceeded", func(t *testing.T) {
		limiter, mock := setupRateLimiterTest(t, now)
		expectAttempt(mock, key, now, limiter.cfg.WindowSize, 4)

		oldest := now.Add(-5 * time.Second)
		mock.ExpectZRangeWithScores(key, 0, 0).SetVal([]redis.Z{{Score: float64(oldest.UnixNano()), Member: oldest.UnixNano()}})

		allowed, remaining, retryAfter, err := limiter.CheckCheckoutRateLimit(t.Context(), 5)

		require.NoError(t, err)
		assert.False(t, allowed)
		assert.Zero(t, remaining)
		assert.Equal(t, 10, retryAfter)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - Redis unavailable", func(t *testing.T) {
		limiter, mock := setupRateLimiterTest(t, now)
		mock.ExpectZRemRangeByScore(key, "0", strconv.FormatInt(now.Add(-limiter.cfg.WindowSize).UnixNano(), 10)).SetErr(errors.New("connection refused"))

		allowed, _, _, err := limiter.CheckCheckoutRateLimit(t.Context(), 5)

		require.Error(t, err)
		assert.False(t, allowed)
	})
}

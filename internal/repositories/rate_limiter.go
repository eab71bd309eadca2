package repository

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/tokoretail/retail-platform/internal/config"
	"github.com/tokoretail/retail-platform/internal/requestctx"
)

// RateLimitRepository counts checkout attempts per customer in a sliding window.
type RateLimitRepository interface {
	CheckCheckoutRateLimit(ctx context.Context, customerID int64) (bool, int, int, error)
}

type redisRateLimiter struct {
	client *redis.Client
	cfg    config.RateConfig
	now    func() time.Time
}

func NewRedisClient(cfg *config.Config) (*redis.Client, error) {

	opt, err := redis.ParseURL(cfg.RedisConnect.GetDSN())
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	slog.Info("Connecting to Redis", slog.String("addr", opt.Addr), slog.Int("db", opt.DB))

	client := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	slog.Info("Connected to Redis")

	return client, nil
}

func NewRateLimitRepo(client *redis.Client, cfg config.RateConfig) RateLimitRepository {
	return &redisRateLimiter{client: client, cfg: cfg, now: time.Now}
}

func checkoutAttemptsKey(customerID int64) string {
	return "checkout_attempts:" + strconv.FormatInt(customerID, 10)
}

// CheckCheckoutRateLimit records an attempt and returns whether it is
// allowed, how many attempts remain and, when refused, the seconds until the
// oldest attempt leaves the window.
func (r *redisRateLimiter) CheckCheckoutRateLimit(ctx context.Context, customerID int64) (bool, int, int, error) {

	logger := requestctx.Logger(ctx)

	key := checkoutAttemptsKey(customerID)
	now := r.now()
	windowStart := now.Add(-r.cfg.WindowSize).UnixNano()

	pipe := r.client.Pipeline()
	pipe.ZRemRangeByScore(ctx, key, "0", strconv.FormatInt(windowStart, 10))
	pipe.ZAdd(ctx, key, redis.Z{Score: float64(now.UnixNano()), Member: now.UnixNano()})
	count := pipe.ZCard(ctx, key)
	pipe.Expire(ctx, key, r.cfg.WindowSize)

	if _, err := pipe.Exec(ctx); err != nil {
		return false, 0, 0, fmt.Errorf("redis pipeline error for rate limit check: %w", err)
	}

	attempts := count.Val()

	if attempts > r.cfg.MaxAttempts {

		scores, err := r.client.ZRangeWithScores(ctx, key, 0, 0).Result()
		if err != nil || len(scores) == 0 {
			return false, 0, int(r.cfg.WindowSize.Seconds()), fmt.Errorf("failed to get oldest attempt time: %w", err)
		}

		oldest := time.Unix(0, int64(scores[0].Score))
		retryAfter := max(int(oldest.Add(r.cfg.WindowSize).Sub(now).Seconds()), 1)

		logger.Warn("Checkout rate limit exceeded", slog.Int64("customerID", customerID), slog.Int64("attempts", attempts))
		return false, 0, retryAfter, nil
	}

	return true, int(r.cfg.MaxAttempts - attempts), 0, nil
}

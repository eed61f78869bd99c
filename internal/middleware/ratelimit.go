package middleware

import (
    "fmt"
    "net/http"
    "strconv"
    "time"

    "github.com/labstack/echo/v4"
    "github.com/redis/go-redis/v9"

    "github.com/medicore/hospital-api/internal/config"
)

// RateLimit returns a fixed-window limiter backed by Redis, applied to the
// public auth endpoints so signup/login cannot be hammered.  Each window is
// a single Redis counter keyed by client IP and route; the first hit in a
// window sets the expiry.  When Redis is unavailable the middleware lets
// requests through rather than taking the API down with it.
func RateLimit(cfg config.RateLimitConfig, rdb *redis.Client) echo.MiddlewareFunc {
    if !cfg.Enabled || rdb == nil {
        return func(next echo.HandlerFunc) echo.HandlerFunc {
            return func(c echo.Context) error { return next(c) }
        }
    }
    return func(next echo.HandlerFunc) echo.HandlerFunc {
        return func(c echo.Context) error {
            window := time.Now().Unix() / int64(cfg.Window/time.Second)
            key := fmt.Sprintf("%s:%s:%s:%d", cfg.Prefix, c.RealIP(), c.Path(), window)

            ctx := c.Request().Context()
            n, err := rdb.Incr(ctx, key).Result()
            if err != nil {
                // Redis down: fail open.
                return next(c)
            }
            if n == 1 {
                rdb.Expire(ctx, key, cfg.Window)
            }

            remaining := int64(cfg.Limit) - n
            if remaining < 0 {
                remaining = 0
            }
            c.Response().Header().Set("X-RateLimit-Limit", strconv.Itoa(cfg.Limit))
            c.Response().Header().Set("X-RateLimit-Remaining", strconv.FormatInt(remaining, 10))

            if n > int64(cfg.Limit) {
                retry := int(cfg.Window / time.Second)
                c.Response().Header().Set("Retry-After", strconv.Itoa(retry))
                return c.JSON(http.StatusTooManyRequests, echo.Map{
                    "message":     "Too many requests, slow down",
                    "retry_after": retry,
                })
            }
            return next(c)
        }
    }
}

package middleware

import (
    "bytes"
    "crypto/sha1"
    "fmt"
    "net/http"
    "time"

    "github.com/labstack/echo/v4"
    "github.com/redis/go-redis/v9"

    "github.com/medicore/hospital-api/internal/config"
)

// bodyRecorder captures the response body while forwarding it to the client
// so a successful JSON payload can be stored for later hits.
type bodyRecorder struct {
    http.ResponseWriter
    status int
    buf    bytes.Buffer
}

func (br *bodyRecorder) WriteHeader(code int) {
    br.status = code
    br.ResponseWriter.WriteHeader(code)
}

func (br *bodyRecorder) Write(b []byte) (int, error) {
    br.buf.Write(b)
    return br.ResponseWriter.Write(b)
}

// CacheGET returns a middleware that serves repeated GET requests for hot
// listings (doctors, specializations) straight from Redis.  Only 200
// responses are stored; anything else flows through untouched.  The key is a
// hash of route plus raw query so parameterized listings cache separately.
// Mutations elsewhere are not invalidated eagerly — the short TTL bounds the
// staleness window.
func CacheGET(cfg config.CacheConfig, rdb *redis.Client) echo.MiddlewareFunc {
    if !cfg.Enabled || rdb == nil {
        return func(next echo.HandlerFunc) echo.HandlerFunc {
            return func(c echo.Context) error { return next(c) }
        }
    }
    ttl := cfg.TTL
    if ttl <= 0 {
        ttl = 30 * time.Second
    }
    return func(next echo.HandlerFunc) echo.HandlerFunc {
        return func(c echo.Context) error {
            if c.Request().Method != http.MethodGet {
                return next(c)
            }
            sum := sha1.Sum([]byte(c.Path() + "?" + c.Request().URL.RawQuery))
            key := fmt.Sprintf("%s:%x", cfg.Prefix, sum)

            ctx := c.Request().Context()
            if cached, err := rdb.Get(ctx, key).Bytes(); err == nil {
                return c.JSONBlob(http.StatusOK, cached)
            }

            rec := &bodyRecorder{ResponseWriter: c.Response().Writer, status: http.StatusOK}
            c.Response().Writer = rec
            if err := next(c); err != nil {
                return err
            }
            if rec.status == http.StatusOK && rec.buf.Len() > 0 {
                // Best effort: a failed SET just means the next hit misses.
                rdb.Set(ctx, key, rec.buf.Bytes(), ttl)
            }
            return nil
        }
    }
}

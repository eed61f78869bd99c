package middleware // declare the middleware package; contains reusable HTTP middleware functions

import (
    "context"  // context carries request deadlines into the user lookup
    "errors"   // errors.Is distinguishes missing users from database failures
    "net/http" // HTTP status codes for responses
    "strings"  // string utilities for prefix checking and trimming
    "time"     // bounds the user lookup with a timeout

    "github.com/labstack/echo/v4" // Echo framework used for defining middleware and handlers

    "github.com/medicore/hospital-api/internal/model"
    "github.com/medicore/hospital-api/internal/repository"
    "github.com/medicore/hospital-api/internal/utils"
)

// UserStore is the slice of the user repository the auth middleware needs to
// resolve a token subject to a live identity.
type UserStore interface {
    GetByID(ctx context.Context, id string) (model.User, error)
}

// JWTAuth returns an Echo middleware that validates a Bearer token, resolves
// its subject against the users table, and injects identity and role into
// the request context.  Tokens referring to deleted users are rejected even
// when the signature is still valid.  Handlers can read `c.Get("user_id")`,
// `c.Get("role")` and `c.Get("user")` downstream.
func JWTAuth(secret string, users UserStore) echo.MiddlewareFunc {
    return func(next echo.HandlerFunc) echo.HandlerFunc {
        return func(c echo.Context) error {
            // A valid header starts with "Bearer " followed by the JWT.
            auth := c.Request().Header.Get("Authorization")
            if !strings.HasPrefix(auth, "Bearer ") {
                return c.JSON(http.StatusUnauthorized, echo.Map{"message": "Not authorized, no token"})
            }
            raw := strings.TrimPrefix(auth, "Bearer ")

            claims, err := utils.VerifyAuthToken(secret, raw)
            if err != nil {
                return c.JSON(http.StatusUnauthorized, echo.Map{"message": "Not authorized, token failed"})
            }

            // The subject must still exist: a signed token for a deleted
            // user is worthless.
            ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
            defer cancel()
            u, err := users.GetByID(ctx, claims.UserID)
            if err != nil {
                if errors.Is(err, repository.ErrNotFound) {
                    return c.JSON(http.StatusUnauthorized, echo.Map{"message": "Not authorized, user not found"})
                }
                return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Server error", "error": err.Error()})
            }

            // Store identity and role for handlers and downstream middleware.
            c.Set("user_id", claims.UserID)
            c.Set("role", claims.Role)
            c.Set("user", u)
            return next(c)
        }
    }
}

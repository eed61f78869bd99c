package utils // package utils provides helper functions for token creation and verification

import (
    "errors"
    "time" // time utilities for generating expirations

    "github.com/golang-jwt/jwt/v5" // JWT library for creating signed tokens
)

// AuthTokenTTL is the lifetime of every token the system issues.  The same
// 1-hour token doubles as session credential and account-confirmation token.
const AuthTokenTTL = time.Hour

// AuthToken represents a signed JWT along with its expiry.  The Token field
// contains the serialized JWT string; Exp stores the UTC expiration time.
type AuthToken struct {
    Token string    // the serialized JWT string
    Exp   time.Time // the UTC expiration time
}

// Claims are the decoded contents of an auth/confirmation token: the user
// identity and the role resolved (or requested) when the token was issued.
type Claims struct {
    UserID string
    Role   string
}

// ErrInvalidToken is returned by VerifyAuthToken for any malformed, badly
// signed or expired token.  Callers do not get to distinguish the cases.
var ErrInvalidToken = errors.New("invalid or expired token")

// NewAuthToken builds and signs an HS256 JWT for a user.  It takes the
// signing secret, the user ID and the user's role.  The JWT includes
// standard claims: subject (sub), role, expiration (exp) and issued at (iat).
func NewAuthToken(secret, userID, role string) (AuthToken, error) {
    exp := time.Now().UTC().Add(AuthTokenTTL)
    claims := jwt.MapClaims{
        "sub":  userID,
        "role": role,
        "exp":  exp.Unix(),
        "iat":  time.Now().UTC().Unix(),
    }
    t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
    signed, err := t.SignedString([]byte(secret))
    if err != nil {
        return AuthToken{}, err
    }
    return AuthToken{Token: signed, Exp: exp}, nil
}

// VerifyAuthToken parses and validates a token string, enforcing the HMAC
// signing method, and returns the embedded identity and role claims.
func VerifyAuthToken(secret, raw string) (Claims, error) {
    tok, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
        // Reject tokens signed with anything other than HMAC.
        if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
            return nil, ErrInvalidToken
        }
        return []byte(secret), nil
    })
    if err != nil || !tok.Valid {
        return Claims{}, ErrInvalidToken
    }
    mc, ok := tok.Claims.(jwt.MapClaims)
    if !ok {
        return Claims{}, ErrInvalidToken
    }
    sub, _ := mc["sub"].(string)
    role, _ := mc["role"].(string)
    if sub == "" || role == "" {
        return Claims{}, ErrInvalidToken
    }
    return Claims{UserID: sub, Role: role}, nil
}

// Package repository defines error types that are reused across multiple
// repositories.  These sentinel values allow higher layers such as
// handlers to distinguish between different failure scenarios.  For
// example, ErrNotFound indicates that a referenced entity is absent and
// should surface as HTTP 404, while ErrEmailExists signals a uniqueness
// violation on signup.
package repository

import (
    "errors"
    "strings"
)

// ErrNotFound is returned when a requested or referenced row does not
// exist.  Handlers should translate this into an HTTP 404 response.
var ErrNotFound = errors.New("not found")

// ErrEmailExists is returned when inserting a user whose email is already
// taken.  Surfaced as HTTP 400 ("User already exists") on signup.
var ErrEmailExists = errors.New("email already exists")

// ErrIdentityCardExists is returned when inserting a user whose identity
// card number collides with an existing row.
var ErrIdentityCardExists = errors.New("identity card number already exists")

// isDuplicate reports whether a MySQL error is a duplicate-key violation
// (error 1062) on the named key.
func isDuplicate(err error, key string) bool {
    if err == nil {
        return false
    }
    msg := strings.ToLower(err.Error())
    return strings.Contains(msg, "1062") && strings.Contains(msg, key)
}

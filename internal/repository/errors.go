// Package repository implements ownership-scoped data access over the
// relational store. The sentinel errors defined here let handlers
// distinguish failure scenarios without string matching.
package repository

import "errors"

// ErrNotFound is returned when an ownership-scoped lookup matches no row.
// A row that exists under a different owner also yields ErrNotFound, so
// callers cannot probe for other users' resources.
var ErrNotFound = errors.New("record not found")

// ErrEmailTaken is returned when creating a user with an email that is
// already registered. Handlers translate this into an HTTP 400 response.
var ErrEmailTaken = errors.New("email already registered")

// ErrForbidden is returned when the caller is authenticated but not
// allowed to perform the operation, such as reading another user's time
// statistics without the admin role. Handlers translate this into an
// HTTP 403 response.
var ErrForbidden = errors.New("forbidden")

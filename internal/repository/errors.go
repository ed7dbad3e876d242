// Package repository contains the data access layer, separated from the
// HTTP handlers. This file defines sentinel error values reused across
// repositories so higher layers can distinguish failure scenarios with
// errors.Is and translate them into distinct HTTP status codes.
package repository

import "errors"

// ErrEmailExists is returned when an insert would violate the unique
// constraint on users.email. Handlers translate it into HTTP 422.
var ErrEmailExists = errors.New("email already exists")

// ErrCityNotFound is returned when a referenced city does not exist.
// Handlers translate it into HTTP 404.
var ErrCityNotFound = errors.New("city not found")

// ErrPropertyNotFound is returned when a referenced property does not
// exist. Handlers translate it into HTTP 404.
var ErrPropertyNotFound = errors.New("property not found")

package models

import "errors"

var (
	// ErrNotFound is returned when a requested resource is not found.
	ErrNotFound = errors.New("resource not found")

	// ErrInvalidCredentials is returned when a login attempt does not match
	// any entry of the configured allow-list.
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrCredentialsUnavailable is returned when a feature that needs
	// configured credentials (login allow-list, mail transport) has none.
	ErrCredentialsUnavailable = errors.New("required credentials are not configured")

	// ErrMalformedSchema is returned when a reference or contacts table is
	// missing required columns, or contains no data rows after trimming.
	ErrMalformedSchema = errors.New("table is missing required columns or rows")

	// ErrRouteNotFound is returned when the routing provider answers but
	// reports no drivable route between the two addresses.
	ErrRouteNotFound = errors.New("no route found between the given addresses")

	// ErrProvider wraps transport or authorization failures when calling
	// the routing provider. The leg is abandoned; nothing is retried.
	ErrProvider = errors.New("routing provider request failed")
)

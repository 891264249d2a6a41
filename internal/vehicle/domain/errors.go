package domain

import "errors"

var (
	// ErrVehicleNotFound no vehicle matches the identifier (and, for
	// owner-scoped reads, the caller's username).
	ErrVehicleNotFound = errors.New("vehicle not found")

	// ErrOwnerNotFound the target owner username does not resolve to a user.
	ErrOwnerNotFound = errors.New("owner not found")

	// ErrOwnerNotDriver the target owner exists but is not a driver.
	ErrOwnerNotDriver = errors.New("owner is not a driver")
)

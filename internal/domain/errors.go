package domain

import "errors"

// ─── Sentinel Errors ────────────────────────────────────────────────────────
// The error surface is deliberately small: everything the engine reads is
// trusted, locally-generated data. Missing persisted values are defaults,
// never errors.

var (
	// Profile errors
	ErrProfileIncomplete = errors.New("profile is missing a required field")
	ErrProfileMissing    = errors.New("no profile has been created yet")

	// Intake log errors
	ErrUnknownCategory = errors.New("unknown intake category")

	// Daily metrics errors
	ErrNegativeMetric = errors.New("steps and sleep hours cannot be negative")
)

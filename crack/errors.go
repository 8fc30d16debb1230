package crack

import (
	"github.com/joomcode/errorx"
)

var (
	// Errors is the namespace of all recovery failures.
	Errors = errorx.NewNamespace("crack")

	// ErrSeedNotFound - every configured width was searched without a match.
	ErrSeedNotFound = Errors.NewType("seed_not_found", errorx.NotFound())
	// ErrCancelled - the context ended before the search finished.
	ErrCancelled = Errors.NewType("cancelled")
	// ErrInvalidOptions - width sequence is empty, unordered or out of range.
	ErrInvalidOptions = Errors.NewType("invalid_options")
)

var (
	// EKToken - token the search was run for.
	EKToken = errorx.RegisterProperty("token")
	// EKWidths - brute-force widths that were tried.
	EKWidths = errorx.RegisterProperty("widths")
)

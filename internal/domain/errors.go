package domain

import "errors"

// ErrDuplicatePayment reports a unique-constraint violation on a provider
// id. Two webhook deliveries racing for the same order surface it; callers
// treat it as a benign duplicate, not a failure.
var ErrDuplicatePayment = errors.New("payment already recorded")

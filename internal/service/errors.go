package service

import "errors"

// Sentinel errors the handlers translate into HTTP statuses. Services wrap
// them with fmt.Errorf("...: %w", ...) to add context.
var (
	ErrValidation      = errors.New("invalid input")
	ErrNotFound        = errors.New("resource not found")
	ErrAccessDenied    = errors.New("resource not owned by this business")
	ErrAccountInactive = errors.New("social account is inactive")
	ErrTokenExpired    = errors.New("social account token expired, reconnect the account")
	ErrUpstreamFetch   = errors.New("platform fetch failed")
	ErrQuotaExceeded   = errors.New("monthly generation quota exceeded")
	ErrLimitReached    = errors.New("scheduled post limit reached for this plan")
)

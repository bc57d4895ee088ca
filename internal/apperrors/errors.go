package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrQueryFailed indicates that the backing store rejected or timed out a
// ledger query. Engines recover from it locally: the failure is logged and
// the affected section degrades to empty/zero, never failing the report.
var ErrQueryFailed = errors.New("ledger query failed")

// ErrRender indicates a failure building the rendered view from otherwise
// valid computed data. It is surfaced to the end user as a visible error
// message in place of the report.
var ErrRender = errors.New("report rendering failed")

package gym

import (
	"errors"
	"fmt"
)

// Business failures. These are ordinary results: the shell maps them to
// messages and the session continues.
var (
	// ErrInvalidInput indicates a malformed value from the caller (bad
	// date, negative top-up, unknown country).
	ErrInvalidInput = errors.New("invalid input")
	// ErrNotFound indicates that no member record exists for the key.
	ErrNotFound = errors.New("member not found")
	// ErrDuplicateMember indicates a registration collision on the
	// derived storage key.
	ErrDuplicateMember = errors.New("member already registered")
	// ErrBadCredentials indicates a password digest mismatch.
	ErrBadCredentials = errors.New("wrong password")
	// ErrInsufficientFunds indicates the balance does not cover the fee.
	ErrInsufficientFunds = errors.New("insufficient funds")
	// ErrAlreadyReserved indicates the member already holds the date.
	ErrAlreadyReserved = errors.New("date already reserved")
	// ErrCapacityExceeded indicates the date is fully booked.
	ErrCapacityExceeded = errors.New("capacity exceeded")
	// ErrNoSession indicates an operation that requires a logged-in
	// member was called without one.
	ErrNoSession = errors.New("no active session")
)

// Operator-facing failure codes. The numbering comes from the legacy
// error table and is stable; codes whose condition can no longer occur
// (a missing record is a provisioning or business case now) were retired
// rather than renumbered.
const (
	CodeBadInput = 103
	CodeLoad     = 104
	CodeSave     = 105
	CodeDigest   = 106
)

// Fault is an unrecoverable failure of the environment (storage or digest
// algorithm), as opposed to a business rule rejection. It terminates the
// current operation; CodeDigest terminates the process.
type Fault struct {
	Code int
	Err  error
}

func (f *Fault) Error() string {
	return fmt.Sprintf("fault %d: %v", f.Code, f.Err)
}

func (f *Fault) Unwrap() error { return f.Err }

func newFault(code int, err error) *Fault {
	return &Fault{Code: code, Err: err}
}

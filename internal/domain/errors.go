package domain

import (
	"errors"
	"fmt"
)

// ErrorKind partitions failures by how a terminal should react: re-prompt,
// re-fetch state, fix input, or retry later. Storage errors are always
// wrapped, never surfaced raw.
type ErrorKind string

const (
	KindNotFound           ErrorKind = "NOT_FOUND"
	KindPreconditionFailed ErrorKind = "PRECONDITION_FAILED"
	KindValidationFailed   ErrorKind = "VALIDATION_FAILED"
	KindStoreUnavailable   ErrorKind = "STORE_UNAVAILABLE"
)

type Error struct {
	Kind    ErrorKind
	Message string
}

func (e *Error) Error() string { return e.Message }

var (
	ErrAssetNotFound          = &Error{Kind: KindNotFound, Message: "asset not found"}
	ErrLoanNotFound           = &Error{Kind: KindNotFound, Message: "loan not found"}
	ErrBorrowerNotFound       = &Error{Kind: KindNotFound, Message: "borrower not found"}
	ErrNoOpenLoan             = &Error{Kind: KindNotFound, Message: "no open loan for this asset"}
	ErrAssetAlreadyIssued     = &Error{Kind: KindPreconditionFailed, Message: "asset is already issued"}
	ErrAssetNotIssued         = &Error{Kind: KindPreconditionFailed, Message: "asset is not issued"}
	ErrAssetInUse             = &Error{Kind: KindPreconditionFailed, Message: "asset has an open loan"}
	ErrAssetCodeTaken         = &Error{Kind: KindPreconditionFailed, Message: "asset code is already in use"}
	ErrBorrowerCodeTaken      = &Error{Kind: KindPreconditionFailed, Message: "borrower code is already registered"}
	ErrLoanNotPendingReview   = &Error{Kind: KindPreconditionFailed, Message: "loan is not pending review"}
	ErrReturnAlreadyRequested = &Error{Kind: KindPreconditionFailed, Message: "return already requested for this asset"}
	ErrAssetMismatch          = &Error{Kind: KindPreconditionFailed, Message: "loan does not reference this asset"}
	ErrInvalidAssetCode       = &Error{Kind: KindValidationFailed, Message: "asset code must be exactly 4 characters"}
	ErrMissingTitle           = &Error{Kind: KindValidationFailed, Message: "asset title is required"}
	ErrMissingCategory        = &Error{Kind: KindValidationFailed, Message: "asset category is required"}
	ErrMissingBorrowerCode    = &Error{Kind: KindValidationFailed, Message: "borrower code is required"}
	ErrMissingRegistration    = &Error{Kind: KindValidationFailed, Message: "borrower registration details required"}

	// ErrStaleRecord reports that a conditional write found the record in a
	// different state than the one observed at read time. Services translate
	// it into the operation-specific precondition error.
	ErrStaleRecord = &Error{Kind: KindPreconditionFailed, Message: "record changed since it was read"}

	ErrStoreUnavailable = &Error{Kind: KindStoreUnavailable, Message: "storage unavailable"}
)

// StoreError wraps a raw storage failure so callers can match
// ErrStoreUnavailable while the cause stays in the chain.
func StoreError(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, ErrStoreUnavailable, err)
}

// KindOf extracts the taxonomy kind from err, or "" for untagged errors.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

package domain

import "errors"

var (
	ErrNotFound                = errors.New("resource not found")
	ErrUnauthorized            = errors.New("unauthorized")
	ErrForbidden               = errors.New("forbidden")
	ErrInvalidCredentials      = errors.New("invalid credentials")
	ErrUserInactive            = errors.New("user is inactive")
	ErrDoctorNotFound          = errors.New("doctor not found")
	ErrProductNotFound         = errors.New("product not found")
	ErrProductInactive         = errors.New("product is not being promoted")
	ErrFieldRepNotFound        = errors.New("field rep not found")
	ErrFieldRepInactive        = errors.New("field rep is inactive")
	ErrApprovalNotFound        = errors.New("approval not found")
	ErrApprovalNotPending      = errors.New("approval is no longer pending")
	ErrRejectionReasonRequired = errors.New("rejection reason is required")
	ErrTaskNotFound            = errors.New("task not found")
	ErrTaskNotPending          = errors.New("task is already completed")
	ErrInvalidTime             = errors.New("time must be HH:MM")
	ErrInvalidCoordinates      = errors.New("coordinates out of range")
	ErrInvalidDate             = errors.New("date must be YYYY-MM-DD")
	ErrInvalidMonth            = errors.New("month must be YYYY-MM")
	ErrInvalidAmount           = errors.New("amounts must not be negative")
	ErrInvalidStatus           = errors.New("invalid status")
	ErrDuplicateID             = errors.New("id already exists")
	ErrDuplicateUsername       = errors.New("username already exists")
	ErrUploadFailed            = errors.New("report upload to storage failed")
)

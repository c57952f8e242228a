package errs

import "errors"

// Sentinel errors shared by the usecase layers. Every validation failure of
// the booking engine maps onto exactly one of these; handlers translate them
// into transport responses with errors.Is.
var (
	// Interval / date validation
	ErrInvalidInterval = errors.New("end time must be after start time")
	ErrPastDate        = errors.New("cannot book a past date")
	ErrInvalidDate     = errors.New("invalid date format")

	// Lookups
	ErrResourceNotFound = errors.New("resource not found")
	ErrBookingNotFound  = errors.New("booking not found")
	ErrUserNotFound     = errors.New("user not found")

	// Booking rules
	ErrResourceUnavailable = errors.New("resource is not available for booking")
	ErrSlotConflict        = errors.New("time slot conflicts with an existing booking")
	ErrIllegalTransition   = errors.New("booking status does not allow this transition")
	ErrInvalidStatus       = errors.New("invalid booking status")

	// Authorization
	ErrUnauthorized       = errors.New("not allowed to access this booking")
	ErrInvalidCredentials = errors.New("invalid email or password")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)

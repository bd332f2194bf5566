package utils

import "errors"

// Machine-readable error codes carried on every error response. Clients
// switch on these, never on message text.
const (
	CodeUnauthenticated       = "UNAUTHENTICATED"
	CodeInvalidToken          = "INVALID_TOKEN"
	CodeInvalidCredentials    = "INVALID_CREDENTIALS"
	CodeAccountBlocked        = "ACCOUNT_BLOCKED"
	CodeForbidden             = "FORBIDDEN"
	CodeInsufficientPrivilege = "INSUFFICIENT_PRIVILEGE"
	CodeNotFound              = "NOT_FOUND"
	CodeValidationError       = "VALIDATION_ERROR"
	CodeEmailTaken            = "EMAIL_TAKEN"
	CodeCourseExists          = "COURSE_EXISTS"
	CodeInternalError         = "INTERNAL_ERROR"
)

// BlockedAccountMessage is the user-facing text on ACCOUNT_BLOCKED responses.
const BlockedAccountMessage = "Your account has been blocked. Please contact the administrator"

var (
	ErrAccountNotFound    = errors.New("account not found")
	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrAccountBlocked     = errors.New("account blocked")
	ErrWrongPassword      = errors.New("current password is incorrect")

	ErrCourseNotFound = errors.New("course not found")
	ErrCourseExists   = errors.New("course title or code already exists")

	ErrFeedbackNotFound = errors.New("feedback not found")
	ErrInvalidRating    = errors.New("rating must be between 1 and 5")

	ErrInvalidPage     = errors.New("invalid page parameter")
	ErrInvalidPageSize = errors.New("invalid page size parameter")
	ErrDatabaseError   = errors.New("database error")
)

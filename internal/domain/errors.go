package domain

import "errors"

type ErrorCode string

const (
	ErrorCodeInvalidRequest         ErrorCode = "INVALID_REQUEST"
	ErrorCodeInvalidExperienceRange ErrorCode = "INVALID_EXPERIENCE_RANGE"
	ErrorCodeDuplicateMemberID      ErrorCode = "DUPLICATE_MEMBER_ID"
	ErrorCodeNotFound               ErrorCode = "NOT_FOUND"
	ErrorCodeInternal               ErrorCode = "INTERNAL_ERROR"
)

var defaultMessages = map[ErrorCode]string{
	ErrorCodeInvalidRequest:         "invalid request",
	ErrorCodeInvalidExperienceRange: "experience years do not match developer level",
	ErrorCodeDuplicateMemberID:      "member id already exists",
	ErrorCodeNotFound:               "developer not found",
	ErrorCodeInternal:               "internal server error",
}

// DefaultMessage returns the client-facing message for code.
func (c ErrorCode) DefaultMessage() string {
	if msg, ok := defaultMessages[c]; ok {
		return msg
	}
	return defaultMessages[ErrorCodeInternal]
}

type DomainError struct {
	Code    ErrorCode
	Message string
}

func NewDomainError(code ErrorCode, message string) *DomainError {
	if message == "" {
		message = code.DefaultMessage()
	}
	return &DomainError{Code: code, Message: message}
}

func (e *DomainError) Error() string {
	return string(e.Code) + ": " + e.Message
}

// IsCode reports whether err carries a DomainError with the given code.
func IsCode(err error, code ErrorCode) bool {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Code == code
	}
	return false
}

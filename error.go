package websum

import (
	"errors"
	"fmt"
)

// Application error codes.
const (
	EINTERNAL = "internal"
	EINVALID  = "invalid"
	EFETCH    = "fetch"
	ECONTENT  = "content"
	ESUMMARY  = "summary"
)

// Error represents an application-specific error. Message is safe to show
// to an end user once it has passed through UserMessage.
type Error struct {
	Code    string
	Message string
}

// Error implements the error interface. Not used by the application otherwise.
func (e *Error) Error() string {
	return fmt.Sprintf("websum error: code=%s message=%s", e.Code, e.Message)
}

// ErrorCode unwraps an application error and returns its code.
// Non-application errors always return EINTERNAL.
func ErrorCode(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Code
	}
	return EINTERNAL
}

// ErrorMessage unwraps an application error and returns its message.
// Non-application errors return the error text.
func ErrorMessage(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}

// Errorf is a helper function to return an Error with a given code and formatted message.
func Errorf(code string, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// UserMessage translates err into the text shown on the result page.
// Fetch failures and processing failures get distinct prefixes; invalid
// input is shown as is.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	switch ErrorCode(err) {
	case EINVALID:
		return ErrorMessage(err)
	case EFETCH:
		return "Failed to fetch website: " + ErrorMessage(err)
	default:
		return "Error processing website: " + ErrorMessage(err)
	}
}

package errors

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorType is the stable identifier sent to clients in error payloads.
type ErrorType string

const (
	TypeUsernameAlreadyExists     ErrorType = "USERNAME_ALREADY_EXISTS"
	TypeUserInputError            ErrorType = "USER_INPUT_ERROR"
	TypeLoginFail                 ErrorType = "LOGIN_FAIL"
	TypeInsufficientCredentials   ErrorType = "INSUFFICIENT_CREDENTIALS"
	TypeAccessDenied              ErrorType = "ACCESS_DENIED"
	TypeAuthenticationFail        ErrorType = "AUTHENTICATION_FAIL"
	TypeApplicationAlreadyHandled ErrorType = "APPLICATION_ALREADY_HANDLED"
	TypeApplicantNotFound         ErrorType = "APPLICANT_NOT_FOUND"
	TypePageDoesNotExist          ErrorType = "PAGE_DOES_NOT_EXIST"
	TypeServerInternal            ErrorType = "SERVER_INTERNAL"
)

var (
	ErrInvalidCredentials        = errors.New("person with given credentials does not exist")
	ErrUsernameAlreadyExists     = errors.New("username already exists")
	ErrMissingSession            = errors.New("full authentication is required to access this resource")
	ErrAccessDenied              = errors.New("access denied")
	ErrReauthenticationFailed    = errors.New("authentication of logged in user failed")
	ErrApplicationAlreadyHandled = errors.New("application has already been handled")
	ErrApplicantNotFound         = errors.New("applicant not found")
)

// FieldError describes one rejected request field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError is returned when a request body is malformed or fails
// its field constraints.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "invalid request body"
	}
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, f.Message)
	}
	return strings.Join(msgs, " ")
}

// LoggingError reports a failure of the event/error log sink.
type LoggingError struct {
	Path string
	Err  error
}

func (e *LoggingError) Error() string {
	return fmt.Sprintf("logger failed to write to %s: %v", e.Path, e.Err)
}

func (e *LoggingError) Unwrap() error {
	return e.Err
}

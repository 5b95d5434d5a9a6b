package apperrors

import "errors"

type Code string

const (
	CodeValidationError      Code = "VALIDATION_ERROR"
	CodeInvalidTimezone      Code = "INVALID_TIMEZONE"
	CodeInvalidDateFormat    Code = "INVALID_DATE_FORMAT"
	CodeInvalidTimeFormat    Code = "INVALID_TIME_FORMAT"
	CodePollNotFound         Code = "POLL_NOT_FOUND"
	CodeParticipantNotFound  Code = "PARTICIPANT_NOT_FOUND"
	CodeTimeSlotNotFound     Code = "TIME_SLOT_NOT_FOUND"
	CodeDatabaseError        Code = "DATABASE_ERROR"
	CodeDuplicateParticipant Code = "DUPLICATE_PARTICIPANT"
	CodeInvalidAvailability  Code = "INVALID_AVAILABILITY"
	CodeInternalServerError  Code = "INTERNAL_SERVER_ERROR"
	CodeBadRequest           Code = "BAD_REQUEST"
)

var defaultMessages = map[Code]string{
	CodeValidationError:      "Please check your input and try again.",
	CodeInvalidTimezone:      "The selected timezone is not valid.",
	CodeInvalidDateFormat:    "Please enter a valid date.",
	CodeInvalidTimeFormat:    "Please enter a valid time.",
	CodePollNotFound:         "The requested poll could not be found.",
	CodeParticipantNotFound:  "Participant not found.",
	CodeTimeSlotNotFound:     "Time slot not found.",
	CodeDatabaseError:        "A database error occurred. Please try again.",
	CodeDuplicateParticipant: "A participant with this email already exists.",
	CodeInvalidAvailability:  "Invalid availability data provided.",
	CodeInternalServerError:  "An unexpected error occurred.",
	CodeBadRequest:           "Invalid request. Please check your input.",
}

// Error is the API error type carried from repositories and validation up
// to the route boundary, where it is rendered as an error envelope with
// its HTTP status.
type Error struct {
	StatusCode int
	Code       Code
	Message    string
	Details    map[string]string
}

func (e *Error) Error() string {
	return e.Message
}

// New builds an Error with the default message for code when message is
// empty.
func New(statusCode int, code Code, message string) *Error {
	if message == "" {
		message = defaultMessages[code]
	}

	return &Error{
		StatusCode: statusCode,
		Code:       code,
		Message:    message,
	}
}

// NewWithDetails attaches field-path-keyed messages, used for validation
// failures.
func NewWithDetails(statusCode int, code Code, message string, details map[string]string) *Error {
	err := New(statusCode, code, message)
	err.Details = details
	return err
}

// From unwraps err into an *Error if one is anywhere in its chain.
func From(err error) (*Error, bool) {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

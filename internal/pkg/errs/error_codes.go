/*
Package errs provides custom error types and application-level error code constants.

These error codes identify specific business or system errors both
internally and in responses sent to clients.
*/
package errs

// 1xxx: General Request Handling Errors
const (
	// ErrInvalidParams indicates that request parameter validation failed.
	ErrInvalidParams = 1001

	// ErrUnsupportedMediaType indicates that the request Content-Type is not supported.
	ErrUnsupportedMediaType = 1002

	// ErrInvalidJSONFormat indicates that the request body is not well-formed JSON.
	ErrInvalidJSONFormat = 1003

	// ErrExtraContentInBody indicates trailing content after the JSON document.
	ErrExtraContentInBody = 1004
)

// 2xxx: User and Message Business Logic Errors
const (
	// ErrInvalidUsername indicates that the supplied display name is empty or too long.
	ErrInvalidUsername = 2101

	// ErrUserNameTaken indicates that the display name is already registered.
	ErrUserNameTaken = 2102

	// ErrUserNotFound indicates that the referenced user does not exist.
	ErrUserNotFound = 2103

	// ErrInvalidMessageText indicates that the message text is missing or blank.
	ErrInvalidMessageText = 2201

	// ErrMessageTextTooLong indicates that the message text exceeded the length limit.
	ErrMessageTextTooLong = 2202
)

// 4xxx: Upstream Service Errors
const (
	// ErrSentimentUnavailable indicates that the sentiment classifier rejected
	// or never received the classification job.
	ErrSentimentUnavailable = 4001
)

// 5xxx: Internal System Errors
const (
	// ErrUnknown represents an unclassified, general server internal error.
	ErrUnknown = 5000
)

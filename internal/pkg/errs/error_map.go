/*
Package errs provides custom error types and application-level error code constants.

This file defines the map from error codes to the CustomError struct, used to
standardize HTTP responses and internal error handling.
*/
package errs

import "net/http"

// errorMap stores the CustomError template for every application error code.
// Messages containing printf placeholders are filled from the details passed
// to NewError.
var errorMap = map[int]CustomError{
	// 1xxx: General Request Handling Errors
	ErrInvalidParams:        {Code: ErrInvalidParams, Message: "Invalid request parameters.", Status: http.StatusBadRequest},
	ErrUnsupportedMediaType: {Code: ErrUnsupportedMediaType, Message: "Unsupported request format.", Status: http.StatusUnsupportedMediaType},
	ErrInvalidJSONFormat:    {Code: ErrInvalidJSONFormat, Message: "Request body is not valid JSON.", Status: http.StatusBadRequest},
	ErrExtraContentInBody:   {Code: ErrExtraContentInBody, Message: "Request contains unexpected data.", Status: http.StatusBadRequest},

	// 2xxx: User and Message Business Logic Errors
	ErrInvalidUsername:    {Code: ErrInvalidUsername, Message: "Invalid username.", Status: http.StatusBadRequest},
	ErrUserNameTaken:      {Code: ErrUserNameTaken, Message: "Username is already taken.", Status: http.StatusConflict},
	ErrUserNotFound:       {Code: ErrUserNotFound, Message: "User not found.", Status: http.StatusBadRequest},
	ErrInvalidMessageText: {Code: ErrInvalidMessageText, Message: "Message text must not be empty.", Status: http.StatusBadRequest},
	ErrMessageTextTooLong: {Code: ErrMessageTextTooLong, Message: "Message is too long.", Status: http.StatusBadRequest},

	// 4xxx: Upstream Service Errors
	ErrSentimentUnavailable: {Code: ErrSentimentUnavailable, Message: "Sentiment service unavailable. Status: %d, Body: %s", Status: http.StatusBadGateway},

	// 5xxx: Internal System Errors
	ErrUnknown: {Code: ErrUnknown, Message: "Something went wrong. Please try again.", Status: http.StatusInternalServerError},
}

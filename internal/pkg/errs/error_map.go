/*
Package errs provides custom error types and application-level error code constants.

This file defines the map from error codes to the CustomError struct, used to standardize
status-line notifications and internal error handling.
*/
package errs

import "net/http"

// errorMap stores the detailed CustomError struct corresponding to every application error code.
// The key is the error code (int), and the value contains the user message and, where the error
// originates from an HTTP exchange, the associated status code.
var errorMap = map[int]CustomError{
	// 1xxx: Client-Side Validation Errors
	ErrUserIDMissing:       {Code: ErrUserIDMissing, Message: "You must provide an userId."},
	ErrUserIDTooShort:      {Code: ErrUserIDTooShort, Message: "UserId must be more than 6 characters."},
	ErrNameMissing:         {Code: ErrNameMissing, Message: "Name field is mandatory."},
	ErrEmailMissing:        {Code: ErrEmailMissing, Message: "Email field is mandatory."},
	ErrEmailInvalid:        {Code: ErrEmailInvalid, Message: "Invalid Email."},
	ErrPhoneMissing:        {Code: ErrPhoneMissing, Message: "Phone field is mandatory."},
	ErrPhoneInvalid:        {Code: ErrPhoneInvalid, Message: "Please provide a valid phone number."},
	ErrNoRecipient:         {Code: ErrNoRecipient, Message: "Select a user."},
	ErrImageFileUnreadable: {Code: ErrImageFileUnreadable, Message: "Cannot read that image file."},
	ErrImageTypeInvalid:    {Code: ErrImageTypeInvalid, Message: "That file type cannot be sent as an image."},
	ErrImageTooLarge:       {Code: ErrImageTooLarge, Message: "Image is too large (max %d MB)."},

	// 2xxx: API and Transport Errors
	ErrAPIUnreachable: {Code: ErrAPIUnreachable, Message: "Cannot reach the server."},
	ErrAPIBadStatus:   {Code: ErrAPIBadStatus, Message: "The server rejected the request."},
	ErrAPIBadPayload:  {Code: ErrAPIBadPayload, Message: "Unexpected response from the server."},
	ErrUnauthorized:   {Code: ErrUnauthorized, Message: "Please sign in to continue.", Status: http.StatusUnauthorized},
	ErrDecodeFailed:   {Code: ErrDecodeFailed, Message: "Could not unlock the hidden message."},

	// 3xxx: Realtime Channel Errors
	ErrSocketClosed:  {Code: ErrSocketClosed, Message: "Realtime connection is down."},
	ErrSendQueueFull: {Code: ErrSendQueueFull, Message: "Realtime connection is congested."},

	// 5xxx: Internal Errors
	ErrUnknown: {Code: ErrUnknown, Message: "Something went wrong. Please try again.", Status: http.StatusInternalServerError},
}

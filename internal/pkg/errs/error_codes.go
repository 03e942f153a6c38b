/*
Package errs provides custom error types and application-level error code constants.

These error codes are used to clearly identify specific validation, network, or
realtime-channel failures both internally within the client and on the status line
shown to the user.
*/
package errs

// 1xxx: Client-Side Validation Errors
const (
	// ErrUserIDMissing indicates that the userId form field was left empty.
	ErrUserIDMissing = 1001

	// ErrUserIDTooShort indicates that the userId form field is shorter than the minimum length.
	ErrUserIDTooShort = 1002

	// ErrNameMissing indicates that the name form field was left empty.
	ErrNameMissing = 1003

	// ErrEmailMissing indicates that the email form field was left empty.
	ErrEmailMissing = 1004

	// ErrEmailInvalid indicates that the email form field does not look like an email address.
	ErrEmailInvalid = 1005

	// ErrPhoneMissing indicates that the phone form field was left empty.
	ErrPhoneMissing = 1006

	// ErrPhoneInvalid indicates that the phone form field is not exactly ten characters.
	ErrPhoneInvalid = 1007

	// ErrNoRecipient indicates that a send was attempted with no conversation selected.
	ErrNoRecipient = 1101

	// ErrImageFileUnreadable indicates that the chosen image file could not be opened or read.
	ErrImageFileUnreadable = 1102

	// ErrImageTypeInvalid indicates that the chosen file is not an allowed image type.
	ErrImageTypeInvalid = 1103

	// ErrImageTooLarge indicates that the chosen image file exceeds the size limit.
	ErrImageTooLarge = 1104
)

// 2xxx: API and Transport Errors
const (
	// ErrAPIUnreachable indicates that the backend API could not be reached.
	ErrAPIUnreachable = 2001

	// ErrAPIBadStatus indicates that the backend API answered with an unexpected status.
	ErrAPIBadStatus = 2002

	// ErrAPIBadPayload indicates that the backend API answered with a body the client could not parse.
	ErrAPIBadPayload = 2003

	// ErrUnauthorized indicates that the session token was missing, expired, or rejected.
	ErrUnauthorized = 2004

	// ErrDecodeFailed indicates that unlocking a hidden message failed (wrong passphrase or server error).
	ErrDecodeFailed = 2101
)

// 3xxx: Realtime Channel Errors
const (
	// ErrSocketClosed indicates that the realtime channel is not connected.
	ErrSocketClosed = 3001

	// ErrSendQueueFull indicates that an outbound realtime emit was dropped because the queue was full.
	ErrSendQueueFull = 3002
)

// 5xxx: Internal Errors
const (
	// ErrUnknown represents an unclassified, general client internal error.
	ErrUnknown = 5000
)

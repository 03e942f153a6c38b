/*
Package user contains the core data structure for user identity.

It defines the basic representation of a user within the messaging system (the User
struct), used for the current session, presence lists, and conversation counterparts.
*/
package user

// User types recognized by the backend.
const (
	TypeStudent  = "student"
	TypeEducator = "educator"
)

// User represents the identity record of a participant. All fields are optional
// until populated after authentication; an empty UserID means "nobody".
// Field names mirror the backend API JSON.
type User struct {

	// UserID is the unique, user-chosen identifier.
	UserID string `json:"userId,omitempty"`

	// Name is the display name.
	Name string `json:"name,omitempty"`

	// Email is the account email address.
	Email string `json:"email,omitempty"`

	// Phone is the account phone number.
	Phone string `json:"phone,omitempty"`

	// Bio is the free-form profile text.
	Bio string `json:"bio,omitempty"`

	// UserType defines the role of the participant (TypeStudent or TypeEducator).
	UserType string `json:"userType,omitempty"`

	// Avatar is the URL for the user's avatar image.
	Avatar string `json:"avatar,omitempty"`

	// EmailVerified reports whether the backend has verified the email address.
	EmailVerified bool `json:"emailVerified,omitempty"`

	// PhoneVerified reports whether the backend has verified the phone number.
	PhoneVerified bool `json:"phoneVerified,omitempty"`
}

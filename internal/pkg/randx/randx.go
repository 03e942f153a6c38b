/*
Package randx provides functions for generating unique client-side identifiers.

It is primarily used to tag optimistically rendered messages with a temporary ID
before the server-side document exists.
*/
package randx

import "github.com/google/uuid"

// TempIDPrefix is the prefix attached to client-generated temporary message IDs,
// making them easy to tell apart from server-issued identifiers in logs.
const TempIDPrefix = "tmp_"

// TempMessageID generates a temporary identifier for an optimistic message.
func TempMessageID() string {
	return TempIDPrefix + uuid.NewString()
}

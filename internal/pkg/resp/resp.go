/*
Package resp provides helper functions for consuming HTTP JSON responses.

It maps non-success statuses onto the application's error taxonomy and decodes
JSON bodies with a size cap, so every API call reports failures uniformly.
*/
package resp

import (
	"encoding/json"
	"io"
	"net/http"

	"hushchat/internal/pkg/errs"
)

// MaxResponseBytes caps how much of a response body the client will read (4 MB).
const MaxResponseBytes int64 = 4 << 20

// CheckStatus maps a non-2xx response onto a CustomError. Authentication
// failures (401/403) become ErrUnauthorized so callers can discard the session
// token; everything else becomes ErrAPIBadStatus carrying the HTTP status.
func CheckStatus(res *http.Response) *errs.CustomError {
	if res.StatusCode >= 200 && res.StatusCode < 300 {
		return nil
	}

	if res.StatusCode == http.StatusUnauthorized || res.StatusCode == http.StatusForbidden {
		return errs.NewError(errs.ErrUnauthorized)
	}

	badStatus := errs.NewError(errs.ErrAPIBadStatus)
	badStatus.Status = res.StatusCode

	return badStatus
}

// DecodeJSON reads and decodes the response body into dst, enforcing the
// size cap. The body is fully drained so the connection can be reused.
func DecodeJSON(res *http.Response, dst any) *errs.CustomError {
	limited := io.LimitReader(res.Body, MaxResponseBytes)

	decoder := json.NewDecoder(limited)
	if err := decoder.Decode(dst); err != nil {
		return errs.NewError(errs.ErrAPIBadPayload)
	}

	io.Copy(io.Discard, limited)

	return nil
}

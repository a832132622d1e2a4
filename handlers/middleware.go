package handlers

import (
	"net/http"

	"github.com/pocketbase/pocketbase/core"
)

// RequireUser rejects requests that carry no authenticated user record.
// Login happens through HandleLogin; the issued token travels in the
// standard Authorization header and PocketBase resolves it onto e.Auth.
func RequireUser() func(e *core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if e.Auth == nil {
			return ErrorNotice(e, http.StatusUnauthorized, "請先登入系統")
		}
		return e.Next()
	}
}

// authorID returns the id of the authenticated user, or "system" for
// server-initiated writes (seeding, migrations).
func authorID(e *core.RequestEvent) string {
	if e.Auth != nil {
		return e.Auth.Id
	}
	return "system"
}

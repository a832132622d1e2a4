package handlers

import (
	"log"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/apis"
	"github.com/pocketbase/pocketbase/core"

	"mrtrepair/services"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r loginRequest) validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email, validation.Required, is.EmailFormat),
		validation.Field(&r.Password, validation.Required),
	)
}

// HandleLogin authenticates an email+password credential pair against the
// users auth collection and returns the standard auth token response.
// Provider failures are mapped onto the canonical diagnostic codes so the
// client always shows one of the fixed user-facing messages.
// Route: POST /api/repair/auth/login
func HandleLogin(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		var req loginRequest
		if err := e.BindBody(&req); err != nil {
			return authFailure(e, services.AuthErrInvalidCredential)
		}
		if err := req.validate(); err != nil {
			return authFailure(e, services.AuthErrInvalidCredential)
		}

		record, err := app.FindAuthRecordByEmail("users", req.Email)
		if err != nil {
			return authFailure(e, services.AuthErrUserNotFound)
		}

		if !record.ValidatePassword(req.Password) {
			return authFailure(e, services.AuthErrWrongPassword)
		}

		return apis.RecordAuthResponse(e, record, "password", nil)
	}
}

// authFailure returns the diagnostic code plus its mapped message, the way
// the login screen presents failures.
func authFailure(e *core.RequestEvent, code string) error {
	log.Printf("auth: login failed with code %s", code)
	return e.JSON(http.StatusUnauthorized, map[string]any{
		"code":   code,
		"notice": Notice{Type: "error", Message: services.AuthErrorMessage(code)},
	})
}

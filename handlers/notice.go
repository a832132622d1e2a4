// Package handlers exposes the JSON API of the repair-case tracker on
// PocketBase custom routes.
package handlers

import (
	"net/http"

	"github.com/pocketbase/pocketbase/core"
)

// Notice is the toast-style user notification attached to API responses.
// The client renders it transiently; the type selects the visual treatment.
type Notice struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

// NoticeResponse writes a JSON body carrying only a notice.
func NoticeResponse(e *core.RequestEvent, status int, noticeType, message string) error {
	return e.JSON(status, map[string]any{
		"notice": Notice{Type: noticeType, Message: message},
	})
}

// ErrorNotice writes an error notice with the given HTTP status.
func ErrorNotice(e *core.RequestEvent, status int, message string) error {
	return NoticeResponse(e, status, "error", message)
}

// SuccessPayload writes a success notice alongside a data payload.
func SuccessPayload(e *core.RequestEvent, message string, payload map[string]any) error {
	body := map[string]any{
		"notice": Notice{Type: "success", Message: message},
	}
	for k, v := range payload {
		body[k] = v
	}
	return e.JSON(http.StatusOK, body)
}

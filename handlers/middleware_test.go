package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"mrtrepair/testhelpers"
)

func TestRequireUser_RejectsAnonymous(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/api/repair/cases", nil)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := RequireUser()(e); err != nil {
		t.Fatalf("middleware returned error: %v", err)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected status 401, got %d", rec.Code)
	}
}

func TestAuthorID(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if got := authorID(e); got != "system" {
		t.Errorf("anonymous authorID = %q, want system", got)
	}

	user := testhelpers.CreateTestUser(t, app, "tech@example.com", "secret12345")
	e.Auth = user
	if got := authorID(e); got != user.Id {
		t.Errorf("authorID = %q, want %q", got, user.Id)
	}
}

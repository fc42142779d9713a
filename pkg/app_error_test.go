package pkg

import (
	"errors"
	"net/http"
	"testing"
)

func TestAppError(t *testing.T) {
	cause := errors.New("bucket already released")

	t.Run("client error exposes details", func(t *testing.T) {
		e := NewDomainError("INVALID_STATE", "Invalid state", cause, http.StatusConflict)
		body := e.ToHTTPError()
		if body.Code != "INVALID_STATE" || body.Details != cause.Error() {
			t.Fatalf("unexpected body %+v", body)
		}
		if !errors.Is(e, cause) {
			t.Fatalf("expected AppError to unwrap to its cause")
		}
	})

	t.Run("server error hides details", func(t *testing.T) {
		e := NewDomainError("INTERNAL_ERROR", "An internal error occurred", cause, http.StatusInternalServerError)
		if body := e.ToHTTPError(); body.Details != "" {
			t.Fatalf("expected no details, got %q", body.Details)
		}
	})

	t.Run("simple", func(t *testing.T) {
		e := NewDomainErrorSimple("NOT_FOUND", "Escrow not found", http.StatusNotFound)
		if e.Error() != "NOT_FOUND: Escrow not found" || e.HTTPStatus != http.StatusNotFound {
			t.Fatalf("unexpected error %v", e)
		}
	})
}

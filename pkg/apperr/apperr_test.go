package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestHTTPStatusMapping(t *testing.T) {
	cases := []struct {
		err    *Error
		status int
	}{
		{Validation("bad input", nil), http.StatusBadRequest},
		{InvalidState("pending", "not payable"), http.StatusBadRequest},
		{NotFound("booking missing"), http.StatusNotFound},
		{Forbidden("not yours"), http.StatusForbidden},
		{Conflict("slot taken"), http.StatusConflict},
		{Unauthorized("bad token"), http.StatusUnauthorized},
		{Internal("db down", errors.New("boom")), http.StatusInternalServerError},
	}

	for _, c := range cases {
		if got := c.err.HTTPStatus(); got != c.status {
			t.Errorf("kind %v: status %d, want %d", c.err.Kind, got, c.status)
		}
	}
}

func TestFromWrapsUnknownErrors(t *testing.T) {
	plain := errors.New("something broke")

	e := From(plain)
	if e.Kind != KindInternal {
		t.Errorf("kind = %v, want internal", e.Kind)
	}
	if !errors.Is(e, plain) {
		t.Error("original error lost")
	}
}

func TestFromUnwrapsThroughWrapping(t *testing.T) {
	orig := NotFound("booking %s not found", "abc")
	wrapped := fmt.Errorf("handle request: %w", orig)

	e := From(wrapped)
	if e != orig {
		t.Error("From did not recover the original *Error")
	}
	if !IsKind(wrapped, KindNotFound) {
		t.Error("IsKind failed through wrapping")
	}
}

func TestInvalidStateCarriesState(t *testing.T) {
	e := InvalidState("cancelled", "this booking can no longer be paid")
	if e.State != "cancelled" {
		t.Errorf("state = %q, want cancelled", e.State)
	}
}

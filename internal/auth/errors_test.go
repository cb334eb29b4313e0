package auth

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestStatusOf(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{&ValidationError{Msg: "x"}, http.StatusBadRequest},
		{&ConflictError{Msg: "x"}, http.StatusBadRequest},
		{&AuthenticationError{Msg: "x"}, http.StatusUnauthorized},
		{&AuthenticationError{Msg: "x", Forbidden: true}, http.StatusForbidden},
		{&NotFoundError{Msg: "x"}, http.StatusNotFound},
		{&InternalError{Err: errors.New("boom")}, http.StatusInternalServerError},
		{errors.New("untyped"), http.StatusInternalServerError},
		// Wrapped errors still map through errors.As.
		{fmt.Errorf("login: %w", &AuthenticationError{Msg: "x"}), http.StatusUnauthorized},
	}
	for _, c := range cases {
		if got := StatusOf(c.err); got != c.want {
			t.Errorf("StatusOf(%v): got %d, want %d", c.err, got, c.want)
		}
	}
}

func TestInternalError_HidesCause(t *testing.T) {
	cause := errors.New("bcrypt: password too long")
	err := &InternalError{Err: cause}
	if err.Error() != "Internal server error" {
		t.Errorf("Error(): got %q", err.Error())
	}
	if !errors.Is(err, cause) {
		t.Error("cause not reachable via errors.Is")
	}
}

package util

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5"
)

func TestErrorStatusMapping(t *testing.T) {
	cases := []struct {
		err    error
		status int
	}{
		{NewValidationError("All fields are required", nil), http.StatusBadRequest},
		{NewDuplicateEmail(), http.StatusBadRequest},
		{NewInvalidCredentials(), http.StatusBadRequest},
		{NewUnauthorized("Unauthorized"), http.StatusUnauthorized},
		{NewForbidden("Access denied"), http.StatusForbidden},
		{NewNotFound("complaint"), http.StatusNotFound},
		{NewInternalError(errors.New("boom")), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		de := ToDomainError(tc.err)
		if de.HTTPStatus != tc.status {
			t.Fatalf("%s: status = %d, want %d", de.Code, de.HTTPStatus, tc.status)
		}
	}
}

func TestToDomainErrorPassthrough(t *testing.T) {
	original := NewForbidden("Access denied")
	wrapped := fmt.Errorf("handler: %w", original)
	de := ToDomainError(wrapped)
	if de.Code != "FORBIDDEN" || de.HTTPStatus != http.StatusForbidden {
		t.Fatalf("wrapped DomainError lost identity: %+v", de)
	}
}

func TestToDomainErrorMapsNoRows(t *testing.T) {
	de := ToDomainError(pgx.ErrNoRows)
	if de.HTTPStatus != http.StatusNotFound {
		t.Fatalf("pgx.ErrNoRows status = %d, want 404", de.HTTPStatus)
	}
}

func TestToDomainErrorDefaultsToInternal(t *testing.T) {
	de := ToDomainError(errors.New("unexpected"))
	if de.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", de.HTTPStatus)
	}
	if de.Message != "internal server error" {
		t.Fatalf("internal detail leaked: %q", de.Message)
	}
}

func TestToDomainErrorNil(t *testing.T) {
	if ToDomainError(nil) != nil {
		t.Fatal("nil error must map to nil")
	}
}

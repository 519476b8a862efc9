package util

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorConstructors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantCode   string
		wantStatus int
	}{
		{"validation", NewValidationError("bad", nil), CodeValidationFailed, http.StatusBadRequest},
		{"unauthorized", NewUnauthorized("no token"), CodeUnauthorized, http.StatusUnauthorized},
		{"forbidden", NewForbidden("nope"), CodeForbidden, http.StatusForbidden},
		{"not found", NewNotFound("job", nil), CodeNotFound, http.StatusNotFound},
		{"duplicate email", NewDuplicateEmail("a@x.com"), CodeEmailTaken, http.StatusConflict},
		{"already applied", NewAlreadyApplied("job-1"), CodeAlreadyApplied, http.StatusConflict},
		{"internal", NewInternalError(errors.New("boom")), CodeInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var domainErr *DomainError
			require.ErrorAs(t, tt.err, &domainErr)
			assert.Equal(t, tt.wantCode, domainErr.Code)
			assert.Equal(t, tt.wantStatus, domainErr.HTTPStatus)
			assert.Equal(t, tt.wantCode, CodeOf(tt.err))
		})
	}
}

func TestToDomainError(t *testing.T) {
	t.Run("passes through domain errors", func(t *testing.T) {
		original := NewForbidden("nope")
		mapped := ToDomainError(fmt.Errorf("wrapped: %w", original))
		assert.Equal(t, CodeForbidden, mapped.Code)
	})

	t.Run("maps missing rows to not found", func(t *testing.T) {
		mapped := ToDomainError(pgx.ErrNoRows)
		assert.Equal(t, CodeNotFound, mapped.Code)
		assert.Equal(t, http.StatusNotFound, mapped.HTTPStatus)
	})

	t.Run("wraps unknown errors as internal", func(t *testing.T) {
		mapped := ToDomainError(errors.New("connection refused"))
		assert.Equal(t, CodeInternal, mapped.Code)
		assert.Equal(t, http.StatusInternalServerError, mapped.HTTPStatus)
	})

	t.Run("nil stays nil", func(t *testing.T) {
		assert.Nil(t, ToDomainError(nil))
	})
}

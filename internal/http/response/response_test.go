package response

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/validator"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/mood-recipes/internal/models"
)

func TestFromError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{
			name:       "validation with detail",
			err:        fmt.Errorf("op: %w: user with this username or email already exists", models.ErrValidation),
			wantStatus: http.StatusBadRequest,
			wantMsg:    "user with this username or email already exists",
		},
		{
			name:       "bare validation",
			err:        models.ErrValidation,
			wantStatus: http.StatusBadRequest,
			wantMsg:    "validation error",
		},
		{
			name:       "invalid credentials",
			err:        fmt.Errorf("op: %w", models.ErrInvalidCredentials),
			wantStatus: http.StatusUnauthorized,
			wantMsg:    "invalid email or password",
		},
		{
			name:       "forbidden",
			err:        fmt.Errorf("op: %w", models.ErrForbidden),
			wantStatus: http.StatusForbidden,
			wantMsg:    "Unauthorized",
		},
		{
			name:       "not found",
			err:        fmt.Errorf("op: %w: %w", models.ErrNotFound, errors.New("no rows")),
			wantStatus: http.StatusNotFound,
			wantMsg:    "not found",
		},
		{
			name:       "internal error is sanitized",
			err:        errors.New("pq: connection refused to 10.0.0.1"),
			wantStatus: http.StatusInternalServerError,
			wantMsg:    "internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, msg := FromError(tt.err)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantMsg, msg)
		})
	}
}

func TestWriteError(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	WriteError(rec, req, http.StatusForbidden, "Unauthorized")

	assert.Equal(t, http.StatusForbidden, rec.Code)
	var got map[string]string
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.Equal(t, map[string]string{"status": "Error", "error": "Unauthorized"}, got)
}

func TestValidationError(t *testing.T) {
	type request struct {
		Email    string `validate:"required,email"`
		Password string `validate:"required"`
	}

	err := validator.New().Struct(request{Email: "not-an-email"})
	var verrs validator.ValidationErrors
	require.True(t, errors.As(err, &verrs))

	got := ValidationError(verrs)
	assert.Equal(t, StatusError, got.Status)
	assert.Equal(t, "field Email must be a valid email, field Password is a required field", got.Error)
}

package add

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/mood-recipes/internal/http/middlewarectx"
	"github.com/magabrotheeeer/mood-recipes/internal/models"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) AddFavorite(ctx context.Context, callerUID, targetUID, recipeID string) error {
	args := m.Called(ctx, callerUID, targetUID, recipeID)
	return args.Error(0)
}

const (
	ownerUID = "550e8400-e29b-41d4-a716-446655440000"
	recipeID = "7c9e6679-7425-40de-944b-e07fc1f90ae7"
)

func serve(h http.Handler, callerUID, body string) *httptest.ResponseRecorder {
	r := chi.NewRouter()
	r.Post("/users/{id}/favorites", func(w http.ResponseWriter, req *http.Request) {
		if callerUID != "" {
			req = req.WithContext(context.WithValue(req.Context(), middlewarectx.UserUID, callerUID))
		}
		h.ServeHTTP(w, req)
	})
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/users/"+ownerUID+"/favorites", strings.NewReader(body)))
	return rec
}

func TestAddHandler(t *testing.T) {
	tests := []struct {
		name       string
		caller     string
		body       string
		setupMock  func(m *MockService)
		wantStatus int
		wantBody   map[string]string
	}{
		{
			name:   "added",
			caller: ownerUID,
			body:   `{"recipeId":"` + recipeID + `"}`,
			setupMock: func(m *MockService) {
				m.On("AddFavorite", mock.Anything, ownerUID, ownerUID, recipeID).Return(nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   map[string]string{"message": "Favorite added"},
		},
		{
			name:       "missing recipe id",
			caller:     ownerUID,
			body:       `{}`,
			setupMock:  func(_ *MockService) {},
			wantStatus: http.StatusBadRequest,
			wantBody:   map[string]string{"status": "Error", "error": "field RecipeID is a required field"},
		},
		{
			name:       "broken json",
			caller:     ownerUID,
			body:       `{`,
			setupMock:  func(_ *MockService) {},
			wantStatus: http.StatusBadRequest,
			wantBody:   map[string]string{"status": "Error", "error": "invalid request body"},
		},
		{
			name:       "no caller",
			body:       `{"recipeId":"` + recipeID + `"}`,
			setupMock:  func(_ *MockService) {},
			wantStatus: http.StatusUnauthorized,
			wantBody:   map[string]string{"status": "Error", "error": "No token provided"},
		},
		{
			name:   "forbidden",
			caller: ownerUID,
			body:   `{"recipeId":"` + recipeID + `"}`,
			setupMock: func(m *MockService) {
				m.On("AddFavorite", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
					Return(fmt.Errorf("op: %w", models.ErrForbidden)).Once()
			},
			wantStatus: http.StatusForbidden,
			wantBody:   map[string]string{"status": "Error", "error": "Unauthorized"},
		},
		{
			name:   "recipe not found",
			caller: ownerUID,
			body:   `{"recipeId":"` + recipeID + `"}`,
			setupMock: func(m *MockService) {
				m.On("AddFavorite", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
					Return(fmt.Errorf("op: %w", models.ErrNotFound)).Once()
			},
			wantStatus: http.StatusNotFound,
			wantBody:   map[string]string{"status": "Error", "error": "not found"},
		},
		{
			name:   "storage error",
			caller: ownerUID,
			body:   `{"recipeId":"` + recipeID + `"}`,
			setupMock: func(m *MockService) {
				m.On("AddFavorite", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
					Return(errors.New("db error")).Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   map[string]string{"status": "Error", "error": "internal server error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockService)
			tt.setupMock(svc)

			rec := serve(New(slog.New(slog.NewTextHandler(io.Discard, nil)), svc), tt.caller, tt.body)

			assert.Equal(t, tt.wantStatus, rec.Code)
			var got map[string]string
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
			assert.Equal(t, tt.wantBody, got)
			svc.AssertExpectations(t)
		})
	}
}

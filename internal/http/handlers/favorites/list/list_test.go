package list

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/mood-recipes/internal/http/middlewarectx"
	"github.com/magabrotheeeer/mood-recipes/internal/models"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) ListFavorites(ctx context.Context, callerUID, targetUID string) ([]string, error) {
	args := m.Called(ctx, callerUID, targetUID)
	if res := args.Get(0); res != nil {
		return res.([]string), args.Error(1)
	}
	return nil, args.Error(1)
}

const ownerUID = "550e8400-e29b-41d4-a716-446655440000"

func serve(h http.Handler) *httptest.ResponseRecorder {
	r := chi.NewRouter()
	r.Get("/users/{id}/favorites", func(w http.ResponseWriter, req *http.Request) {
		req = req.WithContext(context.WithValue(req.Context(), middlewarectx.UserUID, ownerUID))
		h.ServeHTTP(w, req)
	})
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/users/"+ownerUID+"/favorites", nil))
	return rec
}

func TestListHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("favorites in order", func(t *testing.T) {
		svc := new(MockService)
		svc.On("ListFavorites", mock.Anything, ownerUID, ownerUID).Return([]string{"b", "a"}, nil).Once()

		rec := serve(New(logger, svc))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `["b","a"]`, rec.Body.String())
	})

	t.Run("no favorites", func(t *testing.T) {
		svc := new(MockService)
		svc.On("ListFavorites", mock.Anything, ownerUID, ownerUID).Return(nil, nil).Once()

		rec := serve(New(logger, svc))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `[]`, rec.Body.String())
	})

	t.Run("user not found", func(t *testing.T) {
		svc := new(MockService)
		svc.On("ListFavorites", mock.Anything, ownerUID, ownerUID).Return(nil, fmt.Errorf("op: %w", models.ErrNotFound)).Once()

		rec := serve(New(logger, svc))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

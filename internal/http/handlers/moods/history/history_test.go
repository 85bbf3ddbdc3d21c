package history

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/mood-recipes/internal/http/middlewarectx"
	"github.com/magabrotheeeer/mood-recipes/internal/models"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) History(ctx context.Context, callerUID, targetUID string) ([]models.MoodEntry, error) {
	args := m.Called(ctx, callerUID, targetUID)
	if res := args.Get(0); res != nil {
		return res.([]models.MoodEntry), args.Error(1)
	}
	return nil, args.Error(1)
}

const ownerUID = "550e8400-e29b-41d4-a716-446655440000"

func serve(h http.Handler) *httptest.ResponseRecorder {
	r := chi.NewRouter()
	r.Get("/users/{id}/moods", func(w http.ResponseWriter, req *http.Request) {
		req = req.WithContext(context.WithValue(req.Context(), middlewarectx.UserUID, ownerUID))
		h.ServeHTTP(w, req)
	})
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/users/"+ownerUID+"/moods", nil))
	return rec
}

func TestHistoryHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("entries in order", func(t *testing.T) {
		day := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
		svc := new(MockService)
		svc.On("History", mock.Anything, ownerUID, ownerUID).Return([]models.MoodEntry{
			{Mood: "happy", Date: day},
			{Mood: "sad", Date: day.Add(time.Hour)},
		}, nil).Once()

		rec := serve(New(logger, svc))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t,
			`[{"mood":"happy","date":"2024-03-01T09:00:00Z"},{"mood":"sad","date":"2024-03-01T10:00:00Z"}]`,
			rec.Body.String())
	})

	t.Run("empty history", func(t *testing.T) {
		svc := new(MockService)
		svc.On("History", mock.Anything, ownerUID, ownerUID).Return(nil, nil).Once()

		rec := serve(New(logger, svc))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `[]`, rec.Body.String())
	})

	t.Run("unknown user", func(t *testing.T) {
		svc := new(MockService)
		svc.On("History", mock.Anything, ownerUID, ownerUID).Return(nil, fmt.Errorf("op: %w", models.ErrNotFound)).Once()

		rec := serve(New(logger, svc))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

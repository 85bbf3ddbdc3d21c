package record

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
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

func (m *MockService) RecordMood(ctx context.Context, callerUID, targetUID, mood string) error {
	args := m.Called(ctx, callerUID, targetUID, mood)
	return args.Error(0)
}

const ownerUID = "550e8400-e29b-41d4-a716-446655440000"

func serve(h http.Handler, body string) *httptest.ResponseRecorder {
	r := chi.NewRouter()
	r.Post("/users/{id}/moods", func(w http.ResponseWriter, req *http.Request) {
		req = req.WithContext(context.WithValue(req.Context(), middlewarectx.UserUID, ownerUID))
		h.ServeHTTP(w, req)
	})
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/users/"+ownerUID+"/moods", strings.NewReader(body)))
	return rec
}

func TestRecordHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	tests := []struct {
		name       string
		body       string
		setupMock  func(m *MockService)
		wantStatus int
		wantBody   string
	}{
		{
			name: "recorded",
			body: `{"mood":"happy"}`,
			setupMock: func(m *MockService) {
				m.On("RecordMood", mock.Anything, ownerUID, ownerUID, "happy").Return(nil).Once()
			},
			wantStatus: http.StatusCreated,
			wantBody:   `{"message":"Mood recorded"}`,
		},
		{
			name:       "missing mood",
			body:       `{}`,
			setupMock:  func(_ *MockService) {},
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"status":"Error","error":"field Mood is a required field"}`,
		},
		{
			name: "user not found",
			body: `{"mood":"sad"}`,
			setupMock: func(m *MockService) {
				m.On("RecordMood", mock.Anything, ownerUID, ownerUID, "sad").Return(fmt.Errorf("op: %w", models.ErrNotFound)).Once()
			},
			wantStatus: http.StatusNotFound,
			wantBody:   `{"status":"Error","error":"not found"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockService)
			tt.setupMock(svc)

			rec := serve(New(logger, svc), tt.body)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
			svc.AssertExpectations(t)
		})
	}
}

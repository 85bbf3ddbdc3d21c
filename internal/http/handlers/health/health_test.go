package health

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

type pingerFunc func(ctx context.Context) error

func (f pingerFunc) PingContext(ctx context.Context) error { return f(ctx) }

func TestHealthHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	tests := []struct {
		name     string
		db       Pinger
		wantCode int
		wantBody string
	}{
		{name: "no dependencies", wantCode: http.StatusOK, wantBody: `{"status":"ok"}`},
		{
			name:     "database up",
			db:       pingerFunc(func(context.Context) error { return nil }),
			wantCode: http.StatusOK,
			wantBody: `{"status":"ok"}`,
		},
		{
			name:     "database down",
			db:       pingerFunc(func(context.Context) error { return errors.New("dial tcp: refused") }),
			wantCode: http.StatusServiceUnavailable,
			wantBody: `{"status":"Error","error":"database is unavailable"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			New(logger, tt.db).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}

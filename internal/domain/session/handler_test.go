package session

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogin_WaitsThenRedirects(t *testing.T) {
	r := chi.NewRouter()
	RegisterRoutes(r, 20*time.Millisecond, nil)

	req := httptest.NewRequest(http.MethodPost, "/login", nil)
	rec := httptest.NewRecorder()

	start := time.Now()
	r.ServeHTTP(rec, req)

	assert.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)
	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/pets", rec.Header().Get("Location"))
}

func TestLogin_ClientGoneBeforeDelay(t *testing.T) {
	r := chi.NewRouter()
	RegisterRoutes(r, time.Hour, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	req := httptest.NewRequest(http.MethodPost, "/login", nil).WithContext(ctx)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Empty(t, rec.Header().Get("Location"))
}

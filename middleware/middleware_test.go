package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrewpaige1/todolists/auth"
	"github.com/andrewpaige1/todolists/config"
	"github.com/andrewpaige1/todolists/utils"
)

func TestRequestLoggerAssignsID(t *testing.T) {
	var seen string
	h := RequestLogger(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = w.Header().Get(RequestIDHeader)
		w.WriteHeader(http.StatusTeapot)
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/lists", nil))

	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.Len(t, rec.Header().Get(RequestIDHeader), 21)
	assert.Equal(t, rec.Header().Get(RequestIDHeader), seen)
}

func TestRequestLoggerKeepsIncomingID(t *testing.T) {
	h := RequestLogger(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "upstream-id")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, "upstream-id", rec.Header().Get(RequestIDHeader))
}

func TestEnsureValidTokenDisabled(t *testing.T) {
	protect, err := EnsureValidToken(config.AuthConfig{})
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	protect(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})(rec, httptest.NewRequest(http.MethodPost, "/api/lists", nil))

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestEnsureValidTokenEnabled(t *testing.T) {
	cfg := config.AuthConfig{Secret: "test-secret", Issuer: "todolists", Audience: "todolists-api"}
	protect, err := EnsureValidToken(cfg)
	require.NoError(t, err)

	var subject string
	h := protect(func(w http.ResponseWriter, r *http.Request) {
		subject, _ = utils.GetSubject(r)
		w.WriteHeader(http.StatusNoContent)
	})

	rec := httptest.NewRecorder()
	h(rec, httptest.NewRequest(http.MethodPost, "/api/lists", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	token, err := auth.CreateToken(cfg, "user-7", time.Hour)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/lists", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec = httptest.NewRecorder()
	h(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "user-7", subject)
}

package middleware

import (
	"encoding/json"
	"net/http"

	jwtmiddleware "github.com/auth0/go-jwt-middleware/v2"

	"github.com/andrewpaige1/todolists/auth"
	"github.com/andrewpaige1/todolists/config"
	"github.com/andrewpaige1/todolists/logger"
)

// EnsureValidToken returns a wrapper that requires a valid bearer token.
// With auth disabled the wrapper passes requests through unchanged.
func EnsureValidToken(cfg config.AuthConfig) (func(http.HandlerFunc) http.HandlerFunc, error) {
	if !cfg.Enabled() {
		return func(next http.HandlerFunc) http.HandlerFunc { return next }, nil
	}

	v, err := auth.NewValidator(cfg)
	if err != nil {
		return nil, err
	}

	errorHandler := func(w http.ResponseWriter, r *http.Request, err error) {
		logger.FromContext(r.Context()).Info("EnsureValidToken: rejected request", "error", err)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"error": "Failed to validate JWT."})
	}

	mw := jwtmiddleware.New(v.ValidateToken, jwtmiddleware.WithErrorHandler(errorHandler))

	return func(next http.HandlerFunc) http.HandlerFunc {
		return mw.CheckJWT(next).ServeHTTP
	}, nil
}

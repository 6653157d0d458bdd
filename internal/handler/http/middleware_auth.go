package http

import (
	"net/http"

	"github.com/MKhiriev/go-site-keeper/internal/logger"
	"github.com/MKhiriev/go-site-keeper/internal/utils"
)

// auth is an HTTP middleware that admits only holders of a valid publisher
// token.
//
// It extracts the bearer token from the "Authorization" header, validates it
// via [service.AuthService.ParseToken] and stores the publisher (the token
// subject) in the request context under [utils.PublisherCtxKey].
//
// Requests without a header, with a malformed header, or with an expired or
// otherwise invalid token are rejected with 401 Unauthorized.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			writeError(w, r, ErrEmptyAuthorizationHeader)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			writeError(w, r, err)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			writeError(w, r, err)
			return
		}

		log.Debug().Str("publisher", token.Publisher).Msg("publisher authenticated")
		next.ServeHTTP(w, r.WithContext(utils.WithPublisher(ctx, token.Publisher)))
	})
}

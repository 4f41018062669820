package http

import (
	"net/http"

	"github.com/MKhiriev/go-retail-api/internal/logger"
	"github.com/MKhiriev/go-retail-api/internal/utils"
	"github.com/MKhiriev/go-retail-api/models"
)

// validateAccessToken is an HTTP middleware that enforces bearer token
// authentication.
//
// It reads the "Authorization" header, extracts the token, verifies it via
// [service.AuthService.ParseToken] (signature, issuer, audience and expiry)
// and, on success, stores the token claims in the request context with
// [utils.WithClaims] before delegating to the next handler.
//
// Any failure is answered with HTTP 401 and the message "Unauthorized"; the
// concrete reason is only logged.
func (h *Handler) validateAccessToken(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Debug().Err(ErrEmptyAuthorizationHeader).Str("func", "*Handler.validateAccessToken").Send()
			writeError(w, r, http.StatusUnauthorized, msgUnauthorized)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			log.Debug().Err(err).Str("func", "*Handler.validateAccessToken").Msg("malformed authorization header")
			writeError(w, r, http.StatusUnauthorized, msgUnauthorized)
			return
		}

		token, err := h.services.AuthService.ParseToken(r.Context(), tokenString)
		if err != nil {
			log.Debug().Err(err).Str("func", "*Handler.validateAccessToken").Msg("token rejected")
			writeError(w, r, http.StatusUnauthorized, msgUnauthorized)
			return
		}

		claims := token.Claims
		next.ServeHTTP(w, r.WithContext(utils.WithClaims(r.Context(), &claims)))
	})
}

// requireScope returns a middleware that lets a request through only when
// the verified token grants permission. It must run after
// validateAccessToken. A route gated by [models.SecurityDeny] is therefore
// unreachable: no token is ever issued with that scope.
func (h *Handler) requireScope(permission models.Permission) func(http.Handler) http.Handler {
	scope := permission.Scope()
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := utils.GetClaimsFromContext(r.Context())
			if !ok {
				logger.FromRequest(r).Error().Err(ErrNoClaimsInContext).Str("func", "*Handler.requireScope").Send()
				writeError(w, r, http.StatusUnauthorized, msgUnauthorized)
				return
			}

			if !claims.HasPermission(scope) {
				logger.FromRequest(r).Debug().
					Str("func", "*Handler.requireScope").
					Str("required", scope).
					Strs("granted", claims.Permissions).
					Msg(ErrInsufficientScope.Error())
				writeError(w, r, http.StatusForbidden, msgInsufficientScope)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/tokoretail/retail-platform/internal/errors"
	"github.com/tokoretail/retail-platform/internal/models"
	"github.com/tokoretail/retail-platform/internal/requestctx"
	"github.com/tokoretail/retail-platform/internal/utils/response"
)

// CustomerSession resolves an optional bearer token into the storefront
// customer it was issued for. Requests without an Authorization header pass
// through untouched; a header carrying an invalid token is rejected.
type CustomerSession struct {
	jwtKey []byte
}

func NewCustomerSession(jwtKey []byte) *CustomerSession {
	return &CustomerSession{jwtKey: jwtKey}
}

func (m *CustomerSession) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

		logger := requestctx.Logger(r.Context())

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" || len(m.jwtKey) == 0 {
			next.ServeHTTP(w, r)
			return
		}

		scheme, tokenString, ok := strings.Cut(authHeader, " ")
		if !ok || !strings.EqualFold(scheme, "Bearer") || tokenString == "" {
			logger.Warn("Invalid authorization header format")
			response.Error(w, errors.UnauthorizedError("Invalid authorization format"))
			return
		}

		claims := &models.CustomerClaims{}

		token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
			return m.jwtKey, nil
		}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())

		if err != nil || !token.Valid {
			logger.Warn("Customer token rejected", slog.Any("error", err))
			response.Error(w, errors.UnauthorizedError("Invalid or expired token"))
			return
		}

		if claims.CustomerID <= 0 {
			logger.Warn("Customer token without customer id")
			response.Error(w, errors.UnauthorizedError("Invalid token"))
			return
		}

		ctx := requestctx.WithCustomerID(r.Context(), claims.CustomerID)
		ctx = requestctx.WithLogger(ctx, logger.With(slog.Int64("customerID", claims.CustomerID)))

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

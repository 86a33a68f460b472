package v1handler

import (
	"context"
	"crypto/rsa"
	"net/http"
	"recond/internal/config"
	"recond/pkg/domain"
	"recond/pkg/serrors"
	"strings"

	"github.com/go-faster/errors"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// CtxKey is a string-based type used for storing values in request contexts.
type CtxKey string

// OperatorIDKey is the context key under which the authenticated operator ID
// is stored.
const OperatorIDKey CtxKey = "operatorID"

// SecHandlerOptions configure bearer-token verification.
type SecHandlerOptions struct {
	// PublicKey is the PEM-encoded RSA public key used to verify operator tokens.
	PublicKey string
}

// NewSecHandlerOptions constructs SecHandlerOptions from the application config.
func NewSecHandlerOptions(cfg *config.Config) *SecHandlerOptions {
	return &SecHandlerOptions{PublicKey: cfg.JWT.PublicKey}
}

// SecHandler verifies RS256 bearer tokens and attaches the operator identity
// to the request context.
type SecHandler struct {
	publicKey *rsa.PublicKey
}

// NewSecHandler parses the configured public key and returns a SecHandler.
func NewSecHandler(opts *SecHandlerOptions) (*SecHandler, error) {
	key, err := jwt.ParseRSAPublicKeyFromPEM([]byte(opts.PublicKey))
	if err != nil {
		return nil, errors.Wrap(err, "could not parse RSA public key")
	}

	return &SecHandler{publicKey: key}, nil
}

// HandleBearerAuth verifies the token and returns a context carrying the
// operator ID taken from the token subject.
func (s *SecHandler) HandleBearerAuth(ctx context.Context, token string) (context.Context, error) {
	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims,
		func(*jwt.Token) (any, error) { return s.publicKey, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}))
	if err != nil {
		return ctx, serrors.Wrap(serrors.ErrUnauthorized, err, "invalid bearer token")
	}
	if !parsed.Valid {
		return ctx, serrors.With(serrors.ErrUnauthorized, "invalid bearer token")
	}

	operatorID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return ctx, serrors.Wrap(serrors.ErrUnauthorized, err, "invalid token subject")
	}

	return context.WithValue(ctx, OperatorIDKey, domain.OperatorID(operatorID)), nil
}

// Wrap enforces bearer authentication on every request before handing off to
// next.
func (s *SecHandler) Wrap(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
		if !ok || token == "" {
			writeError(r.Context(), w, serrors.With(serrors.ErrUnauthorized, "missing bearer token"))

			return
		}

		ctx, err := s.HandleBearerAuth(r.Context(), token)
		if err != nil {
			writeError(r.Context(), w, err)

			return
		}

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetOperatorIDFromContext returns the operator ID stored by HandleBearerAuth,
// or the zero ID when the context carries none.
func GetOperatorIDFromContext(ctx context.Context) domain.OperatorID {
	if id, ok := ctx.Value(OperatorIDKey).(domain.OperatorID); ok {
		return id
	}

	return domain.OperatorID{}
}

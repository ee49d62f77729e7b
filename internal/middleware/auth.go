package middleware

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/auth0/go-jwt-middleware/v2/jwks"
	"github.com/auth0/go-jwt-middleware/v2/validator"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

// CustomClaims contains the custom claims from Auth0 JWT
type CustomClaims struct {
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
}

// Validate implements validator.CustomClaims
func (c CustomClaims) Validate(ctx context.Context) error {
	return nil
}

// contextKey is a custom type for context keys to avoid collisions
type contextKey string

const (
	// ClaimsKey is the context key for JWT claims
	ClaimsKey contextKey = "claims"
	// SubjectKey is the context key for the identity-provider subject
	SubjectKey contextKey = "subject"
	// UserIDKey is the context key for the resolved user ID
	UserIDKey contextKey = "user_id"
)

// UserProvider resolves the internal user ID for a subject. A subject
// without a user record (first request before the auth callback) is not
// an error here; handlers that need the user ID reject it themselves.
type UserProvider interface {
	GetUserIDBySubject(subject string) (string, error)
}

// Authenticator is the authentication strategy selected at startup:
// Auth0 JWT validation in cloud mode, a fixed guest identity in local
// mode. ValidateToken serves websocket upgrades, where the token
// arrives as a query parameter instead of a header.
type Authenticator interface {
	Authenticate() echo.MiddlewareFunc
	ValidateToken(ctx context.Context, token string) (subject string, err error)
}

// AuthMiddleware provides JWT validation middleware
type AuthMiddleware struct {
	validator *validator.Validator
	users     UserProvider
}

// NewAuthMiddleware creates a new AuthMiddleware with Auth0 configuration
func NewAuthMiddleware(domain, audience string, users UserProvider) (*AuthMiddleware, error) {
	issuerURL, err := url.Parse("https://" + domain + "/")
	if err != nil {
		return nil, err
	}

	provider := jwks.NewCachingProvider(issuerURL, 5*time.Minute)

	jwtValidator, err := validator.New(
		provider.KeyFunc,
		validator.RS256,
		issuerURL.String(),
		[]string{audience},
		validator.WithCustomClaims(func() validator.CustomClaims {
			return &CustomClaims{}
		}),
		validator.WithAllowedClockSkew(time.Minute),
	)
	if err != nil {
		return nil, err
	}

	return &AuthMiddleware{
		validator: jwtValidator,
		users:     users,
	}, nil
}

// Authenticate returns an Echo middleware that validates JWT tokens
func (m *AuthMiddleware) Authenticate() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header format")
			}

			claims, err := m.validator.ValidateToken(c.Request().Context(), parts[1])
			if err != nil {
				log.Debug().Err(err).Msg("Token validation failed")
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			validatedClaims, ok := claims.(*validator.ValidatedClaims)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid claims")
			}

			subject := validatedClaims.RegisteredClaims.Subject

			ctx := context.WithValue(c.Request().Context(), ClaimsKey, validatedClaims)
			ctx = context.WithValue(ctx, SubjectKey, subject)

			// Resolve the user ID when a record exists. The callback
			// endpoint runs before any user exists, so a miss here is
			// not a rejection.
			if m.users != nil {
				if userID, err := m.users.GetUserIDBySubject(subject); err == nil {
					ctx = context.WithValue(ctx, UserIDKey, userID)
				}
			}

			c.SetRequest(c.Request().WithContext(ctx))

			return next(c)
		}
	}
}

// ValidateToken validates a raw JWT and returns its subject
func (m *AuthMiddleware) ValidateToken(ctx context.Context, token string) (string, error) {
	claims, err := m.validator.ValidateToken(ctx, token)
	if err != nil {
		return "", err
	}
	validatedClaims, ok := claims.(*validator.ValidatedClaims)
	if !ok {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "invalid claims")
	}
	return validatedClaims.RegisteredClaims.Subject, nil
}

// GetSubject extracts the identity-provider subject from the context
func GetSubject(c echo.Context) string {
	if subject, ok := c.Request().Context().Value(SubjectKey).(string); ok {
		return subject
	}
	return ""
}

// GetUserID extracts the resolved user ID from the context. Empty when
// the subject has not completed the auth callback yet.
func GetUserID(c echo.Context) string {
	if id, ok := c.Request().Context().Value(UserIDKey).(string); ok {
		return id
	}
	return ""
}

// GetClaims extracts the validated claims from the context
func GetClaims(c echo.Context) *validator.ValidatedClaims {
	if claims, ok := c.Request().Context().Value(ClaimsKey).(*validator.ValidatedClaims); ok {
		return claims
	}
	return nil
}

// GetCustomClaims extracts the custom claims from the context
func GetCustomClaims(c echo.Context) *CustomClaims {
	claims := GetClaims(c)
	if claims == nil {
		return nil
	}
	if custom, ok := claims.CustomClaims.(*CustomClaims); ok {
		return custom
	}
	return nil
}

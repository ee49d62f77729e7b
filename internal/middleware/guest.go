package middleware

import (
	"context"

	"github.com/labstack/echo/v4"
)

// GuestSubject is the fixed identity used when running without Auth0.
// Local mode is single-user, so every request maps to this subject.
const GuestSubject = "guest|local"

// GuestMiddleware authenticates every request as the local guest user.
// It satisfies Authenticator so local mode plugs into the same route
// registration as cloud mode.
type GuestMiddleware struct {
	users UserProvider
}

// NewGuestMiddleware creates a new GuestMiddleware
func NewGuestMiddleware(users UserProvider) *GuestMiddleware {
	return &GuestMiddleware{users: users}
}

// Authenticate injects the guest subject into every request
func (m *GuestMiddleware) Authenticate() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := context.WithValue(c.Request().Context(), SubjectKey, GuestSubject)
			if m.users != nil {
				if userID, err := m.users.GetUserIDBySubject(GuestSubject); err == nil {
					ctx = context.WithValue(ctx, UserIDKey, userID)
				}
			}
			c.SetRequest(c.Request().WithContext(ctx))
			return next(c)
		}
	}
}

// ValidateToken accepts any token and returns the guest subject
func (m *GuestMiddleware) ValidateToken(ctx context.Context, token string) (string, error) {
	return GuestSubject, nil
}

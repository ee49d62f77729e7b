package handler

import (
	"context"

	"github.com/labstack/echo/v4"
	"github.com/trigenthq/trigent/trigent-backend/internal/middleware"
)

// setupAuthContext injects the identity values normally set by the auth
// middleware
func setupAuthContext(c echo.Context, subject, userID string) {
	ctx := context.WithValue(c.Request().Context(), middleware.SubjectKey, subject)
	if userID != "" {
		ctx = context.WithValue(ctx, middleware.UserIDKey, userID)
	}
	c.SetRequest(c.Request().WithContext(ctx))
}

package middleware

import (
	"Robostaan/internal/entity"
	"Robostaan/pkg/handlerUtil"

	"github.com/gofiber/fiber/v2"
)

// NewRoleMiddleware gates a route to the given roles. It must run after
// NewTokenMiddleware, which puts the authenticated user into locals.
func (m *middleware) NewRoleMiddleware(roles ...entity.Role) fiber.Handler {
	allowed := make(map[entity.Role]struct{}, len(roles))
	for _, role := range roles {
		allowed[role] = struct{}{}
	}

	return func(ctx *fiber.Ctx) error {
		errHandler := handlerUtil.New(m.log)
		requestID := m.GetRequestID(ctx)

		user, ok := ctx.Locals("user").(entity.UserLoginData)
		if !ok {
			return errHandler.HandleUnauthorized(ctx, requestID,
				"Unauthorized, access token invalid or expired")
		}

		if _, ok := allowed[user.Role]; !ok {
			return errHandler.HandleForbidden(ctx, requestID,
				"Forbidden, role "+user.Role.String()+" may not access this route")
		}

		return ctx.Next()
	}
}

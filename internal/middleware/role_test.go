package middleware

import (
	"io"
	"net/http/httptest"
	"testing"

	"Robostaan/internal/entity"

	"github.com/gofiber/fiber/v2"
	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRoleTestApp(user *entity.UserLoginData, roles ...entity.Role) *fiber.App {
	m := New(logrus.New())

	app := fiber.New()
	app.Get("/protected",
		func(ctx *fiber.Ctx) error {
			if user != nil {
				ctx.Locals("user", *user)
			}
			return ctx.Next()
		},
		m.NewRoleMiddleware(roles...),
		func(ctx *fiber.Ctx) error {
			return ctx.SendStatus(fiber.StatusOK)
		},
	)

	return app
}

func TestRoleMiddlewareAllowsPermittedRole(t *testing.T) {
	user := &entity.UserLoginData{ID: "u1", Role: entity.RoleAdmin}
	app := newRoleTestApp(user, entity.RoleAdmin)

	res, err := app.Test(httptest.NewRequest("GET", "/protected", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, res.StatusCode)
}

func TestRoleMiddlewareForbidsOtherRole(t *testing.T) {
	user := &entity.UserLoginData{ID: "u1", Role: entity.RoleUser}
	app := newRoleTestApp(user, entity.RoleAdmin, entity.RoleInstructor)

	res, err := app.Test(httptest.NewRequest("GET", "/protected", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, res.StatusCode)

	// The 403 goes through the shared error helper, so the body carries
	// the machine-readable code alongside the message.
	raw, err := io.ReadAll(res.Body)
	require.NoError(t, err)

	var body struct {
		Error string `json:"error"`
		Code  string `json:"code"`
	}
	require.NoError(t, jsoniter.Unmarshal(raw, &body))
	assert.Equal(t, "FORBIDDEN", body.Code)
	assert.Contains(t, body.Error, entity.RoleUser.String())
}

func TestRoleMiddlewareRejectsAnonymous(t *testing.T) {
	app := newRoleTestApp(nil, entity.RoleAdmin)

	res, err := app.Test(httptest.NewRequest("GET", "/protected", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, res.StatusCode)
}

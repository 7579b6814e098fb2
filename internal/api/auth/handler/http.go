package authHandler

import (
	authService "Robostaan/internal/api/auth/service"
	"Robostaan/internal/entity"
	"Robostaan/internal/middleware"
	"Robostaan/pkg/google"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type AuthHandler struct {
	log            *logrus.Logger
	authService    authService.AuthService
	validator      *validator.Validate
	middleware     middleware.Middleware
	googleProvider google.ItfGoogle
}

func New(
	log *logrus.Logger,
	as authService.AuthService,
	validate *validator.Validate,
	middleware middleware.Middleware,
	googleProvider google.ItfGoogle,
) *AuthHandler {
	return &AuthHandler{
		log:            log,
		authService:    as,
		validator:      validate,
		middleware:     middleware,
		googleProvider: googleProvider,
	}
}

func (h *AuthHandler) Start(srv fiber.Router) {
	auth := srv.Group("/auth")
	auth.Post("/login", h.HandleLogin)
	auth.Get("/login-gl", h.HandleGoogleLogin)
	auth.Get("/callback-gl", h.CallBackFromGoogle)

	users := srv.Group("/users")
	users.Post("/", h.HandleRegister)
	users.Get("/me", h.middleware.NewTokenMiddleware, h.HandleGetMe)
	users.Get("/preferences", h.middleware.NewTokenMiddleware, h.HandleGetPreferences)
	users.Put("/preferences", h.middleware.NewTokenMiddleware, h.HandleUpdatePreferences)
	users.Post("/profile-photo", h.middleware.NewTokenMiddleware, h.HandleUpdateProfilePhoto)
	users.Get("/:id", h.HandleGetUserByID)
	users.Patch("/", h.middleware.NewTokenMiddleware, h.HandleUpdateUser)
	users.Patch("/:id/role", h.middleware.NewTokenMiddleware, h.middleware.NewRoleMiddleware(entity.RoleAdmin), h.HandleUpdateRole)
	users.Delete("/:id", h.middleware.NewTokenMiddleware, h.HandleDeleteUser)

	verification := srv.Group("/verification")
	verification.Post("/email/send-otp", h.HandleSendEmailOTP)
	verification.Post("/email/verify-otp", h.HandleVerifyEmailOTP)
}

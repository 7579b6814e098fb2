package newsletterHandler

import (
	newsletterService "Robostaan/internal/api/newsletter/service"
	"Robostaan/internal/entity"
	"Robostaan/internal/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type NewsletterHandler struct {
	log               *logrus.Logger
	newsletterService newsletterService.NewsletterService
	validator         *validator.Validate
	middleware        middleware.Middleware
}

func New(
	log *logrus.Logger,
	ns newsletterService.NewsletterService,
	validate *validator.Validate,
	middleware middleware.Middleware,
) *NewsletterHandler {
	return &NewsletterHandler{
		log:               log,
		newsletterService: ns,
		validator:         validate,
		middleware:        middleware,
	}
}

func (h *NewsletterHandler) Start(srv fiber.Router) {
	news := srv.Group("/newsletter")
	news.Post("/subscribe", h.HandleSubscribe)
	news.Get("/unsubscribe", h.HandleUnsubscribe)
	news.Get("/subscriptions", h.middleware.NewTokenMiddleware, h.middleware.NewRoleMiddleware(entity.RoleAdmin), h.HandleGetAllSubscriptions)
}

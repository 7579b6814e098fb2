package engagementHandler

import (
	engagementService "Robostaan/internal/api/engagement/service"
	"Robostaan/internal/middleware"
	websocketPkg "Robostaan/pkg/websocket"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"github.com/sirupsen/logrus"
)

type EngagementHandler struct {
	log               *logrus.Logger
	engagementService engagementService.EngagementService
	validator         *validator.Validate
	middleware        middleware.Middleware
	hub               websocketPkg.IHub
}

func New(
	log *logrus.Logger,
	es engagementService.EngagementService,
	validate *validator.Validate,
	middleware middleware.Middleware,
	hub websocketPkg.IHub,
) *EngagementHandler {
	return &EngagementHandler{
		log:               log,
		engagementService: es,
		validator:         validate,
		middleware:        middleware,
		hub:               hub,
	}
}

func (h *EngagementHandler) Start(srv fiber.Router) {
	comments := srv.Group("/comments")
	comments.Post("/", h.middleware.NewTokenMiddleware, h.HandleCreateComment)
	comments.Get("/blog/:id", h.HandleGetBlogComments)
	comments.Get("/course/:id", h.HandleGetCourseComments)
	comments.Patch("/:id", h.middleware.NewTokenMiddleware, h.HandleUpdateComment)
	comments.Delete("/:id", h.middleware.NewTokenMiddleware, h.HandleDeleteComment)

	likes := srv.Group("/likes")
	likes.Post("/toggle", h.middleware.NewTokenMiddleware, h.HandleToggleLike)
	likes.Get("/status", h.middleware.NewTokenMiddleware, h.HandleGetLikeStatus)

	feed := srv.Group("/feed")
	feed.Use("/engagement", func(ctx *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(ctx) {
			return ctx.Next()
		}
		return fiber.ErrUpgradeRequired
	})
	feed.Get("/engagement", websocket.New(h.HandleEngagementFeed))
}

package blogHandler

import (
	blogService "Robostaan/internal/api/blog/service"
	"Robostaan/internal/entity"
	"Robostaan/internal/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type BlogHandler struct {
	log         *logrus.Logger
	blogService blogService.BlogService
	validator   *validator.Validate
	middleware  middleware.Middleware
}

func New(
	log *logrus.Logger,
	bs blogService.BlogService,
	validate *validator.Validate,
	middleware middleware.Middleware,
) *BlogHandler {
	return &BlogHandler{
		log:         log,
		blogService: bs,
		validator:   validate,
		middleware:  middleware,
	}
}

func (h *BlogHandler) Start(srv fiber.Router) {
	blogs := srv.Group("/blogs")
	blogs.Post("/", h.middleware.NewTokenMiddleware, h.middleware.NewRoleMiddleware(entity.RoleAdmin, entity.RoleInstructor), h.HandleCreateBlog)
	blogs.Get("/", h.HandleGetAllBlogs)
	blogs.Get("/featured", h.HandleGetFeaturedBlogs)
	blogs.Get("/tags", h.HandleListTags)
	blogs.Get("/tag/:tag", h.HandleGetBlogsByTag)
	blogs.Get("/:id", h.HandleGetBlogByID)
	blogs.Put("/:id", h.middleware.NewTokenMiddleware, h.HandleUpdateBlog)
	blogs.Post("/:id/image", h.middleware.NewTokenMiddleware, h.HandleUploadBlogImage)
	blogs.Patch("/:id/featured", h.middleware.NewTokenMiddleware, h.middleware.NewRoleMiddleware(entity.RoleAdmin), h.HandleSetFeatured)
	blogs.Delete("/:id", h.middleware.NewTokenMiddleware, h.HandleDeleteBlog)
}

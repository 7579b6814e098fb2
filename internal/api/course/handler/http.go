package courseHandler

import (
	courseService "Robostaan/internal/api/course/service"
	"Robostaan/internal/entity"
	"Robostaan/internal/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type CourseHandler struct {
	log           *logrus.Logger
	courseService courseService.CourseService
	validator     *validator.Validate
	middleware    middleware.Middleware
}

func New(
	log *logrus.Logger,
	cs courseService.CourseService,
	validate *validator.Validate,
	middleware middleware.Middleware,
) *CourseHandler {
	return &CourseHandler{
		log:           log,
		courseService: cs,
		validator:     validate,
		middleware:    middleware,
	}
}

func (h *CourseHandler) Start(srv fiber.Router) {
	courses := srv.Group("/courses")
	courses.Post("/", h.middleware.NewTokenMiddleware, h.middleware.NewRoleMiddleware(entity.RoleAdmin, entity.RoleInstructor), h.HandleCreateCourse)
	courses.Get("/", h.HandleGetAllCourses)
	courses.Get("/featured", h.HandleGetFeaturedCourses)
	courses.Get("/category/:category", h.HandleGetCoursesByCategory)
	courses.Get("/:id", h.HandleGetCourseByID)
	courses.Put("/:id", h.middleware.NewTokenMiddleware, h.HandleUpdateCourse)
	courses.Post("/:id/image", h.middleware.NewTokenMiddleware, h.HandleUploadCourseImage)
	courses.Patch("/:id/featured", h.middleware.NewTokenMiddleware, h.middleware.NewRoleMiddleware(entity.RoleAdmin), h.HandleSetFeatured)
	courses.Post("/:id/materials", h.middleware.NewTokenMiddleware, h.HandleAddMaterial)
	courses.Delete("/:id/materials/:materialId", h.middleware.NewTokenMiddleware, h.HandleDeleteMaterial)
	courses.Delete("/:id", h.middleware.NewTokenMiddleware, h.HandleDeleteCourse)

	courses.Post("/:id/enroll", h.middleware.NewTokenMiddleware, h.HandleEnroll)
	courses.Patch("/:id/progress", h.middleware.NewTokenMiddleware, h.HandleUpdateProgress)
	courses.Delete("/:id/enroll", h.middleware.NewTokenMiddleware, h.HandleUnenroll)

	enrollments := srv.Group("/enrollments")
	enrollments.Get("/me", h.middleware.NewTokenMiddleware, h.HandleGetMyEnrollments)
}

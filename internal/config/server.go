package config

import (
	"fmt"
	"os"

	"Robostaan/database/postgres"
	authHandler "Robostaan/internal/api/auth/handler"
	authRepository "Robostaan/internal/api/auth/repository"
	authService "Robostaan/internal/api/auth/service"
	blogHandler "Robostaan/internal/api/blog/handler"
	blogRepository "Robostaan/internal/api/blog/repository"
	blogService "Robostaan/internal/api/blog/service"
	courseHandler "Robostaan/internal/api/course/handler"
	courseRepository "Robostaan/internal/api/course/repository"
	courseService "Robostaan/internal/api/course/service"
	engagementHandler "Robostaan/internal/api/engagement/handler"
	engagementRepository "Robostaan/internal/api/engagement/repository"
	engagementService "Robostaan/internal/api/engagement/service"
	newsletterHandler "Robostaan/internal/api/newsletter/handler"
	newsletterRepository "Robostaan/internal/api/newsletter/repository"
	newsletterService "Robostaan/internal/api/newsletter/service"
	"Robostaan/internal/middleware"
	"Robostaan/pkg/bcrypt"
	"Robostaan/pkg/gemini"
	"Robostaan/pkg/google"
	"Robostaan/pkg/redis"
	"Robostaan/pkg/s3"
	"Robostaan/pkg/smtp"
	"Robostaan/pkg/utils"
	websocketPkg "Robostaan/pkg/websocket"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

type ServerOption func(*Server) error

type Server struct {
	engine         *fiber.App
	db             *sqlx.DB
	log            *logrus.Logger
	middleware     middleware.Middleware
	validator      *validator.Validate
	utils          utils.IUtils
	bcryptUtils    bcrypt.IBcrypt
	handlers       []handler
	googleProvider google.ItfGoogle
	redisServer    redis.IRedis
	smtpMailer     smtp.ItfSmtp
	engagementHub  websocketPkg.IHub
	geminiClient   gemini.IGemini
	s3Client       s3.ItfS3
}

type handler interface {
	Start(srv fiber.Router)
}

func NewServer(options ...ServerOption) (*Server, error) {
	server := &Server{}

	for _, option := range options {
		if err := option(server); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	if server.engine == nil {
		return nil, fmt.Errorf("fiber app is required")
	}
	if server.log == nil {
		return nil, fmt.Errorf("logger is required")
	}

	return server, nil
}

func WithFiber(fiberApp *fiber.App) ServerOption {
	return func(s *Server) error {
		s.engine = fiberApp
		return nil
	}
}

func WithLogger(logger *logrus.Logger) ServerOption {
	return func(s *Server) error {
		s.log = logger
		return nil
	}
}

func WithValidator(validator *validator.Validate) ServerOption {
	return func(s *Server) error {
		s.validator = validator
		return nil
	}
}

func WithDatabase() ServerOption {
	return func(s *Server) error {
		db, err := postgres.New()
		if err != nil {
			if s.log != nil {
				s.log.Errorf("Failed to connect to database: %v", err)
			}
			return fmt.Errorf("failed to create database connection: %w", err)
		}
		s.db = db
		return nil
	}
}

func WithGoogleProvider(provider google.ItfGoogle) ServerOption {
	return func(s *Server) error {
		s.googleProvider = provider
		return nil
	}
}

func WithRedisServer(redisServer redis.IRedis) ServerOption {
	return func(s *Server) error {
		s.redisServer = redisServer
		return nil
	}
}

func WithSMTPMailer(smtpMailer smtp.ItfSmtp) ServerOption {
	return func(s *Server) error {
		s.smtpMailer = smtpMailer
		return nil
	}
}

func WithEngagementHub(hub websocketPkg.IHub) ServerOption {
	return func(s *Server) error {
		s.engagementHub = hub
		return nil
	}
}

func WithMiddleware() ServerOption {
	return func(s *Server) error {
		if s.log == nil {
			return fmt.Errorf("logger must be initialized before middleware")
		}
		s.middleware = middleware.New(s.log)
		return nil
	}
}

func WithS3Client() ServerOption {
	return func(s *Server) error {
		client, err := s3.New()
		if err != nil {
			if s.log != nil {
				s.log.Errorf("Failed to initialize S3 client: %v", err)
			}
			return fmt.Errorf("failed to create S3 client: %w", err)
		}
		s.s3Client = client
		return nil
	}
}

func WithGeminiClient() ServerOption {
	return func(s *Server) error {
		client, err := gemini.NewGeminiClient()
		if err != nil {
			// Snippet generation degrades to truncation without Gemini.
			if s.log != nil {
				s.log.Warnf("Gemini client unavailable: %v", err)
			}
			return nil
		}
		s.geminiClient = client
		return nil
	}
}

func WithUtils() ServerOption {
	return func(s *Server) error {
		s.utils = utils.New()
		return nil
	}
}

func WithBcryptUtils() ServerOption {
	return func(s *Server) error {
		s.bcryptUtils = bcrypt.New()
		return nil
	}
}

func (s *Server) RegisterHandler() {
	// Auth Domain
	authRepo := authRepository.New(s.db, s.log)
	authServices := authService.New(s.log, authRepo, s.googleProvider, s.smtpMailer, s.redisServer, s.s3Client, s.bcryptUtils, s.utils)
	authHandlers := authHandler.New(s.log, authServices, s.validator, s.middleware, s.googleProvider)

	// Blog Domain
	blogRepo := blogRepository.New(s.db, s.log)
	blogServices := blogService.New(s.log, blogRepo, s.geminiClient, s.redisServer, s.s3Client, s.utils)
	blogHandlers := blogHandler.New(s.log, blogServices, s.validator, s.middleware)

	// Course Domain
	courseRepo := courseRepository.New(s.db, s.log)
	courseServices := courseService.New(s.log, courseRepo, s.s3Client, s.utils)
	courseHandlers := courseHandler.New(s.log, courseServices, s.validator, s.middleware)

	// Engagement Domain
	engagementRepo := engagementRepository.New(s.db, s.log)
	engagementServices := engagementService.New(s.log, engagementRepo, s.engagementHub, s.utils)
	engagementHandlers := engagementHandler.New(s.log, engagementServices, s.validator, s.middleware, s.engagementHub)

	// Newsletter Domain
	newsletterRepo := newsletterRepository.New(s.db, s.log)
	newsletterServices := newsletterService.New(s.log, newsletterRepo, s.smtpMailer, s.utils)
	newsletterHandlers := newsletterHandler.New(s.log, newsletterServices, s.validator, s.middleware)

	s.setupHealthCheck()
	s.handlers = append(s.handlers, authHandlers, blogHandlers, courseHandlers, engagementHandlers, newsletterHandlers)
}

func (s *Server) Run() error {
	router := s.engine.Group("/api/v1")
	s.engine.Use(s.middleware.NewRequestIDMiddleware())
	s.engine.Use(middleware.LoggerConfig())
	router.Use(s.middleware.NewRateLimiter)

	for _, h := range s.handlers {
		h.Start(router)
	}

	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "3000"
	}

	if err := s.engine.Listen(fmt.Sprintf(":%s", port)); err != nil {
		if s.engagementHub != nil {
			s.engagementHub.Close()
		}
		return err
	}

	return nil
}

func (s *Server) setupHealthCheck() {
	s.engine.Get("/", func(ctx *fiber.Ctx) error {
		return ctx.JSON(fiber.Map{
			"message": "Server is Healthy!",
		})
	})
}

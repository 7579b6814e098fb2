package blogService

import (
	"context"
	"mime/multipart"

	blogs "Robostaan/internal/api/blog"
	blogRepository "Robostaan/internal/api/blog/repository"
	"Robostaan/internal/entity"
	"Robostaan/pkg/gemini"
	"Robostaan/pkg/redis"
	"Robostaan/pkg/s3"
	"Robostaan/pkg/utils"

	"github.com/sirupsen/logrus"
)

type BlogService interface {
	Blog() BlogDomain
}

type BlogDomain interface {
	CreateBlog(ctx context.Context, author entity.UserLoginData, req blogs.CreateBlogRequest) (*blogs.BlogResponse, error)
	GetBlogByID(ctx context.Context, id string) (*blogs.BlogResponse, error)
	GetAllBlogs(ctx context.Context, limit, offset int) (*blogs.BlogListResponse, error)
	GetBlogsByTag(ctx context.Context, tag string, limit, offset int) (*blogs.BlogListResponse, error)
	GetFeaturedBlogs(ctx context.Context, limit, offset int) (*blogs.BlogListResponse, error)
	ListTags(ctx context.Context) (*blogs.TagListResponse, error)
	UpdateBlog(ctx context.Context, actor entity.UserLoginData, id string, req blogs.UpdateBlogRequest) error
	SetFeatured(ctx context.Context, id string, featured bool) error
	UploadBlogImage(ctx context.Context, actor entity.UserLoginData, id string, imageFile *multipart.FileHeader) (string, error)
	DeleteBlog(ctx context.Context, actor entity.UserLoginData, id string) error
}

type blogService struct {
	log            *logrus.Logger
	blogRepository blogRepository.Repository

	blogDomain BlogDomain
}

func (b *blogService) Blog() BlogDomain {
	return b.blogDomain
}

type blogDomainImpl struct {
	log          *logrus.Logger
	repo         blogRepository.Repository
	geminiClient gemini.IGemini
	redisServer  redis.IRedis
	s3Client     s3.ItfS3
	utils        utils.IUtils
}

func New(log *logrus.Logger,
	blogRepo blogRepository.Repository,
	geminiClient gemini.IGemini,
	redisServer redis.IRedis,
	s3Client s3.ItfS3,
	utils utils.IUtils,
) BlogService {
	return &blogService{
		log:            log,
		blogRepository: blogRepo,

		blogDomain: &blogDomainImpl{
			log:          log,
			repo:         blogRepo,
			geminiClient: geminiClient,
			redisServer:  redisServer,
			s3Client:     s3Client,
			utils:        utils,
		},
	}
}

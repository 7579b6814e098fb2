package blogService

import (
	"context"
	"mime/multipart"
	"time"

	blogs "Robostaan/internal/api/blog"
	blogRepository "Robostaan/internal/api/blog/repository"
	"Robostaan/internal/entity"
	contextPkg "Robostaan/pkg/context"
	"Robostaan/pkg/utils"

	"github.com/sirupsen/logrus"
)

const snippetFallbackLimit = 160

func viewCountKey(blogID string) string {
	return "views:blog:" + blogID
}

func (s *blogDomainImpl) CreateBlog(ctx context.Context, author entity.UserLoginData, req blogs.CreateBlogRequest) (*blogs.BlogResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	blogID, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to generate blog id")
		return nil, blogs.ErrCreateBlog
	}

	snippet := req.Snippet
	if snippet == "" {
		snippet = s.makeSnippet(ctx, requestID, req.Body)
	}

	now := time.Now()
	blog := entity.Blog{
		ID:        blogID,
		Title:     req.Title,
		Body:      req.Body,
		Snippet:   snippet,
		Author:    author.ID,
		Featured:  false,
		Tags:      utils.NormalizeTags(req.Tags),
		CreatedAt: now,
		UpdatedAt: now,
	}

	repoClient, err := s.repo.NewClient(true)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return nil, blogs.ErrCreateBlog
	}
	defer func() {
		if err != nil {
			if errRollback := repoClient.Rollback(); errRollback != nil {
				s.log.WithFields(logrus.Fields{
					"request_id": requestID,
					"error":      errRollback.Error(),
				}).Error("Failed to rollback create blog transaction")
			}
		}
	}()

	if err = repoClient.Blogs.CreateBlog(ctx, blog); err != nil {
		return nil, err
	}

	if len(blog.Tags) > 0 {
		if err = repoClient.Tags.ReplaceTags(ctx, blog.ID, blog.Tags); err != nil {
			return nil, err
		}
	}

	if err = repoClient.Commit(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to commit create blog transaction")
		return nil, blogs.ErrCreateBlog
	}

	result := makeBlogResponse(blog, true)
	return &result, nil
}

func (s *blogDomainImpl) GetBlogByID(ctx context.Context, id string) (*blogs.BlogResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repoClient, err := s.repo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return nil, err
	}

	blog, err := repoClient.Blogs.GetBlogByID(ctx, id)
	if err != nil {
		return nil, err
	}

	tagsByBlog, err := repoClient.Tags.GetTagsByBlogIDs(ctx, []string{blog.ID})
	if err != nil {
		return nil, err
	}
	blog.Tags = tagsByBlog[blog.ID]

	views, err := s.redisServer.IncrementViewCount(ctx, viewCountKey(blog.ID))
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Failed to increment blog view counter")
	} else {
		blog.Views = views
	}

	if blog.ImageURL != "" {
		presigned, errPresign := s.s3Client.PresignUrl(blog.ImageURL)
		if errPresign != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      errPresign.Error(),
			}).Warn("Failed to presign blog image url")
		} else {
			blog.ImageURL = presigned
		}
	}

	result := makeBlogResponse(blog, true)
	return &result, nil
}

func (s *blogDomainImpl) GetAllBlogs(ctx context.Context, limit, offset int) (*blogs.BlogListResponse, error) {
	return s.listBlogs(ctx, func(c blogRepository.Client) ([]entity.Blog, int, error) {
		return c.Blogs.GetAllBlogs(ctx, limit, offset)
	})
}

func (s *blogDomainImpl) GetBlogsByTag(ctx context.Context, tag string, limit, offset int) (*blogs.BlogListResponse, error) {
	return s.listBlogs(ctx, func(c blogRepository.Client) ([]entity.Blog, int, error) {
		return c.Blogs.GetBlogsByTag(ctx, tag, limit, offset)
	})
}

func (s *blogDomainImpl) GetFeaturedBlogs(ctx context.Context, limit, offset int) (*blogs.BlogListResponse, error) {
	return s.listBlogs(ctx, func(c blogRepository.Client) ([]entity.Blog, int, error) {
		return c.Blogs.GetFeaturedBlogs(ctx, limit, offset)
	})
}

func (s *blogDomainImpl) listBlogs(ctx context.Context, list func(c blogRepository.Client) ([]entity.Blog, int, error)) (*blogs.BlogListResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repoClient, err := s.repo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return nil, err
	}

	blogsList, total, err := list(repoClient)
	if err != nil {
		return nil, err
	}

	blogIDs := make([]string, 0, len(blogsList))
	for _, blog := range blogsList {
		blogIDs = append(blogIDs, blog.ID)
	}

	tagsByBlog, err := repoClient.Tags.GetTagsByBlogIDs(ctx, blogIDs)
	if err != nil {
		return nil, err
	}

	result := &blogs.BlogListResponse{
		Blogs: make([]blogs.BlogResponse, 0, len(blogsList)),
		Total: total,
	}
	for _, blog := range blogsList {
		blog.Tags = tagsByBlog[blog.ID]

		views, errViews := s.redisServer.GetViewCount(ctx, viewCountKey(blog.ID))
		if errViews != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"blog_id":    blog.ID,
				"error":      errViews.Error(),
			}).Warn("Failed to read blog view counter")
		} else {
			blog.Views = views
		}

		result.Blogs = append(result.Blogs, makeBlogResponse(blog, false))
	}

	return result, nil
}

func (s *blogDomainImpl) ListTags(ctx context.Context) (*blogs.TagListResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repoClient, err := s.repo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return nil, err
	}

	tags, err := repoClient.Tags.ListTags(ctx)
	if err != nil {
		return nil, err
	}

	return &blogs.TagListResponse{Tags: tags}, nil
}

func (s *blogDomainImpl) UpdateBlog(ctx context.Context, actor entity.UserLoginData, id string, req blogs.UpdateBlogRequest) error {
	requestID := contextPkg.GetRequestID(ctx)

	repoClient, err := s.repo.NewClient(true)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return blogs.ErrUpdateBlog
	}
	defer func() {
		if err != nil {
			if errRollback := repoClient.Rollback(); errRollback != nil {
				s.log.WithFields(logrus.Fields{
					"request_id": requestID,
					"error":      errRollback.Error(),
				}).Error("Failed to rollback update blog transaction")
			}
		}
	}()

	var blog entity.Blog
	blog, err = repoClient.Blogs.GetBlogByID(ctx, id)
	if err != nil {
		return err
	}

	if err = requireBlogOwnership(actor, blog); err != nil {
		return err
	}

	blog.Title = req.Title
	blog.Body = req.Body
	blog.Snippet = req.Snippet
	blog.ImageURL = req.ImageURL

	if err = repoClient.Blogs.UpdateBlog(ctx, blog); err != nil {
		return err
	}

	if req.Tags != nil {
		if err = repoClient.Tags.ReplaceTags(ctx, id, utils.NormalizeTags(req.Tags)); err != nil {
			return err
		}
	}

	if err = repoClient.Commit(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to commit update blog transaction")
		return blogs.ErrUpdateBlog
	}

	return nil
}

func (s *blogDomainImpl) SetFeatured(ctx context.Context, id string, featured bool) error {
	requestID := contextPkg.GetRequestID(ctx)

	repoClient, err := s.repo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return blogs.ErrUpdateBlog
	}

	return repoClient.Blogs.SetFeatured(ctx, id, featured)
}

func (s *blogDomainImpl) UploadBlogImage(ctx context.Context, actor entity.UserLoginData, id string, imageFile *multipart.FileHeader) (string, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repoClient, err := s.repo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return "", blogs.ErrFailedToUpload
	}

	blog, err := repoClient.Blogs.GetBlogByID(ctx, id)
	if err != nil {
		return "", err
	}

	if err := requireBlogOwnership(actor, blog); err != nil {
		return "", err
	}

	if err := s.utils.ValidateImageFile(imageFile); err != nil {
		return "", err
	}

	fileURL, err := s.s3Client.UploadFile(imageFile, "blog-images")
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to upload blog image")
		return "", blogs.ErrFailedToUpload
	}

	if blog.ImageURL != "" {
		if errDelete := s.s3Client.DeleteFile(blog.ImageURL); errDelete != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      errDelete.Error(),
			}).Warn("Failed to delete previous blog image")
		}
	}

	blog.ImageURL = fileURL
	if err := repoClient.Blogs.UpdateBlog(ctx, blog); err != nil {
		return "", err
	}

	presigned, err := s.s3Client.PresignUrl(fileURL)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Failed to presign uploaded blog image url")
		return fileURL, nil
	}

	return presigned, nil
}

func (s *blogDomainImpl) DeleteBlog(ctx context.Context, actor entity.UserLoginData, id string) error {
	requestID := contextPkg.GetRequestID(ctx)

	repoClient, err := s.repo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return blogs.ErrDeleteBlog
	}

	blog, err := repoClient.Blogs.GetBlogByID(ctx, id)
	if err != nil {
		return err
	}

	if err := requireBlogOwnership(actor, blog); err != nil {
		return err
	}

	if blog.ImageURL != "" {
		if errDelete := s.s3Client.DeleteFile(blog.ImageURL); errDelete != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      errDelete.Error(),
			}).Warn("Failed to delete blog image from storage")
		}
	}

	return repoClient.Blogs.DeleteBlog(ctx, id)
}

// makeSnippet asks Gemini for a one-line summary and falls back to a
// truncated body when the API is unavailable.
func (s *blogDomainImpl) makeSnippet(ctx context.Context, requestID string, body string) string {
	if s.geminiClient != nil {
		snippet, err := s.geminiClient.GenerateSnippet(ctx, body)
		if err == nil && snippet != "" {
			return snippet
		}
		if err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Warn("Failed to generate snippet, falling back to truncation")
		}
	}

	return s.utils.TruncateText(body, snippetFallbackLimit)
}

func requireBlogOwnership(actor entity.UserLoginData, blog entity.Blog) error {
	if actor.ID != blog.Author && actor.Role != entity.RoleAdmin {
		return blogs.ErrBlogNotOwned
	}
	return nil
}

func makeBlogResponse(blog entity.Blog, includeBody bool) blogs.BlogResponse {
	body := ""
	if includeBody {
		body = blog.Body
	}

	tags := blog.Tags
	if tags == nil {
		tags = []string{}
	}

	return blogs.BlogResponse{
		ID:           blog.ID,
		Title:        blog.Title,
		Body:         body,
		Snippet:      blog.Snippet,
		ImageURL:     blog.ImageURL,
		Author:       blog.Author,
		Featured:     blog.Featured,
		Tags:         tags,
		LikeCount:    blog.LikeCount,
		CommentCount: blog.CommentCount,
		Views:        blog.Views,
		CreatedAt:    blog.CreatedAt,
		UpdatedAt:    blog.UpdatedAt,
	}
}

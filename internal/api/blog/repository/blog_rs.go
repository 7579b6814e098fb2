package blogRepository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	blogs "Robostaan/internal/api/blog"
	"Robostaan/internal/entity"
	contextPkg "Robostaan/pkg/context"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

type BlogDB struct {
	ID           sql.NullString `db:"id"`
	Title        sql.NullString `db:"title"`
	Body         sql.NullString `db:"body"`
	Snippet      sql.NullString `db:"snippet"`
	ImageURL     sql.NullString `db:"image_url"`
	Author       sql.NullString `db:"author"`
	Featured     bool           `db:"featured"`
	CreatedAt    time.Time      `db:"created_at"`
	UpdatedAt    time.Time      `db:"updated_at"`
	LikeCount    int            `db:"like_count"`
	CommentCount int            `db:"comment_count"`
}

func (r *blogsRepository) CreateBlog(ctx context.Context, blog entity.Blog) error {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"id":         blog.ID,
		"title":      blog.Title,
		"body":       blog.Body,
		"snippet":    blog.Snippet,
		"image_url":  blog.ImageURL,
		"author":     blog.Author,
		"featured":   blog.Featured,
		"created_at": blog.CreatedAt,
		"updated_at": blog.UpdatedAt,
	}

	query, args, err := sqlx.Named(queryCreateBlog, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for CreateBlog")
		return err
	}
	query = r.q.Rebind(query)

	if _, err := r.q.ExecContext(ctx, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when creating blog")
		return err
	}

	return nil
}

func (r *blogsRepository) GetBlogByID(ctx context.Context, id string) (entity.Blog, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var blog BlogDB

	argsKV := map[string]interface{}{
		"id": id,
	}

	query, args, err := sqlx.Named(queryGetBlogByID, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetBlogByID named query preparation err")
		return entity.Blog{}, err
	}

	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(ctx, query, args...).StructScan(&blog); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"id":         id,
			}).Warn("GetBlogByID no rows found")
			return entity.Blog{}, blogs.ErrBlogNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetBlogByID execution err")
		return entity.Blog{}, err
	}

	return r.makeBlog(blog), nil
}

func (r *blogsRepository) GetAllBlogs(ctx context.Context, limit, offset int) ([]entity.Blog, int, error) {
	return r.listBlogs(ctx, queryGetAllBlogs, queryCountAllBlogs, map[string]interface{}{
		"limit":  limit,
		"offset": offset,
	}, map[string]interface{}{})
}

func (r *blogsRepository) GetBlogsByTag(ctx context.Context, tag string, limit, offset int) ([]entity.Blog, int, error) {
	return r.listBlogs(ctx, queryGetBlogsByTag, queryCountBlogsByTag, map[string]interface{}{
		"tag":    tag,
		"limit":  limit,
		"offset": offset,
	}, map[string]interface{}{
		"tag": tag,
	})
}

func (r *blogsRepository) GetFeaturedBlogs(ctx context.Context, limit, offset int) ([]entity.Blog, int, error) {
	return r.listBlogs(ctx, queryGetFeaturedBlogs, queryCountFeaturedBlogs, map[string]interface{}{
		"limit":  limit,
		"offset": offset,
	}, map[string]interface{}{})
}

func (r *blogsRepository) listBlogs(ctx context.Context, listQuery, countQuery string, listArgs, countArgs map[string]interface{}) ([]entity.Blog, int, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var blogsList []BlogDB
	var total int

	cq, cArgs, err := sqlx.Named(countQuery, countArgs)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Count blogs named query preparation err")
		return nil, 0, err
	}

	cq = r.q.Rebind(cq)

	if err := r.q.QueryRowxContext(ctx, cq, cArgs...).Scan(&total); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Count blogs execution err")
		return nil, 0, err
	}

	query, args, err := sqlx.Named(listQuery, listArgs)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("List blogs named query preparation err")
		return nil, 0, err
	}

	query = r.q.Rebind(query)

	if err := r.q.SelectContext(ctx, &blogsList, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("List blogs execution err")
		return nil, 0, err
	}

	var result []entity.Blog
	for _, blogDB := range blogsList {
		result = append(result, r.makeBlog(blogDB))
	}

	return result, total, nil
}

func (r *blogsRepository) UpdateBlog(ctx context.Context, blog entity.Blog) error {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"id":         blog.ID,
		"title":      blog.Title,
		"body":       blog.Body,
		"snippet":    blog.Snippet,
		"image_url":  blog.ImageURL,
		"updated_at": time.Now(),
	}

	query, args, err := sqlx.Named(queryUpdateBlog, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateBlog named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateBlog execution err")
		return err
	}

	return r.requireRowsAffected(requestID, result, blog.ID)
}

func (r *blogsRepository) SetFeatured(ctx context.Context, id string, featured bool) error {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"id":         id,
		"featured":   featured,
		"updated_at": time.Now(),
	}

	query, args, err := sqlx.Named(querySetBlogFeatured, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("SetFeatured named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("SetFeatured execution err")
		return err
	}

	return r.requireRowsAffected(requestID, result, id)
}

func (r *blogsRepository) DeleteBlog(ctx context.Context, id string) error {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"id": id,
	}

	query, args, err := sqlx.Named(queryDeleteBlog, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteBlog named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteBlog execution err")
		return err
	}

	return r.requireRowsAffected(requestID, result, id)
}

func (r *blogsRepository) requireRowsAffected(requestID string, result sql.Result, id string) error {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Rows affected err")
		return err
	}

	if rowsAffected == 0 {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         id,
		}).Warn("No rows affected")
		return blogs.ErrBlogNotFound
	}

	return nil
}

func (r *blogsRepository) makeBlog(blog BlogDB) entity.Blog {
	return entity.Blog{
		ID:           blog.ID.String,
		Title:        blog.Title.String,
		Body:         blog.Body.String,
		Snippet:      blog.Snippet.String,
		ImageURL:     blog.ImageURL.String,
		Author:       blog.Author.String,
		Featured:     blog.Featured,
		CreatedAt:    blog.CreatedAt,
		UpdatedAt:    blog.UpdatedAt,
		LikeCount:    blog.LikeCount,
		CommentCount: blog.CommentCount,
	}
}

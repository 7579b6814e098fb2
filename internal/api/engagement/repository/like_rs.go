package engagementRepository

import (
	"context"
	"errors"

	engagement "Robostaan/internal/api/engagement"
	"Robostaan/internal/entity"
	contextPkg "Robostaan/pkg/context"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/sirupsen/logrus"
)

func (r *likesRepository) CreateLike(ctx context.Context, like entity.Like) error {
	requestID := contextPkg.GetRequestID(ctx)

	query, args, err := sqlx.Named(queryCreateLike, map[string]interface{}{
		"id":         like.ID,
		"user_id":    like.UserID,
		"blog_id":    nullString(like.BlogID),
		"course_id":  nullString(like.CourseID),
		"created_at": like.CreatedAt,
	})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("CreateLike named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	if _, err := r.q.ExecContext(ctx, query, args...); err != nil {
		// Concurrent double-like lands on the unique constraint; the
		// like already exists, so the toggle outcome is the same.
		var pqErr *pq.Error
		if errors.As(err, &pqErr) {
			if pqErr.Code == "23505" {
				return nil
			}
			if pqErr.Code == "23503" {
				return engagement.ErrTargetNotFound
			}
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("CreateLike execution err")
		return err
	}

	return nil
}

func (r *likesRepository) DeleteLike(ctx context.Context, userID string, target entity.TargetType, targetID string) (bool, error) {
	requestID := contextPkg.GetRequestID(ctx)

	deleteQuery := queryDeleteBlogLike
	if target == entity.TargetCourse {
		deleteQuery = queryDeleteCourseLike
	}

	query, args, err := sqlx.Named(deleteQuery, map[string]interface{}{
		"user_id":   userID,
		"target_id": targetID,
	})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteLike named query preparation err")
		return false, err
	}

	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteLike execution err")
		return false, err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Rows affected err")
		return false, err
	}

	return rowsAffected > 0, nil
}

func (r *likesRepository) CountLikes(ctx context.Context, target entity.TargetType, targetID string) (int, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var count int

	countQuery := queryCountBlogLikes
	if target == entity.TargetCourse {
		countQuery = queryCountCourseLikes
	}

	query, args, err := sqlx.Named(countQuery, map[string]interface{}{
		"target_id": targetID,
	})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("CountLikes named query preparation err")
		return 0, err
	}

	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(ctx, query, args...).Scan(&count); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("CountLikes execution err")
		return 0, err
	}

	return count, nil
}

func (r *likesRepository) HasLiked(ctx context.Context, userID string, target entity.TargetType, targetID string) (bool, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var liked bool

	existsQuery := queryHasBlogLike
	if target == entity.TargetCourse {
		existsQuery = queryHasCourseLike
	}

	query, args, err := sqlx.Named(existsQuery, map[string]interface{}{
		"user_id":   userID,
		"target_id": targetID,
	})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("HasLiked named query preparation err")
		return false, err
	}

	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(ctx, query, args...).Scan(&liked); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("HasLiked execution err")
		return false, err
	}

	return liked, nil
}

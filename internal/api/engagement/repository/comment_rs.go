package engagementRepository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	engagement "Robostaan/internal/api/engagement"
	"Robostaan/internal/entity"
	contextPkg "Robostaan/pkg/context"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/sirupsen/logrus"
)

type CommentDB struct {
	ID         sql.NullString `db:"id"`
	BlogID     sql.NullString `db:"blog_id"`
	CourseID   sql.NullString `db:"course_id"`
	ParentID   sql.NullString `db:"parent_id"`
	Author     sql.NullString `db:"author"`
	AuthorName sql.NullString `db:"author_name"`
	Body       sql.NullString `db:"body"`
	CreatedAt  time.Time      `db:"created_at"`
	UpdatedAt  time.Time      `db:"updated_at"`
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func (r *commentsRepository) CreateComment(ctx context.Context, comment entity.Comment) error {
	requestID := contextPkg.GetRequestID(ctx)

	query, args, err := sqlx.Named(queryCreateComment, map[string]interface{}{
		"id":         comment.ID,
		"blog_id":    nullString(comment.BlogID),
		"course_id":  nullString(comment.CourseID),
		"parent_id":  nullString(comment.ParentID),
		"author":     comment.Author,
		"body":       comment.Body,
		"created_at": comment.CreatedAt,
		"updated_at": comment.UpdatedAt,
	})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("CreateComment named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	if _, err := r.q.ExecContext(ctx, query, args...); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23503" {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"constraint": pqErr.Constraint,
			}).Warn("CreateComment references a missing target")
			return engagement.ErrTargetNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("CreateComment execution err")
		return err
	}

	return nil
}

func (r *commentsRepository) GetCommentByID(ctx context.Context, id string) (entity.Comment, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var comment CommentDB

	query, args, err := sqlx.Named(queryGetCommentByID, map[string]interface{}{
		"id": id,
	})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetCommentByID named query preparation err")
		return entity.Comment{}, err
	}

	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(ctx, query, args...).StructScan(&comment); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entity.Comment{}, engagement.ErrCommentNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetCommentByID execution err")
		return entity.Comment{}, err
	}

	return r.makeComment(comment), nil
}

func (r *commentsRepository) GetCommentsByTarget(ctx context.Context, target entity.TargetType, targetID string, limit, offset int) ([]entity.Comment, int, error) {
	requestID := contextPkg.GetRequestID(ctx)

	listQuery := queryGetTopLevelCommentsByBlogID
	countQuery := queryCountTopLevelBlogComments
	if target == entity.TargetCourse {
		listQuery = queryGetTopLevelCommentsByCourseID
		countQuery = queryCountTopLevelCourseComments
	}

	var total int
	query, args, err := sqlx.Named(countQuery, map[string]interface{}{
		"target_id": targetID,
	})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetCommentsByTarget count query preparation err")
		return nil, 0, err
	}

	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(ctx, query, args...).Scan(&total); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetCommentsByTarget count execution err")
		return nil, 0, err
	}

	var comments []CommentDB
	query, args, err = sqlx.Named(listQuery, map[string]interface{}{
		"target_id": targetID,
		"limit":     limit,
		"offset":    offset,
	})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetCommentsByTarget named query preparation err")
		return nil, 0, err
	}

	query = r.q.Rebind(query)

	if err := r.q.SelectContext(ctx, &comments, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetCommentsByTarget execution err")
		return nil, 0, err
	}

	var result []entity.Comment
	for _, comment := range comments {
		result = append(result, r.makeComment(comment))
	}

	return result, total, nil
}

func (r *commentsRepository) GetRepliesByParentIDs(ctx context.Context, parentIDs []string) ([]entity.Comment, error) {
	requestID := contextPkg.GetRequestID(ctx)

	if len(parentIDs) == 0 {
		return nil, nil
	}

	query, args, err := sqlx.In(queryGetRepliesByParentIDs, parentIDs)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetRepliesByParentIDs query preparation err")
		return nil, err
	}

	query = r.q.Rebind(query)

	var comments []CommentDB
	if err := r.q.SelectContext(ctx, &comments, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetRepliesByParentIDs execution err")
		return nil, err
	}

	var result []entity.Comment
	for _, comment := range comments {
		result = append(result, r.makeComment(comment))
	}

	return result, nil
}

func (r *commentsRepository) UpdateComment(ctx context.Context, id, body string) error {
	requestID := contextPkg.GetRequestID(ctx)

	query, args, err := sqlx.Named(queryUpdateComment, map[string]interface{}{
		"id":         id,
		"body":       body,
		"updated_at": time.Now(),
	})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateComment named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateComment execution err")
		return err
	}

	return r.requireRowsAffected(requestID, result, id)
}

func (r *commentsRepository) DeleteComment(ctx context.Context, id string) error {
	requestID := contextPkg.GetRequestID(ctx)

	query, args, err := sqlx.Named(queryDeleteComment, map[string]interface{}{
		"id": id,
	})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteComment named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteComment execution err")
		return err
	}

	return r.requireRowsAffected(requestID, result, id)
}

func (r *commentsRepository) requireRowsAffected(requestID string, result sql.Result, id string) error {
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
		return engagement.ErrCommentNotFound
	}

	return nil
}

func (r *commentsRepository) makeComment(comment CommentDB) entity.Comment {
	return entity.Comment{
		ID:         comment.ID.String,
		BlogID:     comment.BlogID.String,
		CourseID:   comment.CourseID.String,
		ParentID:   comment.ParentID.String,
		Author:     comment.Author.String,
		AuthorName: comment.AuthorName.String,
		Body:       comment.Body.String,
		CreatedAt:  comment.CreatedAt,
		UpdatedAt:  comment.UpdatedAt,
	}
}

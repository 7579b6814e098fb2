package courseRepository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	courses "Robostaan/internal/api/course"
	"Robostaan/internal/entity"
	contextPkg "Robostaan/pkg/context"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

type CourseDB struct {
	ID              sql.NullString `db:"id"`
	Title           sql.NullString `db:"title"`
	Description     sql.NullString `db:"description"`
	Content         sql.NullString `db:"content"`
	ImageURL        sql.NullString `db:"image_url"`
	Duration        sql.NullString `db:"duration"`
	Category        sql.NullString `db:"category"`
	VideoURL        sql.NullString `db:"video_url"`
	Author          sql.NullString `db:"author"`
	Featured        bool           `db:"featured"`
	CreatedAt       time.Time      `db:"created_at"`
	UpdatedAt       time.Time      `db:"updated_at"`
	EnrollmentCount int            `db:"enrollment_count"`
	LikeCount       int            `db:"like_count"`
}

func (r *coursesRepository) CreateCourse(ctx context.Context, course entity.Course) error {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"id":          course.ID,
		"title":       course.Title,
		"description": course.Description,
		"content":     course.Content,
		"image_url":   course.ImageURL,
		"duration":    course.Duration,
		"category":    course.Category.String(),
		"video_url":   course.VideoURL,
		"author":      course.Author,
		"featured":    course.Featured,
		"created_at":  course.CreatedAt,
		"updated_at":  course.UpdatedAt,
	}

	query, args, err := sqlx.Named(queryCreateCourse, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("CreateCourse named query preparation err")
		return err
	}
	query = r.q.Rebind(query)

	if _, err := r.q.ExecContext(ctx, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when creating course")
		return err
	}

	return nil
}

func (r *coursesRepository) GetCourseByID(ctx context.Context, id string) (entity.Course, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var course CourseDB

	query, args, err := sqlx.Named(queryGetCourseByID, map[string]interface{}{
		"id": id,
	})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetCourseByID named query preparation err")
		return entity.Course{}, err
	}

	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(ctx, query, args...).StructScan(&course); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"id":         id,
			}).Warn("GetCourseByID no rows found")
			return entity.Course{}, courses.ErrCourseNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetCourseByID execution err")
		return entity.Course{}, err
	}

	return r.makeCourse(course), nil
}

func (r *coursesRepository) GetAllCourses(ctx context.Context, limit, offset int) ([]entity.Course, int, error) {
	return r.listCourses(ctx, queryGetAllCourses, queryCountAllCourses, map[string]interface{}{
		"limit":  limit,
		"offset": offset,
	}, map[string]interface{}{})
}

func (r *coursesRepository) GetCoursesByCategory(ctx context.Context, category entity.CourseCategory, limit, offset int) ([]entity.Course, int, error) {
	return r.listCourses(ctx, queryGetCoursesByCategory, queryCountCoursesByCategory, map[string]interface{}{
		"category": category.String(),
		"limit":    limit,
		"offset":   offset,
	}, map[string]interface{}{
		"category": category.String(),
	})
}

func (r *coursesRepository) GetFeaturedCourses(ctx context.Context, limit, offset int) ([]entity.Course, int, error) {
	return r.listCourses(ctx, queryGetFeaturedCourses, queryCountFeaturedCourses, map[string]interface{}{
		"limit":  limit,
		"offset": offset,
	}, map[string]interface{}{})
}

func (r *coursesRepository) listCourses(ctx context.Context, listQuery, countQuery string, listArgs, countArgs map[string]interface{}) ([]entity.Course, int, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var coursesList []CourseDB
	var total int

	cq, cArgs, err := sqlx.Named(countQuery, countArgs)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Count courses named query preparation err")
		return nil, 0, err
	}

	cq = r.q.Rebind(cq)

	if err := r.q.QueryRowxContext(ctx, cq, cArgs...).Scan(&total); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Count courses execution err")
		return nil, 0, err
	}

	query, args, err := sqlx.Named(listQuery, listArgs)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("List courses named query preparation err")
		return nil, 0, err
	}

	query = r.q.Rebind(query)

	if err := r.q.SelectContext(ctx, &coursesList, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("List courses execution err")
		return nil, 0, err
	}

	var result []entity.Course
	for _, courseDB := range coursesList {
		result = append(result, r.makeCourse(courseDB))
	}

	return result, total, nil
}

func (r *coursesRepository) UpdateCourse(ctx context.Context, course entity.Course) error {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"id":          course.ID,
		"title":       course.Title,
		"description": course.Description,
		"content":     course.Content,
		"image_url":   course.ImageURL,
		"duration":    course.Duration,
		"category":    course.Category.String(),
		"video_url":   course.VideoURL,
		"updated_at":  time.Now(),
	}

	query, args, err := sqlx.Named(queryUpdateCourse, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateCourse named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateCourse execution err")
		return err
	}

	return r.requireRowsAffected(requestID, result, course.ID)
}

func (r *coursesRepository) SetFeatured(ctx context.Context, id string, featured bool) error {
	requestID := contextPkg.GetRequestID(ctx)

	query, args, err := sqlx.Named(querySetCourseFeatured, map[string]interface{}{
		"id":         id,
		"featured":   featured,
		"updated_at": time.Now(),
	})
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

func (r *coursesRepository) DeleteCourse(ctx context.Context, id string) error {
	requestID := contextPkg.GetRequestID(ctx)

	query, args, err := sqlx.Named(queryDeleteCourse, map[string]interface{}{
		"id": id,
	})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteCourse named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteCourse execution err")
		return err
	}

	return r.requireRowsAffected(requestID, result, id)
}

func (r *coursesRepository) requireRowsAffected(requestID string, result sql.Result, id string) error {
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
		return courses.ErrCourseNotFound
	}

	return nil
}

func (r *coursesRepository) makeCourse(course CourseDB) entity.Course {
	return entity.Course{
		ID:              course.ID.String,
		Title:           course.Title.String,
		Description:     course.Description.String,
		Content:         course.Content.String,
		ImageURL:        course.ImageURL.String,
		Duration:        course.Duration.String,
		Category:        entity.CourseCategory(course.Category.String),
		VideoURL:        course.VideoURL.String,
		Author:          course.Author.String,
		Featured:        course.Featured,
		CreatedAt:       course.CreatedAt,
		UpdatedAt:       course.UpdatedAt,
		EnrollmentCount: course.EnrollmentCount,
		LikeCount:       course.LikeCount,
	}
}

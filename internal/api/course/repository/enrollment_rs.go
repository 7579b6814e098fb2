package courseRepository

import (
	"context"
	"database/sql"
	"errors"

	courses "Robostaan/internal/api/course"
	"Robostaan/internal/entity"
	contextPkg "Robostaan/pkg/context"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/sirupsen/logrus"
)

func (r *enrollmentsRepository) CreateEnrollment(ctx context.Context, enrollment entity.Enrollment) error {
	requestID := contextPkg.GetRequestID(ctx)

	query, args, err := sqlx.Named(queryCreateEnrollment, map[string]interface{}{
		"id":           enrollment.ID,
		"user_id":      enrollment.UserID,
		"course_id":    enrollment.CourseID,
		"progress":     enrollment.Progress,
		"completed_at": enrollment.CompletedAt,
		"created_at":   enrollment.CreatedAt,
		"updated_at":   enrollment.UpdatedAt,
	})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("CreateEnrollment named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	if _, err := r.q.ExecContext(ctx, query, args...); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" && pqErr.Constraint == "enrollments_user_course_key" {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"course_id":  enrollment.CourseID,
			}).Warn("Enrollment already exists")
			return courses.ErrAlreadyEnrolled
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("CreateEnrollment execution err")
		return err
	}

	return nil
}

func (r *enrollmentsRepository) GetEnrollment(ctx context.Context, userID, courseID string) (entity.Enrollment, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var enrollment entity.Enrollment

	query, args, err := sqlx.Named(queryGetEnrollment, map[string]interface{}{
		"user_id":   userID,
		"course_id": courseID,
	})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetEnrollment named query preparation err")
		return entity.Enrollment{}, err
	}

	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(ctx, query, args...).StructScan(&enrollment); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entity.Enrollment{}, courses.ErrEnrollmentNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetEnrollment execution err")
		return entity.Enrollment{}, err
	}

	return enrollment, nil
}

func (r *enrollmentsRepository) GetEnrollmentsByUserID(ctx context.Context, userID string) ([]entity.Enrollment, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var enrollments []entity.Enrollment

	query, args, err := sqlx.Named(queryGetEnrollmentsByUserID, map[string]interface{}{
		"user_id": userID,
	})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetEnrollmentsByUserID named query preparation err")
		return nil, err
	}

	query = r.q.Rebind(query)

	if err := r.q.SelectContext(ctx, &enrollments, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetEnrollmentsByUserID execution err")
		return nil, err
	}

	return enrollments, nil
}

func (r *enrollmentsRepository) UpdateProgress(ctx context.Context, enrollment entity.Enrollment) error {
	requestID := contextPkg.GetRequestID(ctx)

	query, args, err := sqlx.Named(queryUpdateProgress, map[string]interface{}{
		"user_id":      enrollment.UserID,
		"course_id":    enrollment.CourseID,
		"progress":     enrollment.Progress,
		"completed_at": enrollment.CompletedAt,
		"updated_at":   enrollment.UpdatedAt,
	})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateProgress named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateProgress execution err")
		return err
	}

	return r.requireRowsAffected(requestID, result, enrollment.CourseID)
}

func (r *enrollmentsRepository) DeleteEnrollment(ctx context.Context, userID, courseID string) error {
	requestID := contextPkg.GetRequestID(ctx)

	query, args, err := sqlx.Named(queryDeleteEnrollment, map[string]interface{}{
		"user_id":   userID,
		"course_id": courseID,
	})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteEnrollment named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteEnrollment execution err")
		return err
	}

	return r.requireRowsAffected(requestID, result, courseID)
}

func (r *enrollmentsRepository) requireRowsAffected(requestID string, result sql.Result, id string) error {
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
		return courses.ErrEnrollmentNotFound
	}

	return nil
}

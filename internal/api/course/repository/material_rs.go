package courseRepository

import (
	"context"
	"database/sql"

	courses "Robostaan/internal/api/course"
	"Robostaan/internal/entity"
	contextPkg "Robostaan/pkg/context"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

func (r *materialsRepository) AddMaterial(ctx context.Context, material entity.CourseMaterial) error {
	requestID := contextPkg.GetRequestID(ctx)

	query, args, err := sqlx.Named(queryAddMaterial, map[string]interface{}{
		"id":        material.ID,
		"course_id": material.CourseID,
		"title":     material.Title,
		"url":       material.URL,
		"position":  material.Position,
	})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("AddMaterial named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	if _, err := r.q.ExecContext(ctx, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("AddMaterial execution err")
		return err
	}

	return nil
}

func (r *materialsRepository) GetMaterialsByCourseID(ctx context.Context, courseID string) ([]entity.CourseMaterial, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var materials []entity.CourseMaterial

	query, args, err := sqlx.Named(queryGetMaterialsByCourseID, map[string]interface{}{
		"course_id": courseID,
	})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetMaterialsByCourseID named query preparation err")
		return nil, err
	}

	query = r.q.Rebind(query)

	if err := r.q.SelectContext(ctx, &materials, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetMaterialsByCourseID execution err")
		return nil, err
	}

	return materials, nil
}

func (r *materialsRepository) DeleteMaterial(ctx context.Context, courseID, materialID string) error {
	requestID := contextPkg.GetRequestID(ctx)

	query, args, err := sqlx.Named(queryDeleteMaterial, map[string]interface{}{
		"id":        materialID,
		"course_id": courseID,
	})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteMaterial named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteMaterial execution err")
		return err
	}

	return r.requireRowsAffected(requestID, result, materialID)
}

func (r *materialsRepository) requireRowsAffected(requestID string, result sql.Result, id string) error {
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
		return courses.ErrMaterialNotFound
	}

	return nil
}

package courseService

import (
	"context"
	"database/sql"
	"time"

	courses "Robostaan/internal/api/course"
	"Robostaan/internal/entity"
	contextPkg "Robostaan/pkg/context"

	"github.com/sirupsen/logrus"
)

// clampProgress keeps progress inside [0, 100] so the database CHECK
// constraint never fires for out-of-range client input.
func clampProgress(progress int) int {
	if progress < 0 {
		return 0
	}
	if progress > 100 {
		return 100
	}
	return progress
}

func (s *enrollmentDomainImpl) Enroll(ctx context.Context, user entity.UserLoginData, courseID string) (*courses.EnrollmentResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repoClient, err := s.repo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return nil, err
	}

	if _, err := repoClient.Courses.GetCourseByID(ctx, courseID); err != nil {
		return nil, err
	}

	enrollmentID, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to generate enrollment id")
		return nil, err
	}

	now := time.Now()
	enrollment := entity.Enrollment{
		ID:        enrollmentID,
		UserID:    user.ID,
		CourseID:  courseID,
		Progress:  0,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := repoClient.Enrollments.CreateEnrollment(ctx, enrollment); err != nil {
		return nil, err
	}

	result := makeEnrollmentResponse(enrollment)
	return &result, nil
}

func (s *enrollmentDomainImpl) GetMyEnrollments(ctx context.Context, user entity.UserLoginData) (*courses.EnrollmentListResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repoClient, err := s.repo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return nil, err
	}

	enrollments, err := repoClient.Enrollments.GetEnrollmentsByUserID(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	result := &courses.EnrollmentListResponse{
		Enrollments: make([]courses.EnrollmentResponse, 0, len(enrollments)),
	}
	for _, enrollment := range enrollments {
		result.Enrollments = append(result.Enrollments, makeEnrollmentResponse(enrollment))
	}

	return result, nil
}

func (s *enrollmentDomainImpl) UpdateProgress(ctx context.Context, user entity.UserLoginData, courseID string, progress int) (*courses.EnrollmentResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repoClient, err := s.repo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return nil, err
	}

	enrollment, err := repoClient.Enrollments.GetEnrollment(ctx, user.ID, courseID)
	if err != nil {
		return nil, err
	}

	enrollment.Progress = clampProgress(progress)
	enrollment.UpdatedAt = time.Now()

	// A course is completed the first time progress reaches 100; the
	// completion timestamp is kept even if progress later drops.
	if enrollment.Progress == 100 && !enrollment.CompletedAt.Valid {
		enrollment.CompletedAt = sql.NullTime{Time: time.Now(), Valid: true}
	}

	if err := repoClient.Enrollments.UpdateProgress(ctx, enrollment); err != nil {
		return nil, err
	}

	result := makeEnrollmentResponse(enrollment)
	return &result, nil
}

func (s *enrollmentDomainImpl) Unenroll(ctx context.Context, user entity.UserLoginData, courseID string) error {
	requestID := contextPkg.GetRequestID(ctx)

	repoClient, err := s.repo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return err
	}

	return repoClient.Enrollments.DeleteEnrollment(ctx, user.ID, courseID)
}

func makeEnrollmentResponse(enrollment entity.Enrollment) courses.EnrollmentResponse {
	var completedAt *time.Time
	if enrollment.CompletedAt.Valid {
		t := enrollment.CompletedAt.Time
		completedAt = &t
	}

	return courses.EnrollmentResponse{
		ID:          enrollment.ID,
		CourseID:    enrollment.CourseID,
		Progress:    enrollment.Progress,
		CompletedAt: completedAt,
		CreatedAt:   enrollment.CreatedAt,
		UpdatedAt:   enrollment.UpdatedAt,
	}
}

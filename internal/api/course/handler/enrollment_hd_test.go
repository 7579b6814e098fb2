package courseHandler

import (
	"context"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	courses "Robostaan/internal/api/course"
	courseRepository "Robostaan/internal/api/course/repository"
	courseService "Robostaan/internal/api/course/service"
	"Robostaan/internal/entity"
	"Robostaan/internal/middleware"
	"Robostaan/pkg/utils"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEnrollmentRepo struct {
	enrollments map[string]entity.Enrollment // key: userID + "/" + courseID
}

func (f *fakeEnrollmentRepo) NewClient(tx bool) (courseRepository.Client, error) {
	return courseRepository.Client{
		Enrollments: &fakeEnrollments{store: f.enrollments},
		Commit:      func() error { return nil },
		Rollback:    func() error { return nil },
	}, nil
}

type fakeEnrollments struct {
	store map[string]entity.Enrollment
}

func enrollmentKey(userID, courseID string) string {
	return userID + "/" + courseID
}

func (f *fakeEnrollments) CreateEnrollment(_ context.Context, enrollment entity.Enrollment) error {
	f.store[enrollmentKey(enrollment.UserID, enrollment.CourseID)] = enrollment
	return nil
}

func (f *fakeEnrollments) GetEnrollment(_ context.Context, userID, courseID string) (entity.Enrollment, error) {
	enrollment, ok := f.store[enrollmentKey(userID, courseID)]
	if !ok {
		return entity.Enrollment{}, courses.ErrEnrollmentNotFound
	}
	return enrollment, nil
}

func (f *fakeEnrollments) GetEnrollmentsByUserID(_ context.Context, userID string) ([]entity.Enrollment, error) {
	var result []entity.Enrollment
	for _, enrollment := range f.store {
		if enrollment.UserID == userID {
			result = append(result, enrollment)
		}
	}
	return result, nil
}

func (f *fakeEnrollments) UpdateProgress(_ context.Context, enrollment entity.Enrollment) error {
	key := enrollmentKey(enrollment.UserID, enrollment.CourseID)
	if _, ok := f.store[key]; !ok {
		return courses.ErrEnrollmentNotFound
	}
	f.store[key] = enrollment
	return nil
}

func (f *fakeEnrollments) DeleteEnrollment(_ context.Context, userID, courseID string) error {
	delete(f.store, enrollmentKey(userID, courseID))
	return nil
}

func newProgressTestApp(repo *fakeEnrollmentRepo, user entity.UserLoginData) *fiber.App {
	log := logrus.New()
	handler := New(log, courseService.New(log, repo, nil, utils.New()), validator.New(), middleware.New(log))

	app := fiber.New()
	app.Patch("/courses/:id/progress",
		func(ctx *fiber.Ctx) error {
			ctx.Locals("user", user)
			return ctx.Next()
		},
		handler.HandleUpdateProgress,
	)

	return app
}

func patchProgress(t *testing.T, app *fiber.App, courseID, body string) (int, courses.EnrollmentResponse) {
	t.Helper()

	req := httptest.NewRequest("PATCH", "/courses/"+courseID+"/progress", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	res, err := app.Test(req)
	require.NoError(t, err)

	raw, err := io.ReadAll(res.Body)
	require.NoError(t, err)

	var enrollment courses.EnrollmentResponse
	if res.StatusCode == fiber.StatusOK {
		require.NoError(t, jsoniter.Unmarshal(raw, &enrollment))
	}
	return res.StatusCode, enrollment
}

func TestHandleUpdateProgressClampsOutOfRangeBody(t *testing.T) {
	user := entity.UserLoginData{ID: "user-1", Role: entity.RoleUser}
	repo := &fakeEnrollmentRepo{enrollments: map[string]entity.Enrollment{
		enrollmentKey("user-1", "course-1"): {ID: "enr-1", UserID: "user-1", CourseID: "course-1"},
	}}
	app := newProgressTestApp(repo, user)

	// Out-of-range bodies are accepted and clamped, not rejected with 400.
	status, enrollment := patchProgress(t, app, "course-1", `{"progress":150}`)
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, 100, enrollment.Progress)
	assert.NotNil(t, enrollment.CompletedAt)

	status, enrollment = patchProgress(t, app, "course-1", `{"progress":-20}`)
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, 0, enrollment.Progress)

	stored := repo.enrollments[enrollmentKey("user-1", "course-1")]
	assert.Equal(t, 0, stored.Progress)
	assert.True(t, stored.CompletedAt.Valid)
}

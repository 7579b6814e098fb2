package courseService

import (
	"context"
	"testing"

	courses "Robostaan/internal/api/course"
	"Robostaan/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateCourseRejectsUnknownCategory(t *testing.T) {
	repo := newFakeCourseRepo()
	svc := newEnrollmentTestService(repo)

	instructor := entity.UserLoginData{ID: "instructor-1", Role: entity.RoleInstructor}

	_, err := svc.Course().CreateCourse(context.Background(), instructor, courses.CreateCourseRequest{
		Title:       "Bad category",
		Description: "desc",
		Category:    "Expert",
	})
	assert.ErrorIs(t, err, courses.ErrInvalidCategory)
}

func TestCreateCourseThenGet(t *testing.T) {
	repo := newFakeCourseRepo()
	svc := newEnrollmentTestService(repo)

	instructor := entity.UserLoginData{ID: "instructor-1", Role: entity.RoleInstructor}

	created, err := svc.Course().CreateCourse(context.Background(), instructor, courses.CreateCourseRequest{
		Title:       "Intro to ROS2",
		Description: "First steps with ROS2",
		Category:    "Beginner",
		VideoURL:    "https://videos.example.com/ros2-intro",
	})
	require.NoError(t, err)
	assert.Equal(t, "instructor-1", created.Author)
	assert.False(t, created.Featured)

	got, err := svc.Course().GetCourseByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Beginner", got.Category)
	assert.Equal(t, "https://videos.example.com/ros2-intro", got.VideoURL)
}

func TestUpdateCourseOwnership(t *testing.T) {
	repo := newFakeCourseRepo()
	seedCourse(repo, "course-1", "instructor-1")
	svc := newEnrollmentTestService(repo)

	stranger := entity.UserLoginData{ID: "instructor-2", Role: entity.RoleInstructor}
	err := svc.Course().UpdateCourse(context.Background(), stranger, "course-1", courses.UpdateCourseRequest{
		Title: "Hijacked",
	})
	assert.ErrorIs(t, err, courses.ErrCourseNotOwned)

	// Admins can edit any course.
	admin := entity.UserLoginData{ID: "admin-1", Role: entity.RoleAdmin}
	err = svc.Course().UpdateCourse(context.Background(), admin, "course-1", courses.UpdateCourseRequest{
		Title: "Moderated title",
	})
	assert.NoError(t, err)
}

func TestDeleteCourseGone(t *testing.T) {
	repo := newFakeCourseRepo()
	seedCourse(repo, "course-1", "instructor-1")
	svc := newEnrollmentTestService(repo)

	owner := entity.UserLoginData{ID: "instructor-1", Role: entity.RoleInstructor}
	require.NoError(t, svc.Course().DeleteCourse(context.Background(), owner, "course-1"))

	_, err := svc.Course().GetCourseByID(context.Background(), "course-1")
	assert.ErrorIs(t, err, courses.ErrCourseNotFound)
}

func TestAddMaterialRequiresOwnership(t *testing.T) {
	repo := newFakeCourseRepo()
	seedCourse(repo, "course-1", "instructor-1")
	svc := newEnrollmentTestService(repo)

	stranger := entity.UserLoginData{ID: "user-1", Role: entity.RoleUser}
	_, err := svc.Course().AddMaterial(context.Background(), stranger, "course-1", courses.AddMaterialRequest{
		Title: "Slides",
		URL:   "https://files.example.com/slides.pdf",
	})
	assert.ErrorIs(t, err, courses.ErrCourseNotOwned)

	owner := entity.UserLoginData{ID: "instructor-1", Role: entity.RoleInstructor}
	material, err := svc.Course().AddMaterial(context.Background(), owner, "course-1", courses.AddMaterialRequest{
		Title: "Slides",
		URL:   "https://files.example.com/slides.pdf",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, material.ID)

	got, err := svc.Course().GetCourseByID(context.Background(), "course-1")
	require.NoError(t, err)
	require.Len(t, got.Materials, 1)
	assert.Equal(t, "Slides", got.Materials[0].Title)
}

package courseService

import (
	"context"
	"testing"
	"time"

	courses "Robostaan/internal/api/course"
	courseRepository "Robostaan/internal/api/course/repository"
	"Robostaan/internal/entity"
	"Robostaan/pkg/utils"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCourseState struct {
	courses     map[string]entity.Course
	materials   map[string][]entity.CourseMaterial
	enrollments map[string]entity.Enrollment // key: userID + "/" + courseID
}

func enrollmentKey(userID, courseID string) string {
	return userID + "/" + courseID
}

type fakeCourseRepo struct {
	state *fakeCourseState
}

func newFakeCourseRepo() *fakeCourseRepo {
	return &fakeCourseRepo{state: &fakeCourseState{
		courses:     make(map[string]entity.Course),
		materials:   make(map[string][]entity.CourseMaterial),
		enrollments: make(map[string]entity.Enrollment),
	}}
}

func (f *fakeCourseRepo) NewClient(tx bool) (courseRepository.Client, error) {
	return courseRepository.Client{
		Courses:     &fakeCourses{state: f.state},
		Materials:   &fakeMaterials{state: f.state},
		Enrollments: &fakeEnrollments{state: f.state},
		Commit:      func() error { return nil },
		Rollback:    func() error { return nil },
	}, nil
}

type fakeCourses struct {
	state *fakeCourseState
}

func (f *fakeCourses) CreateCourse(_ context.Context, course entity.Course) error {
	f.state.courses[course.ID] = course
	return nil
}

func (f *fakeCourses) GetCourseByID(_ context.Context, id string) (entity.Course, error) {
	course, ok := f.state.courses[id]
	if !ok {
		return entity.Course{}, courses.ErrCourseNotFound
	}
	return course, nil
}

func (f *fakeCourses) GetAllCourses(_ context.Context, limit, offset int) ([]entity.Course, int, error) {
	var all []entity.Course
	for _, course := range f.state.courses {
		all = append(all, course)
	}
	return all, len(all), nil
}

func (f *fakeCourses) GetCoursesByCategory(_ context.Context, category entity.CourseCategory, limit, offset int) ([]entity.Course, int, error) {
	var matched []entity.Course
	for _, course := range f.state.courses {
		if course.Category == category {
			matched = append(matched, course)
		}
	}
	return matched, len(matched), nil
}

func (f *fakeCourses) GetFeaturedCourses(_ context.Context, limit, offset int) ([]entity.Course, int, error) {
	var featured []entity.Course
	for _, course := range f.state.courses {
		if course.Featured {
			featured = append(featured, course)
		}
	}
	return featured, len(featured), nil
}

func (f *fakeCourses) UpdateCourse(_ context.Context, course entity.Course) error {
	if _, ok := f.state.courses[course.ID]; !ok {
		return courses.ErrCourseNotFound
	}
	f.state.courses[course.ID] = course
	return nil
}

func (f *fakeCourses) SetFeatured(_ context.Context, id string, featured bool) error {
	course, ok := f.state.courses[id]
	if !ok {
		return courses.ErrCourseNotFound
	}
	course.Featured = featured
	f.state.courses[id] = course
	return nil
}

func (f *fakeCourses) DeleteCourse(_ context.Context, id string) error {
	if _, ok := f.state.courses[id]; !ok {
		return courses.ErrCourseNotFound
	}
	delete(f.state.courses, id)
	return nil
}

type fakeMaterials struct {
	state *fakeCourseState
}

func (f *fakeMaterials) AddMaterial(_ context.Context, material entity.CourseMaterial) error {
	f.state.materials[material.CourseID] = append(f.state.materials[material.CourseID], material)
	return nil
}

func (f *fakeMaterials) GetMaterialsByCourseID(_ context.Context, courseID string) ([]entity.CourseMaterial, error) {
	return f.state.materials[courseID], nil
}

func (f *fakeMaterials) DeleteMaterial(_ context.Context, courseID, materialID string) error {
	kept := f.state.materials[courseID][:0]
	found := false
	for _, material := range f.state.materials[courseID] {
		if material.ID == materialID {
			found = true
			continue
		}
		kept = append(kept, material)
	}
	if !found {
		return courses.ErrMaterialNotFound
	}
	f.state.materials[courseID] = kept
	return nil
}

type fakeEnrollments struct {
	state *fakeCourseState
}

func (f *fakeEnrollments) CreateEnrollment(_ context.Context, enrollment entity.Enrollment) error {
	key := enrollmentKey(enrollment.UserID, enrollment.CourseID)
	if _, ok := f.state.enrollments[key]; ok {
		return courses.ErrAlreadyEnrolled
	}
	f.state.enrollments[key] = enrollment
	return nil
}

func (f *fakeEnrollments) GetEnrollment(_ context.Context, userID, courseID string) (entity.Enrollment, error) {
	enrollment, ok := f.state.enrollments[enrollmentKey(userID, courseID)]
	if !ok {
		return entity.Enrollment{}, courses.ErrEnrollmentNotFound
	}
	return enrollment, nil
}

func (f *fakeEnrollments) GetEnrollmentsByUserID(_ context.Context, userID string) ([]entity.Enrollment, error) {
	var result []entity.Enrollment
	for _, enrollment := range f.state.enrollments {
		if enrollment.UserID == userID {
			result = append(result, enrollment)
		}
	}
	return result, nil
}

func (f *fakeEnrollments) UpdateProgress(_ context.Context, enrollment entity.Enrollment) error {
	key := enrollmentKey(enrollment.UserID, enrollment.CourseID)
	if _, ok := f.state.enrollments[key]; !ok {
		return courses.ErrEnrollmentNotFound
	}
	f.state.enrollments[key] = enrollment
	return nil
}

func (f *fakeEnrollments) DeleteEnrollment(_ context.Context, userID, courseID string) error {
	key := enrollmentKey(userID, courseID)
	if _, ok := f.state.enrollments[key]; !ok {
		return courses.ErrEnrollmentNotFound
	}
	delete(f.state.enrollments, key)
	return nil
}

func newEnrollmentTestService(repo *fakeCourseRepo) CourseService {
	return New(logrus.New(), repo, nil, utils.New())
}

func seedCourse(repo *fakeCourseRepo, id, author string) {
	repo.state.courses[id] = entity.Course{
		ID:       id,
		Title:    "Intro to ROS2",
		Category: entity.CategoryBeginner,
		Author:   author,
	}
}

func TestEnrollCreatesEnrollmentAtZeroProgress(t *testing.T) {
	repo := newFakeCourseRepo()
	seedCourse(repo, "course-1", "instructor-1")
	svc := newEnrollmentTestService(repo)

	user := entity.UserLoginData{ID: "user-1", Role: entity.RoleUser}

	enrollment, err := svc.Enrollment().Enroll(context.Background(), user, "course-1")
	require.NoError(t, err)
	assert.Equal(t, 0, enrollment.Progress)
	assert.Nil(t, enrollment.CompletedAt)

	_, err = svc.Enrollment().Enroll(context.Background(), user, "course-1")
	assert.ErrorIs(t, err, courses.ErrAlreadyEnrolled)
}

func TestEnrollUnknownCourse(t *testing.T) {
	repo := newFakeCourseRepo()
	svc := newEnrollmentTestService(repo)

	user := entity.UserLoginData{ID: "user-1", Role: entity.RoleUser}

	_, err := svc.Enrollment().Enroll(context.Background(), user, "missing")
	assert.ErrorIs(t, err, courses.ErrCourseNotFound)
}

func TestUpdateProgressClampsRange(t *testing.T) {
	repo := newFakeCourseRepo()
	seedCourse(repo, "course-1", "instructor-1")
	svc := newEnrollmentTestService(repo)

	user := entity.UserLoginData{ID: "user-1", Role: entity.RoleUser}
	_, err := svc.Enrollment().Enroll(context.Background(), user, "course-1")
	require.NoError(t, err)

	enrollment, err := svc.Enrollment().UpdateProgress(context.Background(), user, "course-1", 150)
	require.NoError(t, err)
	assert.Equal(t, 100, enrollment.Progress)
	require.NotNil(t, enrollment.CompletedAt)
	assert.WithinDuration(t, time.Now(), *enrollment.CompletedAt, time.Minute)

	enrollment, err = svc.Enrollment().UpdateProgress(context.Background(), user, "course-1", -10)
	require.NoError(t, err)
	assert.Equal(t, 0, enrollment.Progress)
	// Completion timestamp survives a progress drop.
	assert.NotNil(t, enrollment.CompletedAt)
}

func TestUnenrollRemovesEnrollment(t *testing.T) {
	repo := newFakeCourseRepo()
	seedCourse(repo, "course-1", "instructor-1")
	svc := newEnrollmentTestService(repo)

	user := entity.UserLoginData{ID: "user-1", Role: entity.RoleUser}
	_, err := svc.Enrollment().Enroll(context.Background(), user, "course-1")
	require.NoError(t, err)

	require.NoError(t, svc.Enrollment().Unenroll(context.Background(), user, "course-1"))

	list, err := svc.Enrollment().GetMyEnrollments(context.Background(), user)
	require.NoError(t, err)
	assert.Empty(t, list.Enrollments)

	assert.ErrorIs(t, svc.Enrollment().Unenroll(context.Background(), user, "course-1"), courses.ErrEnrollmentNotFound)
}

package courseRepository

import (
	"Robostaan/internal/entity"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type SQLExecutor interface {
	sqlx.ExtContext
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	QueryRowxContext(ctx context.Context, query string, args ...interface{}) *sqlx.Row
	Rebind(query string) string
}

func New(db *sqlx.DB, log *logrus.Logger) Repository {
	return &repository{
		DB:  db,
		log: log,
	}
}

type repository struct {
	DB  *sqlx.DB
	log *logrus.Logger
}

type Repository interface {
	NewClient(tx bool) (Client, error)
}

func (r *repository) NewClient(tx bool) (Client, error) {
	var sqlExecutor SQLExecutor
	var commitFunc, rollbackFunc func() error

	sqlExecutor = r.DB

	if tx {
		txx, err := r.DB.Beginx()
		if err != nil {
			return Client{}, err
		}

		sqlExecutor = txx
		commitFunc = txx.Commit
		rollbackFunc = txx.Rollback
	} else {
		commitFunc = func() error { return nil }
		rollbackFunc = func() error { return nil }
	}

	return Client{
		Courses:     &coursesRepository{q: sqlExecutor, log: r.log},
		Materials:   &materialsRepository{q: sqlExecutor, log: r.log},
		Enrollments: &enrollmentsRepository{q: sqlExecutor, log: r.log},
		Commit:      commitFunc,
		Rollback:    rollbackFunc,
	}, nil
}

type Client struct {
	Courses interface {
		CreateCourse(ctx context.Context, course entity.Course) error
		GetCourseByID(ctx context.Context, id string) (entity.Course, error)
		GetAllCourses(ctx context.Context, limit, offset int) ([]entity.Course, int, error)
		GetCoursesByCategory(ctx context.Context, category entity.CourseCategory, limit, offset int) ([]entity.Course, int, error)
		GetFeaturedCourses(ctx context.Context, limit, offset int) ([]entity.Course, int, error)
		UpdateCourse(ctx context.Context, course entity.Course) error
		SetFeatured(ctx context.Context, id string, featured bool) error
		DeleteCourse(ctx context.Context, id string) error
	}

	Materials interface {
		AddMaterial(ctx context.Context, material entity.CourseMaterial) error
		GetMaterialsByCourseID(ctx context.Context, courseID string) ([]entity.CourseMaterial, error)
		DeleteMaterial(ctx context.Context, courseID, materialID string) error
	}

	Enrollments interface {
		CreateEnrollment(ctx context.Context, enrollment entity.Enrollment) error
		GetEnrollment(ctx context.Context, userID, courseID string) (entity.Enrollment, error)
		GetEnrollmentsByUserID(ctx context.Context, userID string) ([]entity.Enrollment, error)
		UpdateProgress(ctx context.Context, enrollment entity.Enrollment) error
		DeleteEnrollment(ctx context.Context, userID, courseID string) error
	}

	Commit   func() error
	Rollback func() error
}

type coursesRepository struct {
	q   SQLExecutor
	log *logrus.Logger
}

type materialsRepository struct {
	q   SQLExecutor
	log *logrus.Logger
}

type enrollmentsRepository struct {
	q   SQLExecutor
	log *logrus.Logger
}

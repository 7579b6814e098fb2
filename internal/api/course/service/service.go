package courseService

import (
	"context"
	"mime/multipart"

	courses "Robostaan/internal/api/course"
	courseRepository "Robostaan/internal/api/course/repository"
	"Robostaan/internal/entity"
	"Robostaan/pkg/s3"
	"Robostaan/pkg/utils"

	"github.com/sirupsen/logrus"
)

type CourseService interface {
	Course() CourseDomain
	Enrollment() EnrollmentDomain
}

type CourseDomain interface {
	CreateCourse(ctx context.Context, author entity.UserLoginData, req courses.CreateCourseRequest) (*courses.CourseResponse, error)
	GetCourseByID(ctx context.Context, id string) (*courses.CourseResponse, error)
	GetAllCourses(ctx context.Context, limit, offset int) (*courses.CourseListResponse, error)
	GetCoursesByCategory(ctx context.Context, category string, limit, offset int) (*courses.CourseListResponse, error)
	GetFeaturedCourses(ctx context.Context, limit, offset int) (*courses.CourseListResponse, error)
	UpdateCourse(ctx context.Context, actor entity.UserLoginData, id string, req courses.UpdateCourseRequest) error
	SetFeatured(ctx context.Context, id string, featured bool) error
	UploadCourseImage(ctx context.Context, actor entity.UserLoginData, id string, imageFile *multipart.FileHeader) (string, error)
	AddMaterial(ctx context.Context, actor entity.UserLoginData, courseID string, req courses.AddMaterialRequest) (*courses.MaterialResponse, error)
	DeleteMaterial(ctx context.Context, actor entity.UserLoginData, courseID, materialID string) error
	DeleteCourse(ctx context.Context, actor entity.UserLoginData, id string) error
}

type EnrollmentDomain interface {
	Enroll(ctx context.Context, user entity.UserLoginData, courseID string) (*courses.EnrollmentResponse, error)
	GetMyEnrollments(ctx context.Context, user entity.UserLoginData) (*courses.EnrollmentListResponse, error)
	UpdateProgress(ctx context.Context, user entity.UserLoginData, courseID string, progress int) (*courses.EnrollmentResponse, error)
	Unenroll(ctx context.Context, user entity.UserLoginData, courseID string) error
}

type courseService struct {
	log              *logrus.Logger
	courseRepository courseRepository.Repository

	courseDomain     CourseDomain
	enrollmentDomain EnrollmentDomain
}

func (s *courseService) Course() CourseDomain {
	return s.courseDomain
}

func (s *courseService) Enrollment() EnrollmentDomain {
	return s.enrollmentDomain
}

type courseDomainImpl struct {
	log      *logrus.Logger
	repo     courseRepository.Repository
	s3Client s3.ItfS3
	utils    utils.IUtils
}

type enrollmentDomainImpl struct {
	log   *logrus.Logger
	repo  courseRepository.Repository
	utils utils.IUtils
}

func New(log *logrus.Logger,
	courseRepo courseRepository.Repository,
	s3Client s3.ItfS3,
	utils utils.IUtils,
) CourseService {
	return &courseService{
		log:              log,
		courseRepository: courseRepo,

		courseDomain: &courseDomainImpl{
			log:      log,
			repo:     courseRepo,
			s3Client: s3Client,
			utils:    utils,
		},
		enrollmentDomain: &enrollmentDomainImpl{
			log:   log,
			repo:  courseRepo,
			utils: utils,
		},
	}
}

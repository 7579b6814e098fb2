package courseService

import (
	"context"
	"mime/multipart"
	"time"

	courses "Robostaan/internal/api/course"
	courseRepository "Robostaan/internal/api/course/repository"
	"Robostaan/internal/entity"
	contextPkg "Robostaan/pkg/context"

	"github.com/sirupsen/logrus"
)

func (s *courseDomainImpl) CreateCourse(ctx context.Context, author entity.UserLoginData, req courses.CreateCourseRequest) (*courses.CourseResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	category := entity.CourseCategory(req.Category)
	if !category.Valid() {
		return nil, courses.ErrInvalidCategory
	}

	courseID, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to generate course id")
		return nil, courses.ErrCreateCourse
	}

	now := time.Now()
	course := entity.Course{
		ID:          courseID,
		Title:       req.Title,
		Description: req.Description,
		Content:     req.Content,
		Duration:    req.Duration,
		Category:    category,
		VideoURL:    req.VideoURL,
		Author:      author.ID,
		Featured:    false,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	repoClient, err := s.repo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return nil, courses.ErrCreateCourse
	}

	if err := repoClient.Courses.CreateCourse(ctx, course); err != nil {
		return nil, err
	}

	result := makeCourseResponse(course, true)
	return &result, nil
}

func (s *courseDomainImpl) GetCourseByID(ctx context.Context, id string) (*courses.CourseResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repoClient, err := s.repo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return nil, err
	}

	course, err := repoClient.Courses.GetCourseByID(ctx, id)
	if err != nil {
		return nil, err
	}

	materials, err := repoClient.Materials.GetMaterialsByCourseID(ctx, course.ID)
	if err != nil {
		return nil, err
	}
	course.Materials = materials

	if course.ImageURL != "" {
		presigned, errPresign := s.s3Client.PresignUrl(course.ImageURL)
		if errPresign != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      errPresign.Error(),
			}).Warn("Failed to presign course image url")
		} else {
			course.ImageURL = presigned
		}
	}

	result := makeCourseResponse(course, true)
	return &result, nil
}

func (s *courseDomainImpl) GetAllCourses(ctx context.Context, limit, offset int) (*courses.CourseListResponse, error) {
	return s.listCourses(ctx, func(c courseRepository.Client) ([]entity.Course, int, error) {
		return c.Courses.GetAllCourses(ctx, limit, offset)
	})
}

func (s *courseDomainImpl) GetCoursesByCategory(ctx context.Context, category string, limit, offset int) (*courses.CourseListResponse, error) {
	courseCategory := entity.CourseCategory(category)
	if !courseCategory.Valid() {
		return nil, courses.ErrInvalidCategory
	}

	return s.listCourses(ctx, func(c courseRepository.Client) ([]entity.Course, int, error) {
		return c.Courses.GetCoursesByCategory(ctx, courseCategory, limit, offset)
	})
}

func (s *courseDomainImpl) GetFeaturedCourses(ctx context.Context, limit, offset int) (*courses.CourseListResponse, error) {
	return s.listCourses(ctx, func(c courseRepository.Client) ([]entity.Course, int, error) {
		return c.Courses.GetFeaturedCourses(ctx, limit, offset)
	})
}

func (s *courseDomainImpl) listCourses(ctx context.Context, list func(c courseRepository.Client) ([]entity.Course, int, error)) (*courses.CourseListResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repoClient, err := s.repo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return nil, err
	}

	coursesList, total, err := list(repoClient)
	if err != nil {
		return nil, err
	}

	result := &courses.CourseListResponse{
		Courses: make([]courses.CourseResponse, 0, len(coursesList)),
		Total:   total,
	}
	for _, course := range coursesList {
		result.Courses = append(result.Courses, makeCourseResponse(course, false))
	}

	return result, nil
}

func (s *courseDomainImpl) UpdateCourse(ctx context.Context, actor entity.UserLoginData, id string, req courses.UpdateCourseRequest) error {
	requestID := contextPkg.GetRequestID(ctx)

	if req.Category != "" && !entity.CourseCategory(req.Category).Valid() {
		return courses.ErrInvalidCategory
	}

	repoClient, err := s.repo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return courses.ErrUpdateCourse
	}

	course, err := repoClient.Courses.GetCourseByID(ctx, id)
	if err != nil {
		return err
	}

	if err := requireCourseOwnership(actor, course); err != nil {
		return err
	}

	course.Title = req.Title
	course.Description = req.Description
	course.Content = req.Content
	course.Duration = req.Duration
	course.Category = entity.CourseCategory(req.Category)
	course.VideoURL = req.VideoURL

	return repoClient.Courses.UpdateCourse(ctx, course)
}

func (s *courseDomainImpl) SetFeatured(ctx context.Context, id string, featured bool) error {
	requestID := contextPkg.GetRequestID(ctx)

	repoClient, err := s.repo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return courses.ErrUpdateCourse
	}

	return repoClient.Courses.SetFeatured(ctx, id, featured)
}

func (s *courseDomainImpl) UploadCourseImage(ctx context.Context, actor entity.UserLoginData, id string, imageFile *multipart.FileHeader) (string, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repoClient, err := s.repo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return "", courses.ErrFailedToUpload
	}

	course, err := repoClient.Courses.GetCourseByID(ctx, id)
	if err != nil {
		return "", err
	}

	if err := requireCourseOwnership(actor, course); err != nil {
		return "", err
	}

	if err := s.utils.ValidateImageFile(imageFile); err != nil {
		return "", err
	}

	fileURL, err := s.s3Client.UploadFile(imageFile, "course-images")
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to upload course image")
		return "", courses.ErrFailedToUpload
	}

	if course.ImageURL != "" {
		if errDelete := s.s3Client.DeleteFile(course.ImageURL); errDelete != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      errDelete.Error(),
			}).Warn("Failed to delete previous course image")
		}
	}

	course.ImageURL = fileURL
	if err := repoClient.Courses.UpdateCourse(ctx, course); err != nil {
		return "", err
	}

	presigned, err := s.s3Client.PresignUrl(fileURL)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Failed to presign uploaded course image url")
		return fileURL, nil
	}

	return presigned, nil
}

func (s *courseDomainImpl) AddMaterial(ctx context.Context, actor entity.UserLoginData, courseID string, req courses.AddMaterialRequest) (*courses.MaterialResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repoClient, err := s.repo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return nil, courses.ErrUpdateCourse
	}

	course, err := repoClient.Courses.GetCourseByID(ctx, courseID)
	if err != nil {
		return nil, err
	}

	if err := requireCourseOwnership(actor, course); err != nil {
		return nil, err
	}

	materialID, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to generate material id")
		return nil, courses.ErrUpdateCourse
	}

	material := entity.CourseMaterial{
		ID:       materialID,
		CourseID: courseID,
		Title:    req.Title,
		URL:      req.URL,
		Position: req.Position,
	}

	if err := repoClient.Materials.AddMaterial(ctx, material); err != nil {
		return nil, err
	}

	return &courses.MaterialResponse{
		ID:       material.ID,
		Title:    material.Title,
		URL:      material.URL,
		Position: material.Position,
	}, nil
}

func (s *courseDomainImpl) DeleteMaterial(ctx context.Context, actor entity.UserLoginData, courseID, materialID string) error {
	requestID := contextPkg.GetRequestID(ctx)

	repoClient, err := s.repo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return courses.ErrUpdateCourse
	}

	course, err := repoClient.Courses.GetCourseByID(ctx, courseID)
	if err != nil {
		return err
	}

	if err := requireCourseOwnership(actor, course); err != nil {
		return err
	}

	return repoClient.Materials.DeleteMaterial(ctx, courseID, materialID)
}

func (s *courseDomainImpl) DeleteCourse(ctx context.Context, actor entity.UserLoginData, id string) error {
	requestID := contextPkg.GetRequestID(ctx)

	repoClient, err := s.repo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return courses.ErrDeleteCourse
	}

	course, err := repoClient.Courses.GetCourseByID(ctx, id)
	if err != nil {
		return err
	}

	if err := requireCourseOwnership(actor, course); err != nil {
		return err
	}

	if course.ImageURL != "" {
		if errDelete := s.s3Client.DeleteFile(course.ImageURL); errDelete != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      errDelete.Error(),
			}).Warn("Failed to delete course image from storage")
		}
	}

	return repoClient.Courses.DeleteCourse(ctx, id)
}

func requireCourseOwnership(actor entity.UserLoginData, course entity.Course) error {
	if actor.ID != course.Author && actor.Role != entity.RoleAdmin {
		return courses.ErrCourseNotOwned
	}
	return nil
}

func makeCourseResponse(course entity.Course, includeContent bool) courses.CourseResponse {
	content := ""
	if includeContent {
		content = course.Content
	}

	materials := make([]courses.MaterialResponse, 0, len(course.Materials))
	for _, material := range course.Materials {
		materials = append(materials, courses.MaterialResponse{
			ID:       material.ID,
			Title:    material.Title,
			URL:      material.URL,
			Position: material.Position,
		})
	}

	return courses.CourseResponse{
		ID:              course.ID,
		Title:           course.Title,
		Description:     course.Description,
		Content:         content,
		ImageURL:        course.ImageURL,
		Duration:        course.Duration,
		Category:        course.Category.String(),
		VideoURL:        course.VideoURL,
		Author:          course.Author,
		Featured:        course.Featured,
		Materials:       materials,
		EnrollmentCount: course.EnrollmentCount,
		LikeCount:       course.LikeCount,
		CreatedAt:       course.CreatedAt,
		UpdatedAt:       course.UpdatedAt,
	}
}

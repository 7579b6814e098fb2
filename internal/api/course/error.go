package courses

import "Robostaan/pkg/response"

var (
	ErrCourseNotFound     = response.NewError(404, "course not found")
	ErrMaterialNotFound   = response.NewError(404, "course material not found")
	ErrEnrollmentNotFound = response.NewError(404, "enrollment not found")
	ErrAlreadyEnrolled    = response.NewError(409, "already enrolled in course")
	ErrInvalidCategory    = response.NewError(400, "invalid course category")
	ErrInvalidProgress    = response.NewError(400, "progress must be between 0 and 100")
	ErrCourseNotOwned     = response.NewError(403, "course does not belong to user")
	ErrCreateCourse       = response.NewError(500, "failed to create course")
	ErrUpdateCourse       = response.NewError(500, "failed to update course")
	ErrDeleteCourse       = response.NewError(500, "failed to delete course")
	ErrInvalidFileType    = response.NewError(400, "invalid file type")
	ErrFileTooLarge       = response.NewError(400, "file too large")
	ErrFailedToUpload     = response.NewError(500, "failed to upload file")
)

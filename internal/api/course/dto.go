package courses

import "time"

type CreateCourseRequest struct {
	Title       string `json:"title" validate:"required,min=3,max=256"`
	Description string `json:"description" validate:"required,max=1024"`
	Content     string `json:"content" validate:"omitempty"`
	Duration    string `json:"duration" validate:"omitempty,max=64"`
	Category    string `json:"category" validate:"required,oneof=Beginner Intermediate Advanced"`
	VideoURL    string `json:"video_url" validate:"omitempty,url"`
}

type UpdateCourseRequest struct {
	Title       string `json:"title" validate:"omitempty,min=3,max=256"`
	Description string `json:"description" validate:"omitempty,max=1024"`
	Content     string `json:"content" validate:"omitempty"`
	Duration    string `json:"duration" validate:"omitempty,max=64"`
	Category    string `json:"category" validate:"omitempty,oneof=Beginner Intermediate Advanced"`
	VideoURL    string `json:"video_url" validate:"omitempty,url"`
}

type SetFeaturedRequest struct {
	Featured bool `json:"featured"`
}

type AddMaterialRequest struct {
	Title    string `json:"title" validate:"required,min=1,max=256"`
	URL      string `json:"url" validate:"required,url"`
	Position int    `json:"position" validate:"omitempty,min=0"`
}

// Progress carries no range tags on purpose: out-of-range values are
// clamped to [0, 100] by the enrollment service, not rejected.
type UpdateProgressRequest struct {
	Progress int `json:"progress"`
}

type MaterialResponse struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	URL      string `json:"url"`
	Position int    `json:"position"`
}

type CourseResponse struct {
	ID              string             `json:"id"`
	Title           string             `json:"title"`
	Description     string             `json:"description"`
	Content         string             `json:"content,omitempty"`
	ImageURL        string             `json:"image_url"`
	Duration        string             `json:"duration"`
	Category        string             `json:"category"`
	VideoURL        string             `json:"video_url"`
	Author          string             `json:"author"`
	Featured        bool               `json:"featured"`
	Materials       []MaterialResponse `json:"materials,omitempty"`
	EnrollmentCount int                `json:"enrollment_count"`
	LikeCount       int                `json:"like_count"`
	CreatedAt       time.Time          `json:"created_at"`
	UpdatedAt       time.Time          `json:"updated_at"`
}

type CourseListResponse struct {
	Courses []CourseResponse `json:"courses"`
	Total   int              `json:"total"`
}

type EnrollmentResponse struct {
	ID          string     `json:"id"`
	CourseID    string     `json:"course_id"`
	Progress    int        `json:"progress"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

type EnrollmentListResponse struct {
	Enrollments []EnrollmentResponse `json:"enrollments"`
}

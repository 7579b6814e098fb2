package engagement

import "time"

type CreateCommentRequest struct {
	BlogID   string `json:"blog_id" validate:"omitempty"`
	CourseID string `json:"course_id" validate:"omitempty"`
	ParentID string `json:"parent_id" validate:"omitempty"`
	Body     string `json:"body" validate:"required,min=1,max=4096"`
}

type UpdateCommentRequest struct {
	Body string `json:"body" validate:"required,min=1,max=4096"`
}

type ToggleLikeRequest struct {
	BlogID   string `json:"blog_id" validate:"omitempty"`
	CourseID string `json:"course_id" validate:"omitempty"`
}

type CommentResponse struct {
	ID         string            `json:"id"`
	BlogID     string            `json:"blog_id,omitempty"`
	CourseID   string            `json:"course_id,omitempty"`
	ParentID   string            `json:"parent_id,omitempty"`
	Author     string            `json:"author"`
	AuthorName string            `json:"author_name"`
	Body       string            `json:"body"`
	Replies    []CommentResponse `json:"replies,omitempty"`
	CreatedAt  time.Time         `json:"created_at"`
	UpdatedAt  time.Time         `json:"updated_at"`
}

type CommentListResponse struct {
	Comments []CommentResponse `json:"comments"`
	Total    int               `json:"total"`
}

type ToggleLikeResponse struct {
	Liked     bool `json:"liked"`
	LikeCount int  `json:"like_count"`
}

type LikeStatusResponse struct {
	Liked     bool `json:"liked"`
	LikeCount int  `json:"like_count"`
}

package blogs

import "time"

type CreateBlogRequest struct {
	Title   string   `json:"title" validate:"required,min=3,max=256"`
	Body    string   `json:"body" validate:"required"`
	Snippet string   `json:"snippet" validate:"omitempty,max=512"`
	Tags    []string `json:"tags" validate:"omitempty,max=10,dive,min=1,max=64"`
}

type UpdateBlogRequest struct {
	Title    string   `json:"title" validate:"omitempty,min=3,max=256"`
	Body     string   `json:"body" validate:"omitempty"`
	Snippet  string   `json:"snippet" validate:"omitempty,max=512"`
	ImageURL string   `json:"image_url" validate:"omitempty"`
	Tags     []string `json:"tags" validate:"omitempty,max=10,dive,min=1,max=64"`
}

type SetFeaturedRequest struct {
	Featured bool `json:"featured"`
}

type BlogResponse struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Body         string    `json:"body,omitempty"`
	Snippet      string    `json:"snippet"`
	ImageURL     string    `json:"image_url"`
	Author       string    `json:"author"`
	Featured     bool      `json:"featured"`
	Tags         []string  `json:"tags"`
	LikeCount    int       `json:"like_count"`
	CommentCount int       `json:"comment_count"`
	Views        int64     `json:"views,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type BlogListResponse struct {
	Blogs []BlogResponse `json:"blogs"`
	Total int            `json:"total"`
}

type TagListResponse struct {
	Tags []string `json:"tags"`
}

package entity

import "time"

type TargetType string

const (
	TargetBlog   TargetType = "blog"
	TargetCourse TargetType = "course"
)

// Comment references exactly one of BlogID or CourseID. The schema
// enforces this with a CHECK constraint; services revalidate before insert.
type Comment struct {
	ID         string    `db:"id"`
	BlogID     string    `db:"blog_id"`
	CourseID   string    `db:"course_id"`
	ParentID   string    `db:"parent_id"`
	Author     string    `db:"author"`
	AuthorName string    `db:"author_name"`
	Body       string    `db:"body"`
	CreatedAt  time.Time `db:"created_at"`
	UpdatedAt  time.Time `db:"updated_at"`

	Replies []Comment
}

type Like struct {
	ID        string    `db:"id"`
	UserID    string    `db:"user_id"`
	BlogID    string    `db:"blog_id"`
	CourseID  string    `db:"course_id"`
	CreatedAt time.Time `db:"created_at"`
}

// EngagementEvent is what the live feed broadcasts to websocket clients.
type EngagementEvent struct {
	Kind       string     `json:"kind"`
	TargetType TargetType `json:"target_type"`
	TargetID   string     `json:"target_id"`
	ActorID    string     `json:"actor_id"`
	CommentID  string     `json:"comment_id,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}

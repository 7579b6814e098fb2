package entity

import "time"

type Blog struct {
	ID        string    `db:"id"`
	Title     string    `db:"title"`
	Body      string    `db:"body"`
	Snippet   string    `db:"snippet"`
	ImageURL  string    `db:"image_url"`
	Author    string    `db:"author"`
	Featured  bool      `db:"featured"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`

	Tags         []string
	LikeCount    int
	CommentCount int
	Views        int64
}

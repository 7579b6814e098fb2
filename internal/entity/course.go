package entity

import (
	"database/sql"
	"time"
)

type CourseCategory string

const (
	CategoryBeginner     CourseCategory = "Beginner"
	CategoryIntermediate CourseCategory = "Intermediate"
	CategoryAdvanced     CourseCategory = "Advanced"
)

func (c CourseCategory) Valid() bool {
	switch c {
	case CategoryBeginner, CategoryIntermediate, CategoryAdvanced:
		return true
	}
	return false
}

func (c CourseCategory) String() string {
	return string(c)
}

type Course struct {
	ID          string         `db:"id"`
	Title       string         `db:"title"`
	Description string         `db:"description"`
	Content     string         `db:"content"`
	ImageURL    string         `db:"image_url"`
	Duration    string         `db:"duration"`
	Category    CourseCategory `db:"category"`
	VideoURL    string         `db:"video_url"`
	Author      string         `db:"author"`
	Featured    bool           `db:"featured"`
	CreatedAt   time.Time      `db:"created_at"`
	UpdatedAt   time.Time      `db:"updated_at"`

	Materials       []CourseMaterial
	EnrollmentCount int
	LikeCount       int
}

type CourseMaterial struct {
	ID       string `db:"id"`
	CourseID string `db:"course_id"`
	Title    string `db:"title"`
	URL      string `db:"url"`
	Position int    `db:"position"`
}

type Enrollment struct {
	ID          string       `db:"id"`
	UserID      string       `db:"user_id"`
	CourseID    string       `db:"course_id"`
	Progress    int          `db:"progress"`
	CompletedAt sql.NullTime `db:"completed_at"`
	CreatedAt   time.Time    `db:"created_at"`
	UpdatedAt   time.Time    `db:"updated_at"`
}

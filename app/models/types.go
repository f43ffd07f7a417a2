package models

import (
	"time"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Post represents a blog post with comments. The field limits mirror the
// store's column constraints; Title is globally unique.
type Post struct {
	ID       int        `json:"id" validate:"gte=0"`
	Author   string     `json:"author" validate:"required,max=100"`
	Title    string     `json:"title" validate:"required,max=250"`
	Subtitle string     `json:"subtitle" validate:"required,max=250"`
	Body     string     `json:"body" validate:"required,max=10000"`
	Date     time.Time  `json:"date"`
	ImgURL   string     `json:"img_url" validate:"omitempty,max=250"`
	Comments []*Comment `json:"comments" validate:"-"`
}

// Comment represents a comment on a blog post. A comment always belongs
// to exactly one post and cannot outlive it.
type Comment struct {
	ID     int       `json:"id" validate:"gte=0"`
	PostID int       `json:"post_id" validate:"required,gte=1"`
	Author string    `json:"author" validate:"required,max=100"`
	Body   string    `json:"body" validate:"required,max=250"`
	Date   time.Time `json:"date"`
}

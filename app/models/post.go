package models

import (
	"errors"
	"html"
	"strings"
	"time"
)

// NormalizeText trims leading and trailing whitespace and HTML-escapes the
// result. Escaping happens once, at storage time; callers always receive
// the escaped value back.
func NormalizeText(s string) string {
	return html.EscapeString(strings.TrimSpace(s))
}

// Validate checks if the post meets all validation requirements
func (p *Post) Validate() error {
	if err := validate.Struct(p); err != nil {
		return err
	}

	if p.Date.IsZero() {
		return errors.New("date cannot be zero")
	}

	return nil
}

// Normalize trims and HTML-escapes every free-text field of the post.
func (p *Post) Normalize() {
	p.Author = NormalizeText(p.Author)
	p.Title = NormalizeText(p.Title)
	p.Subtitle = NormalizeText(p.Subtitle)
	p.Body = NormalizeText(p.Body)
	p.ImgURL = NormalizeText(p.ImgURL)
}

// BeforeCreate sets up any necessary fields before creation
func (p *Post) BeforeCreate() {
	if p.Date.IsZero() {
		p.Date = time.Now()
	}
}

// AddComment attaches a comment to the post's loaded collection.
func (p *Post) AddComment(comment *Comment) error {
	if comment == nil {
		return errors.New("comment cannot be nil")
	}

	comment.PostID = p.ID
	p.Comments = append(p.Comments, comment)
	return nil
}

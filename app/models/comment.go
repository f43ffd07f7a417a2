package models

import (
	"errors"
	"time"
)

// Validate checks if the comment meets all validation requirements
func (c *Comment) Validate() error {
	if err := validate.Struct(c); err != nil {
		return err
	}

	if c.Date.IsZero() {
		return errors.New("date cannot be zero")
	}

	return nil
}

// Normalize trims and HTML-escapes the comment's free-text fields.
func (c *Comment) Normalize() {
	c.Author = NormalizeText(c.Author)
	c.Body = NormalizeText(c.Body)
}

// BeforeCreate sets up any necessary fields before creation
func (c *Comment) BeforeCreate() {
	if c.Date.IsZero() {
		c.Date = time.Now()
	}
}

package services

import (
	"fmt"
	"time"

	"ourblog/app/models"
	"ourblog/app/repositories"
)

// CommentService handles business logic for comments
type CommentService struct {
	commentRepo repositories.CommentRepository
	postRepo    repositories.PostRepository
}

// NewCommentService creates a new CommentService
func NewCommentService(commentRepo repositories.CommentRepository, postRepo repositories.PostRepository) *CommentService {
	return &CommentService{
		commentRepo: commentRepo,
		postRepo:    postRepo,
	}
}

// CreateComment normalizes, validates and stores a new comment on a post.
// A post ID that does not reference an existing post fails with
// repositories.ErrNotFound and nothing is written.
func (s *CommentService) CreateComment(author, body string, postID int) (*models.Comment, error) {
	comment := &models.Comment{
		PostID: postID,
		Author: author,
		Body:   body,
	}
	comment.Normalize()
	comment.Date = time.Now()

	if err := comment.Validate(); err != nil {
		return nil, fmt.Errorf("invalid comment: %w", err)
	}

	if err := s.commentRepo.Create(comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// ListPostComments retrieves all comments for a post in insertion order.
func (s *CommentService) ListPostComments(postID int) ([]*models.Comment, error) {
	if _, err := s.postRepo.GetByID(postID); err != nil {
		return nil, err
	}

	comments, err := s.commentRepo.ListByPost(postID)
	if err != nil {
		return nil, err
	}
	if comments == nil {
		comments = []*models.Comment{}
	}
	return comments, nil
}

// UpdateComment replaces the body of an existing comment and refreshes its
// date. Author and post are immutable.
func (s *CommentService) UpdateComment(id int, body string) error {
	existing, err := s.commentRepo.GetByID(id)
	if err != nil {
		return err
	}

	comment := &models.Comment{
		ID:     existing.ID,
		PostID: existing.PostID,
		Author: existing.Author,
		Body:   models.NormalizeText(body),
		Date:   time.Now(),
	}

	if err := comment.Validate(); err != nil {
		return fmt.Errorf("invalid comment: %w", err)
	}

	return s.commentRepo.Update(comment)
}

// DeleteComment deletes a comment. Comments are deleted independently of
// their post.
func (s *CommentService) DeleteComment(id int) error {
	return s.commentRepo.Delete(id)
}

package services

import (
	"fmt"
	"time"

	"ourblog/app/models"
	"ourblog/app/repositories"
)

// PostService handles business logic for blog posts
type PostService struct {
	postRepo    repositories.PostRepository
	commentRepo repositories.CommentRepository
}

// NewPostService creates a new PostService
func NewPostService(postRepo repositories.PostRepository, commentRepo repositories.CommentRepository) *PostService {
	return &PostService{
		postRepo:    postRepo,
		commentRepo: commentRepo,
	}
}

// ListPosts retrieves a page of posts, newest first. A limit of 0 returns
// every post. Pages start at 1; smaller values are clamped to 1. Comments
// are loaded only when includeComments is set; otherwise each post carries
// an empty, never nil, comment slice. A nil result means the query matched
// nothing, which is distinct from a valid empty page.
func (s *PostService) ListPosts(limit, page int, includeComments bool) ([]*models.Post, error) {
	if page < 1 {
		page = 1
	}

	posts, err := s.postRepo.List(limit, (page-1)*limit)
	if err != nil {
		return nil, err
	}
	if len(posts) == 0 {
		return nil, nil
	}

	for _, post := range posts {
		post.Comments = []*models.Comment{}
		if includeComments {
			if err := s.loadComments(post); err != nil {
				return nil, err
			}
		}
	}
	return posts, nil
}

// GetPost retrieves a post by ID with its comments. Detail views always
// need the comments, so there is no partial-load variant.
func (s *PostService) GetPost(id int) (*models.Post, error) {
	post, err := s.postRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	post.Comments = []*models.Comment{}
	if err := s.loadComments(post); err != nil {
		return nil, err
	}
	return post, nil
}

// ListPostsByAuthor retrieves a page of posts by an exact author match,
// with the same pagination semantics as ListPosts. Author listings are
// summaries; comments are never loaded.
func (s *PostService) ListPostsByAuthor(author string, limit, page int) ([]*models.Post, error) {
	if page < 1 {
		page = 1
	}

	posts, err := s.postRepo.ListByAuthor(author, limit, (page-1)*limit)
	if err != nil {
		return nil, err
	}
	if len(posts) == 0 {
		return nil, nil
	}

	for _, post := range posts {
		post.Comments = []*models.Comment{}
	}
	return posts, nil
}

// CreatePost normalizes, validates and stores a new post. The date is set
// here, never by the caller. An already-used title fails with
// repositories.ErrDuplicateTitle.
func (s *PostService) CreatePost(author, title, subtitle, body, imgURL string) (*models.Post, error) {
	post := &models.Post{
		Author:   author,
		Title:    title,
		Subtitle: subtitle,
		Body:     body,
		ImgURL:   imgURL,
	}
	post.Normalize()
	post.Date = time.Now()

	if err := post.Validate(); err != nil {
		return nil, fmt.Errorf("invalid post: %w", err)
	}

	if err := s.postRepo.Create(post); err != nil {
		return nil, err
	}
	post.Comments = []*models.Comment{}
	return post, nil
}

// UpdatePost replaces every mutable field of an existing post and
// refreshes its date. The author is immutable and all other fields must be
// resupplied in full; only the image URL is genuinely optional.
func (s *PostService) UpdatePost(id int, title, subtitle, body, imgURL string) error {
	existing, err := s.postRepo.GetByID(id)
	if err != nil {
		return err
	}

	post := &models.Post{
		ID:       id,
		Author:   existing.Author,
		Title:    models.NormalizeText(title),
		Subtitle: models.NormalizeText(subtitle),
		Body:     models.NormalizeText(body),
		ImgURL:   models.NormalizeText(imgURL),
		Date:     time.Now(),
	}

	if err := post.Validate(); err != nil {
		return fmt.Errorf("invalid post: %w", err)
	}

	return s.postRepo.Update(post)
}

// DeletePost deletes a post and all its comments. The cascade happens in
// the repository, inside the same transaction as the post delete.
func (s *PostService) DeletePost(id int) error {
	return s.postRepo.Delete(id)
}

func (s *PostService) loadComments(post *models.Post) error {
	comments, err := s.commentRepo.ListByPost(post.ID)
	if err != nil {
		return fmt.Errorf("failed to get comments for post %d: %w", post.ID, err)
	}
	if comments != nil {
		post.Comments = comments
	}
	return nil
}
